// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package contenthash provides a pooled, seeded, allocation-free hasher
// used to derive Document content hashes and project-context cache keys.
package contenthash

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"sync"
)

// globalHashSeed ensures consistent hashes across all pooled instances.
// Set once at init, deterministic within a process run.
var globalHashSeed maphash.Seed

func init() {
	globalHashSeed = maphash.MakeSeed()
}

// hasherPool pools maphash.Hash instances for reuse
var hasherPool = sync.Pool{
	New: func() any {
		h := &maphash.Hash{}
		h.SetSeed(globalHashSeed)
		return h
	},
}

// WithHasher provides a pooled hasher for the duration of fn.
// The hasher is automatically returned to the pool after fn completes.
// This pattern eliminates forgotten PutHasher() bugs.
func WithHasher(fn func(h *maphash.Hash) uint64) uint64 {
	hasher := hasherPool.Get().(*maphash.Hash)
	hasher.Reset()
	result := fn(hasher)
	hasherPool.Put(hasher)
	return result
}

// HashString writes a string to the hasher (zero allocation).
func HashString(h *maphash.Hash, s string) {
	h.WriteString(s)
}

// HashByte writes a single byte (typically a separator).
func HashByte(h *maphash.Hash, b byte) {
	h.WriteByte(b)
}

// HashBool writes a boolean as a single byte.
func HashBool(h *maphash.Hash, b bool) {
	if b {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
}

// HashInt64 writes an int64 without allocation using binary encoding.
func HashInt64(h *maphash.Hash, n int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}

// HashFloat64 writes a float64 using its IEEE 754 bit pattern (zero allocation).
func HashFloat64(h *maphash.Hash, f float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	h.Write(buf[:])
}

// HashUint64 writes another hash value (for composition of nested Hashable objects).
func HashUint64(h *maphash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// HASH_PIPE is the separator byte used between hash fields. :)
const HASH_PIPE = '|'

// OfBytes hashes a document's raw bytes. Two documents with equal hash are
// treated as structurally identical, so this is the sole identity used by
// the document-type and project-context caches.
func OfBytes(b []byte) uint64 {
	return WithHasher(func(h *maphash.Hash) uint64 {
		h.Write(b)
		return h.Sum64()
	})
}

// URIHash pairs a document URI with its content hash, the unit a
// project-context cache key is built from.
type URIHash struct {
	URI  string
	Hash uint64
}

// ProjectKey derives the stable cache key for a project context from the
// sorted list of {uri, hash} pairs of its participating documents. Callers
// are responsible for sorting pairs (by URI) before calling, so that the
// same document set always yields the same key regardless of discovery
// order.
func ProjectKey(pairs []URIHash) uint64 {
	return WithHasher(func(h *maphash.Hash) uint64 {
		for _, p := range pairs {
			HashString(h, p.URI)
			HashByte(h, HASH_PIPE)
			HashUint64(h, p.Hash)
			HashByte(h, HASH_PIPE)
		}
		return h.Sum64()
	})
}
