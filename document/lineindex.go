// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

// LineIndex converts 1-based (line, column) positions, the only location
// gopkg.in/yaml.v3 exposes on its CST nodes, into 0-based byte offsets
// into the original text. The diagnostic model performs the inverse
// conversion from the same table so two rules reporting on one node
// always compute identical ranges.
type LineIndex struct {
	lineStarts []int
	length     int
}

// NewLineIndex scans text once and records the byte offset each line
// begins at.
func NewLineIndex(text []byte) *LineIndex {
	starts := []int{0}
	for i, b := range text {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{lineStarts: starts, length: len(text)}
}

// Offset returns the byte offset of 1-based line and column. Out-of-range
// lines clamp to the end of the text.
func (idx *LineIndex) Offset(line, col int) int {
	if line < 1 {
		line = 1
	}
	if line > len(idx.lineStarts) {
		return idx.length
	}
	off := idx.lineStarts[line-1] + (col - 1)
	if off < 0 {
		off = idx.lineStarts[line-1]
	}
	if off > idx.length {
		off = idx.length
	}
	return off
}

// Position returns the 1-based (line, column) for a byte offset, the
// inverse of Offset.
func (idx *LineIndex) Position(offset int) (line, col int) {
	lo, hi := 0, len(idx.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - idx.lineStarts[lo] + 1
}
