// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rolodex

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/fsport"
	"github.com/oaslint/oaslint/internal/errorutils"
	"github.com/oaslint/oaslint/internal/logging"
)

// workspaceBatchSize matches the "batched pools" requirement for the
// workspace diagnostic path: files are loaded in bounded-concurrency
// groups rather than either fully sequentially or fully in parallel.
const workspaceBatchSize = 10

// readDocument reads and parses one document through fs. A read or
// parse failure is returned as-is; callers decide whether to treat it
// as fatal or as one failed participant in a larger scan.
func readDocument(fs fsport.FS, uri string) (*document.Document, error) {
	raw, err := fs.Read(uri)
	if err != nil {
		return nil, err
	}
	modTime := time.Time{}
	if info, ok := fs.Stat(uri); ok {
		modTime = info.ModTime
	}
	return document.Load(uri, raw, modTime)
}

// loadMany loads every uri in uris concurrently, bounded to
// workspaceBatchSize in flight at once, skipping (and logging) any URI
// that fails to load rather than aborting the whole batch - a single
// bad document never blocks the rest of a workspace scan.
func loadMany(fs fsport.FS, uris []string, log logging.Logger) map[string]*document.Document {
	if log == nil {
		log = logging.NewNop()
	}
	out := make(map[string]*document.Document, len(uris))
	var mu sync.Mutex
	var failures []error
	g := &errgroup.Group{}
	g.SetLimit(workspaceBatchSize)

	for _, uri := range uris {
		uri := uri
		g.Go(func() error {
			doc, err := readDocument(fs, uri)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, fmt.Errorf("%s: %w", uri, err))
				return nil
			}
			out[uri] = doc
			return nil
		})
	}
	_ = g.Wait()

	if joined := errorutils.Join(failures...); joined != nil {
		log.Warnw("skipping documents that failed to load", "count", len(failures), "errors", joined.Error())
	}
	return out
}
