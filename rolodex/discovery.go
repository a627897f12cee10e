// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rolodex

import (
	"sort"

	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/fsport"
	"github.com/oaslint/oaslint/graph"
	"github.com/oaslint/oaslint/internal/logging"
)

// Resolve implements resolveLintingContext: given an input URI, it
// decides whether to lint it as a root, as a fragment against its
// owning root(s), or as an isolated document, and returns one
// ProjectContext per root that must be linted.
//
// workspacePatterns is only consulted when uri is not itself a root;
// it drives the permissive workspace scan ("accept any file whose
// classifier returns root") used to discover candidate owning roots.
func Resolve(fs fsport.FS, uri string, workspacePatterns []string, log logging.Logger) ([]*ProjectContext, error) {
	if log == nil {
		log = logging.NewNop()
	}

	entry, err := readDocument(fs, uri)
	if err != nil {
		return nil, err
	}

	if IsRootDocument(entry) {
		docs := closure(fs, uri, entry, log)
		return []*ProjectContext{Build(docs, []string{uri}, detectVersion(entry), ModeProjectAware)}, nil
	}

	candidateURIs, err := fs.Glob(workspacePatterns)
	if err != nil {
		return nil, err
	}
	candidates := loadMany(fs, candidateURIs, log)

	var owningRoots []string
	closures := make(map[string]map[string]*document.Document)
	for candidateURI, candidateDoc := range candidates {
		if !IsRootDocument(candidateDoc) {
			continue
		}
		docs := closure(fs, candidateURI, candidateDoc, log)
		if _, reaches := docs[uri]; reaches {
			owningRoots = append(owningRoots, candidateURI)
			closures[candidateURI] = docs
		}
	}
	sort.Strings(owningRoots)

	switch len(owningRoots) {
	case 0:
		return []*ProjectContext{Build(map[string]*document.Document{uri: entry}, nil, "", ModeFragment)}, nil
	case 1:
		root := owningRoots[0]
		return []*ProjectContext{Build(closures[root], []string{root}, detectVersion(candidates[root]), ModeProjectAware)}, nil
	default:
		out := make([]*ProjectContext, 0, len(owningRoots))
		for _, root := range owningRoots {
			out = append(out, Build(closures[root], []string{root}, detectVersion(candidates[root]), ModeMultiRoot))
		}
		return out, nil
	}
}

// closure loads the transitive set of documents reachable from root via
// $ref, starting from an already-loaded entry document. A document that
// fails to load is dropped from the set rather than aborting discovery,
// per the failure-isolation contract: its absence surfaces later as
// unresolved-ref diagnostics instead of an aborted run.
func closure(fs fsport.FS, rootURI string, rootDoc *document.Document, log logging.Logger) map[string]*document.Document {
	docs := map[string]*document.Document{rootURI: rootDoc}
	queue := graph.ReferencedURIs(rootURI, rootDoc.Root)

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, seen := docs[next]; seen {
			continue
		}
		doc, err := readDocument(fs, next)
		if err != nil {
			log.Warnw("unreachable document in reference closure", "uri", next, "error", err)
			continue
		}
		docs[next] = doc
		queue = append(queue, graph.ReferencedURIs(next, doc.Root)...)
	}
	return docs
}

// detectVersion reads the root's openapi/swagger field and returns its
// major.minor form, or "" if absent or unparsable.
func detectVersion(d *document.Document) string {
	if d == nil || d.Root == nil {
		return ""
	}
	field := d.Root.Child("openapi")
	if field == nil {
		field = d.Root.Child("swagger")
	}
	v, ok := field.StringValue()
	if !ok {
		return ""
	}
	return majorMinor(v)
}

func majorMinor(v string) string {
	dot := -1
	count := 0
	for i, c := range v {
		if c == '.' {
			count++
			if count == 2 {
				dot = i
				break
			}
		}
	}
	if dot == -1 {
		return v
	}
	return v[:dot]
}
