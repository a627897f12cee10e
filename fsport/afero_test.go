// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package fsport

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(t *testing.T, files map[string]string) *AferoFS {
	t.Helper()
	afs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(afs, path, []byte(content), 0o644))
	}
	return New(afs)
}

func TestAferoFS_ReadAndStat(t *testing.T) {
	fs := memFS(t, map[string]string{"/proj/a.yaml": "openapi: 3.0.0\n"})

	b, err := fs.Read("/proj/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.0\n", string(b))

	info, ok := fs.Stat("/proj/a.yaml")
	require.True(t, ok)
	assert.Equal(t, EntryFile, info.Type)

	_, ok = fs.Stat("/proj/missing.yaml")
	assert.False(t, ok)
}

func TestAferoFS_ReadMissing(t *testing.T) {
	fs := memFS(t, nil)
	_, err := fs.Read("/proj/missing.yaml")
	require.Error(t, err)
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
}

func TestAferoFS_ReadDirectory(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/a.yaml": "a",
		"/proj/b.yaml": "b",
	})
	entries, err := fs.ReadDirectory("/proj")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAferoFS_GlobWithNegation(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/a.yaml":        "a",
		"/proj/b.yaml":        "b",
		"/proj/fixtures/c.yaml": "c",
	})

	matches, err := fs.Glob([]string{"/proj/**/*.yaml", "!/proj/fixtures/**"})
	require.NoError(t, err)

	assert.Contains(t, matches, "/proj/a.yaml")
	assert.Contains(t, matches, "/proj/b.yaml")
	assert.NotContains(t, matches, "/proj/fixtures/c.yaml")
}
