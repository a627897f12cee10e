// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndex_OffsetAndPositionRoundTrip(t *testing.T) {
	text := []byte("line one\nline two\nline three")
	idx := NewLineIndex(text)

	assert.Equal(t, 0, idx.Offset(1, 1))
	assert.Equal(t, 9, idx.Offset(2, 1))
	assert.Equal(t, 13, idx.Offset(2, 5))

	line, col := idx.Position(9)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = idx.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestLineIndex_ClampsOutOfRange(t *testing.T) {
	text := []byte("abc")
	idx := NewLineIndex(text)
	assert.Equal(t, len(text), idx.Offset(99, 1))
}
