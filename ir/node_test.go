// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree() *Node {
	a := NewArena(4)
	leaf := a.New(&Node{URI: "a.yaml", Kind: KindString, Pointer: "/info/title", Key: "title", Value: "Pets"})
	info := a.New(&Node{URI: "a.yaml", Kind: KindObject, Pointer: "/info", Key: "info", Children: []*Node{leaf}})
	root := a.New(&Node{URI: "a.yaml", Kind: KindObject, Pointer: "", Children: []*Node{info}})
	return root
}

func TestFindByPointer(t *testing.T) {
	root := buildSampleTree()
	found := FindByPointer(root, "/info/title")
	require.NotNil(t, found)
	v, ok := found.StringValue()
	require.True(t, ok)
	assert.Equal(t, "Pets", v)

	assert.Nil(t, FindByPointer(root, "/missing"))
}

func TestWalk_VisitsAllNodesInOrder(t *testing.T) {
	root := buildSampleTree()
	var pointers []string
	Walk(root, func(n *Node) bool {
		pointers = append(pointers, n.Pointer)
		return true
	})
	assert.Equal(t, []string{"", "/info", "/info/title"}, pointers)
}

func TestWalk_StopsDescentWhenFnReturnsFalse(t *testing.T) {
	root := buildSampleTree()
	var pointers []string
	Walk(root, func(n *Node) bool {
		pointers = append(pointers, n.Pointer)
		return n.Pointer != "/info"
	})
	assert.Equal(t, []string{"", "/info"}, pointers)
}

func TestChildAndHas(t *testing.T) {
	root := buildSampleTree()
	info := root.Child("info")
	require.NotNil(t, info)
	assert.True(t, info.Has("title"))
	assert.False(t, info.Has("description"))
	assert.Nil(t, root.Child("paths"))
}

func TestNodeAtOffset(t *testing.T) {
	a := NewArena(4)
	leaf := a.New(&Node{URI: "a.yaml", Kind: KindString, Pointer: "/info/title", Loc: Loc{Start: 10, End: 20}})
	info := a.New(&Node{URI: "a.yaml", Kind: KindObject, Pointer: "/info", Children: []*Node{leaf}, Loc: Loc{Start: 5, End: 25}})
	root := a.New(&Node{URI: "a.yaml", Kind: KindObject, Pointer: "", Children: []*Node{info}, Loc: Loc{Start: 0, End: 30}})

	found := NodeAtOffset(root, 15)
	require.NotNil(t, found)
	assert.Equal(t, "/info/title", found.Pointer)

	found = NodeAtOffset(root, 7)
	require.NotNil(t, found)
	assert.Equal(t, "/info", found.Pointer)

	assert.Nil(t, NodeAtOffset(root, 100))
}

func TestLoc_HasKeyRange(t *testing.T) {
	withKey := Loc{KeyStart: 10, KeyEnd: 15}
	assert.True(t, withKey.HasKeyRange())
	noKey := Loc{}
	assert.False(t, noKey.HasKeyRange())
}
