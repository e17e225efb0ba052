// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildNodes(keys ...Key) *node {
	var root *node
	for _, k := range keys {
		root = insertNode(root, k)
	}
	return root
}

// Inserting into an empty position should create a single node subtree
func TestInsertNodeIntoNil(t *testing.T) {
	n := insertNode(nil, 7)

	assert.NotNil(t, n)
	assert.Equal(t, 7, n.key)
	assert.Nil(t, n.left)
	assert.Nil(t, n.right)
}

// Smaller keys go left, equal and bigger keys go right
func TestInsertNodeRouting(t *testing.T) {
	root := buildNodes(10, 5, 10, 15)

	assert.Equal(t, 5, root.left.key)
	assert.Equal(t, 10, root.right.key)
	assert.Equal(t, 15, root.right.right.key)
}

// Deleting a node with no left child promotes the right child
func TestDeleteNodeNoLeftChild(t *testing.T) {
	root := buildNodes(10, 20, 30)

	root, removed := deleteNode(root, 10)

	assert.True(t, removed)
	assert.Equal(t, 20, root.key)
	assert.Equal(t, 30, root.right.key)
}

// Deleting a node with no right child promotes the left child
func TestDeleteNodeNoRightChild(t *testing.T) {
	root := buildNodes(10, 5, 1)

	root, removed := deleteNode(root, 10)

	assert.True(t, removed)
	assert.Equal(t, 5, root.key)
	assert.Equal(t, 1, root.left.key)
}

// Deleting a node with two children copies the in-order successor in place
// and removes the successor from the right subtree
func TestDeleteNodeTwoChildren(t *testing.T) {
	root := buildNodes(20, 10, 30, 25, 35)

	root, removed := deleteNode(root, 20)

	assert.True(t, removed)
	assert.Equal(t, 25, root.key)
	assert.Equal(t, 10, root.left.key)
	assert.Equal(t, 30, root.right.key)
	assert.Nil(t, root.right.left)
	assert.Equal(t, 35, root.right.right.key)
}

// Deleting the only copy of a leaf leaves an empty subtree
func TestDeleteNodeSingle(t *testing.T) {
	root, removed := deleteNode(newNode(1), 1)

	assert.True(t, removed)
	assert.Nil(t, root)
}

// Deleting from an empty subtree is a no-op
func TestDeleteNodeNil(t *testing.T) {
	root, removed := deleteNode(nil, 1)

	assert.False(t, removed)
	assert.Nil(t, root)
}

// Minimum and Maximum of an empty subtree are nil
func TestMinimumMaximumNil(t *testing.T) {
	var n *node

	assert.Nil(t, n.Minimum())
	assert.Nil(t, n.Maximum())
}

func TestHeightAndCountOfNil(t *testing.T) {
	var n *node

	assert.Equal(t, -1, n.Height())
	assert.Equal(t, 0, n.Count())
	assert.Equal(t, 0, n.Sum())
	assert.Equal(t, -1, n.Depth(1, 0))
}

// The split point is returned even when a key is not stored
func TestNodeLCAWithoutMembership(t *testing.T) {
	root := buildNodes(20, 10, 30, 5, 15, 25, 35)

	assert.Equal(t, 10, root.LCA(5, 12).key)
	assert.Equal(t, 20, root.LCA(1, 100).key)
}

// Depth follows the ordering and reports the shallowest duplicate
func TestNodeDepthDuplicates(t *testing.T) {
	root := buildNodes(10, 5, 10, 10)

	assert.Equal(t, 0, root.Depth(10, 0))
	assert.Equal(t, 1, root.Depth(5, 0))
	assert.Equal(t, 3, root.Depth(5, 2))
}

// A walk should stop as soon as yield returns false
func TestWalkStopsEarly(t *testing.T) {
	root := buildNodes(20, 10, 30, 5, 15, 25, 35)

	var seen []Key
	done := root.walk(InOrder, func(k Key) bool {
		seen = append(seen, k)
		return len(seen) < 3
	})

	assert.False(t, done)
	assert.Equal(t, []Key{5, 10, 15}, seen)
}
