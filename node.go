// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

// Defines a single tree node. Each node owns its children outright.
type node struct {
	key   Key
	left  *node
	right *node
}

func newNode(key Key) *node {
	return &node{key: key}
}

// Inserts key below n and returns the subtree root the caller must
// reattach. Keys equal to n.key go right.
func insertNode(n *node, key Key) *node {
	if n == nil {
		return newNode(key)
	}

	if key < n.key {
		n.left = insertNode(n.left, key)
	} else {
		n.right = insertNode(n.right, key)
	}
	return n
}

// Removes one node holding key from the subtree rooted at n.
// Returns the new subtree root and whether a node was removed.
//
// A node with a single child is replaced by that child. A node with two
// children takes the key of its in-order successor, which is then removed
// from the right subtree.
func deleteNode(n *node, key Key) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = deleteNode(n.left, key)
	case key > n.key:
		n.right, removed = deleteNode(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}

		// The key must be overwritten before the recursive call, which
		// then targets the successor's copy in the right subtree.
		n.key = n.right.Minimum().key
		n.right, removed = deleteNode(n.right, n.key)
	}
	return n, removed
}

// Returns whether the subtree rooted at n holds key.
func (n *node) Search(key Key) bool {
	for n != nil {
		switch {
		case key == n.key:
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// Returns the leftmost node of the subtree, or nil for an empty one.
func (n *node) Minimum() *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Returns the rightmost node of the subtree, or nil for an empty one.
func (n *node) Maximum() *node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Returns the split point of a and b: the first node on the descent from n
// whose key is not strictly above or strictly below both of them.
// Membership of a and b is not checked here.
func (n *node) LCA(a, b Key) *node {
	if n == nil {
		return nil
	}
	if a < n.key && b < n.key {
		return n.left.LCA(a, b)
	}
	if a > n.key && b > n.key {
		return n.right.LCA(a, b)
	}
	return n
}

// Height of an empty subtree is -1, of a single node 0.
func (n *node) Height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// Returns the depth of the shallowest node holding key, counting from
// depth at n, or -1 when key is absent.
func (n *node) Depth(key Key, depth int) int {
	for n != nil {
		switch {
		case key == n.key:
			return depth
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
		depth++
	}
	return -1
}

func (n *node) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Count() + n.right.Count()
}

// Sum uses plain int addition and wraps around on overflow.
func (n *node) Sum() int {
	if n == nil {
		return 0
	}
	return n.key + n.left.Sum() + n.right.Sum()
}

// Yields the keys of the subtree in the given order. Returns false as soon
// as yield does, so the walk stops early.
func (n *node) walk(order Order, yield func(Key) bool) bool {
	if n == nil {
		return true
	}

	switch order {
	case InOrder:
		return n.left.walk(order, yield) && yield(n.key) && n.right.walk(order, yield)
	case PreOrder:
		return yield(n.key) && n.left.walk(order, yield) && n.right.walk(order, yield)
	case PostOrder:
		return n.left.walk(order, yield) && n.right.walk(order, yield) && yield(n.key)
	}
	return false
}

// Preorder walk handing every node its depth and the side it hangs on.
// A false return from fn skips the node's children.
func (n *node) walkStructure(depth int, side Side, fn WalkFunc) {
	if n == nil {
		return
	}
	if !fn(n.key, depth, side) {
		return
	}
	n.left.walkStructure(depth+1, Left, fn)
	n.right.walkStructure(depth+1, Right, fn)
}
