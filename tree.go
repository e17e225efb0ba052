// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"iter"
	"slices"
)

type tree struct {
	root *node
	size int
	opts options
}

func newTree(opts ...Option) *tree {
	t := &tree{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Inserts the passed in key into the tree. Duplicates are kept.
func (t *tree) Insert(key Key) {
	empty := t.root == nil
	t.root = insertNode(t.root, key)
	t.size++

	if empty {
		t.opts.log.Debug().Int("key", key).Msg("root created")
	}
}

// Returns whether the tree holds key.
func (t *tree) Search(key Key) bool {
	return t.root.Search(key)
}

// Delete one node holding key. Deleting a missing key is a no-op.
func (t *tree) Delete(key Key) bool {
	oldRoot := t.root

	var deleted bool
	t.root, deleted = deleteNode(t.root, key)
	if !deleted {
		t.opts.log.Debug().Int("key", key).Msg("delete of missing key")
		return false
	}
	t.size--

	if t.root != oldRoot {
		ev := t.opts.log.Debug().Int("key", key)
		if t.root == nil {
			ev.Msg("root removed, tree is empty")
		} else {
			ev.Int("root", t.root.key).Msg("root replaced")
		}
	}
	return true
}

func (t *tree) Min() (Key, error) {
	n := t.root.Minimum()
	if n == nil {
		return 0, ErrEmptyTree
	}
	return n.key, nil
}

func (t *tree) Max() (Key, error) {
	n := t.root.Maximum()
	if n == nil {
		return 0, ErrEmptyTree
	}
	return n.key, nil
}

// LCA returns the key of the lowest common ancestor of a and b.
// Both keys must be stored in the tree, otherwise ErrKeyNotFound is
// returned.
func (t *tree) LCA(a, b Key) (Key, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}
	for _, k := range []Key{a, b} {
		if !t.root.Search(k) {
			return 0, fmt.Errorf("lca of %d and %d: %w: %d", a, b, ErrKeyNotFound, k)
		}
	}
	return t.root.LCA(a, b).key, nil
}

// Height is -1 for an empty tree and 0 for a single node.
func (t *tree) Height() int {
	return t.root.Height()
}

// Depth of key counted from the root at 0, or -1 when absent.
func (t *tree) Depth(key Key) int {
	return t.root.Depth(key, 0)
}

func (t *tree) Size() int {
	return t.size
}

func (t *tree) Sum() int {
	return t.root.Sum()
}

// Traverse returns the keys in the given order. Every range over the
// returned sequence walks the tree from the root again.
func (t *tree) Traverse(order Order) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		t.root.walk(order, yield)
	}
}

// Keys collects a traversal into a slice.
func (t *tree) Keys(order Order) []Key {
	if !order.Valid() {
		return nil
	}
	return slices.AppendSeq(make([]Key, 0, t.size), t.Traverse(order))
}

// Calls cb for every key, in order by default.
func (t *tree) Each(cb Callback, options ...Order) {
	order := InOrder
	if len(options) > 0 {
		order = options[0]
	}

	for key := range t.Traverse(order) {
		cb(key)
	}
}

func (t *tree) Walk(fn WalkFunc) {
	t.root.walkStructure(0, Root, fn)
}

// Drops every node.
func (t *tree) Clear() {
	t.root = nil
	t.size = 0
}
