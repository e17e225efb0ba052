// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

// Side - position of a node relative to its parent.
type Side uint8

// Node sides.
const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "l"
	case Right:
		return "r"
	}
	return ""
}

// WalkFunc - callback passed in Walk. It receives every node in preorder
// along with its depth and side. Returning false skips the node's children.
//
// In preorder the parent of a node at depth d is the last node visited at
// depth d-1.
type WalkFunc func(key Key, depth int, side Side) bool
