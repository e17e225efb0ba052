// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package bst implements an unbalanced binary search tree of integer keys.
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize every call, reads included.
package bst

import (
	"fmt"
	"iter"
	"strings"
)

// Key type. Keys are totally ordered integers.
type Key = int

// Order - traversal order of a tree walk.
type Order uint8

// Traversal orders.
const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

var orderNames = [...]string{
	InOrder:   "inorder",
	PreOrder:  "preorder",
	PostOrder: "postorder",
}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// Valid reports whether o is one of the known traversal orders.
func (o Order) Valid() bool {
	return int(o) < len(orderNames)
}

// ParseOrder - parses a traversal order name, ignoring case.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// Orders returns every traversal order.
func Orders() []Order {
	return []Order{InOrder, PreOrder, PostOrder}
}

// Callback - callback function that is passed in Each.
type Callback func(key Key)

// Tree - delineate binary search tree entity.
//
// Equal keys are kept: a duplicate is stored in the right subtree of its
// twin, and Size and Sum count every copy. Sum wraps around when the keys
// add up past the int range.
type Tree interface {
	Insert(key Key)
	Search(key Key) bool
	Delete(key Key) (deleted bool)
	Min() (Key, error)
	Max() (Key, error)
	LCA(a, b Key) (Key, error)
	Height() int
	Depth(key Key) int
	Size() int
	Sum() int
	Traverse(order Order) iter.Seq[Key]
	Keys(order Order) []Key
	Each(cb Callback, options ...Order)
	Walk(fn WalkFunc)
	Clear()
}

// New - creates a new instance of binary search tree.
func New(opts ...Option) Tree {
	return newTree(opts...)
}
