// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

import "errors"

var (
	// ErrEmptyTree is returned by queries that need at least one key.
	ErrEmptyTree = errors.New("bst: tree is empty")
	// ErrKeyNotFound is returned by LCA when a key is not stored in the tree.
	ErrKeyNotFound = errors.New("bst: key not found")
	// ErrInvalidOrder is returned when parsing an unknown traversal order.
	ErrInvalidOrder = errors.New("bst: invalid traversal order")
)
