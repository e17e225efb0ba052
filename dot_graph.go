// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"
)

// RenderDot renders the tree structure as a Graphviz digraph. Edges are
// labelled "l" and "r" after the side of the child.
func RenderDot(t Tree) string {
	graph := dot.NewGraph(dot.Directed)

	// parents[d] is the last node rendered at depth d.
	var parents []dot.Node
	id := 0
	t.Walk(func(key Key, depth int, side Side) bool {
		// Keys may repeat, so nodes are identified by visit order.
		n := graph.Node(fmt.Sprintf("n%d", id)).Label(strconv.Itoa(key))
		id++

		if depth > 0 {
			parents[depth-1].Edge(n, side.String())
		}
		parents = append(parents[:depth], n)
		return true
	})

	return graph.String()
}
