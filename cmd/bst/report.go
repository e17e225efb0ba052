// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k33nice/bst"
	"github.com/xlab/treeprint"
)

// Structure renderings.
const (
	renderNone = "none"
	renderTree = "tree"
	renderDot  = "dot"
)

type reportParams struct {
	Orders  []bst.Order
	Search  []bst.Key
	LCA     [2]bst.Key
	WithLCA bool
	Render  string
}

func report(w io.Writer, t bst.Tree, params reportParams) error {
	var rendered string
	switch params.Render {
	case renderNone, "":
	case renderTree:
		rendered = renderTreeprint(t)
	case renderDot:
		rendered = bst.RenderDot(t)
	default:
		return fmt.Errorf("unknown rendering %q", params.Render)
	}

	for _, o := range params.Orders {
		fmt.Fprintf(w, "%-10s %s\n", o.String()+":", joinKeys(t.Keys(o)))
	}

	fmt.Fprintf(w, "min:       %s\n", keyOrEmpty(t.Min()))
	fmt.Fprintf(w, "max:       %s\n", keyOrEmpty(t.Max()))
	fmt.Fprintf(w, "height:    %d\n", t.Height())
	fmt.Fprintf(w, "count:     %s\n", humanize.Comma(int64(t.Size())))
	fmt.Fprintf(w, "sum:       %s\n", humanize.Comma(int64(t.Sum())))

	var lcaErr error
	if params.WithLCA {
		a, b := params.LCA[0], params.LCA[1]
		lca, err := t.LCA(a, b)
		switch {
		case err == nil:
			fmt.Fprintf(w, "lca(%d, %d): %d\n", a, b, lca)
		case errors.Is(err, bst.ErrEmptyTree):
			fmt.Fprintf(w, "lca(%d, %d): empty\n", a, b)
		default:
			fmt.Fprintf(w, "lca(%d, %d): not found\n", a, b)
			lcaErr = err
		}
	}

	for _, k := range params.Search {
		if t.Search(k) {
			fmt.Fprintf(w, "search %d: present at depth %d\n", k, t.Depth(k))
		} else {
			fmt.Fprintf(w, "search %d: absent\n", k)
		}
	}

	if rendered != "" {
		fmt.Fprintln(w, strings.TrimRight(rendered, "\n"))
	}

	return lcaErr
}

func keyOrEmpty(k bst.Key, err error) string {
	if err != nil {
		return "empty"
	}
	return strconv.Itoa(k)
}

func joinKeys(keys []bst.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func renderTreeprint(t bst.Tree) string {
	var (
		root     treeprint.Tree
		branches []treeprint.Tree
	)
	t.Walk(func(key bst.Key, depth int, side bst.Side) bool {
		if depth == 0 {
			root = treeprint.NewWithRoot(key)
			branches = append(branches[:0], root)
			return true
		}
		branch := branches[depth-1].AddBranch(side.String() + " " + strconv.Itoa(key))
		branches = append(branches[:depth], branch)
		return true
	})

	if root == nil {
		return "(empty)"
	}
	return root.String()
}
