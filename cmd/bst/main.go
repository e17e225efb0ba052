// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Command bst builds a binary search tree from the given keys and reports
// every query the tree supports.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/k33nice/bst"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	sampleKeys = []bst.Key{20, 10, 30, 5, 15, 25, 35}
	sampleLCA  = []int{5, 15}
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("bst failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		deleteKeys []int
		searchKeys []int
		lcaKeys    []int
		order      string
		render     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "bst [keys...]",
		Short: "Builds a binary search tree and reports its structure.",
		Long: "Builds a binary search tree by inserting the given keys in order, " +
			"deletes the keys passed with --delete and prints traversals and queries. " +
			"Without keys the sample 20 10 30 5 15 25 35 is used.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().IntSliceVar(&deleteKeys, "delete", nil, "Keys to delete after the tree is built.")
	cmd.Flags().IntSliceVar(&searchKeys, "search", nil, "Keys to look up.")
	cmd.Flags().IntSliceVar(&lcaKeys, "lca", nil, "Two keys to find the lowest common ancestor of. Defaults to 5,15 for the sample tree.")
	cmd.Flags().StringVar(&order, "order", "", "Only print this traversal: inorder, preorder or postorder.")
	cmd.Flags().StringVar(&render, "render", renderNone, "Render the tree structure: none, tree or dot.")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(level).With().Timestamp().Logger()

		keys, err := parseKeys(args)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			keys = sampleKeys
			if !cmd.Flags().Changed("lca") {
				lcaKeys = sampleLCA
			}
		}

		switch render {
		case renderNone, renderTree, renderDot:
		default:
			return fmt.Errorf("unknown rendering %q", render)
		}

		params := reportParams{
			Search: searchKeys,
			Render: render,
		}
		if order != "" {
			o, err := bst.ParseOrder(order)
			if err != nil {
				return err
			}
			params.Orders = []bst.Order{o}
		} else {
			params.Orders = bst.Orders()
		}
		if len(lcaKeys) > 0 {
			if len(lcaKeys) != 2 {
				return fmt.Errorf("--lca needs exactly two keys, got %d", len(lcaKeys))
			}
			params.LCA = [2]bst.Key{lcaKeys[0], lcaKeys[1]}
			params.WithLCA = true
		}

		tree := bst.New(bst.WithLogger(log))
		for _, k := range keys {
			tree.Insert(k)
		}
		log.Info().Int("keys", len(keys)).Msg("tree built")

		for _, k := range deleteKeys {
			if !tree.Delete(k) {
				log.Warn().Int("key", k).Msg("key to delete not found")
			}
		}

		return report(cmd.OutOrStdout(), tree, params)
	}

	return cmd
}

func parseKeys(args []string) ([]bst.Key, error) {
	keys := make([]bst.Key, 0, len(args))
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
