// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package test holds fixture helpers shared by the package tests.
package test

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadKeys reads one integer key per line from the file at path.
// Blank lines and lines starting with '#' are skipped.
func LoadKeys(tb testing.TB, path string) []int {
	tb.Helper()

	f, err := os.Open(path)
	require.NoError(tb, err)
	defer f.Close()

	var keys []int
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, err := strconv.Atoi(text)
		require.NoErrorf(tb, err, "%s:%d", path, line)
		keys = append(keys, key)
	}
	require.NoError(tb, scanner.Err())

	return keys
}
