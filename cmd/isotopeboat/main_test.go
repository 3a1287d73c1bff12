package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchUnknownCommandLeavesStateUnchanged(t *testing.T) {
	sh := newShell()
	algBefore, heurBefore := sh.algorithm, sh.heuristic

	var out strings.Builder
	sh.dispatch("frobnicate", &out)

	assert.Contains(t, out.String(), "unknown command")
	assert.Equal(t, algBefore, sh.algorithm)
	assert.Equal(t, heurBefore, sh.heuristic)
}

func TestSetAlgorithmRejectsUnknownName(t *testing.T) {
	sh := newShell()
	before := sh.algorithm

	var out strings.Builder
	sh.setAlgorithm([]string{"algorithm", "not-an-algorithm"}, &out)

	assert.Equal(t, before, sh.algorithm)
	assert.Contains(t, out.String(), "unknown algorithm")
}

func TestSetAlgorithmAcceptsEachCLIName(t *testing.T) {
	for _, name := range []string{"asgs", "grbfgs", "id-dfgs", "bfts"} {
		sh := newShell()
		var out strings.Builder
		sh.setAlgorithm([]string{"algorithm", name}, &out)
		assert.Equal(t, name, sh.algorithm)
		assert.Empty(t, out.String())
	}
}

func TestSetHeuristicRejectsUnknownName(t *testing.T) {
	sh := newShell()
	before := sh.heuristic

	var out strings.Builder
	sh.setHeuristic([]string{"heuristic", "lucky-guess"}, &out)

	assert.Equal(t, before, sh.heuristic)
	assert.Contains(t, out.String(), "unknown heuristic")
}

const trivialPuzzle = `3 3
0 0
0 0
0 0 0
0 0 R
2 0
`

func TestSolveWritesOutputFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inPath, []byte(trivialPuzzle), 0o644))

	sh := newShell()
	sh.algorithm = "bfts"

	var out strings.Builder
	sh.solve([]string{"solve", inPath, outPath}, &out)

	assert.Empty(t, out.String())
	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, contents)
	assert.NotNil(t, sh.last)
}

func TestSolveReportsMalformedInputWithoutWritingOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("not enough lines"), 0o644))

	sh := newShell()
	var out strings.Builder
	sh.solve([]string{"solve", inPath, outPath}, &out)

	assert.Contains(t, out.String(), "solve:")
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSolveReportsUnsolvableWithoutWritingOutput(t *testing.T) {
	unsolvable := `3 3
0 0
0 0
0 0 5
2 0
1 1
2 1
0 2
1 2
0 0 R
2 2
`
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inPath, []byte(unsolvable), 0o644))

	sh := newShell()
	sh.algorithm = "bfts"
	var out strings.Builder
	sh.solve([]string{"solve", inPath, outPath}, &out)

	assert.Contains(t, out.String(), "no solution found")
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestGraphWithoutPriorSolveReportsMessage(t *testing.T) {
	sh := newShell()
	var out strings.Builder
	sh.graph([]string{"graph", filepath.Join(t.TempDir(), "out.dot")}, &out)
	assert.Contains(t, out.String(), "no completed search")
}

func TestGraphAfterSolveWritesDotFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	dotPath := filepath.Join(dir, "graph.dot")
	require.NoError(t, os.WriteFile(inPath, []byte(trivialPuzzle), 0o644))

	sh := newShell()
	sh.algorithm = "bfts"
	var solveOut strings.Builder
	sh.solve([]string{"solve", inPath, outPath}, &solveOut)
	require.Empty(t, solveOut.String())

	var graphOut strings.Builder
	sh.graph([]string{"graph", dotPath}, &graphOut)
	assert.Empty(t, graphOut.String())

	contents, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "digraph")
}
