// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcover/scpio"
)

// fourByFour: candidate 1 is the only coverer of sample 0.
const fourByFour = `4 4
0
1
1

1
2
0 2
2
2
2 3
3
2
0 3
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolve_FileToStdout(t *testing.T) {
	dir := t.TempDir()
	inst := writeFile(t, dir, "tiny.txt", fourByFour)

	out, err := execute(t, "solve", "-f", inst, "--runs", "2", "--seed", "3")
	require.NoError(t, err)

	sol, err := scpio.ReadSolution(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, sol, 3)
	assert.Contains(t, sol, 1)
}

func TestSolve_DirectoryWithStore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", fourByFour)
	writeFile(t, dir, "b.txt", "1 1\n0\n1\n0\n")
	outDir := t.TempDir()
	cfgPath := writeFile(t, t.TempDir(), "antcover.yaml", `
store:
  enabled: true
  in_memory: true
run:
  runs: 2
  seed: 5
`)

	_, err := execute(t, "--config", cfgPath, "solve", "-d", dir, "--out", outDir, "--iterated")
	require.NoError(t, err)

	a, err := scpio.ReadSolutionFile(filepath.Join(outDir, "a.sol"))
	require.NoError(t, err)
	assert.Len(t, a, 3)
	b, err := scpio.ReadSolutionFile(filepath.Join(outDir, "b.sol"))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, b)
}

func TestSolve_DirectoryContinuesPastBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", fourByFour)
	writeFile(t, dir, "bad.txt", "2 2\nnot numbers\n")
	outDir := t.TempDir()

	_, err := execute(t, "solve", "-d", dir, "--out", outDir, "--runs", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 instances failed")
	assert.FileExists(t, filepath.Join(outDir, "good.sol"))
}

func TestSolve_FlagErrors(t *testing.T) {
	_, err := execute(t, "solve")
	require.Error(t, err)

	_, err = execute(t, "solve", "-f", "x", "-d", "y")
	require.Error(t, err)

	dir := t.TempDir()
	inst := writeFile(t, dir, "tiny.txt", fourByFour)
	_, err = execute(t, "solve", "-f", inst, "--neighbourhood", "nearest")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	inst := writeFile(t, dir, "tiny.txt", fourByFour)
	good := writeFile(t, dir, "good.sol", "3\n1 0 2\n")
	bad := writeFile(t, dir, "bad.sol", "2\n1 2\n")

	out, err := execute(t, "validate", "-i", inst, "-s", good)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	_, err = execute(t, "validate", "-i", inst, "-s", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uncovered")
}

func TestPreprocess(t *testing.T) {
	dir := t.TempDir()
	inst := writeFile(t, dir, "tiny.txt", fourByFour)

	out, err := execute(t, "preprocess", inst)
	require.NoError(t, err)
	assert.Contains(t, out, "samples=4")
	assert.Contains(t, out, "mandatory: [1]")
}
