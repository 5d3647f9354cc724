package scpio_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/antcover/scpio"
	"github.com/katalvlaran/antcover/setcover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const fourByFourText = `4 4
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

func TestReadInstance(t *testing.T) {
	p, err := scpio.ReadInstance(strings.NewReader(fourByFourText), setcover.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumberOfSamples())
	assert.Equal(t, 4, p.NumberOfCandidates())
	assert.Equal(t, []int{0, 2}, p.CandidatesForSample(1))

	ix, err := p.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ix.MandatoryCandidates())
}

func TestReadInstance_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"header":         "4\n",
		"not a number":   "4 x\n",
		"count mismatch": "2 2\n0\n2\n1\n",
		"truncated":      "2 2\n0\n1\n",
		"bad count":      "2 2\n0\n-1\n",
		"two indexes":    "2 2\n0 1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scpio.ReadInstance(strings.NewReader(in), setcover.DefaultOptions())
			require.ErrorIs(t, err, scpio.ErrMalformedInstance)
		})
	}

	_, err := scpio.ReadInstance(strings.NewReader("2 2\n0\n1\n5\n"), setcover.DefaultOptions())
	require.ErrorIs(t, err, setcover.ErrCandidateOutOfRange)
	assert.Contains(t, err.Error(), "line 4")
}

func TestReadInstance_ZeroCount(t *testing.T) {
	p, err := scpio.ReadInstance(strings.NewReader("2 1\n0\n0\n1\n1\n0\n"), setcover.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, p.CandidatesForSample(0))
	assert.Equal(t, []int{0}, p.CandidatesForSample(1))

	_, err = p.Build(context.Background())
	require.ErrorIs(t, err, setcover.ErrInfeasibleInstance)
}

func TestSolution_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scpio.WriteSolution(&buf, []int{4, 0, 17}))
	assert.Equal(t, "3\n4 0 17\n", buf.String())

	sol, err := scpio.ReadSolution(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 17}, sol)
}

func TestReadSolution_Malformed(t *testing.T) {
	for _, in := range []string{"", "3\n1 2\n", "x\n", "1\n1\n2\n"} {
		_, err := scpio.ReadSolution(strings.NewReader(in))
		assert.ErrorIs(t, err, scpio.ErrMalformedInstance, "%q", in)
	}
}

func TestSolutionFile(t *testing.T) {
	dir := t.TempDir()
	path, err := scpio.WriteSolutionFile(filepath.Join(dir, "out"), "AC_01", []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, "AC_01.sol", filepath.Base(path))

	sol, err := scpio.ReadSolutionFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, sol)
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 1, 0,
		0, 0, 1, 1,
		1, 0, 0, 1,
	})
	p, err := scpio.FromDense(m, setcover.DefaultOptions())
	require.NoError(t, err)
	ix, err := p.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1}, ix.MandatoryCandidates())
	assert.True(t, mat.Equal(m, scpio.ToDense(ix)))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.txt"), []byte(fourByFourText+"\n\n\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.txt"), []byte(fourByFourText), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o750))

	files, err := scpio.ListInstances(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "small", scpio.InstanceName(files[0]))
	assert.Equal(t, "big", scpio.InstanceName(files[1]))

	p, err := scpio.ReadInstanceFile(files[1], setcover.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumberOfSamples())

	_, err = scpio.ReadInstanceFile(filepath.Join(dir, "missing"), setcover.DefaultOptions())
	require.Error(t, err)
}
