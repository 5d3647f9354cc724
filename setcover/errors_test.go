package setcover_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/antcover/setcover"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err   error
		kind  setcover.ErrorKind
		fatal bool
	}{
		{setcover.ErrConfiguration, setcover.KindConfiguration, true},
		{fmt.Errorf("x: %w", setcover.ErrSampleOutOfRange), setcover.KindConfiguration, true},
		{fmt.Errorf("x: %w", setcover.ErrCandidateOutOfRange), setcover.KindConfiguration, true},
		{fmt.Errorf("x: %w", setcover.ErrConstruction), setcover.KindConstruction, false},
		{setcover.ErrIncompleteSolution, setcover.KindIncompleteSolution, false},
		{setcover.ErrNoValidSolution, setcover.KindNoValidSolution, true},
		{setcover.ErrInvalidSolution, setcover.KindInvalidSolution, true},
		{setcover.ErrInfeasibleInstance, setcover.KindInfeasibleInstance, true},
		{errors.New("other"), setcover.KindUnknown, true},
		{nil, setcover.KindUnknown, true},
	}
	for _, tc := range cases {
		k := setcover.KindOf(tc.err)
		assert.Equal(t, tc.kind, k, "%v", tc.err)
		assert.Equal(t, tc.fatal, k.Fatal(), "%v", k)
	}
	assert.Equal(t, "construction", setcover.KindConstruction.String())
	assert.Equal(t, "unknown", setcover.ErrorKind(99).String())
}

func TestParseNeighbourhoodStrategy(t *testing.T) {
	s, err := setcover.ParseNeighbourhoodStrategy("sample")
	assert.NoError(t, err)
	assert.Equal(t, setcover.SampleRestricted, s)
	assert.Equal(t, "sample", s.String())

	s, err = setcover.ParseNeighbourhoodStrategy("")
	assert.NoError(t, err)
	assert.Equal(t, setcover.AllCandidates, s)

	_, err = setcover.ParseNeighbourhoodStrategy("ring")
	assert.ErrorIs(t, err, setcover.ErrConfiguration)
}
