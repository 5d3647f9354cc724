// SPDX-License-Identifier: MIT

package scpio

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/antcover/setcover"
)

// FromDense builds a Preprocessor from a rows=samples × cols=candidates
// matrix; every non-zero entry (i, j) means candidate j covers sample i.
//
// Complexity: O(rows · cols).
func FromDense(m mat.Matrix, opts setcover.Options) (*setcover.Preprocessor, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("matrix is %dx%d: %w", rows, cols, ErrMalformedInstance)
	}

	p := setcover.NewPreprocessor(opts)
	p.SetNumberOfSamples(rows)
	p.SetNumberOfCandidates(cols)
	list := make([]int, 0, cols)
	for s := 0; s < rows; s++ {
		list = list[:0]
		for c := 0; c < cols; c++ {
			if m.At(s, c) != 0 {
				list = append(list, c)
			}
		}
		if err := p.AddCandidatesForSample(s, list); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ToDense renders the sample × candidate incidence of ix as a 0/1 matrix.
func ToDense(ix *setcover.Index) *mat.Dense {
	d := mat.NewDense(ix.NumSamples(), ix.NumCandidates(), nil)
	for c := 0; c < ix.NumCandidates(); c++ {
		for _, s := range ix.SamplesOf(c) {
			d.Set(s, c, 1)
		}
	}

	return d
}
