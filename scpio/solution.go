// SPDX-License-Identifier: MIT

package scpio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteSolution writes sol as "size\nc1 c2 …\n".
func WriteSolution(w io.Writer, sol []int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(sol)))
	bw.WriteByte('\n')
	for i, c := range sol {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(c))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// WriteSolutionFile writes sol to dir/<instance>.sol and returns the path.
func WriteSolutionFile(dir, instance string, sol []int) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}
	path := filepath.Join(dir, instance+".sol")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteSolution(f, sol); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	log.WithField("file", path).Info("Solution written")

	return path, nil
}

// ReadSolution parses the format written by WriteSolution.
//
// Errors: ErrMalformedInstance when the size line is missing or disagrees
// with the number of candidates listed.
func ReadSolution(r io.Reader) ([]int, error) {
	lr := newLineReader(r)

	fields, ok := lr.next()
	if !ok {
		return nil, fmt.Errorf("empty solution: %w", ErrMalformedInstance)
	}
	head, err := lr.ints(fields)
	if err != nil {
		return nil, err
	}
	if len(head) != 1 || head[0] < 0 {
		return nil, lr.errorf("expected the solution size")
	}

	var sol []int
	if fields, ok = lr.next(); ok {
		if sol, err = lr.ints(fields); err != nil {
			return nil, err
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("read solution: %w", err)
	}
	if len(sol) != head[0] {
		return nil, lr.errorf("expecting %d candidates, found %d", head[0], len(sol))
	}
	if extra, ok := lr.next(); ok {
		return nil, lr.errorf("trailing content %v", extra)
	}

	return sol, nil
}

// ReadSolutionFile opens path and parses it with ReadSolution.
func ReadSolutionFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sol, err := ReadSolution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sol, nil
}
