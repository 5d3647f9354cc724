// SPDX-License-Identifier: MIT

package scpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/antcover/setcover"
)

var log = logrus.WithField("prefix", "scpio")

// maxLineBytes bounds a single line; candidate lists of large instances are long.
const maxLineBytes = 64 << 20

// ErrMalformedInstance is returned for any syntax or count error in input.
var ErrMalformedInstance = errors.New("scpio: malformed input")

// parse states of ReadInstance.
const (
	wantHeader = iota
	wantSample
	wantCount
	wantCandidates
)

// lineReader yields non-blank lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line; ok is false at EOF.
func (lr *lineReader) next() (fields []string, ok bool) {
	for lr.sc.Scan() {
		lr.line++
		if f := strings.Fields(lr.sc.Text()); len(f) > 0 {
			return f, true
		}
	}

	return nil, false
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", lr.line, fmt.Sprintf(format, args...), ErrMalformedInstance)
}

// ints converts every field to an int.
func (lr *lineReader) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, lr.errorf("%q is not an integer", f)
		}
		out[i] = v
	}

	return out, nil
}

// ReadInstance parses an instance into a Preprocessor configured with opts.
//
// Errors: ErrMalformedInstance (with line number) for syntax and count
// errors; setcover range errors for indexes outside the declared counts.
func ReadInstance(r io.Reader, opts setcover.Options) (*setcover.Preprocessor, error) {
	lr := newLineReader(r)
	p := setcover.NewPreprocessor(opts)

	state := wantHeader
	sample, count := -1, -1
	for {
		fields, ok := lr.next()
		if !ok {
			break
		}
		vals, err := lr.ints(fields)
		if err != nil {
			return nil, err
		}

		switch state {
		case wantHeader:
			if len(vals) != 2 || vals[0] <= 0 || vals[1] <= 0 {
				return nil, lr.errorf("header must be two positive counts, got %v", fields)
			}
			p.SetNumberOfSamples(vals[0])
			p.SetNumberOfCandidates(vals[1])
			state = wantSample

		case wantSample:
			if len(vals) != 1 {
				return nil, lr.errorf("expected a sample index, got %d fields", len(vals))
			}
			sample = vals[0]
			state = wantCount

		case wantCount:
			if len(vals) != 1 || vals[0] < 0 {
				return nil, lr.errorf("expected a candidate count for sample %d", sample)
			}
			count = vals[0]
			state = wantCandidates
			if count == 0 {
				if err := p.AddCandidatesForSample(sample, nil); err != nil {
					return nil, fmt.Errorf("line %d: %w", lr.line, err)
				}
				state = wantSample
			}

		case wantCandidates:
			if len(vals) != count {
				return nil, lr.errorf("expecting %d candidates for sample %d, found %d", count, sample, len(vals))
			}
			if err := p.AddCandidatesForSample(sample, vals); err != nil {
				return nil, fmt.Errorf("line %d: %w", lr.line, err)
			}
			state = wantSample
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}

	switch state {
	case wantHeader:
		return nil, fmt.Errorf("empty input: %w", ErrMalformedInstance)
	case wantCount, wantCandidates:
		return nil, lr.errorf("unexpected end of input inside sample %d", sample)
	}

	return p, nil
}

// ReadInstanceFile opens path and parses it with ReadInstance.
func ReadInstanceFile(path string, opts setcover.Options) (*setcover.Preprocessor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ReadInstance(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"file":       path,
		"samples":    p.NumberOfSamples(),
		"candidates": p.NumberOfCandidates(),
	}).Info("Problem information gathered")

	return p, nil
}

// InstanceName is the file name of path without directory and extension.
func InstanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ListInstances returns the regular files of dir, smallest first, so quick
// instances are solved before large ones.
func ListInstances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type sized struct {
		path string
		size int64
	}
	files := make([]sized, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, sized{filepath.Join(dir, e.Name()), info.Size()})
	}
	slices.SortStableFunc(files, func(a, b sized) int {
		switch {
		case a.size < b.size:
			return -1
		case a.size > b.size:
			return 1
		default:
			return strings.Compare(a.path, b.path)
		}
	})

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}

	return out, nil
}
