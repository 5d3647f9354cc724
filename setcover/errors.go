// SPDX-License-Identifier: MIT
// Package setcover: sentinel error set and error-kind classification.
// Every algorithm returns one of these sentinels, optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is or KindOf.
// No exported function panics on user-triggered conditions.

package setcover

import "errors"

var (
	// ErrConfiguration is returned when preprocessing is invoked before the
	// sample/candidate counts are set, or when options are nonsensical.
	ErrConfiguration = errors.New("setcover: configuration error")

	// ErrConstruction is returned when an Ant is asked to visit a dominated,
	// unknown or already visited candidate. It signals a bug in the caller's
	// neighbourhood handling, not a runtime condition.
	ErrConstruction = errors.New("setcover: construction error")

	// ErrIncompleteSolution is returned when the cost of a solution that does
	// not cover every sample is requested.
	ErrIncompleteSolution = errors.New("setcover: incomplete solution")

	// ErrNoValidSolution is returned when no attempt produced a complete cover.
	ErrNoValidSolution = errors.New("setcover: no valid solution found")

	// ErrInvalidSolution is returned when a produced solution fails the
	// ground-truth coverage check.
	ErrInvalidSolution = errors.New("setcover: solution does not cover every sample")

	// ErrInfeasibleInstance is returned when some sample has no covering
	// (non-dominated) candidate.
	ErrInfeasibleInstance = errors.New("setcover: infeasible instance")

	// ErrSampleOutOfRange indicates a sample index outside [0, numSamples).
	ErrSampleOutOfRange = errors.New("setcover: sample index out of range")

	// ErrCandidateOutOfRange indicates a candidate index outside [0, numCandidates).
	ErrCandidateOutOfRange = errors.New("setcover: candidate index out of range")
)

// ErrorKind is the closed classification of errors produced by this module.
type ErrorKind int

const (
	// KindUnknown is any error not produced by this package.
	KindUnknown ErrorKind = iota
	// KindConfiguration aborts the whole run before analysis.
	KindConfiguration
	// KindConstruction aborts one construction attempt.
	KindConstruction
	// KindIncompleteSolution is recoverable by completing the construction.
	KindIncompleteSolution
	// KindNoValidSolution is a terminal failure of a whole solve.
	KindNoValidSolution
	// KindInvalidSolution is always fatal.
	KindInvalidSolution
	// KindInfeasibleInstance aborts the whole run.
	KindInfeasibleInstance
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConstruction:
		return "construction"
	case KindIncompleteSolution:
		return "incomplete-solution"
	case KindNoValidSolution:
		return "no-valid-solution"
	case KindInvalidSolution:
		return "invalid-solution"
	case KindInfeasibleInstance:
		return "infeasible-instance"
	default:
		return "unknown"
	}
}

// Fatal reports whether an error of this kind must abort the whole run
// rather than a single construction attempt.
func (k ErrorKind) Fatal() bool {
	switch k {
	case KindConstruction, KindIncompleteSolution:
		return false
	default:
		return true
	}
}

// KindOf classifies err. Index range errors are configuration errors.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrSampleOutOfRange),
		errors.Is(err, ErrCandidateOutOfRange):
		return KindConfiguration
	case errors.Is(err, ErrConstruction):
		return KindConstruction
	case errors.Is(err, ErrIncompleteSolution):
		return KindIncompleteSolution
	case errors.Is(err, ErrNoValidSolution):
		return KindNoValidSolution
	case errors.Is(err, ErrInvalidSolution):
		return KindInvalidSolution
	case errors.Is(err, ErrInfeasibleInstance):
		return KindInfeasibleInstance
	default:
		return KindUnknown
	}
}
