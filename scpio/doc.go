// SPDX-License-Identifier: MIT

// Package scpio reads set-covering instances and reads/writes covers.
//
// Instance text format:
//
//	numSamples numCandidates
//	<sample index>
//	<number of covering candidates k>
//	<k space-separated candidate indices>
//	… repeated for every sample …
//
// Blank lines are ignored. A sample with k == 0 has no candidate line.
//
// Solution format:
//
//	<size>
//	<size space-separated candidate indices>
//
// FromDense builds the same Preprocessor from a rows=samples ×
// cols=candidates 0/1 gonum matrix.
package scpio
