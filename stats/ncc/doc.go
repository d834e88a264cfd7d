// Package ncc computes the normalized cross-correlation (NCC) coefficient of
// two equal-length real-valued sequences.
//
// The coefficient is the sum of the products of the mean-centered samples
// divided by the square root of the product of their sums of squares:
//
//	ncc(f, g) = Σ(f[i]-fm)(g[i]-gm) / sqrt(Σ(f[i]-fm)² · Σ(g[i]-gm)²)
//
// The sample count cancels, so no 1/n or 1/(n-1) factor is applied.
//
// # Usage
//
//	r, err := ncc.Compute(f, g)
//
// When the means are already known, pass them in to skip the extra pass:
//
//	r, err := ncc.ComputeWithMeans(f, g, fm, gm)
//
// # Edge cases
//
// Sequences of different length are rejected with an error matching
// [ErrLengthMismatch]; empty sequences with [ErrEmptyInput]. A constant
// sequence has zero variance and the result is NaN or ±Inf following IEEE
// division. That is not reported as an error.
//
// All functions are pure and safe for concurrent use.
package ncc
