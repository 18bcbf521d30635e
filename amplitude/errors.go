// SPDX-License-Identifier: MIT
// Package amplitude: sentinel error set for the matrix/tensor builders.
// Builders return these (wrapped with context) for malformed input shapes;
// selection-rule nulls are numeric zeros, never errors.

package amplitude

import "errors"

var (
	// ErrEmptyLambdaBasis indicates an empty lambda basis was supplied.
	ErrEmptyLambdaBasis = errors.New("amplitude: lambda basis cannot be empty")

	// ErrInvalidLimits indicates a lambda limit exceeding the basis size.
	ErrInvalidLimits = errors.New("amplitude: lambda limits exceed basis size")

	// ErrEmptyMuBasis indicates an empty mu label set was supplied.
	ErrEmptyMuBasis = errors.New("amplitude: mu basis cannot be empty")

	// ErrMismatchedChannels indicates channel-indexed inputs of different lengths.
	ErrMismatchedChannels = errors.New("amplitude: channel inputs must have matching lengths")

	// ErrTooManyChannels indicates a channel list longer than tensor.MaxKChannels.
	ErrTooManyChannels = errors.New("amplitude: channel count exceeds supported maximum")

	// ErrRkkLength indicates rkk does not match the tensor's channel count.
	ErrRkkLength = errors.New("amplitude: rkk length must match channel count")

	// ErrLindLength indicates lind does not match the tensor's channel count.
	ErrLindLength = errors.New("amplitude: lind length must match channel count")

	// ErrEmptyQGrid indicates an empty momentum-transfer grid.
	ErrEmptyQGrid = errors.New("amplitude: q-grid cannot be empty")

	// ErrMismatchedQGrid indicates q-grid slices of inconsistent lengths.
	ErrMismatchedQGrid = errors.New("amplitude: q-grid dimensions are inconsistent")

	// ErrInvalidJinit indicates a negative initial total angular momentum.
	ErrInvalidJinit = errors.New("amplitude: jinit must be non-negative")

	// ErrMissingMu indicates a lambda m value absent from the mu basis.
	ErrMissingMu = errors.New("amplitude: mu basis does not contain lambda m value")
)
