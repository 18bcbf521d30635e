// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set. All accessors MUST return these
// sentinels (wrapped with context where useful) and tests check them via
// errors.Is. No accessor panics on user-triggered conditions.

package tensor

import "errors"

var (
	// ErrUnknownMu indicates a mu label that is not part of the tensor basis.
	ErrUnknownMu = errors.New("tensor: mu value is not part of the tensor basis")

	// ErrInvalidChannel indicates a k channel at or beyond channel_count.
	ErrInvalidChannel = errors.New("tensor: k channel out of range")

	// ErrInvalidLambda indicates a lambda position at or beyond lam_count.
	ErrInvalidLambda = errors.New("tensor: lambda index out of range")
)

// MaxKChannels is the hard cap on scattering k channels; builders reject
// channel lists longer than this before allocating any tensor.
const MaxKChannels = 8
