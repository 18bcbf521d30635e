package wigner

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// idim bounds the factorial lookup domain; arguments that would index the
// table past idim+1 are rejected with ErrFactorialOverflow.
const idim = 58

// Sentinel errors for Wigner coefficient evaluation.
var (
	// ErrInvalidIent indicates ient was neither 1 (integer) nor 2 (half-integer).
	ErrInvalidIent = errors.New("wigner: ient must be 1 or 2")

	// ErrParityMismatch indicates a derived quantum number is not divisible
	// by ient, i.e. the inputs mix integer and half-integer conventions.
	ErrParityMismatch = errors.New("wigner: argument not divisible by ient")

	// ErrFactorialOverflow indicates a derived quantum number exceeds the
	// supported factorial lookup domain; the requested order is infeasible.
	ErrFactorialOverflow = errors.New("wigner: argument exceeds factorial lookup domain")

	// ErrFactorialRange indicates an internal factorial index fell outside
	// the table. Reaching it means the caller bypassed the domain checks.
	ErrFactorialRange = errors.New("wigner: factorial lookup index out of range")
)

// logFactorials returns the shared table of ln(n!) with the historical
// 1-based layout: entry i holds ln((i-1)!). Built once, immutable after.
var logFactorials = sync.OnceValue(func() []float64 {
	values := make([]float64, idim+2)
	for i := 1; i <= idim; i++ {
		values[i+1] = values[i] + math.Log(float64(i))
	}
	return values
})

// logFact looks up ln((index-1)!) with the table's 1-based convention.
func logFact(index int) (float64, error) {
	if index < 1 || index > idim+1 {
		return 0, fmt.Errorf("wigner: index %d: %w", index, ErrFactorialRange)
	}
	return logFactorials()[index], nil
}

// mod is the non-negative remainder of value modulo modulus.
func mod(value, modulus int) int {
	r := value % modulus
	if r < 0 {
		r += modulus
	}
	return r
}

// paritySign is (-1)^exponent.
func paritySign(exponent int) float64 {
	if mod(exponent, 2) == 0 {
		return 1.0
	}
	return -1.0
}

// checkedDiv divides value by ient, failing with ErrParityMismatch when the
// division is not exact.
func checkedDiv(expression string, value, ient int) (int, error) {
	if mod(value, ient) != 0 {
		return 0, fmt.Errorf("wigner: %s=%d not divisible by ient=%d: %w",
			expression, value, ient, ErrParityMismatch)
	}
	return value / ient, nil
}
