package wigner

import (
	"fmt"
	"math"
)

// Threej evaluates the Wigner 3j coefficient
//
//	( j1/ient  j2/ient  j3/ient )
//	( m1/ient  m2/ient  m3/ient )
//
// with m3 = -(m1+m2). All arguments are doubled quantum numbers scaled by
// ient: ient=1 for integer angular momenta, ient=2 for half-integer ones.
//
// Selection rules (m-sum, triangle inequality, |m|>j, total-j parity)
// return 0.0 with a nil error — a physical null, not a failure. Errors:
//   - ErrInvalidIent        — ient outside {1,2}.
//   - ErrParityMismatch     — a derived quantum number is not divisible by ient.
//   - ErrFactorialOverflow  — the requested order exceeds the lookup table.
//
// Evaluation follows the Racah single-sum formula over precomputed
// log-factorials, with alternating signs and a final (-1)^(j1-j2-m3) flip.
// Complexity: O(min0-max0) table lookups per call.
func Threej(j1, j2, j3, m1, m2, ient int) (float64, error) {
	if ient != 1 && ient != 2 {
		return 0, fmt.Errorf("wigner: ient=%d: %w", ient, ErrInvalidIent)
	}
	m3 := -m1 - m2
	ii := ient + ient

	// Stretched m=0 column: total angular momentum must be even.
	if abs(m1)+abs(m2) == 0 && mod(j1+j2+j3, ii) != 0 {
		return 0, nil
	}

	m := [12]int{
		j1 + j2 - j3,
		j2 + j3 - j1,
		j3 + j1 - j2,
		j1 + m1,
		j1 - m1,
		j2 + m2,
		j2 - m2,
		j3 + m3,
		j3 - m3,
		j1 + j2 + j3 + ient,
		j2 - j3 - m1,
		j1 - j3 + m2,
	}
	for index := range m {
		// Triangle and |m|<=j rules live in the first ten entries.
		if index < 10 && m[index] < 0 {
			return 0, nil
		}
		if mod(m[index], ient) != 0 {
			return 0, fmt.Errorf("wigner: argument %d=%d not divisible by ient=%d: %w",
				index+1, m[index], ient, ErrParityMismatch)
		}
		m[index] /= ient
		if m[index] > idim {
			return 0, fmt.Errorf("wigner: argument %d=%d exceeds max=%d: %w",
				index+1, m[index], idim, ErrFactorialOverflow)
		}
	}

	max0 := maxOf(m[10], m[11], 0) + 1
	min0 := minOf(m[0], m[4], m[5]) + 1

	sign := 1.0
	if mod(max0-1, 2) != 0 {
		sign = -sign
	}

	c, err := logFact(m[9] + 1)
	if err != nil {
		return 0, err
	}
	c = -c
	for _, entry := range m[:9] {
		term, lookupErr := logFact(entry + 1)
		if lookupErr != nil {
			return 0, lookupErr
		}
		c += term
	}
	c *= 0.5

	value := 0.0
	for i := max0; i <= min0; i++ {
		j := 2 - i
		b := 0.0
		for _, index := range [6]int{i, j + m[0], j + m[4], j + m[5], i - m[10], i - m[11]} {
			term, lookupErr := logFact(index)
			if lookupErr != nil {
				return 0, lookupErr
			}
			b += term
		}
		value += sign * math.Exp(c-b)
		sign = -sign
	}

	if mod(j1-j2-m3, ii) != 0 {
		value = -value
	}
	return value, nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

func maxOf(first int, rest ...int) int {
	result := first
	for _, value := range rest {
		if value > result {
			result = value
		}
	}
	return result
}

func minOf(first int, rest ...int) int {
	result := first
	for _, value := range rest {
		if value < result {
			result = value
		}
	}
	return result
}
