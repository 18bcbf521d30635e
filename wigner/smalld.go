package wigner

import (
	"fmt"
	"math"
)

// SmallD evaluates the Wigner small-d rotation element d^j_{m1,m2}(beta)
// for j = jj/ient, m1' = m1/ient, m2' = m2/ient.
//
// The (m1,m2) pair is first canonicalized into the symmetric case
// m1>=0 && |m1|>=|m2| (tracking an overall sign and possibly flipping the
// sign of beta), then the element is summed as a log-factorial series in
// cos(beta/2) and sin(beta/2) powers.
//
// Errors mirror Threej: ErrInvalidIent, ErrParityMismatch,
// ErrFactorialOverflow.
func SmallD(beta float64, jj, m1, m2, ient int) (float64, error) {
	if ient != 1 && ient != 2 {
		return 0, fmt.Errorf("wigner: ient=%d: %w", ient, ErrInvalidIent)
	}

	var (
		m1p, m2p int
		betap    float64
		isign    float64
	)
	switch {
	case m1 >= 0 && abs(m1) >= abs(m2):
		m1p, m2p, betap, isign = m1, m2, beta, 1.0
	case m2 >= 0 && abs(m2) >= abs(m1):
		m1p, m2p, betap, isign = m2, m1, -beta, 1.0
	case m1 <= 0 && abs(m1) >= abs(m2):
		exponent, err := checkedDiv("m1-m2", m1-m2, ient)
		if err != nil {
			return 0, err
		}
		m1p, m2p, betap, isign = -m1, -m2, beta, paritySign(exponent)
	default:
		exponent, err := checkedDiv("m2-m1", m2-m1, ient)
		if err != nil {
			return 0, err
		}
		m1p, m2p, betap, isign = -m2, -m1, -beta, paritySign(exponent)
	}

	zeta := math.Cos(betap / 2.0)
	eta := math.Sin(betap / 2.0)

	temp := 0.0
	for it := m1p - m2p; it <= jj-m2p; it += ient {
		terms := [8]struct {
			expression string
			value      int
		}{
			{"jj+m1p", jj + m1p},
			{"jj-m1p", jj - m1p},
			{"jj+m2p", jj + m2p},
			{"jj-m2p", jj - m2p},
			{"jj+m1p-it", jj + m1p - it},
			{"jj-m2p-it", jj - m2p - it},
			{"it", it},
			{"m2p-m1p+it", m2p - m1p + it},
		}

		var m [8]int
		for index, term := range terms {
			reduced, err := checkedDiv(term.expression, term.value, ient)
			if err != nil {
				return 0, err
			}
			m[index] = 1 + reduced
			if m[index] > idim+1 {
				return 0, fmt.Errorf("wigner: m(%d)=%d exceeds max=%d: %w",
					index+1, m[index], idim+1, ErrFactorialOverflow)
			}
		}

		m9, err := checkedDiv("2*jj+m1p-m2p-2*it", 2*jj+m1p-m2p-2*it, ient)
		if err != nil {
			return 0, err
		}
		m10, err := checkedDiv("2*it-m1p+m2p", 2*it-m1p+m2p, ient)
		if err != nil {
			return 0, err
		}
		phase, err := checkedDiv("it", it, ient)
		if err != nil {
			return 0, err
		}

		factor := 0.0
		for index := 0; index < 4; index++ {
			numer, lookupErr := logFact(m[index])
			if lookupErr != nil {
				return 0, lookupErr
			}
			denom, lookupErr := logFact(m[index+4])
			if lookupErr != nil {
				return 0, lookupErr
			}
			factor += numer/2.0 - denom
		}

		contribution := paritySign(phase) * math.Exp(factor)
		if m9 != 0 {
			contribution *= math.Pow(zeta, float64(m9))
		}
		if m10 != 0 {
			contribution *= math.Pow(eta, float64(m10))
		}
		temp += contribution
	}

	return isign * temp, nil
}
