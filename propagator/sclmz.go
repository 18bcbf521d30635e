// Package propagator builds the clm(z) polynomial coefficients of the
// free-propagator expansion from a complex wavenumber-distance product
// rho. The coefficients feed the per-path amplitude matrix builders.
//
// The recursions follow the legacy numerical conventions of the reference
// implementation exactly, including their behavior near branch cuts; they
// are the compatibility contract, not a derivation target.
package propagator

import (
	"errors"
	"math/cmplx"
)

// Sentinel errors for coefficient construction.
var (
	// ErrInvalidGrid indicates lmaxp1 or mmaxp1 was zero.
	ErrInvalidGrid = errors.New("propagator: lmaxp1 and mmaxp1 must both be positive")

	// ErrZeroRho indicates |rho| was at or below machine epsilon.
	ErrZeroRho = errors.New("propagator: rho must be non-zero")
)

const epsilon = 2.220446049250313e-16

// Coeffs holds z = -i/rho and the triangular coefficient table
// Clmi[l][m], zero outside m <= l.
type Coeffs struct {
	Z    complex128
	Clmi [][]complex128
}

// Sclmz builds the coefficient table for l in [0, lmaxp1) and
// m in [0, mmaxp1).
//
// The m=0 column follows the three-term recursion
// clmi[l][0] = clmi[l-2][0] - z·(2l-1)·clmi[l-1][0] seeded by
// clmi[0][0]=1 and clmi[1][0]=1-z. Diagonal entries clmi[m][m] follow a
// multiplicative recursion in z, and a mixed recursion fills the interior
// from the left and lower neighbors.
//
// Errors: ErrInvalidGrid, ErrZeroRho.
// Complexity: O(lmaxp1·mmaxp1).
func Sclmz(rho complex128, lmaxp1, mmaxp1 int) (*Coeffs, error) {
	if lmaxp1 <= 0 || mmaxp1 <= 0 {
		return nil, ErrInvalidGrid
	}
	if cmplx.Abs(rho) <= epsilon {
		return nil, ErrZeroRho
	}

	clmi := make([][]complex128, lmaxp1)
	for l := range clmi {
		clmi[l] = make([]complex128, mmaxp1)
	}

	z := -complex(0, 1) / rho

	clmi[0][0] = 1
	if lmaxp1 > 1 {
		clmi[1][0] = clmi[0][0] - z
	}

	lmax := lmaxp1 - 1
	for l := 2; l <= lmax; l++ {
		clmi[l][0] = clmi[l-2][0] - z*complex(float64(2*l-1), 0)*clmi[l-1][0]
	}

	mmxp1 := mmaxp1
	if lmaxp1 < mmxp1 {
		mmxp1 = lmaxp1
	}

	cmm := complex128(1)
	for m := 1; m < mmxp1; m++ {
		cmm = -cmm * complex(float64(2*m-1), 0) * z
		clmi[m][m] = cmm

		if m < lmax {
			clmi[m+1][m] = cmm * complex(float64(2*m+1), 0) * (1 - z*complex(float64(m+1), 0))
		}

		for l := m + 1; l < lmax; l++ {
			clmi[l+1][m] = clmi[l-1][m] - z*complex(float64(2*l+1), 0)*(clmi[l][m]+clmi[l][m-1])
		}
	}

	return &Coeffs{Z: z, Clmi: clmi}, nil
}
