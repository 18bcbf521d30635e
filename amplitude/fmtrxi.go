package amplitude

import (
	"fmt"
	"math/cmplx"

	"github.com/avlasenko/xraypath/lambda"
	"github.com/avlasenko/xraypath/tensor"
)

// FmtrxiInput bundles the per-path ingredients of the polarized amplitude
// matrix: the lambda basis with row/column limits, per-l complex phase
// shifts, the normalization table rows, the bra/ket propagator coefficient
// tables, and the Euler eta angle of the terminating leg.
type FmtrxiInput struct {
	Lambda      []lambda.Index
	Lam1Limit   int
	Lam2Limit   int
	PhaseShifts []complex128
	Xnlm        [][]float64
	ClmiLeft    [][]complex128
	ClmiRight   [][]complex128
	Eta         float64
}

// Fmtrxi builds the lambda×lambda amplitude matrix.
//
// For each (lam1, lam2) pair within the limits the intermediate channel l
// runs from max(|m1|, |m2|, 1) up to the shortest of the supplied tables;
// terms with a vanishing normalization entry are skipped. Each row picks
// up the m-dependent phase exp(-i·eta·m1).
//
// Errors: ErrEmptyLambdaBasis, ErrInvalidLimits; tensor writes cannot fail
// after the up-front validation but any tensor error is still propagated.
// Complexity: O(Lam1Limit·Lam2Limit·ilmax).
func Fmtrxi(input FmtrxiInput) (*tensor.FMatrix, error) {
	if len(input.Lambda) == 0 {
		return nil, ErrEmptyLambdaBasis
	}
	if input.Lam1Limit > len(input.Lambda) || input.Lam2Limit > len(input.Lambda) {
		return nil, fmt.Errorf("amplitude: lam1=%d lam2=%d against basis size %d: %w",
			input.Lam1Limit, input.Lam2Limit, len(input.Lambda), ErrInvalidLimits)
	}

	lamCount := input.Lam1Limit
	if input.Lam2Limit > lamCount {
		lamCount = input.Lam2Limit
	}
	matrix := tensor.NewFMatrix(lamCount)
	if lamCount == 0 {
		return matrix, nil
	}

	ilmax := len(input.PhaseShifts)
	for _, length := range []int{len(input.Xnlm), len(input.ClmiLeft), len(input.ClmiRight)} {
		if length < ilmax {
			ilmax = length
		}
	}

	for lam1 := 0; lam1 < input.Lam1Limit; lam1++ {
		lambda1 := input.Lambda[lam1]
		for lam2 := 0; lam2 < input.Lam2Limit; lam2++ {
			lambda2 := input.Lambda[lam2]

			ilmin := absInt(lambda1.M)
			if absInt(lambda2.M) > ilmin {
				ilmin = absInt(lambda2.M)
			}
			if ilmin < 1 {
				ilmin = 1
			}

			var value complex128
			for il := ilmin; il < ilmax; il++ {
				gam := gammaLeft(il, lambda1, input.Xnlm, input.ClmiLeft)
				if gam == 0 {
					continue
				}
				gamtl := gammaRight(il, lambda2, input.Xnlm, input.ClmiRight)
				if gamtl == 0 {
					continue
				}
				value += gam * gamtl * input.PhaseShifts[il]
			}

			etaPhase := cmplx.Exp(complex(0, -input.Eta*float64(lambda1.M)))
			if err := matrix.Set(lam1, lam2, value*etaPhase); err != nil {
				return nil, err
			}
		}
	}

	return matrix, nil
}
