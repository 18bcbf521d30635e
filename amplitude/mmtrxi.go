package amplitude

import (
	"fmt"
	"math/cmplx"

	"github.com/avlasenko/xraypath/lambda"
	"github.com/avlasenko/xraypath/tensor"
)

// MmtrxiInput bundles the terminal contraction ingredients: the lambda
// basis and its active size, per-channel orbital momenta, the terminal
// tensor from Mmtr, the complex coupling strengths, the normalization and
// propagator tables, and the eta angle of the closing leg.
type MmtrxiInput struct {
	Lambda    []lambda.Index
	LamLimit  int
	Lind      []int
	Bmati     *tensor.BTensor
	Rkk       []complex128
	Xnlm      [][]float64
	ClmiLeft  [][]complex128
	ClmiRight [][]complex128
	Eta       float64
}

// Mmtrxi contracts the terminal tensor with the coupling strengths and the
// gamma factors into a lambda×lambda matrix. Channel pairs whose orbital
// momentum cannot support the lambda projections are skipped.
//
// Errors: ErrEmptyLambdaBasis, ErrInvalidLimits, ErrLindLength,
// ErrRkkLength, and ErrUnknownMu when a lambda projection is missing from
// the terminal tensor's basis.
func Mmtrxi(input MmtrxiInput) (*tensor.FMatrix, error) {
	if len(input.Lambda) == 0 {
		return nil, ErrEmptyLambdaBasis
	}
	if input.LamLimit > len(input.Lambda) {
		return nil, fmt.Errorf("amplitude: limit %d against basis size %d: %w",
			input.LamLimit, len(input.Lambda), ErrInvalidLimits)
	}

	channelCount := input.Bmati.ChannelCount()
	if len(input.Lind) != channelCount {
		return nil, fmt.Errorf("amplitude: lind has %d entries, tensor has %d channels: %w",
			len(input.Lind), channelCount, ErrLindLength)
	}
	if len(input.Rkk) != channelCount {
		return nil, fmt.Errorf("amplitude: rkk has %d entries, tensor has %d channels: %w",
			len(input.Rkk), channelCount, ErrRkkLength)
	}

	matrix := tensor.NewFMatrix(input.LamLimit)

	for lam1 := 0; lam1 < input.LamLimit; lam1++ {
		lambda1 := input.Lambda[lam1]
		for lam2 := 0; lam2 < input.LamLimit; lam2++ {
			lambda2 := input.Lambda[lam2]

			var value complex128
			for k1, l1 := range input.Lind {
				if absInt(lambda1.M) > l1 {
					continue
				}
				gam := gammaLeft(l1, lambda1, input.Xnlm, input.ClmiLeft)
				if gam == 0 {
					continue
				}
				for k2, l2 := range input.Lind {
					if absInt(lambda2.M) > l2 {
						continue
					}
					gamtl := gammaRight(l2, lambda2, input.Xnlm, input.ClmiRight)
					if gamtl == 0 {
						continue
					}
					bm, err := input.Bmati.Get(lambda1.M, k1, lambda2.M, k2)
					if err != nil {
						return nil, err
					}
					value += bm * input.Rkk[k1] * input.Rkk[k2] * gam * gamtl
				}
			}

			etaPhase := cmplx.Exp(complex(0, -input.Eta*float64(lambda1.M)))
			if err := matrix.Set(lam1, lam2, value*etaPhase); err != nil {
				return nil, err
			}
		}
	}

	return matrix, nil
}
