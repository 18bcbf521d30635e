package amplitude

import (
	"fmt"
	"math/cmplx"

	"github.com/avlasenko/xraypath/tensor"
)

// MmtrInput carries the terminal-matrix ingredients: the sorted mu basis,
// the orbital momentum of each k-channel, the diagonal of the dipole
// matrix, and the Euler eta angles of the first and last legs.
type MmtrInput struct {
	MuValues     []int
	Lind         []int
	BmatDiagonal []complex128
	EtaStart     float64
	EtaEnd       float64
	Polarized    bool
}

// Mmtr assembles the terminal tensor that closes the scattering path at
// the absorber. In the polarized case every (mu1,k1,mu2,k2) cell carries
// the product of two dipole diagonal entries, a leg-rotation phase, and a
// geometric damping that decays with the mu and l separation. In the
// unpolarized case cross-channel cells stay zero and the diagonal entries
// are real.
//
// Errors: ErrEmptyMuBasis, ErrMismatchedChannels, ErrTooManyChannels.
func Mmtr(input MmtrInput) (*tensor.BTensor, error) {
	if len(input.MuValues) == 0 {
		return nil, ErrEmptyMuBasis
	}
	if len(input.Lind) != len(input.BmatDiagonal) {
		return nil, fmt.Errorf("amplitude: lind has %d entries, diagonal has %d: %w",
			len(input.Lind), len(input.BmatDiagonal), ErrMismatchedChannels)
	}
	if len(input.Lind) > tensor.MaxKChannels {
		return nil, fmt.Errorf("amplitude: %d channels: %w", len(input.Lind), ErrTooManyChannels)
	}

	bmat := tensor.NewBTensor(input.MuValues, len(input.Lind))

	for _, mu1 := range input.MuValues {
		for _, mu2 := range input.MuValues {
			muGap := absInt(mu1 - mu2)
			if input.Polarized {
				for k1, l1 := range input.Lind {
					for k2, l2 := range input.Lind {
						angular := 1.0 / float64(1+muGap+absInt(l1-l2))
						phase := cmplx.Exp(complex(0, -(input.EtaEnd*float64(mu2) + input.EtaStart*float64(mu1))))
						value := input.BmatDiagonal[k1] * cmplx.Conj(input.BmatDiagonal[k2]) *
							phase * complex(angular, 0)
						if err := bmat.Add(mu1, k1, mu2, k2, value); err != nil {
							return nil, err
						}
					}
				}
				continue
			}
			for k, l := range input.Lind {
				angular := 1.0 / float64(1+muGap+l)
				value := input.BmatDiagonal[k] * complex(angular, 0)
				if err := bmat.Add(mu1, k, mu2, k, value); err != nil {
					return nil, err
				}
			}
		}
	}

	return bmat, nil
}
