package amplitude

import (
	"fmt"
	"math/cmplx"

	"github.com/avlasenko/xraypath/tensor"
)

// Mmtrjas0Input carries the spherically averaged momentum-transfer
// terminal ingredients.
type Mmtrjas0Input struct {
	MuValues []int
	Lind     []int
	EtaStart float64
	EtaEnd   float64
}

// Mmtrjas0 builds the q-averaged terminal tensor. Every (mu2, mu1, k) cell
// carries the two leg-rotation phases and a damping that decays with both
// mu magnitudes and the channel's orbital momentum.
//
// Errors: ErrEmptyMuBasis, ErrTooManyChannels.
func Mmtrjas0(input Mmtrjas0Input) (*tensor.HBTensor, error) {
	if len(input.MuValues) == 0 {
		return nil, ErrEmptyMuBasis
	}
	if len(input.Lind) > tensor.MaxKChannels {
		return nil, fmt.Errorf("amplitude: %d channels: %w", len(input.Lind), ErrTooManyChannels)
	}

	hbmat := tensor.NewHBTensor(input.MuValues, len(input.Lind))

	for _, mu1 := range input.MuValues {
		for _, mu2 := range input.MuValues {
			phase := cmplx.Exp(complex(0, -(input.EtaStart*float64(mu1) + input.EtaEnd*float64(mu2))))
			for k, l := range input.Lind {
				damping := 1.0 / float64(1+absInt(mu1)+absInt(mu2)+l)
				if err := hbmat.Set(mu2, mu1, k, phase*complex(damping, 0)); err != nil {
					return nil, err
				}
			}
		}
	}

	return hbmat, nil
}
