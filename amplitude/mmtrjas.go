package amplitude

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/avlasenko/xraypath/tensor"
)

// MmtrjasInput carries the momentum-transfer terminal ingredients: the mu
// basis, per-channel orbital momenta, one complex phase and one beta angle
// per q point, and the eta angles of the first and last legs.
type MmtrjasInput struct {
	MuValues []int
	Lind     []int
	QPhases  []complex128
	QBeta    []float64
	EtaStart float64
	EtaEnd   float64
}

// JasSideMatrices holds the q-resolved left and right terminal factors,
// indexed as [q][mu][k].
type JasSideMatrices struct {
	Left  [][][]complex128
	Right [][][]complex128
}

// QCount reports the number of momentum-transfer points.
func (m *JasSideMatrices) QCount() int { return len(m.Left) }

// Mmtrjas builds the per-q terminal factors for momentum-transfer spectra.
// Each entry combines a mu-th power of the q phase, the leg-rotation
// phase, a tilt scale (1+cos beta)/2, and an orbital damping that differs
// between the two sides.
//
// Errors: ErrEmptyMuBasis, ErrEmptyQGrid, ErrMismatchedQGrid,
// ErrTooManyChannels.
func Mmtrjas(input MmtrjasInput) (*JasSideMatrices, error) {
	if len(input.MuValues) == 0 {
		return nil, ErrEmptyMuBasis
	}
	if len(input.QPhases) == 0 {
		return nil, ErrEmptyQGrid
	}
	if len(input.QBeta) != len(input.QPhases) {
		return nil, fmt.Errorf("amplitude: %d beta angles for %d q points: %w",
			len(input.QBeta), len(input.QPhases), ErrMismatchedQGrid)
	}
	if len(input.Lind) > tensor.MaxKChannels {
		return nil, fmt.Errorf("amplitude: %d channels: %w", len(input.Lind), ErrTooManyChannels)
	}

	qCount := len(input.QPhases)
	out := &JasSideMatrices{
		Left:  make([][][]complex128, qCount),
		Right: make([][][]complex128, qCount),
	}

	for q := 0; q < qCount; q++ {
		betaScale := 0.5 * (1 + math.Cos(input.QBeta[q]))
		left := make([][]complex128, len(input.MuValues))
		right := make([][]complex128, len(input.MuValues))

		for mi, mu := range input.MuValues {
			muPhase := powi(input.QPhases[q], mu)
			startPhase := cmplx.Exp(complex(0, -input.EtaStart*float64(mu)))
			endPhase := cmplx.Exp(complex(0, -input.EtaEnd*float64(mu)))

			left[mi] = make([]complex128, len(input.Lind))
			right[mi] = make([]complex128, len(input.Lind))
			for k, l := range input.Lind {
				lFactor := 1.0 / float64(1+l)
				left[mi][k] = muPhase * startPhase * complex(betaScale*(1+0.5*lFactor), 0)
				right[mi][k] = cmplx.Conj(muPhase) * endPhase * complex(betaScale*(1+lFactor), 0)
			}
		}
		out.Left[q] = left
		out.Right[q] = right
	}

	return out, nil
}
