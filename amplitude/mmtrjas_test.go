package amplitude_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasenko/xraypath/amplitude"
	"github.com/avlasenko/xraypath/tensor"
)

func TestMmtrjas_BuildsLeftAndRightMatrices(t *testing.T) {
	matrices, err := amplitude.Mmtrjas(amplitude.MmtrjasInput{
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0, 1},
		QPhases:  []complex128{complex(1.0, 0.0), complex(0.0, 1.0)},
		QBeta:    []float64{0.0, 0.5},
		EtaStart: 0.1,
		EtaEnd:   0.2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, matrices.QCount())
	assert.Len(t, matrices.Left, 2)
	assert.Len(t, matrices.Left[0], 3)
	assert.Len(t, matrices.Left[0][0], 2)
}

func TestMmtrjas_AppliesDistinctLeftAndRightEtaPhases(t *testing.T) {
	matrices, err := amplitude.Mmtrjas(amplitude.MmtrjasInput{
		MuValues: []int{-1, 1},
		Lind:     []int{1},
		QPhases:  []complex128{complex(0.8, 0.2)},
		QBeta:    []float64{0.3},
		EtaStart: 0.0,
		EtaEnd:   0.7,
	})
	require.NoError(t, err)

	assert.NotEqual(t, matrices.Left[0][1][0], matrices.Right[0][1][0])
}

func TestMmtrjas_Validation(t *testing.T) {
	_, err := amplitude.Mmtrjas(amplitude.MmtrjasInput{
		QPhases: []complex128{complex(1.0, 0.0)},
		QBeta:   []float64{0.0},
	})
	assert.ErrorIs(t, err, amplitude.ErrEmptyMuBasis)

	_, err = amplitude.Mmtrjas(amplitude.MmtrjasInput{
		MuValues: []int{0},
	})
	assert.ErrorIs(t, err, amplitude.ErrEmptyQGrid)

	_, err = amplitude.Mmtrjas(amplitude.MmtrjasInput{
		MuValues: []int{0},
		QPhases:  []complex128{complex(1.0, 0.0), complex(0.0, 1.0)},
		QBeta:    []float64{0.0},
	})
	assert.ErrorIs(t, err, amplitude.ErrMismatchedQGrid)
}

func TestMmtrjas0_BuildsDampedPhaseTensor(t *testing.T) {
	hbmat, err := amplitude.Mmtrjas0(amplitude.Mmtrjas0Input{
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0, 1},
		EtaStart: 0.1,
		EtaEnd:   0.2,
	})
	require.NoError(t, err)

	value, err := hbmat.Get(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), value)

	damped, err := hbmat.Get(1, -1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, cmplx.Abs(damped), 1e-9)
}

func TestMmtrjas0_RejectsUnknownMuOnRead(t *testing.T) {
	hbmat, err := amplitude.Mmtrjas0(amplitude.Mmtrjas0Input{
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0},
	})
	require.NoError(t, err)

	_, err = hbmat.Get(2, 0, 0)
	assert.ErrorIs(t, err, tensor.ErrUnknownMu)
}
