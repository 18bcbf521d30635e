package amplitude_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasenko/xraypath/amplitude"
)

func TestMmtr_PolarizedPopulatesCrossChannelEntries(t *testing.T) {
	matrix, err := amplitude.Mmtr(amplitude.MmtrInput{
		MuValues:     []int{-1, 0, 1},
		Lind:         []int{0, 1},
		BmatDiagonal: []complex128{complex(1.0, 0.0), complex(0.5, 0.25)},
		EtaStart:     0.1,
		EtaEnd:       0.2,
		Polarized:    true,
	})
	require.NoError(t, err)

	value, err := matrix.Get(-1, 0, 1, 1)
	require.NoError(t, err)
	assert.Greater(t, cmplx.Abs(value), 0.0)
}

func TestMmtr_UnpolarizedKeepsChannelDiagonal(t *testing.T) {
	matrix, err := amplitude.Mmtr(amplitude.MmtrInput{
		MuValues:     []int{-1, 0, 1},
		Lind:         []int{0, 1},
		BmatDiagonal: []complex128{complex(1.0, 0.0), complex(2.0, 0.0)},
	})
	require.NoError(t, err)

	diagonal, err := matrix.Get(0, 1, 0, 1)
	require.NoError(t, err)
	offDiagonal, err := matrix.Get(0, 0, 0, 1)
	require.NoError(t, err)

	assert.Greater(t, cmplx.Abs(diagonal), 0.0)
	assert.Equal(t, complex128(0), offDiagonal)
}

func TestMmtr_Validation(t *testing.T) {
	_, err := amplitude.Mmtr(amplitude.MmtrInput{
		Lind:         []int{0},
		BmatDiagonal: []complex128{complex(1.0, 0.0)},
	})
	assert.ErrorIs(t, err, amplitude.ErrEmptyMuBasis)

	_, err = amplitude.Mmtr(amplitude.MmtrInput{
		MuValues:     []int{0},
		Lind:         []int{0, 1},
		BmatDiagonal: []complex128{complex(1.0, 0.0)},
	})
	assert.ErrorIs(t, err, amplitude.ErrMismatchedChannels)

	_, err = amplitude.Mmtr(amplitude.MmtrInput{
		MuValues:     []int{0},
		Lind:         make([]int, 9),
		BmatDiagonal: make([]complex128, 9),
	})
	assert.ErrorIs(t, err, amplitude.ErrTooManyChannels)
}
