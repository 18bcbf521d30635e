package amplitude_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasenko/xraypath/amplitude"
	"github.com/avlasenko/xraypath/lambda"
)

func wideXnlm() [][]float64 {
	return [][]float64{
		{1.0, 1.0, 1.0},
		{1.0, 2.0, 2.5},
		{1.0, 3.0, 3.5},
		{1.0, 4.0, 4.5},
	}
}

func wideClmi() [][]complex128 {
	rows := [][]complex128{
		repeatComplex(complex(0.0, 0.0), 4),
		repeatComplex(complex(1.0, 0.0), 4),
		repeatComplex(complex(0.75, 0.25), 4),
		repeatComplex(complex(0.5, -0.2), 4),
	}
	return rows
}

func repeatComplex(value complex128, count int) []complex128 {
	row := make([]complex128, count)
	for i := range row {
		row[i] = value
	}
	return row
}

func TestFmtrxi_BuildsNonZeroScatteringMatrix(t *testing.T) {
	basis := []lambda.Index{{M: 0, N: 0}, {M: 1, N: 0}}
	matrix, err := amplitude.Fmtrxi(amplitude.FmtrxiInput{
		Lambda:    basis,
		Lam1Limit: 2,
		Lam2Limit: 2,
		PhaseShifts: []complex128{
			complex(0.0, 0.0),
			complex(1.0, 0.0),
			complex(0.8, 0.1),
			complex(0.6, -0.2),
		},
		Xnlm:      wideXnlm(),
		ClmiLeft:  wideClmi(),
		ClmiRight: wideClmi(),
		Eta:       0.2,
	})
	require.NoError(t, err)

	diagonal, err := matrix.Get(0, 0)
	require.NoError(t, err)
	offDiagonal, err := matrix.Get(1, 0)
	require.NoError(t, err)
	assert.Greater(t, cmplx.Abs(diagonal), 0.0)
	assert.Greater(t, cmplx.Abs(offDiagonal), 0.0)
}

func TestFmtrxi_EtaPhaseChangesNonZeroMRows(t *testing.T) {
	basis := []lambda.Index{{M: 1, N: 0}}
	build := func(eta float64) complex128 {
		matrix, err := amplitude.Fmtrxi(amplitude.FmtrxiInput{
			Lambda:      basis,
			Lam1Limit:   1,
			Lam2Limit:   1,
			PhaseShifts: []complex128{complex(0.0, 0.0), complex(1.0, 0.0)},
			Xnlm:        wideXnlm(),
			ClmiLeft:    wideClmi(),
			ClmiRight:   wideClmi(),
			Eta:         eta,
		})
		require.NoError(t, err)
		value, err := matrix.Get(0, 0)
		require.NoError(t, err)
		return value
	}

	assert.NotEqual(t, build(0.4), build(0.0))
}

func TestFmtrxi_ZeroEtaIsInvariantUnderMSignFlip(t *testing.T) {
	basis := []lambda.Index{{M: 1, N: 0}, {M: -1, N: 0}}
	matrix, err := amplitude.Fmtrxi(amplitude.FmtrxiInput{
		Lambda:    basis,
		Lam1Limit: 2,
		Lam2Limit: 2,
		PhaseShifts: []complex128{
			complex(0.0, 0.0),
			complex(1.0, 0.0),
			complex(0.8, 0.1),
		},
		Xnlm:      wideXnlm(),
		ClmiLeft:  wideClmi(),
		ClmiRight: wideClmi(),
		Eta:       0.0,
	})
	require.NoError(t, err)

	plus, err := matrix.Get(0, 0)
	require.NoError(t, err)
	minus, err := matrix.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, plus, minus)
}

func TestFmtrxi_RejectsEmptyBasisAndBadLimits(t *testing.T) {
	_, err := amplitude.Fmtrxi(amplitude.FmtrxiInput{})
	assert.ErrorIs(t, err, amplitude.ErrEmptyLambdaBasis)

	_, err = amplitude.Fmtrxi(amplitude.FmtrxiInput{
		Lambda:    []lambda.Index{{M: 0, N: 0}},
		Lam1Limit: 2,
		Lam2Limit: 1,
	})
	assert.ErrorIs(t, err, amplitude.ErrInvalidLimits)
}
