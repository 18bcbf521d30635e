package amplitude_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasenko/xraypath/amplitude"
	"github.com/avlasenko/xraypath/lambda"
)

func qSideMatrices(t *testing.T, qPhases []complex128, qBeta []float64) *amplitude.JasSideMatrices {
	t.Helper()
	matrices, err := amplitude.Mmtrjas(amplitude.MmtrjasInput{
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0, 1},
		QPhases:  qPhases,
		QBeta:    qBeta,
		EtaStart: 0.1,
		EtaEnd:   0.2,
	})
	require.NoError(t, err)
	return matrices
}

func TestMmtrxijas_BuildsWeightedLeftAndRightTensors(t *testing.T) {
	basis := []lambda.Index{{M: 0, N: 0}, {M: 1, N: 0}}
	output, err := amplitude.Mmtrxijas(amplitude.MmtrxijasInput{
		Lambda:   basis,
		LamLimit: 2,
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0, 1},
		Rkk: [][]complex128{
			{complex(1.0, 0.0), complex(0.5, 0.2)},
			{complex(0.7, -0.1), complex(0.4, 0.1)},
		},
		QWeights:  []float64{1.0, 0.5},
		Side:      qSideMatrices(t, []complex128{complex(1.0, 0.0), complex(0.0, 1.0)}, []float64{0.0, 0.4}),
		Xnlm:      narrowXnlm(),
		ClmiLeft:  narrowClmi(),
		ClmiRight: narrowClmi(),
		Eta:       0.3,
		Jinit:     1,
		Ldecmx:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 1}, output.MjValues)
	require.Len(t, output.Left, 2)
	require.Len(t, output.Left[0], 2)
	assert.Greater(t, cmplx.Abs(output.Left[0][0][0]), 0.0)
	assert.Greater(t, cmplx.Abs(output.Right[1][1][1]), 0.0)
}

func TestMmtrxijas_ScalesWithQWeights(t *testing.T) {
	basis := []lambda.Index{{M: 0, N: 0}}
	build := func(weights []float64) *amplitude.MmtrxijasOutput {
		output, err := amplitude.Mmtrxijas(amplitude.MmtrxijasInput{
			Lambda:   basis,
			LamLimit: 1,
			MuValues: []int{-1, 0, 1},
			Lind:     []int{0, 1},
			Rkk: [][]complex128{
				{complex(1.0, 0.0), complex(0.5, 0.0)},
				{complex(1.0, 0.0), complex(0.5, 0.0)},
			},
			QWeights:  weights,
			Side:      qSideMatrices(t, []complex128{complex(1.0, 0.0), complex(0.0, 1.0)}, []float64{0.0, 0.4}),
			Xnlm:      narrowXnlm(),
			ClmiLeft:  narrowClmi(),
			ClmiRight: narrowClmi(),
			Jinit:     1,
			Ldecmx:    1,
		})
		require.NoError(t, err)
		return output
	}

	base := build([]float64{1.0, 1.0})
	reduced := build([]float64{0.2, 0.2})
	assert.Greater(t, cmplx.Abs(base.Left[0][0][0]), cmplx.Abs(reduced.Left[0][0][0]))
}

func TestMmtrxijas_RejectsMissingMuBasisMember(t *testing.T) {
	basis := []lambda.Index{{M: 2, N: 0}}
	_, err := amplitude.Mmtrxijas(amplitude.MmtrxijasInput{
		Lambda:    basis,
		LamLimit:  1,
		MuValues:  []int{-1, 0, 1},
		Lind:      []int{0, 1},
		Rkk:       [][]complex128{{complex(1.0, 0.0), complex(0.5, 0.0)}},
		QWeights:  []float64{1.0},
		Side:      qSideMatrices(t, []complex128{complex(1.0, 0.0)}, []float64{0.0}),
		Xnlm:      narrowXnlm(),
		ClmiLeft:  narrowClmi(),
		ClmiRight: narrowClmi(),
		Jinit:     1,
		Ldecmx:    1,
	})
	assert.ErrorIs(t, err, amplitude.ErrMissingMu)
}

func TestMmtrxijas_RejectsNegativeJinit(t *testing.T) {
	_, err := amplitude.Mmtrxijas(amplitude.MmtrxijasInput{
		Lambda:   []lambda.Index{{M: 0, N: 0}},
		LamLimit: 1,
		Jinit:    -1,
	})
	assert.ErrorIs(t, err, amplitude.ErrInvalidJinit)
}

func TestMmtrxijas0_BuildsSpinResolvedOutput(t *testing.T) {
	hbmat, err := amplitude.Mmtrjas0(amplitude.Mmtrjas0Input{
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0, 1},
		EtaStart: 0.1,
		EtaEnd:   0.2,
	})
	require.NoError(t, err)

	basis := []lambda.Index{{M: 0, N: 0}, {M: 1, N: 0}}
	output, err := amplitude.Mmtrxijas0(amplitude.Mmtrxijas0Input{
		Lambda:   basis,
		LamLimit: 2,
		Lind:     []int{0, 1},
		Rkk: [][]complex128{
			{complex(1.0, 0.0), complex(0.5, 0.1)},
			{complex(0.7, -0.2), complex(0.4, 0.2)},
		},
		QWeights:  []float64{1.0, 0.5},
		Hbmatrs:   hbmat,
		Xnlm:      narrowXnlm(),
		ClmiLeft:  narrowClmi(),
		ClmiRight: narrowClmi(),
		Eta:       0.3,
		Jinit:     1,
		Ldecmx:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 1}, output.MjValues)
	assert.Greater(t, cmplx.Abs(output.Fmats[0][0][0][0]), 0.0)
	assert.Greater(t, cmplx.Abs(output.Fmats[1][1][1][1]), 0.0)
}

func TestMmtrxijas0_ScalesWithQWeights(t *testing.T) {
	hbmat, err := amplitude.Mmtrjas0(amplitude.Mmtrjas0Input{
		MuValues: []int{-1, 0, 1},
		Lind:     []int{0, 1},
	})
	require.NoError(t, err)

	basis := []lambda.Index{{M: 0, N: 0}}
	build := func(weight float64) *amplitude.Mmtrxijas0Output {
		output, err := amplitude.Mmtrxijas0(amplitude.Mmtrxijas0Input{
			Lambda:    basis,
			LamLimit:  1,
			Lind:      []int{0, 1},
			Rkk:       [][]complex128{{complex(1.0, 0.0), complex(0.5, 0.0)}},
			QWeights:  []float64{weight},
			Hbmatrs:   hbmat,
			Xnlm:      narrowXnlm(),
			ClmiLeft:  narrowClmi(),
			ClmiRight: narrowClmi(),
			Jinit:     1,
			Ldecmx:    1,
		})
		require.NoError(t, err)
		return output
	}

	strong := build(1.0)
	weak := build(0.2)
	assert.Greater(t, cmplx.Abs(strong.Fmats[0][0][0][0]), cmplx.Abs(weak.Fmats[0][0][0][0]))
}
