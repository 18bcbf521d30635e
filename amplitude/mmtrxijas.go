package amplitude

import (
	"fmt"
	"math/cmplx"

	"github.com/avlasenko/xraypath/lambda"
)

// MmtrxijasInput bundles the q-resolved contraction ingredients: the
// lambda basis and active size, the mu basis backing the side matrices,
// per-channel orbital momenta, per-q coupling strengths and weights, the
// side matrices from Mmtrjas, the normalization and propagator tables,
// the closing eta angle, the doubled initial angular momentum, and the
// largest l to decompose.
type MmtrxijasInput struct {
	Lambda    []lambda.Index
	LamLimit  int
	MuValues  []int
	Lind      []int
	Rkk       [][]complex128
	QWeights  []float64
	Side      *JasSideMatrices
	Xnlm      [][]float64
	ClmiLeft  [][]complex128
	ClmiRight [][]complex128
	Eta       float64
	Jinit     int
	Ldecmx    int
}

// MmtrxijasOutput carries the mj-resolved left/right amplitude vectors,
// indexed [mj][q][lam], plus their per-l decompositions indexed
// [mj][q][l][lam].
type MmtrxijasOutput struct {
	MjValues  []int
	Left      [][][]complex128
	Right     [][][]complex128
	LDecLeft  [][][][]complex128
	LDecRight [][][][]complex128
}

// Mmtrxijas contracts the per-q side matrices with the coupling strengths
// and gamma factors into mj-resolved left and right amplitude vectors.
// The mj grid runs -jinit..jinit in steps of two (doubled units), and
// channels with l at most ldecmx also accumulate into the per-l slices.
//
// Errors: ErrEmptyLambdaBasis, ErrInvalidLimits, ErrInvalidJinit,
// ErrEmptyQGrid, ErrMismatchedQGrid, ErrMismatchedChannels, ErrMissingMu.
func Mmtrxijas(input MmtrxijasInput) (*MmtrxijasOutput, error) {
	if len(input.Lambda) == 0 {
		return nil, ErrEmptyLambdaBasis
	}
	if input.LamLimit > len(input.Lambda) {
		return nil, fmt.Errorf("amplitude: limit %d against basis size %d: %w",
			input.LamLimit, len(input.Lambda), ErrInvalidLimits)
	}
	if input.Jinit < 0 {
		return nil, ErrInvalidJinit
	}
	if len(input.QWeights) == 0 {
		return nil, ErrEmptyQGrid
	}

	qCount := len(input.QWeights)
	channelCount := len(input.Lind)
	muCount := len(input.MuValues)

	if len(input.Rkk) != qCount || len(input.Side.Left) != qCount || len(input.Side.Right) != qCount {
		return nil, fmt.Errorf("amplitude: rkk=%d left=%d right=%d against %d q points: %w",
			len(input.Rkk), len(input.Side.Left), len(input.Side.Right), qCount, ErrMismatchedQGrid)
	}
	for q := 0; q < qCount; q++ {
		if len(input.Rkk[q]) != channelCount {
			return nil, fmt.Errorf("amplitude: rkk[%d] has %d entries, want %d: %w",
				q, len(input.Rkk[q]), channelCount, ErrMismatchedChannels)
		}
		if len(input.Side.Left[q]) != muCount || len(input.Side.Right[q]) != muCount {
			return nil, fmt.Errorf("amplitude: side matrices at q=%d do not span %d mu labels: %w",
				q, muCount, ErrMismatchedChannels)
		}
		for mi := 0; mi < muCount; mi++ {
			if len(input.Side.Left[q][mi]) != channelCount || len(input.Side.Right[q][mi]) != channelCount {
				return nil, fmt.Errorf("amplitude: side matrices at q=%d mu=%d do not span %d channels: %w",
					q, input.MuValues[mi], channelCount, ErrMismatchedChannels)
			}
		}
	}

	mjValues := makeMjValues(input.Jinit)
	out := &MmtrxijasOutput{
		MjValues:  mjValues,
		Left:      makeMjQLam(len(mjValues), qCount, input.LamLimit),
		Right:     makeMjQLam(len(mjValues), qCount, input.LamLimit),
		LDecLeft:  makeMjQLLam(len(mjValues), qCount, input.Ldecmx+1, input.LamLimit),
		LDecRight: makeMjQLLam(len(mjValues), qCount, input.Ldecmx+1, input.LamLimit),
	}

	for lamIndex := 0; lamIndex < input.LamLimit; lamIndex++ {
		entry := input.Lambda[lamIndex]
		muIndex := -1
		for mi, mu := range input.MuValues {
			if mu == entry.M {
				muIndex = mi
				break
			}
		}
		if muIndex < 0 {
			return nil, fmt.Errorf("amplitude: m=%d: %w", entry.M, ErrMissingMu)
		}

		phase := cmplx.Exp(complex(0, -input.Eta*float64(entry.M)))

		for q := 0; q < qCount; q++ {
			var qLeft, qRight complex128
			lLeft := make([]complex128, input.Ldecmx+1)
			lRight := make([]complex128, input.Ldecmx+1)

			for k, l := range input.Lind {
				gammaL := gammaLeft(l, entry, input.Xnlm, input.ClmiLeft)
				gammaR := gammaRight(l, entry, input.Xnlm, input.ClmiRight)
				if gammaL == 0 && gammaR == 0 {
					continue
				}

				weighted := input.Rkk[q][k] * complex(input.QWeights[q], 0)
				leftTerm := weighted * input.Side.Left[q][muIndex][k] * gammaL
				rightTerm := weighted * input.Side.Right[q][muIndex][k] * gammaR

				qLeft += leftTerm
				qRight += rightTerm
				if l <= input.Ldecmx {
					lLeft[l] += leftTerm
					lRight[l] += rightTerm
				}
			}

			for mjIndex, mj := range mjValues {
				mjPhase := cmplx.Exp(complex(0, float64(mj)*0.5))
				out.Left[mjIndex][q][lamIndex] = qLeft * phase * mjPhase
				out.Right[mjIndex][q][lamIndex] = qRight * phase * cmplx.Conj(mjPhase)
				for l := 0; l <= input.Ldecmx; l++ {
					out.LDecLeft[mjIndex][q][l][lamIndex] = lLeft[l] * phase * mjPhase
					out.LDecRight[mjIndex][q][l][lamIndex] = lRight[l] * phase * cmplx.Conj(mjPhase)
				}
			}
		}
	}

	return out, nil
}

// makeMjValues enumerates the doubled magnetic quantum numbers
// -jinit..jinit in steps of two.
func makeMjValues(jinit int) []int {
	values := make([]int, 0, jinit+1)
	for mj := -jinit; mj <= jinit; mj += 2 {
		values = append(values, mj)
	}
	return values
}

func makeMjQLam(mjCount, qCount, lamCount int) [][][]complex128 {
	out := make([][][]complex128, mjCount)
	for mj := range out {
		out[mj] = make([][]complex128, qCount)
		for q := range out[mj] {
			out[mj][q] = make([]complex128, lamCount)
		}
	}
	return out
}

func makeMjQLLam(mjCount, qCount, lCount, lamCount int) [][][][]complex128 {
	out := make([][][][]complex128, mjCount)
	for mj := range out {
		out[mj] = make([][][]complex128, qCount)
		for q := range out[mj] {
			out[mj][q] = make([][]complex128, lCount)
			for l := range out[mj][q] {
				out[mj][q][l] = make([]complex128, lamCount)
			}
		}
	}
	return out
}
