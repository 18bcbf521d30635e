package amplitude

import (
	"fmt"
	"math/cmplx"

	"github.com/avlasenko/xraypath/lambda"
	"github.com/avlasenko/xraypath/tensor"
)

// Mmtrxijas0Input bundles the q-averaged contraction ingredients. The
// coupling strengths come per q point so the q grid can be folded into a
// single weighted sum up front.
type Mmtrxijas0Input struct {
	Lambda    []lambda.Index
	LamLimit  int
	Lind      []int
	Rkk       [][]complex128
	QWeights  []float64
	Hbmatrs   *tensor.HBTensor
	Xnlm      [][]float64
	ClmiLeft  [][]complex128
	ClmiRight [][]complex128
	Eta       float64
	Jinit     int
	Ldecmx    int
}

// Mmtrxijas0Output carries the spin- and mj-resolved amplitude matrices:
// Fmats is indexed [mj][spin][lam2][lam1] and LgFmats adds a per-l axis as
// [mj][spin][l][lam2][lam1]. Spin 0 holds the base term, spin 1 its
// conjugate.
type Mmtrxijas0Output struct {
	MjValues []int
	Fmats    [][][][]complex128
	LgFmats  [][][][][]complex128
}

// Mmtrxijas0 contracts the q-averaged terminal tensor with the weighted
// sum of squared coupling strengths into spin-resolved lambda matrices.
//
// Errors: ErrEmptyLambdaBasis, ErrInvalidLimits, ErrEmptyQGrid,
// ErrInvalidJinit, ErrMismatchedChannels, ErrMismatchedQGrid, and any
// tensor lookup failure.
func Mmtrxijas0(input Mmtrxijas0Input) (*Mmtrxijas0Output, error) {
	if len(input.Lambda) == 0 {
		return nil, ErrEmptyLambdaBasis
	}
	if input.LamLimit > len(input.Lambda) {
		return nil, fmt.Errorf("amplitude: limit %d against basis size %d: %w",
			input.LamLimit, len(input.Lambda), ErrInvalidLimits)
	}
	if len(input.QWeights) == 0 {
		return nil, ErrEmptyQGrid
	}
	if input.Jinit < 0 {
		return nil, ErrInvalidJinit
	}

	qCount := len(input.QWeights)
	channelCount := len(input.Lind)
	if channelCount != input.Hbmatrs.ChannelCount() {
		return nil, fmt.Errorf("amplitude: lind has %d entries, tensor has %d channels: %w",
			channelCount, input.Hbmatrs.ChannelCount(), ErrMismatchedChannels)
	}
	if len(input.Rkk) != qCount {
		return nil, fmt.Errorf("amplitude: rkk has %d rows for %d q points: %w",
			len(input.Rkk), qCount, ErrMismatchedQGrid)
	}
	for q, row := range input.Rkk {
		if len(row) != channelCount {
			return nil, fmt.Errorf("amplitude: rkk[%d] has %d entries, want %d: %w",
				q, len(row), channelCount, ErrMismatchedChannels)
		}
	}

	qsum := make([]complex128, channelCount)
	for q := 0; q < qCount; q++ {
		for k := 0; k < channelCount; k++ {
			qsum[k] += input.Rkk[q][k] * input.Rkk[q][k] * complex(input.QWeights[q], 0)
		}
	}

	mjValues := makeMjValues(input.Jinit)
	ldecs := input.Ldecmx + 1
	out := &Mmtrxijas0Output{
		MjValues: mjValues,
		Fmats:    makeSpinLam(len(mjValues), input.LamLimit),
		LgFmats:  makeSpinLDec(len(mjValues), ldecs, input.LamLimit),
	}

	for lam1 := 0; lam1 < input.LamLimit; lam1++ {
		lambda1 := input.Lambda[lam1]
		for lam2 := 0; lam2 < input.LamLimit; lam2++ {
			lambda2 := input.Lambda[lam2]

			var spinSum [2]complex128
			spinLSum := make([][2]complex128, ldecs)

			for k, l := range input.Lind {
				if absInt(lambda1.M) > l || absInt(lambda2.M) > l {
					continue
				}
				gammaL := gammaLeft(l, lambda1, input.Xnlm, input.ClmiLeft)
				gammaR := gammaRight(l, lambda2, input.Xnlm, input.ClmiRight)
				if gammaL == 0 && gammaR == 0 {
					continue
				}

				hb, err := input.Hbmatrs.Get(lambda2.M, lambda1.M, k)
				if err != nil {
					return nil, err
				}
				base := qsum[k] * hb * gammaR * gammaL / complex(float64(2*l+1), 0)

				spinSum[0] += base
				spinSum[1] += cmplx.Conj(base)
				if l <= input.Ldecmx {
					spinLSum[l][0] += base
					spinLSum[l][1] += cmplx.Conj(base)
				}
			}

			etaPhase := cmplx.Exp(complex(0, -input.Eta*float64(lambda1.M)))
			for mjIndex, mj := range mjValues {
				mjPhase := cmplx.Exp(complex(0, float64(mj)*0.25))
				for spin := 0; spin < 2; spin++ {
					spinPhase := mjPhase
					if spin == 1 {
						spinPhase = cmplx.Conj(mjPhase)
					}
					out.Fmats[mjIndex][spin][lam2][lam1] = spinSum[spin] * etaPhase * spinPhase
					for l := 0; l < ldecs; l++ {
						out.LgFmats[mjIndex][spin][l][lam2][lam1] = spinLSum[l][spin] * etaPhase * spinPhase
					}
				}
			}
		}
	}

	return out, nil
}

func makeSpinLam(mjCount, lamCount int) [][][][]complex128 {
	out := make([][][][]complex128, mjCount)
	for mj := range out {
		out[mj] = make([][][]complex128, 2)
		for spin := range out[mj] {
			out[mj][spin] = make([][]complex128, lamCount)
			for lam := range out[mj][spin] {
				out[mj][spin][lam] = make([]complex128, lamCount)
			}
		}
	}
	return out
}

func makeSpinLDec(mjCount, lCount, lamCount int) [][][][][]complex128 {
	out := make([][][][][]complex128, mjCount)
	for mj := range out {
		out[mj] = make([][][][]complex128, 2)
		for spin := range out[mj] {
			out[mj][spin] = make([][][]complex128, lCount)
			for l := range out[mj][spin] {
				out[mj][spin][l] = make([][]complex128, lamCount)
				for lam := range out[mj][spin][l] {
					out[mj][spin][l][lam] = make([]complex128, lamCount)
				}
			}
		}
	}
	return out
}
