// Package spharm builds the spherical-harmonic normalization table
// xnlm[l][m] = sqrt((2l+1)·(l-m)!/(l+m)!) used by the amplitude builders.
//
// Factorials are kept in scaled form flg[k] = flg[k-1]·k·afac with
// afac = 1/64, which keeps the ratios representable up to l = 105; the
// afac^m tail in each entry cancels the scaling exactly.
package spharm

import (
	"errors"
	"fmt"
	"math"
)

// factorialLimit bounds the scaled-factorial table: 2*(lmaxp1-1) may not
// exceed it.
const factorialLimit = 210

// afac is the factorial scaling constant 1/64.
const afac = 1.0 / 64.0

// Sentinel errors for normalization-table construction.
var (
	// ErrInvalidGrid indicates lmaxp1 or mmaxp1 was zero.
	ErrInvalidGrid = errors.New("spharm: lmaxp1 and mmaxp1 must both be positive")

	// ErrFactorialRange indicates the requested lmax needs factorials past
	// the supported table size.
	ErrFactorialRange = errors.New("spharm: factorial index exceeds supported limit")
)

// NormTable holds xnlm values on the triangular l >= m domain; entries
// outside the triangle are zero. Rows are indexed by l, columns by m.
type NormTable struct {
	lmaxp1 int
	mmaxp1 int
	xnlm   [][]float64
}

// Rows returns the number of l rows (lmaxp1).
func (t *NormTable) Rows() int { return t.lmaxp1 }

// Cols returns the number of m columns (mmaxp1).
func (t *NormTable) Cols() int { return t.mmaxp1 }

// At returns xnlm[l][m], or 0 outside the table bounds. The triangular
// zero-fill means callers never need to range-check m against l.
func (t *NormTable) At(l, m int) float64 {
	if l < 0 || l >= t.lmaxp1 || m < 0 || m >= t.mmaxp1 {
		return 0
	}
	return t.xnlm[l][m]
}

// Row returns the full m row for angular momentum l, or nil out of range.
// The slice aliases the table; treat it as read-only.
func (t *NormTable) Row(l int) []float64 {
	if l < 0 || l >= t.lmaxp1 {
		return nil
	}
	return t.xnlm[l]
}

// Values exposes the backing rows for bulk consumers like the amplitude
// builders. The slices alias the table; treat them as read-only.
func (t *NormTable) Values() [][]float64 {
	return t.xnlm
}

// Snlm builds the normalization table for l in [0, lmaxp1) and
// m in [0, min(mmaxp1, l+1)).
//
// Errors:
//   - ErrInvalidGrid     — either bound is zero.
//   - ErrFactorialRange  — 2*(lmaxp1-1) exceeds the supported table size (210).
//
// Complexity: O(lmaxp1·mmaxp1) time and memory.
func Snlm(lmaxp1, mmaxp1 int) (*NormTable, error) {
	if lmaxp1 <= 0 || mmaxp1 <= 0 {
		return nil, ErrInvalidGrid
	}

	lmax := lmaxp1 - 1
	required := 2 * lmax
	if required > factorialLimit {
		return nil, fmt.Errorf("spharm: lmax=%d requires factorial index %d, limit %d: %w",
			lmax, required, factorialLimit, ErrFactorialRange)
	}

	flg := scaledFactorials(required)
	xnlm := make([][]float64, lmaxp1)
	for il := range xnlm {
		row := make([]float64, mmaxp1)
		mmxp1 := mmaxp1
		if il+1 < mmxp1 {
			mmxp1 = il + 1
		}
		for im := 0; im < mmxp1; im++ {
			cnlm := float64(2*il+1) * flg[il-im] / flg[il+im]
			row[im] = math.Sqrt(cnlm) * math.Pow(afac, float64(im))
		}
		xnlm[il] = row
	}

	return &NormTable{lmaxp1: lmaxp1, mmaxp1: mmaxp1, xnlm: xnlm}, nil
}

// scaledFactorials builds flg[k] = k! * afac^k up to limit.
func scaledFactorials(limit int) []float64 {
	flg := make([]float64, limit+1)
	flg[0] = 1.0
	if limit >= 1 {
		flg[1] = afac
	}
	for i := 2; i <= limit; i++ {
		flg[i] = flg[i-1] * float64(i) * afac
	}
	return flg
}
