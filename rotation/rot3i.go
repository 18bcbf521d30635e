// Package rotation constructs per-l Wigner rotation matrices d^l(beta)
// with the closed-form small-d factorial formula. Each per-l matrix is
// square over m in [-mx, mx] with mx = min(l, mxp1-1), and every row has
// unit sum of squares for any beta (rotation unitarity).
package rotation

import (
	"errors"
	"fmt"
	"math"
)

// maxLSupported bounds the angular momentum for closed-form evaluation;
// plain float64 factorials stay exact enough below it.
const maxLSupported = 32

// Sentinel errors for rotation-matrix construction.
var (
	// ErrInvalidGrid indicates lxp1 or mxp1 was zero.
	ErrInvalidGrid = errors.New("rotation: lxp1 and mxp1 must both be positive")

	// ErrAngularMomentum indicates lmax exceeds the supported limit (32).
	ErrAngularMomentum = errors.New("rotation: angular momentum exceeds supported limit")
)

// Matrices holds one square rotation matrix per angular momentum level l.
// Row/column offsets map m in [-mx, mx] to [0, 2mx] per level.
type Matrices struct {
	matrices [][][]float64
	mxLimits []int
}

// LCount returns the number of per-l matrices (lxp1).
func (r *Matrices) LCount() int { return len(r.matrices) }

// MatrixForL returns the (2mx+1)x(2mx+1) matrix for level l, or nil when
// l is out of range. The slice aliases internal storage; treat as read-only.
func (r *Matrices) MatrixForL(l int) [][]float64 {
	if l < 0 || l >= len(r.matrices) {
		return nil
	}
	return r.matrices[l]
}

// Get returns the (m1, m2) entry of the level-l matrix. The second result
// is false when l is out of range or either |m| exceeds the level's mx.
func (r *Matrices) Get(l, m1, m2 int) (float64, bool) {
	if l < 0 || l >= len(r.mxLimits) {
		return 0, false
	}
	mx := r.mxLimits[l]
	if m1 < -mx || m1 > mx || m2 < -mx || m2 > mx {
		return 0, false
	}
	return r.matrices[l][m1+mx][m2+mx], true
}

// Rot3i builds rotation matrices for l in [0, lxp1) at Euler angle beta.
//
// Errors:
//   - ErrInvalidGrid      — either bound is zero.
//   - ErrAngularMomentum  — lxp1-1 exceeds the supported l-limit.
//
// Complexity: O(lxp1 · mx² · l) factorial-series terms.
func Rot3i(lxp1, mxp1 int, beta float64) (*Matrices, error) {
	if lxp1 <= 0 || mxp1 <= 0 {
		return nil, ErrInvalidGrid
	}
	lmax := lxp1 - 1
	if lmax > maxLSupported {
		return nil, fmt.Errorf("rotation: l=%d, limit %d: %w", lmax, maxLSupported, ErrAngularMomentum)
	}

	matrices := make([][][]float64, 0, lxp1)
	mxLimits := make([]int, 0, lxp1)

	for l := 0; l < lxp1; l++ {
		mx := l
		if mxp1-1 < mx {
			mx = mxp1 - 1
		}
		dim := 2*mx + 1
		matrix := make([][]float64, dim)
		for row := range matrix {
			matrix[row] = make([]float64, dim)
			m1 := row - mx
			for col := 0; col < dim; col++ {
				matrix[row][col] = smallD(l, m1, col-mx, beta)
			}
		}
		matrices = append(matrices, matrix)
		mxLimits = append(mxLimits, mx)
	}

	return &Matrices{matrices: matrices, mxLimits: mxLimits}, nil
}

// smallD is the closed-form Wigner small-d element d^l_{m,mp}(beta).
func smallD(l, m, mp int, beta float64) float64 {
	if m > l || -m > l || mp > l || -mp > l {
		return 0
	}

	cosHalf := math.Cos(beta * 0.5)
	sinHalf := math.Sin(beta * 0.5)

	prefactor := math.Sqrt(factorial(l+m) * factorial(l-m) * factorial(l+mp) * factorial(l-mp))

	kMin := m - mp
	if kMin < 0 {
		kMin = 0
	}
	kMax := l + m
	if l-mp < kMax {
		kMax = l - mp
	}

	sum := 0.0
	for k := kMin; k <= kMax; k++ {
		denom := factorial(l+m-k) * factorial(k) * factorial(mp-m+k) * factorial(l-mp-k)

		sign := 1.0
		if (k-m+mp)%2 != 0 {
			sign = -1.0
		}

		cosPower := 2*l + m - mp - 2*k
		sinPower := mp - m + 2*k
		sum += sign * prefactor / denom * math.Pow(cosHalf, float64(cosPower)) * math.Pow(sinHalf, float64(sinPower))
	}

	return sum
}

func factorial(n int) float64 {
	result := 1.0
	for value := 2; value <= n; value++ {
		result *= float64(value)
	}
	return result
}
