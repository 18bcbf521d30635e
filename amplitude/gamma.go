package amplitude

import "github.com/avlasenko/xraypath/lambda"

const epsilon = 2.220446049250313e-16

// gammaLeft is the bra-side coupling factor for channel l and one lambda
// entry: the propagator coefficient at row n+|m|, weighted by the
// normalization entry and the (-1)^m phase. Zero when the normalization
// vanishes or the tables do not reach (l, n+|m|).
func gammaLeft(l int, entry lambda.Index, xnlm [][]float64, clmiLeft [][]complex128) complex128 {
	mAbs := absInt(entry.M)
	x := normAt(xnlm, l, mAbs)
	if x == 0 {
		return 0
	}
	coeff := clmiAt(clmiLeft, l, entry.N+mAbs)
	return coeff * complex(x*minusOneToPower(entry.M), 0)
}

// gammaRight is the ket-side factor: the coefficient at row n, weighted
// by (2l+1) over the normalization entry.
func gammaRight(l int, entry lambda.Index, xnlm [][]float64, clmiRight [][]complex128) complex128 {
	mAbs := absInt(entry.M)
	x := normAt(xnlm, l, mAbs)
	if x == 0 {
		return 0
	}
	coeff := clmiAt(clmiRight, l, entry.N)
	return coeff * complex(float64(2*l+1)/x, 0)
}

// normAt reads xnlm[l][m], treating out-of-table and near-zero entries as
// exact zero.
func normAt(xnlm [][]float64, l, m int) float64 {
	if l < 0 || l >= len(xnlm) || m < 0 || m >= len(xnlm[l]) {
		return 0
	}
	value := xnlm[l][m]
	if value < epsilon && value > -epsilon {
		return 0
	}
	return value
}

// clmiAt reads clmi[l][index], zero out of range.
func clmiAt(clmi [][]complex128, l, index int) complex128 {
	if l < 0 || l >= len(clmi) || index < 0 || index >= len(clmi[l]) {
		return 0
	}
	return clmi[l][index]
}

func minusOneToPower(exponent int) float64 {
	if exponent%2 == 0 {
		return 1.0
	}
	return -1.0
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// powi raises z to an integer power by repeated multiplication.
func powi(z complex128, n int) complex128 {
	if n < 0 {
		return 1 / powi(z, -n)
	}
	result := complex128(1)
	for i := 0; i < n; i++ {
		result *= z
	}
	return result
}
