// Package polar computes the polarization weight of a scattering path:
// the orientation average of the transition strength over the photon
// polarization vectors, including elliptical polarization mixing.
package polar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Xstar.
var (
	ErrUnsupportedLfin = errors.New("polar: final angular momentum must be in 1..4")
	ErrZeroNormVector  = errors.New("polar: vector has zero norm")
)

const epsilon = 2.220446049250313e-16

// XstarInput carries the two polarization vectors, the first and last leg
// directions, the path degeneracy, the ellipticity, and the final-state
// angular momentum.
type XstarInput struct {
	Eps1  [3]float64
	Eps2  [3]float64
	Vec1  [3]float64
	Vec2  [3]float64
	Ndeg  float64
	Elpty float64
	Lfin  int
}

// Xstar returns the degeneracy-weighted polarization factor. A non-zero
// ellipticity mixes in the second polarization vector with weight
// elpty squared.
//
// Errors: ErrUnsupportedLfin, ErrZeroNormVector.
func Xstar(input XstarInput) (float64, error) {
	x, err := xxcos(input.Vec1, input.Vec2, "vec1/vec2")
	if err != nil {
		return 0, err
	}

	y1, err := xxcos(input.Eps1, input.Vec1, "eps1")
	if err != nil {
		return 0, err
	}
	z1, err := xxcos(input.Eps1, input.Vec2, "eps1")
	if err != nil {
		return 0, err
	}
	xtemp, err := ystar(input.Lfin, x, y1, z1, true)
	if err != nil {
		return 0, err
	}

	if math.Abs(input.Elpty) > epsilon {
		y2, err := xxcos(input.Eps2, input.Vec1, "eps2")
		if err != nil {
			return 0, err
		}
		z2, err := xxcos(input.Eps2, input.Vec2, "eps2")
		if err != nil {
			return 0, err
		}
		second, err := ystar(input.Lfin, x, y2, z2, true)
		if err != nil {
			return 0, err
		}
		xtemp += input.Elpty * input.Elpty * second
	}

	return input.Ndeg * xtemp / (1.0 + input.Elpty*input.Elpty), nil
}

// xxcos is the cosine of the angle between two vectors.
func xxcos(vecA, vecB [3]float64, name string) (float64, error) {
	var dot, normA, normB float64
	for axis := 0; axis < 3; axis++ {
		dot += vecA[axis] * vecB[axis]
		normA += vecA[axis] * vecA[axis]
		normB += vecB[axis] * vecB[axis]
	}
	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	if normA <= epsilon || normB <= epsilon {
		return 0, fmt.Errorf("%w: %s", ErrZeroNormVector, name)
	}
	return dot / (normA * normB), nil
}

// ystar evaluates the Legendre-polynomial average for one polarization
// vector. With iav unset only the bare polynomial term survives.
func ystar(lfin int, x, y, z float64, iav bool) (float64, error) {
	coeffs, err := legendreCoeffs(lfin)
	if err != nil {
		return 0, err
	}

	pln0 := coeffs[0]
	for power := 1; power <= lfin; power++ {
		pln0 += coeffs[power] * intPow(x, power)
	}

	if !iav {
		return pln0 / float64(2*lfin+1), nil
	}

	pln1 := coeffs[1]
	for power := 2; power <= lfin; power++ {
		pln1 += coeffs[power] * float64(power) * intPow(x, power-1)
	}

	pln2 := 2.0 * coeffs[2]
	for power := 3; power <= lfin; power++ {
		pln2 += coeffs[power] * float64(power) * float64(power-1) * intPow(x, power-2)
	}

	l := float64(lfin)
	ytemp := -l*pln0 + pln1*(x+y*z) - pln2*(y*y+z*z-2.0*x*y*z)
	return ytemp * 3.0 / l / (4.0*l*l - 1.0), nil
}

// legendreCoeffs are the monomial coefficients of P_l for l in 1..4.
func legendreCoeffs(lfin int) ([5]float64, error) {
	switch lfin {
	case 1:
		return [5]float64{0.0, 1.0, 0.0, 0.0, 0.0}, nil
	case 2:
		return [5]float64{-0.5, 0.0, 1.5, 0.0, 0.0}, nil
	case 3:
		return [5]float64{0.0, -1.5, 0.0, 2.5, 0.0}, nil
	case 4:
		return [5]float64{0.375, 0.0, -3.75, 0.0, 4.375}, nil
	default:
		return [5]float64{}, fmt.Errorf("polar: lfin=%d: %w", lfin, ErrUnsupportedLfin)
	}
}

func intPow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
