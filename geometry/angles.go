package geometry

import (
	"errors"
	"math"
)

// ErrEmptyPath reports a path with no legs.
var ErrEmptyPath = errors.New("geometry: path must have at least one leg")

const angleEpsilon = 1.0e-6

// Leg is one site visited by a scattering path. Position is in bohr.
type Leg struct {
	Position [3]float64
	Ipot     int
	Label    string
}

// PathAngles holds the rotation angles and leg lengths of one path. The
// slices beta, alpha, and gamma run over the path's rotation vertices,
// eta and ri over its legs. When a polarization frame was requested,
// EtaPolarization carries the extra (gamma, alpha) pair.
type PathAngles struct {
	Nsc             int
	Beta            []float64
	Eta             []float64
	EtaPolarization *[2]float64
	Ri              []float64
	Alpha           []float64
	Gamma           []float64
}

// ComputeAngles derives the Euler angles at every vertex of the closed
// path plus the leg lengths. With polarized set, one more vertex aligns
// the final leg with the lab z axis and the returned angle slices grow by
// one entry.
func ComputeAngles(legs []Leg, polarized bool) (*PathAngles, error) {
	if len(legs) == 0 {
		return nil, ErrEmptyPath
	}

	nleg := len(legs)
	nsc := nleg - 1
	nangle := nleg
	if polarized {
		nangle++
	}

	rat := make([][3]float64, nleg+2)
	for index, leg := range legs {
		rat[index+1] = leg.Position
	}
	if polarized {
		tail := rat[nleg]
		rat[nleg+1] = [3]float64{tail[0], tail[1], tail[2] + 1.0}
	}
	rat[0] = rat[nleg]

	alpha := make([]float64, nangle+1)
	gamma := make([]float64, nangle+1)
	beta := make([]float64, nangle+1)
	ri := make([]float64, nleg)

	for j := 1; j <= nangle; j++ {
		var i, ip1, im1 int
		fixReference := false
		switch {
		case j == nsc+1:
			ip1 = 1
			if polarized {
				ip1 = nleg + 1
			}
			i, im1 = 0, nsc
		case j == nsc+2:
			i, ip1, im1 = 0, 1, nleg+1
			fixReference = true
		default:
			i, ip1, im1 = j, j+1, j-1
		}

		forward := sub(rat[ip1], rat[i])
		backward := sub(rat[i], rat[im1])
		ctp, stp, cpp, spp := trig(forward)

		if fixReference {
			backward = [3]float64{0, 0, 1}
		}
		ct, st, cp, sp := trig(backward)

		cppp := cp*cpp + sp*spp
		sppp := spp*cp - cpp*sp
		phi := math.Atan2(sp, cp)
		phip := math.Atan2(spp, cpp)

		alph := -complex(st*ctp-ct*stp*cppp, -stp*sppp)
		betaValue := ct*ctp + st*stp*cppp
		if betaValue > 1 {
			betaValue = 1
		}
		if betaValue < -1 {
			betaValue = -1
		}
		gamm := -complex(st*ctp*cppp-ct*stp, st*sppp)

		alphaJ := arg(alph, phip-phi)
		gammaJ := arg(gamm, 0)
		alphaJ, gammaJ = math.Pi-gammaJ, math.Pi-alphaJ

		alpha[j] = alphaJ
		gamma[j] = gammaJ
		beta[j] = math.Acos(betaValue)

		if j <= nleg {
			ri[j-1] = dist(rat[i], rat[im1])
		}
	}

	alpha[0] = alpha[nangle]

	eta := make([]float64, nleg)
	for j := 1; j <= nleg; j++ {
		eta[j-1] = alpha[j-1] + gamma[j]
	}

	angles := &PathAngles{
		Nsc:   nsc,
		Beta:  beta[1 : nangle+1],
		Eta:   eta,
		Ri:    ri,
		Alpha: alpha[1 : nangle+1],
		Gamma: gamma[1 : nangle+1],
	}
	if polarized {
		angles.EtaPolarization = &[2]float64{gamma[nleg+1], alpha[nleg]}
	}
	return angles, nil
}

// trig resolves a direction vector into (cos theta, sin theta, cos phi,
// sin phi), falling back to the pole conventions for degenerate vectors.
func trig(vector [3]float64) (ct, st, cp, sp float64) {
	x, y, z := vector[0], vector[1], vector[2]

	r := math.Sqrt(x*x + y*y + z*z)
	rxy := math.Sqrt(x*x + y*y)

	if r < angleEpsilon {
		ct, st = 1, 0
	} else {
		ct, st = z/r, rxy/r
	}

	if rxy < angleEpsilon {
		cp = 1
		if ct < 0 {
			cp = -1
		}
		sp = 0
	} else {
		cp, sp = x/rxy, y/rxy
	}
	return ct, st, cp, sp
}

// arg is the phase of a complex value, with both components snapped to
// zero below the angle tolerance; a fully vanishing value yields the
// fallback angle instead.
func arg(value complex128, fallback float64) float64 {
	x, y := real(value), imag(value)
	if math.Abs(x) < angleEpsilon {
		x = 0
	}
	if math.Abs(y) < angleEpsilon {
		y = 0
	}
	if x == 0 && y == 0 {
		return fallback
	}
	return math.Atan2(y, x)
}

func dist(lhs, rhs [3]float64) float64 {
	var sum float64
	for axis := 0; axis < 3; axis++ {
		delta := lhs[axis] - rhs[axis]
		sum += delta * delta
	}
	return math.Sqrt(sum)
}

func sub(lhs, rhs [3]float64) [3]float64 {
	return [3]float64{lhs[0] - rhs[0], lhs[1] - rhs[1], lhs[2] - rhs[2]}
}
