package lambda

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// oneDegreeRad is one degree in radians, the near-linearity tolerance of
// the "cute" geometry inspection.
const oneDegreeRad = 0.01745329252

// Sentinel errors for basis construction.
var (
	// ErrUndefinedIcalc indicates icalc matched none of the decode modes.
	ErrUndefinedIcalc = errors.New("lambda: undefined icalc")

	// ErrDimensionLimit indicates the final basis needs more m or n room
	// than the caller-declared mtot/ntot bounds allow.
	ErrDimensionLimit = errors.New("lambda: basis exceeds dimensional limits")
)

// Index is one (m, n) lambda-basis entry. N is non-negative by construction.
type Index struct {
	M int
	N int
}

// Input carries the calculation selectors and dimensional caps for Setlam.
//
// Fields:
//   - Icalc  — calculation-mode selector; negative values digit-encode the
//     order parameters directly, 0..9 set the order itself, 10 enables the
//     geometry-inspecting mode.
//   - IE     — energy-grid index (the geometry mode raises nmax at IE >= 42).
//   - Nsc    — number of scattering atoms; Nsc==1 short-circuits the decode.
//   - Nleg   — number of path legs; bounds the betas inspection window.
//   - Ilinit — initial-state angular momentum; sizes the priority block.
//   - Betas  — per-leg rotation angles (radians), inspected in mode 10.
//   - Lamtot — hard cap on the basis length.
//   - Mtot, Ntot — declared dimensional bounds for downstream storage.
type Input struct {
	Icalc  int
	IE     int
	Nsc    int
	Nleg   int
	Ilinit int
	Betas  []float64
	Lamtot int
	Mtot   int
	Ntot   int
}

// Output is the ordered basis plus its derived dimensions.
type Output struct {
	Iord      int
	Basis     []Index
	Laml0x    int
	Mmaxp1    int
	Nmax      int
	Truncated bool
}

// orderRule decodes (iord, mmax, nmax) for one icalc mode. Exactly one
// variant is selected per call, up front.
type orderRule interface {
	order() (iord, mmax, nmax int)
}

// encodedOrder decodes a negative icalc: -icalc digit-packs the three
// parameters as iord*10000 + mmax*100 + nmax (iord stored off by one).
type encodedOrder struct{ icode int }

func (r encodedOrder) order() (int, int, int) {
	nmax := r.icode % 100
	mmax := (r.icode % 10_000) / 100
	iord := r.icode/10_000 - 1
	return iord, mmax, nmax
}

// singleScattererOrder applies when nsc==1: both caps come from ilinit.
type singleScattererOrder struct{ ilinit int }

func (r singleScattererOrder) order() (int, int, int) {
	return 2*r.ilinit + r.ilinit, r.ilinit, r.ilinit
}

// directOrder applies for 0 <= icalc < 10: icalc is the order itself.
type directOrder struct{ icalc int }

func (r directOrder) order() (int, int, int) {
	mmax := r.icalc
	if mmax < 0 {
		mmax = 0
	}
	return r.icalc, mmax, mmax / 2
}

// geometryOrder is the icalc==10 ("cute") mode: near-linear paths keep
// mmax=ilinit, anything bent beyond one degree widens to mmax=3, and
// high energy-grid indices deepen nmax to 9.
type geometryOrder struct {
	ilinit int
	ie     int
	nleg   int
	betas  []float64
}

func (r geometryOrder) order() (int, int, int) {
	mmax := r.ilinit
	limit := r.nleg
	if limit > len(r.betas) {
		limit = len(r.betas)
	}
	for _, beta := range r.betas[:limit] {
		mag1 := math.Abs(beta)
		mag2 := math.Abs(mag1 - math.Pi)
		if mag1 > oneDegreeRad && mag2 > oneDegreeRad {
			mmax = 3
			break
		}
	}

	nmax := r.ilinit
	if r.ie >= 42 {
		nmax = 9
	}
	return 2*nmax + mmax, mmax, nmax
}

// selectOrderRule picks the decode variant for the given selectors.
func selectOrderRule(input Input) (orderRule, error) {
	switch {
	case input.Icalc < 0:
		return encodedOrder{icode: -input.Icalc}, nil
	case input.Nsc == 1:
		return singleScattererOrder{ilinit: input.Ilinit}, nil
	case input.Icalc < 10:
		return directOrder{icalc: input.Icalc}, nil
	case input.Icalc == 10:
		return geometryOrder{
			ilinit: input.Ilinit,
			ie:     input.IE,
			nleg:   input.Nleg,
			betas:  input.Betas,
		}, nil
	default:
		return nil, fmt.Errorf("lambda: icalc=%d: %w", input.Icalc, ErrUndefinedIcalc)
	}
}

// Setlam enumerates the lambda basis under the decoded truncation order.
//
// Entries {-m, n} and (for m > 0) {+m, n} are included whenever
// 2n+m <= iord, until Lamtot is reached (Truncated is set when the cap
// bites). The priority block (n <= Ilinit and |m| <= Ilinit) is moved to
// the front, preserving relative order in both partitions; Laml0x is its
// size. Mmaxp1 and Nmax are recomputed from the final list and validated
// against Mtot/Ntot.
//
// Errors: ErrUndefinedIcalc, ErrDimensionLimit.
func Setlam(input Input) (*Output, error) {
	rule, err := selectOrderRule(input)
	if err != nil {
		return nil, err
	}
	iord, mmax, nmaxSeed := rule.order()

	iordLimit := iord
	if iordLimit < 0 {
		iordLimit = 0
	}

	scratch := make([]Index, 0, input.Lamtot)
	truncated := false

enumerate:
	for n := 0; n <= nmaxSeed; n++ {
		for m := 0; m <= mmax; m++ {
			if 2*n+m > iordLimit {
				continue
			}

			if len(scratch) >= input.Lamtot {
				truncated = true
				break enumerate
			}
			scratch = append(scratch, Index{M: -m, N: n})

			if m == 0 {
				continue
			}
			if len(scratch) >= input.Lamtot {
				truncated = true
				break enumerate
			}
			scratch = append(scratch, Index{M: m, N: n})
		}
	}

	prioritized := make([]Index, 0, len(scratch))
	remainder := make([]Index, 0, len(scratch))
	for _, entry := range scratch {
		mAbs := entry.M
		if mAbs < 0 {
			mAbs = -mAbs
		}
		if entry.N <= input.Ilinit && mAbs <= input.Ilinit {
			prioritized = append(prioritized, entry)
		} else {
			remainder = append(remainder, entry)
		}
	}
	laml0x := len(prioritized)
	prioritized = append(prioritized, remainder...)

	mmaxp1, nmax := 0, 0
	for _, entry := range prioritized {
		if entry.M >= 0 && entry.M+1 > mmaxp1 {
			mmaxp1 = entry.M + 1
		}
		if entry.N > nmax {
			nmax = entry.N
		}
	}

	if nmax > input.Ntot || mmaxp1 > input.Mtot+1 {
		return nil, fmt.Errorf("lambda: mmaxp1=%d nmax=%d against mtot=%d ntot=%d: %w",
			mmaxp1, nmax, input.Mtot, input.Ntot, ErrDimensionLimit)
	}

	return &Output{
		Iord:      iord,
		Basis:     prioritized,
		Laml0x:    laml0x,
		Mmaxp1:    mmaxp1,
		Nmax:      nmax,
		Truncated: truncated,
	}, nil
}

// MuValues returns the distinct m labels present in the basis, in
// ascending order — the mu label set for the channel tensors.
func MuValues(basis []Index) []int {
	seen := map[int]bool{}
	for _, entry := range basis {
		seen[entry.M] = true
	}
	values := make([]int, 0, len(seen))
	for mu := range seen {
		values = append(values, mu)
	}
	sort.Ints(values)
	return values
}
