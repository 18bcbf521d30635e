package genfmt

import "math"

const epsilon = 2.220446049250313e-16

// PathInput is one evaluated scattering path: its index, leg count,
// degeneracy, effective half-length, and raw amplitude.
type PathInput struct {
	PathIndex  int
	Nleg       int
	Degeneracy float64
	Reff       float64
	Amplitude  float64
}

// Record is a path ranked against the strongest one in the set. The
// curved-wave ratio is a percentage of the maximum amplitude, floored at
// the importance cutoff and capped at 100.
type Record struct {
	PathIndex  int
	Nleg       int
	Degeneracy float64
	Reff       float64
	CwRatio    float64
}

// Records ranks paths by amplitude relative to the strongest path. With
// no usable amplitudes all ratios are zero before the cutoff floor is
// applied.
func Records(paths []PathInput, critcw float64) []Record {
	var amplitudeMax float64
	for _, path := range paths {
		amplitudeMax = math.Max(amplitudeMax, math.Abs(path.Amplitude))
	}

	records := make([]Record, 0, len(paths))
	for _, path := range paths {
		ratio := 0.0
		if amplitudeMax > epsilon {
			ratio = math.Abs(path.Amplitude) * 100.0 / amplitudeMax
		}
		records = append(records, Record{
			PathIndex:  path.PathIndex,
			Nleg:       path.Nleg,
			Degeneracy: path.Degeneracy,
			Reff:       path.Reff,
			CwRatio:    math.Min(math.Max(ratio, critcw), 100.0),
		})
	}
	return records
}
