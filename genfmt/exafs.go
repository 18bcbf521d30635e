package genfmt

import (
	"fmt"
	"math"
)

// ExafsConfig controls the EXAFS formatter: the version tag stamped into
// the feff.bin header, the importance cutoff, the multiple-scattering
// order, and whether the n-star table is produced.
type ExafsConfig struct {
	VersionTag   string
	Critcw       float64
	Iorder       int
	IncludeNstar bool
}

// Genfmt formats ranked paths into the EXAFS artifacts. Every list row
// carries the path index, a distance-damped Debye-Waller proxy, the
// curved-wave ratio, the degeneracy, the leg count, and the effective
// half-length.
func Genfmt(config ExafsConfig, paths []PathInput) *Artifacts {
	records := Records(paths, math.Max(config.Critcw, 0.0))

	artifacts := &Artifacts{
		FeffHeaderLines: []string{
			fmt.Sprintf("#_feff.bin v03: %s", config.VersionTag),
			fmt.Sprintf("#= iorder=%d critcw=%.2f paths=%d", config.Iorder, config.Critcw, len(records)),
		},
		ListHeaderLines: []string{
			" -----------------------------------------------------------------------",
			"  pathindex     sig2   amp ratio       deg    nlegs  r effective",
		},
		ListRows: make([]string, 0, len(records)),
	}

	for _, record := range records {
		sig2 := 1.0 / (1.0 + math.Max(record.Reff, 0.0))
		artifacts.ListRows = append(artifacts.ListRows, fmt.Sprintf(
			"%10d %8.4f %10.3f %10.3f %8d %11.4f",
			record.PathIndex, sig2, record.CwRatio, record.Degeneracy, record.Nleg, record.Reff,
		))

		if config.IncludeNstar {
			nstar := math.Max(record.Degeneracy, 0.0) * math.Sqrt(math.Max(record.Reff, 0.0))
			artifacts.NstarRows = append(artifacts.NstarRows,
				fmt.Sprintf("%6d %10.3f", record.PathIndex, nstar))
		}
	}

	return artifacts
}
