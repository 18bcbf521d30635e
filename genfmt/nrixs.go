package genfmt

import (
	"fmt"
	"math"
)

// NrixsConfig controls the momentum-transfer formatter. QWeights feeds the
// average weight applied to every reported ratio; an empty grid falls back
// to unit weight.
type NrixsConfig struct {
	VersionTag string
	Critcw     float64
	Iorder     int
	QWeights   []float64
}

// Genfmtjas formats ranked paths into the NRIXS artifacts. Ratios are
// scaled by the mean positive q weight and the n-star table is always
// produced, weighted the same way.
func Genfmtjas(config NrixsConfig, paths []PathInput) *Artifacts {
	records := Records(paths, math.Max(config.Critcw, 0.0))
	qWeightScale := normalizedQWeight(config.QWeights)

	qCount := len(config.QWeights)
	if qCount < 1 {
		qCount = 1
	}

	artifacts := &Artifacts{
		FeffHeaderLines: []string{
			fmt.Sprintf("#_feff.bin v03: %s", config.VersionTag),
			fmt.Sprintf("#= nrixs iorder=%d critcw=%.2f q_count=%d", config.Iorder, config.Critcw, qCount),
		},
		ListHeaderLines: []string{
			" -----------------------------------------------------------------------------",
			"  pathindex   q-weighted ratio    deg    nlegs   r effective",
		},
		ListRows:  make([]string, 0, len(records)),
		NstarRows: make([]string, 0, len(records)),
	}

	for _, record := range records {
		qRatio := math.Min(math.Max(record.CwRatio*qWeightScale, 0.0), 100.0)
		artifacts.ListRows = append(artifacts.ListRows, fmt.Sprintf(
			"%10d %18.3f %8.3f %8d %12.4f",
			record.PathIndex, qRatio, record.Degeneracy, record.Nleg, record.Reff,
		))

		weightedNstar := math.Max(record.Degeneracy, 0.0) * qWeightScale * math.Sqrt(math.Max(record.Reff, 0.0))
		artifacts.NstarRows = append(artifacts.NstarRows,
			fmt.Sprintf("%6d %10.3f", record.PathIndex, weightedNstar))
	}

	return artifacts
}

// normalizedQWeight is the mean of the positive weights over the whole
// grid, or unit weight when the grid is empty or has no positive entries.
func normalizedQWeight(weights []float64) float64 {
	if len(weights) == 0 {
		return 1.0
	}
	var positiveSum float64
	for _, weight := range weights {
		if weight > 0 {
			positiveSum += weight
		}
	}
	if positiveSum <= epsilon {
		return 1.0
	}
	return positiveSum / float64(len(weights))
}
