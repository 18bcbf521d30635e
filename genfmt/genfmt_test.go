package genfmt_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasenko/xraypath/genfmt"
)

func samplePaths() []genfmt.PathInput {
	return []genfmt.PathInput{
		{PathIndex: 1, Nleg: 2, Degeneracy: 4.0, Reff: 2.3, Amplitude: 0.8},
		{PathIndex: 2, Nleg: 3, Degeneracy: 2.0, Reff: 3.4, Amplitude: 0.3},
	}
}

func TestRecords_NormalizeAgainstMaxAmplitude(t *testing.T) {
	records := genfmt.Records([]genfmt.PathInput{
		{PathIndex: 1, Nleg: 2, Degeneracy: 4.0, Reff: 2.4, Amplitude: 0.8},
		{PathIndex: 2, Nleg: 3, Degeneracy: 2.0, Reff: 3.1, Amplitude: 0.2},
	}, 0.0)

	require.Len(t, records, 2)
	assert.InDelta(t, 100.0, records[0].CwRatio, 1e-12)
	assert.InDelta(t, 25.0, records[1].CwRatio, 1e-12)
}

func TestRecords_ZeroAmplitudesFloorAtCutoff(t *testing.T) {
	records := genfmt.Records([]genfmt.PathInput{
		{PathIndex: 1, Nleg: 2, Degeneracy: 1.0, Reff: 1.0},
	}, 5.0)

	assert.InDelta(t, 5.0, records[0].CwRatio, 1e-12)
}

func TestGenfmt_BuildsDeterministicArtifacts(t *testing.T) {
	config := genfmt.ExafsConfig{VersionTag: "10.1.0", Critcw: 5.0, Iorder: 2}
	first := genfmt.Genfmt(config, samplePaths())
	second := genfmt.Genfmt(config, samplePaths())

	assert.Equal(t, "#_feff.bin v03: 10.1.0", first.FeffHeaderLines[0])
	assert.Len(t, first.ListRows, 2)
	assert.Contains(t, first.ListRows[0], "100.000")
	assert.Equal(t, first.ListDat(), second.ListDat())
	assert.Equal(t, first.FeffHeader(), second.FeffHeader())
}

func TestGenfmt_PopulatesNstarWhenRequested(t *testing.T) {
	artifacts := genfmt.Genfmt(genfmt.ExafsConfig{
		VersionTag:   "10.1.0",
		Iorder:       2,
		IncludeNstar: true,
	}, []genfmt.PathInput{
		{PathIndex: 1, Nleg: 2, Degeneracy: 4.0, Reff: 2.25, Amplitude: 1.0},
	})

	require.Len(t, artifacts.NstarRows, 1)
	assert.Contains(t, artifacts.NstarRows[0], "6.000")
}

func TestGenfmtjas_EmbedsNrixsHeaderFields(t *testing.T) {
	artifacts := genfmt.Genfmtjas(genfmt.NrixsConfig{
		VersionTag: "10.2.1",
		Critcw:     3.0,
		Iorder:     2,
		QWeights:   []float64{1.0, 0.5},
	}, []genfmt.PathInput{
		{PathIndex: 7, Nleg: 4, Degeneracy: 5.0, Reff: 3.8, Amplitude: 1.0},
	})

	assert.Contains(t, artifacts.FeffHeaderLines[1], "nrixs")
	assert.Contains(t, artifacts.FeffHeaderLines[1], "q_count=2")
}

func TestGenfmtjas_QWeightsScaleReportedRatio(t *testing.T) {
	paths := []genfmt.PathInput{
		{PathIndex: 2, Nleg: 3, Degeneracy: 4.0, Reff: 2.5, Amplitude: 1.0},
	}
	ratio := func(weights []float64) float64 {
		artifacts := genfmt.Genfmtjas(genfmt.NrixsConfig{
			VersionTag: "10.0",
			Iorder:     2,
			QWeights:   weights,
		}, paths)
		require.NotEmpty(t, artifacts.ListRows)
		fields := strings.Fields(artifacts.ListRows[0])
		require.GreaterOrEqual(t, len(fields), 2)
		value, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		return value
	}

	assert.Greater(t, ratio([]float64{1.0, 1.0}), ratio([]float64{0.2, 0.2}))
}

func TestGenfmtjas_EmptyQGridDefaultsToUnitWeight(t *testing.T) {
	artifacts := genfmt.Genfmtjas(genfmt.NrixsConfig{
		VersionTag: "10.0",
		Iorder:     2,
	}, []genfmt.PathInput{
		{PathIndex: 1, Nleg: 2, Degeneracy: 1.0, Reff: 1.0, Amplitude: 2.0},
	})

	assert.Contains(t, artifacts.ListRows[0], "100.000")
	assert.Contains(t, artifacts.FeffHeaderLines[1], "q_count=1")
}

func TestArtifactsConsumable_RequiresStructuredRows(t *testing.T) {
	valid := &genfmt.Artifacts{
		FeffHeaderLines: []string{"#_feff.bin"},
		ListHeaderLines: []string{"header"},
		ListRows:        []string{"1 0.01 100.0 2.0 4 2.5"},
		NstarRows:       []string{"1 10.0"},
	}
	assert.True(t, genfmt.ArtifactsConsumable(valid))

	invalid := &genfmt.Artifacts{
		FeffHeaderLines: []string{"#_feff.bin"},
		ListHeaderLines: []string{"header"},
		ListRows:        []string{"bad"},
	}
	assert.False(t, genfmt.ArtifactsConsumable(invalid))
}
