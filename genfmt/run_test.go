package genfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasenko/xraypath/genfmt"
)

func TestRun_SkipsWhenModuleGateClosed(t *testing.T) {
	output := genfmt.Run(genfmt.RunConfig{
		Mfeff:      0,
		Mode:       genfmt.ModeExafs,
		VersionTag: "10.0",
		Iorder:     2,
	}, samplePaths())

	assert.Nil(t, output.Artifacts)
	require.NotEmpty(t, output.Logs)
	assert.Contains(t, output.Logs[0], "Skipping GENFMT")
}

func TestRun_DispatchesToExafsFormatter(t *testing.T) {
	output := genfmt.Run(genfmt.RunConfig{
		Mfeff:      1,
		Mode:       genfmt.ModeExafs,
		VersionTag: "10.1",
		Critcw:     5.0,
		Iorder:     2,
		Wnstar:     true,
	}, samplePaths())

	require.Len(t, output.Logs, 3)
	assert.Contains(t, output.Logs[1], "Validated GENFMT artifacts")
	require.NotNil(t, output.Artifacts)
	assert.Len(t, output.Artifacts.ListRows, 2)
	assert.NotEmpty(t, output.Artifacts.NstarRows)
}

func TestRun_DispatchesToNrixsFormatter(t *testing.T) {
	output := genfmt.Run(genfmt.RunConfig{
		Mfeff:      1,
		Mode:       genfmt.ModeNrixs,
		VersionTag: "10.1",
		Critcw:     2.0,
		Iorder:     2,
		QWeights:   []float64{1.0, 0.5, 0.5},
	}, samplePaths())

	require.NotNil(t, output.Artifacts)
	assert.Contains(t, output.Artifacts.FeffHeaderLines[1], "nrixs")
	assert.Contains(t, output.Artifacts.FeffHeaderLines[1], "q_count=3")
}

func TestRegenf_PromotesJinitForSphericalAveraging(t *testing.T) {
	state := genfmt.Regenf(genfmt.RegenfInput{
		Mfeff:   1,
		Mode:    genfmt.ModeNrixs,
		Elpty:   -1.0,
		DoNrixs: true,
		Jinit:   1,
		Jmax:    5,
	})

	assert.True(t, state.RunGenfmt)
	assert.True(t, state.NrixsInitialized)
	assert.Equal(t, 5, state.Jinit)
}

func TestRegenf_SkipsInitializationWhenGateClosed(t *testing.T) {
	state := genfmt.Regenf(genfmt.RegenfInput{
		Mfeff: 0,
		Mode:  genfmt.ModeExafs,
		Jinit: 1,
		Jmax:  3,
	})

	assert.False(t, state.RunGenfmt)
	assert.False(t, state.InitPdata)
	assert.False(t, state.InitStr)
	assert.Equal(t, 1, state.Jinit)
}
