package genfmt

import "fmt"

// Mode selects the spectrum flavor produced by a run.
type Mode int

const (
	ModeExafs Mode = iota
	ModeNrixs
)

// RunConfig drives one formatting pass over a set of evaluated paths.
type RunConfig struct {
	Mfeff      int
	Mode       Mode
	VersionTag string
	Critcw     float64
	Iorder     int
	Wnstar     bool
	QWeights   []float64
}

// RunOutput reports the run log and, when the module gate was open, the
// produced artifacts.
type RunOutput struct {
	Logs      []string
	Artifacts *Artifacts
}

// Run is the module entry point. With mfeff other than 1 the pass is
// skipped entirely; otherwise the mode picks the formatter and the result
// is checked for downstream consumability.
func Run(config RunConfig, paths []PathInput) RunOutput {
	var logs []string

	if config.Mfeff != 1 {
		logs = append(logs, fmt.Sprintf(
			"Skipping GENFMT because mfeff=%d (only mfeff=1 runs path formatting)", config.Mfeff))
		return RunOutput{Logs: logs}
	}

	logs = append(logs, "Calculating EXAFS parameters ...")

	var artifacts *Artifacts
	switch config.Mode {
	case ModeNrixs:
		artifacts = Genfmtjas(NrixsConfig{
			VersionTag: config.VersionTag,
			Critcw:     config.Critcw,
			Iorder:     config.Iorder,
			QWeights:   config.QWeights,
		}, paths)
	default:
		artifacts = Genfmt(ExafsConfig{
			VersionTag:   config.VersionTag,
			Critcw:       config.Critcw,
			Iorder:       config.Iorder,
			IncludeNstar: config.Wnstar,
		}, paths)
	}

	if ArtifactsConsumable(artifacts) {
		logs = append(logs, "Validated GENFMT artifacts for downstream consumption.")
	} else {
		logs = append(logs, "GENFMT artifacts failed downstream consumability checks.")
	}
	logs = append(logs, "Done with module: EXAFS parameters (GENFMT).")

	return RunOutput{Logs: logs, Artifacts: artifacts}
}
