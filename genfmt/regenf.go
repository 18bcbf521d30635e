package genfmt

// RegenfInput carries the module switches used to rebuild the formatting
// state before a run: the module gate, the spectrum mode, the photon
// ellipticity, the NRIXS toggle, and the initial/maximum doubled angular
// momenta.
type RegenfInput struct {
	Mfeff   int
	Mode    Mode
	Elpty   float64
	DoNrixs bool
	Jinit   int
	Jmax    int
}

// RegenfState is the rebuilt state: whether the formatter runs at all,
// whether the NRIXS side was initialized, the possibly promoted jinit,
// and the path-data/structure init flags.
type RegenfState struct {
	RunGenfmt        bool
	NrixsInitialized bool
	Jinit            int
	InitPdata        bool
	InitStr          bool
	LogMessages      []string
}

// Regenf rebuilds the formatting state. A negative ellipticity in NRIXS
// mode requests spherical averaging, which promotes jinit to jmax.
func Regenf(input RegenfInput) RegenfState {
	runGenfmt := input.Mfeff == 1
	jinit := input.Jinit
	var logMessages []string

	shouldInitNrixs := input.DoNrixs && input.Mode == ModeNrixs && runGenfmt
	if shouldInitNrixs {
		logMessages = append(logMessages, "Initialized NRIXS state for GENFMT execution")
		if input.Elpty < 0 {
			jinit = input.Jmax
			logMessages = append(logMessages,
				"Spherical NRIXS averaging requested; promoting jinit to jmax")
		}
	}

	if runGenfmt {
		logMessages = append(logMessages, "Initialized pdata and str context")
	}

	return RegenfState{
		RunGenfmt:        runGenfmt,
		NrixsInitialized: shouldInitNrixs,
		Jinit:            jinit,
		InitPdata:        runGenfmt,
		InitStr:          runGenfmt,
		LogMessages:      logMessages,
	}
}
