package genfmt

import "strings"

// Artifacts collects the formatted output sections. The header lines go
// into feff.bin, the list header plus rows into list.dat, and the n-star
// rows into nstar.dat.
type Artifacts struct {
	FeffHeaderLines []string
	ListHeaderLines []string
	ListRows        []string
	NstarRows       []string
}

// ListDat joins the list header and rows into the list.dat body.
func (a *Artifacts) ListDat() string {
	lines := make([]string, 0, len(a.ListHeaderLines)+len(a.ListRows))
	lines = append(lines, a.ListHeaderLines...)
	lines = append(lines, a.ListRows...)
	return strings.Join(lines, "\n")
}

// FeffHeader joins the feff.bin header lines.
func (a *Artifacts) FeffHeader() string {
	return strings.Join(a.FeffHeaderLines, "\n")
}

// NstarDat joins the n-star rows.
func (a *Artifacts) NstarDat() string {
	return strings.Join(a.NstarRows, "\n")
}

// ArtifactsConsumable checks that the artifacts have both header sections
// and that every data row carries enough columns for downstream parsers:
// five for list rows, two for n-star rows.
func ArtifactsConsumable(artifacts *Artifacts) bool {
	if len(artifacts.FeffHeaderLines) == 0 || len(artifacts.ListHeaderLines) == 0 {
		return false
	}
	for _, row := range artifacts.ListRows {
		if len(strings.Fields(row)) < 5 {
			return false
		}
	}
	for _, row := range artifacts.NstarRows {
		if len(strings.Fields(row)) < 2 {
			return false
		}
	}
	return true
}
