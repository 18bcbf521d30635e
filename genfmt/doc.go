// Package genfmt turns evaluated scattering paths into the text artifacts
// consumed downstream: the feff.bin header, the ranked path list, and the
// optional n-star table. Two formatters cover the EXAFS and the
// momentum-transfer (NRIXS) flavors; Run dispatches between them and
// checks the artifacts for downstream consumability.
package genfmt
