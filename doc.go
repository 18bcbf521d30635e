// Package xraypath computes multiple-scattering contributions to simulated
// X-ray absorption and scattering spectra (EXAFS and NRIXS) from atomic
// cluster geometry and per-orbital scattering phase shifts: the
// path-amplitude and angular-momentum coupling engine.
//
// What xraypath brings together:
//
//   - Wigner coefficients: 3j symbols and small-d rotation elements,
//     integer and half-integer modes, log-factorial evaluation
//   - Spherical-harmonic normalization tables (scaled factorials)
//   - Per-l rotation matrices with the unitarity invariant
//   - Lambda (m,n) angular-momentum basis enumeration under truncation
//   - Complex propagator coefficient recursions
//   - Dense complex scattering matrices/tensors with validated indexing
//   - Per-path amplitude matrix assembly (polarized and NRIXS variants)
//   - Batch path-amplitude normalization and textual artifact formatting
//
// Everything is organized under flat topical subpackages:
//
//	wigner/     — 3j coefficients & Wigner small-d series
//	spharm/     — spherical-harmonic normalization tables
//	rotation/   — per-l rotation matrices (closed-form small-d)
//	lambda/     — (m,n) basis enumeration and order decoding
//	propagator/ — regular/irregular coefficient recursions
//	tensor/     — dense complex matrix & tensor storage
//	amplitude/  — per-path amplitude matrix builders
//	geometry/   — Euler angles and distances from path legs
//	polar/      — polarization-averaged angular factors
//	genfmt/     — path records, artifact assembly, run control
//
// Every operation is a deterministic pure computation over owned inputs:
// no goroutines are spawned by the library itself (genfmt.EvalAmplitudes
// fans out explicitly when asked to), no I/O is performed, and the only
// shared state is a read-only memoized log-factorial table.
//
//	go get github.com/avlasenko/xraypath
package xraypath
