// Package amplitude assembles per-path scattering amplitude matrices and
// tensors from phase shifts, normalization tables, propagator
// coefficients, and rotation data.
//
// Builders:
//
//   - Fmtrxi     — lambda×lambda amplitude matrix from per-l phase shifts
//   - Mmtr       — (mu,k) termination tensor, polarized or unpolarized
//   - Mmtrxi     — lambda×lambda matrix coupling a termination tensor
//     with reduced matrix elements (rkk)
//   - Mmtrjas    — NRIXS bra/ket side matrices over a momentum-transfer grid
//   - Mmtrjas0   — NRIXS spherically-averaged (mu,mu,k) termination tensor
//   - Mmtrxijas  — NRIXS per-mj bra/ket lambda vectors with l-decomposition
//   - Mmtrxijas0 — NRIXS spherically-averaged per-mj/spin lambda matrices
//
// Every builder validates input shapes up front and returns sentinel
// errors; physically null couplings contribute zero terms silently.
// Builders never mutate their inputs and share no state, so distinct
// paths may be assembled concurrently.
package amplitude
