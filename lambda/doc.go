// Package lambda enumerates the "lambda" (m,n) angular-momentum /
// harmonic index basis used to index per-path scattering-amplitude
// matrices.
//
// The basis is ordered: a priority block of entries with n <= ilinit and
// |m| <= ilinit comes first (Laml0x is its size, used for the reduced
// central-atom calculation), followed by the remaining entries in
// enumeration order. Enumeration stops once the configured cap lamtot is
// reached; the Truncated flag is surfaced so callers can decide their own
// degraded-accuracy policy.
//
// The truncation order, m-cap, and n-cap are decoded from the calculation
// selectors through exactly one of four order rules, chosen up front from
// icalc and nsc.
package lambda
