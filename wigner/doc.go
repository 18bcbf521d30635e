// Package wigner evaluates Wigner angular-momentum coupling coefficients:
// 3j symbols via the Racah sum and small-d rotation elements via a
// canonicalized log-factorial series.
//
// All quantum numbers are passed as doubled values scaled by ient:
// ient=1 selects integer angular momenta, ient=2 half-integer ones
// (j=1, ient=2 means j=1/2). Physically forbidden combinations (m-sum,
// triangle inequality, parity of the total) yield 0.0 without error;
// errors are reserved for malformed inputs and factorial-domain overflow.
//
// The shared log-factorial table is computed once, lazily, and is
// read-only thereafter, so concurrent evaluation needs no locking.
package wigner
