// Package vybiumgkr provides succinct-argument primitives over the BN254
// scalar field: dense multilinear polynomials in evaluation form, the
// non-interactive sumcheck protocol, and the GKR protocol for layered
// arithmetic circuits.
//
// # Quick Start
//
// Proving and verifying a sumcheck claim over a multilinear polynomial:
//
//	poly := vybiumgkr.NewMultilinearPolynomial(evals)
//	proof := vybiumgkr.SumcheckProve(poly, claimedSum)
//
//	if vybiumgkr.SumcheckVerify(poly, proof) {
//		fmt.Println("claim holds")
//	}
//
// Proving and verifying a layered circuit evaluation with GKR:
//
//	circ := vybiumgkr.NewCircuit(layers)
//	proof := vybiumgkr.GKRProve(circ, input)
//
//	if vybiumgkr.GKRVerify(circ, input, proof) {
//		fmt.Println("circuit output is correct")
//	}
//
// # Architecture
//
// - pkg/vybium-gkr/: Public API (this package)
// - internal/vybium-gkr/: Private implementation (not importable)
//
// The implementation packages cover:
// - transcript: Keccak256-backed Fiat-Shamir transcript
// - polynomial: multilinear, product, sum and univariate polynomials
// - circuit: layered add/mul circuits and their wiring polynomials
// - protocols: sumcheck (both flavors) and GKR
//
// # Conventions
//
// Field elements serialize as fixed-length big-endian byte strings. A
// multilinear polynomial's evaluation table indexes variable 0 as the most
// significant address bit. Verification failures are returned as booleans;
// malformed inputs (non-power-of-two tables, index overflows) panic.
package vybiumgkr
