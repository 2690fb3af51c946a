// Package protocols implements the non-interactive sumcheck protocol in its
// two flavors (a single multilinear polynomial and a sum of products of
// multilinears) and the GKR protocol for layered arithmetic circuits built
// on top of them. Verifier rejections are ordinary return values; only
// malformed caller input panics.
package protocols

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/polynomial"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/transcript"
)

// SumcheckProof is a non-interactive proof that a multilinear polynomial
// sums to the claimed value over the Boolean hypercube, one degree-1 round
// polynomial per variable.
type SumcheckProof struct {
	ClaimedSum       fr.Element
	RoundPolynomials []*polynomial.DenseUnivariatePolynomial
}

// NewSumcheckProof creates a sumcheck proof from its parts.
func NewSumcheckProof(claimedSum fr.Element, roundPolynomials []*polynomial.DenseUnivariatePolynomial) *SumcheckProof {
	return &SumcheckProof{ClaimedSum: claimedSum, RoundPolynomials: roundPolynomials}
}

// Prove produces a sumcheck proof for the claim that the polynomial sums to
// claimedSum over the Boolean hypercube. The transcript is seeded with the
// claimed sum and the polynomial's evaluation table, then each round absorbs
// the round polynomial before squeezing the challenge that fixes the current
// first variable.
func Prove(poly *polynomial.MultilinearPolynomial, claimedSum fr.Element) *SumcheckProof {
	t := transcript.New()
	t.AppendFieldElement(&claimedSum)
	t.Append(poly.ToBytes())

	roundPolynomials := make([]*polynomial.DenseUnivariatePolynomial, 0, poly.NVars())
	current := poly

	for round := 0; round < poly.NVars(); round++ {
		roundPolynomial := skipOneAndSumOverHypercube(current)

		t.Append(roundPolynomial.ToBytes())
		roundPolynomials = append(roundPolynomials, roundPolynomial)

		challenge := t.SampleFieldElement()
		current = current.PartialEvaluate(challenge, 0)
	}

	return NewSumcheckProof(claimedSum, roundPolynomials)
}

// Verify checks a sumcheck proof against the polynomial. It replays the
// prover's transcript, enforces the round consistency U(0) + U(1) = current
// sum, and finishes with the oracle check at the sampled point. A false
// return means the proof was rejected.
func Verify(poly *polynomial.MultilinearPolynomial, proof *SumcheckProof) bool {
	if len(proof.RoundPolynomials) != poly.NVars() {
		return false
	}

	t := transcript.New()
	t.AppendFieldElement(&proof.ClaimedSum)
	t.Append(poly.ToBytes())

	zero := fr.Element{}
	one := fr.One()

	currentSum := proof.ClaimedSum
	challenges := make([]fr.Element, 0, poly.NVars())

	for _, roundPolynomial := range proof.RoundPolynomials {
		p0 := roundPolynomial.Evaluate(zero)
		p1 := roundPolynomial.Evaluate(one)

		var sum fr.Element
		sum.Add(&p0, &p1)
		if !currentSum.Equal(&sum) {
			return false
		}

		t.Append(roundPolynomial.ToBytes())

		challenge := t.SampleFieldElement()
		currentSum = roundPolynomial.Evaluate(challenge)
		challenges = append(challenges, challenge)
	}

	oracleEval := poly.Evaluate(challenges)
	return currentSum.Equal(&oracleEval)
}

// skipOneAndSumOverHypercube builds the round polynomial for the current
// first variable: the first half of the evaluation table is the restriction
// to x_0 = 0 and the second half to x_0 = 1, so their sums interpolate the
// unique degree-1 univariate through (0, f_0) and (1, f_1).
func skipOneAndSumOverHypercube(poly *polynomial.MultilinearPolynomial) *polynomial.DenseUnivariatePolynomial {
	evals := poly.Evals()
	half := len(evals) / 2

	var f0, f1 fr.Element
	for i := 0; i < half; i++ {
		f0.Add(&f0, &evals[i])
		f1.Add(&f1, &evals[half+i])
	}

	return polynomial.InterpolateY([]fr.Element{f0, f1})
}
