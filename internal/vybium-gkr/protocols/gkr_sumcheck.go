package protocols

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/polynomial"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/transcript"
)

// ProveSumPolynomial produces a sumcheck proof for a sum of products of
// multilinears. The claimed sum is derived from the collapsed polynomial and
// a fresh transcript is seeded with the polynomial's serialization. It
// returns the claimed sum, the degree-d round polynomials and the sampled
// challenges.
func ProveSumPolynomial(s *polynomial.SumPolynomial) (fr.Element, []*polynomial.DenseUnivariatePolynomial, []fr.Element) {
	t := transcript.New()
	t.Append(s.ToBytes())

	return PartialProveSumPolynomial(s, t)
}

// PartialProveSumPolynomial runs the sumcheck prover on a caller-supplied
// transcript, for composition with outer protocols. The claimed sum is the
// sum of the collapsed polynomial's evaluation table. Each round polynomial
// has degree equal to the product arity d and is interpolated from its
// evaluations at 0, 1, ..., d.
func PartialProveSumPolynomial(s *polynomial.SumPolynomial, t *transcript.Transcript) (fr.Element, []*polynomial.DenseUnivariatePolynomial, []fr.Element) {
	var claimedSum fr.Element
	for _, eval := range s.Reduce() {
		claimedSum.Add(&claimedSum, &eval)
	}

	t.AppendFieldElement(&claimedSum)

	nVars := s.NVars()
	roundPolynomials := make([]*polynomial.DenseUnivariatePolynomial, 0, nVars)
	challenges := make([]fr.Element, 0, nVars)
	current := s

	for round := 0; round < nVars; round++ {
		roundPolynomial := sumPolynomialRound(current)

		t.Append(roundPolynomial.ToBytes())
		roundPolynomials = append(roundPolynomials, roundPolynomial)

		challenge := t.SampleFieldElement()
		challenges = append(challenges, challenge)

		current = current.PartialEvaluate(challenge, 0)
	}

	return claimedSum, roundPolynomials, challenges
}

// sumPolynomialRound evaluates the round polynomial of the current first
// variable at 0, 1, ..., d by fixing the variable, collapsing the sum of
// products, and summing the resulting table, then interpolates the degree-d
// univariate through those points.
func sumPolynomialRound(s *polynomial.SumPolynomial) *polynomial.DenseUnivariatePolynomial {
	numEvals := s.Degree() + 1
	evals := make([]fr.Element, numEvals)

	for i := 0; i < numEvals; i++ {
		var point fr.Element
		point.SetUint64(uint64(i))

		for _, eval := range s.PartialEvaluate(point, 0).Reduce() {
			evals[i].Add(&evals[i], &eval)
		}
	}

	return polynomial.InterpolateY(evals)
}

// VerifySumPolynomial checks a sum-of-products sumcheck proof end to end: it
// replays the transcript seeded with the polynomial's serialization, runs the
// round checks, and finishes with the oracle check against the polynomial at
// the sampled point.
func VerifySumPolynomial(s *polynomial.SumPolynomial, claimedSum fr.Element, roundPolynomials []*polynomial.DenseUnivariatePolynomial) bool {
	if len(roundPolynomials) != s.NVars() {
		return false
	}

	t := transcript.New()
	t.Append(s.ToBytes())

	ok, finalClaim, challenges := PartialVerifySumPolynomial(t, claimedSum, roundPolynomials)
	if !ok {
		return false
	}

	oracleEval := s.Evaluate(challenges)
	return finalClaim.Equal(&oracleEval)
}

// PartialVerifySumPolynomial runs the round checks of the sumcheck verifier
// on a caller-supplied transcript. It returns whether every round was
// consistent, the claim the final round reduces to, and the sampled
// challenges; the caller is responsible for the oracle check on the final
// claim.
func PartialVerifySumPolynomial(t *transcript.Transcript, claimedSum fr.Element, roundPolynomials []*polynomial.DenseUnivariatePolynomial) (bool, fr.Element, []fr.Element) {
	if len(roundPolynomials) == 0 {
		return false, claimedSum, nil
	}

	t.AppendFieldElement(&claimedSum)

	zero := fr.Element{}
	one := fr.One()

	currentSum := claimedSum
	challenges := make([]fr.Element, 0, len(roundPolynomials))

	for _, roundPolynomial := range roundPolynomials {
		p0 := roundPolynomial.Evaluate(zero)
		p1 := roundPolynomial.Evaluate(one)

		var sum fr.Element
		sum.Add(&p0, &p1)
		if !currentSum.Equal(&sum) {
			return false, currentSum, challenges
		}

		t.Append(roundPolynomial.ToBytes())

		challenge := t.SampleFieldElement()
		currentSum = roundPolynomial.Evaluate(challenge)
		challenges = append(challenges, challenge)
	}

	return true, currentSum, challenges
}
