package protocols

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/circuit"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/polynomial"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/transcript"
)

// GKRProof is a proof that a layered circuit evaluates to the recorded
// output on a public input. Each layer contributes one sumcheck transcript
// reducing a claim about that layer to claims about the layer below, plus
// the two evaluations w(b*) and w(c*) of the lower layer the claims fold
// into.
type GKRProof struct {
	OutputLayer      []fr.Element
	ClaimedSums      []fr.Element
	RoundPolynomials [][]*polynomial.DenseUnivariatePolynomial
	WbEvals          []fr.Element
	WcEvals          []fr.Element
}

// outputPolynomial lifts an output vector into a multilinear polynomial,
// padding the single-wire output layer with a trailing zero so it has one
// variable.
func outputPolynomial(outputLayer []fr.Element) *polynomial.MultilinearPolynomial {
	evals := make([]fr.Element, len(outputLayer))
	copy(evals, outputLayer)
	if len(evals) == 1 {
		evals = append(evals, fr.Element{})
	}
	return polynomial.NewMultilinearPolynomial(evals)
}

// expandOperandLeft lifts w(b) to a polynomial over (b, c) by repeating each
// entry once per assignment of the low c variables.
func expandOperandLeft(w *polynomial.MultilinearPolynomial, extraVars int) *polynomial.MultilinearPolynomial {
	repeat := 1 << extraVars
	evals := make([]fr.Element, 0, len(w.Evals())*repeat)
	for _, eval := range w.Evals() {
		for i := 0; i < repeat; i++ {
			evals = append(evals, eval)
		}
	}
	return polynomial.NewMultilinearPolynomial(evals)
}

// expandOperandRight lifts w(c) to a polynomial over (b, c) by tiling the
// table once per assignment of the high b variables.
func expandOperandRight(w *polynomial.MultilinearPolynomial, extraVars int) *polynomial.MultilinearPolynomial {
	repeat := 1 << extraVars
	evals := make([]fr.Element, 0, len(w.Evals())*repeat)
	for i := 0; i < repeat; i++ {
		evals = append(evals, w.Evals()...)
	}
	return polynomial.NewMultilinearPolynomial(evals)
}

// layerSumPolynomial assembles the sum-of-products polynomial of one GKR
// layer over the operand variables (b, c):
//
//	f(b, c) = add(b, c) * (w(b) + w(c)) + mul(b, c) * (w(b) * w(c))
//
// where add and mul already have their output variables fixed.
func layerSumPolynomial(addF, mulF, w *polynomial.MultilinearPolynomial) *polynomial.SumPolynomial {
	half := w.NVars()
	wb := expandOperandLeft(w, half)
	wc := expandOperandRight(w, half)

	addTerm := polynomial.NewProductPolynomial([]*polynomial.MultilinearPolynomial{addF, wb.TensorAdd(wc)})
	mulTerm := polynomial.NewProductPolynomial([]*polynomial.MultilinearPolynomial{mulF, wb.TensorMul(wc)})

	return polynomial.NewSumPolynomial([]*polynomial.ProductPolynomial{addTerm, mulTerm})
}

// fixOutputVariables fixes the leading output variables of a wiring
// polynomial to the given point.
func fixOutputVariables(wiring *polynomial.MultilinearPolynomial, point []fr.Element) *polynomial.MultilinearPolynomial {
	assignments := make([]polynomial.VariableAssignment, len(point))
	for i, value := range point {
		assignments[i] = polynomial.VariableAssignment{Value: value, Index: i}
	}
	return wiring.PartialEvaluateMany(assignments)
}

// foldWiring combines the wiring polynomial restricted to the two claim
// points b* and c* into alpha*add(b*, b, c) + beta*add(c*, b, c).
func foldWiring(wiring *polynomial.MultilinearPolynomial, bStar, cStar []fr.Element, alpha, beta fr.Element) *polynomial.MultilinearPolynomial {
	atB := fixOutputVariables(wiring, bStar).ScalarMul(alpha)
	atC := fixOutputVariables(wiring, cStar).ScalarMul(beta)
	return atB.TensorAdd(atC)
}

// GKRProve evaluates the circuit on the input and produces a GKR proof. The
// transcript is seeded with the padded output polynomial; each layer then
// runs the sum-of-products sumcheck on the shared transcript and folds the
// two resulting claims about the layer below with sampled coefficients.
func GKRProve(c *circuit.Circuit, input []fr.Element) *GKRProof {
	numLayers := c.NumLayers()
	output := c.Evaluate(input)

	t := transcript.New()
	w0 := outputPolynomial(output)
	t.Append(w0.ToBytes())

	r0 := t.SampleFieldElement()

	proof := &GKRProof{
		OutputLayer:      output,
		ClaimedSums:      make([]fr.Element, 0, numLayers),
		RoundPolynomials: make([][]*polynomial.DenseUnivariatePolynomial, 0, numLayers),
		WbEvals:          make([]fr.Element, 0, numLayers),
		WcEvals:          make([]fr.Element, 0, numLayers),
	}

	addF, mulF := c.AddMulPolynomials(0)
	addF = addF.PartialEvaluate(r0, 0)
	mulF = mulF.PartialEvaluate(r0, 0)

	for i := 0; i < numLayers; i++ {
		wNext := c.WPolynomial(i + 1)
		f := layerSumPolynomial(addF, mulF, wNext)

		claimedSum, roundPolynomials, challenges := PartialProveSumPolynomial(f, t)
		proof.ClaimedSums = append(proof.ClaimedSums, claimedSum)
		proof.RoundPolynomials = append(proof.RoundPolynomials, roundPolynomials)

		half := wNext.NVars()
		bStar, cStar := challenges[:half], challenges[half:]

		wbEval := wNext.Evaluate(bStar)
		wcEval := wNext.Evaluate(cStar)
		proof.WbEvals = append(proof.WbEvals, wbEval)
		proof.WcEvals = append(proof.WcEvals, wcEval)

		t.AppendFieldElement(&wbEval)
		t.AppendFieldElement(&wcEval)

		if i == numLayers-1 {
			break
		}

		alpha := t.SampleFieldElement()
		beta := t.SampleFieldElement()

		addNext, mulNext := c.AddMulPolynomials(i + 1)
		addF = foldWiring(addNext, bStar, cStar, alpha, beta)
		mulF = foldWiring(mulNext, bStar, cStar, alpha, beta)
	}

	return proof
}

// GKRVerify checks a GKR proof against the circuit wiring and the public
// input. The verifier replays the transcript, runs the partial sumcheck
// verifier per layer, performs each layer's oracle check using the wiring
// polynomials it computes itself, and grounds the final layer in the
// multilinear extension of the input. A false return means rejection.
func GKRVerify(c *circuit.Circuit, input []fr.Element, proof *GKRProof) bool {
	numLayers := c.NumLayers()

	if len(proof.ClaimedSums) != numLayers ||
		len(proof.RoundPolynomials) != numLayers ||
		len(proof.WbEvals) != numLayers ||
		len(proof.WcEvals) != numLayers {
		return false
	}
	for i := 0; i < numLayers; i++ {
		if len(proof.RoundPolynomials[i]) != 2*(i+1) {
			return false
		}
	}
	if len(input) != 1<<numLayers {
		return false
	}
	if len(proof.OutputLayer) != 1 {
		return false
	}

	t := transcript.New()
	w0 := outputPolynomial(proof.OutputLayer)
	t.Append(w0.ToBytes())

	r0 := t.SampleFieldElement()
	claim := w0.Evaluate([]fr.Element{r0})

	addF, mulF := c.AddMulPolynomials(0)
	addF = addF.PartialEvaluate(r0, 0)
	mulF = mulF.PartialEvaluate(r0, 0)

	for i := 0; i < numLayers; i++ {
		if !proof.ClaimedSums[i].Equal(&claim) {
			return false
		}

		ok, finalClaim, challenges := PartialVerifySumPolynomial(t, proof.ClaimedSums[i], proof.RoundPolynomials[i])
		if !ok {
			return false
		}

		half := i + 1
		bStar, cStar := challenges[:half], challenges[half:]

		var wbEval, wcEval fr.Element
		if i == numLayers-1 {
			wInput := polynomial.NewMultilinearPolynomial(input)
			wbEval = wInput.Evaluate(bStar)
			wcEval = wInput.Evaluate(cStar)
		} else {
			wbEval = proof.WbEvals[i]
			wcEval = proof.WcEvals[i]
		}

		addEval := addF.Evaluate(challenges)
		mulEval := mulF.Evaluate(challenges)

		var sum, product, expected fr.Element
		sum.Add(&wbEval, &wcEval)
		product.Mul(&wbEval, &wcEval)
		expected.Mul(&addEval, &sum)
		product.Mul(&mulEval, &product)
		expected.Add(&expected, &product)

		if !finalClaim.Equal(&expected) {
			return false
		}

		t.AppendFieldElement(&wbEval)
		t.AppendFieldElement(&wcEval)

		if i == numLayers-1 {
			break
		}

		alpha := t.SampleFieldElement()
		beta := t.SampleFieldElement()

		var alphaTerm, betaTerm fr.Element
		alphaTerm.Mul(&alpha, &wbEval)
		betaTerm.Mul(&beta, &wcEval)
		claim.Add(&alphaTerm, &betaTerm)

		addNext, mulNext := c.AddMulPolynomials(i + 1)
		addF = foldWiring(addNext, bStar, cStar, alpha, beta)
		mulF = foldWiring(mulNext, bStar, cStar, alpha, beta)
	}

	return true
}
