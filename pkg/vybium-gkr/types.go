package vybiumgkr

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/circuit"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/polynomial"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/protocols"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/transcript"
)

// Element is an element of the BN254 scalar field, the field all protocol
// types are defined over.
type Element = fr.Element

// Transcript is a Fiat-Shamir transcript.
type Transcript = transcript.Transcript

// NewTranscript creates a fresh Keccak256-backed transcript.
func NewTranscript() *Transcript {
	return transcript.New()
}

// NewTranscriptWithHash creates a fresh transcript backed by the given hash.
func NewTranscriptWithHash(h hash.Hash) *Transcript {
	return transcript.NewWithHash(h)
}

// MultilinearPolynomial is a multilinear polynomial in evaluation form.
type MultilinearPolynomial = polynomial.MultilinearPolynomial

// VariableAssignment binds one variable to a value for partial evaluation.
type VariableAssignment = polynomial.VariableAssignment

// ProductPolynomial is a pointwise product of multilinear polynomials.
type ProductPolynomial = polynomial.ProductPolynomial

// SumPolynomial is a pointwise sum of product polynomials.
type SumPolynomial = polynomial.SumPolynomial

// DenseUnivariatePolynomial is a univariate polynomial in coefficient form.
type DenseUnivariatePolynomial = polynomial.DenseUnivariatePolynomial

// NewMultilinearPolynomial creates a multilinear polynomial from its
// evaluation table.
func NewMultilinearPolynomial(evals []Element) *MultilinearPolynomial {
	return polynomial.NewMultilinearPolynomial(evals)
}

// NewProductPolynomial creates a product polynomial from its factors.
func NewProductPolynomial(polynomials []*MultilinearPolynomial) *ProductPolynomial {
	return polynomial.NewProductPolynomial(polynomials)
}

// NewSumPolynomial creates a sum polynomial from its products.
func NewSumPolynomial(products []*ProductPolynomial) *SumPolynomial {
	return polynomial.NewSumPolynomial(products)
}

// Op is a gate operation.
type Op = circuit.Op

const (
	// Add adds the two operand wires.
	Add = circuit.Add
	// Mul multiplies the two operand wires.
	Mul = circuit.Mul
)

// Gate is a two-operand circuit gate.
type Gate = circuit.Gate

// Layer is one layer of a circuit.
type Layer = circuit.Layer

// Circuit is a layered arithmetic circuit.
type Circuit = circuit.Circuit

// NewGate creates a gate.
func NewGate(op Op, output, left, right int) Gate {
	return circuit.NewGate(op, output, left, right)
}

// NewLayer creates a circuit layer from its gates.
func NewLayer(gates []Gate) *Layer {
	return circuit.NewLayer(gates)
}

// NewCircuit creates a circuit from its layers, output layer first.
func NewCircuit(layers []*Layer) *Circuit {
	return circuit.NewCircuit(layers)
}

// SumcheckProof proves a hypercube sum claim about a multilinear polynomial.
type SumcheckProof = protocols.SumcheckProof

// GKRProof proves a layered circuit evaluation.
type GKRProof = protocols.GKRProof

// SumcheckProve produces a sumcheck proof for the claim that the polynomial
// sums to claimedSum over the Boolean hypercube.
func SumcheckProve(poly *MultilinearPolynomial, claimedSum Element) *SumcheckProof {
	return protocols.Prove(poly, claimedSum)
}

// SumcheckVerify checks a sumcheck proof against the polynomial.
func SumcheckVerify(poly *MultilinearPolynomial, proof *SumcheckProof) bool {
	return protocols.Verify(poly, proof)
}

// SumPolynomialProve produces a sumcheck proof for a sum of products,
// returning the derived claimed sum, the round polynomials and the sampled
// challenges.
func SumPolynomialProve(s *SumPolynomial) (Element, []*DenseUnivariatePolynomial, []Element) {
	return protocols.ProveSumPolynomial(s)
}

// SumPolynomialVerify checks a sum-of-products sumcheck proof.
func SumPolynomialVerify(s *SumPolynomial, claimedSum Element, roundPolynomials []*DenseUnivariatePolynomial) bool {
	return protocols.VerifySumPolynomial(s, claimedSum, roundPolynomials)
}

// GKRProve evaluates the circuit on the input and produces a GKR proof.
func GKRProve(c *Circuit, input []Element) *GKRProof {
	return protocols.GKRProve(c, input)
}

// GKRVerify checks a GKR proof against the circuit and the public input.
func GKRVerify(c *Circuit, input []Element, proof *GKRProof) bool {
	return protocols.GKRVerify(c, input, proof)
}
