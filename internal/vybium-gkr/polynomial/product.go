package polynomial

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ProductPolynomial is the pointwise product of a non-empty sequence of
// multilinear polynomials over the same variables. As a function it has
// degree equal to the number of factors in each variable.
type ProductPolynomial struct {
	polynomials []*MultilinearPolynomial
}

// NewProductPolynomial creates a product polynomial from its factors. All
// factors must share the same number of variables.
func NewProductPolynomial(polynomials []*MultilinearPolynomial) *ProductPolynomial {
	if len(polynomials) == 0 {
		panic("product polynomial must have at least one factor")
	}

	nVars := polynomials[0].NVars()
	for _, poly := range polynomials {
		if poly.NVars() != nVars {
			panic("all polynomials in product polynomial must have the same number of variables")
		}
	}

	owned := make([]*MultilinearPolynomial, len(polynomials))
	copy(owned, polynomials)

	return &ProductPolynomial{polynomials: owned}
}

// Degree returns the number of factors, which is the degree contributed to
// each sumcheck round polynomial.
func (p *ProductPolynomial) Degree() int {
	return len(p.polynomials)
}

// NVars returns the number of variables shared by all factors.
func (p *ProductPolynomial) NVars() int {
	return p.polynomials[0].NVars()
}

// Polynomials returns the factors. The slice must not be modified.
func (p *ProductPolynomial) Polynomials() []*MultilinearPolynomial {
	return p.polynomials
}

// Evaluate evaluates the product at a point as the product of each factor's
// evaluation.
func (p *ProductPolynomial) Evaluate(point []fr.Element) fr.Element {
	result := fr.One()
	for _, poly := range p.polynomials {
		eval := poly.Evaluate(point)
		result.Mul(&result, &eval)
	}
	return result
}

// PartialEvaluateMany fixes variables factor-wise.
func (p *ProductPolynomial) PartialEvaluateMany(assignments []VariableAssignment) *ProductPolynomial {
	polynomials := make([]*MultilinearPolynomial, len(p.polynomials))
	for i, poly := range p.polynomials {
		polynomials[i] = poly.PartialEvaluateMany(assignments)
	}
	return NewProductPolynomial(polynomials)
}

// PartialEvaluate fixes one variable factor-wise.
func (p *ProductPolynomial) PartialEvaluate(value fr.Element, varIndex int) *ProductPolynomial {
	return p.PartialEvaluateMany([]VariableAssignment{{Value: value, Index: varIndex}})
}

// ElementWiseMul collapses the product into a single multilinear polynomial
// by elementwise multiplication of the factor tables. At least two factors
// are required.
func (p *ProductPolynomial) ElementWiseMul() *MultilinearPolynomial {
	if len(p.polynomials) < 2 {
		panic(fmt.Sprintf("at least two polynomials are needed for multiplication, got %d", len(p.polynomials)))
	}

	result := p.polynomials[0]
	for _, poly := range p.polynomials[1:] {
		result = result.TensorMul(poly)
	}
	return result
}

// Reduce returns the evaluation table of the collapsed product.
func (p *ProductPolynomial) Reduce() []fr.Element {
	return p.ElementWiseMul().Evals()
}

// ToBytes serializes the product as the concatenation of its factors'
// serializations.
func (p *ProductPolynomial) ToBytes() []byte {
	out := make([]byte, 0, len(p.polynomials)*(1<<p.NVars())*fr.Bytes)
	for _, poly := range p.polynomials {
		out = append(out, poly.ToBytes()...)
	}
	return out
}
