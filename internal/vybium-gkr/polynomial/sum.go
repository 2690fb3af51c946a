package polynomial

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// SumPolynomial is the pointwise sum of a non-empty sequence of product
// polynomials that share the same number of variables and the same arity.
// This is the shape consumed by the higher-degree sumcheck rounds.
type SumPolynomial struct {
	products []*ProductPolynomial
}

// NewSumPolynomial creates a sum polynomial from its products. All products
// must share the same number of variables and the same factor count.
func NewSumPolynomial(products []*ProductPolynomial) *SumPolynomial {
	if len(products) == 0 {
		panic("sum polynomial must have at least one product")
	}

	nVars := products[0].NVars()
	degree := products[0].Degree()
	for _, product := range products {
		if product.NVars() != nVars {
			panic("all polynomials in sum polynomial must have the same number of variables")
		}
		if product.Degree() != degree {
			panic(fmt.Sprintf("all products in sum polynomial must have the same arity: %d != %d", product.Degree(), degree))
		}
	}

	owned := make([]*ProductPolynomial, len(products))
	copy(owned, products)

	return &SumPolynomial{products: owned}
}

// Degree returns the common arity of the products, which is the degree of
// each sumcheck round polynomial.
func (s *SumPolynomial) Degree() int {
	return s.products[0].Degree()
}

// NVars returns the number of variables shared by all products.
func (s *SumPolynomial) NVars() int {
	return s.products[0].NVars()
}

// Products returns the inner products. The slice must not be modified.
func (s *SumPolynomial) Products() []*ProductPolynomial {
	return s.products
}

// Evaluate evaluates the sum at a point as the sum of each product's
// evaluation.
func (s *SumPolynomial) Evaluate(point []fr.Element) fr.Element {
	var result fr.Element
	for _, product := range s.products {
		eval := product.Evaluate(point)
		result.Add(&result, &eval)
	}
	return result
}

// PartialEvaluateMany fixes variables product-wise.
func (s *SumPolynomial) PartialEvaluateMany(assignments []VariableAssignment) *SumPolynomial {
	products := make([]*ProductPolynomial, len(s.products))
	for i, product := range s.products {
		products[i] = product.PartialEvaluateMany(assignments)
	}
	return NewSumPolynomial(products)
}

// PartialEvaluate fixes one variable product-wise.
func (s *SumPolynomial) PartialEvaluate(value fr.Element, varIndex int) *SumPolynomial {
	return s.PartialEvaluateMany([]VariableAssignment{{Value: value, Index: varIndex}})
}

// ElementWiseAdd collapses the sum into a single multilinear polynomial by
// collapsing each product and summing the results elementwise. At least two
// products are required.
func (s *SumPolynomial) ElementWiseAdd() *MultilinearPolynomial {
	if len(s.products) < 2 {
		panic(fmt.Sprintf("at least two product polynomials are needed for addition, got %d", len(s.products)))
	}

	result := s.products[0].ElementWiseMul()
	for _, product := range s.products[1:] {
		result = result.TensorAdd(product.ElementWiseMul())
	}
	return result
}

// Reduce returns the evaluation table of the collapsed sum.
func (s *SumPolynomial) Reduce() []fr.Element {
	return s.ElementWiseAdd().Evals()
}

// ToBytes serializes the sum as the concatenation of its products'
// serializations.
func (s *SumPolynomial) ToBytes() []byte {
	var out []byte
	for _, product := range s.products {
		out = append(out, product.ToBytes()...)
	}
	return out
}
