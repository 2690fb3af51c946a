package polynomial

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// DenseUnivariatePolynomial is a univariate polynomial in coefficient form,
// one coefficient per power of X starting from the constant term.
type DenseUnivariatePolynomial struct {
	coefficients []fr.Element
}

// NewDenseUnivariatePolynomial creates a polynomial from its coefficients.
func NewDenseUnivariatePolynomial(coefficients []fr.Element) *DenseUnivariatePolynomial {
	if len(coefficients) == 0 {
		panic("polynomial must have at least one coefficient")
	}

	owned := make([]fr.Element, len(coefficients))
	copy(owned, coefficients)

	return &DenseUnivariatePolynomial{coefficients: owned}
}

// Degree returns the degree of the polynomial as represented. Trailing zero
// coefficients are not trimmed, so the degree reflects the interpolation
// arity rather than the minimal degree.
func (p *DenseUnivariatePolynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Coefficients returns a copy of the coefficients.
func (p *DenseUnivariatePolynomial) Coefficients() []fr.Element {
	coefficients := make([]fr.Element, len(p.coefficients))
	copy(coefficients, p.coefficients)
	return coefficients
}

// Evaluate computes p(x) by Horner's rule.
func (p *DenseUnivariatePolynomial) Evaluate(x fr.Element) fr.Element {
	result := p.coefficients[len(p.coefficients)-1]
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.coefficients[i])
	}
	return result
}

// ScalarMul multiplies every coefficient by the scalar.
func (p *DenseUnivariatePolynomial) ScalarMul(scalar fr.Element) *DenseUnivariatePolynomial {
	coefficients := make([]fr.Element, len(p.coefficients))
	for i := range p.coefficients {
		coefficients[i].Mul(&p.coefficients[i], &scalar)
	}
	return &DenseUnivariatePolynomial{coefficients: coefficients}
}

// Add returns the coefficientwise sum of two polynomials.
func (p *DenseUnivariatePolynomial) Add(other *DenseUnivariatePolynomial) *DenseUnivariatePolynomial {
	longer, shorter := p.coefficients, other.coefficients
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}

	coefficients := make([]fr.Element, len(longer))
	copy(coefficients, longer)
	for i := range shorter {
		coefficients[i].Add(&coefficients[i], &shorter[i])
	}

	return &DenseUnivariatePolynomial{coefficients: coefficients}
}

// Mul returns the product of two polynomials by schoolbook convolution.
func (p *DenseUnivariatePolynomial) Mul(other *DenseUnivariatePolynomial) *DenseUnivariatePolynomial {
	coefficients := make([]fr.Element, p.Degree()+other.Degree()+1)
	for i := range p.coefficients {
		for j := range other.coefficients {
			var term fr.Element
			term.Mul(&p.coefficients[i], &other.coefficients[j])
			coefficients[i+j].Add(&coefficients[i+j], &term)
		}
	}
	return &DenseUnivariatePolynomial{coefficients: coefficients}
}

// lagrangeBasis builds the basis polynomial that is 1 at xs[i] and 0 at every
// other interpolation point.
func lagrangeBasis(i int, xs []fr.Element) *DenseUnivariatePolynomial {
	one := fr.One()
	numerator := &DenseUnivariatePolynomial{coefficients: []fr.Element{one}}

	for j := range xs {
		if j == i {
			continue
		}
		var negX fr.Element
		negX.Neg(&xs[j])
		numerator = numerator.Mul(&DenseUnivariatePolynomial{coefficients: []fr.Element{negX, one}})
	}

	denominator := numerator.Evaluate(xs[i])
	var inv fr.Element
	inv.Inverse(&denominator)

	return numerator.ScalarMul(inv)
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the given points, by Lagrange interpolation. The interpolation
// points must be pairwise distinct.
func Interpolate(xs, ys []fr.Element) *DenseUnivariatePolynomial {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("interpolation requires matching point counts: %d != %d", len(xs), len(ys)))
	}
	if len(xs) == 0 {
		panic("interpolation requires at least one point")
	}

	result := &DenseUnivariatePolynomial{coefficients: make([]fr.Element, len(xs))}
	for i := range xs {
		result = result.Add(lagrangeBasis(i, xs).ScalarMul(ys[i]))
	}

	return result
}

// InterpolateY interpolates through the points (0, ys[0]), (1, ys[1]), ...,
// the canonical interpolation domain for sumcheck round polynomials.
func InterpolateY(ys []fr.Element) *DenseUnivariatePolynomial {
	xs := make([]fr.Element, len(ys))
	for i := range xs {
		xs[i].SetUint64(uint64(i))
	}
	return Interpolate(xs, ys)
}

// Equal reports whether two polynomials have identical coefficient vectors.
func (p *DenseUnivariatePolynomial) Equal(other *DenseUnivariatePolynomial) bool {
	if len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(&other.coefficients[i]) {
			return false
		}
	}
	return true
}

// ToBytes serializes the coefficients as the concatenation of their
// fixed-length big-endian encodings, constant term first.
func (p *DenseUnivariatePolynomial) ToBytes() []byte {
	out := make([]byte, 0, len(p.coefficients)*fr.Bytes)
	for i := range p.coefficients {
		b := p.coefficients[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}
