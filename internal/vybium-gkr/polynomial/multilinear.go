// Package polynomial provides the polynomial representations consumed by the
// sumcheck and GKR protocols: dense evaluation-form multilinear polynomials
// over the Boolean hypercube, their product and sum compositions, and the
// dense coefficient-form univariate polynomials carried in proof rounds.
package polynomial

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MultilinearPolynomial is a multilinear polynomial in evaluation form: a
// table of 2^n values over the Boolean hypercube. Index i encodes the
// variable assignment through its bit pattern, with variable 0 as the most
// significant address bit and variable n-1 as the least significant.
type MultilinearPolynomial struct {
	evals []fr.Element
}

// VariableAssignment binds a single variable to a field value for partial
// evaluation.
type VariableAssignment struct {
	Value fr.Element
	Index int
}

// NewMultilinearPolynomial creates a multilinear polynomial from its
// evaluation table. The table length must be a power of two.
func NewMultilinearPolynomial(evals []fr.Element) *MultilinearPolynomial {
	if len(evals) == 0 || bits.OnesCount(uint(len(evals))) != 1 {
		panic(fmt.Sprintf("number of evaluations must be a power of two, got %d", len(evals)))
	}

	owned := make([]fr.Element, len(evals))
	copy(owned, evals)

	return &MultilinearPolynomial{evals: owned}
}

// NVars returns the number of variables.
func (p *MultilinearPolynomial) NVars() int {
	return bits.Len(uint(len(p.evals))) - 1
}

// Evals returns the underlying evaluation table. The slice must not be
// modified.
func (p *MultilinearPolynomial) Evals() []fr.Element {
	return p.evals
}

// ScalarMul multiplies every evaluation by the scalar and returns the
// resulting polynomial.
func (p *MultilinearPolynomial) ScalarMul(scalar fr.Element) *MultilinearPolynomial {
	evals := make([]fr.Element, len(p.evals))
	for i := range p.evals {
		evals[i].Mul(&p.evals[i], &scalar)
	}
	return &MultilinearPolynomial{evals: evals}
}

// Evaluate evaluates the polynomial at a full assignment. The point length
// must equal the number of variables.
func (p *MultilinearPolynomial) Evaluate(point []fr.Element) fr.Element {
	if len(point) != p.NVars() {
		panic(fmt.Sprintf("number of points must match number of variables: got %d, want %d", len(point), p.NVars()))
	}

	evals := p.evals
	nVars := p.NVars()
	for _, x := range point {
		evals = fixVariable(evals, nVars, x, 0)
		nVars--
	}

	return evals[0]
}

// PartialEvaluate fixes one variable to the given value and returns the
// polynomial in the remaining n-1 variables.
func (p *MultilinearPolynomial) PartialEvaluate(value fr.Element, varIndex int) *MultilinearPolynomial {
	return p.PartialEvaluateMany([]VariableAssignment{{Value: value, Index: varIndex}})
}

// PartialEvaluateMany fixes several variables at once. Assignments are
// applied in order of decreasing variable index so earlier applications do
// not renumber the variables of later ones. Variable indices must be unique
// and within range.
func (p *MultilinearPolynomial) PartialEvaluateMany(assignments []VariableAssignment) *MultilinearPolynomial {
	if len(assignments) > p.NVars() {
		panic(fmt.Sprintf("number of assignments must not exceed number of variables: got %d, have %d", len(assignments), p.NVars()))
	}

	sorted := make([]VariableAssignment, len(assignments))
	copy(sorted, assignments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index > sorted[j].Index })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Index == sorted[i-1].Index {
			panic(fmt.Sprintf("variable index %d fixed more than once", sorted[i].Index))
		}
	}

	evals := p.evals
	nVars := p.NVars()

	for _, a := range sorted {
		if a.Index < 0 || a.Index >= nVars {
			panic(fmt.Sprintf("variable index %d out of bounds (max %d)", a.Index, nVars-1))
		}
		evals = fixVariable(evals, nVars, a.Value, a.Index)
		nVars--
	}

	return NewMultilinearPolynomial(evals)
}

// fixVariable collapses the dimension of one variable by linear
// interpolation. The evaluation table is ordered lexicographically, so the
// pair of points differing only in variable v sits at distance
// stride = 2^(nVars-v-1); within each chunk of 2*stride entries the aligned
// pairs (y0, y1) interpolate to y0 + (y1-y0)*x.
func fixVariable(evals []fr.Element, nVars int, value fr.Element, varIndex int) []fr.Element {
	stride := 1 << (nVars - varIndex - 1)
	chunkSize := stride << 1
	result := make([]fr.Element, 0, len(evals)/2)

	for base := 0; base < len(evals); base += chunkSize {
		for i := 0; i < stride; i++ {
			y0 := evals[base+i]
			y1 := evals[base+i+stride]

			switch {
			case value.IsZero():
				result = append(result, y0)
			case value.IsOne():
				result = append(result, y1)
			default:
				var term fr.Element
				term.Sub(&y1, &y0)
				term.Mul(&term, &value)
				term.Add(&term, &y0)
				result = append(result, term)
			}
		}
	}

	return result
}

// TensorAdd returns the elementwise sum of two polynomials with the same
// number of variables.
func (p *MultilinearPolynomial) TensorAdd(other *MultilinearPolynomial) *MultilinearPolynomial {
	if len(p.evals) != len(other.evals) {
		panic(fmt.Sprintf("polynomials must have the same number of evaluations: %d != %d", len(p.evals), len(other.evals)))
	}

	evals := make([]fr.Element, len(p.evals))
	for i := range evals {
		evals[i].Add(&p.evals[i], &other.evals[i])
	}

	return &MultilinearPolynomial{evals: evals}
}

// TensorMul returns the elementwise product of two polynomials with the same
// number of variables.
func (p *MultilinearPolynomial) TensorMul(other *MultilinearPolynomial) *MultilinearPolynomial {
	if len(p.evals) != len(other.evals) {
		panic(fmt.Sprintf("polynomials must have the same number of evaluations: %d != %d", len(p.evals), len(other.evals)))
	}

	evals := make([]fr.Element, len(p.evals))
	for i := range evals {
		evals[i].Mul(&p.evals[i], &other.evals[i])
	}

	return &MultilinearPolynomial{evals: evals}
}

// Equal reports whether two polynomials have identical evaluation tables.
func (p *MultilinearPolynomial) Equal(other *MultilinearPolynomial) bool {
	if len(p.evals) != len(other.evals) {
		return false
	}
	for i := range p.evals {
		if !p.evals[i].Equal(&other.evals[i]) {
			return false
		}
	}
	return true
}

// ToBytes serializes the evaluation table as the concatenation of the
// fixed-length big-endian encodings of its entries, in index order.
func (p *MultilinearPolynomial) ToBytes() []byte {
	out := make([]byte, 0, len(p.evals)*fr.Bytes)
	for i := range p.evals {
		b := p.evals[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}
