package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func fq(x uint64) fr.Element {
	var e fr.Element
	e.SetUint64(x)
	return e
}

func fqs(xs ...uint64) []fr.Element {
	evals := make([]fr.Element, len(xs))
	for i, x := range xs {
		evals[i] = fq(x)
	}
	return evals
}

func randomElements(t *testing.T, n int) []fr.Element {
	t.Helper()
	evals := make([]fr.Element, n)
	for i := range evals {
		if _, err := evals[i].SetRandom(); err != nil {
			t.Fatalf("failed to sample random element: %v", err)
		}
	}
	return evals
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestNewAndNVars tests construction and variable counting
func TestNewAndNVars(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(0, 1, 2, 3))

	if poly.NVars() != 2 {
		t.Errorf("expected 2 variables, got %d", poly.NVars())
	}
	if len(poly.Evals()) != 4 {
		t.Errorf("expected 4 evaluations, got %d", len(poly.Evals()))
	}
}

// TestNewInvalidLength tests that a non-power-of-two table is rejected
func TestNewInvalidLength(t *testing.T) {
	mustPanic(t, "three evaluations", func() {
		NewMultilinearPolynomial(fqs(0, 1, 2))
	})
	mustPanic(t, "empty table", func() {
		NewMultilinearPolynomial(nil)
	})
}

// TestEvaluate tests full evaluation at a non-Boolean point
func TestEvaluate(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(0, 0, 3, 8))
	result := poly.Evaluate(fqs(6, 2))

	expected := fq(78)
	if !result.Equal(&expected) {
		t.Errorf("expected 78, got %s", result.String())
	}
}

// TestEvaluateConstantPolynomial tests evaluation of a constant table
func TestEvaluateConstantPolynomial(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(7, 7))

	for _, x := range []uint64{0, 1} {
		result := poly.Evaluate(fqs(x))
		expected := fq(7)
		if !result.Equal(&expected) {
			t.Errorf("expected 7 at x=%d, got %s", x, result.String())
		}
	}
}

// TestEvaluateInvalidInputLength tests that a short point is rejected
func TestEvaluateInvalidInputLength(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2, 3, 4))
	mustPanic(t, "short point", func() {
		poly.Evaluate(fqs(1))
	})
}

// TestPartialEvaluate tests variable fixing against hand-picked tables,
// with variable 0 as the most significant address bit
func TestPartialEvaluate(t *testing.T) {
	polyABC := NewMultilinearPolynomial(fqs(1, 3, 5, 7, 2, 4, 6, 8))

	// fix c = 0: keep indices 0, 2, 4, 6
	got := polyABC.PartialEvaluate(fq(0), 2)
	want := NewMultilinearPolynomial(fqs(1, 5, 2, 6))
	if !got.Equal(want) {
		t.Errorf("fixing c=0: unexpected table")
	}

	// fix b = 1: keep indices 2, 3, 6, 7
	got = polyABC.PartialEvaluate(fq(1), 1)
	want = NewMultilinearPolynomial(fqs(5, 7, 6, 8))
	if !got.Equal(want) {
		t.Errorf("fixing b=1: unexpected table")
	}

	// fix a = 1, c = 1: indices 5, 7
	got = polyABC.PartialEvaluateMany([]VariableAssignment{
		{Value: fq(1), Index: 0},
		{Value: fq(1), Index: 2},
	})
	want = NewMultilinearPolynomial(fqs(4, 8))
	if !got.Equal(want) {
		t.Errorf("fixing a=1, c=1: unexpected table")
	}

	// fix a = 0, b = 1, c = 0: single point at index 2
	got = polyABC.PartialEvaluateMany([]VariableAssignment{
		{Value: fq(0), Index: 0},
		{Value: fq(1), Index: 1},
		{Value: fq(0), Index: 2},
	})
	want = NewMultilinearPolynomial(fqs(5))
	if !got.Equal(want) {
		t.Errorf("fixing a=0, b=1, c=0: unexpected table")
	}
}

// TestPartialEvaluateFourVars tests variable fixing on a 4-variable table
func TestPartialEvaluateFourVars(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16))

	// fix d = 0: keep every even index
	got := poly.PartialEvaluate(fq(0), 3)
	want := NewMultilinearPolynomial(fqs(1, 3, 5, 7, 9, 11, 13, 15))
	if !got.Equal(want) {
		t.Errorf("fixing d=0: unexpected table")
	}

	// fix b = 1, c = 0: indices 4, 5, 12, 13
	got = poly.PartialEvaluateMany([]VariableAssignment{
		{Value: fq(1), Index: 1},
		{Value: fq(0), Index: 2},
	})
	want = NewMultilinearPolynomial(fqs(5, 6, 13, 14))
	if !got.Equal(want) {
		t.Errorf("fixing b=1, c=0: unexpected table")
	}

	// fix a = 1, b = 0, c = 1, d = 0: index 10
	got = poly.PartialEvaluateMany([]VariableAssignment{
		{Value: fq(1), Index: 0},
		{Value: fq(0), Index: 1},
		{Value: fq(1), Index: 2},
		{Value: fq(0), Index: 3},
	})
	want = NewMultilinearPolynomial(fqs(11))
	if !got.Equal(want) {
		t.Errorf("fixing all variables: unexpected table")
	}
}

// TestPartialEvaluationStepwise tests that fixing variables one at a time
// agrees with full evaluation
func TestPartialEvaluationStepwise(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2, 3, 4, 5, 6, 7, 8))

	a, b, c := fq(1), fq(0), fq(1)

	full := poly.Evaluate([]fr.Element{a, b, c})

	partial := poly.PartialEvaluate(a, 0).PartialEvaluate(b, 0)
	stepwise := partial.Evaluate([]fr.Element{c})

	if !full.Equal(&stepwise) {
		t.Errorf("stepwise evaluation diverged: %s != %s", stepwise.String(), full.String())
	}
}

// TestPartialEvaluateRandomized tests the partial-evaluation law on random
// tables: fixing a prefix of the assignment then evaluating the rest equals
// evaluating the full assignment
func TestPartialEvaluateRandomized(t *testing.T) {
	const numVars = 10

	poly := NewMultilinearPolynomial(randomElements(t, 1<<numVars))
	assignment := randomElements(t, numVars)

	full := poly.Evaluate(assignment)

	for fixed := 1; fixed <= numVars; fixed++ {
		assignments := make([]VariableAssignment, fixed)
		for i := 0; i < fixed; i++ {
			assignments[i] = VariableAssignment{Value: assignment[i], Index: i}
		}

		partial := poly.PartialEvaluateMany(assignments)
		result := partial.Evaluate(assignment[fixed:])

		if !full.Equal(&result) {
			t.Errorf("fixing %d variables diverged from full evaluation", fixed)
		}
	}
}

// TestPartialEvaluateManyCommutes tests that the order of assignments for
// disjoint variables does not matter
func TestPartialEvaluateManyCommutes(t *testing.T) {
	poly := NewMultilinearPolynomial(randomElements(t, 1<<6))
	x, y := fq(11), fq(29)

	forward := poly.PartialEvaluateMany([]VariableAssignment{
		{Value: x, Index: 1},
		{Value: y, Index: 4},
	})
	backward := poly.PartialEvaluateMany([]VariableAssignment{
		{Value: y, Index: 4},
		{Value: x, Index: 1},
	})

	if !forward.Equal(backward) {
		t.Error("assignment order changed the result for disjoint variables")
	}
}

// TestPartialEvaluateManyRejectsDuplicates tests that repeating a variable
// index is rejected
func TestPartialEvaluateManyRejectsDuplicates(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2, 3, 4))
	mustPanic(t, "duplicate index", func() {
		poly.PartialEvaluateMany([]VariableAssignment{
			{Value: fq(1), Index: 0},
			{Value: fq(2), Index: 0},
		})
	})
}

// TestPartialEvaluateOutOfRange tests that an out-of-range variable index is
// rejected
func TestPartialEvaluateOutOfRange(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2, 3, 4))
	mustPanic(t, "index out of range", func() {
		poly.PartialEvaluate(fq(1), 2)
	})
}

// TestHypercubeRoundTrip tests that evaluating on every Boolean assignment
// recovers the original table
func TestHypercubeRoundTrip(t *testing.T) {
	const numVars = 4

	evals := randomElements(t, 1<<numVars)
	poly := NewMultilinearPolynomial(evals)

	for index := 0; index < 1<<numVars; index++ {
		point := make([]fr.Element, numVars)
		for v := 0; v < numVars; v++ {
			if index&(1<<(numVars-v-1)) != 0 {
				point[v] = fq(1)
			}
		}

		result := poly.Evaluate(point)
		if !result.Equal(&evals[index]) {
			t.Fatalf("hypercube point %d does not recover its table entry", index)
		}
	}
}

// TestScalarMul tests componentwise scalar multiplication
func TestScalarMul(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2, 3, 4))
	result := poly.ScalarMul(fq(2))
	expected := NewMultilinearPolynomial(fqs(2, 4, 6, 8))

	if !result.Equal(expected) {
		t.Error("scalar multiplication produced an unexpected table")
	}
}

// TestTensorAdd tests elementwise addition
func TestTensorAdd(t *testing.T) {
	poly1 := NewMultilinearPolynomial(fqs(1, 2, 3, 4))
	poly2 := NewMultilinearPolynomial(fqs(5, 6, 7, 8))

	result := poly1.TensorAdd(poly2)
	expected := NewMultilinearPolynomial(fqs(6, 8, 10, 12))
	if !result.Equal(expected) {
		t.Error("tensor addition produced an unexpected table")
	}

	mustPanic(t, "mismatched lengths", func() {
		poly1.TensorAdd(NewMultilinearPolynomial(fqs(5, 6)))
	})
}

// TestTensorMul tests elementwise multiplication
func TestTensorMul(t *testing.T) {
	poly1 := NewMultilinearPolynomial(fqs(1, 2, 3, 4))
	poly2 := NewMultilinearPolynomial(fqs(5, 6, 7, 8))

	result := poly1.TensorMul(poly2)
	expected := NewMultilinearPolynomial(fqs(5, 12, 21, 32))
	if !result.Equal(expected) {
		t.Error("tensor multiplication produced an unexpected table")
	}

	mustPanic(t, "mismatched lengths", func() {
		poly1.TensorMul(NewMultilinearPolynomial(fqs(5, 6)))
	})
}

// TestToBytes tests the fixed-length big-endian serialization
func TestToBytes(t *testing.T) {
	poly := NewMultilinearPolynomial(fqs(1, 2))
	out := poly.ToBytes()

	if len(out) != 2*fr.Bytes {
		t.Fatalf("expected %d bytes, got %d", 2*fr.Bytes, len(out))
	}

	if out[fr.Bytes-1] != 1 || out[2*fr.Bytes-1] != 2 {
		t.Error("serialization is not big-endian in index order")
	}
}
