// Package circuit implements layered arithmetic circuits of add and mul
// gates, their evaluation, and the derivation of the per-layer value
// polynomials w_i and wiring indicator polynomials add_i and mul_i consumed
// by the GKR protocol.
package circuit

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vybium/vybium-gkr/internal/vybium-gkr/polynomial"
)

// Op is a gate operation.
type Op int

const (
	// Add adds the two operand wires.
	Add Op = iota
	// Mul multiplies the two operand wires.
	Mul
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case Add:
		return "Add"
	case Mul:
		return "Mul"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Gate combines two wires of the layer below into one output wire. Left and
// Right index into the lower layer's evaluations; Output indexes into this
// layer's output vector.
type Gate struct {
	Op     Op
	Output int
	Left   int
	Right  int
}

// NewGate creates a gate.
func NewGate(op Op, output, left, right int) Gate {
	return Gate{Op: op, Output: output, Left: left, Right: right}
}

// Eval applies the gate to the lower layer's evaluations.
func (g Gate) Eval(layerEval []fr.Element) fr.Element {
	if g.Left >= len(layerEval) || g.Right >= len(layerEval) {
		panic(fmt.Sprintf("gate operand index out of bounds: left %d, right %d, layer size %d", g.Left, g.Right, len(layerEval)))
	}

	var result fr.Element
	switch g.Op {
	case Add:
		result.Add(&layerEval[g.Left], &layerEval[g.Right])
	case Mul:
		result.Mul(&layerEval[g.Left], &layerEval[g.Right])
	}
	return result
}

// Layer is an ordered sequence of gates producing one layer of the circuit.
// A layer at index i carries 2^i gates and 2^i output wires.
type Layer struct {
	gates []Gate
}

// NewLayer creates a layer. The gate count must be a non-zero power of two
// and every gate output must index into the layer's output vector.
func NewLayer(gates []Gate) *Layer {
	if len(gates) == 0 || bits.OnesCount(uint(len(gates))) != 1 {
		panic(fmt.Sprintf("layer must have a power-of-two number of gates, got %d", len(gates)))
	}
	for _, gate := range gates {
		if gate.Output < 0 || gate.Output >= len(gates) {
			panic(fmt.Sprintf("gate output %d out of bounds for layer of %d gates", gate.Output, len(gates)))
		}
	}

	owned := make([]Gate, len(gates))
	copy(owned, gates)

	return &Layer{gates: owned}
}

// Gates returns the layer's gates. The slice must not be modified.
func (l *Layer) Gates() []Gate {
	return l.gates
}

// Index returns the layer's index in the circuit, derived from its gate
// count.
func (l *Layer) Index() int {
	return bits.Len(uint(len(l.gates))) - 1
}

// NumVars returns the number of Boolean variables addressing the layer's
// wiring polynomials: i bits for the output wire plus i+1 bits for each
// operand at layer index i. The output layer keeps a single output bit even
// though it has only one wire.
func (l *Layer) NumVars() int {
	index := l.Index()
	if index == 0 {
		return 3
	}
	return 3*index + 2
}

// AddMulPolynomials builds the multilinear indicator polynomials of the
// layer's wiring: the evaluation table is 1 at the positional index of each
// (out, left, right) gate triple, in the add table for Add gates and the mul
// table for Mul gates, and 0 everywhere else.
func (l *Layer) AddMulPolynomials() (*polynomial.MultilinearPolynomial, *polynomial.MultilinearPolynomial) {
	size := 1 << l.NumVars()
	index := l.Index()

	addEvals := make([]fr.Element, size)
	mulEvals := make([]fr.Element, size)
	one := fr.One()

	for _, gate := range l.gates {
		position := PositionalIndex(index, gate.Output, gate.Left, gate.Right)
		switch gate.Op {
		case Add:
			addEvals[position] = one
		case Mul:
			mulEvals[position] = one
		}
	}

	return polynomial.NewMultilinearPolynomial(addEvals), polynomial.NewMultilinearPolynomial(mulEvals)
}

// PositionalIndex maps a gate triple to its index in the layer's wiring
// tables by concatenating, in big-endian bit order, the i-bit encoding of
// the output wire (one bit at layer 0), the (i+1)-bit encoding of the left
// operand and the (i+1)-bit encoding of the right operand.
func PositionalIndex(layerIndex, output, left, right int) int {
	outputWidth := layerIndex
	if outputWidth == 0 {
		outputWidth = 1
	}
	operandWidth := layerIndex + 1

	if output < 0 || output >= 1<<outputWidth {
		panic(fmt.Sprintf("output index %d does not fit in %d bits", output, outputWidth))
	}
	if left < 0 || left >= 1<<operandWidth {
		panic(fmt.Sprintf("left index %d does not fit in %d bits", left, operandWidth))
	}
	if right < 0 || right >= 1<<operandWidth {
		panic(fmt.Sprintf("right index %d does not fit in %d bits", right, operandWidth))
	}

	return ((output<<operandWidth)|left)<<operandWidth | right
}

// Circuit is a layered arithmetic circuit. Layers are ordered top-down:
// layer 0 produces the single circuit output and the last layer consumes the
// circuit input.
type Circuit struct {
	layers     []*Layer
	layerEvals [][]fr.Element
}

// NewCircuit creates a circuit from its layers. The circuit must have at
// least one layer and layer j must carry 2^j gates.
func NewCircuit(layers []*Layer) *Circuit {
	if len(layers) == 0 {
		panic("circuit must contain at least one layer")
	}
	for j, layer := range layers {
		if len(layer.gates) != 1<<j {
			panic(fmt.Sprintf("layer %d must have %d gates, got %d", j, 1<<j, len(layer.gates)))
		}
	}

	owned := make([]*Layer, len(layers))
	copy(owned, layers)

	return &Circuit{layers: owned}
}

// NumLayers returns the number of gate layers.
func (c *Circuit) NumLayers() int {
	return len(c.layers)
}

// Layer returns the layer at the given index.
func (c *Circuit) Layer(index int) *Layer {
	if index < 0 || index >= len(c.layers) {
		panic(fmt.Sprintf("layer index %d out of bounds for circuit of %d layers", index, len(c.layers)))
	}
	return c.layers[index]
}

// Evaluate runs the circuit bottom-up on the given input and returns the
// output vector. The input length must be 2^k for a circuit of k layers.
// Multiple gates writing to the same output wire accumulate. The per-layer
// value vectors [w_0, ..., w_k] are recorded top-down for later retrieval
// through WPolynomial.
func (c *Circuit) Evaluate(input []fr.Element) []fr.Element {
	if len(input) != 1<<len(c.layers) {
		panic(fmt.Sprintf("input length must be %d for a circuit of %d layers, got %d", 1<<len(c.layers), len(c.layers), len(input)))
	}

	current := make([]fr.Element, len(input))
	copy(current, input)

	evals := make([][]fr.Element, 0, len(c.layers)+1)
	evals = append(evals, current)

	for i := len(c.layers) - 1; i >= 0; i-- {
		layer := c.layers[i]
		next := make([]fr.Element, len(layer.gates))

		for _, gate := range layer.gates {
			gateEval := gate.Eval(current)
			next[gate.Output].Add(&next[gate.Output], &gateEval)
		}

		current = next
		evals = append(evals, current)
	}

	// reverse into top-down order: output first, input last
	for i, j := 0, len(evals)-1; i < j; i, j = i+1, j-1 {
		evals[i], evals[j] = evals[j], evals[i]
	}
	c.layerEvals = evals

	output := make([]fr.Element, len(evals[0]))
	copy(output, evals[0])
	return output
}

// LayerEvals returns the recorded per-layer value vectors [w_0, ..., w_k] of
// the most recent Evaluate call. The slices must not be modified.
func (c *Circuit) LayerEvals() [][]fr.Element {
	return c.layerEvals
}

// WPolynomial returns the multilinear polynomial whose evaluation table is
// the recorded value vector of the given layer. The circuit must have been
// evaluated first. The output layer's single value yields a zero-variable
// polynomial; padding it for protocol use is the caller's concern.
func (c *Circuit) WPolynomial(layerIndex int) *polynomial.MultilinearPolynomial {
	if c.layerEvals == nil {
		panic("circuit must be evaluated before retrieving layer polynomials")
	}
	if layerIndex < 0 || layerIndex >= len(c.layerEvals) {
		panic(fmt.Sprintf("layer index %d out of bounds for %d recorded layers", layerIndex, len(c.layerEvals)))
	}
	return polynomial.NewMultilinearPolynomial(c.layerEvals[layerIndex])
}

// AddMulPolynomials returns the wiring indicator polynomials of the layer at
// the given index.
func (c *Circuit) AddMulPolynomials(layerIndex int) (*polynomial.MultilinearPolynomial, *polynomial.MultilinearPolynomial) {
	if layerIndex < 0 || layerIndex >= len(c.layers) {
		panic(fmt.Sprintf("layer index %d out of bounds for circuit of %d layers", layerIndex, len(c.layers)))
	}
	return c.layers[layerIndex].AddMulPolynomials()
}
