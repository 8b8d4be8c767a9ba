package qsim

import (
	"math/bits"
	"strings"

	"gonum.org/v1/gonum/floats"
)

/*
Ket is the state vector of an n-qubit register: 2^n amplitudes where the
binary expansion of an index gives each qubit's classical value, qubit 0
being the most significant bit. |q0 q1⟩ therefore lives at index 2·q0 + q1.

Elements is exported so arbitrary states can be built directly.
*/
type Ket struct {
	Elements []Complex
}

// NewKet allocates size zero amplitudes. size must be a power of two.
func NewKet(size int) Ket {
	if size < 1 || size&(size-1) != 0 {
		violate(ErrBadShape, "ket size %d is not a power of two", size)
	}

	return Ket{Elements: make([]Complex, size)}
}

// NewBasisKet returns the computational basis vector |index⟩.
func NewBasisKet(size, index int) Ket {
	k := NewKet(size)
	if index < 0 || index >= size {
		violate(ErrOutOfRange, "basis index %d in ket of size %d", index, size)
	}
	k.Elements[index] = One
	return k
}

// KetSize is the number of amplitudes for a register of the given width.
func KetSize(width int) int {
	return 1 << width
}

func (k Ket) Size() int {
	return len(k.Elements)
}

// Width is the number of qubits, log2 of Size.
func (k Ket) Width() int {
	return bits.TrailingZeros(uint(len(k.Elements)))
}

func (k Ket) At(i int) Complex {
	return k.Elements[i]
}

func (k Ket) Set(i int, v Complex) {
	k.Elements[i] = v
}

// Apply runs g on the leading qubits of the register.
func (k *Ket) Apply(g Gate) {
	k.ApplyAt(g, 0)
}

/*
ApplyAt runs g on qubits [qubit, qubit+g.Width()). The operator is expanded
to the full register as I(2^qubit) ⊗ G ⊗ I(2^rest) and multiplied against
the amplitudes. This is dense: O(4^n) time and space.
*/
func (k *Ket) ApplyAt(g Gate, qubit int) {
	n := k.Width()

	if g.Width() > n {
		violate(ErrWidthExceeded, "width %d gate on %d qubit register", g.Width(), n)
	}

	if qubit < 0 || qubit+g.Width() > n {
		violate(ErrOutOfRange, "width %d gate at qubit %d on %d qubit register", g.Width(), qubit, n)
	}

	k.Elements = expand(g, qubit, n).MulVec(k.Elements)
}

func expand(g Gate, qubit, n int) Matrix {
	op := g.matrix

	if qubit > 0 {
		op = Identity(1 << qubit).Tensor(op)
	}

	if rest := n - qubit - g.Width(); rest > 0 {
		op = op.Tensor(Identity(1 << rest))
	}

	return op
}

// Probabilities returns |amplitude_i|² for every basis index.
func (k Ket) Probabilities() []float64 {
	probs := make([]float64, len(k.Elements))
	for i, a := range k.Elements {
		probs[i] = a.NormSqr()
	}
	return probs
}

// Norm is Σ|amplitude|², 1 for a physical state.
func (k Ket) Norm() float64 {
	return floats.Sum(k.Probabilities())
}

/*
Equal compares amplitudes within Epsilon. It is phase sensitive: kets that
differ only by a global phase are physically indistinguishable yet compare
unequal here. Compare Probabilities for the measurement-level view.
*/
func (k Ket) Equal(o Ket) bool {
	if len(k.Elements) != len(o.Elements) {
		return false
	}

	for i, a := range k.Elements {
		if !a.Equal(o.Elements[i]) {
			return false
		}
	}

	return true
}

func (k Ket) Clone() Ket {
	elements := make([]Complex, len(k.Elements))
	copy(elements, k.Elements)
	return Ket{Elements: elements}
}

func (k Ket) String() string {
	parts := make([]string, len(k.Elements))
	for i, a := range k.Elements {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
