// gates.go
package qsim

import "math"

/*
The named gates. Every factory returns a fresh Gate; two-qubit gates treat
qubit 0 (the high-order bit of the basis index) as the control or first
operand, so |q0 q1⟩ sits at index 2·q0 + q1.
*/

// IdentityGate leaves a width-qubit state untouched.
func IdentityGate(width int) Gate {
	return NewGate(width, Identity(KetSize(width)))
}

func Hadamard() Gate {
	h := 1 / math.Sqrt2

	return NewGate(1, NewRealMatrix([][]float64{
		{h, h},
		{h, -h},
	}))
}

func PauliX() Gate {
	return NewGate(1, NewRealMatrix([][]float64{
		{0, 1},
		{1, 0},
	}))
}

func PauliY() Gate {
	return NewGate(1, NewMatrix([][]Complex{
		{Zero, I.Neg()},
		{I, Zero},
	}))
}

func PauliZ() Gate {
	return NewGate(1, NewRealMatrix([][]float64{
		{1, 0},
		{0, -1},
	}))
}

// PhaseShift leaves |0⟩ alone and maps |1⟩ to e^(iφ)|1⟩.
func PhaseShift(phi float64) Gate {
	return NewGate(1, NewMatrix([][]Complex{
		{One, Zero},
		{Zero, NewEuler(1, phi)},
	}))
}

// Swap exchanges the two qubits: |01⟩ ↔ |10⟩.
func Swap() Gate {
	return NewGate(2, NewRealMatrix([][]float64{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}))
}

// SqrtSwap is half a swap; applied twice it equals Swap.
func SqrtSwap() Gate {
	a := NewComplex(0.5, 0.5)
	b := NewComplex(0.5, -0.5)

	return NewGate(2, NewMatrix([][]Complex{
		{One, Zero, Zero, Zero},
		{Zero, a, b, Zero},
		{Zero, b, a, Zero},
		{Zero, Zero, Zero, One},
	}))
}

// ControlledNot flips qubit 1 when qubit 0 is set: 10 → 11, 11 → 10.
func ControlledNot() Gate {
	return NewGate(2, NewRealMatrix([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}))
}

/*
Controlled applies the single-qubit unitary u to qubit 1 when qubit 0 is
set, by embedding u in the lower-right block of an identity-seeded template.
*/
func Controlled(u Matrix) Gate {
	if u.Size() != 2 {
		violate(ErrDimensionMismatch, "controlled gate needs a 2x2 unitary, got %dx%d", u.Size(), u.Size())
	}

	m := NewRealMatrix([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	m.Embed(u, 2, 2)

	return NewGate(2, m)
}

func ControlledX() Gate {
	return Controlled(PauliX().Matrix())
}

func ControlledY() Gate {
	return Controlled(PauliY().Matrix())
}

func ControlledZ() Gate {
	return Controlled(PauliZ().Matrix())
}
