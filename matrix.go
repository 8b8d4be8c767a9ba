package qsim

import (
	"strings"
)

/*
Matrix is a square complex matrix stored row-major. Its backing slice is
allocated once and never resized, so a Matrix can be copied by value only
through Clone.
*/
type Matrix struct {
	size     int
	elements []Complex
}

// NewZeroMatrix allocates a d×d matrix of zeros.
func NewZeroMatrix(d int) Matrix {
	if d < 1 {
		violate(ErrBadShape, "matrix size %d", d)
	}

	return Matrix{
		size:     d,
		elements: make([]Complex, d*d),
	}
}

// Identity returns the d×d identity.
func Identity(d int) Matrix {
	m := NewZeroMatrix(d)
	for i := 0; i < d; i++ {
		m.elements[i*d+i] = One
	}
	return m
}

// NewMatrix builds a matrix from a literal grid. The grid must be square.
func NewMatrix(rows [][]Complex) Matrix {
	d := len(rows)
	m := NewZeroMatrix(d)

	for r, row := range rows {
		if len(row) != d {
			violate(ErrNonSquare, "row %d has %d columns, want %d", r, len(row), d)
		}
		copy(m.elements[r*d:(r+1)*d], row)
	}

	return m
}

// NewRealMatrix promotes a grid of real literals.
func NewRealMatrix(rows [][]float64) Matrix {
	grid := make([][]Complex, len(rows))
	for r, row := range rows {
		grid[r] = make([]Complex, len(row))
		for c, v := range row {
			grid[r][c] = Real(v)
		}
	}
	return NewMatrix(grid)
}

func (m Matrix) Size() int {
	return m.size
}

func (m Matrix) At(row, col int) Complex {
	m.checkIndex(row, col)
	return m.elements[row*m.size+col]
}

func (m Matrix) Set(row, col int, v Complex) {
	m.checkIndex(row, col)
	m.elements[row*m.size+col] = v
}

func (m Matrix) checkIndex(row, col int) {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		violate(ErrOutOfRange, "(%d, %d) in %dx%d matrix", row, col, m.size, m.size)
	}
}

func (m Matrix) Clone() Matrix {
	elements := make([]Complex, len(m.elements))
	copy(elements, m.elements)
	return Matrix{size: m.size, elements: elements}
}

// Mul returns m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.size != o.size {
		violate(ErrDimensionMismatch, "multiply %dx%d by %dx%d", m.size, m.size, o.size, o.size)
	}

	d := m.size
	out := NewZeroMatrix(d)

	for i := 0; i < d; i++ {
		for k := 0; k < d; k++ {
			a := m.elements[i*d+k]
			if a == Zero {
				continue
			}
			for j := 0; j < d; j++ {
				out.elements[i*d+j] = out.elements[i*d+j].Add(a.Mul(o.elements[k*d+j]))
			}
		}
	}

	return out
}

// MulVec returns m·v for a column vector of matching length.
func (m Matrix) MulVec(v []Complex) []Complex {
	if len(v) != m.size {
		violate(ErrDimensionMismatch, "multiply %dx%d by vector of %d", m.size, m.size, len(v))
	}

	out := make([]Complex, m.size)
	for i := 0; i < m.size; i++ {
		var acc Complex
		row := m.elements[i*m.size : (i+1)*m.size]
		for j, a := range row {
			if a == Zero {
				continue
			}
			acc = acc.Add(a.Mul(v[j]))
		}
		out[i] = acc
	}

	return out
}

/*
Tensor returns the Kronecker product m ⊗ o. Entry (r, c) of the result is
m[r/dO][c/dO] · o[r%dO][c%dO], so m occupies the high-order half of every
index and o the low-order half.
*/
func (m Matrix) Tensor(o Matrix) Matrix {
	dm, do := m.size, o.size
	d := dm * do
	out := NewZeroMatrix(d)

	for i := 0; i < dm; i++ {
		for j := 0; j < dm; j++ {
			a := m.elements[i*dm+j]
			if a == Zero {
				continue
			}
			for k := 0; k < do; k++ {
				for l := 0; l < do; l++ {
					out.elements[(i*do+k)*d+(j*do+l)] = a.Mul(o.elements[k*do+l])
				}
			}
		}
	}

	return out
}

// Embed overwrites the block of m starting at (row, col) with sub.
func (m Matrix) Embed(sub Matrix, row, col int) {
	if row < 0 || col < 0 || row+sub.size > m.size || col+sub.size > m.size {
		violate(ErrOutOfBounds, "%dx%d block at (%d, %d) in %dx%d matrix",
			sub.size, sub.size, row, col, m.size, m.size)
	}

	for r := 0; r < sub.size; r++ {
		copy(
			m.elements[(row+r)*m.size+col:(row+r)*m.size+col+sub.size],
			sub.elements[r*sub.size:(r+1)*sub.size],
		)
	}
}

// Extract copies out the size×size block starting at (row, col).
func (m Matrix) Extract(row, col, size int) Matrix {
	if size < 1 || row < 0 || col < 0 || row+size > m.size || col+size > m.size {
		violate(ErrOutOfBounds, "%dx%d block at (%d, %d) in %dx%d matrix",
			size, size, row, col, m.size, m.size)
	}

	out := NewZeroMatrix(size)
	for r := 0; r < size; r++ {
		copy(
			out.elements[r*size:(r+1)*size],
			m.elements[(row+r)*m.size+col:(row+r)*m.size+col+size],
		)
	}

	return out
}

// Adjoint is the conjugate transpose.
func (m Matrix) Adjoint() Matrix {
	d := m.size
	out := NewZeroMatrix(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out.elements[j*d+i] = m.elements[i*d+j].Conj()
		}
	}
	return out
}

// IsUnitary reports whether m·m† is the identity within Epsilon.
func (m Matrix) IsUnitary() bool {
	return m.Mul(m.Adjoint()).Equal(Identity(m.size))
}

// Equal compares element-wise within Epsilon. Matrices of different size are never equal.
func (m Matrix) Equal(o Matrix) bool {
	if m.size != o.size {
		return false
	}

	for i, a := range m.elements {
		if !a.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.size; r++ {
		sb.WriteString("[")
		for c := 0; c < m.size; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.elements[r*m.size+c].String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
