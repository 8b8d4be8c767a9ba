package qsim

import (
	"math"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/floats"
)

/*
QuantumComputer owns one register and drives its lifecycle:

	New / Initialize / Reset -> Initialized
	Initialized --Apply--> Initialized
	Initialized --Collapse--> Collapsed
	Collapsed --Value--> observed index

Superposed amplitudes are not observable, so Value is only valid after
Collapse, and Apply is only valid before it. A computer is owned by a
single caller and does no locking.
*/
type QuantumComputer struct {
	width     int
	state     Ket
	observed  int
	collapsed bool
	source    Source
	config    *Config
}

// NewQuantumComputer returns a width-qubit register in |0…0⟩.
func NewQuantumComputer(width int, opts ...Option) *QuantumComputer {
	if width < 1 {
		violate(ErrBadShape, "register width %d", width)
	}

	qc := &QuantumComputer{
		width:  width,
		config: NewConfig(),
	}

	for _, opt := range opts {
		opt(qc)
	}

	if qc.source == nil {
		if qc.config.Deterministic {
			qc.source = NewSeededSource(qc.config.Seed)
		} else {
			qc.source = NewEntropySource()
		}
	}

	errnie.Info(
		"NewQuantumComputer - width %d, deterministic %v, epsilon %g",
		width,
		qc.config.Deterministic,
		qc.config.Epsilon,
	)

	qc.Reset()
	return qc
}

func (qc *QuantumComputer) Width() int {
	return qc.width
}

func (qc *QuantumComputer) Collapsed() bool {
	return qc.collapsed
}

// State returns a copy of the register's amplitudes.
func (qc *QuantumComputer) State() Ket {
	return qc.state.Clone()
}

// Initialize puts the register in basis state |value⟩ from any state.
func (qc *QuantumComputer) Initialize(value int) {
	size := KetSize(qc.width)
	if value < 0 || value >= size {
		violate(ErrOutOfRange, "initial value %d outside [0, %d)", value, size)
	}

	qc.state = NewBasisKet(size, value)
	qc.observed = 0
	qc.collapsed = false
}

// Apply runs g on the leading qubits of the register.
func (qc *QuantumComputer) Apply(g Gate) {
	qc.ApplyAt(g, 0)
}

// ApplyAt runs g on qubits [qubit, qubit+g.Width()).
func (qc *QuantumComputer) ApplyAt(g Gate, qubit int) {
	if qc.collapsed {
		violate(ErrCollapsed, "apply after collapse, call Initialize or Reset first")
	}

	if g.Width() > qc.width {
		violate(ErrWidthExceeded, "width %d gate on %d qubit register", g.Width(), qc.width)
	}

	qc.state.ApplyAt(g, qubit)
}

/*
Collapse measures the register. Each basis index i has probability
|amplitude_i|². One uniform draw u in [0, 1) selects the smallest index whose
cumulative probability exceeds u; the last cumulative value is clamped to 1
so rounding can never leave u unmatched. The register is then frozen at
that basis state.
*/
func (qc *QuantumComputer) Collapse() {
	if qc.collapsed {
		violate(ErrCollapsed, "collapse twice without Initialize or Reset")
	}

	probs := qc.state.Probabilities()
	cumulative := floats.CumSum(make([]float64, len(probs)), probs)

	if norm := cumulative[len(cumulative)-1]; math.Abs(norm-1) > qc.config.Epsilon {
		errnie.Info("Collapse - unnormalized state, norm %g", norm)
	}
	cumulative[len(cumulative)-1] = 1.0

	u := qc.source.Float64()
	observed := len(cumulative) - 1
	for i, c := range cumulative {
		if c > u {
			observed = i
			break
		}
	}

	errnie.Info("Collapse - draw %g, observed %d with probability %g", u, observed, probs[observed])

	qc.state = NewBasisKet(len(probs), observed)
	qc.observed = observed
	qc.collapsed = true
}

// Value is the classical outcome of the last Collapse.
func (qc *QuantumComputer) Value() int {
	if !qc.collapsed {
		violate(ErrNotCollapsed, "superposed register has no classical value")
	}
	return qc.observed
}

// Reset returns the register to |0…0⟩ and forgets the last outcome.
func (qc *QuantumComputer) Reset() {
	qc.Initialize(0)
}
