package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantumComputerLifecycle(t *testing.T) {
	Convey("Given a new two qubit computer", t, func() {
		qc := NewQuantumComputer(2, WithSeed(1))

		Convey("It should start initialized in |00⟩", func() {
			So(qc.Width(), ShouldEqual, 2)
			So(qc.Collapsed(), ShouldBeFalse)
			So(qc.State().Equal(NewBasisKet(4, 0)), ShouldBeTrue)
		})

		Convey("Value should not be readable before collapse", func() {
			err := violation(func() { qc.Value() })
			So(errors.Is(err, ErrNotCollapsed), ShouldBeTrue)
		})

		Convey("Initialize should accept every basis index", func() {
			for v := 0; v < 4; v++ {
				qc.Initialize(v)
				So(qc.State().Equal(NewBasisKet(4, v)), ShouldBeTrue)
			}
		})

		Convey("Initialize should reject indices outside the register", func() {
			err := violation(func() { qc.Initialize(4) })
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)

			err = violation(func() { qc.Initialize(-1) })
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
		})

		Convey("Apply should reject a gate wider than the register", func() {
			err := violation(func() { qc.Apply(IdentityGate(3)) })
			So(errors.Is(err, ErrWidthExceeded), ShouldBeTrue)
		})

		Convey("State should hand out a copy", func() {
			s := qc.State()
			s.Elements[0] = Zero
			So(qc.State().Equal(NewBasisKet(4, 0)), ShouldBeTrue)
		})

		Convey("When collapsed", func() {
			qc.Initialize(3)
			qc.Collapse()

			Convey("It should expose the classical value", func() {
				So(qc.Collapsed(), ShouldBeTrue)
				So(qc.Value(), ShouldEqual, 3)
			})

			Convey("Apply should be refused", func() {
				err := violation(func() { qc.Apply(PauliX()) })
				So(errors.Is(err, ErrCollapsed), ShouldBeTrue)
			})

			Convey("A second collapse should be refused", func() {
				err := violation(func() { qc.Collapse() })
				So(errors.Is(err, ErrCollapsed), ShouldBeTrue)
			})

			Convey("Initialize should return it to the initialized state", func() {
				qc.Initialize(1)
				So(qc.Collapsed(), ShouldBeFalse)
				So(qc.State().Equal(NewBasisKet(4, 1)), ShouldBeTrue)
			})

			Convey("Reset should restore |00⟩ and clear the value", func() {
				qc.Reset()
				So(qc.Width(), ShouldEqual, 2)
				So(qc.Collapsed(), ShouldBeFalse)
				So(qc.State().Equal(NewBasisKet(4, 0)), ShouldBeTrue)

				err := violation(func() { qc.Value() })
				So(errors.Is(err, ErrNotCollapsed), ShouldBeTrue)
			})
		})
	})

	Convey("Given a zero width", t, func() {
		err := violation(func() { NewQuantumComputer(0) })
		So(errors.Is(err, ErrBadShape), ShouldBeTrue)
	})
}

func TestQuantumComputerCollapse(t *testing.T) {
	Convey("Given |+⟩ and a fixed source", t, func() {
		source := NewFixedSource(0.2, 0.45, 0.55, 0.99)
		qc := NewQuantumComputer(1, WithSource(source))

		outcomes := make([]int, 0, 4)
		for range source.Draws {
			qc.Reset()
			qc.Apply(Hadamard())
			qc.Collapse()
			outcomes = append(outcomes, qc.Value())
		}

		Convey("The smallest index whose cumulative probability exceeds the draw should win", func() {
			So(outcomes, ShouldResemble, []int{0, 0, 1, 1})
		})
	})

	Convey("Given a collapse", t, func() {
		qc := NewQuantumComputer(2, WithSource(NewFixedSource(0.6)))
		qc.Apply(Hadamard())
		qc.ApplyAt(Hadamard(), 1)
		qc.Collapse()

		Convey("The state should be frozen to the observed basis vector", func() {
			So(qc.Value(), ShouldEqual, 2)
			So(qc.State().Equal(NewBasisKet(4, 2)), ShouldBeTrue)
		})

		Convey("Re-initializing from the observed value should continue from it", func() {
			observed := qc.Value()
			qc.Initialize(observed)
			qc.Apply(PauliX())
			qc.Collapse()
			So(qc.Value(), ShouldEqual, 0)
		})
	})

	Convey("Given a state whose probabilities sum just below one", t, func() {
		s := 1 - 1e-12
		leaky := NewGate(1, NewRealMatrix([][]float64{{0, s}, {s, 0}}))
		qc := NewQuantumComputer(1, WithSource(NewFixedSource(1-1e-13)))
		qc.Apply(leaky)
		qc.Collapse()

		Convey("The clamped last index should absorb the draw", func() {
			So(qc.Value(), ShouldEqual, 1)
		})
	})
}

func TestQuantumComputerStatistics(t *testing.T) {
	Convey("Given a Hadamard on |0⟩ measured 1000 times", t, func() {
		qc := NewQuantumComputer(1, WithSeed(2024))

		ones := 0
		for i := 0; i < 1000; i++ {
			qc.Initialize(0)
			qc.Apply(Hadamard())
			qc.Collapse()
			if qc.Value() == 1 {
				ones++
			}
			qc.Reset()
		}

		Convey("About half the outcomes should be 1", func() {
			So(ones, ShouldBeBetweenOrEqual, 400, 600)
		})
	})

	Convey("Given two computers with the same seed", t, func() {
		a := NewQuantumComputer(2, WithSeed(99))
		b := NewQuantumComputer(2, WithConfig(&Config{Epsilon: 1e-6, Seed: 99, Deterministic: true}))

		Convey("They should observe the same sequence", func() {
			for i := 0; i < 50; i++ {
				for _, qc := range []*QuantumComputer{a, b} {
					qc.Reset()
					qc.Apply(Hadamard())
					qc.ApplyAt(Hadamard(), 1)
					qc.Collapse()
				}
				So(a.Value(), ShouldEqual, b.Value())
			}
		})
	})
}
