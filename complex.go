package qsim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used by every Equal in this package.
const Epsilon = 1e-10

// Complex is a cartesian complex scalar.
type Complex struct {
	Re float64
	Im float64
}

var (
	Zero = Complex{0, 0}
	One  = Complex{1, 0}
	I    = Complex{0, 1}
)

func NewComplex(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// NewEuler builds r·e^(iθ).
func NewEuler(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// Real promotes a real literal.
func Real(re float64) Complex {
	return Complex{Re: re}
}

func (c Complex) Add(o Complex) Complex {
	return Complex{c.Re + o.Re, c.Im + o.Im}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{c.Re - o.Re, c.Im - o.Im}
}

// Mul uses (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

func (c Complex) Neg() Complex {
	return Complex{-c.Re, -c.Im}
}

func (c Complex) Scale(f float64) Complex {
	return Complex{c.Re * f, c.Im * f}
}

func (c Complex) Conj() Complex {
	return Complex{c.Re, -c.Im}
}

// NormSqr is |c|², the Born-rule weight of an amplitude.
func (c Complex) NormSqr() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

func (c Complex) Equal(o Complex) bool {
	return c.EqualWithin(o, Epsilon)
}

func (c Complex) EqualWithin(o Complex, eps float64) bool {
	return scalar.EqualWithinAbs(c.Re, o.Re, eps) && scalar.EqualWithinAbs(c.Im, o.Im, eps)
}

func (c Complex) String() string {
	if c.Im < 0 {
		return fmt.Sprintf("%g-%gi", c.Re, -c.Im)
	}
	return fmt.Sprintf("%g+%gi", c.Re, c.Im)
}
