package scicalc

import (
	"math"
	"strconv"
)

// Arithmetic and scientific primitives. The ones with restricted domains check
// their arguments first and return a *DomainError instead of producing an
// infinity or NaN.

// Add returns a + b.
func Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func Mul(a, b float64) float64 { return a * b }

// Div returns a / b. It fails if b is zero.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DomainError{Func: "/", X: b}
	}
	return a / b, nil
}

// Pow returns a^b.
func Pow(a, b float64) float64 { return math.Pow(a, b) }

// Sqrt returns the square root of x. It fails if x is negative.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &DomainError{Func: "sqrt", X: x}
	}
	return math.Sqrt(x), nil
}

// Log10 returns the base 10 logarithm of x. It fails if x is not positive.
func Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{Func: "log", X: x}
	}
	return math.Log10(x), nil
}

// Ln returns the natural logarithm of x. It fails if x is not positive.
func Ln(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{Func: "ln", X: x}
	}
	return math.Log(x), nil
}

// Exp returns e^x.
func Exp(x float64) float64 { return math.Exp(x) }

// Sin returns the sine of x, which is in degrees if degrees is true and in
// radians otherwise.
func Sin(x float64, degrees bool) float64 {
	if degrees {
		x = DegToRad(x)
	}
	return math.Sin(x)
}

// Cos returns the cosine of x, which is in degrees if degrees is true and in
// radians otherwise.
func Cos(x float64, degrees bool) float64 {
	if degrees {
		x = DegToRad(x)
	}
	return math.Cos(x)
}

// Tan returns the tangent of x, which is in degrees if degrees is true and in
// radians otherwise.
func Tan(x float64, degrees bool) float64 {
	if degrees {
		x = DegToRad(x)
	}
	return math.Tan(x)
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// DomainError is an error returned when an operation is applied to an argument
// outside its domain. It implements InputError.
type DomainError struct {
	// Col is the position of the operator or function in the expression, or
	// 0 if the error came from calling a primitive directly.
	Col int
	// Func is the operator or function name, e.g. "/" or "sqrt".
	Func string
	// X is the out-of-domain argument. For division, it is the divisor.
	X float64
}

func (err *DomainError) Error() string {
	if err.Func == "/" {
		return errpos(err.Col, "division by zero")
	}
	return errpos(err.Col, strconv.FormatFloat(err.X, 'g', -1, 64)+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// Is makes a DomainError match ErrDomain.
func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}
