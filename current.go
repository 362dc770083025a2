package ohms

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Current type represents an electrical current, stored as a whole number
// of microamps (µA). A current can never be negative.
// The zero value is a current of 0 µA.
// Current is designed to be safe for concurrent use by multiple goroutines.
type Current struct {
	uamps uint64 // canonical value in microamps
}

// CurrentFromMicroAmps returns a current equal to the given number of whole
// microamps. Construction from canonical units cannot fail.
// See also method [Current.MicroAmps].
func CurrentFromMicroAmps(microamps uint64) Current {
	return Current{uamps: microamps}
}

// NewCurrent returns a current equal to value units.
//
// NewCurrent returns an error if:
//   - the unit is not a current unit;
//   - the value does not fit the microamp storage range.
func NewCurrent(value uint64, unit Unit) (Current, error) {
	c, err := newCurrent(value, unit)
	if err != nil {
		return Current{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return c, nil
}

func newCurrent(value uint64, unit Unit) (Current, error) {
	if unit.Kind() != KindCurrent {
		return Current{}, ErrUnitMismatch
	}
	v, ok := mulUint64(value, unit.ratio())
	if !ok {
		return Current{}, ErrOverflow
	}
	return Current{uamps: v}, nil
}

// MustNewCurrent is like [NewCurrent] but panics if the current cannot be
// constructed. It simplifies safe initialization of global variables
// holding currents.
func MustNewCurrent(value uint64, unit Unit) Current {
	c, err := NewCurrent(value, unit)
	if err != nil {
		panic(fmt.Sprintf("NewCurrent(%v, %v) failed: %v", value, unit, err))
	}
	return c
}

// NewCurrentFromFloat64 converts a float to a current, truncating any
// fraction of a microamp toward zero.
// See also method [Current.Float64].
//
// NewCurrentFromFloat64 returns an error if:
//   - the unit is not a current unit;
//   - the value is NaN or infinite;
//   - the value is negative;
//   - the result does not fit the microamp storage range.
func NewCurrentFromFloat64(value float64, unit Unit) (Current, error) {
	c, err := newCurrentFromFloat64(value, unit)
	if err != nil {
		return Current{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return c, nil
}

func newCurrentFromFloat64(value float64, unit Unit) (Current, error) {
	if unit.Kind() != KindCurrent {
		return Current{}, ErrUnitMismatch
	}
	if err := checkPositiveFloat(value); err != nil {
		return Current{}, err
	}
	v, err := floatToUint64(value * float64(unit.ratio()))
	if err != nil {
		return Current{}, err
	}
	return Current{uamps: v}, nil
}

// ParseCurrent converts unit and value strings to a current.
// The value is scaled exactly, and any fraction of a microamp is truncated
// toward zero.
// See also constructor [ParseUnit] and method [decimal.Parse].
//
// [decimal.Parse]: https://pkg.go.dev/github.com/govalues/decimal#Parse
func ParseCurrent(unit, value string) (Current, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Current{}, fmt.Errorf("parsing unit: %w", err)
	}
	if u.Kind() != KindCurrent {
		return Current{}, fmt.Errorf("parsing current: %w", ErrUnitMismatch)
	}
	d, err := decimal.Parse(value)
	if err != nil {
		return Current{}, fmt.Errorf("parsing current: %w", err)
	}
	v, err := decimalToUint64(d, u)
	if err != nil {
		return Current{}, fmt.Errorf("parsing current: %w", err)
	}
	return Current{uamps: v}, nil
}

// MustParseCurrent is like [ParseCurrent] but panics if any of the strings
// cannot be parsed. It simplifies safe initialization of global variables
// holding currents.
func MustParseCurrent(unit, value string) Current {
	c, err := ParseCurrent(unit, value)
	if err != nil {
		panic(fmt.Sprintf("ParseCurrent(%q, %q) failed: %v", unit, value, err))
	}
	return c
}

// MicroAmps returns the current as a whole number of microamps (µA).
// See also constructor [CurrentFromMicroAmps].
func (c Current) MicroAmps() uint64 {
	return c.uamps
}

// MilliAmps returns the current as a fractional number of milliamps (mA).
// This conversion is lossy and cannot fail.
func (c Current) MilliAmps() float64 {
	return float64(c.uamps) / 1_000
}

// Amps returns the current as a fractional number of amps (A).
// This conversion is lossy and cannot fail.
func (c Current) Amps() float64 {
	return float64(c.uamps) / 1_000_000
}

// Float64 returns the current as a floating-point number of the given unit.
// This conversion may lose data, as float64 cannot represent every
// canonical value exactly.
//
// Float64 returns an error if the unit is not a current unit.
func (c Current) Float64(unit Unit) (float64, error) {
	if unit.Kind() != KindCurrent {
		return 0, fmt.Errorf("converting %v to %v: %w", c, unit, ErrUnitMismatch)
	}
	return float64(c.uamps) / float64(unit.ratio()), nil
}

// Decimal returns the current as an exact decimal number of the given unit.
//
// Decimal returns an error if:
//   - the unit is not a current unit;
//   - the current exceeds math.MaxInt64 microamps, the range of the
//     decimal coefficient.
func (c Current) Decimal(unit Unit) (decimal.Decimal, error) {
	if unit.Kind() != KindCurrent {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", c, unit, ErrUnitMismatch)
	}
	if c.uamps > math.MaxInt64 {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", c, unit, ErrOverflow)
	}
	d, err := decimal.New(int64(c.uamps), unit.scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", c, unit, err)
	}
	return d, nil
}

// IsZero returns:
//
//	true  if c = 0
//	false otherwise
func (c Current) IsZero() bool {
	return c.uamps == 0
}

// Cmp compares currents and returns:
//
//	-1 if c < b
//	 0 if c = b
//	+1 if c > b
func (c Current) Cmp(b Current) int {
	switch {
	case c.uamps < b.uamps:
		return -1
	case c.uamps > b.uamps:
		return 1
	}
	return 0
}

// Min returns the smaller current.
func (c Current) Min(b Current) Current {
	if c.Cmp(b) <= 0 {
		return c
	}
	return b
}

// Max returns the larger current.
func (c Current) Max(b Current) Current {
	if c.Cmp(b) >= 0 {
		return c
	}
	return b
}

// Add returns the sum of currents c and b.
//
// Add returns an error if the sum does not fit the microamp storage range.
func (c Current) Add(b Current) (Current, error) {
	v, ok := addUint64(c.uamps, b.uamps)
	if !ok {
		return Current{}, fmt.Errorf("computing [%v + %v]: %w", c, b, ErrOverflow)
	}
	return Current{uamps: v}, nil
}

// Sub returns the difference between currents c and b.
//
// Sub returns an error if b is greater than c, as a current cannot
// be negative.
func (c Current) Sub(b Current) (Current, error) {
	v, ok := subUint64(c.uamps, b.uamps)
	if !ok {
		return Current{}, fmt.Errorf("computing [%v - %v]: %w", c, b, ErrOverflow)
	}
	return Current{uamps: v}, nil
}

// Mul returns the current scaled by the integer factor e.
//
// Mul returns an error if:
//   - the factor is negative, as a current cannot be negative;
//   - the product does not fit the microamp storage range.
func (c Current) Mul(e int64) (Current, error) {
	v, err := c.mul(e)
	if err != nil {
		return Current{}, fmt.Errorf("computing [%v * %v]: %w", c, e, err)
	}
	return v, nil
}

func (c Current) mul(e int64) (Current, error) {
	if e < 0 {
		return Current{}, ErrNegativeOperand
	}
	v, ok := mulUint64(c.uamps, uint64(e))
	if !ok {
		return Current{}, ErrOverflow
	}
	return Current{uamps: v}, nil
}

// Div returns the current divided by the integer divisor e, truncated
// toward zero to a whole microamp.
//
// Div returns an error if:
//   - the divisor is 0;
//   - the divisor is negative, as a current cannot be negative.
func (c Current) Div(e int64) (Current, error) {
	switch {
	case e == 0:
		return Current{}, fmt.Errorf("computing [%v / %v]: %w", c, e, ErrDivisionByZero)
	case e < 0:
		return Current{}, fmt.Errorf("computing [%v / %v]: %w", c, e, ErrNegativeOperand)
	}
	return Current{uamps: c.uamps / uint64(e)}, nil
}

// MulFloat64 returns the current scaled by the floating-point factor e,
// truncated toward zero to a whole microamp.
// Multiplying by zero returns a zero current for any c, including the
// maximum representable current.
//
// MulFloat64 returns an error if:
//   - the factor is infinite or NaN;
//   - the factor is negative, as a current cannot be negative;
//   - the product does not fit the microamp storage range.
func (c Current) MulFloat64(e float64) (Current, error) {
	v, err := c.mulFloat64(e)
	if err != nil {
		return Current{}, fmt.Errorf("computing [%v * %v]: %w", c, e, err)
	}
	return v, nil
}

func (c Current) mulFloat64(e float64) (Current, error) {
	if err := checkPositiveFloat(e); err != nil {
		return Current{}, err
	}
	if e == 0 {
		// Zero is always representable, so the conversion path with its
		// overflow check is skipped.
		return Current{}, nil
	}
	v, err := floatToUint64(float64(c.uamps) * e)
	if err != nil {
		return Current{}, err
	}
	return Current{uamps: v}, nil
}

// DivFloat64 returns the current divided by the floating-point divisor e,
// truncated toward zero to a whole microamp.
//
// DivFloat64 returns an error if:
//   - the divisor is 0;
//   - the divisor is infinite or NaN;
//   - the divisor is negative, as a current cannot be negative;
//   - the quotient does not fit the microamp storage range.
func (c Current) DivFloat64(e float64) (Current, error) {
	v, err := c.divFloat64(e)
	if err != nil {
		return Current{}, fmt.Errorf("computing [%v / %v]: %w", c, e, err)
	}
	return v, nil
}

func (c Current) divFloat64(e float64) (Current, error) {
	if e == 0 {
		return Current{}, ErrDivisionByZero
	}
	if err := checkPositiveFloat(e); err != nil {
		return Current{}, err
	}
	v, err := floatToUint64(float64(c.uamps) / e)
	if err != nil {
		return Current{}, err
	}
	return Current{uamps: v}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the current, rendered with the largest denomination
// for which the magnitude is at least one and two decimal places.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Current) String() string {
	return formatCanonical(c.uamps, currentUnits)
}
