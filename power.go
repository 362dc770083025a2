package ohms

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Power type represents an electrical power, stored as a whole number of
// microwatts (µW). A power can never be negative.
// The zero value is a power of 0 µW.
// Power is designed to be safe for concurrent use by multiple goroutines.
type Power struct {
	uwatts uint64 // canonical value in microwatts
}

// PowerFromMicroWatts returns a power equal to the given number of whole
// microwatts. Construction from canonical units cannot fail.
// See also method [Power.MicroWatts].
func PowerFromMicroWatts(microwatts uint64) Power {
	return Power{uwatts: microwatts}
}

// NewPower returns a power equal to value units.
//
// NewPower returns an error if:
//   - the unit is not a power unit;
//   - the value does not fit the microwatt storage range.
func NewPower(value uint64, unit Unit) (Power, error) {
	p, err := newPower(value, unit)
	if err != nil {
		return Power{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return p, nil
}

func newPower(value uint64, unit Unit) (Power, error) {
	if unit.Kind() != KindPower {
		return Power{}, ErrUnitMismatch
	}
	v, ok := mulUint64(value, unit.ratio())
	if !ok {
		return Power{}, ErrOverflow
	}
	return Power{uwatts: v}, nil
}

// MustNewPower is like [NewPower] but panics if the power cannot be
// constructed.
func MustNewPower(value uint64, unit Unit) Power {
	p, err := NewPower(value, unit)
	if err != nil {
		panic(fmt.Sprintf("NewPower(%v, %v) failed: %v", value, unit, err))
	}
	return p
}

// NewPowerFromFloat64 converts a float to a power, truncating any fraction
// of a microwatt toward zero.
//
// NewPowerFromFloat64 returns an error if:
//   - the unit is not a power unit;
//   - the value is NaN or infinite;
//   - the value is negative;
//   - the result does not fit the microwatt storage range.
func NewPowerFromFloat64(value float64, unit Unit) (Power, error) {
	p, err := newPowerFromFloat64(value, unit)
	if err != nil {
		return Power{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return p, nil
}

func newPowerFromFloat64(value float64, unit Unit) (Power, error) {
	if unit.Kind() != KindPower {
		return Power{}, ErrUnitMismatch
	}
	if err := checkPositiveFloat(value); err != nil {
		return Power{}, err
	}
	v, err := floatToUint64(value * float64(unit.ratio()))
	if err != nil {
		return Power{}, err
	}
	return Power{uwatts: v}, nil
}

// ParsePower converts unit and value strings to a power.
// The value is scaled exactly, and any fraction of a microwatt is truncated
// toward zero.
func ParsePower(unit, value string) (Power, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Power{}, fmt.Errorf("parsing unit: %w", err)
	}
	if u.Kind() != KindPower {
		return Power{}, fmt.Errorf("parsing power: %w", ErrUnitMismatch)
	}
	d, err := decimal.Parse(value)
	if err != nil {
		return Power{}, fmt.Errorf("parsing power: %w", err)
	}
	v, err := decimalToUint64(d, u)
	if err != nil {
		return Power{}, fmt.Errorf("parsing power: %w", err)
	}
	return Power{uwatts: v}, nil
}

// MustParsePower is like [ParsePower] but panics if any of the strings
// cannot be parsed.
func MustParsePower(unit, value string) Power {
	p, err := ParsePower(unit, value)
	if err != nil {
		panic(fmt.Sprintf("ParsePower(%q, %q) failed: %v", unit, value, err))
	}
	return p
}

// MicroWatts returns the power as a whole number of microwatts (µW).
func (p Power) MicroWatts() uint64 {
	return p.uwatts
}

// MilliWatts returns the power as a fractional number of milliwatts (mW).
func (p Power) MilliWatts() float64 {
	return float64(p.uwatts) / 1_000
}

// Watts returns the power as a fractional number of watts (W).
func (p Power) Watts() float64 {
	return float64(p.uwatts) / 1_000_000
}

// KiloWatts returns the power as a fractional number of kilowatts (kW).
func (p Power) KiloWatts() float64 {
	return float64(p.uwatts) / 1_000_000_000
}

// Float64 returns the power as a floating-point number of the given unit.
// This conversion may lose data.
//
// Float64 returns an error if the unit is not a power unit.
func (p Power) Float64(unit Unit) (float64, error) {
	if unit.Kind() != KindPower {
		return 0, fmt.Errorf("converting %v to %v: %w", p, unit, ErrUnitMismatch)
	}
	return float64(p.uwatts) / float64(unit.ratio()), nil
}

// Decimal returns the power as an exact decimal number of the given unit.
//
// Decimal returns an error if:
//   - the unit is not a power unit;
//   - the power exceeds math.MaxInt64 microwatts, the range of the
//     decimal coefficient.
func (p Power) Decimal(unit Unit) (decimal.Decimal, error) {
	if unit.Kind() != KindPower {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", p, unit, ErrUnitMismatch)
	}
	if p.uwatts > math.MaxInt64 {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", p, unit, ErrOverflow)
	}
	d, err := decimal.New(int64(p.uwatts), unit.scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", p, unit, err)
	}
	return d, nil
}

// IsZero returns:
//
//	true  if p = 0
//	false otherwise
func (p Power) IsZero() bool {
	return p.uwatts == 0
}

// Cmp compares powers and returns:
//
//	-1 if p < b
//	 0 if p = b
//	+1 if p > b
func (p Power) Cmp(b Power) int {
	switch {
	case p.uwatts < b.uwatts:
		return -1
	case p.uwatts > b.uwatts:
		return 1
	}
	return 0
}

// Min returns the smaller power.
func (p Power) Min(b Power) Power {
	if p.Cmp(b) <= 0 {
		return p
	}
	return b
}

// Max returns the larger power.
func (p Power) Max(b Power) Power {
	if p.Cmp(b) >= 0 {
		return p
	}
	return b
}

// Add returns the sum of powers p and b.
//
// Add returns an error if the sum does not fit the microwatt storage range.
func (p Power) Add(b Power) (Power, error) {
	v, ok := addUint64(p.uwatts, b.uwatts)
	if !ok {
		return Power{}, fmt.Errorf("computing [%v + %v]: %w", p, b, ErrOverflow)
	}
	return Power{uwatts: v}, nil
}

// Sub returns the difference between powers p and b.
//
// Sub returns an error if b is greater than p, as a power cannot
// be negative.
func (p Power) Sub(b Power) (Power, error) {
	v, ok := subUint64(p.uwatts, b.uwatts)
	if !ok {
		return Power{}, fmt.Errorf("computing [%v - %v]: %w", p, b, ErrOverflow)
	}
	return Power{uwatts: v}, nil
}

// Mul returns the power scaled by the integer factor e.
//
// Mul returns an error if:
//   - the factor is negative, as a power cannot be negative;
//   - the product does not fit the microwatt storage range.
func (p Power) Mul(e int64) (Power, error) {
	v, err := p.mul(e)
	if err != nil {
		return Power{}, fmt.Errorf("computing [%v * %v]: %w", p, e, err)
	}
	return v, nil
}

func (p Power) mul(e int64) (Power, error) {
	if e < 0 {
		return Power{}, ErrNegativeOperand
	}
	v, ok := mulUint64(p.uwatts, uint64(e))
	if !ok {
		return Power{}, ErrOverflow
	}
	return Power{uwatts: v}, nil
}

// Div returns the power divided by the integer divisor e, truncated toward
// zero to a whole microwatt.
//
// Div returns an error if:
//   - the divisor is 0;
//   - the divisor is negative, as a power cannot be negative.
func (p Power) Div(e int64) (Power, error) {
	switch {
	case e == 0:
		return Power{}, fmt.Errorf("computing [%v / %v]: %w", p, e, ErrDivisionByZero)
	case e < 0:
		return Power{}, fmt.Errorf("computing [%v / %v]: %w", p, e, ErrNegativeOperand)
	}
	return Power{uwatts: p.uwatts / uint64(e)}, nil
}

// MulFloat64 returns the power scaled by the floating-point factor e,
// truncated toward zero to a whole microwatt.
// Multiplying by zero returns a zero power for any p.
//
// MulFloat64 returns an error if:
//   - the factor is infinite or NaN;
//   - the factor is negative, as a power cannot be negative;
//   - the product does not fit the microwatt storage range.
func (p Power) MulFloat64(e float64) (Power, error) {
	v, err := p.mulFloat64(e)
	if err != nil {
		return Power{}, fmt.Errorf("computing [%v * %v]: %w", p, e, err)
	}
	return v, nil
}

func (p Power) mulFloat64(e float64) (Power, error) {
	if err := checkPositiveFloat(e); err != nil {
		return Power{}, err
	}
	if e == 0 {
		// Zero is always representable, so the conversion path with its
		// overflow check is skipped.
		return Power{}, nil
	}
	v, err := floatToUint64(float64(p.uwatts) * e)
	if err != nil {
		return Power{}, err
	}
	return Power{uwatts: v}, nil
}

// DivFloat64 returns the power divided by the floating-point divisor e,
// truncated toward zero to a whole microwatt.
//
// DivFloat64 returns an error if:
//   - the divisor is 0;
//   - the divisor is infinite or NaN;
//   - the divisor is negative, as a power cannot be negative;
//   - the quotient does not fit the microwatt storage range.
func (p Power) DivFloat64(e float64) (Power, error) {
	v, err := p.divFloat64(e)
	if err != nil {
		return Power{}, fmt.Errorf("computing [%v / %v]: %w", p, e, err)
	}
	return v, nil
}

func (p Power) divFloat64(e float64) (Power, error) {
	if e == 0 {
		return Power{}, ErrDivisionByZero
	}
	if err := checkPositiveFloat(e); err != nil {
		return Power{}, err
	}
	v, err := floatToUint64(float64(p.uwatts) / e)
	if err != nil {
		return Power{}, err
	}
	return Power{uwatts: v}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the power, rendered with the largest denomination for
// which the magnitude is at least one and two decimal places.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Power) String() string {
	return formatCanonical(p.uwatts, powerUnits)
}
