package ohms

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Resistance type represents an electrical resistance, stored as a whole
// number of milliohms (mΩ). A resistance can never be negative.
// The zero value is a resistance of 0 mΩ.
// Resistance is designed to be safe for concurrent use by multiple goroutines.
type Resistance struct {
	mohms uint64 // canonical value in milliohms
}

// ResistanceFromMilliOhms returns a resistance equal to the given number of
// whole milliohms. Construction from canonical units cannot fail.
// See also method [Resistance.MilliOhms].
func ResistanceFromMilliOhms(milliohms uint64) Resistance {
	return Resistance{mohms: milliohms}
}

// NewResistance returns a resistance equal to value units.
//
// NewResistance returns an error if:
//   - the unit is not a resistance unit;
//   - the value does not fit the milliohm storage range.
func NewResistance(value uint64, unit Unit) (Resistance, error) {
	r, err := newResistance(value, unit)
	if err != nil {
		return Resistance{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return r, nil
}

func newResistance(value uint64, unit Unit) (Resistance, error) {
	if unit.Kind() != KindResistance {
		return Resistance{}, ErrUnitMismatch
	}
	v, ok := mulUint64(value, unit.ratio())
	if !ok {
		return Resistance{}, ErrOverflow
	}
	return Resistance{mohms: v}, nil
}

// MustNewResistance is like [NewResistance] but panics if the resistance
// cannot be constructed.
func MustNewResistance(value uint64, unit Unit) Resistance {
	r, err := NewResistance(value, unit)
	if err != nil {
		panic(fmt.Sprintf("NewResistance(%v, %v) failed: %v", value, unit, err))
	}
	return r
}

// NewResistanceFromFloat64 converts a float to a resistance, truncating any
// fraction of a milliohm toward zero.
//
// NewResistanceFromFloat64 returns an error if:
//   - the unit is not a resistance unit;
//   - the value is NaN or infinite;
//   - the value is negative;
//   - the result does not fit the milliohm storage range.
func NewResistanceFromFloat64(value float64, unit Unit) (Resistance, error) {
	r, err := newResistanceFromFloat64(value, unit)
	if err != nil {
		return Resistance{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return r, nil
}

func newResistanceFromFloat64(value float64, unit Unit) (Resistance, error) {
	if unit.Kind() != KindResistance {
		return Resistance{}, ErrUnitMismatch
	}
	if err := checkPositiveFloat(value); err != nil {
		return Resistance{}, err
	}
	v, err := floatToUint64(value * float64(unit.ratio()))
	if err != nil {
		return Resistance{}, err
	}
	return Resistance{mohms: v}, nil
}

// ParseResistance converts unit and value strings to a resistance.
// The value is scaled exactly, and any fraction of a milliohm is truncated
// toward zero.
func ParseResistance(unit, value string) (Resistance, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Resistance{}, fmt.Errorf("parsing unit: %w", err)
	}
	if u.Kind() != KindResistance {
		return Resistance{}, fmt.Errorf("parsing resistance: %w", ErrUnitMismatch)
	}
	d, err := decimal.Parse(value)
	if err != nil {
		return Resistance{}, fmt.Errorf("parsing resistance: %w", err)
	}
	v, err := decimalToUint64(d, u)
	if err != nil {
		return Resistance{}, fmt.Errorf("parsing resistance: %w", err)
	}
	return Resistance{mohms: v}, nil
}

// MustParseResistance is like [ParseResistance] but panics if any of the
// strings cannot be parsed.
func MustParseResistance(unit, value string) Resistance {
	r, err := ParseResistance(unit, value)
	if err != nil {
		panic(fmt.Sprintf("ParseResistance(%q, %q) failed: %v", unit, value, err))
	}
	return r
}

// MilliOhms returns the resistance as a whole number of milliohms (mΩ).
func (r Resistance) MilliOhms() uint64 {
	return r.mohms
}

// Ohms returns the resistance as a fractional number of ohms (Ω).
func (r Resistance) Ohms() float64 {
	return float64(r.mohms) / 1_000
}

// KiloOhms returns the resistance as a fractional number of kilohms (kΩ).
func (r Resistance) KiloOhms() float64 {
	return float64(r.mohms) / 1_000_000
}

// MegaOhms returns the resistance as a fractional number of megaohms (MΩ).
func (r Resistance) MegaOhms() float64 {
	return float64(r.mohms) / 1_000_000_000
}

// Float64 returns the resistance as a floating-point number of the given
// unit. This conversion may lose data.
//
// Float64 returns an error if the unit is not a resistance unit.
func (r Resistance) Float64(unit Unit) (float64, error) {
	if unit.Kind() != KindResistance {
		return 0, fmt.Errorf("converting %v to %v: %w", r, unit, ErrUnitMismatch)
	}
	return float64(r.mohms) / float64(unit.ratio()), nil
}

// Decimal returns the resistance as an exact decimal number of the given
// unit.
//
// Decimal returns an error if:
//   - the unit is not a resistance unit;
//   - the resistance exceeds math.MaxInt64 milliohms, the range of the
//     decimal coefficient.
func (r Resistance) Decimal(unit Unit) (decimal.Decimal, error) {
	if unit.Kind() != KindResistance {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", r, unit, ErrUnitMismatch)
	}
	if r.mohms > math.MaxInt64 {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", r, unit, ErrOverflow)
	}
	d, err := decimal.New(int64(r.mohms), unit.scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", r, unit, err)
	}
	return d, nil
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Resistance) IsZero() bool {
	return r.mohms == 0
}

// Cmp compares resistances and returns:
//
//	-1 if r < b
//	 0 if r = b
//	+1 if r > b
func (r Resistance) Cmp(b Resistance) int {
	switch {
	case r.mohms < b.mohms:
		return -1
	case r.mohms > b.mohms:
		return 1
	}
	return 0
}

// Min returns the smaller resistance.
func (r Resistance) Min(b Resistance) Resistance {
	if r.Cmp(b) <= 0 {
		return r
	}
	return b
}

// Max returns the larger resistance.
func (r Resistance) Max(b Resistance) Resistance {
	if r.Cmp(b) >= 0 {
		return r
	}
	return b
}

// Add returns the sum of resistances r and b.
//
// Add returns an error if the sum does not fit the milliohm storage range.
func (r Resistance) Add(b Resistance) (Resistance, error) {
	v, ok := addUint64(r.mohms, b.mohms)
	if !ok {
		return Resistance{}, fmt.Errorf("computing [%v + %v]: %w", r, b, ErrOverflow)
	}
	return Resistance{mohms: v}, nil
}

// Sub returns the difference between resistances r and b.
//
// Sub returns an error if b is greater than r, as a resistance cannot
// be negative.
func (r Resistance) Sub(b Resistance) (Resistance, error) {
	v, ok := subUint64(r.mohms, b.mohms)
	if !ok {
		return Resistance{}, fmt.Errorf("computing [%v - %v]: %w", r, b, ErrOverflow)
	}
	return Resistance{mohms: v}, nil
}

// Mul returns the resistance scaled by the integer factor e.
//
// Mul returns an error if:
//   - the factor is negative, as a resistance cannot be negative;
//   - the product does not fit the milliohm storage range.
func (r Resistance) Mul(e int64) (Resistance, error) {
	v, err := r.mul(e)
	if err != nil {
		return Resistance{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return v, nil
}

func (r Resistance) mul(e int64) (Resistance, error) {
	if e < 0 {
		return Resistance{}, ErrNegativeOperand
	}
	v, ok := mulUint64(r.mohms, uint64(e))
	if !ok {
		return Resistance{}, ErrOverflow
	}
	return Resistance{mohms: v}, nil
}

// Div returns the resistance divided by the integer divisor e, truncated
// toward zero to a whole milliohm.
//
// Div returns an error if:
//   - the divisor is 0;
//   - the divisor is negative, as a resistance cannot be negative.
func (r Resistance) Div(e int64) (Resistance, error) {
	switch {
	case e == 0:
		return Resistance{}, fmt.Errorf("computing [%v / %v]: %w", r, e, ErrDivisionByZero)
	case e < 0:
		return Resistance{}, fmt.Errorf("computing [%v / %v]: %w", r, e, ErrNegativeOperand)
	}
	return Resistance{mohms: r.mohms / uint64(e)}, nil
}

// MulFloat64 returns the resistance scaled by the floating-point factor e,
// truncated toward zero to a whole milliohm.
// Multiplying by zero returns a zero resistance for any r.
//
// MulFloat64 returns an error if:
//   - the factor is infinite or NaN;
//   - the factor is negative, as a resistance cannot be negative;
//   - the product does not fit the milliohm storage range.
func (r Resistance) MulFloat64(e float64) (Resistance, error) {
	v, err := r.mulFloat64(e)
	if err != nil {
		return Resistance{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return v, nil
}

func (r Resistance) mulFloat64(e float64) (Resistance, error) {
	if err := checkPositiveFloat(e); err != nil {
		return Resistance{}, err
	}
	if e == 0 {
		// Zero is always representable, so the conversion path with its
		// overflow check is skipped.
		return Resistance{}, nil
	}
	v, err := floatToUint64(float64(r.mohms) * e)
	if err != nil {
		return Resistance{}, err
	}
	return Resistance{mohms: v}, nil
}

// DivFloat64 returns the resistance divided by the floating-point divisor e,
// truncated toward zero to a whole milliohm.
//
// DivFloat64 returns an error if:
//   - the divisor is 0;
//   - the divisor is infinite or NaN;
//   - the divisor is negative, as a resistance cannot be negative;
//   - the quotient does not fit the milliohm storage range.
func (r Resistance) DivFloat64(e float64) (Resistance, error) {
	v, err := r.divFloat64(e)
	if err != nil {
		return Resistance{}, fmt.Errorf("computing [%v / %v]: %w", r, e, err)
	}
	return v, nil
}

func (r Resistance) divFloat64(e float64) (Resistance, error) {
	if e == 0 {
		return Resistance{}, ErrDivisionByZero
	}
	if err := checkPositiveFloat(e); err != nil {
		return Resistance{}, err
	}
	v, err := floatToUint64(float64(r.mohms) / e)
	if err != nil {
		return Resistance{}, err
	}
	return Resistance{mohms: v}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the resistance, rendered with the largest denomination
// for which the magnitude is at least one and two decimal places.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Resistance) String() string {
	return formatCanonical(r.mohms, resistanceUnits)
}
