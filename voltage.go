package ohms

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Voltage type represents an electrical potential difference, stored as a
// whole number of microvolts (µV). Unlike the other quantity types, a
// voltage may be negative.
// The zero value is a voltage of 0 µV.
// Voltage is designed to be safe for concurrent use by multiple goroutines.
type Voltage struct {
	uvolts int64 // canonical value in microvolts
}

// VoltageFromMicroVolts returns a voltage equal to the given number of whole
// microvolts. Construction from canonical units cannot fail.
// See also method [Voltage.MicroVolts].
func VoltageFromMicroVolts(microvolts int64) Voltage {
	return Voltage{uvolts: microvolts}
}

// NewVoltage returns a voltage equal to value units.
//
// NewVoltage returns an error if:
//   - the unit is not a voltage unit;
//   - the value does not fit the microvolt storage range.
func NewVoltage(value int64, unit Unit) (Voltage, error) {
	v, err := newVoltage(value, unit)
	if err != nil {
		return Voltage{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return v, nil
}

func newVoltage(value int64, unit Unit) (Voltage, error) {
	if unit.Kind() != KindVoltage {
		return Voltage{}, ErrUnitMismatch
	}
	n, ok := mulInt64(value, int64(unit.ratio()))
	if !ok {
		return Voltage{}, ErrOverflow
	}
	return Voltage{uvolts: n}, nil
}

// MustNewVoltage is like [NewVoltage] but panics if the voltage cannot be
// constructed. It simplifies safe initialization of global variables
// holding voltages.
func MustNewVoltage(value int64, unit Unit) Voltage {
	v, err := NewVoltage(value, unit)
	if err != nil {
		panic(fmt.Sprintf("NewVoltage(%v, %v) failed: %v", value, unit, err))
	}
	return v
}

// NewVoltageFromFloat64 converts a float to a voltage, truncating any
// fraction of a microvolt toward zero. Negative values are preserved.
//
// NewVoltageFromFloat64 returns an error if:
//   - the unit is not a voltage unit;
//   - the value is NaN or infinite;
//   - the result does not fit the microvolt storage range.
func NewVoltageFromFloat64(value float64, unit Unit) (Voltage, error) {
	v, err := newVoltageFromFloat64(value, unit)
	if err != nil {
		return Voltage{}, fmt.Errorf("converting %v %v: %w", value, unit, err)
	}
	return v, nil
}

func newVoltageFromFloat64(value float64, unit Unit) (Voltage, error) {
	if unit.Kind() != KindVoltage {
		return Voltage{}, ErrUnitMismatch
	}
	if err := checkFloat(value); err != nil {
		return Voltage{}, err
	}
	n, err := floatToInt64(value * float64(unit.ratio()))
	if err != nil {
		return Voltage{}, err
	}
	return Voltage{uvolts: n}, nil
}

// ParseVoltage converts unit and value strings to a voltage.
// The value is scaled exactly, and any fraction of a microvolt is truncated
// toward zero.
// See also constructor [ParseUnit] and method [decimal.Parse].
//
// [decimal.Parse]: https://pkg.go.dev/github.com/govalues/decimal#Parse
func ParseVoltage(unit, value string) (Voltage, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Voltage{}, fmt.Errorf("parsing unit: %w", err)
	}
	if u.Kind() != KindVoltage {
		return Voltage{}, fmt.Errorf("parsing voltage: %w", ErrUnitMismatch)
	}
	d, err := decimal.Parse(value)
	if err != nil {
		return Voltage{}, fmt.Errorf("parsing voltage: %w", err)
	}
	n, err := decimalToInt64(d, u)
	if err != nil {
		return Voltage{}, fmt.Errorf("parsing voltage: %w", err)
	}
	return Voltage{uvolts: n}, nil
}

// MustParseVoltage is like [ParseVoltage] but panics if any of the strings
// cannot be parsed. It simplifies safe initialization of global variables
// holding voltages.
func MustParseVoltage(unit, value string) Voltage {
	v, err := ParseVoltage(unit, value)
	if err != nil {
		panic(fmt.Sprintf("ParseVoltage(%q, %q) failed: %v", unit, value, err))
	}
	return v
}

// MicroVolts returns the voltage as a whole number of microvolts (µV).
// See also constructor [VoltageFromMicroVolts].
func (v Voltage) MicroVolts() int64 {
	return v.uvolts
}

// MilliVolts returns the voltage as a fractional number of millivolts (mV).
// This conversion is lossy and cannot fail.
func (v Voltage) MilliVolts() float64 {
	return float64(v.uvolts) / 1_000
}

// Volts returns the voltage as a fractional number of volts (V).
// This conversion is lossy and cannot fail.
func (v Voltage) Volts() float64 {
	return float64(v.uvolts) / 1_000_000
}

// KiloVolts returns the voltage as a fractional number of kilovolts (kV).
// This conversion is lossy and cannot fail.
func (v Voltage) KiloVolts() float64 {
	return float64(v.uvolts) / 1_000_000_000
}

// Float64 returns the voltage as a floating-point number of the given unit.
// This conversion may lose data, as float64 cannot represent every
// canonical value exactly.
//
// Float64 returns an error if the unit is not a voltage unit.
func (v Voltage) Float64(unit Unit) (float64, error) {
	if unit.Kind() != KindVoltage {
		return 0, fmt.Errorf("converting %v to %v: %w", v, unit, ErrUnitMismatch)
	}
	return float64(v.uvolts) / float64(unit.ratio()), nil
}

// Decimal returns the voltage as an exact decimal number of the given unit.
//
// Decimal returns an error if the unit is not a voltage unit.
func (v Voltage) Decimal(unit Unit) (decimal.Decimal, error) {
	if unit.Kind() != KindVoltage {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", v, unit, ErrUnitMismatch)
	}
	d, err := decimal.New(v.uvolts, unit.scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %v: %w", v, unit, err)
	}
	return d, nil
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Voltage) IsZero() bool {
	return v.uvolts == 0
}

// IsPos returns:
//
//	true  if v >= 0
//	false otherwise
func (v Voltage) IsPos() bool {
	return v.uvolts >= 0
}

// IsNeg returns:
//
//	true  if v < 0
//	false otherwise
func (v Voltage) IsNeg() bool {
	return v.uvolts < 0
}

// Abs returns the absolute value of the voltage.
//
// Abs returns an error if the voltage is the most negative representable
// value, whose magnitude does not fit the microvolt storage range.
func (v Voltage) Abs() (Voltage, error) {
	if v.uvolts == math.MinInt64 {
		return Voltage{}, fmt.Errorf("computing [abs(%v)]: %w", v, ErrOverflow)
	}
	if v.uvolts < 0 {
		return Voltage{uvolts: -v.uvolts}, nil
	}
	return v, nil
}

// Neg returns the voltage with the opposite sign.
//
// Neg returns an error if the voltage is the most negative representable
// value, whose opposite does not fit the microvolt storage range.
func (v Voltage) Neg() (Voltage, error) {
	if v.uvolts == math.MinInt64 {
		return Voltage{}, fmt.Errorf("computing [-%v]: %w", v, ErrOverflow)
	}
	return Voltage{uvolts: -v.uvolts}, nil
}

// absMicroVolts returns the magnitude of the voltage in microvolts.
// Valid for every voltage, including the most negative one.
func (v Voltage) absMicroVolts() uint64 {
	if v.uvolts < 0 {
		return uint64(-(v.uvolts + 1)) + 1
	}
	return uint64(v.uvolts)
}

// Cmp compares voltages and returns:
//
//	-1 if v < b
//	 0 if v = b
//	+1 if v > b
func (v Voltage) Cmp(b Voltage) int {
	switch {
	case v.uvolts < b.uvolts:
		return -1
	case v.uvolts > b.uvolts:
		return 1
	}
	return 0
}

// Min returns the smaller voltage.
func (v Voltage) Min(b Voltage) Voltage {
	if v.Cmp(b) <= 0 {
		return v
	}
	return b
}

// Max returns the larger voltage.
func (v Voltage) Max(b Voltage) Voltage {
	if v.Cmp(b) >= 0 {
		return v
	}
	return b
}

// Add returns the sum of voltages v and b.
//
// Add returns an error if the sum does not fit the microvolt storage range.
func (v Voltage) Add(b Voltage) (Voltage, error) {
	n, ok := addInt64(v.uvolts, b.uvolts)
	if !ok {
		return Voltage{}, fmt.Errorf("computing [%v + %v]: %w", v, b, ErrOverflow)
	}
	return Voltage{uvolts: n}, nil
}

// Sub returns the difference between voltages v and b.
//
// Sub returns an error if the difference does not fit the microvolt
// storage range.
func (v Voltage) Sub(b Voltage) (Voltage, error) {
	n, ok := subInt64(v.uvolts, b.uvolts)
	if !ok {
		return Voltage{}, fmt.Errorf("computing [%v - %v]: %w", v, b, ErrOverflow)
	}
	return Voltage{uvolts: n}, nil
}

// Mul returns the voltage scaled by the integer factor e.
// A negative factor flips the sign of the voltage.
//
// Mul returns an error if the product does not fit the microvolt
// storage range.
func (v Voltage) Mul(e int64) (Voltage, error) {
	n, ok := mulInt64(v.uvolts, e)
	if !ok {
		return Voltage{}, fmt.Errorf("computing [%v * %v]: %w", v, e, ErrOverflow)
	}
	return Voltage{uvolts: n}, nil
}

// Div returns the voltage divided by the integer divisor e, truncated
// toward zero to a whole microvolt.
//
// Div returns an error if:
//   - the divisor is 0;
//   - the quotient does not fit the microvolt storage range, which happens
//     only when the most negative voltage is divided by -1.
func (v Voltage) Div(e int64) (Voltage, error) {
	if e == 0 {
		return Voltage{}, fmt.Errorf("computing [%v / %v]: %w", v, e, ErrDivisionByZero)
	}
	n, ok := divInt64(v.uvolts, e)
	if !ok {
		return Voltage{}, fmt.Errorf("computing [%v / %v]: %w", v, e, ErrOverflow)
	}
	return Voltage{uvolts: n}, nil
}

// MulFloat64 returns the voltage scaled by the floating-point factor e,
// truncated toward zero to a whole microvolt.
//
// MulFloat64 returns an error if:
//   - the factor is infinite or NaN;
//   - the product does not fit the microvolt storage range.
func (v Voltage) MulFloat64(e float64) (Voltage, error) {
	n, err := v.mulFloat64(e)
	if err != nil {
		return Voltage{}, fmt.Errorf("computing [%v * %v]: %w", v, e, err)
	}
	return n, nil
}

func (v Voltage) mulFloat64(e float64) (Voltage, error) {
	if err := checkFloat(e); err != nil {
		return Voltage{}, err
	}
	n, err := floatToInt64(float64(v.uvolts) * e)
	if err != nil {
		return Voltage{}, err
	}
	return Voltage{uvolts: n}, nil
}

// DivFloat64 returns the voltage divided by the floating-point divisor e,
// truncated toward zero to a whole microvolt.
//
// DivFloat64 returns an error if:
//   - the divisor is 0;
//   - the divisor is infinite or NaN;
//   - the quotient does not fit the microvolt storage range.
func (v Voltage) DivFloat64(e float64) (Voltage, error) {
	n, err := v.divFloat64(e)
	if err != nil {
		return Voltage{}, fmt.Errorf("computing [%v / %v]: %w", v, e, err)
	}
	return n, nil
}

func (v Voltage) divFloat64(e float64) (Voltage, error) {
	if e == 0 {
		return Voltage{}, ErrDivisionByZero
	}
	if err := checkFloat(e); err != nil {
		return Voltage{}, err
	}
	n, err := floatToInt64(float64(v.uvolts) / e)
	if err != nil {
		return Voltage{}, err
	}
	return Voltage{uvolts: n}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the voltage, rendered with the largest denomination
// for which the magnitude is at least one and two decimal places.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Voltage) String() string {
	s := formatCanonical(v.absMicroVolts(), voltageUnits)
	if v.uvolts < 0 {
		return "-" + s
	}
	return s
}
