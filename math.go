package ohms

import (
	"math"

	"github.com/govalues/decimal"
)

// Float limits of the canonical integer types.
// math.MaxUint64 and math.MaxInt64 round up to 2^64 and 2^63 when converted
// to float64, so the upper bound comparisons must be strict.
const (
	maxUint64Float = float64(1<<63) * 2 // 2^64
	maxInt64Float  = float64(1 << 63)   // 2^63
	minInt64Float  = -float64(1 << 63)  // exactly math.MinInt64
)

func addUint64(a, b uint64) (sum uint64, ok bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

func subUint64(a, b uint64) (diff uint64, ok bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

func mulUint64(a, b uint64) (prod uint64, ok bool) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, false
	}
	return a * b, true
}

func addInt64(a, b int64) (sum int64, ok bool) {
	if (b > 0 && a > math.MaxInt64-b) ||
		(b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt64(a, b int64) (diff int64, ok bool) {
	if (b > 0 && a < math.MinInt64+b) ||
		(b < 0 && a > math.MaxInt64+b) {
		return 0, false
	}
	return a - b, true
}

func mulInt64(a, b int64) (prod int64, ok bool) {
	if (a > 0 && b > 0 && a > math.MaxInt64/b) ||
		(a > 0 && b <= 0 && b < math.MinInt64/a) ||
		(a <= 0 && b > 0 && a < math.MinInt64/b) ||
		(a < 0 && b <= 0 && b < math.MaxInt64/a) {
		return 0, false
	}
	return a * b, true
}

func divInt64(a, b int64) (quot int64, ok bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

// checkFloat rejects NaN and infinite operands.
func checkFloat(f float64) error {
	switch {
	case math.IsInf(f, 0):
		return errInfinity
	case math.IsNaN(f):
		return errNaN
	}
	return nil
}

// checkPositiveFloat additionally rejects negative operands.
// A negative zero counts as zero.
func checkPositiveFloat(f float64) error {
	if err := checkFloat(f); err != nil {
		return err
	}
	if f < 0 {
		return ErrNegativeOperand
	}
	return nil
}

// floatToUint64 converts a scaled floating-point result to canonical units,
// truncating toward zero. It is the single choke point for all lossy
// float-to-unsigned conversions, keeping rounding and overflow behavior
// consistent across the quantity types.
func floatToUint64(f float64) (uint64, error) {
	if err := checkFloat(f); err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, ErrNegativeOperand
	}
	if f >= maxUint64Float {
		return 0, ErrOverflow
	}
	return uint64(f), nil
}

// floatToInt64 is the signed counterpart of [floatToUint64].
func floatToInt64(f float64) (int64, error) {
	if err := checkFloat(f); err != nil {
		return 0, err
	}
	if f >= maxInt64Float || f < minInt64Float {
		return 0, ErrOverflow
	}
	return int64(f), nil
}

// decimalToUint64 rescales d to canonical units of the given unit and
// truncates any sub-canonical fraction toward zero.
// Parseable magnitudes are capped at math.MaxInt64 canonical units, the
// range of the decimal coefficient.
func decimalToUint64(d decimal.Decimal, unit Unit) (uint64, error) {
	if d.IsNeg() {
		return 0, ErrNegativeOperand
	}
	n, err := decimalToInt64(d, unit)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// decimalToInt64 is the signed counterpart of [decimalToUint64].
func decimalToInt64(d decimal.Decimal, unit Unit) (int64, error) {
	e, err := d.Mul(decimal.MustNew(int64(unit.ratio()), 0))
	if err != nil {
		return 0, ErrOverflow
	}
	whole, _, ok := e.Trunc(0).Int64(0)
	if !ok {
		return 0, ErrOverflow
	}
	return whole, nil
}
