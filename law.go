package ohms

import "fmt"

// Ohm's law and its rearrangements as cross-type operators.
//
// The canonical units are offset by one SI step: a microvolt divided by a
// milliohm is a milliamp, so intermediate values are rescaled by 1000 to
// land on the canonical unit of the result.

// Current calculates the current through a resistive load given the voltage
// across it, truncated toward zero to a whole microamp.
// The sign of the voltage is discarded: a current is never negative,
// regardless of voltage polarity.
//
// Current returns an error if:
//   - the resistance is zero, as an infinite current would result;
//   - the intermediate value does not fit the storage range.
func (v Voltage) Current(r Resistance) (Current, error) {
	if r.IsZero() {
		return Current{}, fmt.Errorf("computing [%v / %v]: %w", v, r, ErrZeroResistance)
	}
	nanovolts, ok := mulUint64(v.absMicroVolts(), 1_000)
	if !ok {
		return Current{}, fmt.Errorf("computing [%v / %v]: %w", v, r, ErrOverflow)
	}
	return Current{uamps: nanovolts / r.mohms}, nil
}

// Voltage calculates the voltage across a resistive load given the current
// through it, truncated toward zero to a whole microvolt.
// The result is never negative, as both operands are non-negative.
//
// Voltage returns an error if the intermediate value does not fit the
// storage range.
func (c Current) Voltage(r Resistance) (Voltage, error) {
	nanovolts, ok := mulUint64(c.uamps, r.mohms)
	if !ok {
		return Voltage{}, fmt.Errorf("computing [%v * %v]: %w", c, r, ErrOverflow)
	}
	// A uint64 nanovolt count divided by 1000 always fits an int64.
	return Voltage{uvolts: int64(nanovolts / 1_000)}, nil
}

// Voltage is the commuted form of [Current.Voltage].
func (r Resistance) Voltage(c Current) (Voltage, error) {
	return c.Voltage(r)
}

// Resistance calculates the resistance of a resistive load given the
// voltage across it and the current through it, truncated toward zero to a
// whole milliohm.
// The sign of the voltage is discarded.
//
// Resistance returns an error if:
//   - the current is zero, as an infinite resistance would result;
//   - the intermediate value does not fit the storage range.
func (v Voltage) Resistance(c Current) (Resistance, error) {
	if c.IsZero() {
		return Resistance{}, fmt.Errorf("computing [%v / %v]: %w", v, c, ErrZeroCurrent)
	}
	nanovolts, ok := mulUint64(v.absMicroVolts(), 1_000)
	if !ok {
		return Resistance{}, fmt.Errorf("computing [%v / %v]: %w", v, c, ErrOverflow)
	}
	return Resistance{mohms: nanovolts / c.uamps}, nil
}
