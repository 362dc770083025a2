package ohms

import (
	"database/sql/driver"
	"fmt"
)

// Kind identifies the physical quantity a [Unit] measures.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCurrent
	KindVoltage
	KindResistance
	KindPower
)

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Kind value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k Kind) String() string {
	switch k {
	case KindCurrent:
		return "current"
	case KindVoltage:
		return "voltage"
	case KindResistance:
		return "resistance"
	case KindPower:
		return "power"
	}
	return "unknown"
}

// Unit type represents a denomination of one of the four quantity types.
// The zero value is an unknown unit, rejected by every constructor.
//
// Unit is implemented as an integer index into an in-memory array that
// stores properties such as the symbol and the fixed power-of-1000 ratio
// to the canonical unit.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Unit value.
//
// When persisting a unit value, use the symbol returned by the
// [Unit.Symbol] method, rather than the integer index, as mapping between
// index and a particular unit may change in future versions.
type Unit uint8

const (
	unknownUnit Unit = iota

	MicroAmp
	MilliAmp
	Amp

	MicroVolt
	MilliVolt
	Volt
	KiloVolt

	MilliOhm
	Ohm
	KiloOhm
	MegaOhm

	MicroWatt
	MilliWatt
	Watt
	KiloWatt
)

// ratio is the number of canonical units in one unit.
// scale is the number of decimal digits between the unit and the canonical
// unit, always a multiple of 3.
var units = [...]struct {
	kind   Kind
	ratio  uint64
	scale  int
	symbol string
}{
	unknownUnit: {KindUnknown, 0, 0, "???"},

	MicroAmp: {KindCurrent, 1, 0, "µA"},
	MilliAmp: {KindCurrent, 1_000, 3, "mA"},
	Amp:      {KindCurrent, 1_000_000, 6, "A"},

	MicroVolt: {KindVoltage, 1, 0, "µV"},
	MilliVolt: {KindVoltage, 1_000, 3, "mV"},
	Volt:      {KindVoltage, 1_000_000, 6, "V"},
	KiloVolt:  {KindVoltage, 1_000_000_000, 9, "kV"},

	MilliOhm: {KindResistance, 1, 0, "mΩ"},
	Ohm:      {KindResistance, 1_000, 3, "Ω"},
	KiloOhm:  {KindResistance, 1_000_000, 6, "kΩ"},
	MegaOhm:  {KindResistance, 1_000_000_000, 9, "MΩ"},

	MicroWatt: {KindPower, 1, 0, "µW"},
	MilliWatt: {KindPower, 1_000, 3, "mW"},
	Watt:      {KindPower, 1_000_000, 6, "W"},
	KiloWatt:  {KindPower, 1_000_000_000, 9, "kW"},
}

var unitLookup = map[string]Unit{
	"µA": MicroAmp, "μA": MicroAmp, "uA": MicroAmp,
	"mA": MilliAmp,
	"A":  Amp,

	"µV": MicroVolt, "μV": MicroVolt, "uV": MicroVolt,
	"mV": MilliVolt,
	"V":  Volt,
	"kV": KiloVolt,

	"mΩ": MilliOhm, "mohm": MilliOhm,
	"Ω": Ohm, "ohm": Ohm,
	"kΩ": KiloOhm, "kohm": KiloOhm,
	"MΩ": MegaOhm, "Mohm": MegaOhm,

	"µW": MicroWatt, "μW": MicroWatt, "uW": MicroWatt,
	"mW": MilliWatt,
	"W":  Watt,
	"kW": KiloWatt,
}

// ParseUnit converts a string to a unit.
// The input string must be a unit symbol, such as:
//
//	mA
//	kΩ
//	µV
//
// The micro sign may be written as "µ" (U+00B5), "μ" (U+03BC), or the ASCII
// "u", and the ohm sign may be spelled out ("mohm", "ohm", "kohm", "Mohm").
// Symbols are case-sensitive: "mW" is a milliwatt, "MΩ" is a megaohm.
//
// ParseUnit returns an error if the string does not represent a valid
// unit symbol.
func ParseUnit(symbol string) (Unit, error) {
	u, ok := unitLookup[symbol]
	if !ok {
		return unknownUnit, fmt.Errorf("%w %q", errInvalidUnit, symbol)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(symbol string) Unit {
	u, err := ParseUnit(symbol)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", symbol, err))
	}
	return u
}

func (u Unit) index() Unit {
	if int(u) >= len(units) {
		return unknownUnit
	}
	return u
}

// Kind returns the physical quantity the unit measures.
func (u Unit) Kind() Kind {
	return units[u.index()].kind
}

// Symbol returns the symbol of the unit, such as "mA" or "kΩ".
func (u Unit) Symbol() string {
	return units[u.index()].symbol
}

// ratio returns the number of canonical units in one unit.
func (u Unit) ratio() uint64 {
	return units[u.index()].ratio
}

// scale returns the number of decimal digits between the unit and
// the canonical unit of its quantity.
func (u Unit) scale() int {
	return units[u.index()].scale
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Unit value.
// See also method [Unit.Symbol].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Symbol()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", unknownUnit, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the unit symbol.
// See also method [Unit.Symbol].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (u Unit) AppendText(text []byte) ([]byte, error) {
	return append(text, u.Symbol()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the unit symbol.
// See also method [Unit.Symbol].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Symbol()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", unknownUnit, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted unit symbol.
// See also method [Unit.Symbol].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 8)
	text = append(text, '"')
	text = append(text, u.Symbol()...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (u *Unit) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*u, err = ParseUnit(value)
	case []byte:
		*u, err = ParseUnit(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, unknownUnit, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (u Unit) Value() (driver.Value, error) {
	return u.Symbol(), nil
}
