package ohms

import (
	"encoding"
	"encoding/json"
	"fmt"
	"testing"
)

func TestUnit_Interfaces(t *testing.T) {
	var u any = Amp
	_, ok := u.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", u)
	}
	_, ok = u.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", u)
	}
	_, ok = u.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", u)
	}

	u = new(Unit)
	_, ok = u.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", u)
	}
	_, ok = u.(json.Unmarshaler)
	if !ok {
		t.Errorf("%T does not implement json.Unmarshaler", u)
	}
}

func TestParseUnit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			symbol string
			want   Unit
		}{
			{"µA", MicroAmp},
			{"μA", MicroAmp},
			{"uA", MicroAmp},
			{"mA", MilliAmp},
			{"A", Amp},
			{"µV", MicroVolt},
			{"mV", MilliVolt},
			{"V", Volt},
			{"kV", KiloVolt},
			{"mΩ", MilliOhm},
			{"mohm", MilliOhm},
			{"Ω", Ohm},
			{"ohm", Ohm},
			{"kΩ", KiloOhm},
			{"kohm", KiloOhm},
			{"MΩ", MegaOhm},
			{"Mohm", MegaOhm},
			{"µW", MicroWatt},
			{"uW", MicroWatt},
			{"mW", MilliWatt},
			{"W", Watt},
			{"kW", KiloWatt},
		}
		for _, tt := range tests {
			got, err := ParseUnit(tt.symbol)
			if err != nil {
				t.Errorf("ParseUnit(%q) failed: %v", tt.symbol, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", " ", "a", "ma", "MA", "amps", "Amp", "MW", "GΩ", "???", "mA ",
		}
		for _, tt := range tests {
			_, err := ParseUnit(tt)
			if err == nil {
				t.Errorf("ParseUnit(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseUnit(t *testing.T) {
	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustParseUnit(\"GΩ\") did not panic")
			}
		}()
		MustParseUnit("GΩ")
	})
}

func TestUnit_Kind(t *testing.T) {
	tests := []struct {
		unit Unit
		want Kind
	}{
		{unknownUnit, KindUnknown},
		{MicroAmp, KindCurrent},
		{Amp, KindCurrent},
		{MicroVolt, KindVoltage},
		{KiloVolt, KindVoltage},
		{MilliOhm, KindResistance},
		{MegaOhm, KindResistance},
		{MicroWatt, KindPower},
		{KiloWatt, KindPower},
		{Unit(200), KindUnknown},
	}
	for _, tt := range tests {
		got := tt.unit.Kind()
		if got != tt.want {
			t.Errorf("%v.Kind() = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindCurrent, "current"},
		{KindVoltage, "voltage"},
		{KindResistance, "resistance"},
		{KindPower, "power"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestUnit_Symbol(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{unknownUnit, "???"},
		{MicroAmp, "µA"},
		{MilliAmp, "mA"},
		{Amp, "A"},
		{KiloVolt, "kV"},
		{MilliOhm, "mΩ"},
		{MegaOhm, "MΩ"},
		{KiloWatt, "kW"},
		{Unit(200), "???"},
	}
	for _, tt := range tests {
		got := tt.unit.Symbol()
		if got != tt.want {
			t.Errorf("Unit(%d).Symbol() = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestUnit_Ratio(t *testing.T) {
	tests := []struct {
		unit      Unit
		wantRatio uint64
		wantScale int
	}{
		{MicroAmp, 1, 0},
		{MilliAmp, 1_000, 3},
		{Amp, 1_000_000, 6},
		{KiloVolt, 1_000_000_000, 9},
		{MilliOhm, 1, 0},
		{MegaOhm, 1_000_000_000, 9},
		{Watt, 1_000_000, 6},
	}
	for _, tt := range tests {
		if got := tt.unit.ratio(); got != tt.wantRatio {
			t.Errorf("%v.ratio() = %v, want %v", tt.unit, got, tt.wantRatio)
		}
		if got := tt.unit.scale(); got != tt.wantScale {
			t.Errorf("%v.scale() = %v, want %v", tt.unit, got, tt.wantScale)
		}
	}
}

func TestUnit_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text string
			want Unit
		}{
			{"mA", MilliAmp},
			{"kΩ", KiloOhm},
			{"uV", MicroVolt},
		}
		for _, tt := range tests {
			var got Unit
			err := got.UnmarshalText([]byte(tt.text))
			if err != nil {
				t.Errorf("UnmarshalText(%q) failed: %v", tt.text, err)
				continue
			}
			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Unit
		err := got.UnmarshalText([]byte("GΩ"))
		if err == nil {
			t.Error("UnmarshalText(\"GΩ\") did not fail")
		}
	})
}

func TestUnit_MarshalText(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{MilliAmp, "mA"},
		{MegaOhm, "MΩ"},
		{unknownUnit, "???"},
	}
	for _, tt := range tests {
		got, err := tt.unit.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", tt.unit, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%v.MarshalText() = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestUnit_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			json string
			want Unit
		}{
			{`"mA"`, MilliAmp},
			{`"kΩ"`, KiloOhm},
			{`null`, unknownUnit},
		}
		for _, tt := range tests {
			var got Unit
			err := json.Unmarshal([]byte(tt.json), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%q) failed: %v", tt.json, err)
				continue
			}
			if got != tt.want {
				t.Errorf("json.Unmarshal(%q) = %v, want %v", tt.json, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Unit
		err := json.Unmarshal([]byte(`"GΩ"`), &got)
		if err == nil {
			t.Error("json.Unmarshal(\"GΩ\") did not fail")
		}
	})
}

func TestUnit_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(KiloOhm)
	if err != nil {
		t.Fatalf("json.Marshal(KiloOhm) failed: %v", err)
	}
	want := `"kΩ"`
	if string(got) != want {
		t.Errorf("json.Marshal(KiloOhm) = %q, want %q", got, want)
	}
}

func TestUnit_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Unit
		}{
			{"mA", MilliAmp},
			{[]byte("kΩ"), KiloOhm},
		}
		for _, tt := range tests {
			var got Unit
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{"GΩ", []byte("amps"), 42, nil, 3.14}
		for _, tt := range tests {
			var got Unit
			err := got.Scan(tt)
			if err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestUnit_Value(t *testing.T) {
	got, err := MilliOhm.Value()
	if err != nil {
		t.Fatalf("MilliOhm.Value() failed: %v", err)
	}
	if got != "mΩ" {
		t.Errorf("MilliOhm.Value() = %v, want %q", got, "mΩ")
	}
}
