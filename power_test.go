package ohms

import (
	"errors"
	"math"
	"testing"
)

func TestNewPower(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value uint64
			unit  Unit
			want  uint64
		}{
			{0, MicroWatt, 0},
			{250, MilliWatt, 250_000},
			{60, Watt, 60_000_000},
			{2, KiloWatt, 2_000_000_000},
		}
		for _, tt := range tests {
			got, err := NewPower(tt.value, tt.unit)
			if err != nil {
				t.Errorf("NewPower(%v, %v) failed: %v", tt.value, tt.unit, err)
				continue
			}
			if got.MicroWatts() != tt.want {
				t.Errorf("NewPower(%v, %v) = %v µW, want %v µW", tt.value, tt.unit, got.MicroWatts(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			value uint64
			unit  Unit
			want  error
		}{
			"unknown unit":    {1, unknownUnit, ErrUnitMismatch},
			"resistance unit": {1, Ohm, ErrUnitMismatch},
			"overflow":        {math.MaxUint64, KiloWatt, ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewPower(tt.value, tt.unit)
				if !errors.Is(err, tt.want) {
					t.Errorf("NewPower(%v, %v) = %v, want %v", tt.value, tt.unit, err, tt.want)
				}
			})
		}
	})
}

func TestNewPowerFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value float64
			unit  Unit
			want  uint64
		}{
			{2.5, Watt, 2_500_000},
			{0.25, KiloWatt, 250_000_000},
			{0.5, MicroWatt, 0},
		}
		for _, tt := range tests {
			got, err := NewPowerFromFloat64(tt.value, tt.unit)
			if err != nil {
				t.Errorf("NewPowerFromFloat64(%v, %v) failed: %v", tt.value, tt.unit, err)
				continue
			}
			if got.MicroWatts() != tt.want {
				t.Errorf("NewPowerFromFloat64(%v, %v) = %v µW, want %v µW", tt.value, tt.unit, got.MicroWatts(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			value float64
			unit  Unit
			want  error
		}{
			"wrong kind": {1, Volt, ErrUnitMismatch},
			"negative":   {-2.5, Watt, ErrNegativeOperand},
			"NaN":        {math.NaN(), Watt, ErrInvalidFloatOperand},
			"overflow":   {1e30, KiloWatt, ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewPowerFromFloat64(tt.value, tt.unit)
				if !errors.Is(err, tt.want) {
					t.Errorf("NewPowerFromFloat64(%v, %v) = %v, want %v", tt.value, tt.unit, err, tt.want)
				}
			})
		}
	})
}

func TestParsePower(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			unit, value string
			want        uint64
		}{
			{"µW", "500", 500},
			{"mW", "250.5", 250_500},
			{"W", "0.001", 1_000},
			{"kW", "1.21", 1_210_000_000},
		}
		for _, tt := range tests {
			got, err := ParsePower(tt.unit, tt.value)
			if err != nil {
				t.Errorf("ParsePower(%q, %q) failed: %v", tt.unit, tt.value, err)
				continue
			}
			if got.MicroWatts() != tt.want {
				t.Errorf("ParsePower(%q, %q) = %v µW, want %v µW", tt.unit, tt.value, got.MicroWatts(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			unit, value string
		}{
			"bad unit":   {"watt", "1"},
			"wrong kind": {"A", "1"},
			"negative":   {"W", "-60"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParsePower(tt.unit, tt.value)
				if err == nil {
					t.Errorf("ParsePower(%q, %q) did not fail", tt.unit, tt.value)
				}
			})
		}
	})
}

func TestPower_Accessors(t *testing.T) {
	p := PowerFromMicroWatts(2_500_000)
	if got := p.MicroWatts(); got != 2_500_000 {
		t.Errorf("%v.MicroWatts() = %v, want %v", p, got, 2_500_000)
	}
	if got := p.MilliWatts(); got != 2_500 {
		t.Errorf("%v.MilliWatts() = %v, want %v", p, got, 2_500)
	}
	if got := p.Watts(); got != 2.5 {
		t.Errorf("%v.Watts() = %v, want %v", p, got, 2.5)
	}
	if got := p.KiloWatts(); got != 0.0025 {
		t.Errorf("%v.KiloWatts() = %v, want %v", p, got, 0.0025)
	}
}

func TestPower_Decimal(t *testing.T) {
	p := PowerFromMicroWatts(250_500)
	got, err := p.Decimal(MilliWatt)
	if err != nil {
		t.Fatalf("%v.Decimal(MilliWatt) failed: %v", p, err)
	}
	if got.String() != "250.500" {
		t.Errorf("%v.Decimal(MilliWatt) = %v, want %v", p, got, "250.500")
	}
}

func TestPower_Arith(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, b := PowerFromMicroWatts(1_500), PowerFromMicroWatts(500)
		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("%v.Add(%v) failed: %v", a, b, err)
		}
		if sum.MicroWatts() != 2_000 {
			t.Errorf("%v.Add(%v) = %v µW, want %v µW", a, b, sum.MicroWatts(), 2_000)
		}
		diff, err := a.Sub(b)
		if err != nil {
			t.Fatalf("%v.Sub(%v) failed: %v", a, b, err)
		}
		if diff.MicroWatts() != 1_000 {
			t.Errorf("%v.Sub(%v) = %v µW, want %v µW", a, b, diff.MicroWatts(), 1_000)
		}
		prod, err := a.Mul(4)
		if err != nil {
			t.Fatalf("%v.Mul(4) failed: %v", a, err)
		}
		if prod.MicroWatts() != 6_000 {
			t.Errorf("%v.Mul(4) = %v µW, want %v µW", a, prod.MicroWatts(), 6_000)
		}
		quot, err := a.Div(4)
		if err != nil {
			t.Fatalf("%v.Div(4) failed: %v", a, err)
		}
		if quot.MicroWatts() != 375 {
			t.Errorf("%v.Div(4) = %v µW, want %v µW", a, quot.MicroWatts(), 375)
		}
	})

	t.Run("error", func(t *testing.T) {
		p := PowerFromMicroWatts(math.MaxUint64)
		if _, err := p.Add(PowerFromMicroWatts(1)); !errors.Is(err, ErrOverflow) {
			t.Errorf("%v.Add(1 µW) = %v, want %v", p, err, ErrOverflow)
		}
		if _, err := p.Mul(2); !errors.Is(err, ErrOverflow) {
			t.Errorf("%v.Mul(2) = %v, want %v", p, err, ErrOverflow)
		}
		z := PowerFromMicroWatts(0)
		if _, err := z.Sub(PowerFromMicroWatts(1)); !errors.Is(err, ErrOverflow) {
			t.Errorf("%v.Sub(1 µW) = %v, want %v", z, err, ErrOverflow)
		}
		if _, err := z.Div(0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v.Div(0) = %v, want %v", z, err, ErrDivisionByZero)
		}
		if _, err := z.Mul(-1); !errors.Is(err, ErrNegativeOperand) {
			t.Errorf("%v.Mul(-1) = %v, want %v", z, err, ErrNegativeOperand)
		}
	})
}

func TestPower_FloatArith(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := PowerFromMicroWatts(2_000)
		got, err := p.MulFloat64(1.25)
		if err != nil {
			t.Fatalf("%v.MulFloat64(1.25) failed: %v", p, err)
		}
		if got.MicroWatts() != 2_500 {
			t.Errorf("%v.MulFloat64(1.25) = %v µW, want %v µW", p, got.MicroWatts(), 2_500)
		}
		got, err = p.DivFloat64(0.5)
		if err != nil {
			t.Fatalf("%v.DivFloat64(0.5) failed: %v", p, err)
		}
		if got.MicroWatts() != 4_000 {
			t.Errorf("%v.DivFloat64(0.5) = %v µW, want %v µW", p, got.MicroWatts(), 4_000)
		}
	})

	t.Run("error", func(t *testing.T) {
		p := PowerFromMicroWatts(2_000)
		if _, err := p.MulFloat64(math.NaN()); !errors.Is(err, ErrInvalidFloatOperand) {
			t.Errorf("%v.MulFloat64(NaN) = %v, want %v", p, err, ErrInvalidFloatOperand)
		}
		if _, err := p.DivFloat64(-0.5); !errors.Is(err, ErrNegativeOperand) {
			t.Errorf("%v.DivFloat64(-0.5) = %v, want %v", p, err, ErrNegativeOperand)
		}
	})
}

func TestPower_String(t *testing.T) {
	tests := []struct {
		microwatts uint64
		want       string
	}{
		{0, "0.00 µW"},
		{250_000, "250.00 mW"},
		{60_000_000, "60.00 W"},
		{1_210_000_000, "1.21 kW"},
	}
	for _, tt := range tests {
		p := PowerFromMicroWatts(tt.microwatts)
		if got := p.String(); got != tt.want {
			t.Errorf("PowerFromMicroWatts(%v).String() = %q, want %q", tt.microwatts, got, tt.want)
		}
	}
}
