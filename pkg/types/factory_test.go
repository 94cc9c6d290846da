package types

import (
	"errors"
	"testing"
)

func TestCreateValueInference(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		wantType ValueType
		wantRaw  any
	}{
		{"float infers real", 3.5, Real, 3.5},
		{"int infers integer", 42, Integer, int64(42)},
		{"bool infers logical", true, Logical, true},
		{"string infers text", "hello", Text, "hello"},
		{"integer string infers integer", "42", Integer, int64(42)},
		{"float string infers real", "0.5", Real, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := CreateValue(tt.raw, nil, nil, nil)
			if err != nil {
				t.Fatalf("CreateValue: %v", err)
			}
			if v.Type() != tt.wantType {
				t.Errorf("type = %v, want %v", v.Type(), tt.wantType)
			}
			if v.Raw() != tt.wantRaw {
				t.Errorf("raw = %v (%T), want %v (%T)", v.Raw(), v.Raw(), tt.wantRaw, tt.wantRaw)
			}
			if v.Unit() != UnitUnknown {
				t.Errorf("unit = %v, want %v", v.Unit(), UnitUnknown)
			}
		})
	}
}

func TestCreateValueCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		vt      any
		wantRaw any
	}{
		{"string to integer", "123", Integer, int64(123)},
		{"string to real", "2.5", Real, 2.5},
		{"int to real", 7, Real, 7.0},
		{"string to logical", "ja", Logical, true},
		{"string to boolean", "nein", Boolean, false},
		{"int one to logical", 1, Logical, true},
		{"number to text", 5, Text, "5"},
		{"token string type", "200", "IfcReal", 200.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := CreateValue(tt.raw, tt.vt, nil, nil)
			if err != nil {
				t.Fatalf("CreateValue: %v", err)
			}
			if v.Raw() != tt.wantRaw {
				t.Errorf("raw = %v (%T), want %v (%T)", v.Raw(), v.Raw(), tt.wantRaw, tt.wantRaw)
			}
		})
	}
}

func TestCreateValueErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		vt   any
		ut   any
		pfx  any
	}{
		{"nil raw", nil, nil, nil, nil},
		{"word as integer", "abc", Integer, nil, nil},
		{"word as real", "abc", Real, nil, nil},
		{"word as logical", "maybe", Logical, nil, nil},
		{"unresolvable type token", 1.0, "IfcBogus", nil, nil},
		{"unresolvable unit", 1.0, Real, "FURLONG", nil},
		{"unresolvable prefix", 1.0, Real, UnitLength, "MEGAA"},
		{"non-string type arg", 1.0, 42, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateValue(tt.raw, tt.vt, tt.ut, tt.pfx)
			if err == nil {
				t.Fatal("CreateValue succeeded, want error")
			}
			var invalid *InvalidValueError
			if !errors.As(err, &invalid) {
				t.Errorf("error = %T, want *InvalidValueError", err)
			}
		})
	}
}

func TestCreateValueUnitStrings(t *testing.T) {
	tests := []struct {
		name string
		ut   any
		want UnitType
	}{
		{"semantic name", "LENGTH", UnitLength},
		{"lowercase name", "length", UnitLength},
		{"unit-kind token", "LENGTHUNIT", UnitLength},
		{"mass token", "MASSUNIT", UnitMass},
		{"enum passthrough", UnitVolume, UnitVolume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := CreateValue(1.0, Real, tt.ut, nil)
			if err != nil {
				t.Fatalf("CreateValue: %v", err)
			}
			if v.Unit() != tt.want {
				t.Errorf("unit = %v, want %v", v.Unit(), tt.want)
			}
		})
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name       string
		build      func() (Value, error)
		wantType   ValueType
		wantUnit   UnitType
		wantPrefix Prefix
	}{
		{"meter", func() (Value, error) { return NewMeter(2) }, Real, UnitLength, PrefixNone},
		{"centimeter", func() (Value, error) { return NewCentimeter(2) }, Real, UnitLength, PrefixCenti},
		{"millimeter", func() (Value, error) { return NewMillimeter(2) }, Real, UnitLength, PrefixMilli},
		{"area", func() (Value, error) { return NewArea(2, nil) }, Real, UnitArea, PrefixNone},
		{"volume", func() (Value, error) { return NewVolume(2, nil) }, Real, UnitVolume, PrefixNone},
		{"kilogram", func() (Value, error) { return NewKilogram(2) }, Real, UnitMass, PrefixKilo},
		{"count", func() (Value, error) { return NewCount(3) }, Integer, UnitCount, PrefixNone},
		{"text", func() (Value, error) { return NewText("t") }, Text, UnitUnknown, PrefixNone},
		{"label", func() (Value, error) { return NewLabel("l") }, Label, UnitUnknown, PrefixNone},
		{"identifier", func() (Value, error) { return NewIdentifier("i") }, Identifier, UnitUnknown, PrefixNone},
		{"bool", func() (Value, error) { return NewBool("yes") }, Logical, UnitUnknown, PrefixNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.build()
			if err != nil {
				t.Fatalf("constructor: %v", err)
			}
			if v.Type() != tt.wantType {
				t.Errorf("type = %v, want %v", v.Type(), tt.wantType)
			}
			if v.Unit() != tt.wantUnit {
				t.Errorf("unit = %v, want %v", v.Unit(), tt.wantUnit)
			}
			if v.Prefix() != tt.wantPrefix {
				t.Errorf("prefix = %v, want %v", v.Prefix(), tt.wantPrefix)
			}
		})
	}
}

func TestNewCountRejectsFractionalString(t *testing.T) {
	// Integer coercion refuses "3.5"; the quantity layer handles the float
	// fallback, not the factory.
	if _, err := NewCount("3.5"); err == nil {
		t.Error("NewCount(\"3.5\") succeeded, want error")
	}
	v, err := NewCount("3")
	if err != nil {
		t.Fatalf("NewCount: %v", err)
	}
	if v.Raw() != int64(3) {
		t.Errorf("raw = %v, want int64(3)", v.Raw())
	}
}
