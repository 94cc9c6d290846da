package types

import "testing"

func TestValueTypeFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  ValueType
	}{
		{"IfcReal", Real},
		{"IFCREAL", Real},
		{"ifcinteger", Integer},
		{"IfcBoolean", Boolean},
		{"IfcLogical", Logical},
		{"IfcText", Text},
		{"IfcLabel", Label},
		{"IfcIdentifier", Identifier},
		{"IfcLengthMeasure", Real},
		{"IfcAreaMeasure", Real},
		{"IfcCountMeasure", Integer},
		{"IfcLogicalMeasure", Logical},
		{"IfcBooleanMeasure", Logical},
		{"IfcSomethingElse", Text},
		{"", Text},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := ValueTypeFromToken(tt.token); got != tt.want {
				t.Errorf("ValueTypeFromToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestValueTypeName(t *testing.T) {
	tests := []struct {
		vt   ValueType
		want string
	}{
		{Real, "REAL"},
		{Integer, "INTEGER"},
		{Logical, "LOGICAL"},
		{Identifier, "IDENTIFIER"},
	}
	for _, tt := range tests {
		if got := tt.vt.Name(); got != tt.want {
			t.Errorf("%q.Name() = %q, want %q", string(tt.vt), got, tt.want)
		}
	}
}

func TestValueTypeOf(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want ValueType
	}{
		{"bool", true, Logical},
		{"int", 42, Integer},
		{"int64", int64(42), Integer},
		{"uint8", uint8(1), Integer},
		{"float64", 3.14, Real},
		{"float32", float32(3.14), Real},
		{"string", "hello", Text},
		{"integer string", "200", Integer},
		{"float string", "2.5", Real},
		{"padded numeric string", " 7 ", Integer},
		{"nil-ish struct", struct{}{}, Text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueTypeOf(tt.raw); got != tt.want {
				t.Errorf("ValueTypeOf(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestUnitTypeFacts(t *testing.T) {
	tests := []struct {
		ut       UnitType
		token    string
		baseName string
		si       bool
	}{
		{UnitUnknown, "", "", false},
		{UnitCount, "", "", false},
		{UnitLength, "LENGTHUNIT", "METRE", true},
		{UnitArea, "AREAUNIT", "SQUARE_METRE", true},
		{UnitVolume, "VOLUMEUNIT", "CUBIC_METRE", true},
		{UnitMass, "MASSUNIT", "GRAM", true},
		{UnitTime, "TIMEUNIT", "SECOND", true},
		{UnitTemperature, "THERMODYNAMICTEMPERATUREUNIT", "KELVIN", true},
		{UnitPressure, "PRESSUREUNIT", "PASCAL", true},
		{UnitEnergy, "ENERGYUNIT", "JOULE", true},
		{UnitPower, "POWERUNIT", "WATT", true},
		{UnitPlaneAngle, "PLANEANGLEUNIT", "RADIAN", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.ut), func(t *testing.T) {
			if got := tt.ut.Token(); got != tt.token {
				t.Errorf("Token() = %q, want %q", got, tt.token)
			}
			if got := tt.ut.BaseName(); got != tt.baseName {
				t.Errorf("BaseName() = %q, want %q", got, tt.baseName)
			}
			if got := tt.ut.SI(); got != tt.si {
				t.Errorf("SI() = %v, want %v", got, tt.si)
			}
		})
	}
}

func TestUnitTypeFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  UnitType
	}{
		{"LENGTHUNIT", UnitLength},
		{"lengthunit", UnitLength},
		{"MASSUNIT", UnitMass},
		{"PLANEANGLEUNIT", UnitPlaneAngle},
		{"", UnitUnknown},
		{"FOOUNIT", UnitUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := UnitTypeFromToken(tt.token); got != tt.want {
				t.Errorf("UnitTypeFromToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestUnitTypeFromMeasure(t *testing.T) {
	tests := []struct {
		measure string
		want    UnitType
	}{
		{"IfcLengthMeasure", UnitLength},
		{"IfcAreaMeasure", UnitArea},
		{"IfcVolumeMeasure", UnitVolume},
		{"IfcMassMeasure", UnitMass},
		{"IfcTimeMeasure", UnitTime},
		{"IfcThermodynamicTemperatureMeasure", UnitTemperature},
		{"IfcPressureMeasure", UnitPressure},
		{"IfcEnergyMeasure", UnitEnergy},
		{"IfcPowerMeasure", UnitPower},
		{"IfcCountMeasure", UnitCount},
		{"IfcPlaneAngleMeasure", UnitPlaneAngle},
		{"IfcRatioMeasure", UnitUnknown},
		{"", UnitUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.measure, func(t *testing.T) {
			if got := UnitTypeFromMeasure(tt.measure); got != tt.want {
				t.Errorf("UnitTypeFromMeasure(%q) = %v, want %v", tt.measure, got, tt.want)
			}
		})
	}
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want Prefix
	}{
		{"", PrefixNone},
		{"KILO", PrefixKilo},
		{"kilo", PrefixKilo},
		{"Milli", PrefixMilli},
		{"ATTO", PrefixAtto},
		{"EXA", PrefixExa},
		{"bogus", PrefixNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParsePrefix(tt.in); got != tt.want {
				t.Errorf("ParsePrefix(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
