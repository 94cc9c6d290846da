package types

import (
	"strconv"
	"strings"

	"github.com/openbim/propkit/internal/logging"
)

// ValueType is the semantic type of a property value. Its string form is
// also the store type name of the matching wrapped-scalar holder entity.
type ValueType string

const (
	Real       ValueType = "IfcReal"
	Integer    ValueType = "IfcInteger"
	Boolean    ValueType = "IfcBoolean"
	Text       ValueType = "IfcText"
	Label      ValueType = "IfcLabel"
	Logical    ValueType = "IfcLogical"
	Identifier ValueType = "IfcIdentifier"
)

// valueTypes is the recognized value types in matching order.
var valueTypes = []ValueType{Real, Integer, Boolean, Text, Label, Logical, Identifier}

// Token returns the store type name for the wrapped-scalar holder entity.
func (v ValueType) Token() string {
	return string(v)
}

// Name returns the bare semantic name, e.g. "REAL" for Real.
func (v ValueType) Name() string {
	return strings.ToUpper(strings.TrimPrefix(string(v), "Ifc"))
}

func (v ValueType) String() string {
	return v.Name()
}

// parseValueType resolves a type token to a ValueType. Exact token matches
// are tried first (case-insensitive); measure tokens resolve to the scalar
// base type they carry on the wire. The boolean result reports whether the
// token was genuinely recognized; unrecognized tokens fall back to Text.
func parseValueType(token string) (ValueType, bool) {
	upper := strings.ToUpper(token)
	for _, vt := range valueTypes {
		if strings.ToUpper(string(vt)) == upper {
			return vt, true
		}
	}
	if strings.Contains(upper, "MEASURE") {
		switch {
		case strings.Contains(upper, "COUNT"):
			return Integer, true
		case strings.Contains(upper, "LOGICAL"), strings.Contains(upper, "BOOLEAN"):
			return Logical, true
		default:
			return Real, true
		}
	}
	return Text, false
}

// ValueTypeFromToken maps a store type name to a ValueType. Measure tokens
// map onto their scalar base type. Unknown tokens resolve to Text with a
// warning so that reads never fail on unexpected holder types.
func ValueTypeFromToken(token string) ValueType {
	vt, ok := parseValueType(token)
	if !ok {
		logging.Warnf("unknown value type token %q, falling back to %s", token, vt.Name())
	}
	return vt
}

// ValueTypeOf infers the value type from the runtime shape of a raw scalar.
// Booleans map to Logical, integral values to Integer, floats to Real, and
// everything else to Text. Numeric strings count as numeric: "200" infers
// Integer and "2.5" infers Real.
func ValueTypeOf(raw any) ValueType {
	if _, ok := raw.(bool); ok {
		return Logical
	}
	switch v := raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Integer
	case float32, float64:
		return Real
	case string:
		s := strings.TrimSpace(v)
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Integer
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return Real
		}
	}
	return Text
}

// UnitType is the semantic unit category of a value.
type UnitType string

const (
	UnitUnknown     UnitType = "UNKNOWN"
	UnitCount       UnitType = "COUNT"
	UnitLength      UnitType = "LENGTH"
	UnitArea        UnitType = "AREA"
	UnitVolume      UnitType = "VOLUME"
	UnitMass        UnitType = "MASS"
	UnitTime        UnitType = "TIME"
	UnitTemperature UnitType = "TEMPERATURE"
	UnitPressure    UnitType = "PRESSURE"
	UnitEnergy      UnitType = "ENERGY"
	UnitPower       UnitType = "POWER"
	UnitPlaneAngle  UnitType = "PLANEANGLE"
)

// unitFact carries the static facts of a unit category: the store's
// unit-kind token, the default SI base-unit name, and whether the category
// maps to an SI unit entity.
type unitFact struct {
	token    string
	baseName string
	si       bool
}

var unitFacts = map[UnitType]unitFact{
	UnitUnknown:     {},
	UnitCount:       {},
	UnitLength:      {token: "LENGTHUNIT", baseName: "METRE", si: true},
	UnitArea:        {token: "AREAUNIT", baseName: "SQUARE_METRE", si: true},
	UnitVolume:      {token: "VOLUMEUNIT", baseName: "CUBIC_METRE", si: true},
	UnitMass:        {token: "MASSUNIT", baseName: "GRAM", si: true},
	UnitTime:        {token: "TIMEUNIT", baseName: "SECOND", si: true},
	UnitTemperature: {token: "THERMODYNAMICTEMPERATUREUNIT", baseName: "KELVIN", si: true},
	UnitPressure:    {token: "PRESSUREUNIT", baseName: "PASCAL", si: true},
	UnitEnergy:      {token: "ENERGYUNIT", baseName: "JOULE", si: true},
	UnitPower:       {token: "POWERUNIT", baseName: "WATT", si: true},
	UnitPlaneAngle:  {token: "PLANEANGLEUNIT", baseName: "RADIAN", si: true},
}

// unitTypes lists the unit categories in measure-resolution priority order.
// Length must come before area and volume so that composite measure names
// resolve to the most specific match first.
var unitTypes = []UnitType{
	UnitLength, UnitArea, UnitVolume, UnitMass, UnitTime,
	UnitTemperature, UnitPressure, UnitEnergy, UnitPower,
	UnitCount, UnitPlaneAngle,
}

func (u UnitType) String() string {
	return string(u)
}

// Token returns the store's unit-kind token, e.g. "LENGTHUNIT". Unknown and
// Count have no token because they never map to a unit entity.
func (u UnitType) Token() string {
	return unitFacts[u].token
}

// BaseName returns the default SI base-unit name for the category, e.g.
// "METRE" for Length. Empty for categories without an SI unit.
func (u UnitType) BaseName() string {
	return unitFacts[u].baseName
}

// SI reports whether the category maps to an SI unit entity.
func (u UnitType) SI() bool {
	return unitFacts[u].si
}

// parseUnitName resolves a semantic category name such as "LENGTH".
func parseUnitName(name string) (UnitType, bool) {
	upper := strings.ToUpper(name)
	if _, ok := unitFacts[UnitType(upper)]; ok {
		return UnitType(upper), true
	}
	return UnitUnknown, false
}

// parseUnitToken resolves a store unit-kind token such as "LENGTHUNIT".
func parseUnitToken(token string) (UnitType, bool) {
	upper := strings.ToUpper(token)
	for _, ut := range unitTypes {
		if unitFacts[ut].token == upper && unitFacts[ut].token != "" {
			return ut, true
		}
	}
	return UnitUnknown, false
}

// UnitTypeFromToken maps a store unit-kind token to a UnitType. An empty
// token resolves to Unknown silently; any other unresolvable token resolves
// to Unknown with a warning.
func UnitTypeFromToken(token string) UnitType {
	if token == "" {
		return UnitUnknown
	}
	ut, ok := parseUnitToken(token)
	if !ok {
		logging.Warnf("unknown unit kind token %q, falling back to %s", token, UnitUnknown)
	}
	return ut
}

// UnitTypeFromMeasure maps a measure type name such as "IfcLengthMeasure"
// onto a unit category by substring match, in the fixed priority order of
// unitTypes. Names that match no category resolve to Unknown with a
// warning; an empty name resolves silently.
func UnitTypeFromMeasure(measure string) UnitType {
	if measure == "" {
		return UnitUnknown
	}
	upper := strings.ToUpper(measure)
	for _, ut := range unitTypes {
		if strings.Contains(upper, string(ut)) {
			return ut
		}
	}
	logging.Warnf("unknown measure name %q, falling back to %s", measure, UnitUnknown)
	return UnitUnknown
}

// Prefix is an SI prefix applied to a unit. The zero value means no prefix.
type Prefix string

const (
	PrefixNone  Prefix = ""
	PrefixExa   Prefix = "EXA"
	PrefixPeta  Prefix = "PETA"
	PrefixTera  Prefix = "TERA"
	PrefixGiga  Prefix = "GIGA"
	PrefixMega  Prefix = "MEGA"
	PrefixKilo  Prefix = "KILO"
	PrefixHecto Prefix = "HECTO"
	PrefixDeca  Prefix = "DECA"
	PrefixDeci  Prefix = "DECI"
	PrefixCenti Prefix = "CENTI"
	PrefixMilli Prefix = "MILLI"
	PrefixMicro Prefix = "MICRO"
	PrefixNano  Prefix = "NANO"
	PrefixPico  Prefix = "PICO"
	PrefixFemto Prefix = "FEMTO"
	PrefixAtto  Prefix = "ATTO"
)

// validPrefixes is the set of recognized SI prefixes.
var validPrefixes = map[Prefix]bool{
	PrefixNone: true, PrefixExa: true, PrefixPeta: true, PrefixTera: true,
	PrefixGiga: true, PrefixMega: true, PrefixKilo: true, PrefixHecto: true,
	PrefixDeca: true, PrefixDeci: true, PrefixCenti: true, PrefixMilli: true,
	PrefixMicro: true, PrefixNano: true, PrefixPico: true, PrefixFemto: true,
	PrefixAtto: true,
}

// parsePrefix resolves a prefix string. Empty strings resolve to PrefixNone;
// matching is case-insensitive.
func parsePrefix(s string) (Prefix, bool) {
	p := Prefix(strings.ToUpper(s))
	if validPrefixes[p] {
		return p, true
	}
	return PrefixNone, false
}

// ParsePrefix maps a prefix string to a Prefix. Unresolvable strings fall
// back to PrefixNone with a warning so that reads never fail on malformed
// unit entities.
func ParsePrefix(s string) Prefix {
	p, ok := parsePrefix(s)
	if !ok {
		logging.Warnf("unknown SI prefix %q, falling back to no prefix", s)
	}
	return p
}
