package types

import "fmt"

// CreateValue builds a validated Value from a raw scalar.
//
// valueType accepts a ValueType, a holder type token string such as
// "IfcReal", or nil to infer the type from the runtime shape of raw.
// unitType accepts a UnitType, a semantic name such as "LENGTH", a unit-kind
// token such as "LENGTHUNIT", or nil for Unknown. prefix accepts a Prefix, a
// prefix string, or nil for no prefix. Explicitly supplied strings that
// cannot be resolved produce an *InvalidValueError, as does a raw scalar
// that cannot be coerced to the resolved value type.
func CreateValue(raw, valueType, unitType, prefix any) (Value, error) {
	if raw == nil {
		return Value{}, newInvalidValue(raw, "Value")
	}
	vt, err := resolveValueType(valueType)
	if err != nil {
		return Value{}, err
	}
	ut, err := resolveUnitType(unitType)
	if err != nil {
		return Value{}, err
	}
	pfx, err := resolvePrefix(prefix)
	if err != nil {
		return Value{}, err
	}
	if vt == "" {
		vt = ValueTypeOf(raw)
	}
	coerced, err := coerce(raw, vt)
	if err != nil {
		return Value{}, err
	}
	return newValue(coerced, vt, ut, pfx), nil
}

// resolveValueType accepts nil (infer later), a ValueType, or a token
// string. Token strings must genuinely resolve; the Text fallback used for
// reads is not accepted here.
func resolveValueType(arg any) (ValueType, error) {
	switch v := arg.(type) {
	case nil:
		return "", nil
	case ValueType:
		return v, nil
	case string:
		vt, ok := parseValueType(v)
		if !ok {
			return "", newInvalidValue(v, "ValueType")
		}
		return vt, nil
	}
	return "", newInvalidValue(arg, "ValueType")
}

// resolveUnitType accepts nil (Unknown), a UnitType, or a string holding
// either a semantic name or a unit-kind token.
func resolveUnitType(arg any) (UnitType, error) {
	switch v := arg.(type) {
	case nil:
		return UnitUnknown, nil
	case UnitType:
		if _, ok := unitFacts[v]; !ok {
			return UnitUnknown, newInvalidValue(v, "UnitType")
		}
		return v, nil
	case string:
		if ut, ok := parseUnitName(v); ok {
			return ut, nil
		}
		if ut, ok := parseUnitToken(v); ok {
			return ut, nil
		}
		return UnitUnknown, newInvalidValue(v, "UnitType")
	}
	return UnitUnknown, newInvalidValue(arg, "UnitType")
}

// resolvePrefix accepts nil (no prefix), a Prefix, or a prefix string.
func resolvePrefix(arg any) (Prefix, error) {
	switch v := arg.(type) {
	case nil:
		return PrefixNone, nil
	case Prefix:
		if !validPrefixes[v] {
			return PrefixNone, newInvalidValue(v, "Prefix")
		}
		return v, nil
	case string:
		p, ok := parsePrefix(v)
		if !ok {
			return PrefixNone, newInvalidValue(v, "Prefix")
		}
		return p, nil
	}
	return PrefixNone, newInvalidValue(arg, "Prefix")
}

// coerce converts the raw scalar to the payload shape of the value type:
// int64 for Integer, float64 for Real, bool for Boolean and Logical, and
// string for the text kinds.
func coerce(raw any, vt ValueType) (any, error) {
	switch vt {
	case Integer:
		if n, ok := AsInt(raw); ok {
			return n, nil
		}
	case Real:
		if f, ok := AsFloat(raw); ok {
			return f, nil
		}
	case Boolean, Logical:
		if b, ok := AsBool(raw); ok {
			return b, nil
		}
	case Text, Label, Identifier:
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return fmt.Sprint(raw), nil
	}
	return nil, newInvalidValue(raw, vt.Token())
}

// Convenience constructors for the common value shapes.

// NewLength returns a Real length value with the given prefix.
func NewLength(v float64, prefix any) (Value, error) {
	return CreateValue(v, Real, UnitLength, prefix)
}

// NewMeter returns an unprefixed length value.
func NewMeter(v float64) (Value, error) {
	return NewLength(v, PrefixNone)
}

// NewCentimeter returns a centi-prefixed length value.
func NewCentimeter(v float64) (Value, error) {
	return NewLength(v, PrefixCenti)
}

// NewMillimeter returns a milli-prefixed length value.
func NewMillimeter(v float64) (Value, error) {
	return NewLength(v, PrefixMilli)
}

// NewArea returns a Real area value with the given prefix.
func NewArea(v float64, prefix any) (Value, error) {
	return CreateValue(v, Real, UnitArea, prefix)
}

// NewVolume returns a Real volume value with the given prefix.
func NewVolume(v float64, prefix any) (Value, error) {
	return CreateValue(v, Real, UnitVolume, prefix)
}

// NewMass returns a Real mass value with the given prefix.
func NewMass(v float64, prefix any) (Value, error) {
	return CreateValue(v, Real, UnitMass, prefix)
}

// NewKilogram returns a kilo-prefixed mass value.
func NewKilogram(v float64) (Value, error) {
	return NewMass(v, PrefixKilo)
}

// NewCount returns an Integer count value. The raw scalar may be any
// integral shape, including numeric strings.
func NewCount(v any) (Value, error) {
	return CreateValue(v, Integer, UnitCount, PrefixNone)
}

// NewText returns a Text value.
func NewText(s string) (Value, error) {
	return CreateValue(s, Text, UnitUnknown, PrefixNone)
}

// NewLabel returns a Label value.
func NewLabel(s string) (Value, error) {
	return CreateValue(s, Label, UnitUnknown, PrefixNone)
}

// NewIdentifier returns an Identifier value.
func NewIdentifier(s string) (Value, error) {
	return CreateValue(s, Identifier, UnitUnknown, PrefixNone)
}

// NewBool returns a Logical value coerced from any recognized boolean
// spelling.
func NewBool(v any) (Value, error) {
	return CreateValue(v, Logical, UnitUnknown, PrefixNone)
}
