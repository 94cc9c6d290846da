package types

import (
	"fmt"

	"github.com/openbim/propkit/internal/logging"
)

// Value is an immutable scalar paired with its semantic type, unit
// category, and SI prefix. Values are produced by CreateValue, the
// convenience constructors, and the resolution engine when reading
// entities; they are never mutated after construction.
type Value struct {
	raw    any
	vtype  ValueType
	unit   UnitType
	prefix Prefix
}

// newValue applies the cross-field invariants and builds the record.
// Unknown and Count unit categories never carry a prefix; a supplied one is
// dropped with a warning. Type and unit combinations that are merely
// unusual warn and proceed.
func newValue(raw any, vt ValueType, ut UnitType, pfx Prefix) Value {
	if pfx != PrefixNone && (ut == UnitUnknown || ut == UnitCount) {
		logging.Warnf("prefix %q dropped for unit type %s", string(pfx), ut)
		pfx = PrefixNone
	}
	switch {
	case ut.SI():
		if vt != Real {
			logging.Warnf("unit type %s usually carries %s values, got %s for %v",
				ut, Real.Name(), vt.Name(), raw)
		}
	case ut == UnitCount:
		if vt != Integer && vt != Real {
			logging.Warnf("unit type %s usually carries %s values, got %s for %v",
				ut, Integer.Name(), vt.Name(), raw)
		}
	}
	return Value{raw: raw, vtype: vt, unit: ut, prefix: pfx}
}

// Raw returns the coerced scalar payload.
func (v Value) Raw() any {
	return v.raw
}

// Type returns the semantic value type.
func (v Value) Type() ValueType {
	return v.vtype
}

// Unit returns the unit category.
func (v Value) Unit() UnitType {
	return v.unit
}

// Prefix returns the SI prefix.
func (v Value) Prefix() Prefix {
	return v.prefix
}

// Equal reports whether two values are structurally equal: same type, unit
// category, and prefix, and raw payloads that compare equal with float
// comparison within RelTol.
func (v Value) Equal(o Value) bool {
	if v.vtype != o.vtype || v.unit != o.unit || v.prefix != o.prefix {
		return false
	}
	return rawEqual(v.raw, o.raw)
}

func (v Value) String() string {
	if v.unit == UnitUnknown || v.unit == "" {
		return fmt.Sprintf("%v [%s]", v.raw, v.vtype.Name())
	}
	if v.prefix == PrefixNone {
		return fmt.Sprintf("%v [%s %s]", v.raw, v.vtype.Name(), v.unit)
	}
	return fmt.Sprintf("%v [%s %s %s]", v.raw, v.vtype.Name(), v.prefix, v.unit)
}
