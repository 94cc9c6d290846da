package model

import (
	"fmt"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

// kilogramName is the unit name the store uses for kilo-prefixed mass: the
// base unit of mass is the kilogram, so the prefix folds into the name
// instead of the Prefix attribute.
const kilogramName = "KILOGRAM"

// ValueUnitHandler is the resolution engine between Values and the store's
// value-holder and unit entities.
type ValueUnitHandler struct {
	store types.Store
}

// NewValueUnitHandler returns a handler over the given store.
func NewValueUnitHandler(s types.Store) *ValueUnitHandler {
	return &ValueUnitHandler{store: s}
}

// CreateValueEntity creates a wrapped-scalar holder entity for the value.
// Boolean and Logical values are both written as Logical holders, so the
// distinction is intentionally lost on write.
func (h *ValueUnitHandler) CreateValueEntity(v types.Value) (types.Entity, error) {
	var (
		token     string
		converted any
	)
	switch v.Type() {
	case types.Boolean, types.Logical:
		b, ok := types.AsBool(v.Raw())
		if !ok {
			return nil, &types.InvalidValueError{Raw: v.Raw(), Target: types.Logical.Token()}
		}
		token, converted = types.Logical.Token(), b
	case types.Integer:
		n, ok := types.AsInt(v.Raw())
		if !ok {
			return nil, &types.InvalidValueError{Raw: v.Raw(), Target: types.Integer.Token()}
		}
		token, converted = types.Integer.Token(), n
	case types.Real:
		f, ok := types.AsFloat(v.Raw())
		if !ok {
			return nil, &types.InvalidValueError{Raw: v.Raw(), Target: types.Real.Token()}
		}
		token, converted = types.Real.Token(), f
	case types.Text, types.Label, types.Identifier:
		token, converted = v.Type().Token(), fmt.Sprint(v.Raw())
	default:
		logging.Warnf("unhandled value type %q, writing %v as %s",
			v.Type().Name(), v.Raw(), types.Text.Name())
		token, converted = types.Text.Token(), fmt.Sprint(v.Raw())
	}
	holder := h.store.CreateEntity(token, map[string]any{
		types.AttrWrappedValue: converted,
	})
	logging.Debugf("created value holder #%d %s", holder.ID(), token)
	return holder, nil
}

// GetOrCreateUnit returns the shared SI unit entity for the given category
// and prefix, creating and attaching it to the project's unit assignment
// when none exists yet. Returns nil for categories that carry no unit
// entity and for failures, which degrade to a warning.
func (h *ValueUnitHandler) GetOrCreateUnit(ut types.UnitType, pfx types.Prefix) types.Entity {
	if ut == types.UnitUnknown || ut == types.UnitCount {
		return nil
	}
	if !ut.SI() {
		logging.Warnf("creation of non-SI units for %s is not implemented", ut)
		return nil
	}
	token := ut.Token()

	project := h.project()
	var assignment types.Entity
	if project != nil {
		assignment = attrEntity(project, types.AttrUnitsInContext)
		if assignment != nil {
			for _, u := range attrEntityList(assignment, types.AttrUnits) {
				if matchesUnit(u, ut, pfx) {
					return u
				}
			}
		}
	} else {
		logging.Errorf("no project root found to search for units")
	}

	attrs := map[string]any{
		types.AttrUnitType: token,
		types.AttrName:     ut.BaseName(),
	}
	if pfx != types.PrefixNone {
		if ut == types.UnitMass && pfx == types.PrefixKilo {
			attrs[types.AttrName] = kilogramName
		} else {
			attrs[types.AttrPrefix] = string(pfx)
		}
	}
	unit := h.store.CreateEntity(types.EntitySIUnit, attrs)
	logging.Infof("created SI unit #%d %s %s", unit.ID(), pfx, token)

	if project != nil && assignment == nil {
		assignment = h.store.CreateEntity(types.EntityUnitAssignment, map[string]any{
			types.AttrUnits: []types.Entity{},
		})
		project.SetAttr(types.AttrUnitsInContext, assignment)
	}
	if assignment == nil {
		logging.Warnf("unit #%d created without a unit assignment to attach to", unit.ID())
		return unit
	}
	units := append(attrEntityList(assignment, types.AttrUnits), unit)
	assignment.SetAttr(types.AttrUnits, units)
	h.store.MarkModified()
	return unit
}

// matchesUnit reports whether an existing unit entity serves the given
// category and prefix. Kilo-prefixed mass matches the kilogram form, which
// carries the prefix in its name instead of the Prefix attribute.
func matchesUnit(u types.Entity, ut types.UnitType, pfx types.Prefix) bool {
	if !u.Is(types.EntitySIUnit) {
		return false
	}
	if attrString(u, types.AttrUnitType) != ut.Token() {
		return false
	}
	if ut == types.UnitMass && pfx == types.PrefixKilo {
		return attrString(u, types.AttrPrefix) == "" &&
			attrString(u, types.AttrName) == kilogramName
	}
	return attrString(u, types.AttrPrefix) == string(pfx)
}

// ValueFromEntity resolves the Value held by a property or quantity entity.
// Single-value properties read their holder entity; quantity entities read
// their fixed scalar slot with the unit category implied by their shape.
// Entities holding no scalar return ErrNoValue.
func (h *ValueUnitHandler) ValueFromEntity(e types.Entity) (types.Value, error) {
	if e == nil {
		return types.Value{}, types.ErrNoValue
	}
	var (
		raw        any
		vt         any
		ut         = types.UnitUnknown
		pfx        = types.PrefixNone
		unitEntity types.Entity
	)
	switch {
	case e.Is(types.EntityPropertySingleValue):
		if holder := attrEntity(e, types.AttrNominalValue); holder != nil {
			raw, _ = holder.Attr(types.AttrWrappedValue)
			vt = types.ValueTypeFromToken(holder.Type())
		}
		unitEntity = attrEntity(e, types.AttrUnit)
	case e.Is(types.EntityQuantityCount):
		raw, _ = e.Attr(types.AttrCountValue)
		if raw != nil {
			vt = types.ValueTypeOf(raw)
		}
		ut = types.UnitCount
	case e.Is(types.EntityPhysicalQuantity):
		shapeUnit, shape, ok := shapeOf(e)
		if !ok {
			logging.Warnf("no value slot known for quantity entity #%d %s", e.ID(), e.Type())
			return types.Value{}, types.ErrNoValue
		}
		raw, _ = e.Attr(shape.attr)
		vt = types.Real
		ut = shapeUnit
		unitEntity = attrEntity(e, types.AttrUnit)
	default:
		logging.Warnf("cannot extract a value from entity #%d %s", e.ID(), e.Type())
		return types.Value{}, types.ErrNoValue
	}

	if unitEntity != nil {
		ut, pfx = h.classifyUnit(unitEntity, ut, e.ID())
	}
	if raw == nil || vt == nil {
		logging.Warnf("no scalar found on entity #%d %s", e.ID(), e.Type())
		return types.Value{}, types.ErrNoValue
	}
	return types.CreateValue(raw, vt, ut, pfx)
}

// classifyUnit derives the unit category and prefix from a unit entity.
// derived is the category implied by the owning entity's shape, Unknown for
// single-value properties. When both sides classify and disagree, the unit
// entity wins and a warning is logged.
func (h *ValueUnitHandler) classifyUnit(unit types.Entity, derived types.UnitType, ownerID int64) (types.UnitType, types.Prefix) {
	switch {
	case unit.Is(types.EntitySIUnit):
		inferred := types.UnitTypeFromToken(attrString(unit, types.AttrUnitType))
		ut := derived
		if inferred != types.UnitUnknown {
			if derived != types.UnitUnknown && derived != inferred {
				logging.Warnf("unit mismatch on entity #%d: shape implies %s, unit #%d says %s",
					ownerID, derived, unit.ID(), inferred)
			}
			ut = inferred
		}
		if ut == types.UnitMass && attrString(unit, types.AttrName) == kilogramName {
			return ut, types.PrefixKilo
		}
		return ut, types.ParsePrefix(attrString(unit, types.AttrPrefix))
	case unit.Is(types.EntityConversionBasedUnit):
		logging.Debugf("conversion-based unit #%d resolved by measure only", unit.ID())
		if inferred := types.UnitTypeFromMeasure(attrString(unit, types.AttrMeasure)); inferred != types.UnitUnknown {
			return inferred, types.PrefixNone
		}
		return derived, types.PrefixNone
	case unit.Is(types.EntityDerivedUnit), unit.Is(types.EntityContextDependentUnit):
		logging.Debugf("unit #%d %s: extraction not implemented", unit.ID(), unit.Type())
		return derived, types.PrefixNone
	}
	logging.Warnf("unhandled unit entity #%d %s", unit.ID(), unit.Type())
	return derived, types.PrefixNone
}

// project returns the model's project root, or nil.
func (h *ValueUnitHandler) project() types.Entity {
	projects := h.store.ByType(types.EntityProject)
	if len(projects) == 0 {
		return nil
	}
	return projects[0]
}
