package model

import (
	"fmt"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

// PropAdapter operates on single-value property and quantity entities.
type PropAdapter struct {
	store   types.Store
	handler *ValueUnitHandler
}

// NewPropAdapter returns an adapter over the given store.
func NewPropAdapter(s types.Store) *PropAdapter {
	return &PropAdapter{store: s, handler: NewValueUnitHandler(s)}
}

// ByID returns the property with the given entity identifier.
func (a *PropAdapter) ByID(id int64) (*Prop, error) {
	e, err := a.entity(id)
	if err != nil {
		return nil, err
	}
	return a.wrap(e), nil
}

// Value resolves the property's current value.
func (a *PropAdapter) Value(propID int64) (types.Value, error) {
	e, err := a.entity(propID)
	if err != nil {
		return types.Value{}, err
	}
	return a.handler.ValueFromEntity(e)
}

// SetValue writes a value to the property or quantity. It reports whether
// anything changed: writing a value whose scalar compares equal (floats
// within tolerance) and whose unit resolves to the same unit entity is a
// no-op that leaves no new entities behind.
func (a *PropAdapter) SetValue(propID int64, v types.Value) (bool, error) {
	e, err := a.entity(propID)
	if err != nil {
		return false, err
	}
	if e.Is(types.EntityPropertySingleValue) {
		return a.setSingleValue(e, v)
	}
	return a.setQuantityValue(e, v)
}

// PSetsOf returns the sets the property belongs to.
func (a *PropAdapter) PSetsOf(propID int64) ([]*PSet, error) {
	e, err := a.entity(propID)
	if err != nil {
		return nil, err
	}
	psets := NewPSetAdapter(a.store)
	var out []*PSet
	for _, owner := range a.store.Inverse(e) {
		if !isSet(owner) {
			continue
		}
		if containsEntity(memberList(owner), e) {
			out = append(out, psets.wrap(owner))
		}
	}
	return out, nil
}

func (a *PropAdapter) setSingleValue(e types.Entity, v types.Value) (bool, error) {
	oldHolder := attrEntity(e, types.AttrNominalValue)
	newHolder, err := a.handler.CreateValueEntity(v)
	if err != nil {
		return false, err
	}

	needsValue := true
	if oldHolder != nil && oldHolder.Type() == newHolder.Type() {
		oldRaw, _ := oldHolder.Attr(types.AttrWrappedValue)
		newRaw, _ := newHolder.Attr(types.AttrWrappedValue)
		needsValue = !scalarEqual(oldRaw, newRaw)
	}

	modified := false
	if needsValue {
		e.SetAttr(types.AttrNominalValue, newHolder)
		if oldHolder != nil {
			a.store.RemoveEntity(oldHolder)
		}
		modified = true
	} else {
		// The fresh holder is not needed; drop it to avoid churn.
		a.store.RemoveEntity(newHolder)
	}

	if a.updateUnit(e, v) {
		modified = true
	}
	if !modified {
		logging.Debugf("value of property #%d unchanged", e.ID())
		return false, nil
	}
	return a.store.MarkModified(), nil
}

func (a *PropAdapter) setQuantityValue(e types.Entity, v types.Value) (bool, error) {
	shapeUnit, shape, ok := shapeOf(e)
	if !ok {
		return false, fmt.Errorf("entity #%d %s: %w", e.ID(), e.Type(), types.ErrNotPropertyOrQuantity)
	}
	if v.Unit() != shapeUnit && v.Unit() != types.UnitUnknown {
		logging.Warnf("writing a %s value into quantity #%d %s", v.Unit(), e.ID(), e.Type())
	}
	converted, convOK := shape.convert(v.Raw())
	if !convOK {
		return false, &types.InvalidValueError{Raw: v.Raw(), Target: shape.wantType}
	}

	modified := false
	current, hasCurrent := e.Attr(shape.attr)
	if !hasCurrent || !scalarEqual(current, converted) {
		e.SetAttr(shape.attr, converted)
		modified = true
	}

	if shapeUnit != types.UnitCount && a.updateUnit(e, v) {
		modified = true
	}
	if !modified {
		logging.Debugf("value of quantity #%d unchanged", e.ID())
		return false, nil
	}
	return a.store.MarkModified(), nil
}

// updateUnit resolves the unit entity for the value and swaps it in when it
// differs from the current one by identity. Reports whether the slot
// changed.
func (a *PropAdapter) updateUnit(e types.Entity, v types.Value) bool {
	unit := a.handler.GetOrCreateUnit(v.Unit(), v.Prefix())
	current := attrEntity(e, types.AttrUnit)
	if sameEntity(unit, current) {
		return false
	}
	e.SetAttr(types.AttrUnit, unit)
	return true
}

func (a *PropAdapter) entity(id int64) (types.Entity, error) {
	e, ok := a.store.ByID(id)
	if !ok {
		return nil, fmt.Errorf("property #%d: %w", id, types.ErrEntityNotFound)
	}
	if !e.Is(types.EntityProperty) && !e.Is(types.EntityPhysicalQuantity) {
		return nil, fmt.Errorf("entity #%d %s: %w", id, e.Type(), types.ErrNotPropertyOrQuantity)
	}
	return e, nil
}

func (a *PropAdapter) wrap(e types.Entity) *Prop {
	return &Prop{id: e.ID(), adapter: a}
}
