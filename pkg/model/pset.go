package model

import (
	"fmt"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

// PSetAdapter operates on property set and quantity set entities.
type PSetAdapter struct {
	store   types.Store
	handler *ValueUnitHandler
}

// NewPSetAdapter returns an adapter over the given store.
func NewPSetAdapter(s types.Store) *PSetAdapter {
	return &PSetAdapter{store: s, handler: NewValueUnitHandler(s)}
}

// ByID returns the set with the given entity identifier.
func (a *PSetAdapter) ByID(id int64) (*PSet, error) {
	e, err := a.entity(id)
	if err != nil {
		return nil, err
	}
	return a.wrap(e), nil
}

// ByGUID returns the set carrying the given GlobalId.
func (a *PSetAdapter) ByGUID(guid string) (*PSet, error) {
	e, ok := a.store.ByGUID(guid)
	if !ok {
		return nil, fmt.Errorf("property set %q: %w", guid, types.ErrEntityNotFound)
	}
	if !isSet(e) {
		return nil, fmt.Errorf("entity %q is a %s, not a property or quantity set", guid, e.Type())
	}
	return a.wrap(e), nil
}

// Properties returns the members of the set, single values and quantities
// alike.
func (a *PSetAdapter) Properties(setID int64) ([]*Prop, error) {
	e, err := a.entity(setID)
	if err != nil {
		return nil, err
	}
	props := NewPropAdapter(a.store)
	members := memberList(e)
	out := make([]*Prop, 0, len(members))
	for _, m := range members {
		out = append(out, props.wrap(m))
	}
	return out, nil
}

// AddProperty creates a new member in the set from the given definition.
// Property sets receive single-value properties; quantity sets receive the
// quantity shape matching the value's unit category. Adding a name that
// already exists in the set fails with ErrPropertyExists.
func (a *PSetAdapter) AddProperty(setID int64, prop types.Property) (*Prop, error) {
	e, err := a.entity(setID)
	if err != nil {
		return nil, err
	}
	if existing := findByName(memberList(e), prop.Name); existing != nil {
		return nil, fmt.Errorf("property %q in set #%d: %w", prop.Name, setID, types.ErrPropertyExists)
	}
	var member types.Entity
	if e.Is(types.EntityElementQuantity) {
		member, err = a.addQuantity(e, prop)
	} else {
		member, err = a.addSingleValue(e, prop)
	}
	if err != nil {
		return nil, err
	}
	a.store.MarkModified()
	return NewPropAdapter(a.store).wrap(member), nil
}

// RemoveProperty deletes the named member from the set, along with the
// scalar holder entity of a single-value property. It reports whether a
// member was removed.
func (a *PSetAdapter) RemoveProperty(setID int64, name string) (bool, error) {
	e, err := a.entity(setID)
	if err != nil {
		return false, err
	}
	listAttr := memberAttr(e)
	members := attrEntityList(e, listAttr)
	target := findByName(members, name)
	if target == nil {
		return false, nil
	}
	if holder := attrEntity(target, types.AttrNominalValue); holder != nil {
		a.store.RemoveEntity(holder)
	}
	remaining := make([]types.Entity, 0, len(members)-1)
	for _, m := range members {
		if !sameEntity(m, target) {
			remaining = append(remaining, m)
		}
	}
	e.SetAttr(listAttr, remaining)
	a.store.RemoveEntity(target)
	a.store.MarkModified()
	logging.Debugf("removed property %q from set #%d", name, setID)
	return true, nil
}

// ObjectsOf returns the objects the set is attached to through defining
// relationships.
func (a *PSetAdapter) ObjectsOf(setID int64) ([]*Object, error) {
	e, err := a.entity(setID)
	if err != nil {
		return nil, err
	}
	objects := NewObjectAdapter(a.store)
	var out []*Object
	seen := make(map[int64]bool)
	for _, rel := range a.store.Inverse(e) {
		if !rel.Is(types.EntityRelDefinesByProperties) {
			continue
		}
		if !sameEntity(attrEntity(rel, types.AttrRelatingPropertyDefinition), e) {
			continue
		}
		for _, obj := range attrEntityList(rel, types.AttrRelatedObjects) {
			if obj.Is(types.EntityObject) && !seen[obj.ID()] {
				seen[obj.ID()] = true
				out = append(out, objects.wrap(obj))
			}
		}
	}
	return out, nil
}

func (a *PSetAdapter) addSingleValue(set types.Entity, prop types.Property) (types.Entity, error) {
	v := prop.Value
	if v.Unit() != types.UnitUnknown && v.Unit() != types.UnitCount {
		logging.Warnf("property %q carries unit %s into a property set; units there describe, they do not measure",
			prop.Name, v.Unit())
	}
	holder, err := a.handler.CreateValueEntity(v)
	if err != nil {
		return nil, err
	}
	member := a.store.CreateEntity(types.EntityPropertySingleValue, map[string]any{
		types.AttrName:         prop.Name,
		types.AttrNominalValue: holder,
	})
	if v.Unit() != types.UnitUnknown && v.Unit() != types.UnitCount {
		if unit := a.handler.GetOrCreateUnit(v.Unit(), v.Prefix()); unit != nil {
			member.SetAttr(types.AttrUnit, unit)
		} else {
			logging.Warnf("no unit entity resolved for property %q (%s %s)", prop.Name, v.Prefix(), v.Unit())
		}
	}
	appendMember(set, types.AttrHasProperties, member)
	return member, nil
}

func (a *PSetAdapter) addQuantity(set types.Entity, prop types.Property) (types.Entity, error) {
	v := prop.Value
	shape, ok := quantityShapes[v.Unit()]
	if !ok {
		return nil, fmt.Errorf("unit type %s has no quantity form: %w", v.Unit(), types.ErrMissingUnitType)
	}
	converted, convOK := shape.convert(v.Raw())
	if !convOK {
		return nil, &types.InvalidValueError{Raw: v.Raw(), Target: shape.wantType}
	}
	member := a.store.CreateEntity(shape.entityType, map[string]any{
		types.AttrName: prop.Name,
		shape.attr:     converted,
	})
	if v.Unit() != types.UnitCount {
		if unit := a.handler.GetOrCreateUnit(v.Unit(), v.Prefix()); unit != nil {
			member.SetAttr(types.AttrUnit, unit)
		} else {
			logging.Warnf("no unit entity resolved for quantity %q (%s %s)", prop.Name, v.Prefix(), v.Unit())
		}
	}
	appendMember(set, types.AttrQuantities, member)
	return member, nil
}

func (a *PSetAdapter) entity(id int64) (types.Entity, error) {
	e, ok := a.store.ByID(id)
	if !ok {
		return nil, fmt.Errorf("property set #%d: %w", id, types.ErrEntityNotFound)
	}
	if !isSet(e) {
		return nil, fmt.Errorf("entity #%d is a %s, not a property or quantity set", id, e.Type())
	}
	return e, nil
}

func (a *PSetAdapter) wrap(e types.Entity) *PSet {
	return &PSet{id: e.ID(), adapter: a}
}

func isSet(e types.Entity) bool {
	return e.Is(types.EntityPropertySet) || e.Is(types.EntityElementQuantity)
}

// memberAttr returns the list attribute holding a set's members.
func memberAttr(set types.Entity) string {
	if set.Is(types.EntityElementQuantity) {
		return types.AttrQuantities
	}
	return types.AttrHasProperties
}

func memberList(set types.Entity) []types.Entity {
	return attrEntityList(set, memberAttr(set))
}

func appendMember(set types.Entity, listAttr string, member types.Entity) {
	set.SetAttr(listAttr, append(attrEntityList(set, listAttr), member))
}
