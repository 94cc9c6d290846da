package model

import (
	"fmt"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

// ObjectAdapter operates on object occurrence entities: the things that
// carry property and quantity sets.
type ObjectAdapter struct {
	store types.Store
	psets *PSetAdapter
}

// NewObjectAdapter returns an adapter over the given store.
func NewObjectAdapter(s types.Store) *ObjectAdapter {
	return &ObjectAdapter{store: s, psets: NewPSetAdapter(s)}
}

// Create adds a new object entity of the given type name with a fresh
// GlobalId.
func (a *ObjectAdapter) Create(typeName, name string) *Object {
	e := a.store.CreateEntity(typeName, map[string]any{
		types.AttrGlobalID:     types.NewGUID(),
		types.AttrOwnerHistory: a.store.OwnerHistory(),
		types.AttrName:         name,
	})
	return a.wrap(e)
}

// ByID returns the object with the given entity identifier.
func (a *ObjectAdapter) ByID(id int64) (*Object, error) {
	e, err := a.entity(id)
	if err != nil {
		return nil, err
	}
	return a.wrap(e), nil
}

// ByGUID returns the object carrying the given GlobalId.
func (a *ObjectAdapter) ByGUID(guid string) (*Object, error) {
	e, ok := a.store.ByGUID(guid)
	if !ok {
		return nil, fmt.Errorf("object %q: %w", guid, types.ErrEntityNotFound)
	}
	if !e.Is(types.EntityObject) {
		return nil, fmt.Errorf("entity %q is a %s, not an object", guid, e.Type())
	}
	return a.wrap(e), nil
}

// PSets returns the sets attached to the object. Quantity sets are
// excluded unless includeQto is set.
func (a *ObjectAdapter) PSets(objID int64, includeQto bool) ([]*PSet, error) {
	e, err := a.entity(objID)
	if err != nil {
		return nil, err
	}
	var out []*PSet
	for _, set := range a.setEntities(e) {
		if !includeQto && set.Is(types.EntityElementQuantity) {
			continue
		}
		out = append(out, a.psets.wrap(set))
	}
	return out, nil
}

// PSetByName returns the attached set with the given name, or nil when the
// object carries no such set.
func (a *ObjectAdapter) PSetByName(objID int64, name string) (*PSet, error) {
	e, err := a.entity(objID)
	if err != nil {
		return nil, err
	}
	for _, set := range a.setEntities(e) {
		if attrString(set, types.AttrName) == name {
			return a.psets.wrap(set), nil
		}
	}
	return nil, nil
}

// AddPSet creates a new set on the object from the definition. The set
// becomes a quantity set when any of its properties carries a measured unit
// category; a quantity set requires every property to carry one. Adding a
// set name the object already carries fails with ErrPSetExists.
func (a *ObjectAdapter) AddPSet(objID int64, def types.SetDefinition) (*PSet, error) {
	e, err := a.entity(objID)
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	name := def.SetName()
	for _, set := range a.setEntities(e) {
		if attrString(set, types.AttrName) == name {
			return nil, fmt.Errorf("set %q on object #%d: %w", name, objID, types.ErrPSetExists)
		}
	}

	props := def.SetProperties()
	isQto := false
	for _, p := range props {
		if p.Value.Unit() != types.UnitUnknown && p.Value.Unit() != types.UnitCount {
			isQto = true
			break
		}
	}
	setType := types.EntityPropertySet
	if isQto {
		setType = types.EntityElementQuantity
		for _, p := range props {
			if p.Value.Unit() == types.UnitUnknown {
				return nil, fmt.Errorf("property %q in quantity set %q: %w",
					p.Name, name, types.ErrMissingUnitType)
			}
		}
	}

	set := a.store.CreateEntity(setType, map[string]any{
		types.AttrGlobalID:     types.NewGUID(),
		types.AttrOwnerHistory: a.store.OwnerHistory(),
		types.AttrName:         name,
	})
	a.store.CreateEntity(types.EntityRelDefinesByProperties, map[string]any{
		types.AttrGlobalID:                   types.NewGUID(),
		types.AttrOwnerHistory:               a.store.OwnerHistory(),
		types.AttrRelatedObjects:             []types.Entity{e},
		types.AttrRelatingPropertyDefinition: set,
	})
	for _, p := range props {
		if _, err := a.psets.AddProperty(set.ID(), p); err != nil {
			logging.Errorf("adding property %q to set %q: %v", p.Name, name, err)
		}
	}
	a.store.MarkModified()
	logging.Debugf("added %s %q to object #%d", setType, name, objID)
	return a.psets.wrap(set), nil
}

// RemovePSet detaches the named set from the object. When no other object
// shares the set, the set and its members are deleted with it. It reports
// whether a set was removed.
func (a *ObjectAdapter) RemovePSet(objID int64, name string) (bool, error) {
	e, err := a.entity(objID)
	if err != nil {
		return false, err
	}
	var (
		target types.Entity
		rel    types.Entity
	)
	for _, r := range a.definingRels(e) {
		set := attrEntity(r, types.AttrRelatingPropertyDefinition)
		if set != nil && attrString(set, types.AttrName) == name {
			target, rel = set, r
			break
		}
	}
	if target == nil {
		return false, nil
	}

	related := attrEntityList(rel, types.AttrRelatedObjects)
	if len(related) > 1 {
		remaining := make([]types.Entity, 0, len(related)-1)
		for _, obj := range related {
			if !sameEntity(obj, e) {
				remaining = append(remaining, obj)
			}
		}
		rel.SetAttr(types.AttrRelatedObjects, remaining)
		a.store.MarkModified()
		return true, nil
	}

	a.store.RemoveEntity(rel)
	if a.setIsShared(target, rel) {
		logging.Debugf("set %q detached from object #%d but kept, still referenced elsewhere", name, objID)
		a.store.MarkModified()
		return true, nil
	}
	for _, m := range memberList(target) {
		if holder := attrEntity(m, types.AttrNominalValue); holder != nil {
			a.store.RemoveEntity(holder)
		}
		a.store.RemoveEntity(m)
	}
	a.store.RemoveEntity(target)
	a.store.MarkModified()
	logging.Debugf("removed set %q from object #%d", name, objID)
	return true, nil
}

// UpdateProperties writes the given properties into the named set, creating
// missing members and updating existing ones. With removeOthers set,
// members not named in props are removed. It reports whether anything
// changed.
func (a *ObjectAdapter) UpdateProperties(objID int64, setName string, props []types.Property, removeOthers bool) (bool, error) {
	set, err := a.PSetByName(objID, setName)
	if err != nil {
		return false, err
	}
	if set == nil {
		return false, fmt.Errorf("set %q on object #%d: %w", setName, objID, types.ErrEntityNotFound)
	}

	propAdapter := NewPropAdapter(a.store)
	modified := false
	wanted := make(map[string]bool, len(props))
	for _, p := range props {
		wanted[p.Name] = true
		existing, err := set.Property(p.Name)
		if err != nil {
			return modified, err
		}
		if existing == nil {
			if _, err := a.psets.AddProperty(set.ID(), p); err != nil {
				return modified, err
			}
			modified = true
			continue
		}
		changed, err := propAdapter.SetValue(existing.ID(), p.Value)
		if err != nil {
			return modified, err
		}
		if changed {
			modified = true
		}
	}

	if removeOthers {
		members, err := set.Properties()
		if err != nil {
			return modified, err
		}
		for _, m := range members {
			name := m.Name()
			if wanted[name] {
				continue
			}
			removed, err := a.psets.RemoveProperty(set.ID(), name)
			if err != nil {
				return modified, err
			}
			if removed {
				modified = true
			}
		}
	}
	return modified, nil
}

// Property returns the named property from the named set, or nil when
// either is absent.
func (a *ObjectAdapter) Property(objID int64, setName, propName string) (*Prop, error) {
	set, err := a.PSetByName(objID, setName)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, nil
	}
	return set.Property(propName)
}

// TypeOf returns the object's defining type object, or nil when the object
// has none.
func (a *ObjectAdapter) TypeOf(objID int64) (*ObjectType, error) {
	e, err := a.entity(objID)
	if err != nil {
		return nil, err
	}
	for _, rel := range a.store.Inverse(e) {
		if !rel.Is(types.EntityRelDefinesByType) {
			continue
		}
		if !containsEntity(attrEntityList(rel, types.AttrRelatedObjects), e) {
			continue
		}
		if t := attrEntity(rel, types.AttrRelatingType); t != nil {
			return NewObjectTypeAdapter(a.store).wrap(t), nil
		}
	}
	return nil, nil
}

// SetType binds the object to a type object, replacing any previous
// binding.
func (a *ObjectAdapter) SetType(objID int64, typeObj *ObjectType) error {
	e, err := a.entity(objID)
	if err != nil {
		return err
	}
	target, ok := a.store.ByID(typeObj.ID())
	if !ok {
		return fmt.Errorf("type object #%d: %w", typeObj.ID(), types.ErrEntityNotFound)
	}
	for _, rel := range a.store.Inverse(e) {
		if rel.Is(types.EntityRelDefinesByType) &&
			containsEntity(attrEntityList(rel, types.AttrRelatedObjects), e) {
			a.store.RemoveEntity(rel)
		}
	}
	a.store.CreateEntity(types.EntityRelDefinesByType, map[string]any{
		types.AttrGlobalID:       types.NewGUID(),
		types.AttrOwnerHistory:   a.store.OwnerHistory(),
		types.AttrRelatedObjects: []types.Entity{e},
		types.AttrRelatingType:   target,
	})
	return nil
}

// setEntities returns the set entities attached to the object through
// defining relationships, ordered by relationship ID.
func (a *ObjectAdapter) setEntities(e types.Entity) []types.Entity {
	var out []types.Entity
	for _, rel := range a.definingRels(e) {
		if set := attrEntity(rel, types.AttrRelatingPropertyDefinition); set != nil && isSet(set) {
			out = append(out, set)
		}
	}
	return out
}

func (a *ObjectAdapter) definingRels(e types.Entity) []types.Entity {
	var out []types.Entity
	for _, rel := range a.store.Inverse(e) {
		if rel.Is(types.EntityRelDefinesByProperties) &&
			containsEntity(attrEntityList(rel, types.AttrRelatedObjects), e) {
			out = append(out, rel)
		}
	}
	return out
}

// setIsShared reports whether any defining relationship other than skip
// still references the set.
func (a *ObjectAdapter) setIsShared(set, skip types.Entity) bool {
	for _, rel := range a.store.Inverse(set) {
		if sameEntity(rel, skip) {
			continue
		}
		if rel.Is(types.EntityRelDefinesByProperties) &&
			sameEntity(attrEntity(rel, types.AttrRelatingPropertyDefinition), set) {
			return true
		}
	}
	return false
}

func (a *ObjectAdapter) entity(id int64) (types.Entity, error) {
	e, ok := a.store.ByID(id)
	if !ok {
		return nil, fmt.Errorf("object #%d: %w", id, types.ErrEntityNotFound)
	}
	if !e.Is(types.EntityObject) && !e.Is(types.EntityTypeObject) {
		return nil, fmt.Errorf("entity #%d is a %s, not an object", id, e.Type())
	}
	return e, nil
}

func (a *ObjectAdapter) wrap(e types.Entity) *Object {
	return &Object{id: e.ID(), adapter: a}
}

// ObjectTypeAdapter operates on type object entities.
type ObjectTypeAdapter struct {
	store   types.Store
	objects *ObjectAdapter
}

// NewObjectTypeAdapter returns an adapter over the given store.
func NewObjectTypeAdapter(s types.Store) *ObjectTypeAdapter {
	return &ObjectTypeAdapter{store: s, objects: NewObjectAdapter(s)}
}

// Create adds a new type object entity of the given type name.
func (ta *ObjectTypeAdapter) Create(typeName, name string) *ObjectType {
	e := ta.store.CreateEntity(typeName, map[string]any{
		types.AttrGlobalID:     types.NewGUID(),
		types.AttrOwnerHistory: ta.store.OwnerHistory(),
		types.AttrName:         name,
	})
	return ta.wrap(e)
}

// ByID returns the type object with the given entity identifier.
func (ta *ObjectTypeAdapter) ByID(id int64) (*ObjectType, error) {
	e, ok := ta.store.ByID(id)
	if !ok {
		return nil, fmt.Errorf("type object #%d: %w", id, types.ErrEntityNotFound)
	}
	if !e.Is(types.EntityTypeObject) {
		return nil, fmt.Errorf("entity #%d is a %s, not a type object", id, e.Type())
	}
	return ta.wrap(e), nil
}

// InstancesOf returns the objects bound to the type through typing
// relationships.
func (ta *ObjectTypeAdapter) InstancesOf(typeID int64) ([]*Object, error) {
	t, err := ta.ByID(typeID)
	if err != nil {
		return nil, err
	}
	e, _ := ta.store.ByID(t.ID())
	var out []*Object
	seen := make(map[int64]bool)
	for _, rel := range ta.store.Inverse(e) {
		if !rel.Is(types.EntityRelDefinesByType) {
			continue
		}
		if !sameEntity(attrEntity(rel, types.AttrRelatingType), e) {
			continue
		}
		for _, obj := range attrEntityList(rel, types.AttrRelatedObjects) {
			if obj.Is(types.EntityObject) && !seen[obj.ID()] {
				seen[obj.ID()] = true
				out = append(out, ta.objects.wrap(obj))
			}
		}
	}
	return out, nil
}

func (ta *ObjectTypeAdapter) wrap(e types.Entity) *ObjectType {
	return &ObjectType{id: e.ID(), adapter: ta}
}
