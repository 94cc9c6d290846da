package model

import "github.com/openbim/propkit/pkg/types"

// Object is a lightweight handle on an object occurrence entity. It holds
// only the entity identifier; every accessor goes through the adapter.
type Object struct {
	id      int64
	adapter *ObjectAdapter
}

// ID returns the entity identifier.
func (o *Object) ID() int64 {
	return o.id
}

// GUID returns the object's GlobalId.
func (o *Object) GUID() string {
	e, ok := o.adapter.store.ByID(o.id)
	if !ok {
		return ""
	}
	return attrString(e, types.AttrGlobalID)
}

// Name returns the object's name.
func (o *Object) Name() string {
	e, ok := o.adapter.store.ByID(o.id)
	if !ok {
		return ""
	}
	return attrString(e, types.AttrName)
}

// SetName renames the object.
func (o *Object) SetName(name string) error {
	e, ok := o.adapter.store.ByID(o.id)
	if !ok {
		return types.ErrEntityNotFound
	}
	e.SetAttr(types.AttrName, name)
	o.adapter.store.MarkModified()
	return nil
}

// EntityType returns the concrete entity type name of the object.
func (o *Object) EntityType() string {
	e, ok := o.adapter.store.ByID(o.id)
	if !ok {
		return ""
	}
	return e.Type()
}

// PSets returns the sets attached to the object.
func (o *Object) PSets(includeQto bool) ([]*PSet, error) {
	return o.adapter.PSets(o.id, includeQto)
}

// PSetByName returns the attached set with the given name, or nil.
func (o *Object) PSetByName(name string) (*PSet, error) {
	return o.adapter.PSetByName(o.id, name)
}

// AddPSet creates a new set on the object.
func (o *Object) AddPSet(def types.SetDefinition) (*PSet, error) {
	return o.adapter.AddPSet(o.id, def)
}

// RemovePSet detaches and possibly deletes the named set.
func (o *Object) RemovePSet(name string) (bool, error) {
	return o.adapter.RemovePSet(o.id, name)
}

// UpdateProperties writes properties into the named set.
func (o *Object) UpdateProperties(setName string, props []types.Property, removeOthers bool) (bool, error) {
	return o.adapter.UpdateProperties(o.id, setName, props, removeOthers)
}

// Property returns the named property from the named set, or nil.
func (o *Object) Property(setName, propName string) (*Prop, error) {
	return o.adapter.Property(o.id, setName, propName)
}

// Type returns the object's defining type object, or nil.
func (o *Object) Type() (*ObjectType, error) {
	return o.adapter.TypeOf(o.id)
}

// SetType binds the object to a type object.
func (o *Object) SetType(t *ObjectType) error {
	return o.adapter.SetType(o.id, t)
}

// ObjectType is a lightweight handle on a type object entity.
type ObjectType struct {
	id      int64
	adapter *ObjectTypeAdapter
}

// ID returns the entity identifier.
func (t *ObjectType) ID() int64 {
	return t.id
}

// GUID returns the type object's GlobalId.
func (t *ObjectType) GUID() string {
	e, ok := t.adapter.store.ByID(t.id)
	if !ok {
		return ""
	}
	return attrString(e, types.AttrGlobalID)
}

// Name returns the type object's name.
func (t *ObjectType) Name() string {
	e, ok := t.adapter.store.ByID(t.id)
	if !ok {
		return ""
	}
	return attrString(e, types.AttrName)
}

// Instances returns the objects bound to this type.
func (t *ObjectType) Instances() ([]*Object, error) {
	return t.adapter.InstancesOf(t.id)
}

// PSet is a lightweight handle on a property or quantity set entity.
type PSet struct {
	id      int64
	adapter *PSetAdapter
}

// ID returns the entity identifier.
func (s *PSet) ID() int64 {
	return s.id
}

// Name returns the set's name.
func (s *PSet) Name() string {
	e, ok := s.adapter.store.ByID(s.id)
	if !ok {
		return ""
	}
	return attrString(e, types.AttrName)
}

// IsQuantitySet reports whether the set holds quantities rather than
// single-value properties.
func (s *PSet) IsQuantitySet() bool {
	e, ok := s.adapter.store.ByID(s.id)
	if !ok {
		return false
	}
	return e.Is(types.EntityElementQuantity)
}

// Properties returns the members of the set.
func (s *PSet) Properties() ([]*Prop, error) {
	return s.adapter.Properties(s.id)
}

// Property returns the member with the given name, or nil.
func (s *PSet) Property(name string) (*Prop, error) {
	members, err := s.adapter.Properties(s.id)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, nil
}

// AddProperty creates a new member in the set.
func (s *PSet) AddProperty(prop types.Property) (*Prop, error) {
	return s.adapter.AddProperty(s.id, prop)
}

// RemoveProperty deletes the named member.
func (s *PSet) RemoveProperty(name string) (bool, error) {
	return s.adapter.RemoveProperty(s.id, name)
}

// Objects returns the objects the set is attached to.
func (s *PSet) Objects() ([]*Object, error) {
	return s.adapter.ObjectsOf(s.id)
}

// Prop is a lightweight handle on a single property or quantity entity.
type Prop struct {
	id      int64
	adapter *PropAdapter
}

// ID returns the entity identifier.
func (p *Prop) ID() int64 {
	return p.id
}

// Name returns the property's name.
func (p *Prop) Name() string {
	e, ok := p.adapter.store.ByID(p.id)
	if !ok {
		return ""
	}
	return attrString(e, types.AttrName)
}

// EntityType returns the concrete entity type name of the property.
func (p *Prop) EntityType() string {
	e, ok := p.adapter.store.ByID(p.id)
	if !ok {
		return ""
	}
	return e.Type()
}

// Value resolves the property's current value.
func (p *Prop) Value() (types.Value, error) {
	return p.adapter.Value(p.id)
}

// SetValue writes a value, reporting whether anything changed.
func (p *Prop) SetValue(v types.Value) (bool, error) {
	return p.adapter.SetValue(p.id, v)
}

// PSets returns the sets the property belongs to.
func (p *Prop) PSets() ([]*PSet, error) {
	return p.adapter.PSetsOf(p.id)
}
