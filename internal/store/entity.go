// Package store implements the in-memory entity model, the session context
// that bootstraps and owns a model, and SQLite file persistence.
package store

import "github.com/openbim/propkit/pkg/types"

// superTypes records the immediate supertype of each entity type the model
// distinguishes. Is walks this chain.
var superTypes = map[string]string{
	types.EntityWall:     types.EntityObject,
	types.EntityWallType: types.EntityTypeObject,

	types.EntityPropertySingleValue: types.EntityProperty,
	types.EntityQuantityLength:      types.EntityPhysicalQuantity,
	types.EntityQuantityArea:        types.EntityPhysicalQuantity,
	types.EntityQuantityVolume:      types.EntityPhysicalQuantity,
	types.EntityQuantityWeight:      types.EntityPhysicalQuantity,
	types.EntityQuantityCount:       types.EntityPhysicalQuantity,
	types.EntityQuantityTime:        types.EntityPhysicalQuantity,
}

// entity is the store's Entity implementation. Attribute values are
// scalars, types.Entity references, or []types.Entity lists.
type entity struct {
	id    int64
	etype string
	attrs map[string]any
}

func (e *entity) ID() int64 {
	return e.id
}

func (e *entity) Type() string {
	return e.etype
}

// Is reports whether the entity's type matches typeName directly or through
// the supertype chain.
func (e *entity) Is(typeName string) bool {
	for t := e.etype; t != ""; t = superTypes[t] {
		if t == typeName {
			return true
		}
	}
	return false
}

func (e *entity) Attr(name string) (any, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *entity) SetAttr(name string, value any) {
	if value == nil {
		delete(e.attrs, name)
		return
	}
	e.attrs[name] = value
}
