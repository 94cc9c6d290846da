package model

import "github.com/openbim/propkit/pkg/types"

// attrEntity returns the named attribute as an entity reference, or nil.
func attrEntity(e types.Entity, name string) types.Entity {
	v, ok := e.Attr(name)
	if !ok || v == nil {
		return nil
	}
	ref, _ := v.(types.Entity)
	return ref
}

// attrString returns the named attribute as a string, or "".
func attrString(e types.Entity, name string) string {
	v, ok := e.Attr(name)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// attrEntityList returns the named attribute as an entity list, or nil.
func attrEntityList(e types.Entity, name string) []types.Entity {
	v, ok := e.Attr(name)
	if !ok || v == nil {
		return nil
	}
	list, _ := v.([]types.Entity)
	return list
}

// findByName returns the first entity in the list whose Name attribute
// equals name, or nil.
func findByName(list []types.Entity, name string) types.Entity {
	for _, e := range list {
		if attrString(e, types.AttrName) == name {
			return e
		}
	}
	return nil
}

// sameEntity compares two possibly nil entity references by identity.
func sameEntity(a, b types.Entity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// containsEntity reports whether the list holds a reference to target.
func containsEntity(list []types.Entity, target types.Entity) bool {
	for _, e := range list {
		if sameEntity(e, target) {
			return true
		}
	}
	return false
}

// scalarEqual compares two stored scalars with float tolerance: two floats
// compare within types.RelTol, a float paired with another numeric compares
// as floats, everything else by equality.
func scalarEqual(a, b any) bool {
	af, aIsFloat := a.(float64)
	bf, bIsFloat := b.(float64)
	if aIsFloat && bIsFloat {
		return types.Close(af, bf)
	}
	if aIsFloat || bIsFloat {
		x, okA := types.AsFloat(a)
		y, okB := types.AsFloat(b)
		if okA && okB {
			return types.Close(x, y)
		}
		return false
	}
	return a == b
}
