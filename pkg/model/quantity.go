package model

import "github.com/openbim/propkit/pkg/types"

// quantityShape describes one of the six fixed quantity entity shapes: the
// entity type, the attribute that carries the scalar, the converter that
// coerces an incoming raw value into the attribute, and the target name
// used in conversion errors.
type quantityShape struct {
	entityType string
	attr       string
	convert    func(any) (any, bool)
	wantType   string
}

func convertReal(raw any) (any, bool) {
	f, ok := types.AsFloat(raw)
	if !ok {
		return nil, false
	}
	return f, true
}

// convertCount prefers an integral count and falls back to float for raw
// values that only parse as fractional.
func convertCount(raw any) (any, bool) {
	if n, ok := types.AsInt(raw); ok {
		return n, true
	}
	if f, ok := types.AsFloat(raw); ok {
		return f, true
	}
	return nil, false
}

// quantityShapes maps each unit category that has a quantity form to its
// shape.
var quantityShapes = map[types.UnitType]quantityShape{
	types.UnitLength: {types.EntityQuantityLength, types.AttrLengthValue, convertReal, "Real"},
	types.UnitArea:   {types.EntityQuantityArea, types.AttrAreaValue, convertReal, "Real"},
	types.UnitVolume: {types.EntityQuantityVolume, types.AttrVolumeValue, convertReal, "Real"},
	types.UnitMass:   {types.EntityQuantityWeight, types.AttrWeightValue, convertReal, "Real"},
	types.UnitCount:  {types.EntityQuantityCount, types.AttrCountValue, convertCount, "Integer or Real"},
	types.UnitTime:   {types.EntityQuantityTime, types.AttrTimeValue, convertReal, "Real"},
}

// shapeOf returns the quantity shape matching the entity's type.
func shapeOf(e types.Entity) (types.UnitType, quantityShape, bool) {
	for ut, shape := range quantityShapes {
		if e.Is(shape.entityType) {
			return ut, shape, true
		}
	}
	return types.UnitUnknown, quantityShape{}, false
}
