package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbim/propkit/pkg/types"
)

func TestObjectCreate(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "South Wall")

	assert.Equal(t, "South Wall", wall.Name())
	assert.Equal(t, types.EntityWall, wall.EntityType())
	assert.Len(t, wall.GUID(), 22)

	byGUID, err := NewObjectAdapter(session).ByGUID(wall.GUID())
	require.NoError(t, err)
	assert.Equal(t, wall.ID(), byGUID.ID())
}

func TestAddPSetInfersSetKind(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	pset, err := wall.AddPSet(types.PropertySet{
		Name: "Pset_WallCommon",
		Properties: []types.Property{
			{Name: "IsExternal", Value: mustValue(t, true, types.Boolean, nil, nil)},
			{Name: "FireRating", Value: mustValue(t, "F90", types.Label, nil, nil)},
		},
	})
	require.NoError(t, err)
	assert.False(t, pset.IsQuantitySet())

	qto, err := wall.AddPSet(types.QuantitySet{
		Name: "Qto_WallBaseQuantities",
		Properties: []types.Property{
			{Name: "Width", Value: mustValue(t, 0.3, types.Real, types.UnitLength, nil)},
			{Name: "GrossArea", Value: mustValue(t, 12.0, types.Real, types.UnitArea, nil)},
		},
	})
	require.NoError(t, err)
	assert.True(t, qto.IsQuantitySet())

	members, err := qto.Properties()
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestAddPSetDuplicateName(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	_, err := wall.AddPSet(types.PropertySet{Name: "Pset_WallCommon"})
	require.NoError(t, err)
	_, err = wall.AddPSet(types.PropertySet{Name: "Pset_WallCommon"})
	assert.ErrorIs(t, err, types.ErrPSetExists)
}

func TestAddPSetValidation(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	_, err := wall.AddPSet(types.PropertySet{Name: ""})
	assert.ErrorIs(t, err, types.ErrSetNameEmpty)

	_, err = wall.AddPSet(types.QuantitySet{
		Name: "Qto_Bad",
		Properties: []types.Property{
			{Name: "Width", Value: mustValue(t, 0.3, types.Real, nil, nil)},
		},
	})
	assert.ErrorIs(t, err, types.ErrMissingUnitType)

	_, err = wall.AddPSet(types.QuantitySet{
		Name: "Qto_Bad",
		Properties: []types.Property{
			{Name: "Width", Value: mustValue(t, "wide", types.Text, types.UnitLength, nil)},
		},
	})
	assert.ErrorIs(t, err, types.ErrNonNumericQuantity)
}

func TestPSetsFiltersQuantitySets(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	_, err := wall.AddPSet(types.PropertySet{Name: "Pset_WallCommon"})
	require.NoError(t, err)
	_, err = wall.AddPSet(types.QuantitySet{
		Name: "Qto_WallBaseQuantities",
		Properties: []types.Property{
			{Name: "Width", Value: mustValue(t, 0.3, types.Real, types.UnitLength, nil)},
		},
	})
	require.NoError(t, err)

	plain, err := wall.PSets(false)
	require.NoError(t, err)
	assert.Len(t, plain, 1)
	assert.Equal(t, "Pset_WallCommon", plain[0].Name())

	all, err := wall.PSets(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPSetByNameAbsent(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	set, err := wall.PSetByName("Nope")
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestRemovePSetDeletesOrphanedSet(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	_, err := wall.AddPSet(types.PropertySet{
		Name: "Pset_WallCommon",
		Properties: []types.Property{
			{Name: "FireRating", Value: mustValue(t, "F90", types.Label, nil, nil)},
		},
	})
	require.NoError(t, err)

	removed, err := wall.RemovePSet("Pset_WallCommon")
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Empty(t, session.ByType(types.EntityPropertySet))
	assert.Empty(t, session.ByType(types.EntityPropertySingleValue))
	assert.Empty(t, session.ByType("IfcLabel"))
	assert.Empty(t, session.ByType(types.EntityRelDefinesByProperties))

	removed, err = wall.RemovePSet("Pset_WallCommon")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemovePSetKeepsSharedSet(t *testing.T) {
	session := newSession(t)
	objects := NewObjectAdapter(session)
	wallA := objects.Create(types.EntityWall, "Wall A")
	wallB := objects.Create(types.EntityWall, "Wall B")

	set, err := wallA.AddPSet(types.PropertySet{Name: "Pset_Shared"})
	require.NoError(t, err)

	setEntity, ok := session.ByID(set.ID())
	require.True(t, ok)
	wallBEntity, _ := session.ByID(wallB.ID())
	session.CreateEntity(types.EntityRelDefinesByProperties, map[string]any{
		types.AttrGlobalID:                   types.NewGUID(),
		types.AttrRelatedObjects:             []types.Entity{wallBEntity},
		types.AttrRelatingPropertyDefinition: setEntity,
	})

	removed, err := wallA.RemovePSet("Pset_Shared")
	require.NoError(t, err)
	assert.True(t, removed)

	_, stillThere := session.ByID(set.ID())
	assert.True(t, stillThere, "set referenced by another object must survive")

	fromB, err := wallB.PSetByName("Pset_Shared")
	require.NoError(t, err)
	assert.NotNil(t, fromB)
}

func TestRemovePSetMultiObjectRelation(t *testing.T) {
	session := newSession(t)
	objects := NewObjectAdapter(session)
	wallA := objects.Create(types.EntityWall, "Wall A")
	wallB := objects.Create(types.EntityWall, "Wall B")

	set, err := wallA.AddPSet(types.PropertySet{Name: "Pset_Shared"})
	require.NoError(t, err)

	rels := session.ByType(types.EntityRelDefinesByProperties)
	require.Len(t, rels, 1)
	wallBEntity, _ := session.ByID(wallB.ID())
	related := rels[0]
	objs, _ := related.Attr(types.AttrRelatedObjects)
	related.SetAttr(types.AttrRelatedObjects, append(objs.([]types.Entity), wallBEntity))

	removed, err := wallA.RemovePSet("Pset_Shared")
	require.NoError(t, err)
	assert.True(t, removed)

	_, stillThere := session.ByID(set.ID())
	assert.True(t, stillThere)

	fromA, err := wallA.PSetByName("Pset_Shared")
	require.NoError(t, err)
	assert.Nil(t, fromA)
	fromB, err := wallB.PSetByName("Pset_Shared")
	require.NoError(t, err)
	assert.NotNil(t, fromB)
}

func TestUpdateProperties(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	_, err := wall.AddPSet(types.PropertySet{
		Name: "Pset_WallCommon",
		Properties: []types.Property{
			{Name: "FireRating", Value: mustValue(t, "F60", types.Label, nil, nil)},
			{Name: "Status", Value: mustValue(t, "New", types.Label, nil, nil)},
		},
	})
	require.NoError(t, err)

	changed, err := wall.UpdateProperties("Pset_WallCommon", []types.Property{
		{Name: "FireRating", Value: mustValue(t, "F90", types.Label, nil, nil)},
		{Name: "IsExternal", Value: mustValue(t, true, types.Boolean, nil, nil)},
	}, false)
	require.NoError(t, err)
	assert.True(t, changed)

	fire, err := wall.Property("Pset_WallCommon", "FireRating")
	require.NoError(t, err)
	v, err := fire.Value()
	require.NoError(t, err)
	assert.Equal(t, "F90", v.Raw())

	status, err := wall.Property("Pset_WallCommon", "Status")
	require.NoError(t, err)
	assert.NotNil(t, status, "unnamed members survive without removeOthers")

	changed, err = wall.UpdateProperties("Pset_WallCommon", []types.Property{
		{Name: "FireRating", Value: mustValue(t, "F90", types.Label, nil, nil)},
	}, true)
	require.NoError(t, err)
	assert.True(t, changed)

	status, err = wall.Property("Pset_WallCommon", "Status")
	require.NoError(t, err)
	assert.Nil(t, status)

	changed, err = wall.UpdateProperties("Pset_WallCommon", []types.Property{
		{Name: "FireRating", Value: mustValue(t, "F90", types.Label, nil, nil)},
	}, true)
	require.NoError(t, err)
	assert.False(t, changed, "re-applying the same state must be a no-op")
}

func TestUpdatePropertiesMissingSet(t *testing.T) {
	session := newSession(t)
	wall := NewObjectAdapter(session).Create(types.EntityWall, "Wall")

	_, err := wall.UpdateProperties("Nope", nil, false)
	assert.ErrorIs(t, err, types.ErrEntityNotFound)
}

func TestTypeBinding(t *testing.T) {
	session := newSession(t)
	objects := NewObjectAdapter(session)
	typesAdapter := NewObjectTypeAdapter(session)

	wall := objects.Create(types.EntityWall, "Wall")
	wallType := typesAdapter.Create(types.EntityWallType, "Basic Wall")

	bound, err := wall.Type()
	require.NoError(t, err)
	assert.Nil(t, bound)

	require.NoError(t, wall.SetType(wallType))

	bound, err = wall.Type()
	require.NoError(t, err)
	require.NotNil(t, bound)
	assert.Equal(t, wallType.ID(), bound.ID())
	assert.Equal(t, "Basic Wall", bound.Name())

	instances, err := wallType.Instances()
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, wall.ID(), instances[0].ID())
}

func TestSetTypeReplacesBinding(t *testing.T) {
	session := newSession(t)
	objects := NewObjectAdapter(session)
	typesAdapter := NewObjectTypeAdapter(session)

	wall := objects.Create(types.EntityWall, "Wall")
	first := typesAdapter.Create(types.EntityWallType, "First")
	second := typesAdapter.Create(types.EntityWallType, "Second")

	require.NoError(t, wall.SetType(first))
	require.NoError(t, wall.SetType(second))

	bound, err := wall.Type()
	require.NoError(t, err)
	require.NotNil(t, bound)
	assert.Equal(t, second.ID(), bound.ID())
	assert.Len(t, session.ByType(types.EntityRelDefinesByType), 1)

	instances, err := first.Instances()
	require.NoError(t, err)
	assert.Empty(t, instances)
}
