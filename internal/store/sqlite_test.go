package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbim/propkit/pkg/types"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	m := NewModel("IFC4")
	holder := m.CreateEntity("IfcReal", map[string]any{
		types.AttrWrappedValue: 2.5,
	})
	count := m.CreateEntity("IfcInteger", map[string]any{
		types.AttrWrappedValue: int64(7),
	})
	flag := m.CreateEntity("IfcLogical", map[string]any{
		types.AttrWrappedValue: true,
	})
	pset := m.CreateEntity(types.EntityPropertySet, map[string]any{
		types.AttrName:          "Pset_Test",
		types.AttrHasProperties: []types.Entity{holder, count, flag},
	})

	path := filepath.Join(t.TempDir(), "model.db")
	require.NoError(t, Write(m, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "IFC4", loaded.Schema())
	assert.Equal(t, m.Len(), loaded.Len())
	assert.False(t, loaded.Modified())

	got, ok := loaded.ByID(holder.ID())
	require.True(t, ok)
	raw, _ := got.Attr(types.AttrWrappedValue)
	assert.Equal(t, 2.5, raw)

	got, ok = loaded.ByID(count.ID())
	require.True(t, ok)
	raw, _ = got.Attr(types.AttrWrappedValue)
	assert.Equal(t, int64(7), raw)

	got, ok = loaded.ByID(flag.ID())
	require.True(t, ok)
	raw, _ = got.Attr(types.AttrWrappedValue)
	assert.Equal(t, true, raw)

	gotSet, ok := loaded.ByID(pset.ID())
	require.True(t, ok)
	members, _ := gotSet.Attr(types.AttrHasProperties)
	list, ok := members.([]types.Entity)
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Equal(t, holder.ID(), list[0].ID())
}

func TestLoadPreservesNextID(t *testing.T) {
	m := NewModel("")
	m.CreateEntity(types.EntityWall, nil)
	doomed := m.CreateEntity(types.EntityWall, nil)
	m.RemoveEntity(doomed)

	path := filepath.Join(t.TempDir(), "model.db")
	require.NoError(t, Write(m, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	e := loaded.CreateEntity(types.EntityWall, nil)
	assert.Greater(t, e.ID(), doomed.ID(), "reloaded model must not reuse old IDs")
}

func TestWriteReplacesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.db")

	big := NewModel("")
	for i := 0; i < 5; i++ {
		big.CreateEntity(types.EntityWall, nil)
	}
	require.NoError(t, Write(big, path))

	small := NewModel("")
	small.CreateEntity(types.EntityWall, nil)
	require.NoError(t, Write(small, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestWriteRejectsUnsupportedAttribute(t *testing.T) {
	m := NewModel("")
	m.CreateEntity(types.EntityWall, map[string]any{"Odd": make(chan int)})

	err := Write(m, filepath.Join(t.TempDir(), "model.db"))
	assert.Error(t, err)
}

func TestRoundTripThroughContext(t *testing.T) {
	c := Create()
	wall := c.CreateEntity(types.EntityWall, map[string]any{
		types.AttrGlobalID: types.NewGUID(),
		types.AttrName:     "North Wall",
	})

	path := filepath.Join(t.TempDir(), "model.db")
	require.NoError(t, c.Save(path))
	c.Close()

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.ByID(wall.ID())
	require.True(t, ok)
	name, _ := got.Attr(types.AttrName)
	assert.Equal(t, "North Wall", name)
	assert.True(t, got.Is(types.EntityObject))
}
