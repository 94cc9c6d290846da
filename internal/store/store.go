package store

import (
	"sort"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

// defaultSchema is recorded in saved files and reported by sessions.
const defaultSchema = "IFC4"

// Model is the in-memory entity store. It is not safe for concurrent use.
type Model struct {
	schema   string
	nextID   int64
	entities map[int64]*entity
	modified bool
}

// NewModel returns an empty model for the given schema identifier.
func NewModel(schema string) *Model {
	if schema == "" {
		schema = defaultSchema
	}
	return &Model{
		schema:   schema,
		entities: make(map[int64]*entity),
	}
}

// Schema returns the schema identifier of the model.
func (m *Model) Schema() string {
	return m.schema
}

// Len returns the number of entities in the model.
func (m *Model) Len() int {
	return len(m.entities)
}

// CreateEntity adds a new entity and marks the model dirty. The attribute
// map is taken over by the entity; pass a fresh map.
func (m *Model) CreateEntity(typeName string, attrs map[string]any) types.Entity {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	m.nextID++
	e := &entity{id: m.nextID, etype: typeName, attrs: attrs}
	m.entities[e.id] = e
	m.MarkModified()
	logging.Debugf("created entity #%d %s", e.id, typeName)
	return e
}

// RemoveEntity deletes the entity and marks the model dirty. References to
// the entity held elsewhere are not chased.
func (m *Model) RemoveEntity(e types.Entity) bool {
	if e == nil {
		return false
	}
	if _, ok := m.entities[e.ID()]; !ok {
		return false
	}
	delete(m.entities, e.ID())
	m.MarkModified()
	logging.Debugf("removed entity #%d %s", e.ID(), e.Type())
	return true
}

// ByID returns the entity with the given identifier.
func (m *Model) ByID(id int64) (types.Entity, bool) {
	e, ok := m.entities[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// ByGUID returns the entity carrying the given GlobalId attribute.
func (m *Model) ByGUID(guid string) (types.Entity, bool) {
	if guid == "" {
		return nil, false
	}
	for _, id := range m.sortedIDs() {
		e := m.entities[id]
		if g, ok := e.attrs[types.AttrGlobalID]; ok && g == guid {
			return e, true
		}
	}
	return nil, false
}

// ByType returns all entities matching typeName or one of its subtypes,
// ordered by ID.
func (m *Model) ByType(typeName string) []types.Entity {
	var out []types.Entity
	for _, id := range m.sortedIDs() {
		if e := m.entities[id]; e.Is(typeName) {
			out = append(out, e)
		}
	}
	return out
}

// Inverse returns all entities referencing target in any attribute, either
// directly or inside a list, ordered by ID.
func (m *Model) Inverse(target types.Entity) []types.Entity {
	if target == nil {
		return nil
	}
	var out []types.Entity
	for _, id := range m.sortedIDs() {
		e := m.entities[id]
		if e.id == target.ID() {
			continue
		}
		if references(e, target.ID()) {
			out = append(out, e)
		}
	}
	return out
}

// MarkModified sets the dirty flag and reports true.
func (m *Model) MarkModified() bool {
	m.modified = true
	return true
}

// Modified reports the dirty flag.
func (m *Model) Modified() bool {
	return m.modified
}

func (m *Model) resetModified() {
	m.modified = false
}

func (m *Model) sortedIDs() []int64 {
	ids := make([]int64, 0, len(m.entities))
	for id := range m.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func references(e *entity, targetID int64) bool {
	for _, v := range e.attrs {
		switch ref := v.(type) {
		case types.Entity:
			if ref != nil && ref.ID() == targetID {
				return true
			}
		case []types.Entity:
			for _, r := range ref {
				if r != nil && r.ID() == targetID {
					return true
				}
			}
		}
	}
	return false
}
