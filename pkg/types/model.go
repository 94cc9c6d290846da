package types

// Entity is a single record in the model store: a stable numeric ID, a type
// name with subtype-aware matching, and dynamic attributes. Attribute
// values are scalars, Entity references, or []Entity lists.
type Entity interface {
	// ID returns the store-assigned identifier, stable for the lifetime
	// of the model.
	ID() int64

	// Type returns the entity's concrete type name.
	Type() string

	// Is reports whether the entity's type is typeName or a subtype of it.
	Is(typeName string) bool

	// Attr returns the named attribute. The boolean reports presence;
	// a present attribute may still hold nil.
	Attr(name string) (any, bool)

	// SetAttr stores the named attribute. Setting nil clears the slot.
	// SetAttr alone does not mark the model dirty; callers decide when a
	// change is a modification.
	SetAttr(name string, value any)
}

// Store is the contract the adapters and the resolution engine consume from
// the entity model. Implementations are not safe for concurrent use;
// callers serialize access.
type Store interface {
	// ByID returns the entity with the given identifier.
	ByID(id int64) (Entity, bool)

	// ByGUID returns the entity carrying the given GlobalId attribute.
	ByGUID(guid string) (Entity, bool)

	// ByType returns all entities whose type is typeName or a subtype of
	// it, ordered by ID.
	ByType(typeName string) []Entity

	// Inverse returns all entities holding a reference to target in any
	// attribute, directly or inside a list, ordered by ID.
	Inverse(target Entity) []Entity

	// CreateEntity adds a new entity of the given type with the given
	// attributes and marks the model dirty.
	CreateEntity(typeName string, attrs map[string]any) Entity

	// RemoveEntity deletes the entity from the model and marks the model
	// dirty. It reports whether the entity was present. References held
	// by other entities are not chased.
	RemoveEntity(e Entity) bool

	// MarkModified sets the dirty flag and reports true. Idempotent.
	MarkModified() bool

	// Modified reports the dirty flag.
	Modified() bool

	// OwnerHistory returns the model's owner history entity, creating it
	// together with its person, organization, and application records on
	// first use.
	OwnerHistory() Entity
}

// Session is an open model: the store plus its save and close lifecycle.
type Session interface {
	Store

	// Save writes the model to the given path, or to the path it was
	// opened from when path is empty. A successful save clears the dirty
	// flag. Returns ErrNoFilePath when no path is available and
	// ErrSessionClosed after Close.
	Save(path string) error

	// Path returns the file path the session was opened from or last
	// saved to. Empty for fresh in-memory sessions.
	Path() string

	// Close releases the session. Further saves fail with
	// ErrSessionClosed.
	Close()
}
