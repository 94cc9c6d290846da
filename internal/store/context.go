package store

import (
	"time"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

// Attribute names of the owner history subgraph. These never travel through
// the adapters, so they stay local to the store.
const (
	attrGivenName             = "GivenName"
	attrFamilyName            = "FamilyName"
	attrThePerson             = "ThePerson"
	attrTheOrganization       = "TheOrganization"
	attrApplicationDeveloper  = "ApplicationDeveloper"
	attrVersion               = "Version"
	attrApplicationFullName   = "ApplicationFullName"
	attrApplicationIdentifier = "ApplicationIdentifier"
	attrOwningUser            = "OwningUser"
	attrOwningApplication     = "OwningApplication"
	attrChangeAction          = "ChangeAction"
	attrCreationDate          = "CreationDate"
)

const (
	defaultPersonName   = "propkit"
	defaultOrganization = "openbim"
	appIdentifier       = "propkit"
	appVersion          = "0.1.0"
)

// Context is an open model session: the store plus the file path it came
// from, the closed state, and project bootstrapping for fresh models.
type Context struct {
	*Model
	path   string
	closed bool
}

// Create returns a session over a fresh model with the basic project
// structure in place: owner history, the default SI units, and the project
// root that carries the unit assignment.
func Create() *Context {
	c := &Context{Model: NewModel(defaultSchema)}
	c.setupProject()
	return c
}

// Open loads a session from a model file.
func Open(path string) (*Context, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	logging.Infof("opened model %s (%d entities)", path, m.Len())
	return &Context{Model: m, path: path}, nil
}

// Path returns the file path the session was opened from or last saved to.
func (c *Context) Path() string {
	return c.path
}

// Save writes the model to path, or to the session's own path when path is
// empty. A successful save clears the dirty flag and remembers the path.
func (c *Context) Save(path string) error {
	if c.closed {
		return types.ErrSessionClosed
	}
	if path == "" {
		path = c.path
	}
	if path == "" {
		return types.ErrNoFilePath
	}
	if err := Write(c.Model, path); err != nil {
		return err
	}
	c.path = path
	c.resetModified()
	logging.Infof("saved model to %s (%d entities)", path, c.Len())
	return nil
}

// Close releases the session. Further saves fail with ErrSessionClosed.
func (c *Context) Close() {
	c.closed = true
}

// OwnerHistory returns the model's owner history entity, creating the
// person, organization, and application subgraph on first use.
func (m *Model) OwnerHistory() types.Entity {
	if existing := m.ByType(types.EntityOwnerHistory); len(existing) > 0 {
		return existing[0]
	}
	person := m.CreateEntity(types.EntityPerson, map[string]any{
		attrGivenName:  defaultPersonName,
		attrFamilyName: defaultPersonName,
	})
	org := m.CreateEntity(types.EntityOrganization, map[string]any{
		types.AttrName: defaultOrganization,
	})
	personAndOrg := m.CreateEntity(types.EntityPersonAndOrganization, map[string]any{
		attrThePerson:       person,
		attrTheOrganization: org,
	})
	app := m.CreateEntity(types.EntityApplication, map[string]any{
		attrApplicationDeveloper:  org,
		attrVersion:               appVersion,
		attrApplicationFullName:   appIdentifier,
		attrApplicationIdentifier: appIdentifier,
	})
	history := m.CreateEntity(types.EntityOwnerHistory, map[string]any{
		attrOwningUser:        personAndOrg,
		attrOwningApplication: app,
		attrChangeAction:      "ADDED",
		attrCreationDate:      time.Now().Unix(),
	})
	logging.Debugf("created owner history #%d", history.ID())
	return history
}

// setupProject bootstraps a fresh model: the default SI units in a unit
// assignment and the project root carrying them.
func (c *Context) setupProject() {
	if len(c.ByType(types.EntityProject)) > 0 {
		return
	}
	owner := c.OwnerHistory()
	units := []types.Entity{
		c.createDefaultUnit(types.UnitLength),
		c.createDefaultUnit(types.UnitArea),
		c.createDefaultUnit(types.UnitVolume),
		c.createDefaultUnit(types.UnitPlaneAngle),
	}
	assignment := c.CreateEntity(types.EntityUnitAssignment, map[string]any{
		types.AttrUnits: units,
	})
	project := c.CreateEntity(types.EntityProject, map[string]any{
		types.AttrGlobalID:       types.NewGUID(),
		types.AttrOwnerHistory:   owner,
		types.AttrName:           "Default Project",
		types.AttrUnitsInContext: assignment,
	})
	logging.Infof("created project root #%d with default units", project.ID())
}

func (c *Context) createDefaultUnit(ut types.UnitType) types.Entity {
	return c.CreateEntity(types.EntitySIUnit, map[string]any{
		types.AttrUnitType: ut.Token(),
		types.AttrName:     ut.BaseName(),
	})
}
