package types

// Property is a named value to be written to a property or quantity set.
// It carries intent only; persistence happens through the adapters.
type Property struct {
	Name  string
	Value Value
}

// SetDefinition describes a property or quantity set to be created on an
// object. Whether the set becomes a quantity set is decided by the adapter
// from the unit categories of its properties.
type SetDefinition interface {
	SetName() string
	SetProperties() []Property
	Validate() error
}

// allowedQuantityUnitTypes is the set of unit categories a quantity set
// property may carry.
var allowedQuantityUnitTypes = map[UnitType]bool{
	UnitCount: true, UnitLength: true, UnitArea: true, UnitVolume: true,
	UnitMass: true, UnitTime: true, UnitTemperature: true,
	UnitPressure: true, UnitEnergy: true, UnitPower: true,
	UnitPlaneAngle: true,
}

// PropertySet defines a named group of single-value properties.
type PropertySet struct {
	Name       string
	Properties []Property
}

func (s PropertySet) SetName() string {
	return s.Name
}

func (s PropertySet) SetProperties() []Property {
	return s.Properties
}

// Validate checks the definition: a non-empty name and no duplicate
// property names.
func (s PropertySet) Validate() error {
	if s.Name == "" {
		return ErrSetNameEmpty
	}
	return checkDuplicates(s.Properties)
}

// QuantitySet defines a named group of measured quantities. Every property
// must carry an allowed unit category and a numeric value type.
type QuantitySet struct {
	Name       string
	Properties []Property
}

func (s QuantitySet) SetName() string {
	return s.Name
}

func (s QuantitySet) SetProperties() []Property {
	return s.Properties
}

// Validate checks the definition: a non-empty name, no duplicate property
// names, and every property with an allowed unit category and a numeric
// value type.
func (s QuantitySet) Validate() error {
	if s.Name == "" {
		return ErrSetNameEmpty
	}
	if err := checkDuplicates(s.Properties); err != nil {
		return err
	}
	for _, p := range s.Properties {
		if !allowedQuantityUnitTypes[p.Value.Unit()] {
			return ErrMissingUnitType
		}
		switch p.Value.Type() {
		case Real, Integer:
		default:
			return ErrNonNumericQuantity
		}
	}
	return nil
}

func checkDuplicates(props []Property) error {
	seen := make(map[string]bool, len(props))
	for _, p := range props {
		if seen[p.Name] {
			return ErrDuplicateProperty
		}
		seen[p.Name] = true
	}
	return nil
}
