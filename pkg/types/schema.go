package types

// Entity type names used by the store, the adapters, and the resolution
// engine. Subtype relationships between them are recorded by the store.
const (
	EntityProject               = "IfcProject"
	EntityOwnerHistory          = "IfcOwnerHistory"
	EntityApplication           = "IfcApplication"
	EntityPerson                = "IfcPerson"
	EntityOrganization          = "IfcOrganization"
	EntityPersonAndOrganization = "IfcPersonAndOrganization"

	EntitySIUnit               = "IfcSIUnit"
	EntityConversionBasedUnit  = "IfcConversionBasedUnit"
	EntityDerivedUnit          = "IfcDerivedUnit"
	EntityContextDependentUnit = "IfcContextDependentUnit"
	EntityUnitAssignment       = "IfcUnitAssignment"

	EntityObject     = "IfcObject"
	EntityTypeObject = "IfcTypeObject"
	EntityWall       = "IfcWall"
	EntityWallType   = "IfcWallType"

	EntityProperty            = "IfcProperty"
	EntityPropertySet         = "IfcPropertySet"
	EntityPropertySingleValue = "IfcPropertySingleValue"
	EntityPhysicalQuantity    = "IfcPhysicalQuantity"
	EntityElementQuantity     = "IfcElementQuantity"
	EntityQuantityLength      = "IfcQuantityLength"
	EntityQuantityArea        = "IfcQuantityArea"
	EntityQuantityVolume      = "IfcQuantityVolume"
	EntityQuantityWeight      = "IfcQuantityWeight"
	EntityQuantityCount       = "IfcQuantityCount"
	EntityQuantityTime        = "IfcQuantityTime"

	EntityRelDefinesByProperties = "IfcRelDefinesByProperties"
	EntityRelDefinesByType       = "IfcRelDefinesByType"
	EntityRelAggregates          = "IfcRelAggregates"
)

// Attribute names used on store entities.
const (
	AttrGlobalID       = "GlobalId"
	AttrName           = "Name"
	AttrDescription    = "Description"
	AttrOwnerHistory   = "OwnerHistory"
	AttrUnitsInContext = "UnitsInContext"
	AttrUnits          = "Units"

	AttrUnitType = "UnitType"
	AttrPrefix   = "Prefix"
	AttrMeasure  = "Measure"

	AttrNominalValue  = "NominalValue"
	AttrWrappedValue  = "WrappedValue"
	AttrUnit          = "Unit"
	AttrHasProperties = "HasProperties"
	AttrQuantities    = "Quantities"
	AttrLengthValue   = "LengthValue"
	AttrAreaValue     = "AreaValue"
	AttrVolumeValue   = "VolumeValue"
	AttrWeightValue   = "WeightValue"
	AttrCountValue    = "CountValue"
	AttrTimeValue     = "TimeValue"

	AttrRelatedObjects             = "RelatedObjects"
	AttrRelatingPropertyDefinition = "RelatingPropertyDefinition"
	AttrRelatingType               = "RelatingType"
)
