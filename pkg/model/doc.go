// Package model provides the typed adapters over a propkit entity store:
// objects and object types, property and quantity sets, single properties,
// and the value/unit resolution engine that bridges Values and entities.
package model
