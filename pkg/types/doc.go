// Package types defines the semantic value taxonomy, the immutable Value
// record with its factory, property set definitions, and the entity store
// contracts shared by the propkit model layer.
package types
