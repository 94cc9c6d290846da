// Package propkit is the public entry point for working with model files.
// It exposes session creation while keeping the store implementation
// internal; the typed adapters live in pkg/model.
//
// Example:
//
//	session := propkit.Create()
//	defer session.Close()
//
//	objects := model.NewObjectAdapter(session)
//	wall := objects.Create(types.EntityWall, "North Wall")
//	_, err := wall.AddPSet(types.QuantitySet{
//	    Name:       "BaseQuantities",
//	    Properties: []types.Property{{Name: "Length", Value: length}},
//	})
package propkit

import (
	"github.com/openbim/propkit/internal/store"
	"github.com/openbim/propkit/pkg/types"
)

// Version is the propkit release version.
const Version = "0.1.0"

// Create returns a session over a fresh model with the basic project
// structure in place.
func Create() types.Session {
	return store.Create()
}

// Open loads a session from a model file.
func Open(path string) (types.Session, error) {
	return store.Open(path)
}
