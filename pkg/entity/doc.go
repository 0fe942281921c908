// Package entity defines the drawing data model for Vellum: a closed
// tagged union over drawing entities, dimensions and annotations. Each
// record carries an id, a layer reference, visibility/lock flags and a
// stroke style; the kind-specific geometry lives behind the Data marker
// interface so that transform, boolean and modification code can type
// switch over a set the compiler knows is closed.
package entity
