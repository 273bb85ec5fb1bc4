// Package entity defines the domain entities for the favorites feature.
package entity

// Favorite links a user to a person or a planet.
// Every reference is optional, and the same pair may be stored more than once.
type Favorite struct {
	ID       uint
	UserID   *uint
	PersonID *uint
	PlanetID *uint
}

// Filter selects favorites by equality on the non-nil fields.
type Filter struct {
	UserID   *uint
	PersonID *uint
	PlanetID *uint
}
