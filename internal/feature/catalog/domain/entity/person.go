// Package entity defines the domain models for the catalog feature.
package entity

// Person is a character that users can mark as a favorite.
type Person struct {
	ID   uint
	Name string
}
