// Package entity defines the domain entities for the users feature.
package entity

// User is a registered account that can own favorites.
type User struct {
	ID uint

	// Email is unique across all users.
	Email string

	// Password holds a bcrypt hash. It is never serialized by the API.
	Password string

	IsActive bool
}
