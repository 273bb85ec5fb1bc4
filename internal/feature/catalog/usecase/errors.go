// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrPersonNotFound is returned when no person has the requested ID.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPlanetNotFound is returned when no planet has the requested ID.
	ErrPlanetNotFound = errors.New("planet not found")
)
