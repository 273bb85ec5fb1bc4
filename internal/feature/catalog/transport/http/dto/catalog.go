// Package dto defines data transfer objects for the catalog HTTP API.
package dto

import "favorites_backend/internal/feature/catalog/domain/entity"

// PersonItem is the serialized form of a person.
type PersonItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PlanetItem is the serialized form of a planet.
type PlanetItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FromPerson converts a person entity to its DTO.
func FromPerson(p entity.Person) PersonItem {
	return PersonItem{ID: p.ID, Name: p.Name}
}

// FromPeople converts people to DTOs. The result is never nil so it encodes as [].
func FromPeople(people []entity.Person) []PersonItem {
	out := make([]PersonItem, 0, len(people))
	for _, p := range people {
		out = append(out, FromPerson(p))
	}
	return out
}

// FromPlanet converts a planet entity to its DTO.
func FromPlanet(p entity.Planet) PlanetItem {
	return PlanetItem{ID: p.ID, Name: p.Name}
}

// FromPlanets converts planets to DTOs. The result is never nil so it encodes as [].
func FromPlanets(planets []entity.Planet) []PlanetItem {
	out := make([]PlanetItem, 0, len(planets))
	for _, p := range planets {
		out = append(out, FromPlanet(p))
	}
	return out
}
