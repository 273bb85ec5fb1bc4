package usecase

import (
	"context"

	"favorites_backend/internal/feature/catalog/domain/entity"
)

// PersonRepository abstracts read access to people.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PersonRepository interface {
	// List returns every person ordered by ID.
	List(ctx context.Context) ([]entity.Person, error)

	// FindByID returns ErrPersonNotFound when the person does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Person, error)
}

// PlanetRepository abstracts read access to planets.
type PlanetRepository interface {
	// List returns every planet ordered by ID.
	List(ctx context.Context) ([]entity.Planet, error)

	// FindByID returns ErrPlanetNotFound when the planet does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Planet, error)
}

// CatalogUsecase provides read-only access to people and planets.
type CatalogUsecase struct {
	people  PersonRepository
	planets PlanetRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repositories.
func NewCatalogUsecase(people PersonRepository, planets PlanetRepository) *CatalogUsecase {
	return &CatalogUsecase{people: people, planets: planets}
}

// ListPeople returns all people.
func (u *CatalogUsecase) ListPeople(ctx context.Context) ([]entity.Person, error) {
	return u.people.List(ctx)
}

// GetPerson returns a single person by ID.
func (u *CatalogUsecase) GetPerson(ctx context.Context, id uint) (*entity.Person, error) {
	return u.people.FindByID(ctx, id)
}

// ListPlanets returns all planets.
func (u *CatalogUsecase) ListPlanets(ctx context.Context) ([]entity.Planet, error) {
	return u.planets.List(ctx)
}

// GetPlanet returns a single planet by ID.
func (u *CatalogUsecase) GetPlanet(ctx context.Context, id uint) (*entity.Planet, error) {
	return u.planets.FindByID(ctx, id)
}
