// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"gorm.io/gorm"

	catalogadapters "favorites_backend/internal/feature/catalog/adapters"
	cataloghandler "favorites_backend/internal/feature/catalog/transport/handler"
	catalogusecase "favorites_backend/internal/feature/catalog/usecase"
	favoritesadapters "favorites_backend/internal/feature/favorites/adapters"
	favoriteshandler "favorites_backend/internal/feature/favorites/transport/handler"
	favoritesusecase "favorites_backend/internal/feature/favorites/usecase"
	usersadapters "favorites_backend/internal/feature/users/adapters"
	usershandler "favorites_backend/internal/feature/users/transport/handler"
	usersusecase "favorites_backend/internal/feature/users/usecase"
	"favorites_backend/internal/platform/externalapi/swapi"
	infrahttp "favorites_backend/internal/platform/http"
	platformhandler "favorites_backend/internal/platform/http/handler"
	"favorites_backend/internal/shared/ratelimiter"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Catalog   *cataloghandler.CatalogHandler
	Users     *usershandler.UserHandler
	Favorites *favoriteshandler.FavoriteHandler
	Health    *platformhandler.HealthHandler
}

// NewHandlers builds repositories, usecases and handlers on top of db.
func NewHandlers(db *gorm.DB) (*Handlers, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Repository
	personRepo := catalogadapters.NewPersonRepository(db)
	planetRepo := catalogadapters.NewPlanetRepository(db)
	userRepo := usersadapters.NewUserRepository(db)
	favoriteRepo := favoritesadapters.NewFavoriteRepository(db)

	// Usecase
	catalogUC := catalogusecase.NewCatalogUsecase(personRepo, planetRepo)
	userUC := usersusecase.NewUserUsecase(userRepo)
	favoriteUC := favoritesusecase.NewFavoriteUsecase(favoriteRepo)

	return &Handlers{
		Catalog:   cataloghandler.NewCatalogHandler(catalogUC),
		Users:     usershandler.NewUserHandler(userUC),
		Favorites: favoriteshandler.NewFavoriteHandler(favoriteUC),
		Health:    platformhandler.NewHealthHandler(sqlDB),
	}, nil
}

// NewUserUsecase creates the users usecase used by the seed CLI.
func NewUserUsecase(db *gorm.DB) *usersusecase.UserUsecase {
	return usersusecase.NewUserUsecase(usersadapters.NewUserRepository(db))
}

// NewImportUsecase creates an ImportUsecase that pulls from the given source into db.
func NewImportUsecase(db *gorm.DB, source catalogusecase.CatalogSource, limiter ratelimiter.Limiter) *catalogusecase.ImportUsecase {
	return catalogusecase.NewImportUsecase(
		source,
		catalogadapters.NewPersonRepository(db),
		catalogadapters.NewPlanetRepository(db),
		limiter,
	)
}

// NewSwapiImport creates an ImportUsecase backed by a rate-limited SWAPI client configured from the environment.
func NewSwapiImport(db *gorm.DB) *catalogusecase.ImportUsecase {
	cfg := swapi.LoadConfig()
	client := swapi.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout, ""))
	return NewImportUsecase(db, client, ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute))
}
