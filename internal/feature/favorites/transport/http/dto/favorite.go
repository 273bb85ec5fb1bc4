// Package dto defines data transfer objects for the favorites HTTP API.
package dto

import "favorites_backend/internal/feature/favorites/domain/entity"

// FavoriteItem is the serialized form of a favorite. Unset references encode as null.
type FavoriteItem struct {
	ID       uint  `json:"id"`
	UserID   *uint `json:"user_id"`
	PersonID *uint `json:"person_id"`
	PlanetID *uint `json:"planet_id"`
}

// FromFavorite converts a favorite entity to its DTO.
func FromFavorite(f entity.Favorite) FavoriteItem {
	return FavoriteItem{ID: f.ID, UserID: f.UserID, PersonID: f.PersonID, PlanetID: f.PlanetID}
}

// FromFavorites converts favorites to DTOs. The result is never nil so it encodes as [].
func FromFavorites(favs []entity.Favorite) []FavoriteItem {
	out := make([]FavoriteItem, 0, len(favs))
	for _, f := range favs {
		out = append(out, FromFavorite(f))
	}
	return out
}
