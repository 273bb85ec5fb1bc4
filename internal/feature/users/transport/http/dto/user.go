// Package dto defines data transfer objects for the users HTTP API.
package dto

import "favorites_backend/internal/feature/users/domain/entity"

// UserItem is the public form of a user. Password and activity flag are never exposed.
type UserItem struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// FromUsers converts users to DTOs. The result is never nil so it encodes as [].
func FromUsers(users []entity.User) []UserItem {
	out := make([]UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, UserItem{ID: u.ID, Email: u.Email})
	}
	return out
}
