package usecase

import "errors"

// ErrFavoriteNotFound is returned when no favorite matches a removal request.
var ErrFavoriteNotFound = errors.New("favorite not found")
