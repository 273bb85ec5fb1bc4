// Package api defines the JSON shapes and request parameter binding shared by every HTTP handler.
package api

// Messages returned in MessageResponse bodies.
const (
	MsgUserIDRequired      = "User ID required"
	MsgPersonNotFound      = "Person not found"
	MsgPlanetNotFound      = "Planet not found"
	MsgFavoriteNotFound    = "Favorite not found"
	MsgFavoriteRemoved     = "Favorite removed"
	MsgInternalServerError = "Internal Server Error"
)

// MessageResponse is the body of every non-data response, including errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of the health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}
