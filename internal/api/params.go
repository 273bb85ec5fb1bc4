package api

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

var (
	// ErrUserIDRequired は user_id クエリパラメータが未指定または空の場合に返されます。
	ErrUserIDRequired = errors.New("user id required")

	// ErrRouteNotFound mirrors the router's unknown-route error so that a malformed
	// integer path segment is indistinguishable from a route that does not exist.
	ErrRouteNotFound = errors.New("404 Not Found: The requested URL was not found on the server. " +
		"If you entered the URL manually please check your spelling and try again.")

	// ErrMethodNotAllowed is reported when the path exists but not for the request method.
	ErrMethodNotAllowed = errors.New("405 Method Not Allowed: The method is not allowed for the requested URL.")
)

// UserIDQuery は必須の user_id クエリパラメータを読み取ります。
// 未指定・空文字の場合は ErrUserIDRequired を、整数でない場合はバインドエラーを返します。
// 複数指定された場合は最初の値を使います。
func UserIDQuery(c *gin.Context) (uint, error) {
	first := c.Query("user_id")
	if first == "" {
		return 0, ErrUserIDRequired
	}
	var userID int64
	if err := runtime.BindQueryParameter("form", true, true, "user_id", url.Values{"user_id": {first}}, &userID); err != nil {
		return 0, err
	}
	if userID < 0 {
		return 0, fmt.Errorf("invalid user_id %d: must not be negative", userID)
	}
	return uint(userID), nil
}

// PathID は整数のパスパラメータを読み取ります。
// 非負整数でない値はルート不一致として ErrRouteNotFound を返します。
func PathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		return 0, ErrRouteNotFound
	}
	return uint(id), nil
}
