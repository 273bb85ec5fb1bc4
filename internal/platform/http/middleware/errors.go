// Package middleware はアプリケーション共通のginミドルウェアを提供します。
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"favorites_backend/internal/api"
)

// ErrorHandler はハンドラーが c.Error で登録したエラーを 400 {"message": ...} に変換します。
// 既にレスポンスが書き込まれている場合は何もしません。
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil || c.Writer.Written() {
			return
		}
		slog.Warn("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Err,
		)
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Err.Error()})
	}
}

// Recovery はpanicを回復し、他のエラーと同じ 400 {"message": ...} を返します。
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusBadRequest, api.MessageResponse{Message: fmt.Sprint(recovered)})
	})
}

// NoRoute は未登録のルートを ErrRouteNotFound として扱います。
func NoRoute(c *gin.Context) {
	_ = c.Error(api.ErrRouteNotFound)
}

// NoMethod はメソッドが許可されていないルートを ErrMethodNotAllowed として扱います。
func NoMethod(c *gin.Context) {
	_ = c.Error(api.ErrMethodNotAllowed)
}
