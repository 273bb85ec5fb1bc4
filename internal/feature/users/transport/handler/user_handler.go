// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"favorites_backend/internal/feature/users/domain/entity"
	"favorites_backend/internal/feature/users/transport/http/dto"
)

// UserUsecase はユーザー参照ユースケースのインターフェースです。
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// UserHandler はユーザーに関するHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List は全ユーザーのIDとメールアドレスを返します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsers(users))
}
