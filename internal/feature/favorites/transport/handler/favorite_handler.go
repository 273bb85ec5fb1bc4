// Package handler はfavoritesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"favorites_backend/internal/api"
	"favorites_backend/internal/feature/favorites/domain/entity"
	"favorites_backend/internal/feature/favorites/transport/http/dto"
	"favorites_backend/internal/feature/favorites/usecase"
)

// FavoriteUsecase はお気に入り操作のユースケースのインターフェースです。
type FavoriteUsecase interface {
	ListForUser(ctx context.Context, userID uint) ([]entity.Favorite, error)
	AddPerson(ctx context.Context, userID, personID uint) (*entity.Favorite, error)
	AddPlanet(ctx context.Context, userID, planetID uint) (*entity.Favorite, error)
	RemovePerson(ctx context.Context, userID, personID uint) error
	RemovePlanet(ctx context.Context, userID, planetID uint) error
}

// FavoriteHandler はお気に入りに関するHTTPリクエストを処理します。
type FavoriteHandler struct {
	uc FavoriteUsecase
}

// NewFavoriteHandler は新しい FavoriteHandler を作成します。
func NewFavoriteHandler(uc FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// ListForUser は user_id クエリで指定されたユーザーのお気に入りを返します。
func (h *FavoriteHandler) ListForUser(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	favs, err := h.uc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFavorites(favs))
}

// AddPerson は人物をお気に入りに追加し、201で作成したレコードを返します。
func (h *FavoriteHandler) AddPerson(c *gin.Context) {
	h.add(c, h.uc.AddPerson)
}

// AddPlanet は惑星をお気に入りに追加し、201で作成したレコードを返します。
func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	h.add(c, h.uc.AddPlanet)
}

// RemovePerson は人物のお気に入りを1件削除します。
func (h *FavoriteHandler) RemovePerson(c *gin.Context) {
	h.remove(c, h.uc.RemovePerson)
}

// RemovePlanet は惑星のお気に入りを1件削除します。
func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	h.remove(c, h.uc.RemovePlanet)
}

func (h *FavoriteHandler) add(c *gin.Context, add func(ctx context.Context, userID, targetID uint) (*entity.Favorite, error)) {
	// パスIDの検証はルーティングの一部なので user_id より先に行う
	targetID, err := api.PathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	fav, err := add(c.Request.Context(), userID, targetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromFavorite(*fav))
}

func (h *FavoriteHandler) remove(c *gin.Context, remove func(ctx context.Context, userID, targetID uint) error) {
	targetID, err := api.PathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	err = remove(c.Request.Context(), userID, targetID)
	if errors.Is(err, usecase.ErrFavoriteNotFound) {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: api.MsgFavoriteNotFound})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: api.MsgFavoriteRemoved})
}

// userIDQuery は user_id を読み取ります。失敗した場合はレスポンスを書き込み false を返します。
func userIDQuery(c *gin.Context) (uint, bool) {
	userID, err := api.UserIDQuery(c)
	if errors.Is(err, api.ErrUserIDRequired) {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: api.MsgUserIDRequired})
		return 0, false
	}
	if err != nil {
		_ = c.Error(err)
		return 0, false
	}
	return userID, true
}
