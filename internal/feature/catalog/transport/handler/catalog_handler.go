// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"favorites_backend/internal/api"
	"favorites_backend/internal/feature/catalog/domain/entity"
	"favorites_backend/internal/feature/catalog/transport/http/dto"
	"favorites_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase は人物・惑星の参照ユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	ListPeople(ctx context.Context) ([]entity.Person, error)
	GetPerson(ctx context.Context, id uint) (*entity.Person, error)
	ListPlanets(ctx context.Context) ([]entity.Planet, error)
	GetPlanet(ctx context.Context, id uint) (*entity.Planet, error)
}

// CatalogHandler は人物・惑星に関するHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListPeople は全人物の一覧を返します。
// このハンドラーのみエラーを自前で処理し、ログ出力後に500を返します。
func (h *CatalogHandler) ListPeople(c *gin.Context) {
	people, err := h.uc.ListPeople(c.Request.Context())
	if err != nil {
		slog.Error("failed to list people", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: api.MsgInternalServerError})
		return
	}
	if len(people) == 0 {
		slog.Info("no people found")
	}
	c.JSON(http.StatusOK, dto.FromPeople(people))
}

// GetPerson はIDで指定された人物を返します。存在しない場合は404を返します。
func (h *CatalogHandler) GetPerson(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	p, err := h.uc.GetPerson(c.Request.Context(), id)
	if errors.Is(err, usecase.ErrPersonNotFound) {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: api.MsgPersonNotFound})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPerson(*p))
}

// ListPlanets は全惑星の一覧を返します。
func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	planets, err := h.uc.ListPlanets(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPlanets(planets))
}

// GetPlanet はIDで指定された惑星を返します。存在しない場合は404を返します。
func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	p, err := h.uc.GetPlanet(c.Request.Context(), id)
	if errors.Is(err, usecase.ErrPlanetNotFound) {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: api.MsgPlanetNotFound})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPlanet(*p))
}
