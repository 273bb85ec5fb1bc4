// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"favorites_backend/internal/api"
)

// pingTimeout はヘルスチェック時のDB疎通確認の上限時間です。
const pingTimeout = 2 * time.Second

// Pinger はデータベースの疎通確認を行うインターフェースです。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler は新しい HealthHandler を作成します。
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はDBに疎通できれば200、できなければ503を返します。キャッシュは防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	status, body := http.StatusOK, api.StatusResponse{Status: "ok"}
	if err := h.db.PingContext(ctx); err != nil {
		slog.Warn("health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, api.StatusResponse{Status: "unavailable"}
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}
