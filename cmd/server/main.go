package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"favorites_backend/internal/app/config"
	"favorites_backend/internal/app/di"
	"favorites_backend/internal/app/router"
	"favorites_backend/internal/platform/db"
	"favorites_backend/internal/platform/logger"
)

// shutdownTimeout は終了シグナル受信後、処理中のリクエストを待つ上限時間です。
const shutdownTimeout = 10 * time.Second

func main() {
	// .envを読み込む
	config.LoadDotEnv()
	cfg := config.Load()
	logger.Setup(cfg.Log, os.Stdout)

	// db
	gdb, err := db.OpenDB(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}()
	}

	// Repository / Usecase / Handler
	handlers, err := di.NewHandlers(gdb)
	if err != nil {
		slog.Error("failed to build handlers", "error", err)
		os.Exit(1)
	}

	// ルータ生成
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Handler(router.NewRouter(handlers)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
