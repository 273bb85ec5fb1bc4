// Package config はプロセス全体の設定を環境変数から読み込みます。
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"favorites_backend/internal/platform/db"
	"favorites_backend/internal/platform/logger"
)

// DefaultPort はPORT未設定時の待ち受けポートです。
const DefaultPort = "3000"

// Config はサーバーとシードCLIの設定です。
type Config struct {
	Port string
	DB   db.Config
	Log  logger.Config
}

// LoadDotEnv は .env ファイルがあれば読み込みます。既に設定済みの環境変数は上書きしません。
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			slog.Debug(".env not loaded; using system environment variables", "path", p)
		}
	}
}

// Load は環境変数から設定を読み込みます。
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	return Config{
		Port: port,
		DB:   db.LoadConfigFromEnv(),
		Log: logger.Config{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: os.Getenv("LOG_FORMAT"),
		},
	}
}

// Addr は待ち受けアドレスを返します。
func (c Config) Addr() string {
	return ":" + c.Port
}
