// Package logger はプロセス全体のslogロガーを設定します。
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config はログ出力の設定です。
type Config struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

// ParseLevel はログレベル文字列をslog.Levelに変換します。未知の値はInfoとして扱います。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New は設定に従ってwへ出力するロガーを生成します。
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup はロガーを生成し、slogのデフォルトに設定します。
func Setup(cfg Config, w io.Writer) *slog.Logger {
	l := New(cfg, w)
	slog.SetDefault(l)
	return l
}
