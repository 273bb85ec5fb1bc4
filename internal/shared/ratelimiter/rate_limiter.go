// Package ratelimiter は外部API呼び出しの頻度を制限する固定ウィンドウ方式のリミッターを提供します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は操作の頻度を制限するインターフェースです。
type Limiter interface {
	// Wait blocks until another call is allowed or ctx is done.
	Wait(ctx context.Context) error
}

// RateLimiter allows at most limit calls per interval. A limit of zero or less disables limiting.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // interval あたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
	now       func() time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Wait はウィンドウ内の上限に達している場合、次のウィンドウまで待機します。
// 待機中にctxがキャンセルされた場合はctx.Err()を返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rl.limit <= 0 {
		return nil
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count <= rl.limit {
		return nil
	}

	sleep := rl.interval - now.Sub(rl.lastReset)
	if sleep > 0 {
		slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", sleep)
		timer := time.NewTimer(sleep)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			rl.count--
			return ctx.Err()
		case <-timer.C:
		}
	}
	// 新しいウィンドウを開始
	rl.count = 1
	rl.lastReset = rl.now()
	return nil
}
