// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent は外部APIへのリクエストに付与する User-Agent です。
const DefaultUserAgent = "favorites-backend/1.0"

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - MaxIdleConns / IdleConnTimeout: シードのページ取得で接続を再利用するため
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// userAgent が空の場合は DefaultUserAgent を付与します。
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: t, userAgent: userAgent},
	}
}

// userAgentTransport は User-Agent が未設定のリクエストに既定値を設定します。
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTripper は元のリクエストを変更してはならない
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
