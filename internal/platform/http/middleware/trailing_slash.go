package middleware

import (
	"net/http"
	"strings"
)

// TrimTrailingSlash はルーティング前にパス末尾のスラッシュを取り除きます。
// "/people/" と "/people" はリダイレクトなしで同じハンドラーに到達します。
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			r2 := r.Clone(r.Context())
			r2.URL.Path = strings.TrimRight(p, "/")
			if r2.URL.Path == "" {
				r2.URL.Path = "/"
			}
			r2.URL.RawPath = ""
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
