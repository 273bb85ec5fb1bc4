package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<div style="text-align: center;">
<h1>Favorites API</h1>
<p>API HOST: <input style="padding: 5px; width: 300px" type="text" value="{{.Host}}" readonly /></p>
<p>Endpoints:</p>
<ul style="text-align: left;">{{range .Links}}<li><a href="{{.}}">{{.}}</a></li>{{end}}</ul>
</div>`))

type sitemapPage struct {
	Host  string
	Links []string
}

// RouteLister は登録済みルートを返します。*gin.Engine の Routes が満たします。
type RouteLister func() gin.RoutesInfo

// Sitemap はパラメータを持たないGETルートの一覧をHTMLで返すハンドラーを生成します。
// ルート一覧はリクエストごとに取得するため、Sitemap登録後に追加したルートも表示されます。
func Sitemap(routes RouteLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf strings.Builder
		if err := sitemapTemplate.Execute(&buf, sitemapPage{
			Host:  c.Request.Host,
			Links: SitemapLinks(routes()),
		}); err != nil {
			slog.Error("failed to render sitemap", "error", err)
			_ = c.Error(err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(buf.String()))
	}
}

// SitemapLinks はパスパラメータを含まないGETルートのパスを重複なく昇順で返します。
// "/" 自身は含めません。
func SitemapLinks(routes gin.RoutesInfo) []string {
	seen := make(map[string]struct{}, len(routes))
	links := make([]string, 0, len(routes))
	for _, r := range routes {
		if r.Method != http.MethodGet || r.Path == "/" || strings.ContainsAny(r.Path, ":*") {
			continue
		}
		if _, ok := seen[r.Path]; ok {
			continue
		}
		seen[r.Path] = struct{}{}
		links = append(links, r.Path)
	}
	sort.Strings(links)
	return links
}
