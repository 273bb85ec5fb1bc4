// Package router はginエンジンとルーティングテーブルを構築します。
package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"favorites_backend/internal/app/di"
	platformhandler "favorites_backend/internal/platform/http/handler"
	"favorites_backend/internal/platform/http/middleware"
)

// NewRouter はルートとミドルウェアを登録したginエンジンを返します。
func NewRouter(h *di.Handlers) *gin.Engine {
	r := gin.New()
	// 末尾スラッシュは Handler で取り除く
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true

	r.Use(gin.Logger(), middleware.Recovery(), cors.Default(), middleware.ErrorHandler())
	r.NoRoute(middleware.NoRoute)
	r.NoMethod(middleware.NoMethod)

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	routes := []route{
		// サイトマップ
		{http.MethodGet, "/", platformhandler.Sitemap(r.Routes)},

		{http.MethodGet, "/people", h.Catalog.ListPeople},
		{http.MethodGet, "/people/:id", h.Catalog.GetPerson},
		{http.MethodGet, "/planets", h.Catalog.ListPlanets},
		{http.MethodGet, "/planets/:id", h.Catalog.GetPlanet},

		{http.MethodGet, "/users", h.Users.List},
		{http.MethodGet, "/users/favorites", h.Favorites.ListForUser},

		{http.MethodPost, "/favorite/planet/:id", h.Favorites.AddPlanet},
		{http.MethodPost, "/favorite/people/:id", h.Favorites.AddPerson},
		{http.MethodDelete, "/favorite/planet/:id", h.Favorites.RemovePlanet},
		{http.MethodDelete, "/favorite/people/:id", h.Favorites.RemovePerson},
	}
	register(r, routes)

	return r
}

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

// register はルートを登録します。GETにはHEADを併せて登録し、
// 各パスにはAllowヘッダーを返すOPTIONSを登録します。
func register(r *gin.Engine, routes []route) {
	var paths []string
	allowed := make(map[string][]string)
	for _, rt := range routes {
		r.Handle(rt.method, rt.path, rt.handler)
		if _, ok := allowed[rt.path]; !ok {
			paths = append(paths, rt.path)
		}
		allowed[rt.path] = append(allowed[rt.path], rt.method)
		if rt.method == http.MethodGet {
			r.HEAD(rt.path, rt.handler)
			allowed[rt.path] = append(allowed[rt.path], http.MethodHead)
		}
	}
	for _, p := range paths {
		r.OPTIONS(p, allow(append(allowed[p], http.MethodOptions)))
	}
}

// allow は空のボディとAllowヘッダーで200を返すハンドラーです。
func allow(methods []string) gin.HandlerFunc {
	header := strings.Join(methods, ", ")
	return func(c *gin.Context) {
		c.Header("Allow", header)
		c.Status(http.StatusOK)
	}
}

// Handler はエンジンを末尾スラッシュ正規化でラップした http.Handler を返します。
func Handler(r *gin.Engine) http.Handler {
	return middleware.TrimTrailingSlash(r)
}
