package usecase

import (
	"context"
	"log/slog"
	"strings"

	"favorites_backend/internal/feature/catalog/domain/entity"
	"favorites_backend/internal/shared/ratelimiter"
)

// CatalogSource は人物・惑星の名前をページ単位で提供する外部ソースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CatalogSource interface {
	// People returns the names on the given 1-based page and whether another page follows.
	People(ctx context.Context, page int) (names []string, hasNext bool, err error)

	// Planets returns the names on the given 1-based page and whether another page follows.
	Planets(ctx context.Context, page int) (names []string, hasNext bool, err error)
}

// PersonStore creates people during imports.
type PersonStore interface {
	// FirstOrCreateByName returns the existing person with that name, or creates one.
	// created reports whether a new row was inserted.
	FirstOrCreateByName(ctx context.Context, name string) (p *entity.Person, created bool, err error)
}

// PlanetStore creates planets during imports.
type PlanetStore interface {
	FirstOrCreateByName(ctx context.Context, name string) (p *entity.Planet, created bool, err error)
}

// ImportStats counts the outcome of importing one resource.
type ImportStats struct {
	Created     int
	Existing    int
	Failed      int
	FailedPages int
}

// ImportResult summarises an ImportAll run.
type ImportResult struct {
	People  ImportStats
	Planets ImportStats
}

// ImportUsecase は外部ソースから人物と惑星を取得し、データベースに永続化するユースケースです。
type ImportUsecase struct {
	source  CatalogSource
	people  PersonStore
	planets PlanetStore
	limiter ratelimiter.Limiter
}

// NewImportUsecase は新しい ImportUsecase を作成します。
func NewImportUsecase(source CatalogSource, people PersonStore, planets PlanetStore, limiter ratelimiter.Limiter) *ImportUsecase {
	return &ImportUsecase{source: source, people: people, planets: planets, limiter: limiter}
}

// ImportAll は人物、惑星の順に全ページを取り込みます。maxPages が0以下の場合は最終ページまで取得します。
// 1ページや1件の失敗では処理を止めずにログに出力し、次の処理を続けます。
// エラーを返すのはctxがキャンセルされた場合のみです。
func (iu *ImportUsecase) ImportAll(ctx context.Context, maxPages int) (ImportResult, error) {
	var res ImportResult

	people, err := iu.importPages(ctx, "people", maxPages, iu.source.People, func(ctx context.Context, name string) (bool, error) {
		_, created, err := iu.people.FirstOrCreateByName(ctx, name)
		return created, err
	})
	res.People = people
	if err != nil {
		return res, err
	}

	planets, err := iu.importPages(ctx, "planets", maxPages, iu.source.Planets, func(ctx context.Context, name string) (bool, error) {
		_, created, err := iu.planets.FirstOrCreateByName(ctx, name)
		return created, err
	})
	res.Planets = planets
	return res, err
}

type fetchFunc func(ctx context.Context, page int) ([]string, bool, error)

type storeFunc func(ctx context.Context, name string) (bool, error)

func (iu *ImportUsecase) importPages(ctx context.Context, resource string, maxPages int, fetch fetchFunc, store storeFunc) (ImportStats, error) {
	var stats ImportStats
	for page := 1; maxPages <= 0 || page <= maxPages; page++ {
		if err := iu.limiter.Wait(ctx); err != nil {
			return stats, err
		}

		names, hasNext, err := fetch(ctx, page)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			// 次ページの有無が分からないため、このリソースの取り込みを終了する
			slog.Error("failed to fetch catalog page", "resource", resource, "page", page, "error", err)
			stats.FailedPages++
			return stats, nil
		}

		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			created, err := store(ctx, name)
			if err != nil {
				if ctx.Err() != nil {
					return stats, ctx.Err()
				}
				slog.Error("failed to store catalog entry", "resource", resource, "name", name, "error", err)
				stats.Failed++
				continue
			}
			if created {
				stats.Created++
			} else {
				stats.Existing++
			}
		}

		if !hasNext {
			break
		}
	}
	slog.Info("catalog import finished", "resource", resource,
		"created", stats.Created, "existing", stats.Existing, "failed", stats.Failed)
	return stats, nil
}
