package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"favorites_backend/internal/feature/catalog/usecase"
	"favorites_backend/internal/platform/externalapi/swapi/dto"
)

// Client はSWAPI互換APIから人物・惑星の名前を取得するCatalogSource実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがCatalogSourceを実装していることをコンパイル時に検証します。
var _ usecase.CatalogSource = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// People は /people/?page=N の名前一覧と次ページの有無を返します。
func (s *Client) People(ctx context.Context, page int) ([]string, bool, error) {
	return s.fetchPage(ctx, "people", page)
}

// Planets は /planets/?page=N の名前一覧と次ページの有無を返します。
func (s *Client) Planets(ctx context.Context, page int) ([]string, bool, error) {
	return s.fetchPage(ctx, "planets", page)
}

func (s *Client) fetchPage(ctx context.Context, resource string, page int) ([]string, bool, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	u := fmt.Sprintf("%s/%s/?%s", s.cfg.BaseURL, resource, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 最終ページの次を要求した場合は404が返る
	if res.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if res.StatusCode >= 400 {
		return nil, false, fmt.Errorf("swapi %s page %d: http %d", resource, page, res.StatusCode)
	}

	var body dto.PageResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("swapi %s page %d: decode: %w", resource, page, err)
	}

	names := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		names = append(names, r.Name)
	}
	return names, body.Next != nil && *body.Next != "", nil
}
