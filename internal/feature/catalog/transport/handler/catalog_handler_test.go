package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"favorites_backend/internal/feature/catalog/domain/entity"
	"favorites_backend/internal/feature/catalog/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockCatalogUsecase はCatalogUsecaseインターフェースのモック実装です。
type mockCatalogUsecase struct {
	ListPeopleFunc  func(ctx context.Context) ([]entity.Person, error)
	GetPersonFunc   func(ctx context.Context, id uint) (*entity.Person, error)
	ListPlanetsFunc func(ctx context.Context) ([]entity.Planet, error)
	GetPlanetFunc   func(ctx context.Context, id uint) (*entity.Planet, error)
}

func (m *mockCatalogUsecase) ListPeople(ctx context.Context) ([]entity.Person, error) {
	if m.ListPeopleFunc != nil {
		return m.ListPeopleFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) GetPerson(ctx context.Context, id uint) (*entity.Person, error) {
	if m.GetPersonFunc != nil {
		return m.GetPersonFunc(ctx, id)
	}
	return nil, usecase.ErrPersonNotFound
}

func (m *mockCatalogUsecase) ListPlanets(ctx context.Context) ([]entity.Planet, error) {
	if m.ListPlanetsFunc != nil {
		return m.ListPlanetsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) GetPlanet(ctx context.Context, id uint) (*entity.Planet, error) {
	if m.GetPlanetFunc != nil {
		return m.GetPlanetFunc(ctx, id)
	}
	return nil, usecase.ErrPlanetNotFound
}

// newRouter はハンドラーを登録したテスト用ルーターを作成します。
// c.Error で登録されたエラーは400 {"message": ...} に変換します。
func newRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		if err := c.Errors.Last(); err != nil && !c.Writer.Written() {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		}
	})
	r.GET("/people", h.ListPeople)
	r.GET("/people/:id", h.GetPerson)
	r.GET("/planets", h.ListPlanets)
	r.GET("/planets/:id", h.GetPlanet)
	return r
}

func serve(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestNewCatalogHandler(t *testing.T) {
	t.Parallel()

	h := NewCatalogHandler(&mockCatalogUsecase{})

	assert.NotNil(t, h)
	assert.NotNil(t, h.uc)
}

// TestCatalogHandler_ListPeople はListPeopleハンドラーの各種シナリオを検証します。
func TestCatalogHandler_ListPeople(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		list           func(ctx context.Context) ([]entity.Person, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns people",
			list: func(ctx context.Context) ([]entity.Person, error) {
				return []entity.Person{{ID: 1, Name: "Luke Skywalker"}, {ID: 2, Name: "Leia Organa"}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"name":"Luke Skywalker"},{"id":2,"name":"Leia Organa"}]`,
		},
		{
			name:           "success: empty table",
			list:           func(ctx context.Context) ([]entity.Person, error) { return nil, nil },
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "failure: storage error is hidden behind a 500",
			list:           func(ctx context.Context) ([]entity.Person, error) { return nil, errors.New("connection refused") },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRouter(NewCatalogHandler(&mockCatalogUsecase{ListPeopleFunc: tt.list}))

			w := serve(r, "/people")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestCatalogHandler_GetPerson はGetPersonハンドラーの各種シナリオを検証します。
func TestCatalogHandler_GetPerson(t *testing.T) {
	t.Parallel()

	uc := &mockCatalogUsecase{
		GetPersonFunc: func(ctx context.Context, id uint) (*entity.Person, error) {
			switch id {
			case 1:
				return &entity.Person{ID: 1, Name: "Luke Skywalker"}, nil
			case 500:
				return nil, errors.New("db down")
			}
			return nil, usecase.ErrPersonNotFound
		},
	}
	r := newRouter(NewCatalogHandler(uc))

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedBody   string
	}{
		{"found", "/people/1", http.StatusOK, `{"id":1,"name":"Luke Skywalker"}`},
		{"not found", "/people/99999", http.StatusNotFound, `{"message":"Person not found"}`},
		{"storage error", "/people/500", http.StatusBadRequest, `{"message":"db down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(r, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}

	t.Run("non-integer id", func(t *testing.T) {
		t.Parallel()

		w := serve(r, "/people/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "404 Not Found")
	})
}

// TestCatalogHandler_Planets は惑星の一覧と単体取得のハンドラーを検証します。
func TestCatalogHandler_Planets(t *testing.T) {
	t.Parallel()

	uc := &mockCatalogUsecase{
		ListPlanetsFunc: func(ctx context.Context) ([]entity.Planet, error) {
			return []entity.Planet{{ID: 1, Name: "Tatooine"}}, nil
		},
		GetPlanetFunc: func(ctx context.Context, id uint) (*entity.Planet, error) {
			if id == 1 {
				return &entity.Planet{ID: 1, Name: "Tatooine"}, nil
			}
			return nil, usecase.ErrPlanetNotFound
		},
	}
	r := newRouter(NewCatalogHandler(uc))

	w := serve(r, "/planets")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Tatooine"}]`, w.Body.String())

	w = serve(r, "/planets/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Tatooine"}`, w.Body.String())

	w = serve(r, "/planets/2")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Planet not found"}`, w.Body.String())
}

// TestCatalogHandler_ListPlanets_Error は一覧取得エラーがエラーミドルウェアに渡されることを検証します。
func TestCatalogHandler_ListPlanets_Error(t *testing.T) {
	t.Parallel()

	uc := &mockCatalogUsecase{
		ListPlanetsFunc: func(ctx context.Context) ([]entity.Planet, error) {
			return nil, errors.New("no such table: planet")
		},
	}

	w := serve(newRouter(NewCatalogHandler(uc)), "/planets")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"no such table: planet"}`, w.Body.String())
}
