package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"favorites_backend/internal/feature/favorites/domain/entity"
	"favorites_backend/internal/feature/favorites/usecase"
)

// mockFavoriteRepository はFavoriteRepositoryインターフェースのモック実装です。
type mockFavoriteRepository struct {
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.Favorite, error)
	CreateFunc     func(ctx context.Context, fav *entity.Favorite) error
	FindFirstFunc  func(ctx context.Context, filter entity.Filter) (*entity.Favorite, error)
	DeleteFunc     func(ctx context.Context, fav *entity.Favorite) error
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockFavoriteRepository) Create(ctx context.Context, fav *entity.Favorite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fav)
	}
	return nil
}

func (m *mockFavoriteRepository) FindFirst(ctx context.Context, filter entity.Filter) (*entity.Favorite, error) {
	if m.FindFirstFunc != nil {
		return m.FindFirstFunc(ctx, filter)
	}
	return nil, usecase.ErrFavoriteNotFound
}

func (m *mockFavoriteRepository) Delete(ctx context.Context, fav *entity.Favorite) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, fav)
	}
	return nil
}

func ptr(v uint) *uint { return &v }

func TestFavoriteUsecase_ListForUser(t *testing.T) {
	t.Parallel()

	var gotUser uint
	repo := &mockFavoriteRepository{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.Favorite, error) {
			gotUser = userID
			return []entity.Favorite{{ID: 1, UserID: ptr(3), PersonID: ptr(1)}}, nil
		},
	}

	favs, err := usecase.NewFavoriteUsecase(repo).ListForUser(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), gotUser)
	assert.Len(t, favs, 1)
}

// TestFavoriteUsecase_Add は人物・惑星の追加で正しい外部キーが設定されることを検証します。
func TestFavoriteUsecase_Add(t *testing.T) {
	t.Parallel()

	var created []entity.Favorite
	repo := &mockFavoriteRepository{
		CreateFunc: func(ctx context.Context, fav *entity.Favorite) error {
			fav.ID = uint(len(created) + 1)
			created = append(created, *fav)
			return nil
		},
	}
	uc := usecase.NewFavoriteUsecase(repo)

	person, err := uc.AddPerson(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.Favorite{ID: 1, UserID: ptr(1), PersonID: ptr(5)}, *person)

	planet, err := uc.AddPlanet(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.Favorite{ID: 2, UserID: ptr(1), PlanetID: ptr(2)}, *planet)

	dup, err := uc.AddPlanet(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(3), dup.ID, "duplicates are stored as new rows")
}

func TestFavoriteUsecase_Add_Error(t *testing.T) {
	t.Parallel()

	repo := &mockFavoriteRepository{
		CreateFunc: func(ctx context.Context, fav *entity.Favorite) error { return errors.New("constraint failed") },
	}

	fav, err := usecase.NewFavoriteUsecase(repo).AddPerson(context.Background(), 1, 1)

	assert.EqualError(t, err, "constraint failed")
	assert.Nil(t, fav)
}

// TestFavoriteUsecase_Remove は削除時の検索条件と未検出時の挙動を検証します。
func TestFavoriteUsecase_Remove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remove     func(uc *usecase.FavoriteUsecase) error
		found      bool
		wantFilter entity.Filter
		wantErr    error
	}{
		{
			name:       "person found",
			remove:     func(uc *usecase.FavoriteUsecase) error { return uc.RemovePerson(context.Background(), 1, 4) },
			found:      true,
			wantFilter: entity.Filter{UserID: ptr(1), PersonID: ptr(4)},
		},
		{
			name:       "planet found",
			remove:     func(uc *usecase.FavoriteUsecase) error { return uc.RemovePlanet(context.Background(), 2, 9) },
			found:      true,
			wantFilter: entity.Filter{UserID: ptr(2), PlanetID: ptr(9)},
		},
		{
			name:       "planet not found",
			remove:     func(uc *usecase.FavoriteUsecase) error { return uc.RemovePlanet(context.Background(), 2, 9) },
			wantFilter: entity.Filter{UserID: ptr(2), PlanetID: ptr(9)},
			wantErr:    usecase.ErrFavoriteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotFilter entity.Filter
			var deleted []uint
			repo := &mockFavoriteRepository{
				FindFirstFunc: func(ctx context.Context, filter entity.Filter) (*entity.Favorite, error) {
					gotFilter = filter
					if !tt.found {
						return nil, usecase.ErrFavoriteNotFound
					}
					return &entity.Favorite{ID: 11}, nil
				},
				DeleteFunc: func(ctx context.Context, fav *entity.Favorite) error {
					deleted = append(deleted, fav.ID)
					return nil
				},
			}

			err := tt.remove(usecase.NewFavoriteUsecase(repo))

			assert.Equal(t, tt.wantFilter, gotFilter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, deleted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uint{11}, deleted)
		})
	}
}
