// Package adapters はfavoritesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"favorites_backend/internal/feature/favorites/domain/entity"
	"favorites_backend/internal/feature/favorites/usecase"
	"favorites_backend/internal/platform/db/schema"
)

// favoriteGorm はFavoriteRepositoryインターフェースのGORM実装です。
// 関連(User/Person/Planet)はプリロードせず、外部キーの値のみを扱います。
type favoriteGorm struct {
	db *gorm.DB
}

var _ usecase.FavoriteRepository = (*favoriteGorm)(nil)

// NewFavoriteRepository は指定されたDB接続でfavoriteGormの新しいインスタンスを生成します。
func NewFavoriteRepository(db *gorm.DB) *favoriteGorm {
	return &favoriteGorm{db: db}
}

// ListByUser はユーザーのお気に入りをID順に返します。
func (r *favoriteGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	var rows []schema.Favorite
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Favorite, 0, len(rows))
	for _, m := range rows {
		out = append(out, toFavorite(m))
	}
	return out, nil
}

// Create はお気に入りを追加し、採番されたIDを設定します。
func (r *favoriteGorm) Create(ctx context.Context, fav *entity.Favorite) error {
	m := schema.Favorite{UserID: fav.UserID, PersonID: fav.PersonID, PlanetID: fav.PlanetID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return err
	}
	fav.ID = m.ID
	return nil
}

// FindFirst は条件に一致する最小IDのお気に入りを返します。
// 存在しない場合、usecase.ErrFavoriteNotFoundを返します。
func (r *favoriteGorm) FindFirst(ctx context.Context, filter entity.Filter) (*entity.Favorite, error) {
	q := r.db.WithContext(ctx)
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.PersonID != nil {
		q = q.Where("person_id = ?", *filter.PersonID)
	}
	if filter.PlanetID != nil {
		q = q.Where("planet_id = ?", *filter.PlanetID)
	}

	var m schema.Favorite
	if err := q.Order("id ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFavoriteNotFound
		}
		return nil, err
	}
	fav := toFavorite(m)
	return &fav, nil
}

// Delete はIDでお気に入りを1件削除します。
func (r *favoriteGorm) Delete(ctx context.Context, fav *entity.Favorite) error {
	res := r.db.WithContext(ctx).Delete(&schema.Favorite{}, fav.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrFavoriteNotFound
	}
	return nil
}

func toFavorite(m schema.Favorite) entity.Favorite {
	return entity.Favorite{ID: m.ID, UserID: m.UserID, PersonID: m.PersonID, PlanetID: m.PlanetID}
}
