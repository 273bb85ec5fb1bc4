package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"favorites_backend/internal/feature/catalog/domain/entity"
	"favorites_backend/internal/feature/catalog/usecase"
	"favorites_backend/internal/platform/db/schema"
)

// planetGorm はPlanetRepositoryインターフェースのGORM実装です。
type planetGorm struct {
	db *gorm.DB
}

var (
	_ usecase.PlanetRepository = (*planetGorm)(nil)
	_ usecase.PlanetStore      = (*planetGorm)(nil)
)

// NewPlanetRepository は指定されたDB接続でplanetGormの新しいインスタンスを生成します。
func NewPlanetRepository(db *gorm.DB) *planetGorm {
	return &planetGorm{db: db}
}

// List はID順にすべての惑星を返します。
func (r *planetGorm) List(ctx context.Context) ([]entity.Planet, error) {
	var rows []schema.Planet
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Planet, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Planet{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// FindByID はIDで惑星を取得します。
// 存在しない場合、usecase.ErrPlanetNotFoundを返します。
func (r *planetGorm) FindByID(ctx context.Context, id uint) (*entity.Planet, error) {
	var m schema.Planet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlanetNotFound
		}
		return nil, err
	}
	return &entity.Planet{ID: m.ID, Name: m.Name}, nil
}

// FirstOrCreateByName は同名の惑星があればそれを返し、なければ作成します。
func (r *planetGorm) FirstOrCreateByName(ctx context.Context, name string) (*entity.Planet, bool, error) {
	db := r.db.WithContext(ctx)

	var m schema.Planet
	err := db.Where("name = ?", name).First(&m).Error
	switch {
	case err == nil:
		return &entity.Planet{ID: m.ID, Name: m.Name}, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	m = schema.Planet{Name: name}
	if err := db.Create(&m).Error; err != nil {
		return nil, false, err
	}
	return &entity.Planet{ID: m.ID, Name: m.Name}, true, nil
}
