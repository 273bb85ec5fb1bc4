// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"favorites_backend/internal/feature/catalog/domain/entity"
	"favorites_backend/internal/feature/catalog/usecase"
	"favorites_backend/internal/platform/db/schema"
)

// personGorm はPersonRepositoryインターフェースのGORM実装です。
type personGorm struct {
	db *gorm.DB
}

var (
	_ usecase.PersonRepository = (*personGorm)(nil)
	_ usecase.PersonStore      = (*personGorm)(nil)
)

// NewPersonRepository は指定されたDB接続でpersonGormの新しいインスタンスを生成します。
func NewPersonRepository(db *gorm.DB) *personGorm {
	return &personGorm{db: db}
}

// List はID順にすべての人物を返します。
func (r *personGorm) List(ctx context.Context) ([]entity.Person, error) {
	var rows []schema.Person
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Person, 0, len(rows))
	for _, m := range rows {
		out = append(out, toPerson(m))
	}
	return out, nil
}

// FindByID はIDで人物を取得します。
// 存在しない場合、usecase.ErrPersonNotFoundを返します。
func (r *personGorm) FindByID(ctx context.Context, id uint) (*entity.Person, error) {
	var m schema.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPersonNotFound
		}
		return nil, err
	}
	p := toPerson(m)
	return &p, nil
}

// FirstOrCreateByName は同名の人物があればそれを返し、なければ作成します。
func (r *personGorm) FirstOrCreateByName(ctx context.Context, name string) (*entity.Person, bool, error) {
	db := r.db.WithContext(ctx)

	var m schema.Person
	err := db.Where("name = ?", name).First(&m).Error
	if err == nil {
		p := toPerson(m)
		return &p, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	m = schema.Person{Name: name}
	if err := db.Create(&m).Error; err != nil {
		return nil, false, err
	}
	p := toPerson(m)
	return &p, true, nil
}

func toPerson(m schema.Person) entity.Person {
	return entity.Person{ID: m.ID, Name: m.Name}
}
