// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"favorites_backend/internal/feature/users/domain/entity"
	"favorites_backend/internal/feature/users/usecase"
	"favorites_backend/internal/platform/db"
	"favorites_backend/internal/platform/db/schema"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// List はID順に全ユーザーを返します。
func (r *userGorm) List(ctx context.Context) ([]entity.User, error) {
	var rows []schema.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, toUser(m))
	}
	return out, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var m schema.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	u := toUser(m)
	return &u, nil
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	active := u.IsActive
	m := schema.User{Email: u.Email, Password: u.Password, IsActive: &active}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		// ドライバーごとの一意制約違反コードは db.IsUniqueViolation で判定
		if db.IsUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	u.ID = m.ID
	return nil
}

func toUser(m schema.User) entity.User {
	u := entity.User{ID: m.ID, Email: m.Email, Password: m.Password, IsActive: true}
	if m.IsActive != nil {
		u.IsActive = *m.IsActive
	}
	return u
}
