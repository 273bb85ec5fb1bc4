// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"favorites_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// List はID順に全ユーザーを返します。
	List(ctx context.Context) ([]entity.User, error)

	// Create は新しいユーザーを永続化し、採番されたIDを user に設定します。
	// メールアドレスが重複する場合は ErrEmailAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error
}

// UserUsecase はユーザーの参照と登録を提供します。
type UserUsecase struct {
	users UserRepository
	cost  int
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users, cost: bcrypt.DefaultCost}
}

// ListUsers は全ユーザーを返します。
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// Register はパスワードをbcryptでハッシュ化してユーザーを登録します。
// HTTP APIには登録エンドポイントがなく、シードコマンドからのみ使用されます。
func (u *UserUsecase) Register(ctx context.Context, email, password string, active bool) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed), IsActive: active}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
