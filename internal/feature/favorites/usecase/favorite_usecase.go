// Package usecase はfavoritesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"favorites_backend/internal/feature/favorites/domain/entity"
)

// FavoriteRepository はお気に入りの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FavoriteRepository interface {
	// ListByUser はユーザーのお気に入りをID順に返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error)

	// Create はお気に入りを永続化し、採番されたIDを fav に設定します。
	Create(ctx context.Context, fav *entity.Favorite) error

	// FindFirst は条件に一致する最小IDのお気に入りを返します。
	// 一致しない場合は ErrFavoriteNotFound を返します。
	FindFirst(ctx context.Context, filter entity.Filter) (*entity.Favorite, error)

	// Delete はIDでお気に入りを削除します。
	Delete(ctx context.Context, fav *entity.Favorite) error
}

// FavoriteUsecase はお気に入りの一覧・追加・削除を提供します。
// 参照先の人物・惑星・ユーザーの存在は確認しません。
type FavoriteUsecase struct {
	favorites FavoriteRepository
}

// NewFavoriteUsecase はFavoriteUsecaseの新しいインスタンスを生成します。
func NewFavoriteUsecase(favorites FavoriteRepository) *FavoriteUsecase {
	return &FavoriteUsecase{favorites: favorites}
}

// ListForUser はユーザーの全お気に入りを返します。
func (u *FavoriteUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	return u.favorites.ListByUser(ctx, userID)
}

// AddPerson は人物のお気に入りを新規作成します。重複は許可されます。
func (u *FavoriteUsecase) AddPerson(ctx context.Context, userID, personID uint) (*entity.Favorite, error) {
	fav := &entity.Favorite{UserID: &userID, PersonID: &personID}
	if err := u.favorites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// AddPlanet は惑星のお気に入りを新規作成します。重複は許可されます。
func (u *FavoriteUsecase) AddPlanet(ctx context.Context, userID, planetID uint) (*entity.Favorite, error) {
	fav := &entity.Favorite{UserID: &userID, PlanetID: &planetID}
	if err := u.favorites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// RemovePerson は(user_id, person_id)に一致する最初のお気に入りを1件だけ削除します。
func (u *FavoriteUsecase) RemovePerson(ctx context.Context, userID, personID uint) error {
	return u.removeFirst(ctx, entity.Filter{UserID: &userID, PersonID: &personID})
}

// RemovePlanet は(user_id, planet_id)に一致する最初のお気に入りを1件だけ削除します。
func (u *FavoriteUsecase) RemovePlanet(ctx context.Context, userID, planetID uint) error {
	return u.removeFirst(ctx, entity.Filter{UserID: &userID, PlanetID: &planetID})
}

func (u *FavoriteUsecase) removeFirst(ctx context.Context, filter entity.Filter) error {
	fav, err := u.favorites.FindFirst(ctx, filter)
	if err != nil {
		return err
	}
	return u.favorites.Delete(ctx, fav)
}
