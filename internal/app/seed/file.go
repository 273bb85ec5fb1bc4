// Package seed loads initial data from JSON or YAML files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	catalogusecase "favorites_backend/internal/feature/catalog/usecase"
	"favorites_backend/internal/feature/users/domain/entity"
	usersusecase "favorites_backend/internal/feature/users/usecase"
)

// File is the content of a seed file. JSON files are accepted as well since JSON is valid YAML.
type File struct {
	Users   []User   `yaml:"users"`
	People  []string `yaml:"people"`
	Planets []string `yaml:"planets"`
}

// User is a user entry of a seed file. IsActive defaults to true.
type User struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsActive *bool  `yaml:"is_active"`
}

// LoadFile はシードファイルを読み込みます。
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Source は人物・惑星を1ページとして返す CatalogSource を返します。
func (f *File) Source() catalogusecase.CatalogSource {
	return fileSource{people: f.People, planets: f.Planets}
}

type fileSource struct {
	people  []string
	planets []string
}

func (s fileSource) People(ctx context.Context, page int) ([]string, bool, error) {
	return onePage(s.people, page), false, nil
}

func (s fileSource) Planets(ctx context.Context, page int) ([]string, bool, error) {
	return onePage(s.planets, page), false, nil
}

func onePage(names []string, page int) []string {
	if page != 1 {
		return nil
	}
	return names
}

// UserRegistrar registers users with hashed passwords.
type UserRegistrar interface {
	Register(ctx context.Context, email, password string, active bool) (*entity.User, error)
}

// UserStats counts the outcome of SeedUsers.
type UserStats struct {
	Created int
	Skipped int
	Failed  int
}

// SeedUsers はユーザーを登録します。既に存在するメールアドレスはスキップします。
// 入力不備のユーザーはログに出力して続行し、ctxのキャンセル時のみエラーを返します。
func SeedUsers(ctx context.Context, reg UserRegistrar, users []User) (UserStats, error) {
	var stats UserStats
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		active := true
		if u.IsActive != nil {
			active = *u.IsActive
		}

		_, err := reg.Register(ctx, u.Email, u.Password, active)
		switch {
		case err == nil:
			stats.Created++
		case errors.Is(err, usersusecase.ErrEmailAlreadyExists):
			slog.Info("user already exists, skipping", "email", u.Email)
			stats.Skipped++
		default:
			slog.Error("failed to seed user", "email", u.Email, "error", err)
			stats.Failed++
		}
	}
	return stats, nil
}
