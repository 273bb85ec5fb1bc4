package db

import (
	"favorites_backend/internal/platform/db/schema"

	"gorm.io/gorm"
)

// Migrate はuser, person, planet, favoriteテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(schema.Models()...)
}
