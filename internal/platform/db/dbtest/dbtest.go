// Package dbtest provides an in-memory SQLite database with the full schema for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"favorites_backend/internal/platform/db"
)

// Open はテスト用のインメモリSQLiteデータベースを準備し、全テーブルを作成します。
// :memory: は接続ごとに別DBになるため、接続数を1に固定します。
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb), "failed to migrate tables")
	return gdb
}
