package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"favorites_backend/internal/platform/db/schema"
)

// TestFileCommand はシードファイルの内容がDBに登録され、再実行しても重複しないことを検証します。
func TestFileCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "seed.db")
	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
users:
  - email: luke@example.com
    password: secret
people: [Luke Skywalker]
planets: [Tatooine, Hoth]
`), 0o600))
	t.Setenv("LOG_LEVEL", "error")

	for i := 0; i < 2; i++ {
		cmd := newRootCommand()
		cmd.SetArgs([]string{"file", seedPath, "--database-url", "sqlite://" + dbPath})
		require.NoError(t, cmd.Execute())
	}

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var users []schema.User
	require.NoError(t, gdb.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "luke@example.com", users[0].Email)
	assert.NotEqual(t, "secret", users[0].Password)

	var people, planets int64
	require.NoError(t, gdb.Model(&schema.Person{}).Count(&people).Error)
	require.NoError(t, gdb.Model(&schema.Planet{}).Count(&planets).Error)
	assert.Equal(t, int64(1), people)
	assert.Equal(t, int64(2), planets)
}

func TestFileCommand_RequiresPath(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"file"})
	cmd.SetErr(io.Discard)
	cmd.SetOut(io.Discard)

	assert.Error(t, cmd.Execute())
}
