package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mautops/filing-gin/internal/config"
	"github.com/mautops/filing-gin/internal/database"
	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestBackupService_CreateBackup 测试 SQLite 快照
func TestBackupService_CreateBackup(t *testing.T) {
	dir := t.TempDir()
	db, err := database.Connect(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(dir, "filing.db"),
	})
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.Migrate(db))

	f := newFixtureWithRepo(repository.NewApplicationRepository(db))
	ctx := context.Background()
	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	backupDir := filepath.Join(dir, "backups")
	backups := service.NewBackupService(db, backupDir)
	assert.Equal(t, backupDir, backups.BackupDir())

	list, err := backups.ListBackups(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	path, err := backups.CreateBackup(ctx)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	list, err = backups.ListBackups(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, filepath.Base(path), list[0].Filename)

	// 快照可以独立打开并包含已提交的申请
	snapshot, err := database.Connect(config.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	defer database.Close(snapshot)
	found, err := repository.NewApplicationRepository(snapshot).FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.BusinessNo, found.BusinessNo)
}

// TestBackupService_UnsupportedDriver 测试非 SQLite 数据库
func TestBackupService_UnsupportedDriver(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	_, err = service.NewBackupService(db, t.TempDir()).CreateBackup(context.Background())
	assert.Error(t, err)
}
