package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// backupPrefix 备份文件名前缀
const backupPrefix = "backup_"

// BackupService 备份服务
// 仅支持 SQLite,PostgreSQL 请使用 pg_dump
type BackupService struct {
	db        *gorm.DB
	backupDir string
	now       func() time.Time
}

// BackupInfo 备份信息
type BackupInfo struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBackupService 创建备份服务
func NewBackupService(db *gorm.DB, backupDir string) *BackupService {
	return &BackupService{
		db:        db,
		backupDir: backupDir,
		now:       time.Now,
	}
}

// CreateBackup 创建数据库快照,返回备份文件路径
func (s *BackupService) CreateBackup(ctx context.Context) (string, error) {
	dialector := s.db.Dialector.Name()
	if dialector != "sqlite" && dialector != "sqlite3" {
		return "", fmt.Errorf("backup is not supported for %s, use the database's native dump tool", dialector)
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename := fmt.Sprintf("%s%s.db", backupPrefix, s.now().Format("20060102_150405"))
	backupPath := filepath.Join(s.backupDir, filename)
	if _, err := os.Stat(backupPath); err == nil {
		return "", fmt.Errorf("backup file already exists: %s", backupPath)
	}

	// VACUUM INTO 生成一致性快照,不阻塞读操作
	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", backupPath).Error; err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	return backupPath, nil
}

// ListBackups 列出所有备份,最新的在前
func (s *BackupService) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isBackupFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Filename:  entry.Name(),
			Path:      filepath.Join(s.backupDir, entry.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Filename > backups[j].Filename
	})
	return backups, nil
}

// BackupDir 获取备份目录
func (s *BackupService) BackupDir() string {
	return s.backupDir
}

// isBackupFile 检查是否是备份文件
func isBackupFile(filename string) bool {
	return strings.HasPrefix(filename, backupPrefix) && filepath.Ext(filename) == ".db"
}
