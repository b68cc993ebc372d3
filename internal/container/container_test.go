package container_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mautops/filing-gin/internal/config"
	"github.com/mautops/filing-gin/internal/container"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewContainer 测试容器初始化和服务装配
func TestNewContainer(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(dir, "filing.db")
	cfg.Backup.Dir = filepath.Join(dir, "backups")
	cfg.Review.DefaultApproveComment = "同意"

	logger, _ := test.NewNullLogger()
	ctr, err := container.NewContainer(cfg, logger)
	require.NoError(t, err)
	defer ctr.Close()

	assert.NotNil(t, ctr.DB())
	assert.NotNil(t, ctr.Hub())
	assert.NotNil(t, ctr.ExportService())
	assert.NotNil(t, ctr.StatisticsService())
	assert.Equal(t, cfg.Backup.Dir, ctr.BackupService().BackupDir())

	ctx := context.Background()
	app, err := ctr.ApplicationService().Submit(ctx, &service.SubmitRequest{
		BldName:       "Tower A",
		BldAddress:    "1 Main St",
		HouseNo:       "101",
		HouseArea:     decimal.RequireFromString("60"),
		PresalePermit: "PS-1",
		SellerName:    "Acme Dev",
		SellerCode:    "9111",
		SellerContact: "010",
		BuyerName:     "Li Si",
		BuyerIDNo:     "110101",
		BuyerContact:  "138",
	})
	require.NoError(t, err)

	// 默认意见来自配置
	require.NoError(t, ctr.ApplicationService().Approve(ctx, app.ID, ""))
	stored, err := ctr.Repository().FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "同意", stored.AuditComment)
}

// TestNewContainer_InvalidDriver 测试数据库配置错误
func TestNewContainer_InvalidDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "mysql"

	_, err := container.NewContainer(cfg, nil)
	assert.Error(t, err)
}
