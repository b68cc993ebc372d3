package container

import (
	"fmt"
	"time"

	"github.com/mautops/filing-gin/internal/config"
	"github.com/mautops/filing-gin/internal/database"
	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/mautops/filing-gin/internal/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理数据库、仓储、服务和事件推送 Hub
type Container struct {
	db            *gorm.DB
	repo          repository.ApplicationRepository
	hub           *websocket.Hub
	appService    service.ApplicationService
	exportService service.ExportService
	statsService  service.StatisticsService
	backupService *service.BackupService
}

// NewContainer 创建依赖注入容器
// 连接数据库(重试 3 次,指数退避)并执行迁移
func NewContainer(cfg *config.Config, logger logrus.FieldLogger) (*Container, error) {
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return NewContainerWithDB(db, cfg, logger), nil
}

// NewContainerWithDB 基于已有数据库连接创建容器,数据库需已完成迁移
func NewContainerWithDB(db *gorm.DB, cfg *config.Config, logger logrus.FieldLogger) *Container {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	repo := repository.NewApplicationRepository(db)
	hub := websocket.NewHub(logger)
	appService := service.NewApplicationService(repo,
		service.WithPublisher(hub),
		service.WithLogger(logger),
		service.WithDefaultApproveComment(cfg.Review.DefaultApproveComment),
	)

	return &Container{
		db:            db,
		repo:          repo,
		hub:           hub,
		appService:    appService,
		exportService: service.NewExportService(appService),
		statsService:  service.NewStatisticsService(repo),
		backupService: service.NewBackupService(db, cfg.Backup.Dir),
	}
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Repository 获取申请仓储
func (c *Container) Repository() repository.ApplicationRepository {
	return c.repo
}

// Hub 获取事件推送 Hub
func (c *Container) Hub() *websocket.Hub {
	return c.hub
}

// ApplicationService 获取申请服务
func (c *Container) ApplicationService() service.ApplicationService {
	return c.appService
}

// ExportService 获取导出服务
func (c *Container) ExportService() service.ExportService {
	return c.exportService
}

// StatisticsService 获取统计服务
func (c *Container) StatisticsService() service.StatisticsService {
	return c.statsService
}

// BackupService 获取备份服务
func (c *Container) BackupService() *service.BackupService {
	return c.backupService
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.db == nil {
		return nil
	}
	return database.Close(c.db)
}
