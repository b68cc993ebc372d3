package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/mautops/filing-gin/internal/database"
	"github.com/mautops/filing-gin/internal/event"
	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存 SQLite 数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// stepClock 每次调用前进一分钟
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]event.Type, 0, len(p.events))
	for _, evt := range p.events {
		types = append(types, evt.Type)
	}
	return types
}

type fixture struct {
	svc       service.ApplicationService
	repo      repository.ApplicationRepository
	clock     *stepClock
	publisher *recordingPublisher
}

// newFixture 基于 SQLite 仓储创建服务
func newFixture(t *testing.T) *fixture {
	return newFixtureWithRepo(repository.NewApplicationRepository(setupTestDB(t)))
}

func newFixtureWithRepo(repo repository.ApplicationRepository) *fixture {
	clock := newStepClock()
	publisher := &recordingPublisher{}
	svc := service.NewApplicationService(repo,
		service.WithClock(clock.Now),
		service.WithPublisher(publisher),
	)
	return &fixture{svc: svc, repo: repo, clock: clock, publisher: publisher}
}

// validRequest 一份完整的申请表单
func validRequest() *service.SubmitRequest {
	return &service.SubmitRequest{
		BldName:       "Tower A",
		BldAddress:    "1 Main St",
		TotalFloors:   intPtr(18),
		TotalUnits:    intPtr(2),
		HouseNo:       "101",
		HouseArea:     decimal.RequireFromString("88.5"),
		PresalePermit: "PS-2024-001",
		SellerName:    "Acme Dev",
		SellerCode:    "91110000XXXXXXXX",
		SellerContact: "010-1234",
		BuyerName:     "Zhang San",
		BuyerIDNo:     "110101199001010011",
		BuyerContact:  "13800000000",
	}
}

func intPtr(v int) *int {
	return &v
}
