package metrics

import (
	"context"
	"time"

	"github.com/mautops/filing-gin/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StatusCounter 提供按状态统计的申请数
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[model.Status]int64, error)
}

// Collector 指标收集器
type Collector struct {
	db       *gorm.DB
	counter  StatusCounter
	interval time.Duration
	logger   logrus.FieldLogger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewCollector 创建指标收集器
func NewCollector(db *gorm.DB, counter StatusCounter, interval time.Duration, logger logrus.FieldLogger) *Collector {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Collector{
		db:       db,
		counter:  counter,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start 启动指标收集器
func (c *Collector) Start() {
	go c.collect()
}

// Stop 停止指标收集器
func (c *Collector) Stop() {
	c.cancel()
	<-c.done
}

// collect 定期收集指标
func (c *Collector) collect() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(c.done)

	c.CollectOnce(c.ctx)
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.CollectOnce(c.ctx)
		}
	}
}

// CollectOnce 采集一次数据库连接和申请状态分布
func (c *Collector) CollectOnce(ctx context.Context) {
	if c.db != nil {
		if err := UpdateDatabaseConnections(c.db); err != nil {
			c.logger.WithError(err).Debug("failed to collect database connection metrics")
		}
	}

	if c.counter == nil {
		return
	}
	counts, err := c.counter.CountByStatus(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("failed to collect application status metrics")
		return
	}
	for _, status := range []model.Status{model.StatusPending, model.StatusApproved, model.StatusRejected} {
		UpdateApplicationsByStatus(string(status), float64(counts[status]))
	}
}
