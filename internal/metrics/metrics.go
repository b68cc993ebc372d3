package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	// API 请求计数器
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// API 请求响应时间
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 备案申请提交数
	applicationsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "filing_applications_submitted_total",
			Help: "Total number of filing applications submitted",
		},
	)

	// 提交校验失败数
	submissionsInvalidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "filing_submissions_invalid_total",
			Help: "Total number of submissions rejected by validation",
		},
	)

	// 审核操作数
	reviewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filing_reviews_total",
			Help: "Total number of review operations",
		},
		[]string{"action"}, // approve, reject
	)

	// 数据库连接数
	databaseConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	databaseConnectionsMax = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_max",
			Help: "Maximum number of database connections",
		},
	)

	// 申请状态分布
	applicationsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filing_applications_by_status",
			Help: "Number of filing applications by status",
		},
		[]string{"status"},
	)
)

var (
	once sync.Once
)

func init() {
	// 注册指标
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(applicationsSubmittedTotal)
	prometheus.MustRegister(submissionsInvalidTotal)
	prometheus.MustRegister(reviewsTotal)
	prometheus.MustRegister(databaseConnectionsActive)
	prometheus.MustRegister(databaseConnectionsIdle)
	prometheus.MustRegister(databaseConnectionsMax)
	prometheus.MustRegister(applicationsByStatus)

	// 注册 Go 运行时指标（只注册一次）
	once.Do(func() {
		// 尝试注册 Go 运行时指标，如果已注册则忽略错误
		_ = prometheus.Register(prometheus.NewGoCollector())
		_ = prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	})
}

// Handler 返回 Prometheus 指标处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAPIRequest 记录 API 请求
func RecordAPIRequest(method, path string, status int, duration float64) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("%d", status)
	}
	apiRequestsTotal.WithLabelValues(method, path, statusText).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordApplicationSubmitted 记录申请提交
func RecordApplicationSubmitted() {
	applicationsSubmittedTotal.Inc()
}

// RecordSubmissionInvalid 记录提交校验失败
func RecordSubmissionInvalid() {
	submissionsInvalidTotal.Inc()
}

// RecordReview 记录审核操作
func RecordReview(action string) {
	reviewsTotal.WithLabelValues(action).Inc()
}

// UpdateDatabaseConnections 更新数据库连接数指标
func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	databaseConnectionsActive.Set(float64(stats.OpenConnections - stats.Idle))
	databaseConnectionsIdle.Set(float64(stats.Idle))
	databaseConnectionsMax.Set(float64(stats.MaxOpenConnections))

	return nil
}

// UpdateApplicationsByStatus 更新申请状态分布指标
func UpdateApplicationsByStatus(status string, count float64) {
	applicationsByStatus.WithLabelValues(status).Set(count)
}
