package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatisticsService_StatusStatistics 测试按状态统计
func TestStatisticsService_StatusStatistics(t *testing.T) {
	f := newFixture(t)
	stats := service.NewStatisticsService(f.repo)
	ctx := context.Background()

	empty, err := stats.GetStatusStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Total)
	assert.Equal(t, float64(0), empty.ApprovalRate)

	var ids []string
	for i := 0; i < 5; i++ {
		app, err := f.svc.Submit(ctx, validRequest())
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}
	require.NoError(t, f.svc.Approve(ctx, ids[0], ""))
	require.NoError(t, f.svc.Approve(ctx, ids[1], ""))
	require.NoError(t, f.svc.Approve(ctx, ids[2], ""))
	require.NoError(t, f.svc.Reject(ctx, ids[3], "材料不全"))

	result, err := stats.GetStatusStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, int64(1), result.Pending)
	assert.Equal(t, int64(3), result.Approved)
	assert.Equal(t, int64(1), result.Rejected)
	assert.InDelta(t, 75.0, result.ApprovalRate, 0.001)
}

// TestStatisticsService_StorageFailure 测试统计时存储故障
func TestStatisticsService_StorageFailure(t *testing.T) {
	repo := repository.NewMemoryApplicationRepository()
	repo.FailWith = errors.New("disk full")

	_, err := service.NewStatisticsService(repo).GetStatusStatistics(context.Background())
	var serr *repository.StorageError
	assert.True(t, errors.As(err, &serr))
}
