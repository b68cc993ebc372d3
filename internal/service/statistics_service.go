package service

import (
	"context"
	"fmt"

	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/repository"
)

// StatisticsService 统计服务接口
type StatisticsService interface {
	GetStatusStatistics(ctx context.Context) (*StatusStatistics, error)
}

// StatusStatistics 按状态统计
// @Description 备案申请按状态统计结果
type StatusStatistics struct {
	Total        int64   `json:"total" example:"10"`
	Pending      int64   `json:"pending" example:"4"`
	Approved     int64   `json:"approved" example:"5"`
	Rejected     int64   `json:"rejected" example:"1"`
	ApprovalRate float64 `json:"approval_rate" example:"83.33"` // 已审核申请中通过的百分比
}

// statisticsService 统计服务实现
type statisticsService struct {
	repo repository.ApplicationRepository
}

// NewStatisticsService 创建统计服务
func NewStatisticsService(repo repository.ApplicationRepository) StatisticsService {
	return &statisticsService{repo: repo}
}

// GetStatusStatistics 按状态统计申请
func (s *statisticsService) GetStatusStatistics(ctx context.Context) (*StatusStatistics, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status statistics: %w", err)
	}

	stats := &StatusStatistics{
		Pending:  counts[model.StatusPending],
		Approved: counts[model.StatusApproved],
		Rejected: counts[model.StatusRejected],
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected

	reviewed := stats.Approved + stats.Rejected
	if reviewed > 0 {
		stats.ApprovalRate = float64(stats.Approved) / float64(reviewed) * 100
	}

	return stats, nil
}
