package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mautops/filing-gin/internal/config"
	"github.com/mautops/filing-gin/internal/event"
	"github.com/mautops/filing-gin/internal/metrics"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/utils"
	"github.com/sirupsen/logrus"
)

// maxBusinessNoAttempts 业务编号冲突时的最大生成次数
const maxBusinessNoAttempts = 5

// ApplicationService 备案申请服务接口
type ApplicationService interface {
	Submit(ctx context.Context, req *SubmitRequest) (*model.ApplicationModel, error)
	Approve(ctx context.Context, id string, comment string) error
	Reject(ctx context.Context, id string, comment string) error
	List(ctx context.Context, filter *ListFilter) ([]*model.ApplicationModel, error)
	Get(ctx context.Context, id string) (*model.ApplicationModel, error)
}

// ListFilter 申请列表过滤器,Status 为空时返回全部
type ListFilter struct {
	Status *model.Status
}

// ReviewRequest 审核请求
// @Description 审核意见,驳回时必填
type ReviewRequest struct {
	Comment string `json:"comment" example:"材料齐全"` // 审核意见
}

// Option 服务可选配置
type Option func(*applicationService)

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(s *applicationService) {
		s.now = now
	}
}

// WithPublisher 设置事件发布者
func WithPublisher(p event.Publisher) Option {
	return func(s *applicationService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *applicationService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultApproveComment 设置审核通过的默认意见
func WithDefaultApproveComment(comment string) Option {
	return func(s *applicationService) {
		if !utils.IsBlank(comment) {
			s.defaultApproveComment = comment
		}
	}
}

type applicationService struct {
	repo                  repository.ApplicationRepository
	publisher             event.Publisher
	logger                logrus.FieldLogger
	now                   func() time.Time
	defaultApproveComment string
}

// NewApplicationService 创建备案申请服务
func NewApplicationService(repo repository.ApplicationRepository, opts ...Option) ApplicationService {
	s := &applicationService{
		repo:                  repo,
		publisher:             event.NopPublisher{},
		logger:                logrus.StandardLogger(),
		now:                   time.Now,
		defaultApproveComment: config.DefaultApproveComment,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit 提交备案申请
func (s *applicationService) Submit(ctx context.Context, req *SubmitRequest) (*model.ApplicationModel, error) {
	app, err := ValidateSubmission(req)
	if err != nil {
		metrics.RecordSubmissionInvalid()
		return nil, err
	}

	now := s.now()
	businessNo, err := s.nextBusinessNo(ctx, now)
	if err != nil {
		return nil, err
	}

	app.ID = utils.NewID()
	app.BusinessNo = businessNo
	app.ApplyTime = now
	app.Status = model.StatusPending
	app.AuditComment = ""
	app.AuditTime = nil

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	metrics.RecordApplicationSubmitted()
	s.logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"business_no":    app.BusinessNo,
	}).Info("application submitted")
	s.publisher.Publish(event.ForApplication(event.TypeSubmitted, app, now))

	return app, nil
}

// nextBusinessNo 生成未被占用的业务编号
func (s *applicationService) nextBusinessNo(ctx context.Context, now time.Time) (string, error) {
	for i := 0; i < maxBusinessNoAttempts; i++ {
		no := utils.NewBusinessNo(now)
		exists, err := s.repo.ExistsBusinessNo(ctx, no)
		if err != nil {
			return "", fmt.Errorf("failed to check business number: %w", err)
		}
		if !exists {
			return no, nil
		}
		s.logger.WithField("business_no", no).Warn("business number collision, regenerating")
	}
	return "", &repository.StorageError{
		Op:  "generate business number",
		Err: fmt.Errorf("no free business number after %d attempts", maxBusinessNoAttempts),
	}
}

// Approve 审核通过,意见为空时使用默认意见
func (s *applicationService) Approve(ctx context.Context, id string, comment string) error {
	if utils.IsBlank(comment) {
		comment = s.defaultApproveComment
	}
	comment = strings.TrimSpace(comment)
	return s.review(ctx, id, model.StatusApproved, comment)
}

// Reject 审核驳回,必须填写意见
func (s *applicationService) Reject(ctx context.Context, id string, comment string) error {
	if utils.IsBlank(comment) {
		return newValidationError("comment", "rejection requires a comment")
	}
	return s.review(ctx, id, model.StatusRejected, strings.TrimSpace(comment))
}

// review 执行 待审核 -> 通过/驳回 的状态流转
// 读取与更新之间没有锁,多个审核员同时操作同一申请时以最后一次写入为准
func (s *applicationService) review(ctx context.Context, id string, to model.Status, comment string) error {
	app, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if app.Status != model.StatusPending {
		return fmt.Errorf("%w: %s is %s", ErrConflict, app.BusinessNo, app.Status)
	}

	now := s.now()
	if err := s.repo.UpdateAudit(ctx, id, to, comment, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to update application: %w", err)
	}

	action := "approve"
	evtType := event.TypeApproved
	if to == model.StatusRejected {
		action = "reject"
		evtType = event.TypeRejected
	}
	metrics.RecordReview(action)

	app.Status = to
	app.AuditComment = comment
	app.AuditTime = &now

	s.logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"business_no":    app.BusinessNo,
		"status":         to,
	}).Info("application reviewed")
	s.publisher.Publish(event.ForApplication(evtType, app, now))

	return nil
}

// List 列出申请,按申请时间倒序
func (s *applicationService) List(ctx context.Context, filter *ListFilter) ([]*model.ApplicationModel, error) {
	repoFilter := &repository.ApplicationFilter{}
	if filter != nil {
		repoFilter.Status = filter.Status
	}
	apps, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Get 获取申请详情
func (s *applicationService) Get(ctx context.Context, id string) (*model.ApplicationModel, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}
