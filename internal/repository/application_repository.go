package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mautops/filing-gin/internal/model"
	"gorm.io/gorm"
)

// ApplicationRepository 备案申请仓储接口
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.ApplicationModel) error
	UpdateAudit(ctx context.Context, id string, status model.Status, comment string, auditTime time.Time) error
	FindByID(ctx context.Context, id string) (*model.ApplicationModel, error)
	List(ctx context.Context, filter *ApplicationFilter) ([]*model.ApplicationModel, error)
	ExistsBusinessNo(ctx context.Context, businessNo string) (bool, error)
	CountByStatus(ctx context.Context) (map[model.Status]int64, error)
}

// ApplicationFilter 申请查询过滤器
type ApplicationFilter struct {
	Status *model.Status
}

// applicationRepository 备案申请仓储实现
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository 创建备案申请仓储
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create 新增申请记录,主键冲突同样视为存储错误
func (r *applicationRepository) Create(ctx context.Context, app *model.ApplicationModel) error {
	if err := app.Validate(); err != nil {
		return storageErr("create", err)
	}
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return storageErr("create", err)
	}
	return nil
}

// UpdateAudit 只覆盖审核相关字段
func (r *applicationRepository) UpdateAudit(ctx context.Context, id string, status model.Status, comment string, auditTime time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"audit_comment": comment,
			"audit_time":    auditTime,
		})
	if result.Error != nil {
		return storageErr("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID 根据 ID 查找申请
func (r *applicationRepository) FindByID(ctx context.Context, id string) (*model.ApplicationModel, error) {
	var app model.ApplicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("find", err)
	}
	return &app, nil
}

// List 按申请时间倒序列出申请,状态过滤使用绑定参数
func (r *applicationRepository) List(ctx context.Context, filter *ApplicationFilter) ([]*model.ApplicationModel, error) {
	query := r.db.WithContext(ctx).Model(&model.ApplicationModel{})
	if filter != nil && filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	apps := make([]*model.ApplicationModel, 0)
	if err := query.Order("apply_time DESC").Find(&apps).Error; err != nil {
		return nil, storageErr("list", err)
	}
	return apps, nil
}

// ExistsBusinessNo 业务编号查重
func (r *applicationRepository) ExistsBusinessNo(ctx context.Context, businessNo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("business_no = ?", businessNo).
		Count(&count).Error
	if err != nil {
		return false, storageErr("count", err)
	}
	return count > 0, nil
}

// CountByStatus 按状态统计申请数
func (r *applicationRepository) CountByStatus(ctx context.Context) (map[model.Status]int64, error) {
	var results []struct {
		Status string
		Count  int64
	}

	err := r.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, storageErr("count", err)
	}

	counts := make(map[model.Status]int64, len(results))
	for _, r := range results {
		counts[model.Status(r.Status)] = r.Count
	}
	return counts, nil
}
