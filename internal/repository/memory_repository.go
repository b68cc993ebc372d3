package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mautops/filing-gin/internal/model"
)

// MemoryApplicationRepository 内存实现,用于测试和本地演示
type MemoryApplicationRepository struct {
	mu   sync.RWMutex
	apps map[string]*model.ApplicationModel

	// FailWith 非空时所有操作返回该错误包装后的 StorageError
	FailWith error
}

// NewMemoryApplicationRepository 创建内存仓储
func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{
		apps: make(map[string]*model.ApplicationModel),
	}
}

// Create 新增申请记录
func (r *MemoryApplicationRepository) Create(_ context.Context, app *model.ApplicationModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return storageErr("create", r.FailWith)
	}
	if err := app.Validate(); err != nil {
		return storageErr("create", err)
	}
	if _, ok := r.apps[app.ID]; ok {
		return storageErr("create", fmt.Errorf("duplicate id %s", app.ID))
	}
	for _, existing := range r.apps {
		if existing.BusinessNo == app.BusinessNo {
			return storageErr("create", fmt.Errorf("duplicate business number %s", app.BusinessNo))
		}
	}

	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

// UpdateAudit 只覆盖审核相关字段
func (r *MemoryApplicationRepository) UpdateAudit(_ context.Context, id string, status model.Status, comment string, auditTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return storageErr("update", r.FailWith)
	}
	app, ok := r.apps[id]
	if !ok {
		return ErrNotFound
	}
	app.Status = status
	app.AuditComment = comment
	app.AuditTime = &auditTime
	return nil
}

// FindByID 根据 ID 查找申请
func (r *MemoryApplicationRepository) FindByID(_ context.Context, id string) (*model.ApplicationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FailWith != nil {
		return nil, storageErr("find", r.FailWith)
	}
	app, ok := r.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *app
	return &found, nil
}

// List 按申请时间倒序列出申请
func (r *MemoryApplicationRepository) List(_ context.Context, filter *ApplicationFilter) ([]*model.ApplicationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FailWith != nil {
		return nil, storageErr("list", r.FailWith)
	}

	apps := make([]*model.ApplicationModel, 0, len(r.apps))
	for _, app := range r.apps {
		if filter != nil && filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		found := *app
		apps = append(apps, &found)
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].ApplyTime.After(apps[j].ApplyTime)
	})
	return apps, nil
}

// ExistsBusinessNo 业务编号查重
func (r *MemoryApplicationRepository) ExistsBusinessNo(_ context.Context, businessNo string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FailWith != nil {
		return false, storageErr("count", r.FailWith)
	}
	for _, app := range r.apps {
		if app.BusinessNo == businessNo {
			return true, nil
		}
	}
	return false, nil
}

// CountByStatus 按状态统计申请数
func (r *MemoryApplicationRepository) CountByStatus(_ context.Context) (map[model.Status]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FailWith != nil {
		return nil, storageErr("count", r.FailWith)
	}
	counts := make(map[model.Status]int64)
	for _, app := range r.apps {
		counts[app.Status]++
	}
	return counts, nil
}
