package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mautops/filing-gin/internal/event"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/mautops/filing-gin/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplicationService_Submit 测试提交申请
func TestApplicationService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.True(t, utils.IsBusinessNo(app.BusinessNo), app.BusinessNo)
	assert.True(t, strings.HasPrefix(app.BusinessNo, "20231027-"))
	assert.Equal(t, model.StatusPending, app.Status)
	assert.Empty(t, app.AuditComment)
	assert.Nil(t, app.AuditTime)

	// 读回与提交一致
	stored, err := f.svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.BusinessNo, stored.BusinessNo)
	assert.Equal(t, "Zhang San", stored.BuyerName)
	assert.Equal(t, "110101199001010011", stored.BuyerIDNo)
	assert.True(t, app.HouseArea.Equal(stored.HouseArea))
	assert.True(t, app.ApplyTime.Equal(stored.ApplyTime))

	assert.Equal(t, []event.Type{event.TypeSubmitted}, f.publisher.Types())
}

// TestApplicationService_SubmitInvalid 测试非法表单不入库
func TestApplicationService_SubmitInvalid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := validRequest()
	req.BuyerName = ""
	_, err := f.svc.Submit(ctx, req)

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("buyer_name"))

	apps, err := f.svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Empty(t, f.publisher.Types())
}

// TestApplicationService_UniqueBusinessNo 测试业务编号不重复
func TestApplicationService_UniqueBusinessNo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		app, err := f.svc.Submit(ctx, validRequest())
		require.NoError(t, err)
		assert.False(t, seen[app.BusinessNo])
		seen[app.BusinessNo] = true
	}
}

// TestApplicationService_ListOrder 测试列表按申请时间倒序
func TestApplicationService_ListOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var submitted []string
	for i := 0; i < 3; i++ {
		app, err := f.svc.Submit(ctx, validRequest())
		require.NoError(t, err)
		submitted = append(submitted, app.ID)
	}

	apps, err := f.svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, submitted[2], apps[0].ID)
	assert.Equal(t, submitted[1], apps[1].ID)
	assert.Equal(t, submitted[0], apps[2].ID)
	for i := 1; i < len(apps); i++ {
		assert.False(t, apps[i].ApplyTime.After(apps[i-1].ApplyTime))
	}
}

// TestApplicationService_ListRoundTrip 测试列表返回的记录与提交结果逐字段一致
func TestApplicationService_ListRoundTrip(t *testing.T) {
	f := newFixtureWithRepo(repository.NewApplicationRepository(setupTestDB(t)))
	ctx := context.Background()

	req := validRequest()
	req.SellerRep = "Wang Wu"
	req.HouseType = model.HouseTypeOffice
	req.RightsStatus = model.RightsConstructionMortgaged
	req.BuyerShareType = model.ShareByShares
	req.HouseArea = decimal.RequireFromString("123.45")

	want, err := f.svc.Submit(ctx, req)
	require.NoError(t, err)

	apps, err := f.svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	got := apps[0]

	// 时间与小数按值比较,其余字段直接比较
	assert.True(t, want.ApplyTime.Equal(got.ApplyTime))
	assert.True(t, want.HouseArea.Equal(got.HouseArea), "house_area %s != %s", want.HouseArea, got.HouseArea)
	wantFields, gotFields := *want, *got
	wantFields.ApplyTime, gotFields.ApplyTime = time.Time{}, time.Time{}
	wantFields.HouseArea, gotFields.HouseArea = decimal.Zero, decimal.Zero
	assert.Equal(t, wantFields, gotFields)
	assert.Empty(t, got.AuditComment)
	assert.Nil(t, got.AuditTime)
}

// TestApplicationService_ListOrderAfterReview 测试审核后列表仍按申请时间排序
func TestApplicationService_ListOrderAfterReview(t *testing.T) {
	f := newFixtureWithRepo(repository.NewApplicationRepository(setupTestDB(t)))
	ctx := context.Background()

	older, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	newer, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	// 审核时间晚于两条申请时间
	require.NoError(t, f.svc.Reject(ctx, older.ID, "reason"))

	apps, err := f.svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, newer.ID, apps[0].ID)
	assert.Equal(t, older.ID, apps[1].ID)
	assert.Equal(t, model.StatusRejected, apps[1].Status)
	assert.Equal(t, "reason", apps[1].AuditComment)
	require.NotNil(t, apps[1].AuditTime)
	assert.True(t, apps[1].AuditTime.After(newer.ApplyTime))
	assert.True(t, apps[1].ApplyTime.Equal(older.ApplyTime))
}

// TestApplicationService_Approve 测试审核通过
func TestApplicationService_Approve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(ctx, app.ID, "  材料齐全  "))

	stored, err := f.svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, stored.Status)
	assert.Equal(t, "材料齐全", stored.AuditComment)
	require.NotNil(t, stored.AuditTime)
	assert.True(t, stored.AuditTime.After(stored.ApplyTime))
	assert.Equal(t, app.BusinessNo, stored.BusinessNo)

	assert.Equal(t, []event.Type{event.TypeSubmitted, event.TypeApproved}, f.publisher.Types())
}

// TestApplicationService_ApproveDefaultComment 测试审核通过默认意见
func TestApplicationService_ApproveDefaultComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(ctx, app.ID, ""))

	stored, err := f.svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "符合规定，予以通过", stored.AuditComment)
}

// TestApplicationService_ApproveConfiguredComment 测试自定义默认意见
func TestApplicationService_ApproveConfiguredComment(t *testing.T) {
	repo := repository.NewMemoryApplicationRepository()
	svc := service.NewApplicationService(repo, service.WithDefaultApproveComment("同意备案"))
	ctx := context.Background()

	app, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, app.ID, " "))

	stored, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "同意备案", stored.AuditComment)
}

// TestApplicationService_BlankConfiguredComment 测试空白的配置意见不覆盖内置默认值
func TestApplicationService_BlankConfiguredComment(t *testing.T) {
	repo := repository.NewMemoryApplicationRepository()
	svc := service.NewApplicationService(repo, service.WithDefaultApproveComment(" \t"))
	ctx := context.Background()

	app, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, app.ID, ""))

	stored, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "符合规定，予以通过", stored.AuditComment)
}

// TestApplicationService_Reject 测试审核驳回
func TestApplicationService_Reject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(ctx, app.ID, "材料不全"))

	stored, err := f.svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.Status)
	assert.Equal(t, "材料不全", stored.AuditComment)
	assert.NotNil(t, stored.AuditTime)
}

// TestApplicationService_RejectRequiresComment 测试驳回必须填写意见
func TestApplicationService_RejectRequiresComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	for _, comment := range []string{"", "   ", "\n\t"} {
		err := f.svc.Reject(ctx, app.ID, comment)
		var verr *service.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"comment"}, verr.FieldNames())
	}

	// 空意见在访问存储前拒绝,不存在的 ID 同样返回校验错误
	err = f.svc.Reject(ctx, "missing", "")
	var verr *service.ValidationError
	assert.True(t, errors.As(err, &verr))

	stored, err := f.svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}

// TestApplicationService_NotFound 测试申请不存在
func TestApplicationService_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Approve(ctx, "missing", ""), service.ErrNotFound)
	assert.ErrorIs(t, f.svc.Reject(ctx, "missing", "no"), service.ErrNotFound)

	_, err := f.svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// TestApplicationService_TerminalStates 测试已审核的申请不能再次审核
func TestApplicationService_TerminalStates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 提交 -> 列表可见且待审核
	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	pending := model.StatusPending
	apps, err := f.svc.List(ctx, &service.ListFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)

	// 通过
	require.NoError(t, f.svc.Approve(ctx, app.ID, "OK"))
	apps, err = f.svc.List(ctx, &service.ListFilter{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, apps)

	// 再次驳回被拒绝,状态保持通过
	err = f.svc.Reject(ctx, app.ID, "late")
	assert.ErrorIs(t, err, service.ErrConflict)
	err = f.svc.Approve(ctx, app.ID, "again")
	assert.ErrorIs(t, err, service.ErrConflict)

	stored, err := f.svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, stored.Status)
	assert.Equal(t, "OK", stored.AuditComment)

	approved := model.StatusApproved
	apps, err = f.svc.List(ctx, &service.ListFilter{Status: &approved})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

// TestApplicationService_StorageFailure 测试存储故障
func TestApplicationService_StorageFailure(t *testing.T) {
	repo := repository.NewMemoryApplicationRepository()
	f := newFixtureWithRepo(repo)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	repo.FailWith = errors.New("disk full")

	_, err = f.svc.Submit(ctx, validRequest())
	var serr *repository.StorageError
	assert.True(t, errors.As(err, &serr))

	err = f.svc.Approve(ctx, app.ID, "")
	assert.True(t, errors.As(err, &serr))

	_, err = f.svc.List(ctx, nil)
	assert.True(t, errors.As(err, &serr))

	// 故障期间的操作不生效
	repo.FailWith = nil
	apps, err := f.svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, model.StatusPending, apps[0].Status)
}

// collidingRepo 业务编号查重总是返回已占用
type collidingRepo struct {
	*repository.MemoryApplicationRepository
}

func (collidingRepo) ExistsBusinessNo(context.Context, string) (bool, error) {
	return true, nil
}

// TestApplicationService_BusinessNoExhausted 测试业务编号多次冲突
func TestApplicationService_BusinessNoExhausted(t *testing.T) {
	svc := service.NewApplicationService(collidingRepo{repository.NewMemoryApplicationRepository()})

	_, err := svc.Submit(context.Background(), validRequest())
	var serr *repository.StorageError
	assert.True(t, errors.As(err, &serr))
}
