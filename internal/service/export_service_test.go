package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte) [][]string {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{service.ExportSheetName}, f.GetSheetList())
	rows, err := f.GetRows(service.ExportSheetName)
	require.NoError(t, err)
	return rows
}

// TestExportService_ExportApplications 测试导出业务档案
func TestExportService_ExportApplications(t *testing.T) {
	f := newFixture(t)
	export := service.NewExportService(f.svc)
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	second, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(ctx, first.ID, "材料不全"))

	data, err := export.ExportApplications(ctx, nil)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 3)
	assert.Equal(t, service.ExportHeader, rows[0])

	// 最新提交的在前
	assert.Equal(t, second.BusinessNo, rows[1][0])
	assert.Equal(t, "待审核", rows[1][2])
	assert.Equal(t, first.BusinessNo, rows[2][0])
	assert.Equal(t, "审核驳回", rows[2][2])
	assert.Equal(t, "住宅-平层", rows[2][8])
	assert.Equal(t, "88.5", rows[2][9])
	assert.Equal(t, "材料不全", rows[2][20])
}

// TestExportService_Filter 测试按状态导出
func TestExportService_Filter(t *testing.T) {
	f := newFixture(t)
	export := service.NewExportService(f.svc)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(ctx, app.ID, ""))

	approved := model.StatusApproved
	data, err := export.ExportApplications(ctx, &service.ListFilter{Status: &approved})
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, app.BusinessNo, rows[1][0])
	assert.Equal(t, "符合规定，予以通过", rows[1][20])
}

// TestGenerateApplicationsExcel_Empty 测试空列表只有表头
func TestGenerateApplicationsExcel_Empty(t *testing.T) {
	data, err := service.GenerateApplicationsExcel(nil)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(service.ExportHeader))
}
