package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mautops/filing-gin/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportSheetName 导出工作表名称
const ExportSheetName = "业务档案"

// ExportHeader 业务档案导出表头
var ExportHeader = []string{
	"业务编号", "申请时间", "状态",
	"楼栋名称/编号", "项目地址", "总层数", "总单元数",
	"房号", "户型", "建筑面积(㎡)", "产权状况", "预售/现售证号",
	"开发商名称", "统一社会信用代码", "法定代表人", "卖方联系电话",
	"买方姓名/单位", "身份证/证件号", "买方联系电话", "共有情况",
	"审核意见", "审核时间",
}

// ExportService 业务档案导出服务
type ExportService interface {
	ExportApplications(ctx context.Context, filter *ListFilter) ([]byte, error)
}

type exportService struct {
	appService ApplicationService
}

// NewExportService 创建导出服务
func NewExportService(appService ApplicationService) ExportService {
	return &exportService{appService: appService}
}

// ExportApplications 导出申请列表为 Excel 文件
func (s *exportService) ExportApplications(ctx context.Context, filter *ListFilter) ([]byte, error) {
	apps, err := s.appService.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return GenerateApplicationsExcel(apps)
}

// GenerateApplicationsExcel 生成业务档案 Excel,数据为空时只包含表头
func GenerateApplicationsExcel(apps []*model.ApplicationModel) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ExportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	// 删除默认的 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// 写入表头
	if err := f.SetSheetRow(ExportSheetName, "A1", &ExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(ExportHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(ExportSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(ExportSheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	// 写入数据,从第 2 行开始
	for i, app := range apps {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := exportRow(app)
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(app *model.ApplicationModel) []interface{} {
	auditTime := ""
	if app.AuditTime != nil {
		auditTime = app.AuditTime.Format("2006-01-02 15:04:05")
	}
	return []interface{}{
		app.BusinessNo,
		app.ApplyTime.Format("2006-01-02 15:04:05"),
		app.Status.Label(),
		app.BldName,
		app.BldAddress,
		app.TotalFloors,
		app.TotalUnits,
		app.HouseNo,
		app.HouseType.Label(),
		app.HouseArea.InexactFloat64(),
		app.RightsStatus.Label(),
		app.PresalePermit,
		app.SellerName,
		app.SellerCode,
		app.SellerRep,
		app.SellerContact,
		app.BuyerName,
		app.BuyerIDNo,
		app.BuyerContact,
		app.BuyerShareType.Label(),
		app.AuditComment,
		auditTime,
	}
}
