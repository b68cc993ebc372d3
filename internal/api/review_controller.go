package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/service"
)

// xlsxContentType Excel 文件类型
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReviewController 审核控制器(审核员视角)
type ReviewController struct {
	appService    service.ApplicationService
	exportService service.ExportService
	statsService  service.StatisticsService
}

// NewReviewController 创建审核控制器
func NewReviewController(appService service.ApplicationService, exportService service.ExportService, statsService service.StatisticsService) *ReviewController {
	return &ReviewController{
		appService:    appService,
		exportService: exportService,
		statsService:  statsService,
	}
}

// Pending 待审核列表
// @Summary      待审核列表
// @Description  列出所有待审核申请,最新提交的在前
// @Tags         审核
// @Produce      json
// @Success      200  {object}  Response{data=[]ApplicationView}
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews/pending [get]
func (c *ReviewController) Pending(ctx *gin.Context) {
	status := model.StatusPending
	apps, err := c.appService.List(ctx.Request.Context(), &service.ListFilter{Status: &status})
	if err != nil {
		ctx.Error(err)
		return
	}

	Success(ctx, newApplicationViews(ctx, apps))
}

// Approve 审核通过
// @Summary      审核通过
// @Description  审核意见为空时使用默认意见
// @Tags         审核
// @Accept       json
// @Produce      json
// @Param        id path string true "申请 ID"
// @Param        request body service.ReviewRequest false "审核意见"
// @Success      200  {object}  Response{data=ApplicationView}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /reviews/{id}/approve [post]
func (c *ReviewController) Approve(ctx *gin.Context) {
	c.review(ctx, c.appService.Approve)
}

// Reject 审核驳回
// @Summary      审核驳回
// @Description  驳回必须填写审核意见
// @Tags         审核
// @Accept       json
// @Produce      json
// @Param        id path string true "申请 ID"
// @Param        request body service.ReviewRequest true "审核意见"
// @Success      200  {object}  Response{data=ApplicationView}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /reviews/{id}/reject [post]
func (c *ReviewController) Reject(ctx *gin.Context) {
	c.review(ctx, c.appService.Reject)
}

func (c *ReviewController) review(ctx *gin.Context, action func(context.Context, string, string) error) {
	id := ctx.Param("id")
	if !validateApplicationID(ctx, id) {
		return
	}

	var req service.ReviewRequest
	// 审核通过允许空请求体
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		Error(ctx, http.StatusBadRequest, T(ctx, "error.bad_request"), err.Error())
		return
	}

	if err := action(ctx.Request.Context(), id, req.Comment); err != nil {
		ctx.Error(err)
		return
	}

	app, err := c.appService.Get(ctx.Request.Context(), id)
	if err != nil {
		ctx.Error(err)
		return
	}
	Success(ctx, newApplicationView(ctx, app))
}

// Export 导出业务档案
// @Summary      导出业务档案
// @Description  导出申请列表为 Excel,可按状态过滤
// @Tags         审核
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status query string false "状态过滤" Enums(pending, approved, rejected)
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews/archive/export [get]
func (c *ReviewController) Export(ctx *gin.Context) {
	filter, ok := parseListFilter(ctx)
	if !ok {
		return
	}

	data, err := c.exportService.ExportApplications(ctx.Request.Context(), filter)
	if err != nil {
		ctx.Error(err)
		return
	}

	filename := fmt.Sprintf("applications_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, data)
}

// Statistics 按状态统计
// @Summary      按状态统计
// @Tags         审核
// @Produce      json
// @Success      200  {object}  Response{data=service.StatusStatistics}
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics [get]
func (c *ReviewController) Statistics(ctx *gin.Context) {
	stats, err := c.statsService.GetStatusStatistics(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}

	Success(ctx, stats)
}
