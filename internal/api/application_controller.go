package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/mautops/filing-gin/internal/utils"
)

// ApplicationController 备案申请控制器(申请人视角)
type ApplicationController struct {
	appService service.ApplicationService
}

// NewApplicationController 创建备案申请控制器
func NewApplicationController(appService service.ApplicationService) *ApplicationController {
	return &ApplicationController{appService: appService}
}

// Submit 提交备案申请
// @Summary      提交备案申请
// @Description  填写楼栋、房屋、买卖双方信息,提交后状态为待审核并生成业务编号
// @Tags         备案申请
// @Accept       json
// @Produce      json
// @Param        request body service.SubmitRequest true "申请表单"
// @Success      200  {object}  Response{data=ApplicationView}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, T(ctx, "error.bad_request"), err.Error())
		return
	}

	app, err := c.appService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		ctx.Error(err)
		return
	}

	Success(ctx, newApplicationView(ctx, app))
}

// List 申请列表
// @Summary      申请列表
// @Description  按申请时间倒序列出申请,可按状态过滤
// @Tags         备案申请
// @Produce      json
// @Param        status query string false "状态过滤" Enums(pending, approved, rejected)
// @Success      200  {object}  Response{data=[]ApplicationView}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	filter, ok := parseListFilter(ctx)
	if !ok {
		return
	}

	apps, err := c.appService.List(ctx.Request.Context(), filter)
	if err != nil {
		ctx.Error(err)
		return
	}

	Success(ctx, newApplicationViews(ctx, apps))
}

// Get 申请详情
// @Summary      申请详情
// @Tags         备案申请
// @Produce      json
// @Param        id path string true "申请 ID"
// @Success      200  {object}  Response{data=ApplicationView}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /applications/{id} [get]
func (c *ApplicationController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateApplicationID(ctx, id) {
		return
	}

	app, err := c.appService.Get(ctx.Request.Context(), id)
	if err != nil {
		ctx.Error(err)
		return
	}

	Success(ctx, newApplicationView(ctx, app))
}

// parseListFilter 解析 status 查询参数,非法时直接写入 400 响应
func parseListFilter(ctx *gin.Context) (*service.ListFilter, bool) {
	filter := &service.ListFilter{}
	raw := ctx.Query("status")
	if raw == "" {
		return filter, true
	}

	status, err := model.ParseStatus(raw)
	if err != nil {
		Error(ctx, http.StatusBadRequest, T(ctx, "error.invalid_status"), err.Error())
		return nil, false
	}
	filter.Status = &status
	return filter, true
}

// validateApplicationID 验证路径中的申请 ID
func validateApplicationID(ctx *gin.Context, id string) bool {
	if err := utils.ValidateApplicationID(id); err != nil {
		Error(ctx, http.StatusBadRequest, T(ctx, "error.bad_request"), err.Error())
		return false
	}
	return true
}
