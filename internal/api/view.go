package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mautops/filing-gin/internal/model"
)

// ApplicationView 申请展示视图,在存储记录基础上附加状态显示信息
// @Description 备案申请,附带本地化状态文本和状态颜色
type ApplicationView struct {
	*model.ApplicationModel
	StatusLabel string `json:"status_label" example:"待审核"`    // 状态显示文本
	StatusColor string `json:"status_color" example:"orange"` // 状态显示颜色
}

func newApplicationView(c *gin.Context, app *model.ApplicationModel) ApplicationView {
	return ApplicationView{
		ApplicationModel: app,
		StatusLabel:      StatusLabel(GetLanguage(c), app.Status),
		StatusColor:      app.Status.Color(),
	}
}

func newApplicationViews(c *gin.Context, apps []*model.ApplicationModel) []ApplicationView {
	views := make([]ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, newApplicationView(c, app))
	}
	return views
}
