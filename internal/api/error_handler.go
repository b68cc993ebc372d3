package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/filing-gin/internal/repository"
	"github.com/mautops/filing-gin/internal/service"
)

// ErrorHandlerMiddleware 错误处理中间件
// 控制器通过 c.Error 登记服务层错误,这里统一转换为 ErrorResponse
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		respondError(c, c.Errors.Last().Err)
	}
}

// respondError 将服务层错误映射为 HTTP 响应
//
//	*service.ValidationError   -> 400 (带 fields)
//	service.ErrNotFound        -> 404
//	service.ErrConflict        -> 409
//	*repository.StorageError   -> 500
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fields := make([]FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, FieldError{Field: f.Field, Message: f.Message})
		}
		ValidationFailed(c, T(c, "error.validation"), fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		Error(c, http.StatusNotFound, T(c, "error.not_found"), err.Error())
	case errors.Is(err, service.ErrConflict):
		Error(c, http.StatusConflict, T(c, "error.conflict"), err.Error())
	default:
		var serr *repository.StorageError
		if errors.As(err, &serr) {
			getLogger(c).WithError(err).WithField("op", serr.Op).Error("storage failure")
		} else {
			getLogger(c).WithError(err).Error("unexpected error")
		}
		Error(c, http.StatusInternalServerError, T(c, "error.internal_error"), err.Error())
	}
}
