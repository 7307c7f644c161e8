package errors

import (
	"net/http"

	"contactbook-backend/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,
	ErrTimeout:  http.StatusRequestTimeout,

	// 认证错误 (2000-2999)
	ErrUnauthenticated:    http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,

	// 请求错误 (3000-3999)
	ErrBadRequest: http.StatusBadRequest,
	ErrValidation: http.StatusBadRequest,
	ErrNotFound:   http.StatusNotFound,

	// 业务错误 (4000-4999)
	// 用户名冲突按接口约定返回 400 而非 409
	ErrUserExists: http.StatusBadRequest,
}

// HandleError 统一处理错误响应
// 内部错误的细节只记录日志，响应体中永远是通用信息
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		status := errorStatusMap[appErr.Code]
		if status == 0 {
			status = http.StatusInternalServerError
		}

		if appErr.Err != nil {
			zap.L().Error("请求处理失败",
				zap.Int("code", int(appErr.Code)),
				zap.String("message", appErr.Message),
				zap.Error(appErr.Err))
		}

		message := appErr.Message
		if status == http.StatusInternalServerError {
			message = "internal server error"
		}

		c.JSON(status, model.WebResponse{Errors: message})
		return
	}

	// 处理非 AppError 类型的错误
	zap.L().Error("未预期的错误", zap.Error(err))
	c.JSON(http.StatusInternalServerError, model.WebResponse{
		Errors: "internal server error",
	})
}

// HandleSuccess 统一处理成功响应
func HandleSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, model.WebResponse{Data: data})
}

// HandleSuccessWithPaging 处理带分页元数据的成功响应
func HandleSuccessWithPaging(c *gin.Context, data interface{}, paging *model.Paging) {
	c.JSON(http.StatusOK, model.WebResponse{Data: data, Paging: paging})
}
