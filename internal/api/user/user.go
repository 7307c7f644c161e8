package user

import (
	"net/http"

	"contactbook-backend/internal/errors"
	"contactbook-backend/internal/middleware"
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/service"
	"contactbook-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler 处理与用户相关的HTTP请求
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService}
}

// Register 处理用户注册请求
func (h *UserHandler) Register(c *gin.Context) {
	var request model.RegisterUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := h.userService.Register(c.Request.Context(), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusCreated, response)
}

// Login 处理用户登录请求
func (h *UserHandler) Login(c *gin.Context) {
	var request model.LoginUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := h.userService.Login(c.Request.Context(), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// Current 返回当前登录用户的信息
func (h *UserHandler) Current(c *gin.Context) {
	response, err := h.userService.Get(middleware.CurrentUser(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// Update 更新当前登录用户的信息
func (h *UserHandler) Update(c *gin.Context) {
	var request model.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := h.userService.Update(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// Logout 处理用户登出，清除会话令牌
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, true)
}
