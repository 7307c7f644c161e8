package middleware

import (
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/service"
	"contactbook-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CurrentUserKey 是认证用户在 gin 上下文中的键
const CurrentUserKey = "current_user"

// AuthMiddleware 认证中间件：用 Authorization 头中的令牌精确匹配查找用户
// 查到则把用户挂到上下文上；查不到也不拦截，由需要登录态的操作自行断言
func AuthMiddleware(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token != "" {
			user, err := userService.FindByToken(c.Request.Context(), token)
			if err != nil {
				util.Logger.Error("按令牌查找用户失败", zap.Error(err))
			} else if user != nil {
				c.Set(CurrentUserKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser 从上下文中取出认证用户，未认证时返回 nil
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
