package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"contactbook-backend/internal/model"
	"contactbook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockUserService 是 UserServiceInterface 的模拟实现，中间件只用到 FindByToken
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, request model.RegisterUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, request model.LoginUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *mockUserService) Get(user *model.User) (*model.UserResponse, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, user *model.User, request model.UpdateUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, user, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserService) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

var _ service.UserServiceInterface = (*mockUserService)(nil)

func authTestRouter(userService service.UserServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(userService))
	router.GET("/whoami", func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, user.Username)
	})
	return router
}

// TestAuthMiddlewareAttachesUser 测试有效令牌时用户被挂到上下文
func TestAuthMiddlewareAttachesUser(t *testing.T) {
	mockService := new(mockUserService)
	router := authTestRouter(mockService)

	token := "valid-token"
	mockService.On("FindByToken", mock.Anything, token).Return(&model.User{Username: "u1", Token: &token}, nil)

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
	mockService.AssertExpectations(t)
}

// TestAuthMiddlewareUnknownToken 测试无效令牌时请求继续但没有登录态
func TestAuthMiddlewareUnknownToken(t *testing.T) {
	mockService := new(mockUserService)
	router := authTestRouter(mockService)

	mockService.On("FindByToken", mock.Anything, "bogus").Return(nil, nil)

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "bogus")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

// TestAuthMiddlewareNoHeader 测试缺少令牌时不查询存储
func TestAuthMiddlewareNoHeader(t *testing.T) {
	mockService := new(mockUserService)
	router := authTestRouter(mockService)

	req, _ := http.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
	mockService.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
}
