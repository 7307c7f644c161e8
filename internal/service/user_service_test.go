package service

import (
	"context"
	"testing"

	apperrors "contactbook-backend/internal/errors"
	"contactbook-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// TestRegister 测试用户注册功能
func TestRegister(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	// 测试成功注册
	mockRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	response, err := service.Register(context.Background(), model.RegisterUserRequest{
		Username: "testuser",
		Password: "secret",
		Name:     "Test User",
	})
	assert.NoError(t, err)
	assert.Equal(t, "testuser", response.Username)
	assert.Equal(t, "Test User", response.Name)
	assert.Empty(t, response.Token)
	mockRepo.AssertExpectations(t)

	// 创建时传入的密码必须是哈希而不是明文
	createdUser := mockRepo.Calls[1].Arguments.Get(1).(*model.User)
	assert.NotEqual(t, "secret", createdUser.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("secret")))
}

// TestRegisterDuplicateUsername 测试用户名重复时注册始终失败
func TestRegisterDuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("FindByUsername", mock.Anything, "existinguser").Return(&model.User{Username: "existinguser"}, nil)

	_, err := service.Register(context.Background(), model.RegisterUserRequest{
		Username: "existinguser",
		Password: "secret",
		Name:     "Someone",
	})
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrUserExists, appErr.Code)

	// 换一套密码和名称重试，结果仍然是冲突
	_, err = service.Register(context.Background(), model.RegisterUserRequest{
		Username: "existinguser",
		Password: "another-secret",
		Name:     "Someone Else",
	})
	assert.Error(t, err)
	appErr, ok = err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrUserExists, appErr.Code)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestRegisterValidation 测试注册请求校验在任何存储访问之前执行
func TestRegisterValidation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	_, err := service.Register(context.Background(), model.RegisterUserRequest{
		Username: "testuser",
		Password: "secret",
	})
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)

	mockRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestLogin 测试登录成功时签发新令牌
func TestLogin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockRepo.On("FindByUsername", mock.Anything, "testuser").Return(&model.User{
		Username: "testuser",
		Password: string(hashed),
		Name:     "Test User",
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	response, err := service.Login(context.Background(), model.LoginUserRequest{
		Username: "testuser",
		Password: "secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "testuser", response.Username)
	assert.NotEmpty(t, response.Token)
	mockRepo.AssertExpectations(t)

	// 令牌被写回用户记录
	updatedUser := mockRepo.Calls[1].Arguments.Get(1).(*model.User)
	assert.NotNil(t, updatedUser.Token)
	assert.Equal(t, response.Token, *updatedUser.Token)
}

// TestLoginGenericError 测试用户名错误和密码错误产生完全相同的错误
func TestLoginGenericError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockRepo.On("FindByUsername", mock.Anything, "unknown").Return(nil, nil)
	mockRepo.On("FindByUsername", mock.Anything, "testuser").Return(&model.User{
		Username: "testuser",
		Password: string(hashed),
	}, nil)

	_, errUnknownUser := service.Login(context.Background(), model.LoginUserRequest{
		Username: "unknown",
		Password: "secret",
	})
	_, errWrongPassword := service.Login(context.Background(), model.LoginUserRequest{
		Username: "testuser",
		Password: "wrong",
	})

	assert.Error(t, errUnknownUser)
	assert.Error(t, errWrongPassword)
	assert.Equal(t, errUnknownUser.Error(), errWrongPassword.Error())

	appErr, ok := errUnknownUser.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrInvalidCredentials, appErr.Code)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestUpdateUser 测试只更新请求中出现的字段
func TestUpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user := &model.User{Username: "testuser", Password: "old-hash", Name: "Old Name"}
	response, err := service.Update(context.Background(), user, model.UpdateUserRequest{Name: "New Name"})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", response.Name)
	assert.Equal(t, "old-hash", user.Password)

	// 更新密码时重新哈希
	_, err = service.Update(context.Background(), user, model.UpdateUserRequest{Password: "new-secret"})
	assert.NoError(t, err)
	assert.NotEqual(t, "old-hash", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-secret")))
}

// TestUpdateUserUnauthenticated 测试未登录时更新失败
func TestUpdateUserUnauthenticated(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	_, err := service.Update(context.Background(), nil, model.UpdateUserRequest{Name: "New Name"})
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthenticated, appErr.Code)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestLogout 测试登出后令牌被清除
func TestLogout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	token := "some-token"
	user := &model.User{Username: "testuser", Token: &token}
	err := service.Logout(context.Background(), user)
	assert.NoError(t, err)
	assert.Nil(t, user.Token)
	mockRepo.AssertExpectations(t)
}

// TestGet 测试获取当前用户信息
func TestGet(t *testing.T) {
	service := NewUserService(new(MockUserRepository))

	response, err := service.Get(&model.User{Username: "testuser", Name: "Test User"})
	assert.NoError(t, err)
	assert.Equal(t, "testuser", response.Username)

	_, err = service.Get(nil)
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthenticated, appErr.Code)
}
