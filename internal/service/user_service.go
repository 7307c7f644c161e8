package service

import (
	"context"

	"contactbook-backend/internal/errors"
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/repository/interfaces"
	"contactbook-backend/internal/util"

	"go.uber.org/zap"

	"golang.org/x/crypto/bcrypt"
)

// 登录失败时的统一提示，不区分用户名错误和密码错误，防止用户名枚举
const wrongCredentialsMessage = "username or password is wrong"

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 注册新用户
func (s *UserService) Register(ctx context.Context, request model.RegisterUserRequest) (*model.UserResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}

	// 检查用户名是否已被使用
	existing, err := s.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if existing != nil {
		util.Logger.Warn("注册失败，用户名已存在", zap.String("username", request.Username))
		return nil, errors.New(errors.ErrUserExists, "username already exists")
	}

	// 生成密码哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "生成密码哈希失败", err)
	}

	user := &model.User{
		Username: request.Username,
		Password: string(hashedPassword),
		Name:     request.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建用户失败", err)
	}

	return model.ToUserResponse(user), nil
}

// Login 用户登录，成功时签发新的会话令牌，覆盖之前的令牌
func (s *UserService) Login(ctx context.Context, request model.LoginUserRequest) (*model.UserResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrInvalidCredentials, wrongCredentialsMessage)
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, errors.New(errors.ErrInvalidCredentials, wrongCredentialsMessage)
	}

	token := util.GenerateToken()
	user.Token = &token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "保存会话令牌失败", err)
	}

	util.Logger.Info("用户登录成功", zap.String("username", user.Username))

	response := model.ToUserResponse(user)
	response.Token = token
	return response, nil
}

// Get 返回当前登录用户的信息
func (s *UserService) Get(user *model.User) (*model.UserResponse, error) {
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}
	return model.ToUserResponse(user), nil
}

// Update 更新当前用户，只应用请求中出现的字段
func (s *UserService) Update(ctx context.Context, user *model.User, request model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInternal, "生成密码哈希失败", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新用户失败", err)
	}

	return model.ToUserResponse(user), nil
}

// Logout 清除当前用户的会话令牌
func (s *UserService) Logout(ctx context.Context, user *model.User) error {
	if user == nil {
		return errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	user.Token = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(errors.ErrDatabase, "清除会话令牌失败", err)
	}

	util.Logger.Info("用户已登出", zap.String("username", user.Username))
	return nil
}

// FindByToken 通过会话令牌查找用户，供认证中间件使用
// 未命中时返回 (nil, nil)，由具体操作决定是否拒绝
func (s *UserService) FindByToken(ctx context.Context, token string) (*model.User, error) {
	return s.userRepo.FindByToken(ctx, token)
}

type UserServiceInterface interface {
	Register(ctx context.Context, request model.RegisterUserRequest) (*model.UserResponse, error)
	Login(ctx context.Context, request model.LoginUserRequest) (*model.UserResponse, error)
	Get(user *model.User) (*model.UserResponse, error)
	Update(ctx context.Context, user *model.User, request model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(ctx context.Context, user *model.User) error
	FindByToken(ctx context.Context, token string) (*model.User, error)
}

// 确保 UserService 实现了 UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)
