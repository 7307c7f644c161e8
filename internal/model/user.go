package model

// User 结构体表示用户模型
type User struct {
	Username string  `json:"username"`
	Password string  `json:"-"` // 密码哈希不应在JSON中暴露
	Name     string  `json:"name"`
	Token    *string `json:"-"` // 当前会话令牌，未登录时为 nil
}

// RegisterUserRequest 注册请求
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUserRequest 登录请求
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest 更新请求，所有字段可选，只更新传入的字段
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

// UserResponse 用户响应，永远不包含密码哈希
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse 将用户实体转换为响应结构
func ToUserResponse(user *User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
