package interfaces

import (
	"context"

	"contactbook-backend/internal/model"
)

// UserRepository 接口定义了用户仓库应该实现的方法
// 查找方法在记录不存在时返回 (nil, nil)
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}
