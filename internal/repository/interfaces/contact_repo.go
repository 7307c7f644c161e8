package interfaces

import (
	"context"

	"contactbook-backend/internal/model"
)

// ContactRepository 接口定义了联系人仓库应该实现的方法
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	// FindByIDAndUsername 同时按主键和所属用户过滤，不存在或不属于该用户时返回 (nil, nil)
	FindByIDAndUsername(ctx context.Context, id int, username string) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id int) error
	// Search 返回当前页的联系人和满足条件的总数
	Search(ctx context.Context, username string, filters model.ContactFilters, page, pageSize int) ([]*model.Contact, int, error)
}
