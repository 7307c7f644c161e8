package interfaces

import (
	"context"

	"contactbook-backend/internal/model"
)

// AddressRepository 接口定义了地址仓库应该实现的方法
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	// FindByIDAndContactID 同时按主键和所属联系人过滤，不匹配时返回 (nil, nil)
	FindByIDAndContactID(ctx context.Context, id, contactID int) (*model.Address, error)
	ListByContactID(ctx context.Context, contactID int) ([]*model.Address, error)
	Update(ctx context.Context, address *model.Address) error
	Delete(ctx context.Context, id int) error
}
