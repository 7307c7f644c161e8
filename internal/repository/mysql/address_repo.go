package mysql

import (
	"context"
	"database/sql"

	"contactbook-backend/internal/model"
	"contactbook-backend/internal/util"

	"go.uber.org/zap"
)

// addressRepository 实现了 AddressRepository 接口
type addressRepository struct {
	db *sql.DB
}

// NewAddressRepository 创建一个新的 addressRepository 实例
func NewAddressRepository(db *sql.DB) *addressRepository {
	return &addressRepository{db}
}

// Create 在指定联系人下创建一个新地址
func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	query := `INSERT INTO addresses (street, city, province, country, postal_code, contact_id)
              VALUES (?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		address.Street, address.City, address.Province,
		address.Country, address.PostalCode, address.ContactID)
	if err != nil {
		util.Logger.Error("创建地址失败", zap.Error(err), zap.Int("contact_id", address.ContactID))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	address.ID = int(id)
	util.Logger.Info("地址创建成功",
		zap.Int("address_id", address.ID),
		zap.Int("contact_id", address.ContactID))
	return nil
}

// FindByIDAndContactID 同时按主键和所属联系人过滤
// 不存在和属于其它联系人统一返回 (nil, nil)
func (r *addressRepository) FindByIDAndContactID(ctx context.Context, id, contactID int) (*model.Address, error) {
	query := `SELECT id, street, city, province, country, postal_code, contact_id
              FROM addresses WHERE id = ? AND contact_id = ?`
	var address model.Address
	err := r.db.QueryRowContext(ctx, query, id, contactID).Scan(
		&address.ID, &address.Street, &address.City, &address.Province,
		&address.Country, &address.PostalCode, &address.ContactID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// ListByContactID 返回联系人名下的全部地址
func (r *addressRepository) ListByContactID(ctx context.Context, contactID int) ([]*model.Address, error) {
	query := `SELECT id, street, city, province, country, postal_code, contact_id
              FROM addresses WHERE contact_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, contactID)
	if err != nil {
		util.Logger.Error("查询地址列表失败", zap.Error(err), zap.Int("contact_id", contactID))
		return nil, err
	}
	defer rows.Close()

	var addresses []*model.Address
	for rows.Next() {
		var address model.Address
		err := rows.Scan(
			&address.ID, &address.Street, &address.City, &address.Province,
			&address.Country, &address.PostalCode, &address.ContactID,
		)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, &address)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}

// Update 更新地址信息
func (r *addressRepository) Update(ctx context.Context, address *model.Address) error {
	query := `UPDATE addresses
              SET street = ?, city = ?, province = ?, country = ?, postal_code = ?
              WHERE id = ? AND contact_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		address.Street, address.City, address.Province,
		address.Country, address.PostalCode, address.ID, address.ContactID)
	if err != nil {
		util.Logger.Error("更新地址失败", zap.Error(err), zap.Int("address_id", address.ID))
		return err
	}
	return nil
}

// Delete 删除地址
func (r *addressRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM addresses WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		util.Logger.Error("删除地址失败", zap.Error(err), zap.Int("address_id", id))
		return err
	}
	return nil
}
