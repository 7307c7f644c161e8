package mysql

import (
	"context"
	"database/sql"
	"strings"

	"contactbook-backend/internal/model"
	"contactbook-backend/internal/util"

	"go.uber.org/zap"
)

// contactRepository 实现了 ContactRepository 接口
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository 创建一个新的 contactRepository 实例
func NewContactRepository(db *sql.DB) *contactRepository {
	return &contactRepository{db}
}

// Create 创建一个新联系人
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `INSERT INTO contacts (first_name, last_name, email, phone, username)
              VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.Username)
	if err != nil {
		util.Logger.Error("创建联系人失败", zap.Error(err), zap.String("username", contact.Username))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	contact.ID = int(id)
	util.Logger.Info("联系人创建成功",
		zap.Int("contact_id", contact.ID),
		zap.String("username", contact.Username))
	return nil
}

// FindByIDAndUsername 同时按主键和所属用户过滤
// 不存在和不属于该用户这两种情况统一返回 (nil, nil)，避免跨用户泄露存在性
func (r *contactRepository) FindByIDAndUsername(ctx context.Context, id int, username string) (*model.Contact, error) {
	query := `SELECT id, first_name, last_name, email, phone, username
              FROM contacts WHERE id = ? AND username = ?`
	var contact model.Contact
	err := r.db.QueryRowContext(ctx, query, id, username).Scan(
		&contact.ID, &contact.FirstName, &contact.LastName,
		&contact.Email, &contact.Phone, &contact.Username,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// Update 更新联系人信息
func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	query := `UPDATE contacts
              SET first_name = ?, last_name = ?, email = ?, phone = ?
              WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID)
	if err != nil {
		util.Logger.Error("更新联系人失败", zap.Error(err), zap.Int("contact_id", contact.ID))
		return err
	}
	return nil
}

// Delete 删除联系人，其下的地址由外键级联删除
func (r *contactRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM contacts WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		util.Logger.Error("删除联系人失败", zap.Error(err), zap.Int("contact_id", id))
		return err
	}
	return nil
}

// Search 搜索当前用户的联系人
// 过滤条件按与组合，空字段不参与过滤；返回当前页数据和总数
func (r *contactRepository) Search(ctx context.Context, username string, filters model.ContactFilters, page, pageSize int) ([]*model.Contact, int, error) {
	util.Logger.Debug("开始搜索联系人",
		zap.String("username", username),
		zap.Any("filters", filters),
		zap.Int("page", page),
		zap.Int("pageSize", pageSize))

	query := `SELECT id, first_name, last_name, email, phone, username
              FROM contacts WHERE username = ?`
	countQuery := `SELECT COUNT(*) FROM contacts WHERE username = ?`

	args := []interface{}{username}
	var conditions []string

	if filters.Name != "" {
		conditions = append(conditions, "(first_name LIKE ? OR last_name LIKE ?)")
		args = append(args, "%"+filters.Name+"%", "%"+filters.Name+"%")
	}

	if filters.Email != "" {
		conditions = append(conditions, "email LIKE ?")
		args = append(args, "%"+filters.Email+"%")
	}

	if filters.Phone != "" {
		conditions = append(conditions, "phone LIKE ?")
		args = append(args, "%"+filters.Phone+"%")
	}

	if len(conditions) > 0 {
		clause := " AND " + strings.Join(conditions, " AND ")
		query += clause
		countQuery += clause
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		util.Logger.Error("统计联系人数量失败", zap.Error(err))
		return nil, 0, err
	}

	query += " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		util.Logger.Error("查询联系人失败", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var contact model.Contact
		err := rows.Scan(
			&contact.ID, &contact.FirstName, &contact.LastName,
			&contact.Email, &contact.Phone, &contact.Username,
		)
		if err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, &contact)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}
