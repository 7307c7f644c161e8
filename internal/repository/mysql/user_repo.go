package mysql

import (
	"context"
	"database/sql"

	"contactbook-backend/internal/model"
	"contactbook-backend/internal/util"

	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

// Create 创建一个新用户
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, password, name) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.Name)
	if err != nil {
		util.Logger.Error("创建用户失败", zap.Error(err), zap.String("username", user.Username))
		return err
	}
	util.Logger.Info("用户创建成功", zap.String("username", user.Username))
	return nil
}

// FindByUsername 通过用户名查找用户
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT username, password, name, token FROM users WHERE username = ?`
	var user model.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.Password, &user.Name, &user.Token,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByToken 通过会话令牌查找用户，精确匹配
func (r *userRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	query := `SELECT username, password, name, token FROM users WHERE token = ?`
	var user model.User
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&user.Username, &user.Password, &user.Name, &user.Token,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Update 更新用户的名称、密码哈希和会话令牌
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET password = ?, name = ?, token = ? WHERE username = ?`
	_, err := r.db.ExecContext(ctx, query, user.Password, user.Name, user.Token, user.Username)
	if err != nil {
		util.Logger.Error("更新用户失败", zap.Error(err), zap.String("username", user.Username))
		return err
	}
	return nil
}
