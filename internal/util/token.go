package util

import "github.com/google/uuid"

// GenerateToken 生成一个不透明的会话令牌
// 令牌保存在用户记录上，按精确匹配校验，重新登录时被覆盖
func GenerateToken() string {
	return uuid.NewString()
}
