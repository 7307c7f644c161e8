package migrations

import "embed"

// Migrations 内嵌的数据库迁移脚本，启动时由 goose 执行
//
//go:embed *.sql
var Migrations embed.FS
