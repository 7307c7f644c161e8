package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contactbook-backend/config"
	"contactbook-backend/internal/api/address"
	"contactbook-backend/internal/api/contact"
	"contactbook-backend/internal/api/user"
	"contactbook-backend/internal/middleware"
	"contactbook-backend/internal/repository/mysql"
	"contactbook-backend/internal/service"
	"contactbook-backend/internal/util"
	"contactbook-backend/migrations"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 设置数据库连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	// 连接数据库
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	// 测试数据库连接
	if err = db.Ping(); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	// 配置连接池
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 执行数据库迁移
	if err = runMigrations(db); err != nil {
		util.Logger.Fatal("数据库迁移失败", zap.Error(err))
	}
	util.Logger.Info("数据库迁移完成")

	// 初始化存储库、服务和处理器
	userRepo := mysql.NewUserRepository(db)
	contactRepo := mysql.NewContactRepository(db)
	addressRepo := mysql.NewAddressRepository(db)

	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo, config.AppConfig.SearchPageSize)
	addressService := service.NewAddressService(addressRepo, contactService)

	userHandler := user.NewUserHandler(userService)
	contactHandler := contact.NewContactHandler(contactService)
	addressHandler := address.NewAddressHandler(addressService)

	// 设置 Gin 路由
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 认证中间件对所有 API 路由生效，但不拦截请求
	// 需要登录态的操作在服务层自行断言
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(userService))
	{
		// 用户相关路由
		api.POST("/users", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.GET("/users/current", userHandler.Current)
		api.PATCH("/users/current", userHandler.Update)
		api.DELETE("/users/current", userHandler.Logout)

		// 联系人相关路由
		api.POST("/contacts", contactHandler.Create)
		api.GET("/contacts", contactHandler.Search)
		api.GET("/contacts/:contactId", contactHandler.Get)
		api.PUT("/contacts/:contactId", contactHandler.Update)
		api.DELETE("/contacts/:contactId", contactHandler.Remove)

		// 地址相关路由，嵌套在联系人之下
		api.POST("/contacts/:contactId/addresses", addressHandler.Create)
		api.GET("/contacts/:contactId/addresses", addressHandler.List)
		api.GET("/contacts/:contactId/addresses/:addressId", addressHandler.Get)
		api.PUT("/contacts/:contactId/addresses/:addressId", addressHandler.Update)
		api.DELETE("/contacts/:contactId/addresses/:addressId", addressHandler.Remove)
	}

	// 创建 http.Server 以支持优雅关闭
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.ServerPort,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}

// runMigrations 执行内嵌的 goose 迁移脚本
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
