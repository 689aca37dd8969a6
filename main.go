package main

import (
	"log"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/database"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/middleware"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 加载.env文件，不存在时使用进程环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// 加载配置
	cfg := config.Load()

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	// 初始化数据库（演示模式下跳过）
	if !cfg.UseStaticData {
		database.InitDB()
	}

	// 设置路由
	r := routes.SetupRoutes(cfg)

	// 添加中间件
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
