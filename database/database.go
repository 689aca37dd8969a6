package database

import (
	"fmt"
	"log"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB() {
	cfg := config.Load()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// 自动迁移数据库表
	err = DB.AutoMigrate(
		&models.Brand{},
		&models.Campaign{},
		&models.BrandMessage{},
		&models.Objective{},
		&models.Persona{},
		&models.Competitor{},
		&models.ContentItem{},
		&models.SwotEntry{},
		&models.MarketAnalysis{},
		&models.ResearchFile{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
