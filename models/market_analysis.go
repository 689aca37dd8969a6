package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketAnalysis 市场分析模型（每个品牌唯一一条）
type MarketAnalysis struct {
	ID         string    `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID    string    `json:"brand_id" gorm:"column:brand_id;type:char(36);uniqueIndex;not null"`
	MarketSize string    `json:"market_size" gorm:"column:market_size;type:varchar(200)"` // 展示字符串
	GrowthRate string    `json:"growth_rate" gorm:"column:growth_rate;type:varchar(100)"`
	Trends     string    `json:"trends" gorm:"type:text"` // JSON数组字符串
	Summary    string    `json:"summary" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (MarketAnalysis) TableName() string {
	return "market_analyses"
}

// BeforeCreate 创建前生成UUID主键
func (m *MarketAnalysis) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
