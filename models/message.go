package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandMessage 品牌信息传递模型
type BrandMessage struct {
	ID         string    `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID    string    `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	Title      string    `json:"title" gorm:"type:varchar(200);not null"`
	Text       string    `json:"text" gorm:"type:text"`
	Audience   string    `json:"audience" gorm:"type:varchar(200)"` // 目标受众描述
	OrderIndex int       `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (BrandMessage) TableName() string {
	return "brand_messages"
}

// BeforeCreate 创建前生成UUID主键
func (m *BrandMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
