package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Competitor 竞争对手模型
type Competitor struct {
	ID         string    `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID    string    `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	Name       string    `json:"name" gorm:"type:varchar(200);not null"`
	Strengths  string    `json:"strengths" gorm:"type:text"`
	Weaknesses string    `json:"weaknesses" gorm:"type:text"`
	Notes      string    `json:"notes" gorm:"type:text"`
	OrderIndex int       `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (Competitor) TableName() string {
	return "competitors"
}

// BeforeCreate 创建前生成UUID主键
func (c *Competitor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
