package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SWOT条目类别
const (
	SwotCategoryStrength    = "strength"
	SwotCategoryWeakness    = "weakness"
	SwotCategoryOpportunity = "opportunity"
	SwotCategoryThreat      = "threat"
)

// SwotEntry SWOT分析条目模型
type SwotEntry struct {
	ID      string `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID string `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	// Category 条目类别：strength/weakness/opportunity/threat
	Category   string    `json:"category" gorm:"type:varchar(20);not null"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	OrderIndex int       `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (SwotEntry) TableName() string {
	return "swot_entries"
}

// BeforeCreate 创建前生成UUID主键
func (s *SwotEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
