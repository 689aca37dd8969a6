package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Objective 品牌目标模型
type Objective struct {
	ID          string     `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID     string     `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	Title       string     `json:"title" gorm:"type:varchar(200);not null"`
	Description string     `json:"description" gorm:"type:text"`
	TargetDate  *time.Time `json:"target_date" gorm:"column:target_date"`
	Progress    int        `json:"progress" gorm:"default:0"` // 完成度百分比(0-100)
	OrderIndex  int        `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (Objective) TableName() string {
	return "objectives"
}

// BeforeCreate 创建前生成UUID主键
func (o *Objective) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
