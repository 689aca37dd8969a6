package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign 营销活动模型
type Campaign struct {
	ID      string `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID string `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	Name    string `json:"name" gorm:"type:varchar(200);not null"`
	Channel string `json:"channel" gorm:"type:varchar(50)"` // 渠道：social/email/search/display
	Status  string `json:"status" gorm:"type:varchar(20);default:'draft'"`
	Budget  string `json:"budget" gorm:"type:varchar(100)"` // 展示字符串
	// EffectivenessScore 活动效果得分(0-100)
	EffectivenessScore float64    `json:"effectiveness_score" gorm:"column:effectiveness_score;default:0"`
	StartDate          *time.Time `json:"start_date" gorm:"column:start_date"`
	EndDate            *time.Time `json:"end_date" gorm:"column:end_date"`
	OrderIndex         int        `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt          time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate 创建前生成UUID主键
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
