package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Persona 受众画像模型
type Persona struct {
	ID          string `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID     string `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	Name        string `json:"name" gorm:"type:varchar(200);not null"`
	AgeRange    string `json:"age_range" gorm:"column:age_range;type:varchar(50)"`
	Description string `json:"description" gorm:"type:text"`
	Interests   string `json:"interests" gorm:"type:text"` // JSON数组字符串
	// EffectivenessScore 受众触达效果得分(0-100)
	EffectivenessScore float64   `json:"effectiveness_score" gorm:"column:effectiveness_score;default:0"`
	OrderIndex         int       `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (Persona) TableName() string {
	return "personas"
}

// BeforeCreate 创建前生成UUID主键
func (p *Persona) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
