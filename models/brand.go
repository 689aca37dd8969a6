package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand 品牌模型（带唯一slug）
type Brand struct {
	ID           string    `json:"id" gorm:"primaryKey;type:char(36)"`
	Slug         string    `json:"slug" gorm:"column:slug;type:varchar(100);uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"type:varchar(200);not null"`
	Region       string    `json:"region" gorm:"type:varchar(100)"`
	BusinessArea string    `json:"business_area" gorm:"column:business_area;type:varchar(200)"`
	// 财务数据以展示字符串保存，例如 "€2.3M"
	SalesFigures    string    `json:"sales_figures" gorm:"column:sales_figures;type:varchar(200)"`
	VoiceAttributes string    `json:"voice_attributes" gorm:"column:voice_attributes;type:text"` // JSON数组字符串
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updated_at"`

	// 关联关系
	Campaigns      []Campaign      `json:"campaigns" gorm:"foreignKey:BrandID"`
	Messages       []BrandMessage  `json:"messages" gorm:"foreignKey:BrandID"`
	Objectives     []Objective     `json:"objectives" gorm:"foreignKey:BrandID"`
	Personas       []Persona       `json:"personas" gorm:"foreignKey:BrandID"`
	Competitors    []Competitor    `json:"competitors" gorm:"foreignKey:BrandID"`
	Content        []ContentItem   `json:"content" gorm:"foreignKey:BrandID"`
	SwotEntries    []SwotEntry     `json:"swot_entries" gorm:"foreignKey:BrandID"`
	MarketAnalysis *MarketAnalysis `json:"market_analysis" gorm:"foreignKey:BrandID"`
	ResearchFiles  []ResearchFile  `json:"research_files" gorm:"foreignKey:BrandID"`
}

// BeforeCreate 创建前生成UUID主键
func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
