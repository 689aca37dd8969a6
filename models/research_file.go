package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResearchFile 调研文件模型
type ResearchFile struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID     string    `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	FileName    string    `json:"file_name" gorm:"column:file_name;type:varchar(255);not null"` // 原始文件名
	StoredName  string    `json:"stored_name" gorm:"column:stored_name;type:varchar(255);not null"`
	FilePath    string    `json:"file_path" gorm:"column:file_path;type:varchar(500);not null"`
	SizeBytes   int64     `json:"size_bytes" gorm:"column:size_bytes;default:0"`
	ContentType string    `json:"content_type" gorm:"column:content_type;type:varchar(100)"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (ResearchFile) TableName() string {
	return "research_files"
}

// BeforeCreate 创建前生成UUID主键
func (r *ResearchFile) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
