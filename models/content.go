package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 内容分析状态
const (
	ContentStatusPending    = "pending"    // 未分析
	ContentStatusProcessing = "processing" // 分析中
	ContentStatusAnalyzed   = "analyzed"   // 分析完成
	ContentStatusError      = "error"      // 分析失败
	ContentStatusCancelled  = "cancelled"  // 已取消
)

// ContentItem 内容素材模型
type ContentItem struct {
	ID          string `json:"id" gorm:"primaryKey;type:char(36)"`
	BrandID     string `json:"brand_id" gorm:"column:brand_id;type:char(36);index;not null"`
	Title       string `json:"title" gorm:"type:varchar(200);not null"`
	ContentType string `json:"content_type" gorm:"column:content_type;type:varchar(50)"` // image/video/article/ad
	Channel     string `json:"channel" gorm:"type:varchar(50)"`
	FileName    string `json:"file_name" gorm:"column:file_name;type:varchar(255)"`
	FilePath    string `json:"file_path" gorm:"column:file_path;type:varchar(500)"`
	// Status 分析状态：pending/processing/analyzed/error/cancelled
	Status     string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Score      float64    `json:"score" gorm:"default:0"` // 内容效果得分(0-100)
	AnalyzedAt *time.Time `json:"analyzed_at" gorm:"column:analyzed_at"`
	OrderIndex int        `json:"order_index" gorm:"column:order_index;default:0"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName 指定表名
func (ContentItem) TableName() string {
	return "content_items"
}

// BeforeCreate 创建前生成UUID主键
func (c *ContentItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsTerminalStatus 判断是否为终止状态（分析完成/失败/取消）
func IsTerminalStatus(status string) bool {
	return status == ContentStatusAnalyzed || status == ContentStatusError || status == ContentStatusCancelled
}
