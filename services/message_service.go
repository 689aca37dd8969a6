package services

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// MessageService 品牌信息服务
type MessageService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewMessageService 创建品牌信息服务实例
func NewMessageService(db *gorm.DB, cache *utils.QueryCache) *MessageService {
	return &MessageService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetMessages 获取品牌的全部品牌信息
func (s *MessageService) GetMessages(brandID string) ([]models.BrandMessage, error) {
	var items []models.BrandMessage
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&items).Error
	return items, err
}

// ReplaceMessages 用目标列表对齐品牌的品牌信息集合
func (s *MessageService) ReplaceMessages(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.BrandMessage{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// AddMessage 新增单个品牌信息
func (s *MessageService) AddMessage(brandID string, item map[string]interface{}) (map[string]interface{}, error) {
	row, err := s.rec.AddItem(models.BrandMessage{}.TableName(), brandID, item, nil)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBrand(brandID)
	return row, nil
}

// UpdateMessage 更新单个品牌信息
func (s *MessageService) UpdateMessage(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.BrandMessage{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeleteMessage 删除单个品牌信息
func (s *MessageService) DeleteMessage(brandID, id string) error {
	if err := s.rec.DeleteItem(models.BrandMessage{}.TableName(), id); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderMessages 按传入id顺序持久化品牌信息排序
func (s *MessageService) ReorderMessages(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.BrandMessage{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
