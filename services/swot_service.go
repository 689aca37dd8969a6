package services

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// SwotService SWOT条目服务
type SwotService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewSwotService 创建SWOT条目服务实例
func NewSwotService(db *gorm.DB, cache *utils.QueryCache) *SwotService {
	return &SwotService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetSwotEntries 获取品牌的全部SWOT条目
func (s *SwotService) GetSwotEntries(brandID string) ([]models.SwotEntry, error) {
	var items []models.SwotEntry
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&items).Error
	return items, err
}

// ReplaceSwotEntries 用目标列表对齐品牌的SWOT条目集合
func (s *SwotService) ReplaceSwotEntries(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.SwotEntry{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// AddSwotEntry 新增单个SWOT条目
func (s *SwotService) AddSwotEntry(brandID string, item map[string]interface{}) (map[string]interface{}, error) {
	row, err := s.rec.AddItem(models.SwotEntry{}.TableName(), brandID, item, nil)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBrand(brandID)
	return row, nil
}

// UpdateSwotEntry 更新单个SWOT条目
func (s *SwotService) UpdateSwotEntry(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.SwotEntry{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeleteSwotEntry 删除单个SWOT条目
func (s *SwotService) DeleteSwotEntry(brandID, id string) error {
	if err := s.rec.DeleteItem(models.SwotEntry{}.TableName(), id); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderSwotEntries 按传入id顺序持久化SWOT条目排序
func (s *SwotService) ReorderSwotEntries(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.SwotEntry{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
