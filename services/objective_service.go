package services

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// ObjectiveService 品牌目标服务
type ObjectiveService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewObjectiveService 创建品牌目标服务实例
func NewObjectiveService(db *gorm.DB, cache *utils.QueryCache) *ObjectiveService {
	return &ObjectiveService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetObjectives 获取品牌的全部品牌目标
func (s *ObjectiveService) GetObjectives(brandID string) ([]models.Objective, error) {
	var items []models.Objective
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&items).Error
	return items, err
}

// ReplaceObjectives 用目标列表对齐品牌的品牌目标集合
func (s *ObjectiveService) ReplaceObjectives(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.Objective{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// AddObjective 新增单个品牌目标
func (s *ObjectiveService) AddObjective(brandID string, item map[string]interface{}) (map[string]interface{}, error) {
	row, err := s.rec.AddItem(models.Objective{}.TableName(), brandID, item, nil)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBrand(brandID)
	return row, nil
}

// UpdateObjective 更新单个品牌目标
func (s *ObjectiveService) UpdateObjective(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.Objective{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeleteObjective 删除单个品牌目标
func (s *ObjectiveService) DeleteObjective(brandID, id string) error {
	if err := s.rec.DeleteItem(models.Objective{}.TableName(), id); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderObjectives 按传入id顺序持久化品牌目标排序
func (s *ObjectiveService) ReorderObjectives(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.Objective{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
