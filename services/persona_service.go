package services

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// PersonaService 受众画像服务
type PersonaService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewPersonaService 创建受众画像服务实例
func NewPersonaService(db *gorm.DB, cache *utils.QueryCache) *PersonaService {
	return &PersonaService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetPersonas 获取品牌的全部受众画像
func (s *PersonaService) GetPersonas(brandID string) ([]models.Persona, error) {
	var items []models.Persona
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&items).Error
	return items, err
}

// ReplacePersonas 用目标列表对齐品牌的受众画像集合
func (s *PersonaService) ReplacePersonas(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.Persona{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// AddPersona 新增单个受众画像
func (s *PersonaService) AddPersona(brandID string, item map[string]interface{}) (map[string]interface{}, error) {
	row, err := s.rec.AddItem(models.Persona{}.TableName(), brandID, item, nil)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBrand(brandID)
	return row, nil
}

// UpdatePersona 更新单个受众画像
func (s *PersonaService) UpdatePersona(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.Persona{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeletePersona 删除单个受众画像
func (s *PersonaService) DeletePersona(brandID, id string) error {
	if err := s.rec.DeleteItem(models.Persona{}.TableName(), id); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderPersonas 按传入id顺序持久化受众画像排序
func (s *PersonaService) ReorderPersonas(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.Persona{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
