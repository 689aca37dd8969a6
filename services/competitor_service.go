package services

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// CompetitorService 竞争对手服务
type CompetitorService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewCompetitorService 创建竞争对手服务实例
func NewCompetitorService(db *gorm.DB, cache *utils.QueryCache) *CompetitorService {
	return &CompetitorService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetCompetitors 获取品牌的全部竞争对手
func (s *CompetitorService) GetCompetitors(brandID string) ([]models.Competitor, error) {
	var items []models.Competitor
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&items).Error
	return items, err
}

// ReplaceCompetitors 用目标列表对齐品牌的竞争对手集合
func (s *CompetitorService) ReplaceCompetitors(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.Competitor{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// AddCompetitor 新增单个竞争对手
func (s *CompetitorService) AddCompetitor(brandID string, item map[string]interface{}) (map[string]interface{}, error) {
	row, err := s.rec.AddItem(models.Competitor{}.TableName(), brandID, item, nil)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBrand(brandID)
	return row, nil
}

// UpdateCompetitor 更新单个竞争对手
func (s *CompetitorService) UpdateCompetitor(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.Competitor{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeleteCompetitor 删除单个竞争对手
func (s *CompetitorService) DeleteCompetitor(brandID, id string) error {
	if err := s.rec.DeleteItem(models.Competitor{}.TableName(), id); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderCompetitors 按传入id顺序持久化竞争对手排序
func (s *CompetitorService) ReorderCompetitors(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.Competitor{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
