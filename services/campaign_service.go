package services

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// CampaignService 营销活动服务
type CampaignService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewCampaignService 创建营销活动服务实例
func NewCampaignService(db *gorm.DB, cache *utils.QueryCache) *CampaignService {
	return &CampaignService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetCampaigns 获取品牌的全部营销活动
func (s *CampaignService) GetCampaigns(brandID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&campaigns).Error
	return campaigns, err
}

// ReplaceCampaigns 用目标列表对齐品牌的营销活动集合
func (s *CampaignService) ReplaceCampaigns(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.Campaign{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// AddCampaign 新增单个营销活动
func (s *CampaignService) AddCampaign(brandID string, item map[string]interface{}) (map[string]interface{}, error) {
	row, err := s.rec.AddItem(models.Campaign{}.TableName(), brandID, item, nil)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBrand(brandID)
	return row, nil
}

// UpdateCampaign 更新单个营销活动
func (s *CampaignService) UpdateCampaign(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.Campaign{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeleteCampaign 删除单个营销活动
func (s *CampaignService) DeleteCampaign(brandID, id string) error {
	if err := s.rec.DeleteItem(models.Campaign{}.TableName(), id); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderCampaigns 按传入id顺序持久化活动排序
func (s *CampaignService) ReorderCampaigns(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.Campaign{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
