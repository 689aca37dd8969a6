package services

import (
	"fmt"
	"log"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// MarketAnalysisService 市场分析服务
// 每个品牌只有一条市场分析记录，更新走按品牌upsert。
type MarketAnalysisService struct {
	db    *gorm.DB
	cache *utils.QueryCache
}

// NewMarketAnalysisService 创建市场分析服务实例
func NewMarketAnalysisService(db *gorm.DB, cache *utils.QueryCache) *MarketAnalysisService {
	return &MarketAnalysisService{db: db, cache: cache}
}

// GetMarketAnalysis 获取品牌的市场分析
func (s *MarketAnalysisService) GetMarketAnalysis(brandID string) (*models.MarketAnalysis, error) {
	var analysis models.MarketAnalysis
	if err := s.db.Where("brand_id = ?", brandID).First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

// UpsertMarketAnalysis 按品牌更新市场分析，记录不存在时创建
func (s *MarketAnalysisService) UpsertMarketAnalysis(brandID string, analysis models.MarketAnalysis) (*models.MarketAnalysis, error) {
	var existing models.MarketAnalysis
	err := s.db.Where("brand_id = ?", brandID).First(&existing).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// 记录不存在，创建新记录
			analysis.ID = ""
			analysis.BrandID = brandID
			if err := s.db.Create(&analysis).Error; err != nil {
				return nil, fmt.Errorf("failed to create market analysis: %v", err)
			}
			log.Printf("✅ 市场分析记录创建成功: brand=%s", brandID)
			s.cache.InvalidateBrand(brandID)
			return &analysis, nil
		}
		return nil, fmt.Errorf("failed to check existing market analysis: %v", err)
	}

	// 记录存在，更新记录
	updates := map[string]interface{}{
		"market_size": analysis.MarketSize,
		"growth_rate": analysis.GrowthRate,
		"trends":      analysis.Trends,
		"summary":     analysis.Summary,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update market analysis: %v", err)
	}

	log.Printf("✅ 市场分析记录更新成功: brand=%s", brandID)
	s.cache.InvalidateBrand(brandID)
	return &existing, nil
}

// DeleteMarketAnalysis 删除品牌的市场分析记录
func (s *MarketAnalysisService) DeleteMarketAnalysis(brandID string) error {
	if err := s.db.Where("brand_id = ?", brandID).Delete(&models.MarketAnalysis{}).Error; err != nil {
		return fmt.Errorf("failed to delete market analysis: %v", err)
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
