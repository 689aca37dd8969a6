package services

import (
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// ChannelScore 渠道维度的活动效果聚合
type ChannelScore struct {
	Channel  string  `json:"channel"`
	AvgScore float64 `json:"avg_score"`
	Count    int64   `json:"count"`
}

// StatusCount 内容按分析状态的数量分布
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// PersonaScore 受众画像的触达效果
type PersonaScore struct {
	Name     string  `json:"name"`
	AvgScore float64 `json:"avg_score"`
}

// DashboardData 仪表盘聚合数据
type DashboardData struct {
	BrandID         string         `json:"brand_id"`
	OverallScore    float64        `json:"overall_score"`
	CampaignScores  []ChannelScore `json:"campaign_scores"`
	ContentStatus   []StatusCount  `json:"content_status"`
	ContentAvgScore float64        `json:"content_avg_score"`
	PersonaScores   []PersonaScore `json:"persona_scores"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// DashboardService 仪表盘聚合服务
// 聚合结果进查询缓存，品牌任一数据变更后按品牌前缀整体失效。
type DashboardService struct {
	db    *gorm.DB
	cache *utils.QueryCache
}

// NewDashboardService 创建仪表盘服务实例
func NewDashboardService(db *gorm.DB, cache *utils.QueryCache) *DashboardService {
	return &DashboardService{db: db, cache: cache}
}

// GetDashboard 获取品牌的仪表盘聚合数据
func (s *DashboardService) GetDashboard(brandID string) (*DashboardData, error) {
	cacheKey := utils.BrandKey(brandID, "dashboard")
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*DashboardData), nil
	}

	data := &DashboardData{
		BrandID:     brandID,
		GeneratedAt: time.Now(),
	}

	// 活动效果按渠道聚合
	err := s.db.Model(&models.Campaign{}).
		Select("channel, AVG(effectiveness_score) as avg_score, COUNT(*) as count").
		Where("brand_id = ?", brandID).
		Group("channel").
		Order("channel ASC").
		Scan(&data.CampaignScores).Error
	if err != nil {
		return nil, err
	}

	// 内容按分析状态分布
	err = s.db.Model(&models.ContentItem{}).
		Select("status, COUNT(*) as count").
		Where("brand_id = ?", brandID).
		Group("status").
		Scan(&data.ContentStatus).Error
	if err != nil {
		return nil, err
	}

	// 已分析内容的平均得分
	var contentAvg struct{ AvgScore float64 }
	err = s.db.Model(&models.ContentItem{}).
		Select("COALESCE(AVG(score), 0) as avg_score").
		Where("brand_id = ? AND status = ?", brandID, models.ContentStatusAnalyzed).
		Scan(&contentAvg).Error
	if err != nil {
		return nil, err
	}
	data.ContentAvgScore = contentAvg.AvgScore

	// 受众画像效果
	err = s.db.Model(&models.Persona{}).
		Select("name, effectiveness_score as avg_score").
		Where("brand_id = ?", brandID).
		Order("order_index ASC").
		Scan(&data.PersonaScores).Error
	if err != nil {
		return nil, err
	}

	data.OverallScore = overallScore(data)

	s.cache.Set(cacheKey, data)
	return data, nil
}

// overallScore 品牌总评分：有数据的维度取平均
func overallScore(data *DashboardData) float64 {
	var sum float64
	var parts int

	if len(data.CampaignScores) > 0 {
		var campaignSum float64
		for _, cs := range data.CampaignScores {
			campaignSum += cs.AvgScore
		}
		sum += campaignSum / float64(len(data.CampaignScores))
		parts++
	}

	if data.ContentAvgScore > 0 {
		sum += data.ContentAvgScore
		parts++
	}

	if len(data.PersonaScores) > 0 {
		var personaSum float64
		for _, ps := range data.PersonaScores {
			personaSum += ps.AvgScore
		}
		sum += personaSum / float64(len(data.PersonaScores))
		parts++
	}

	if parts == 0 {
		return 0
	}
	return sum / float64(parts)
}
