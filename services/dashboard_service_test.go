package services

import (
	"testing"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDashboardData(t *testing.T, db *gorm.DB, brandID string) {
	t.Helper()

	campaigns := []models.Campaign{
		{BrandID: brandID, Name: "Summer Social", Channel: "social", EffectivenessScore: 80},
		{BrandID: brandID, Name: "Winter Social", Channel: "social", EffectivenessScore: 60},
		{BrandID: brandID, Name: "Newsletter", Channel: "email", EffectivenessScore: 90},
	}
	require.NoError(t, db.Create(&campaigns).Error)

	contents := []models.ContentItem{
		{BrandID: brandID, Title: "Hero Banner", Status: models.ContentStatusAnalyzed, Score: 70},
		{BrandID: brandID, Title: "Promo Video", Status: models.ContentStatusAnalyzed, Score: 90},
		{BrandID: brandID, Title: "Draft Post", Status: models.ContentStatusPending},
	}
	require.NoError(t, db.Create(&contents).Error)

	personas := []models.Persona{
		{BrandID: brandID, Name: "Urban Professional", EffectivenessScore: 75},
		{BrandID: brandID, Name: "Student", EffectivenessScore: 65, OrderIndex: 1},
	}
	require.NoError(t, db.Create(&personas).Error)
}

func TestGetDashboard_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	seedDashboardData(t, db, brandID)
	svc := NewDashboardService(db, utils.NewQueryCache(time.Minute))

	data, err := svc.GetDashboard(brandID)
	require.NoError(t, err)

	// 渠道按字母排序：email在前
	require.Len(t, data.CampaignScores, 2)
	assert.Equal(t, "email", data.CampaignScores[0].Channel)
	assert.InDelta(t, 90, data.CampaignScores[0].AvgScore, 0.001)
	assert.Equal(t, int64(1), data.CampaignScores[0].Count)
	assert.Equal(t, "social", data.CampaignScores[1].Channel)
	assert.InDelta(t, 70, data.CampaignScores[1].AvgScore, 0.001)
	assert.Equal(t, int64(2), data.CampaignScores[1].Count)

	statusCounts := make(map[string]int64)
	for _, sc := range data.ContentStatus {
		statusCounts[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(2), statusCounts[models.ContentStatusAnalyzed])
	assert.Equal(t, int64(1), statusCounts[models.ContentStatusPending])

	// 内容均分只统计已分析的
	assert.InDelta(t, 80, data.ContentAvgScore, 0.001)

	require.Len(t, data.PersonaScores, 2)
	assert.Equal(t, "Urban Professional", data.PersonaScores[0].Name)

	// 总分 = (渠道均分80 + 内容均分80 + 画像均分70) / 3
	assert.InDelta(t, 76.666, data.OverallScore, 0.01)
}

func TestGetDashboard_EmptyBrand(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	svc := NewDashboardService(db, utils.NewQueryCache(time.Minute))

	data, err := svc.GetDashboard(brandID)
	require.NoError(t, err)
	assert.Zero(t, data.OverallScore)
	assert.Empty(t, data.CampaignScores)
	assert.Zero(t, data.ContentAvgScore)
}

func TestGetDashboard_CacheInvalidation(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	cache := utils.NewQueryCache(time.Minute)
	svc := NewDashboardService(db, cache)

	first, err := svc.GetDashboard(brandID)
	require.NoError(t, err)
	assert.Zero(t, first.OverallScore)

	// 直接写库不会反映到缓存命中的结果里
	require.NoError(t, db.Create(&models.Campaign{BrandID: brandID, Name: "Launch", Channel: "social", EffectivenessScore: 50}).Error)
	cached, err := svc.GetDashboard(brandID)
	require.NoError(t, err)
	assert.Empty(t, cached.CampaignScores)

	// 品牌级失效后重新聚合
	cache.InvalidateBrand(brandID)
	fresh, err := svc.GetDashboard(brandID)
	require.NoError(t, err)
	require.Len(t, fresh.CampaignScores, 1)
	assert.InDelta(t, 50, fresh.CampaignScores[0].AvgScore, 0.001)
}
