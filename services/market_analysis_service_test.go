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

func TestUpsertMarketAnalysis(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	svc := NewMarketAnalysisService(db, utils.NewQueryCache(time.Minute))

	// 首次upsert创建记录
	created, err := svc.UpsertMarketAnalysis(brandID, models.MarketAnalysis{
		MarketSize: "€4.2B",
		GrowthRate: "5% YoY",
		Summary:    "growing market",
	})
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)
	assert.Equal(t, brandID, created.BrandID)

	// 再次upsert更新原记录而不是新增
	updated, err := svc.UpsertMarketAnalysis(brandID, models.MarketAnalysis{
		MarketSize: "€4.5B",
		GrowthRate: "6% YoY",
		Summary:    "accelerating",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	var count int64
	db.Model(&models.MarketAnalysis{}).Where("brand_id = ?", brandID).Count(&count)
	assert.Equal(t, int64(1), count)

	loaded, err := svc.GetMarketAnalysis(brandID)
	require.NoError(t, err)
	assert.Equal(t, "€4.5B", loaded.MarketSize)
	assert.Equal(t, "accelerating", loaded.Summary)
}

func TestDeleteMarketAnalysis(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	svc := NewMarketAnalysisService(db, utils.NewQueryCache(time.Minute))

	_, err := svc.UpsertMarketAnalysis(brandID, models.MarketAnalysis{MarketSize: "€1B"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMarketAnalysis(brandID))

	_, err = svc.GetMarketAnalysis(brandID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
