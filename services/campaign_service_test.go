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

func newCampaignService(t *testing.T) (*CampaignService, *utils.QueryCache, *gorm.DB, string) {
	t.Helper()

	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	cache := utils.NewQueryCache(time.Minute)
	return NewCampaignService(db, cache), cache, db, brandID
}

func TestReplaceCampaigns_InvalidatesBrandCache(t *testing.T) {
	svc, cache, _, brandID := newCampaignService(t)

	cache.Set(utils.BrandKey(brandID, "dashboard"), "stale")
	cache.Set(utils.BrandKey("other-brand", "dashboard"), "keep")

	result, err := svc.ReplaceCampaigns(brandID, []map[string]interface{}{
		{"name": "Summer Launch", "channel": "social"},
		{"name": "Newsletter", "channel": "email"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	// 写入后本品牌缓存失效，其他品牌不受影响
	_, ok := cache.Get(utils.BrandKey(brandID, "dashboard"))
	assert.False(t, ok)
	_, ok = cache.Get(utils.BrandKey("other-brand", "dashboard"))
	assert.True(t, ok)

	campaigns, err := svc.GetCampaigns(brandID)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "Summer Launch", campaigns[0].Name)
	assert.Equal(t, "Newsletter", campaigns[1].Name)
}

func TestCampaignSingleItemMutations(t *testing.T) {
	svc, _, db, brandID := newCampaignService(t)

	row, err := svc.AddCampaign(brandID, map[string]interface{}{
		"name":    "Summer Launch",
		"channel": "social",
	})
	require.NoError(t, err)
	id, ok := row["id"].(string)
	require.True(t, ok)

	require.NoError(t, svc.UpdateCampaign(brandID, id, map[string]interface{}{
		"status": "active",
	}))

	var campaign models.Campaign
	require.NoError(t, db.First(&campaign, "id = ?", id).Error)
	assert.Equal(t, "active", campaign.Status)

	second, err := svc.AddCampaign(brandID, map[string]interface{}{
		"name":    "Newsletter",
		"channel": "email",
	})
	require.NoError(t, err)
	secondID := second["id"].(string)

	require.NoError(t, svc.ReorderCampaigns(brandID, []string{secondID, id}))
	campaigns, err := svc.GetCampaigns(brandID)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, secondID, campaigns[0].ID)

	require.NoError(t, svc.DeleteCampaign(brandID, id))
	campaigns, err = svc.GetCampaigns(brandID)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, secondID, campaigns[0].ID)
}
