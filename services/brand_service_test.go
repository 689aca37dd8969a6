package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBrandService(t *testing.T) (*BrandService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewBrandService(db, utils.NewQueryCache(time.Minute)), db
}

func TestCreateBrand_SlugConflict(t *testing.T) {
	svc, _ := newBrandService(t)

	_, err := svc.CreateBrand("acme", "Acme", "EMEA", "Consumer Goods")
	require.NoError(t, err)

	_, err = svc.CreateBrand("acme", "Another Acme", "NA", "Retail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug already exists")
}

func TestGetBrandBySlug_PreloadsChildren(t *testing.T) {
	svc, db := newBrandService(t)

	brand, err := svc.CreateBrand("acme", "Acme", "EMEA", "Consumer Goods")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Campaign{BrandID: brand.ID, Name: "Summer Launch", Channel: "social"}).Error)
	require.NoError(t, db.Create(&models.Persona{BrandID: brand.ID, Name: "Urban Professional"}).Error)

	loaded, err := svc.GetBrandBySlug("acme")
	require.NoError(t, err)
	assert.Equal(t, brand.ID, loaded.ID)
	require.Len(t, loaded.Campaigns, 1)
	assert.Equal(t, "Summer Launch", loaded.Campaigns[0].Name)
	require.Len(t, loaded.Personas, 1)
}

func TestGetBrandBySlug_NotFound(t *testing.T) {
	svc, _ := newBrandService(t)

	_, err := svc.GetBrandBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateBrand_SlugConflictWithOtherBrand(t *testing.T) {
	svc, _ := newBrandService(t)

	_, err := svc.CreateBrand("acme", "Acme", "", "")
	require.NoError(t, err)
	other, err := svc.CreateBrand("globex", "Globex", "", "")
	require.NoError(t, err)

	_, err = svc.UpdateBrand(other.ID, map[string]interface{}{"slug": "acme"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug already exists")

	// 自己保留原slug不算冲突
	updated, err := svc.UpdateBrand(other.ID, map[string]interface{}{"slug": "globex", "name": "Globex Corp"})
	require.NoError(t, err)

	reloaded, err := svc.GetBrandByID(updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", reloaded.Name)
}

func TestDeleteBrand_GuardedByChildren(t *testing.T) {
	svc, db := newBrandService(t)

	brand, err := svc.CreateBrand("acme", "Acme", "", "")
	require.NoError(t, err)
	campaign := models.Campaign{BrandID: brand.ID, Name: "Summer Launch"}
	require.NoError(t, db.Create(&campaign).Error)

	err = svc.DeleteBrand(brand.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete brand")

	// 清掉活动后可以删除，剩余子表行级联清理
	require.NoError(t, db.Delete(&campaign).Error)
	require.NoError(t, db.Create(&models.Persona{BrandID: brand.ID, Name: "Urban Professional"}).Error)
	require.NoError(t, svc.DeleteBrand(brand.ID))

	_, err = svc.GetBrandByID(brand.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var personaCount int64
	db.Model(&models.Persona{}).Where("brand_id = ?", brand.ID).Count(&personaCount)
	assert.Zero(t, personaCount)
}

func TestGetAllBrands_CacheInvalidatedByCreate(t *testing.T) {
	svc, _ := newBrandService(t)

	_, err := svc.CreateBrand("acme", "Acme", "", "")
	require.NoError(t, err)

	brands, err := svc.GetAllBrands()
	require.NoError(t, err)
	require.Len(t, brands, 1)

	// 新建品牌要把列表缓存打掉，后续读取能看到两条
	_, err = svc.CreateBrand("globex", "Globex", "", "")
	require.NoError(t, err)

	brands, err = svc.GetAllBrands()
	require.NoError(t, err)
	assert.Len(t, brands, 2)
}

func TestExportBrand(t *testing.T) {
	svc, db := newBrandService(t)

	brand, err := svc.CreateBrand("acme", "Acme", "EMEA", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Campaign{BrandID: brand.ID, Name: "Summer Launch"}).Error)

	data, err := svc.ExportBrand(brand.ID)
	require.NoError(t, err)

	var exported map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, "acme", exported["slug"])
	campaigns, ok := exported["campaigns"].([]interface{})
	require.True(t, ok)
	assert.Len(t, campaigns, 1)
}
