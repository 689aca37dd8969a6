package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentService(t *testing.T) (*ContentService, *gorm.DB, string) {
	t.Helper()

	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	return NewContentService(db, utils.NewQueryCache(time.Minute)), db, brandID
}

func TestCreateContentItem_AppendsAtEnd(t *testing.T) {
	svc, _, brandID := newContentService(t)

	first := models.ContentItem{BrandID: brandID, Title: "Hero Banner"}
	require.NoError(t, svc.CreateContentItem(&first))
	assert.Equal(t, models.ContentStatusPending, first.Status)
	assert.Equal(t, 0, first.OrderIndex)

	second := models.ContentItem{BrandID: brandID, Title: "Promo Video"}
	require.NoError(t, svc.CreateContentItem(&second))
	assert.Equal(t, 1, second.OrderIndex)

	items, err := svc.GetContentItems(brandID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hero Banner", items[0].Title)
	assert.Equal(t, "Promo Video", items[1].Title)
}

func TestDeleteContentItem_RemovesDiskFile(t *testing.T) {
	svc, _, brandID := newContentService(t)

	path := filepath.Join(t.TempDir(), "asset.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

	item := models.ContentItem{BrandID: brandID, Title: "Hero Banner", FilePath: path}
	require.NoError(t, svc.CreateContentItem(&item))

	require.NoError(t, svc.DeleteContentItem(brandID, item.ID))

	_, err := svc.GetContentItem(item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateContentItem(t *testing.T) {
	svc, _, brandID := newContentService(t)

	item := models.ContentItem{BrandID: brandID, Title: "Hero Banner"}
	require.NoError(t, svc.CreateContentItem(&item))

	require.NoError(t, svc.UpdateContentItem(brandID, item.ID, map[string]interface{}{
		"title":   "Hero Banner v2",
		"channel": "email",
	}))

	loaded, err := svc.GetContentItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hero Banner v2", loaded.Title)
	assert.Equal(t, "email", loaded.Channel)
}
