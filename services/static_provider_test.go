package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStaticBrandProvider_ListBrands(t *testing.T) {
	provider := NewStaticBrandProvider()

	brands, err := provider.ListBrands()
	require.NoError(t, err)
	require.Len(t, brands, 2)

	slugs := []string{brands[0].Slug, brands[1].Slug}
	assert.Contains(t, slugs, "ecohome")
	assert.Contains(t, slugs, "technova")
}

func TestStaticBrandProvider_GetBrandBySlug(t *testing.T) {
	provider := NewStaticBrandProvider()

	brand, err := provider.GetBrandBySlug("ecohome")
	require.NoError(t, err)
	assert.Equal(t, "EcoHome", brand.Name)
	assert.NotEmpty(t, brand.Campaigns)
	assert.NotEmpty(t, brand.Personas)
	for _, campaign := range brand.Campaigns {
		assert.Equal(t, brand.ID, campaign.BrandID)
	}

	_, err = provider.GetBrandBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
