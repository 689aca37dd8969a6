package services

import (
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"

	"gorm.io/gorm"
)

// StaticBrandProvider 内置演示品牌数据实现
// 用于无数据库的演示/开发环境，数据只读。
type StaticBrandProvider struct {
	brands []models.Brand
}

// NewStaticBrandProvider 创建演示数据实现
func NewStaticBrandProvider() *StaticBrandProvider {
	return &StaticBrandProvider{brands: demoBrands()}
}

// ListBrands 获取所有演示品牌
func (p *StaticBrandProvider) ListBrands() ([]models.Brand, error) {
	brands := make([]models.Brand, len(p.brands))
	copy(brands, p.brands)
	return brands, nil
}

// GetBrandBySlug 根据slug获取演示品牌
func (p *StaticBrandProvider) GetBrandBySlug(slug string) (*models.Brand, error) {
	for i := range p.brands {
		if p.brands[i].Slug == slug {
			brand := p.brands[i]
			return &brand, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// demoBrands 构造演示品牌数据
func demoBrands() []models.Brand {
	now := time.Now()

	ecoHome := models.Brand{
		ID:              "11111111-1111-1111-1111-111111111111",
		Slug:            "ecohome",
		Name:            "EcoHome",
		Region:          "EMEA",
		BusinessArea:    "Sustainable Consumer Goods",
		SalesFigures:    "€2.3M",
		VoiceAttributes: `["warm","trustworthy","practical"]`,
		CreatedAt:       now,
		UpdatedAt:       now,
		Campaigns: []models.Campaign{
			{
				ID:                 "21111111-1111-1111-1111-111111111111",
				BrandID:            "11111111-1111-1111-1111-111111111111",
				Name:               "Green Spring Launch",
				Channel:            "social",
				Status:             "active",
				Budget:             "€120K",
				EffectivenessScore: 78,
				OrderIndex:         0,
			},
			{
				ID:                 "21111111-1111-1111-1111-111111111112",
				BrandID:            "11111111-1111-1111-1111-111111111111",
				Name:               "Earth Day Email Series",
				Channel:            "email",
				Status:             "completed",
				Budget:             "€35K",
				EffectivenessScore: 84,
				OrderIndex:         1,
			},
		},
		Personas: []models.Persona{
			{
				ID:                 "31111111-1111-1111-1111-111111111111",
				BrandID:            "11111111-1111-1111-1111-111111111111",
				Name:               "Conscious Clara",
				AgeRange:           "28-40",
				Description:        "Urban professional prioritising sustainability",
				Interests:          `["recycling","minimalism","outdoor"]`,
				EffectivenessScore: 72,
				OrderIndex:         0,
			},
		},
		SwotEntries: []models.SwotEntry{
			{
				ID:       "41111111-1111-1111-1111-111111111111",
				BrandID:  "11111111-1111-1111-1111-111111111111",
				Category: models.SwotCategoryStrength,
				Text:     "Strong sustainability credentials",
			},
			{
				ID:       "41111111-1111-1111-1111-111111111112",
				BrandID:  "11111111-1111-1111-1111-111111111111",
				Category: models.SwotCategoryThreat,
				Text:     "Growing competition from private labels",
			},
		},
	}

	techNova := models.Brand{
		ID:              "12222222-2222-2222-2222-222222222222",
		Slug:            "technova",
		Name:            "TechNova",
		Region:          "NA",
		BusinessArea:    "Consumer Electronics",
		SalesFigures:    "$8.7M",
		VoiceAttributes: `["bold","innovative","direct"]`,
		CreatedAt:       now,
		UpdatedAt:       now,
		Campaigns: []models.Campaign{
			{
				ID:                 "22222222-2222-2222-2222-222222222221",
				BrandID:            "12222222-2222-2222-2222-222222222222",
				Name:               "Nova X Launch",
				Channel:            "display",
				Status:             "active",
				Budget:             "$250K",
				EffectivenessScore: 66,
				OrderIndex:         0,
			},
		},
	}

	return []models.Brand{ecoHome, techNova}
}
