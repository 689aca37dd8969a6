package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// brandPreloads 品牌详情需要预加载的全部子集合
var brandPreloads = []string{
	"Campaigns", "Messages", "Objectives", "Personas",
	"Competitors", "Content", "SwotEntries", "MarketAnalysis", "ResearchFiles",
}

// BrandService 品牌服务
type BrandService struct {
	db    *gorm.DB
	cache *utils.QueryCache
}

// NewBrandService 创建品牌服务实例
func NewBrandService(db *gorm.DB, cache *utils.QueryCache) *BrandService {
	return &BrandService{db: db, cache: cache}
}

// GetAllBrands 获取所有品牌（不带子集合）
func (s *BrandService) GetAllBrands() ([]models.Brand, error) {
	if cached, ok := s.cache.Get("brands:list"); ok {
		return cached.([]models.Brand), nil
	}

	var brands []models.Brand
	if err := s.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}

	s.cache.Set("brands:list", brands)
	return brands, nil
}

// GetBrandByID 根据ID获取品牌详情
func (s *BrandService) GetBrandByID(id string) (*models.Brand, error) {
	return s.getBrand("id = ?", id)
}

// GetBrandBySlug 根据slug获取品牌详情（前端以slug为品牌主键）
func (s *BrandService) GetBrandBySlug(slug string) (*models.Brand, error) {
	return s.getBrand("slug = ?", slug)
}

// getBrand 按条件加载品牌及全部子集合
func (s *BrandService) getBrand(query string, arg interface{}) (*models.Brand, error) {
	var brand models.Brand
	db := s.db
	for _, preload := range brandPreloads {
		db = db.Preload(preload)
	}
	if err := db.Where(query, arg).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// CreateBrand 创建品牌
func (s *BrandService) CreateBrand(slug, name, region, businessArea string) (*models.Brand, error) {
	// 检查slug是否已被占用
	var existingBrand models.Brand
	if err := s.db.Where("slug = ?", slug).First(&existingBrand).Error; err == nil {
		return nil, errors.New("brand slug already exists")
	}

	brand := models.Brand{
		Slug:         slug,
		Name:         name,
		Region:       region,
		BusinessArea: businessArea,
	}

	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}

	s.cache.InvalidateBrand(brand.ID)
	return &brand, nil
}

// UpdateBrand 更新品牌基础信息
func (s *BrandService) UpdateBrand(id string, fields map[string]interface{}) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}

	// 检查新slug是否与其他品牌冲突
	if slug, ok := fields["slug"].(string); ok && slug != "" {
		var existingBrand models.Brand
		if err := s.db.Where("slug = ? AND id != ?", slug, id).First(&existingBrand).Error; err == nil {
			return nil, errors.New("brand slug already exists")
		}
	}

	delete(fields, "id")
	delete(fields, "created_at")
	if err := s.db.Model(&brand).Updates(fields).Error; err != nil {
		return nil, err
	}

	s.cache.InvalidateBrand(id)
	return &brand, nil
}

// DeleteBrand 删除品牌
func (s *BrandService) DeleteBrand(id string) error {
	// 仍有活动或内容的品牌不允许删除
	var campaignCount, contentCount int64
	s.db.Model(&models.Campaign{}).Where("brand_id = ?", id).Count(&campaignCount)
	s.db.Model(&models.ContentItem{}).Where("brand_id = ?", id).Count(&contentCount)
	if campaignCount > 0 || contentCount > 0 {
		return errors.New("cannot delete brand with existing campaigns or content")
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		return err
	}

	// 删除剩余子表行和品牌本身
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.BrandMessage{}, &models.Objective{}, &models.Persona{},
			&models.Competitor{}, &models.SwotEntry{}, &models.MarketAnalysis{},
			&models.ResearchFile{},
		} {
			if err := tx.Where("brand_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&brand).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete brand from database: %v", err)
	}

	s.cache.InvalidateBrand(id)
	return nil
}

// ExportBrand 导出品牌全量数据为JSON
func (s *BrandService) ExportBrand(id string) ([]byte, error) {
	brand, err := s.GetBrandByID(id)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(brand, "", "  ")
}
