package services

import "github.com/dpinnington123/cimvp-dashboard-production-sub002/models"

// BrandProvider 品牌数据读取接口
// 组合期根据配置选定实现：数据库实现或内置演示数据实现，
// 调用方不感知数据来源。
type BrandProvider interface {
	ListBrands() ([]models.Brand, error)
	GetBrandBySlug(slug string) (*models.Brand, error)
}

// DatabaseBrandProvider 数据库品牌数据实现
type DatabaseBrandProvider struct {
	brandService *BrandService
}

// NewDatabaseBrandProvider 创建数据库品牌数据实现
func NewDatabaseBrandProvider(brandService *BrandService) *DatabaseBrandProvider {
	return &DatabaseBrandProvider{brandService: brandService}
}

// ListBrands 获取所有品牌
func (p *DatabaseBrandProvider) ListBrands() ([]models.Brand, error) {
	return p.brandService.GetAllBrands()
}

// GetBrandBySlug 根据slug获取品牌详情
func (p *DatabaseBrandProvider) GetBrandBySlug(slug string) (*models.Brand, error) {
	return p.brandService.GetBrandBySlug(slug)
}
