package services

import (
	"log"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// ContentService 内容素材服务
type ContentService struct {
	db    *gorm.DB
	rec   *ReconcileService
	cache *utils.QueryCache
}

// NewContentService 创建内容素材服务实例
func NewContentService(db *gorm.DB, cache *utils.QueryCache) *ContentService {
	return &ContentService{
		db:    db,
		rec:   NewReconcileService(db),
		cache: cache,
	}
}

// GetContentItems 获取品牌的全部内容素材
func (s *ContentService) GetContentItems(brandID string) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := s.db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&items).Error
	return items, err
}

// GetContentItem 获取单个内容素材
func (s *ContentService) GetContentItem(id string) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ReplaceContentItems 用目标列表对齐品牌的内容素材集合
func (s *ContentService) ReplaceContentItems(brandID string, items []map[string]interface{}) (*ReconcileResult, error) {
	result, err := s.rec.Reconcile(models.ContentItem{}.TableName(), brandID, items, nil)
	if err != nil {
		return result, err
	}
	s.cache.InvalidateBrand(brandID)
	return result, nil
}

// CreateContentItem 创建内容素材记录（素材文件上传后调用）
func (s *ContentService) CreateContentItem(item *models.ContentItem) error {
	if item.Status == "" {
		item.Status = models.ContentStatusPending
	}

	// 新素材排在列表末尾
	var count int64
	if err := s.db.Model(&models.ContentItem{}).Where("brand_id = ?", item.BrandID).Count(&count).Error; err != nil {
		return err
	}
	item.OrderIndex = int(count)

	if err := s.db.Create(item).Error; err != nil {
		return err
	}
	s.cache.InvalidateBrand(item.BrandID)
	return nil
}

// UpdateContentItem 更新单个内容素材
func (s *ContentService) UpdateContentItem(brandID, id string, fields map[string]interface{}) error {
	if err := s.rec.UpdateItem(models.ContentItem{}.TableName(), id, fields); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}

// DeleteContentItem 删除单个内容素材及其磁盘文件
func (s *ContentService) DeleteContentItem(brandID, id string) error {
	item, err := s.GetContentItem(id)
	if err != nil {
		return err
	}

	if err := s.rec.DeleteItem(models.ContentItem{}.TableName(), id); err != nil {
		return err
	}

	if item.FilePath != "" {
		fileUtils := utils.NewFileUtils()
		if err := fileUtils.RemoveFileIfExists(item.FilePath); err != nil {
			// 数据库记录已删除，文件残留只记日志不回滚
			log.Printf("⚠️ 删除素材文件失败: %s - %v", item.FilePath, err)
		}
	}

	s.cache.InvalidateBrand(brandID)
	return nil
}

// ReorderContentItems 按传入id顺序持久化内容素材排序
func (s *ContentService) ReorderContentItems(brandID string, ids []string) error {
	if err := s.rec.ReorderItems(models.ContentItem{}.TableName(), ids, nil); err != nil {
		return err
	}
	s.cache.InvalidateBrand(brandID)
	return nil
}
