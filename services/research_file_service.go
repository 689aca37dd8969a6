package services

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResearchFileService 调研文件服务
type ResearchFileService struct {
	db        *gorm.DB
	cfg       *config.Config
	cache     *utils.QueryCache
	fileUtils *utils.FileUtils
}

// NewResearchFileService 创建调研文件服务实例
func NewResearchFileService(db *gorm.DB, cfg *config.Config, cache *utils.QueryCache) *ResearchFileService {
	return &ResearchFileService{
		db:        db,
		cfg:       cfg,
		cache:     cache,
		fileUtils: utils.NewFileUtils(),
	}
}

// GetResearchFiles 获取品牌的全部调研文件
func (s *ResearchFileService) GetResearchFiles(brandID string) ([]models.ResearchFile, error) {
	var files []models.ResearchFile
	err := s.db.Where("brand_id = ?", brandID).Order("created_at DESC").Find(&files).Error
	return files, err
}

// SaveResearchFile 保存上传的调研文件并落库
func (s *ResearchFileService) SaveResearchFile(c *gin.Context, brandID string, fileHeader *multipart.FileHeader) (*models.ResearchFile, error) {
	maxSize := s.cfg.Upload.MaxSizeMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, fmt.Errorf("file exceeds maximum size of %dMB", s.cfg.Upload.MaxSizeMB)
	}

	if err := s.fileUtils.EnsureDir(s.cfg.Upload.ResearchDir); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %v", err)
	}

	storedName := s.fileUtils.SafeStoredName(fileHeader.Filename)
	storedPath := s.cfg.GetResearchFilePath(storedName)

	if err := c.SaveUploadedFile(fileHeader, storedPath); err != nil {
		return nil, fmt.Errorf("failed to save uploaded file: %v", err)
	}

	record := models.ResearchFile{
		BrandID:     brandID,
		FileName:    fileHeader.Filename,
		StoredName:  storedName,
		FilePath:    storedPath,
		SizeBytes:   fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	if err := s.db.Create(&record).Error; err != nil {
		// 落库失败时清掉已写入磁盘的文件
		if removeErr := s.fileUtils.RemoveFileIfExists(storedPath); removeErr != nil {
			log.Printf("⚠️ 清理上传文件失败: %s - %v", storedPath, removeErr)
		}
		return nil, fmt.Errorf("failed to record research file: %v", err)
	}

	s.cache.InvalidateBrand(brandID)
	log.Printf("✅ 调研文件上传成功: brand=%s file=%s", brandID, fileHeader.Filename)
	return &record, nil
}

// DeleteResearchFile 删除调研文件记录及磁盘文件
func (s *ResearchFileService) DeleteResearchFile(brandID, id string) error {
	var record models.ResearchFile
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return err
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return fmt.Errorf("failed to delete research file record: %v", err)
	}

	if err := s.fileUtils.RemoveFileIfExists(record.FilePath); err != nil {
		log.Printf("⚠️ 删除调研文件失败: %s - %v", record.FilePath, err)
	}

	s.cache.InvalidateBrand(brandID)
	return nil
}
