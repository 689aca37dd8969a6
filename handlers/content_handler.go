package handlers

import (
	"log"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentHandler 内容素材控制器
type ContentHandler struct {
	service   *services.ContentService
	cfg       *config.Config
	fileUtils *utils.FileUtils
}

// NewContentHandler 创建内容素材控制器
func NewContentHandler(db *gorm.DB, cfg *config.Config, cache *utils.QueryCache) *ContentHandler {
	return &ContentHandler{
		service:   services.NewContentService(db, cache),
		cfg:       cfg,
		fileUtils: utils.NewFileUtils(),
	}
}

// GetContentItems 获取品牌的内容素材列表
func (h *ContentHandler) GetContentItems(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetContentItems(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取内容素材列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取内容素材列表成功")
}

// ReplaceContentItems 用提交的列表整体保存品牌的内容素材
func (h *ContentHandler) ReplaceContentItems(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplaceContentItems(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "内容素材列表保存成功")
}

// UploadContentAsset 上传内容素材文件并创建素材记录
func (h *ContentHandler) UploadContentAsset(c *gin.Context) {
	brandID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "缺少上传文件: "+err.Error())
		return
	}

	maxSize := h.cfg.Upload.MaxSizeMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		utils.BadRequest(c, "文件超过大小限制")
		return
	}

	if err := h.fileUtils.EnsureDir(h.cfg.Upload.AssetDir); err != nil {
		utils.InternalServerError(c, "上传目录创建失败: "+err.Error())
		return
	}

	storedName := h.fileUtils.SafeStoredName(fileHeader.Filename)
	storedPath := h.cfg.GetAssetFilePath(storedName)
	if err := c.SaveUploadedFile(fileHeader, storedPath); err != nil {
		utils.InternalServerError(c, "文件保存失败: "+err.Error())
		return
	}

	item := models.ContentItem{
		BrandID:     brandID,
		Title:       c.DefaultPostForm("title", fileHeader.Filename),
		ContentType: c.PostForm("content_type"),
		Channel:     c.PostForm("channel"),
		FileName:    fileHeader.Filename,
		FilePath:    storedPath,
	}

	if err := h.service.CreateContentItem(&item); err != nil {
		if removeErr := h.fileUtils.RemoveFileIfExists(storedPath); removeErr != nil {
			log.Printf("⚠️ 清理素材文件失败: %s - %v", storedPath, removeErr)
		}
		utils.InternalServerError(c, "素材记录创建失败: "+err.Error())
		return
	}

	utils.Created(c, gin.H{"data": item}, "内容素材上传成功")
}

// UpdateContentItem 更新单个内容素材
func (h *ContentHandler) UpdateContentItem(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdateContentItem(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "内容素材不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "内容素材更新成功")
}

// DeleteContentItem 删除单个内容素材
func (h *ContentHandler) DeleteContentItem(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeleteContentItem(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "内容素材不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "内容素材删除成功")
}

// ReorderContentItems 保存内容素材的新排序
func (h *ContentHandler) ReorderContentItems(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderContentItems(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "内容素材排序保存成功")
}
