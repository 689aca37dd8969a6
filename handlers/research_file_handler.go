package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResearchFileHandler 调研文件控制器
type ResearchFileHandler struct {
	service *services.ResearchFileService
}

// NewResearchFileHandler 创建调研文件控制器
func NewResearchFileHandler(db *gorm.DB, cfg *config.Config, cache *utils.QueryCache) *ResearchFileHandler {
	return &ResearchFileHandler{
		service: services.NewResearchFileService(db, cfg, cache),
	}
}

// GetResearchFiles 获取品牌的调研文件列表
func (h *ResearchFileHandler) GetResearchFiles(c *gin.Context) {
	brandID := c.Param("id")

	files, err := h.service.GetResearchFiles(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取调研文件列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  files,
		"total": len(files),
	}, "获取调研文件列表成功")
}

// UploadResearchFile 上传调研文件
func (h *ResearchFileHandler) UploadResearchFile(c *gin.Context) {
	brandID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "缺少上传文件: "+err.Error())
		return
	}

	record, err := h.service.SaveResearchFile(c, brandID, fileHeader)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": record}, "调研文件上传成功")
}

// DeleteResearchFile 删除调研文件
func (h *ResearchFileHandler) DeleteResearchFile(c *gin.Context) {
	brandID := c.Param("id")
	fileID := c.Param("fileId")

	if err := h.service.DeleteResearchFile(brandID, fileID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "调研文件不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "调研文件删除成功")
}
