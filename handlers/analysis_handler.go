package handlers

import (
	"log"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalysisHandler 内容分析控制器
type AnalysisHandler struct {
	service *services.AnalysisService
}

// NewAnalysisHandler 创建内容分析控制器
func NewAnalysisHandler(service *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// StartAnalysis 启动内容分析
func (h *AnalysisHandler) StartAnalysis(c *gin.Context) {
	contentID := c.Param("id")

	job, err := h.service.StartAnalysis(contentID)
	if err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			utils.NotFound(c, "内容素材不存在")
		case utils.ErrAnalysisAlreadyRunning:
			utils.Conflict(c, "该内容已有分析任务进行中")
		case utils.ErrTooManyAnalyses:
			utils.TooManyRequests(c, "分析任务过多，请稍后重试")
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	log.Printf("🔬 创建内容分析任务: %s (content=%s)", job.ID, contentID)

	utils.Success(c, gin.H{
		"jobId":     job.ID,
		"contentId": contentID,
	}, "分析任务已创建，可通过WebSocket或轮询获取进度")
}

// GetAnalysisStatus 查询内容分析状态
func (h *AnalysisHandler) GetAnalysisStatus(c *gin.Context) {
	contentID := c.Param("id")

	info, err := h.service.GetAnalysisStatus(contentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "内容素材不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"data": info}, "获取分析状态成功")
}

// CancelAnalysis 取消内容分析
func (h *AnalysisHandler) CancelAnalysis(c *gin.Context) {
	contentID := c.Param("id")

	if err := h.service.CancelAnalysis(contentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "内容素材不存在")
		} else {
			utils.BadRequest(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "分析任务已取消")
}
