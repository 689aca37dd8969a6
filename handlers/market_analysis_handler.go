package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MarketAnalysisHandler 市场分析控制器
type MarketAnalysisHandler struct {
	service *services.MarketAnalysisService
}

// NewMarketAnalysisHandler 创建市场分析控制器
func NewMarketAnalysisHandler(db *gorm.DB, cache *utils.QueryCache) *MarketAnalysisHandler {
	return &MarketAnalysisHandler{
		service: services.NewMarketAnalysisService(db, cache),
	}
}

// GetMarketAnalysis 获取品牌的市场分析
func (h *MarketAnalysisHandler) GetMarketAnalysis(c *gin.Context) {
	brandID := c.Param("id")

	analysis, err := h.service.GetMarketAnalysis(brandID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "市场分析不存在")
		} else {
			utils.InternalServerError(c, "获取市场分析失败: "+err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"data": analysis}, "获取市场分析成功")
}

// UpsertMarketAnalysis 保存品牌的市场分析（不存在时创建）
func (h *MarketAnalysisHandler) UpsertMarketAnalysis(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		MarketSize string `json:"market_size"`
		GrowthRate string `json:"growth_rate"`
		Trends     string `json:"trends"`
		Summary    string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	analysis, err := h.service.UpsertMarketAnalysis(brandID, models.MarketAnalysis{
		MarketSize: req.MarketSize,
		GrowthRate: req.GrowthRate,
		Trends:     req.Trends,
		Summary:    req.Summary,
	})
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": analysis}, "市场分析保存成功")
}

// DeleteMarketAnalysis 删除品牌的市场分析
func (h *MarketAnalysisHandler) DeleteMarketAnalysis(c *gin.Context) {
	brandID := c.Param("id")

	if err := h.service.DeleteMarketAnalysis(brandID); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "市场分析删除成功")
}
