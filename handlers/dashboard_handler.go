package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler 仪表盘控制器
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler 创建仪表盘控制器
func NewDashboardHandler(db *gorm.DB, cache *utils.QueryCache) *DashboardHandler {
	return &DashboardHandler{
		service: services.NewDashboardService(db, cache),
	}
}

// GetDashboard 获取品牌的仪表盘聚合数据
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	brandID := c.Param("id")

	data, err := h.service.GetDashboard(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取仪表盘数据失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{"data": data}, "获取仪表盘数据成功")
}
