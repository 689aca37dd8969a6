package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CampaignHandler 营销活动控制器
type CampaignHandler struct {
	service *services.CampaignService
}

// NewCampaignHandler 创建营销活动控制器
func NewCampaignHandler(db *gorm.DB, cache *utils.QueryCache) *CampaignHandler {
	return &CampaignHandler{
		service: services.NewCampaignService(db, cache),
	}
}

// GetCampaigns 获取品牌的营销活动列表
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetCampaigns(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取营销活动列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取营销活动列表成功")
}

// ReplaceCampaigns 用提交的列表整体保存品牌的营销活动
func (h *CampaignHandler) ReplaceCampaigns(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplaceCampaigns(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "营销活动列表保存成功")
}

// CreateCampaign 新增单个营销活动
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	brandID := c.Param("id")

	var item map[string]interface{}
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	row, err := h.service.AddCampaign(brandID, item)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": row}, "营销活动创建成功")
}

// UpdateCampaign 更新单个营销活动
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdateCampaign(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "营销活动不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "营销活动更新成功")
}

// DeleteCampaign 删除单个营销活动
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeleteCampaign(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "营销活动不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "营销活动删除成功")
}

// ReorderCampaigns 保存营销活动的新排序
func (h *CampaignHandler) ReorderCampaigns(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderCampaigns(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "营销活动排序保存成功")
}
