package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SwotHandler SWOT条目控制器
type SwotHandler struct {
	service *services.SwotService
}

// NewSwotHandler 创建SWOT条目控制器
func NewSwotHandler(db *gorm.DB, cache *utils.QueryCache) *SwotHandler {
	return &SwotHandler{
		service: services.NewSwotService(db, cache),
	}
}

// GetSwotEntries 获取品牌的SWOT条目列表
func (h *SwotHandler) GetSwotEntries(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetSwotEntries(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取SWOT条目列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取SWOT条目列表成功")
}

// ReplaceSwotEntries 用提交的列表整体保存品牌的SWOT条目
func (h *SwotHandler) ReplaceSwotEntries(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplaceSwotEntries(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "SWOT条目列表保存成功")
}

// CreateSwotEntry 新增单个SWOT条目
func (h *SwotHandler) CreateSwotEntry(c *gin.Context) {
	brandID := c.Param("id")

	var item map[string]interface{}
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	row, err := h.service.AddSwotEntry(brandID, item)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": row}, "SWOT条目创建成功")
}

// UpdateSwotEntry 更新单个SWOT条目
func (h *SwotHandler) UpdateSwotEntry(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdateSwotEntry(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "SWOT条目不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "SWOT条目更新成功")
}

// DeleteSwotEntry 删除单个SWOT条目
func (h *SwotHandler) DeleteSwotEntry(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeleteSwotEntry(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "SWOT条目不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "SWOT条目删除成功")
}

// ReorderSwotEntries 保存SWOT条目的新排序
func (h *SwotHandler) ReorderSwotEntries(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderSwotEntries(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "SWOT条目排序保存成功")
}
