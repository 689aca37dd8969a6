package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MessageHandler 品牌信息控制器
type MessageHandler struct {
	service *services.MessageService
}

// NewMessageHandler 创建品牌信息控制器
func NewMessageHandler(db *gorm.DB, cache *utils.QueryCache) *MessageHandler {
	return &MessageHandler{
		service: services.NewMessageService(db, cache),
	}
}

// GetMessages 获取品牌的品牌信息列表
func (h *MessageHandler) GetMessages(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetMessages(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取品牌信息列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取品牌信息列表成功")
}

// ReplaceMessages 用提交的列表整体保存品牌的品牌信息
func (h *MessageHandler) ReplaceMessages(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplaceMessages(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "品牌信息列表保存成功")
}

// CreateMessage 新增单个品牌信息
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	brandID := c.Param("id")

	var item map[string]interface{}
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	row, err := h.service.AddMessage(brandID, item)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": row}, "品牌信息创建成功")
}

// UpdateMessage 更新单个品牌信息
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdateMessage(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "品牌信息不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "品牌信息更新成功")
}

// DeleteMessage 删除单个品牌信息
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeleteMessage(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "品牌信息不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "品牌信息删除成功")
}

// ReorderMessages 保存品牌信息的新排序
func (h *MessageHandler) ReorderMessages(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderMessages(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "品牌信息排序保存成功")
}
