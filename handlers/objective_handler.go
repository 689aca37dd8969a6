package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ObjectiveHandler 品牌目标控制器
type ObjectiveHandler struct {
	service *services.ObjectiveService
}

// NewObjectiveHandler 创建品牌目标控制器
func NewObjectiveHandler(db *gorm.DB, cache *utils.QueryCache) *ObjectiveHandler {
	return &ObjectiveHandler{
		service: services.NewObjectiveService(db, cache),
	}
}

// GetObjectives 获取品牌的品牌目标列表
func (h *ObjectiveHandler) GetObjectives(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetObjectives(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取品牌目标列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取品牌目标列表成功")
}

// ReplaceObjectives 用提交的列表整体保存品牌的品牌目标
func (h *ObjectiveHandler) ReplaceObjectives(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplaceObjectives(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "品牌目标列表保存成功")
}

// CreateObjective 新增单个品牌目标
func (h *ObjectiveHandler) CreateObjective(c *gin.Context) {
	brandID := c.Param("id")

	var item map[string]interface{}
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	row, err := h.service.AddObjective(brandID, item)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": row}, "品牌目标创建成功")
}

// UpdateObjective 更新单个品牌目标
func (h *ObjectiveHandler) UpdateObjective(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdateObjective(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "品牌目标不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "品牌目标更新成功")
}

// DeleteObjective 删除单个品牌目标
func (h *ObjectiveHandler) DeleteObjective(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeleteObjective(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "品牌目标不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "品牌目标删除成功")
}

// ReorderObjectives 保存品牌目标的新排序
func (h *ObjectiveHandler) ReorderObjectives(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderObjectives(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "品牌目标排序保存成功")
}
