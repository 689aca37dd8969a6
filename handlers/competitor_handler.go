package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CompetitorHandler 竞争对手控制器
type CompetitorHandler struct {
	service *services.CompetitorService
}

// NewCompetitorHandler 创建竞争对手控制器
func NewCompetitorHandler(db *gorm.DB, cache *utils.QueryCache) *CompetitorHandler {
	return &CompetitorHandler{
		service: services.NewCompetitorService(db, cache),
	}
}

// GetCompetitors 获取品牌的竞争对手列表
func (h *CompetitorHandler) GetCompetitors(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetCompetitors(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取竞争对手列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取竞争对手列表成功")
}

// ReplaceCompetitors 用提交的列表整体保存品牌的竞争对手
func (h *CompetitorHandler) ReplaceCompetitors(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplaceCompetitors(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "竞争对手列表保存成功")
}

// CreateCompetitor 新增单个竞争对手
func (h *CompetitorHandler) CreateCompetitor(c *gin.Context) {
	brandID := c.Param("id")

	var item map[string]interface{}
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	row, err := h.service.AddCompetitor(brandID, item)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": row}, "竞争对手创建成功")
}

// UpdateCompetitor 更新单个竞争对手
func (h *CompetitorHandler) UpdateCompetitor(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdateCompetitor(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "竞争对手不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "竞争对手更新成功")
}

// DeleteCompetitor 删除单个竞争对手
func (h *CompetitorHandler) DeleteCompetitor(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeleteCompetitor(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "竞争对手不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "竞争对手删除成功")
}

// ReorderCompetitors 保存竞争对手的新排序
func (h *CompetitorHandler) ReorderCompetitors(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderCompetitors(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "竞争对手排序保存成功")
}
