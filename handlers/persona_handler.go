package handlers

import (
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PersonaHandler 受众画像控制器
type PersonaHandler struct {
	service *services.PersonaService
}

// NewPersonaHandler 创建受众画像控制器
func NewPersonaHandler(db *gorm.DB, cache *utils.QueryCache) *PersonaHandler {
	return &PersonaHandler{
		service: services.NewPersonaService(db, cache),
	}
}

// GetPersonas 获取品牌的受众画像列表
func (h *PersonaHandler) GetPersonas(c *gin.Context) {
	brandID := c.Param("id")

	items, err := h.service.GetPersonas(brandID)
	if err != nil {
		utils.InternalServerError(c, "获取受众画像列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  items,
		"total": len(items),
	}, "获取受众画像列表成功")
}

// ReplacePersonas 用提交的列表整体保存品牌的受众画像
func (h *PersonaHandler) ReplacePersonas(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		Items []map[string]interface{} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	result, err := h.service.ReplacePersonas(brandID, req.Items)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"data": result}, "受众画像列表保存成功")
}

// CreatePersona 新增单个受众画像
func (h *PersonaHandler) CreatePersona(c *gin.Context) {
	brandID := c.Param("id")

	var item map[string]interface{}
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	row, err := h.service.AddPersona(brandID, item)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": row}, "受众画像创建成功")
}

// UpdatePersona 更新单个受众画像
func (h *PersonaHandler) UpdatePersona(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.UpdatePersona(brandID, itemID, fields); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "受众画像不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "受众画像更新成功")
}

// DeletePersona 删除单个受众画像
func (h *PersonaHandler) DeletePersona(c *gin.Context) {
	brandID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.service.DeletePersona(brandID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "受众画像不存在")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, nil, "受众画像删除成功")
}

// ReorderPersonas 保存受众画像的新排序
func (h *PersonaHandler) ReorderPersonas(c *gin.Context) {
	brandID := c.Param("id")

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if err := h.service.ReorderPersonas(brandID, req.IDs); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, nil, "受众画像排序保存成功")
}
