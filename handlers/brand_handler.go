package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BrandHandler 品牌控制器
type BrandHandler struct {
	brandService *services.BrandService
	provider     services.BrandProvider
}

// NewBrandHandler 创建品牌控制器
func NewBrandHandler(brandService *services.BrandService, provider services.BrandProvider) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		provider:     provider,
	}
}

// GetBrands 获取所有品牌
func (h *BrandHandler) GetBrands(c *gin.Context) {
	brands, err := h.provider.ListBrands()
	if err != nil {
		utils.InternalServerError(c, "获取品牌列表失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"data":  brands,
		"total": len(brands),
	}, "获取品牌列表成功")
}

// GetBrandBySlug 根据slug获取品牌详情
func (h *BrandHandler) GetBrandBySlug(c *gin.Context) {
	slug := c.Param("slug")

	brand, err := h.provider.GetBrandBySlug(slug)
	if err != nil {
		utils.NotFound(c, "品牌不存在")
		return
	}

	utils.Success(c, gin.H{"data": brand}, "获取品牌成功")
}

// GetBrand 根据ID获取品牌详情
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id := c.Param("id")

	brand, err := h.brandService.GetBrandByID(id)
	if err != nil {
		utils.NotFound(c, "品牌不存在")
		return
	}

	utils.Success(c, gin.H{"data": brand}, "获取品牌成功")
}

// CreateBrand 创建品牌
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req struct {
		Slug         string `json:"slug" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Region       string `json:"region"`
		BusinessArea string `json:"business_area"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("参数解析错误: %v", err)
		utils.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	brand, err := h.brandService.CreateBrand(req.Slug, req.Name, req.Region, req.BusinessArea)
	if err != nil {
		utils.Conflict(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"data": brand}, "品牌创建成功")
}

// UpdateBrand 更新品牌基础信息
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id := c.Param("id")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}

	brand, err := h.brandService.UpdateBrand(id, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "品牌不存在")
		} else {
			utils.Conflict(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"data": brand}, "品牌更新成功")
}

// DeleteBrand 删除品牌
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id := c.Param("id")

	err := h.brandService.DeleteBrand(id)
	if err != nil {
		if err.Error() == "cannot delete brand with existing campaigns or content" {
			utils.Conflict(c, "无法删除品牌：该品牌下还有活动或内容")
		} else {
			utils.InternalServerError(c, "删除品牌失败："+err.Error())
		}
		return
	}

	utils.Success(c, nil, "品牌删除成功")
}

// ExportBrand 导出品牌全量数据
func (h *BrandHandler) ExportBrand(c *gin.Context) {
	id := c.Param("id")

	data, err := h.brandService.ExportBrand(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "品牌不存在")
		} else {
			utils.InternalServerError(c, "品牌数据导出失败: "+err.Error())
		}
		return
	}

	filename := fmt.Sprintf("brand_export_%s.json", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/json", data)
}
