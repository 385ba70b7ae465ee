package controller

import (
	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *CatalogController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.GetAllCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}

// @Summary List testimonials
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/testimonials [get]
func (c *CatalogController) GetAllTestimonials(ctx *gin.Context) {
	testimonials, err := c.CatalogService.GetAllTestimonials()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, testimonials)
}
