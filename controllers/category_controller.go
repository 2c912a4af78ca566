package controllers

import (
	"net/http"

	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	products *services.ProductService
}

func NewCategoryController(products *services.ProductService) *CategoryController {
	return &CategoryController{products: products}
}

// GetCategories godoc
// @Summary Get categories
// @Description Catalog categories in display order
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response{data=[]string}
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	respondOK(c, http.StatusOK, "Categories retrieved", ctrl.products.Categories())
}

// GetSeaterTypes godoc
// @Summary Get seater types
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response{data=[]string}
// @Router /seater-types [get]
func (ctrl *CategoryController) GetSeaterTypes(c *gin.Context) {
	respondOK(c, http.StatusOK, "Seater types retrieved", ctrl.products.SeaterTypes())
}
