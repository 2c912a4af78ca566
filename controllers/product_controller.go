package controllers

import (
	"net/http"
	"strconv"

	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Catalog, newest first, narrowed by the optional filters
// @Tags Products
// @Produce json
// @Param search query string false "Matches name or description"
// @Param category query string false "Category or All"
// @Param seater query string false "Seater type or All"
// @Param max_price query string false "Highest price to include"
// @Success 200 {object} models.Response{data=[]models.Product}
// @Failure 422 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		SeaterType: c.Query("seater"),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil || maxPrice.IsNegative() {
			respondError(c, &services.ValidationError{Fields: map[string]string{"max_price": "must be a non-negative amount"}})
			return
		}
		filter.MaxPrice = &maxPrice
	}

	products, err := ctrl.products.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Products retrieved", products)
}

// GetFeaturedProducts godoc
// @Summary Featured products
// @Description Home page picks: featured products first, then the newest
// @Tags Products
// @Produce json
// @Param limit query int false "How many" default(4)
// @Success 200 {object} models.Response{data=[]models.Product}
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultFeaturedLimit)))

	products, err := ctrl.products.Featured(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Featured products retrieved", products)
}

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product retrieved", product)
}

// CreateProduct godoc
// @Summary Create product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response{data=models.Product}
// @Failure 422 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct godoc
// @Summary Update product
// @Description Only the fields present in the body change
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product deleted", nil)
}

// UploadProductImage godoc
// @Summary Upload product image
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file true "Product photo"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/{id}/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.products.UploadImage(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product image uploaded", product)
}
