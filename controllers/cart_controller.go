package controllers

import (
	"net/http"

	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart godoc
// @Summary Get cart
// @Description Lines, item count and total of the session cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.carts.Get(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart retrieved", view)
}

// AddToCart godoc
// @Summary Add to cart
// @Description Adds quantity units; a quantity below 1 counts as 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := ctrl.carts.Add(c.Request.Context(), middleware.CartSessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Item added to cart", view)
}

// UpdateCartItem godoc
// @Summary Set line quantity
// @Description A quantity of 0 or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := ctrl.carts.UpdateQuantity(c.Request.Context(), middleware.CartSessionID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart updated", view)
}

// RemoveCartItem godoc
// @Summary Remove line
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	view, err := ctrl.carts.Remove(c.Request.Context(), middleware.CartSessionID(c), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Item removed from cart", view)
}

// ClearCart godoc
// @Summary Empty cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	view, err := ctrl.carts.Clear(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart cleared", view)
}
