package controllers

import (
	"net/http"

	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	checkout *services.CheckoutService
}

func NewTransactionController(checkout *services.CheckoutService) *TransactionController {
	return &TransactionController{checkout: checkout}
}

// Checkout godoc
// @Summary Place order
// @Description Turns the session cart into a cash-on-delivery order. Blank shipping fields are taken from the saved profile.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param request body models.CheckoutRequest true "Shipping details"
// @Success 201 {object} models.Response{data=models.Order}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *TransactionController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctrl.checkout.Submit(c.Request.Context(), middleware.CurrentIdentity(c), middleware.CartSessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Order placed", order)
}
