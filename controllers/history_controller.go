package controllers

import (
	"net/http"

	"furniture-shop/middleware"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	orders *services.OrderService
}

func NewHistoryController(orders *services.OrderService) *HistoryController {
	return &HistoryController{orders: orders}
}

// GetHistory godoc
// @Summary Order history
// @Description The signed-in user's orders, newest first
// @Tags History
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Order}
// @Router /orders [get]
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	orders, err := ctrl.orders.History(c.Request.Context(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order history retrieved", orders)
}

// GetOrderDetail godoc
// @Summary Order detail
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *HistoryController) GetOrderDetail(c *gin.Context) {
	order, err := ctrl.orders.GetForUser(c.Request.Context(), middleware.CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order retrieved", order)
}
