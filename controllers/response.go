package controllers

import (
	"errors"
	"net/http"

	"furniture-shop/models"
	"furniture-shop/services"
	"furniture-shop/utils"

	"github.com/gin-gonic/gin"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{services.ErrUnauthenticated, http.StatusUnauthorized},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrWrongPassword, http.StatusBadRequest},
	{services.ErrMissingCartSession, http.StatusBadRequest},
	{services.ErrEmptyCart, http.StatusConflict},
	{services.ErrEmailTaken, http.StatusConflict},
	{services.ErrInvalidStatusTransition, http.StatusConflict},
	{services.ErrStatusConflict, http.StatusConflict},
	{services.ErrProductNotFound, http.StatusNotFound},
	{services.ErrOrderNotFound, http.StatusNotFound},
	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrOrderNotPlaced, http.StatusServiceUnavailable},
	{utils.ErrFileTooLarge, http.StatusBadRequest},
	{utils.ErrInvalidImageType, http.StatusBadRequest},
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}

// respondError maps service errors onto HTTP statuses. Anything unknown is
// recorded on the context for the request logger and reported as a 500.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Fields:  verr.Fields,
		})
		return
	}

	for _, known := range errorStatus {
		if errors.Is(err, known.err) {
			if known.status >= http.StatusInternalServerError {
				_ = c.Error(err)
			}
			c.JSON(known.status, models.ErrorResponse{
				Success: false,
				Message: known.err.Error(),
			})
			return
		}
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Internal server error",
	})
}
