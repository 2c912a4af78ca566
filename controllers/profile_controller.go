package controllers

import (
	"net/http"

	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	users *services.UserService
}

func NewProfileController(users *services.UserService) *ProfileController {
	return &ProfileController{users: users}
}

// GetProfile godoc
// @Summary Get profile
// @Description Saved shipping details of the signed-in user
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.UserProfile}
// @Router /auth/profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	profile, err := ctrl.users.GetProfile(c.Request.Context(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary Update profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.Response{data=models.UserProfile}
// @Failure 422 {object} models.ErrorResponse
// @Router /auth/profile [patch]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := ctrl.users.UpdateProfile(c.Request.Context(), middleware.CurrentIdentity(c).UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Profile updated", profile)
}
