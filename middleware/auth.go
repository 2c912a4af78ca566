package middleware

import (
	"context"
	"net/http"
	"strings"

	"furniture-shop/models"
	"furniture-shop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
)

func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Next()
	}
}

// CurrentIdentity is nil when the request did not pass AuthMiddleware.
func CurrentIdentity(c *gin.Context) *models.Identity {
	userID := c.GetString(ctxUserID)
	if userID == "" {
		return nil
	}
	return &models.Identity{UserID: userID, Email: c.GetString(ctxUserEmail)}
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminMiddleware must run after AuthMiddleware. The role comes from the
// stored profile so a demoted admin loses access before their token expires.
func AdminMiddleware(checker AdminChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), identity.UserID)
		if err != nil {
			logger.Warn("admin check failed", zap.String("user_id", identity.UserID), zap.Error(err))
		}
		if err != nil || !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			return
		}

		c.Next()
	}
}
