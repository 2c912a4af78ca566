package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furniture-shop/middleware"
	"furniture-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const secret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/me", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		id := middleware.CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "email": id.Email})
	})

	valid, err := utils.GenerateToken("u-1", "a@example.com", "customer", secret, time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateToken("u-1", "a@example.com", "customer", secret, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(router, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"u-1","email":"a@example.com"}`, w.Body.String())
			}
		})
	}
}

func TestCurrentIdentityWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, middleware.CurrentIdentity(c))
}

type checkerFunc func(ctx context.Context, userID string) (bool, error)

func (f checkerFunc) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return f(ctx, userID)
}

func TestAdminMiddleware(t *testing.T) {
	admins := checkerFunc(func(_ context.Context, userID string) (bool, error) {
		switch userID {
		case "admin":
			return true, nil
		case "broken":
			return false, errors.New("db down")
		}
		return false, nil
	})

	core, logs := observer.New(zapcore.WarnLevel)
	router := gin.New()
	router.GET("/admin",
		middleware.AuthMiddleware(secret),
		middleware.AdminMiddleware(admins, zap.New(core)),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	router.GET("/no-auth", middleware.AdminMiddleware(admins, zap.New(core)), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(userID string) int {
		token, err := utils.GenerateToken(userID, userID+"@example.com", "admin", secret, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return serve(router, req).Code
	}

	assert.Equal(t, http.StatusNoContent, call("admin"))
	assert.Equal(t, http.StatusForbidden, call("customer"))
	assert.Equal(t, http.StatusForbidden, call("broken"))
	assert.Equal(t, 1, logs.FilterMessage("admin check failed").Len())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/no-auth", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartSession(t *testing.T) {
	router := gin.New()
	router.GET("/cart", middleware.CartSession(time.Hour, false), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.CartSessionID(c))
	})

	t.Run("mints a new session", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/cart", nil))
		require.Equal(t, http.StatusOK, w.Code)

		sid := w.Body.String()
		_, err := uuid.Parse(sid)
		require.NoError(t, err)
		assert.Equal(t, sid, w.Header().Get(middleware.CartSessionHeader))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.CartSessionCookie, cookies[0].Name)
		assert.Equal(t, sid, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses the cookie", func(t *testing.T) {
		sid := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CartSessionCookie, Value: sid})
		assert.Equal(t, sid, serve(router, req).Body.String())
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		fromHeader := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CartSessionCookie, Value: uuid.NewString()})
		req.Header.Set(middleware.CartSessionHeader, fromHeader)
		assert.Equal(t, fromHeader, serve(router, req).Body.String())
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(middleware.CartSessionHeader, "not-a-session")
		sid := serve(router, req).Body.String()
		assert.NotEqual(t, "not-a-session", sid)
		_, err := uuid.Parse(sid)
		assert.NoError(t, err)
	})
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(middleware.RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("exploded"))
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		serve(router, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[2].ContextMap()
	assert.Equal(t, "/boom", fields["path"])
	assert.Equal(t, int64(http.StatusInternalServerError), fields["status"])
	assert.Contains(t, fields["errors"], "exploded")
}

func TestCORSExposesCartSession(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CORSMiddleware("https://shop.example.com"))
	router.GET("/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := serve(router, req)

	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), middleware.CartSessionHeader)
}
