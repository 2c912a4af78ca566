package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"furniture-shop/config"
	"furniture-shop/libs"
	"furniture-shop/models"
	"furniture-shop/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	app     *routes.App
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		decimal.MarshalJSONWithoutQuotes = true

		cfg := config.LoadConfig()
		logger, err := libs.NewLogger(cfg.AppEnv)
		if err != nil {
			initErr = err
			return
		}

		app, initErr = routes.NewApp(context.Background(), cfg, logger)
	})
}

// Handler is the serverless entry point. The app is built on the first
// request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
		})
		return
	}
	app.Router.ServeHTTP(w, r)
}
