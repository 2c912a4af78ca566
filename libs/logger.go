package libs

import (
	"go.uber.org/zap"
)

// NewLogger builds a JSON logger for production and a console logger otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
