// Package calculatorbridge contains HTTP route registration for the calculator.
package calculatorbridge

import (
	"github.com/mann-127/duoapi/infrastructure/web"
	"github.com/mann-127/duoapi/sdk/logger"
)

// Config holds configuration for the calculator bridge
type Config struct {
	Log *logger.Logger
}

// AddHttpRoutes registers all HTTP routes for the calculator.
func AddHttpRoutes(wh *web.WebHandler, cfg Config) {
	b := newBridge()

	wh.GET("/{$}", b.httpIndex)
	wh.GET("/add", b.httpAdd)
	wh.GET("/subtract", b.httpSubtract)
	wh.GET("/multiply", b.httpMultiply)
	wh.GET("/divide", b.httpDivide)
	wh.GET("/cube", b.httpCube)
	wh.POST("/area", b.httpArea)
	wh.GET("/health", b.httpHealth)
}
