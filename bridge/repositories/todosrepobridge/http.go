// Package todosrepobridge contains HTTP route registration for Todo.
package todosrepobridge

import (
	"github.com/mann-127/duoapi/core/repositories/todosrepo"
	"github.com/mann-127/duoapi/infrastructure/web"
	"github.com/mann-127/duoapi/sdk/logger"
)

// Config holds configuration for the Todo bridge
type Config struct {
	Log        *logger.Logger
	Repository *todosrepo.Repository
}

// AddHttpRoutes registers all HTTP routes for Todo. The CRUD surface and
// the health probe live under the group prefix; the banner sits at the root.
func AddHttpRoutes(wh *web.WebHandler, group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	wh.GET("/{$}", b.httpIndex)

	group.POST("/todos", b.httpCreate)
	group.GET("/todos", b.httpList)
	group.GET("/todos/{id}", b.httpGetByID)
	group.PUT("/todos/{id}", b.httpUpdate)
	group.DELETE("/todos/{id}", b.httpDelete)
	group.GET("/health", b.httpHealth)
}
