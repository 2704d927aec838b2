package web

import "strings"

// RouteGroup registers routes under a shared path prefix with a shared
// middleware set. Group middleware runs after global middleware and before
// per-route middleware.
type RouteGroup struct {
	webHandler *WebHandler
	prefix     string
	middleware []Middleware
}

// Group creates a route group rooted at prefix.
func (wh *WebHandler) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: wh,
		prefix:     strings.TrimSuffix(prefix, "/"),
		middleware: middleware,
	}
}

// Handle registers a route relative to the group prefix.
func (g *RouteGroup) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	allMiddleware := append(g.middleware, middleware...)
	g.webHandler.Handle(method, g.prefix+path, handler, allMiddleware...)
}

// Group creates a nested group. The child inherits the parent's prefix and
// middleware set.
func (g *RouteGroup) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: g.webHandler,
		prefix:     g.prefix + strings.TrimSuffix(prefix, "/"),
		middleware: append(g.middleware, middleware...),
	}
}
