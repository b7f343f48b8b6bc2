package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayse/sweetshop/api-gateway/config"
	"github.com/ayse/sweetshop/api-gateway/middleware"
	"github.com/ayse/sweetshop/api-gateway/proxy"
)

// RouteDefinition maps one gateway endpoint to a backend service
type RouteDefinition struct {
	Method       string
	Path         string
	ServiceName  string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions. Authorization is decided here, at the
// edge; the backend services only consume the injected identity headers.
var Routes = []RouteDefinition{
	// Catalog: public reads, admin mutations
	{Method: fiber.MethodGet, Path: "/api/sweets", ServiceName: "catalog", Description: "Browse sweets"},
	{Method: fiber.MethodGet, Path: "/api/sweets/:id", ServiceName: "catalog", Description: "Get a sweet"},
	{Method: fiber.MethodPost, Path: "/api/sweets", ServiceName: "catalog", Description: "Create a sweet", RequireAuth: true, RequireAdmin: true},
	{Method: fiber.MethodPut, Path: "/api/sweets/:id", ServiceName: "catalog", Description: "Update a sweet", RequireAuth: true, RequireAdmin: true},

	// Ledger: every route needs an authenticated actor
	{Method: fiber.MethodPost, Path: "/api/inventory/:id/purchase", ServiceName: "ledger", Description: "Purchase stock", RequireAuth: true},
	{Method: fiber.MethodPost, Path: "/api/inventory/:id/restock", ServiceName: "ledger", Description: "Restock", RequireAuth: true, RequireAdmin: true},
	{Method: fiber.MethodGet, Path: "/api/inventory/status", ServiceName: "ledger", Description: "Stock status", RequireAuth: true},
	{Method: fiber.MethodGet, Path: "/api/inventory/alerts", ServiceName: "ledger", Description: "Stock alerts", RequireAuth: true},
	{Method: fiber.MethodGet, Path: "/api/inventory/transactions", ServiceName: "ledger", Description: "Full transaction history", RequireAuth: true, RequireAdmin: true},
	{Method: fiber.MethodGet, Path: "/api/inventory/transactions/my", ServiceName: "ledger", Description: "Own transaction history", RequireAuth: true},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Gateway health check (no downstream calls)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "api-gateway",
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sweet Shop API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerRoute(app, route, reverseProxy)
	}
}

func registerRoute(app *fiber.App, route RouteDefinition, reverseProxy *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return reverseProxy.ProxyRequest(c, route.ServiceName)
	}

	var handlers []fiber.Handler
	if route.RequireAuth {
		handlers = append(handlers, middleware.AuthMiddleware())
	}
	if route.RequireAdmin {
		handlers = append(handlers, middleware.AdminMiddleware())
	}
	handlers = append(handlers, handler)

	app.Add(route.Method, route.Path, handlers...)
}
