package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/hooks"
	"github.com/jhoicas/surgishop-scanner/internal/application/scanner"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Scanner        *scanner.ResolveBatchUseCase
	Dispatcher     *hooks.Dispatcher
	Settings       *settings.Resolver
	TriggerSheet   *settings.TriggerSheetUseCase
	Conditions     *condition.OptionsService
	MetricsHandler nethttp.Handler // nil: sin /metrics
	JWTSecret      string
	Log            zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// RPC del escáner (cualquier rol autenticado)
	scannerHandler := NewScannerHandler(deps.Scanner, deps.Log)
	method := api.Group("/method")
	method.Post("/parse_gs1_and_get_batch", scannerHandler.ParseGS1AndGetBatch)
	method.Post("/parse_gs1_string", scannerHandler.ParseGS1String)

	// Hooks del ERP
	hookHandler := NewHookHandler(deps.Dispatcher, deps.Log)
	hookGroup := api.Group("/hooks", RequireRole(jwt.RoleSystem, jwt.RoleAdmin))
	hookGroup.Get("/", hookHandler.List)
	hookGroup.Post("/:doctype/:event", RequireRole(jwt.RoleSystem), hookHandler.Handle)

	// Configuración (admin)
	settingsHandler := NewSettingsHandler(deps.Settings, deps.TriggerSheet)
	settingsGroup := api.Group("/settings", RequireRole(jwt.RoleAdmin))
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Put("/", settingsHandler.Update)
	settingsGroup.Get("/trigger-barcodes.pdf", settingsHandler.TriggerSheet)

	// Condiciones de recepción (admin)
	conditionHandler := NewConditionHandler(deps.Conditions)
	conditions := api.Group("/condition-options", RequireRole(jwt.RoleAdmin))
	conditions.Get("/", conditionHandler.Get)
	conditions.Put("/", conditionHandler.Update)
}
