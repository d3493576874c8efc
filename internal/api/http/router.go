package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-panel-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	Justifications *handlers.JustificationsHandler
	Suggestions    *handlers.SuggestionsHandler
	Workers        *handlers.WorkersHandler
	Announcements  *handlers.AnnouncementsHandler
	Reports        *handlers.ReportsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	sessionGroup := app.Group("/session")
	sessionGroup.Post("/login", cfg.Session.Login)
	sessionGroup.Post("/logout", cfg.Session.Logout)
	sessionGroup.Get("/me", cfg.Session.Me)

	panel := app.Group("/panel")

	panel.Get("/justifications", cfg.Justifications.List)
	panel.Delete("/justifications/selection", cfg.Justifications.CloseSelection)
	panel.Get("/justifications/:id", cfg.Justifications.Get)
	panel.Post("/justifications/:id/decision", cfg.Justifications.Decide)

	panel.Get("/suggestions", cfg.Suggestions.List)
	panel.Delete("/suggestions/selection", cfg.Suggestions.CloseSelection)
	panel.Get("/suggestions/:id", cfg.Suggestions.Get)
	panel.Patch("/suggestions/:id/status", cfg.Suggestions.UpdateStatus)

	panel.Get("/workers", cfg.Workers.List)
	panel.Post("/workers", cfg.Workers.Create)
	panel.Post("/workers/import", cfg.Workers.Import)
	panel.Post("/workers/remove/prepare", cfg.Workers.RemovePrepare)
	panel.Post("/workers/remove", cfg.Workers.RemoveExecute)
	panel.Patch("/workers/:id", cfg.Workers.Update)
	panel.Delete("/workers/:id", cfg.Workers.Delete)

	panel.Get("/announcements", cfg.Announcements.List)
	panel.Post("/announcements", cfg.Announcements.Create)
	panel.Put("/announcements/:id", cfg.Announcements.Update)
	panel.Delete("/announcements/:id", cfg.Announcements.Delete)

	export := app.Group("/export")
	export.Get("/justifications.xlsx", cfg.Reports.Justifications)
	export.Get("/suggestions.xlsx", cfg.Reports.Suggestions)
	export.Get("/templates/upload.xlsx", cfg.Reports.UploadTemplate)
	export.Get("/templates/remove.xlsx", cfg.Reports.RemoveTemplate)
}
