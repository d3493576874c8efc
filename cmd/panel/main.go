package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-panel-service/internal/api/http"
	"github.com/spec-kit/hr-panel-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-panel-service/internal/config"
	"github.com/spec-kit/hr-panel-service/internal/controller"
	"github.com/spec-kit/hr-panel-service/internal/events"
	"github.com/spec-kit/hr-panel-service/internal/observability"
	"github.com/spec-kit/hr-panel-service/internal/roster"
	"github.com/spec-kit/hr-panel-service/internal/service"
	"github.com/spec-kit/hr-panel-service/internal/session"
	"github.com/spec-kit/hr-panel-service/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	store := session.NewRedisStore(cfg.Redis, logger)
	defer store.Close()
	sess := session.New(store)

	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventNotification, func(_ context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.NotificationPayload); ok {
			logger.Info("notification",
				zap.String("level", string(payload.Level)),
				zap.String("message", payload.Message),
			)
		}
		return nil
	})
	dispatcher.Subscribe(events.EventSessionExpired, func(_ context.Context, _ events.Event) error {
		logger.Warn("session expired, panel redirected to login")
		return nil
	})

	client := transport.NewClient(cfg.Upstream, transport.Dependencies{
		Session:    sess,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	justificationService := service.NewJustificationService(client)
	suggestionService := service.NewSuggestionService(client)
	workerService := service.NewWorkerService(client)
	announcementService := service.NewAnnouncementService(client)

	justificationCtrl := controller.NewJustificationController(justificationService, logger)
	suggestionCtrl := controller.NewSuggestionController(suggestionService, logger)

	importer := roster.NewImporter(workerService, logger)
	remover := roster.NewRemover(workerService, logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Version, func() error {
			return store.Ping(context.Background())
		}),
		Session:        handlers.NewSessionHandler(client, sess),
		Justifications: handlers.NewJustificationsHandler(justificationCtrl),
		Suggestions:    handlers.NewSuggestionsHandler(suggestionCtrl),
		Workers:        handlers.NewWorkersHandler(workerService, importer, remover),
		Announcements:  handlers.NewAnnouncementsHandler(announcementService),
		Reports:        handlers.NewReportsHandler(justificationService, suggestionService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
