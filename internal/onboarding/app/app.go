package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/classtrackhq/classtrack/internal/onboarding/http"
	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/internal/onboarding/store/drivers/sqlite"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/jwtx"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the onboarding service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	keys *jwtx.KeyPair

	bootstrapService    *service.BootstrapService
	sessionService      *service.SessionService
	linkService         *service.LinkService
	invitationService   *service.InvitationService
	registrationService *service.RegistrationService
	approvalService     *service.ApprovalService
	resetService        *service.PasswordResetService
	notificationService *service.NotificationService
	housekeeping        *service.HousekeepingService

	server *http.Server
	router *httpapi.Router

	stopHousekeeping context.CancelFunc
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "onboarding-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Session keys are ephemeral: a restart invalidates outstanding sessions.
	keys, err := jwtx.NewKeyPair(cfg.Issuer)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to generate session keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	hkCtx, cancel := context.WithCancel(slogx.WithContext(context.Background(), app.logger))
	app.stopHousekeeping = cancel
	go app.housekeeping.Run(hkCtx)

	app.logger.Info("onboarding service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the server, housekeeping, and database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down onboarding service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.stopHousekeeping != nil {
		app.stopHousekeeping()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("onboarding service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.notificationService = &service.NotificationService{Store: app.db}

	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.SetupToken,
	}
	app.sessionService = &service.SessionService{
		Store: app.db,
		Keys:  app.keys,
		TTL:   app.cfg.SessionTTL,
	}
	app.linkService = &service.LinkService{Store: app.db}
	app.invitationService = &service.InvitationService{Store: app.db}
	app.registrationService = &service.RegistrationService{
		Store:    app.db,
		Notifier: app.notificationService,
	}
	app.approvalService = &service.ApprovalService{
		Store:    app.db,
		Notifier: app.notificationService,
	}
	app.resetService = &service.PasswordResetService{Store: app.db}
	app.housekeeping = &service.HousekeepingService{
		Store:    app.db,
		Interval: app.cfg.SweepInterval,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.keys, BuildVersion, app.db, app.logger)

	router.BootstrapService = app.bootstrapService
	router.SessionService = app.sessionService
	router.LinkService = app.linkService
	router.InvitationService = app.invitationService
	router.RegistrationService = app.registrationService
	router.ApprovalService = app.approvalService
	router.ResetService = app.resetService
	router.NotificationService = app.notificationService

	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
