package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invites/config"
	"invites/internal/adapters/auth"
	"invites/internal/adapters/email"
	"invites/internal/adapters/upload"
	deliveryhttp "invites/internal/delivery/http"
	"invites/internal/delivery/http/controllers"
	"invites/internal/delivery/http/middleware"
	"invites/internal/delivery/http/views"
	"invites/internal/domain"
	"invites/internal/repository/sqlstore"
	"invites/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, dialect, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := sqlstore.CreateSchema(ctx, db, dialect); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	sessions, err := auth.NewSessionManager(cfg.SessionSecret)
	if err != nil {
		return fmt.Errorf("session manager: %w", err)
	}
	mailer, err := email.NewMailer(cfg.Mailer(), logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("views: %w", err)
	}
	rsvpMail, err := email.NewRSVPRenderer()
	if err != nil {
		return fmt.Errorf("email templates: %w", err)
	}

	inviteRepo := sqlstore.NewInviteRepository(db)
	responseRepo := sqlstore.NewResponseRepository(db)
	images := upload.NewLocalStore(cfg.UploadDir)

	notifier := services.NewNotificationService(mailer, rsvpMail, responseRepo, cfg.AdminNotifyEmail, cfg.PublicBaseURL, logger)
	inviteSvc := services.NewInviteService(inviteRepo, responseRepo, images, notifier)
	dashboardSvc := services.NewDashboardService(responseRepo)
	admin := domain.Admin{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash}
	authSvc := services.NewAuthService(admin, auth.NewBcryptHasher(auth.DefaultCost), sessions, sqlstore.NewSessionRepository(db), cfg.SessionTTL)

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:      controllers.NewAuthController(logger, authSvc, renderer, cfg.SessionTTL),
		Invites:   controllers.NewInviteController(logger, inviteSvc, renderer, cfg.PublicBaseURL),
		Dashboard: controllers.NewDashboardController(logger, dashboardSvc, renderer),
		Health:    controllers.NewHealthController(logger, db),
	}, middleware.RequireAdmin(authSvc, logger), images.Dir(), logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.LoggingMiddleware(logger, router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "db_driver", string(dialect), "upload_dir", images.Dir())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
