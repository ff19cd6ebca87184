package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/KirkDiggler/rollpath/internal/common/clock"
	"github.com/KirkDiggler/rollpath/internal/common/uuid"
	"github.com/KirkDiggler/rollpath/internal/config"
	"github.com/KirkDiggler/rollpath/internal/dice"
	"github.com/KirkDiggler/rollpath/internal/handlers/web"
	"github.com/KirkDiggler/rollpath/internal/services/app"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log, nil)

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		ForceFallback: cfg.Dice.ForceFallback,
		Seed:          cfg.Dice.Seed,
	})
	random := diceRoller.Info()
	logger.Info("dice sampler selected", "method", random.Method, "secure", random.Secure)

	var ids uuid.UUID = uuid.New()
	if cfg.Dice.TimeOrderedIDs {
		ids = uuid.NewTimeOrdered()
	}

	// Initialize app service
	appService, err := app.New(&app.Config{
		RedirectDelay:      cfg.Navigation.RedirectDelay,
		RenderBudget:       cfg.Navigation.RenderBudget,
		SessionIdleTimeout: cfg.Navigation.SessionIdleTimeout,
		Logger:             logger,
		DiceRoller:         diceRoller,
		Clock:              &clock.DefaultClock{},
		UUIDGenerator:      ids,
	})
	if err != nil {
		logger.Error("failed to create app service", "error", err)
		os.Exit(1)
	}

	appService.OnRouteChange(func(event app.RouteChangeEvent) {
		logger.Debug("route changed", "path", event.Path, "route", event.Route.Type)
	})

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Random: random})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	router, err := web.NewRouter(&web.Config{
		AppService:    appService,
		Messaging:     messagingService,
		Language:      cfg.I18n.Tag(),
		RedirectDelay: cfg.Navigation.RedirectDelay,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sc:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
