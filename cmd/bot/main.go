package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rollpath/internal/common/clock"
	"github.com/KirkDiggler/rollpath/internal/common/uuid"
	"github.com/KirkDiggler/rollpath/internal/config"
	"github.com/KirkDiggler/rollpath/internal/dice"
	"github.com/KirkDiggler/rollpath/internal/handlers/discord"
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

	if err := cfg.ValidateDiscord(); err != nil {
		logger.Error("invalid discord config", "error", err)
		os.Exit(1)
	}

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
		logger.Debug("route changed",
			"channel_id", event.SessionID,
			"path", event.Path,
			"route", event.Route.Type,
			"redirect", event.Redirect)
	})

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Random: random})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Language:      cfg.I18n.Tag(),
		RedirectDelay: cfg.Navigation.RedirectDelay,
		AppService:    appService,
		Messaging:     messagingService,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create discord bot", "error", err)
		os.Exit(1)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Error("failed to start discord bot", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "error", err)
	}

	logger.Info("bot has been shut down")
}
