package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/services/app"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	navigator  *navigator
	appService app.Service
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Language is used for interactions without a bundled locale
	Language language.Tag

	// RedirectDelay is shown on error pages that redirect
	RedirectDelay time.Duration

	AppService app.Service
	Messaging  messaging.Service
	Logger     *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.AppService == nil {
		return nil, errors.New("app service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lang := cfg.Language
	if lang == language.Und {
		lang = i18n.Default()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		navigator: &navigator{
			appService:    cfg.AppService,
			messaging:     cfg.Messaging,
			language:      lang,
			redirectDelay: cfg.RedirectDelay,
			logger:        logger,
		},
		appService: cfg.AppService,
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleChannelDelete)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{newRollCommand(b.navigator), newDiceCommand(b.navigator)} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	// Remove all commands
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Error("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		b.logger.Info("registering command for guild", "command", cmd.GetName(), "guild_id", guildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID)

	return nil
}

// appID falls back to the session user ID if no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle navigation buttons
		if err := handleComponent(b.navigator, s, i.Interaction); err != nil {
			b.logger.Error("error handling component interaction", "error", err)
		}
	}
}

// handleComponent navigates to the path carried by a button
func handleComponent(n *navigator, c InteractionClient, i *discordgo.Interaction) error {
	customID := i.MessageComponentData().CustomID

	path, ok := ParseNavCustomID(customID)
	if !ok {
		return RespondWithEphemeralMessage(c, i, fmt.Sprintf("Unknown button: %s", customID))
	}
	return n.navigate(c, i, path)
}

// handleChannelDelete drops the navigation session of a deleted channel
func (b *Bot) handleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	err := b.appService.CloseSession(context.Background(), &app.CloseSessionInput{SessionID: c.ID})
	if err != nil && !errors.Is(err, app.ErrSessionNotFound) {
		b.logger.Error("error closing session", "channel_id", c.ID, "error", err)
	}
}
