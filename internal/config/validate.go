package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rollpath/internal/i18n"
)

// ErrMissingDiscordToken is returned by ValidateDiscord when no token is set
var ErrMissingDiscordToken = errors.New("discord.token is required (DISCORD_TOKEN)")

// Validate checks the settings both binaries need. Load calls it.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}
	if c.Navigation.RedirectDelay <= 0 {
		return fmt.Errorf("navigation.redirect_delay must be > 0 (got %s)", c.Navigation.RedirectDelay)
	}
	if c.Navigation.RenderBudget <= 0 {
		return fmt.Errorf("navigation.render_budget must be > 0 (got %s)", c.Navigation.RenderBudget)
	}
	if c.Navigation.SessionIdleTimeout <= 0 {
		return fmt.Errorf("navigation.session_idle_timeout must be > 0 (got %s)", c.Navigation.SessionIdleTimeout)
	}

	if _, ok := i18n.Parse(c.I18n.DefaultLanguage); !ok {
		return fmt.Errorf("i18n.default_language %q is not a bundled locale", c.I18n.DefaultLanguage)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

// ValidateDiscord checks the settings only the bot needs.
func (c *Config) ValidateDiscord() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return ErrMissingDiscordToken
	}
	return nil
}

func (l *LogConfig) validate() error {
	if _, ok := levels[normalize(l.Level)]; !ok {
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}

	switch normalize(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}

	return nil
}
