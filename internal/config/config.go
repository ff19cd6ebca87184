package config

import (
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"golang.org/x/text/language"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Discord    DiscordConfig    `yaml:"discord"`
	Dice       DiceConfig       `yaml:"dice"`
	Navigation NavigationConfig `yaml:"navigation"`
	I18n       I18nConfig       `yaml:"i18n"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DiscordConfig holds bot settings. Only the bot requires a token.
type DiscordConfig struct {
	Token         string `yaml:"token"          env:"DISCORD_TOKEN"`
	ApplicationID string `yaml:"application_id" env:"APPLICATION_ID"`
	GuildID       string `yaml:"guild_id"       env:"GUILD_ID"`
}

// DiceConfig holds sampler settings.
type DiceConfig struct {
	// ForceFallback skips the entropy probe and uses math/rand
	ForceFallback bool `yaml:"force_fallback" env:"DICE_FORCE_FALLBACK" env-default:"false"`

	// Seed seeds the fallback generator; zero uses the wall clock
	Seed int64 `yaml:"seed" env:"DICE_SEED" env-default:"0"`

	// TimeOrderedIDs makes roll IDs v7 UUIDs
	TimeOrderedIDs bool `yaml:"time_ordered_ids" env:"DICE_TIME_ORDERED_IDS" env-default:"true"`
}

// NavigationConfig holds coordinator timings.
type NavigationConfig struct {
	RedirectDelay time.Duration `yaml:"redirect_delay" env:"NAV_REDIRECT_DELAY" env-default:"3s"`
	RenderBudget  time.Duration `yaml:"render_budget"  env:"NAV_RENDER_BUDGET"  env-default:"2s"`

	// SessionIdleTimeout drops Discord channel sessions with no pending redirect
	SessionIdleTimeout time.Duration `yaml:"session_idle_timeout" env:"NAV_SESSION_IDLE_TIMEOUT" env-default:"30m"`
}

// I18nConfig holds locale settings.
type I18nConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"en-US"`
}

// Tag returns the default language matched against the bundled locales.
func (c I18nConfig) Tag() language.Tag {
	tag, _ := i18n.Parse(c.DefaultLanguage)
	return tag
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
