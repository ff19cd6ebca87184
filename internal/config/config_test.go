package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

const validYAML = `
server:
  port: 9090
  read_timeout: "5s"

discord:
  token: "yaml-token"

dice:
  force_fallback: true
  seed: 7

navigation:
  redirect_delay: "5s"

i18n:
  default_language: "pt-BR"

log:
  level: "debug"
  format: "json"
`

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DOTENV_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.Navigation.RedirectDelay)
	assert.Equal(t, 2*time.Second, cfg.Navigation.RenderBudget)
	assert.Equal(t, 30*time.Minute, cfg.Navigation.SessionIdleTimeout)
	assert.False(t, cfg.Dice.ForceFallback)
	assert.True(t, cfg.Dice.TimeOrderedIDs)
	assert.Equal(t, i18n.English, cfg.I18n.Tag())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DOTENV_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "yaml-token", cfg.Discord.Token)
	assert.True(t, cfg.Dice.ForceFallback)
	assert.Equal(t, int64(7), cfg.Dice.Seed)
	assert.Equal(t, 5*time.Second, cfg.Navigation.RedirectDelay)
	assert.Equal(t, i18n.Portuguese, cfg.I18n.Tag())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DOTENV_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "DISCORD_TOKEN=dotenv-token\nGUILD_ID=123\n")
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DOTENV_PATH", path)
	unsetEnv(t, "DISCORD_TOKEN")
	t.Setenv("GUILD_ID", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dotenv-token", cfg.Discord.Token)
	assert.Equal(t, "from-env", cfg.Discord.GuildID)
	assert.NoError(t, cfg.ValidateDiscord())
}

func TestLoadExplicitMissingDotEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	_, err := Load()
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Server:     ServerConfig{Port: 8080},
		Navigation: NavigationConfig{RedirectDelay: 3 * time.Second, RenderBudget: 2 * time.Second, SessionIdleTimeout: time.Minute},
		I18n:       I18nConfig{DefaultLanguage: "en-US"},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "no redirect delay", mutate: func(c *Config) { c.Navigation.RedirectDelay = 0 }, wantErr: true},
		{name: "negative budget", mutate: func(c *Config) { c.Navigation.RenderBudget = -time.Second }, wantErr: true},
		{name: "no idle timeout", mutate: func(c *Config) { c.Navigation.SessionIdleTimeout = 0 }, wantErr: true},
		{name: "unknown language", mutate: func(c *Config) { c.I18n.DefaultLanguage = "xx-invalid!" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "upper case level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDiscord(t *testing.T) {
	cfg := validConfig()
	assert.ErrorIs(t, cfg.ValidateDiscord(), ErrMissingDiscordToken)

	cfg.Discord.Token = "token"
	assert.NoError(t, cfg.ValidateDiscord())
}

func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "notation", "3d6")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "3d6", entry["notation"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel(" Debug ").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("unknown").String())
}

