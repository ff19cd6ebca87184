// Package web serves navigations over HTTP. Every GET path is a navigation
// event rendered as semantic HTML, or JSON when the client asks for it.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/services/app"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"golang.org/x/text/language"
)

// Config holds the dependencies of the HTTP surface
type Config struct {
	AppService app.Service
	Messaging  messaging.Service

	// Language is used when a request names no bundled locale
	Language language.Tag

	// RedirectDelay is the meta refresh delay of error pages that redirect
	RedirectDelay time.Duration

	Logger *slog.Logger
}

// NewRouter creates the HTTP routes
func NewRouter(cfg *Config) (*http.ServeMux, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if cfg.AppService == nil {
		return nil, errNilAppService
	}
	if cfg.Messaging == nil {
		return nil, errNilMessaging
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lang := cfg.Language
	if lang == language.Und {
		lang = i18n.Default()
	}
	redirectDelay := cfg.RedirectDelay
	if redirectDelay <= 0 {
		redirectDelay = app.DefaultRedirectDelay
	}

	h := &handler{
		appService:    cfg.AppService,
		messaging:     cfg.Messaging,
		templates:     tmpl,
		language:      lang,
		redirectDelay: redirectDelay,
		logger:        logger,
	}

	wrap := func(next http.HandlerFunc) http.Handler {
		return WithLogging(logger, WithRecovery(logger, h.Fatal, next))
	}

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", h.Health)

	// Coordinator status
	mux.Handle("GET /status", wrap(h.Status))

	// Every other path is a navigation
	mux.Handle("GET /", wrap(h.Navigate))

	return mux, nil
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
