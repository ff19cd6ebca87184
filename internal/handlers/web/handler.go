package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/services/app"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"golang.org/x/text/language"
)

// handler serves navigations, status and the fatal page
type handler struct {
	appService    app.Service
	messaging     messaging.Service
	templates     templates
	language      language.Tag
	redirectDelay time.Duration
	logger        *slog.Logger
}

// Navigate treats the request path as a navigation event
func (h *handler) Navigate(w http.ResponseWriter, r *http.Request) {
	renderer := &pageRenderer{
		messaging:     h.messaging,
		templates:     h.templates,
		language:      h.requestLanguage(r),
		origin:        requestOrigin(r),
		redirectDelay: h.redirectDelay,
		json:          wantsJSON(r),
	}

	output, err := h.appService.Navigate(r.Context(), &app.NavigateInput{
		Path:     r.URL.Path,
		Renderer: renderer,
	})
	if err != nil {
		h.logger.Error("error navigating", "path", r.URL.Path, "error", err)
		h.Fatal(w, r)
		return
	}
	if output.InternalError != nil {
		h.logger.Error("navigation rendered internal error", "path", r.URL.Path, "error", output.InternalError)
	}

	if err := renderer.writeTo(w); err != nil {
		h.logger.Error("error writing response", "path", r.URL.Path, "error", err)
		if err == errNothingRendered {
			h.Fatal(w, r)
		}
	}
}

// Status reports the coordinator state as JSON
func (h *handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.appService.GetStatus(r.Context())
	if err != nil {
		h.logger.Error("error getting status", "error", err)
		JSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   http.StatusText(http.StatusInternalServerError),
			"message": err.Error(),
		})
		return
	}

	JSONResponse(w, http.StatusOK, map[string]any{
		"initialized": status.Initialized,
		"random": map[string]any{
			"uses_strong_source": status.Random.UsesStrongSource,
			"method":             status.Random.Method,
			"secure":             status.Random.Secure,
		},
		"sessions":  status.Sessions,
		"listeners": status.Listeners,
		"languages": languageNames(),
		"timestamp": status.Timestamp,
	})
}

// Health reports liveness
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Fatal renders the full-page error with a reload action
func (h *handler) Fatal(w http.ResponseWriter, r *http.Request) {
	lang := h.requestLanguage(r)

	output, err := h.messaging.GetFatalMessage(r.Context(), &messaging.GetFatalMessageInput{Language: lang})
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		JSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   http.StatusText(http.StatusInternalServerError),
			"message": output.Message,
		})
		return
	}

	renderer := &pageRenderer{templates: h.templates, language: lang}
	err = renderer.writeHTML(http.StatusInternalServerError, templateFatal, &pageData{
		Title:      output.Title,
		Fatal:      output,
		ReloadPath: r.URL.Path,
	})
	if err != nil {
		h.logger.Error("error rendering fatal page", "error", err)
		http.Error(w, output.Message, http.StatusInternalServerError)
		return
	}
	renderer.writeTo(w)
}

// requestLanguage prefers ?lang, then Accept-Language, then the default
func (h *handler) requestLanguage(r *http.Request) language.Tag {
	if value := r.URL.Query().Get("lang"); value != "" {
		if tag, ok := i18n.Parse(value); ok {
			return tag
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.Match(accept)
	}
	return h.language
}

// languageNames lists the bundled locales, default first
func languageNames() []string {
	tags := i18n.Supported()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return names
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
