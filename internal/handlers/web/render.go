package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/routes"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"golang.org/x/text/language"
)

// pageRenderer renders one navigation into a buffered HTTP response
type pageRenderer struct {
	messaging     messaging.Service
	templates     templates
	language      language.Tag
	origin        string
	redirectDelay time.Duration
	json          bool

	status      int
	contentType string
	body        []byte
}

type rollResponse struct {
	Route    models.RouteType `json:"route"`
	ID       string           `json:"id"`
	Notation string           `json:"notation"`
	Rolls    []int            `json:"rolls"`
	Sum      int              `json:"sum"`
	Primary  int              `json:"primary"`
	Summary  string           `json:"summary"`
}

type pageResponse struct {
	Route    models.RouteType    `json:"route"`
	Title    string              `json:"title"`
	Examples []messaging.Example `json:"examples"`
}

type errorResponse struct {
	Route      models.RouteType `json:"route"`
	Error      string           `json:"error"`
	Message    string           `json:"message"`
	Kind       string           `json:"kind,omitempty"`
	Hint       string           `json:"hint,omitempty"`
	RedirectTo string           `json:"redirect_to,omitempty"`
}

// ShowLoading does nothing. An HTTP response has no intermediate state to
// show; the buffered page is written once the navigation returns.
func (r *pageRenderer) ShowLoading(ctx context.Context) {}

// HideLoading does nothing
func (r *pageRenderer) HideLoading(ctx context.Context) {}

// RenderHome renders the home page
func (r *pageRenderer) RenderHome(ctx context.Context) error {
	output, err := r.messaging.GetHomePage(ctx, &messaging.GetHomePageInput{Language: r.language})
	if err != nil {
		return err
	}
	return r.renderPage(models.RouteTypeHome, "home-page", &output.Page)
}

// RenderHelp renders the help page
func (r *pageRenderer) RenderHelp(ctx context.Context) error {
	output, err := r.messaging.GetHelpPage(ctx, &messaging.GetHelpPageInput{Language: r.language})
	if err != nil {
		return err
	}
	return r.renderPage(models.RouteTypeHelp, "help-page", &output.Page)
}

// RenderDice renders a roll outcome
func (r *pageRenderer) RenderDice(ctx context.Context, outcome *models.RollOutcome) error {
	output, err := r.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		Language: r.language,
		Outcome:  outcome,
	})
	if err != nil {
		return err
	}

	if r.json {
		return r.writeJSON(http.StatusOK, &rollResponse{
			Route:    models.RouteTypeDice,
			ID:       outcome.ID,
			Notation: outcome.Notation,
			Rolls:    outcome.Rolls,
			Sum:      outcome.Sum,
			Primary:  outcome.Primary(),
			Summary:  output.Summary,
		})
	}

	p := i18n.Printer(r.language)
	return r.writeHTML(http.StatusOK, templateDice, &pageData{
		Title: output.DiceType + " - " + p.Sprintf(i18n.MsgTitle),
		Roll:  output,
	})
}

// RenderError renders an error page. Validation errors are client errors;
// internal and sampling errors are server errors.
func (r *pageRenderer) RenderError(ctx context.Context, routeErr *models.RouteError) error {
	output, err := r.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Language:      r.language,
		Error:         routeErr,
		RedirectDelay: r.redirectDelay,
	})
	if err != nil {
		return err
	}

	status := http.StatusBadRequest
	if output.Kind == i18n.KindInternal || output.Kind == i18n.KindRoll {
		status = http.StatusInternalServerError
	}

	// Only same-origin redirects are followed
	refresh := ""
	if output.RedirectTo != "" && routes.IsInternalLink(output.RedirectTo, r.origin) {
		seconds := int(math.Ceil(r.redirectDelay.Seconds()))
		refresh = fmt.Sprintf("%d;url=%s", seconds, output.RedirectTo)
	} else {
		output.Redirect = ""
		output.RedirectTo = ""
	}

	if r.json {
		return r.writeJSON(status, &errorResponse{
			Route:      models.RouteTypeError,
			Error:      http.StatusText(status),
			Message:    output.Message,
			Kind:       output.Kind,
			Hint:       output.Hint,
			RedirectTo: output.RedirectTo,
		})
	}

	return r.writeHTML(status, templateError, &pageData{
		Title:   output.Title,
		Refresh: refresh,
		Error:   output,
	})
}

func (r *pageRenderer) renderPage(route models.RouteType, class string, page *messaging.Page) error {
	if r.json {
		return r.writeJSON(http.StatusOK, &pageResponse{
			Route:    route,
			Title:    page.Title,
			Examples: page.Examples,
		})
	}

	return r.writeHTML(http.StatusOK, templatePage, &pageData{
		Title:     page.Title,
		PageClass: class,
		Page:      page,
	})
}

// writeHTML replaces any earlier output, so a fallback error page never
// follows a partial page
func (r *pageRenderer) writeHTML(status int, name string, data *pageData) error {
	data.Lang = r.language.String()
	data.Nav = navLinks(r.language)

	var buf bytes.Buffer
	if err := r.templates.execute(&buf, name, data); err != nil {
		return err
	}

	r.status = status
	r.contentType = "text/html; charset=utf-8"
	r.body = buf.Bytes()
	return nil
}

func (r *pageRenderer) writeJSON(status int, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}

	r.status = status
	r.contentType = "application/json"
	r.body = buf.Bytes()
	return nil
}

// writeTo sends the rendered response. Nothing rendered is a server error.
func (r *pageRenderer) writeTo(w http.ResponseWriter) error {
	if r.status == 0 {
		return errNothingRendered
	}

	w.Header().Set("Content-Type", r.contentType)
	w.Header().Set("Content-Language", r.language.String())
	w.WriteHeader(r.status)
	_, err := w.Write(r.body)
	return err
}

func navLinks(tag language.Tag) []messaging.Link {
	p := i18n.Printer(tag)
	return []messaging.Link{
		{Label: p.Sprintf(i18n.MsgHome), Path: models.HomePath},
		{Label: p.Sprintf(i18n.MsgHelp), Path: models.HelpPath},
	}
}
