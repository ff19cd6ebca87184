package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/KirkDiggler/rollpath/internal/services/messaging"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	templatePage  = "page"
	templateDice  = "dice"
	templateError = "error"
	templateFatal = "fatal"
)

// pageData is what every template receives
type pageData struct {
	Lang    string
	Title   string
	Refresh string
	Nav     []messaging.Link

	// PageClass is home-page or help-page
	PageClass  string
	Page       *messaging.Page
	Roll       *messaging.GetRollResultMessageOutput
	Error      *messaging.GetErrorMessageOutput
	Fatal      *messaging.GetFatalMessageOutput
	ReloadPath string
}

// templates holds one parsed layout per page template
type templates map[string]*template.Template

func parseTemplates() (templates, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	parsed := make(templates)
	for _, name := range []string{templatePage, templateDice, templateError, templateFatal} {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		parsed[name] = clone
	}

	return parsed, nil
}

func (t templates) execute(w io.Writer, name string, data *pageData) error {
	tmpl, ok := t[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
