// Package i18n holds the bundled en-US and pt-BR message catalogs.
//
// Message keys are the English texts. Printers for a tag without a
// translation fall back to the key, so en-US needs no catalog entries.
package i18n

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rollpath/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// English is the default locale
	English = language.MustParse("en-US")

	// Portuguese is the locale of the original message strings
	Portuguese = language.MustParse("pt-BR")

	supported = []language.Tag{English, Portuguese}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the bundled locales, default first
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default locale
func Default() language.Tag {
	return English
}

// Parse matches a single language tag against the bundled locales
func Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return English, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English, false
	}
	return supported[idx], true
}

// Match picks the best bundled locale for an Accept-Language header
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return supported[idx]
}

// Printer returns a message printer for tag
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// RouteErrorText localizes an error route message and appends the hint for its kind
func RouteErrorText(p *message.Printer, routeErr *models.RouteError) string {
	if routeErr == nil {
		return p.Sprintf(MsgInvalidURL)
	}

	text := routeErr.Message
	if text == "" {
		text = MsgInvalidURL
	}
	text = p.Sprintf(text)

	if hint := Hint(p, routeErr.Kind); hint != "" {
		text += "\n\n" + hint
	}
	return text
}

// Hint returns the suggestion shown under a validation error
func Hint(p *message.Printer, kind string) string {
	switch kind {
	case KindFormat:
		return p.Sprintf(MsgFormatHint)
	case KindQuantity:
		return p.Sprintf(MsgQuantityHint, Number(minQuantity), Number(maxQuantity))
	case KindSides:
		return p.Sprintf(MsgSidesHint, Number(minSides), Number(maxSides))
	}
	return ""
}

// Number formats n without locale digit grouping. Printer verbs like %d
// render 1000 as "1,000", which reads wrong in dice limits and notation.
func Number(n int) string {
	return strconv.Itoa(n)
}
