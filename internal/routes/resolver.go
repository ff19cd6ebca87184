// Package routes resolves navigation paths into routes. Resolution is pure:
// the same path always produces the same route and no history is kept.
package routes

import (
	"net/url"
	"strings"

	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/notation"
)

// Resolve maps a path, optionally carrying a query or fragment, to a route
func Resolve(path string) models.Route {
	return notation.ParsePath(stripSuffix(path))
}

// DiceURL returns the navigation path for a roll
func DiceURL(quantity, sides int) string {
	return models.DiceSpec{Quantity: quantity, Sides: sides}.Path()
}

// IsInternalLink reports whether href points at origin and should be handled
// as client side navigation. External and malformed links are passed through.
func IsInternalLink(href, origin string) bool {
	base, err := url.Parse(origin)
	if err != nil || base.Host == "" {
		return false
	}

	target, err := url.Parse(href)
	if err != nil {
		return false
	}

	resolved := base.ResolveReference(target)
	return strings.EqualFold(resolved.Scheme, base.Scheme) && strings.EqualFold(resolved.Host, base.Host)
}

func stripSuffix(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		return path[:i]
	}
	return path
}
