package models

// RouteType identifies which page a path resolves to
type RouteType string

const (
	// RouteTypeHome is the landing page
	RouteTypeHome RouteType = "home"

	// RouteTypeHelp is the help page
	RouteTypeHelp RouteType = "help"

	// RouteTypeDice is a valid dice roll
	RouteTypeDice RouteType = "dice"

	// RouteTypeError is any path that could not be resolved
	RouteTypeError RouteType = "error"
)

const (
	// HomePath is the canonical home path
	HomePath = "/"

	// HelpPath is the canonical help path and the redirect target for bad paths
	HelpPath = "/help"
)

// Route is the resolved intent for a navigation path.
// Only the fields matching Type are populated.
type Route struct {
	// Type is the kind of route
	Type RouteType

	// Path is the canonical path for home and help, or the original path otherwise
	Path string

	// Spec is set for dice routes
	Spec DiceSpec

	// Notation is the canonical notation for dice routes
	Notation string

	// Error is set for error routes
	Error *RouteError
}

// RouteError describes why a path could not be resolved
type RouteError struct {
	// Message is the user facing description
	Message string

	// Kind is the validation error kind, e.g. invalid_format
	Kind string

	// ShouldRedirect indicates the user should be sent to RedirectTo
	ShouldRedirect bool

	// RedirectTo is the redirect destination
	RedirectTo string

	// OriginalPath is the path as it was received
	OriginalPath string
}

// IsValid reports whether the route is anything but an error
func (r *Route) IsValid() bool {
	return r.Type != RouteTypeError
}

// HomeRoute returns the home route
func HomeRoute() Route {
	return Route{Type: RouteTypeHome, Path: HomePath}
}

// HelpRoute returns the help route
func HelpRoute() Route {
	return Route{Type: RouteTypeHelp, Path: HelpPath}
}
