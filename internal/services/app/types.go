package app

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/rollpath/internal/common/clock"
	"github.com/KirkDiggler/rollpath/internal/common/uuid"
	"github.com/KirkDiggler/rollpath/internal/dice"
	"github.com/KirkDiggler/rollpath/internal/models"
)

// Defaults
const (
	DefaultRedirectDelay      = 3 * time.Second
	DefaultRenderBudget       = 2 * time.Second
	DefaultSessionIdleTimeout = 30 * time.Minute
)

// Config holds configuration for the coordinator
type Config struct {
	// RedirectDelay is how long an error page stays up before help is shown
	RedirectDelay time.Duration

	// RenderBudget is the soft limit for a roll-to-render cycle; overruns are logged
	RenderBudget time.Duration

	// SessionIdleTimeout is how long a live session without a pending
	// redirect is kept after its last navigation
	SessionIdleTimeout time.Duration

	// Logger defaults to slog.Default
	Logger *slog.Logger

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// NavigateInput contains parameters for a navigation event
type NavigateInput struct {
	// SessionID identifies a live session, such as a Discord channel.
	// Empty means a one-shot navigation that cannot be redirected later.
	SessionID string

	// Path is the navigation path, e.g. /3d6
	Path string

	// Renderer receives the output. Live sessions may omit it to reuse the
	// last renderer they were given.
	Renderer Renderer
}

// NavigateOutput contains the result of a navigation event
type NavigateOutput struct {
	// Route is the resolved route
	Route models.Route

	// Outcome is set for dice routes that rolled successfully
	Outcome *models.RollOutcome

	// RedirectScheduled is true when a live session will navigate to help
	RedirectScheduled bool

	// InternalError is the error that was replaced by the generic message, if any
	InternalError error

	// Duration is how long the navigation took
	Duration time.Duration
}

// RollInput contains parameters for a direct roll
type RollInput struct {
	// Notation is dice notation such as 2d6
	Notation string
}

// RollOutput contains the result of a direct roll
type RollOutput struct {
	Outcome *models.RollOutcome
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	SessionID string
}

// GetStatusOutput describes the coordinator
type GetStatusOutput struct {
	// Initialized is true once the service is constructed
	Initialized bool

	// Random describes the sampling strategy
	Random dice.RandomInfo

	// Sessions is the number of live sessions
	Sessions int

	// Listeners is the number of registered route listeners
	Listeners int

	// Timestamp is when the status was taken
	Timestamp time.Time
}

// ListenerID identifies a registered route listener
type ListenerID uint64

// RouteListener observes resolved routes. Listeners run synchronously while
// the navigation's session is held, so a listener must not call Navigate for
// the same session from its own goroutine.
type RouteListener func(event RouteChangeEvent)

// RouteChangeEvent is emitted for every navigation
type RouteChangeEvent struct {
	// SessionID is empty for one-shot navigations
	SessionID string

	// Path is the path that was navigated to
	Path string

	// Route is the resolved route
	Route models.Route

	// Redirect is true when the navigation came from a scheduled redirect
	Redirect bool
}
