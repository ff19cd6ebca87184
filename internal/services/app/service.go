// Package app is the application coordinator. It turns navigation events into
// rendered routes and owns the redirect-on-error policy.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rollpath/internal/common/clock"
	"github.com/KirkDiggler/rollpath/internal/common/uuid"
	"github.com/KirkDiggler/rollpath/internal/dice"
	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/notation"
	"github.com/KirkDiggler/rollpath/internal/routes"
)

type listenerEntry struct {
	id       ListenerID
	listener RouteListener
}

// service implements the Service interface
type service struct {
	redirectDelay time.Duration
	renderBudget  time.Duration
	idleTimeout   time.Duration
	logger        *slog.Logger

	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID

	sessionsMu sync.Mutex
	sessions   map[string]*session
	lastSweep  time.Time

	listenersMu sync.RWMutex
	listeners   []listenerEntry
	nextID      ListenerID
}

// New creates a new coordinator
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	redirectDelay := cfg.RedirectDelay
	if redirectDelay <= 0 {
		redirectDelay = DefaultRedirectDelay
	}
	renderBudget := cfg.RenderBudget
	if renderBudget <= 0 {
		renderBudget = DefaultRenderBudget
	}
	idleTimeout := cfg.SessionIdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = DefaultSessionIdleTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		redirectDelay: redirectDelay,
		renderBudget:  renderBudget,
		idleTimeout:   idleTimeout,
		logger:        logger,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		sessions:      make(map[string]*session),
	}, nil
}

// Navigate handles one navigation event
func (s *service) Navigate(ctx context.Context, input *NavigateInput) (*NavigateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if input.SessionID == "" {
		if input.Renderer == nil {
			return nil, ErrNilRenderer
		}
		return s.navigate(ctx, nil, input.Renderer, input.Path, false), nil
	}

	output, startedAt, err := s.navigateSession(ctx, input)
	if err != nil {
		return nil, err
	}

	s.evictIdleSessions(startedAt)
	return output, nil
}

func (s *service) navigateSession(ctx context.Context, input *NavigateInput) (*NavigateOutput, time.Time, error) {
	sess := s.lockSession(input.SessionID)
	defer sess.mu.Unlock()

	renderer := input.Renderer
	if renderer == nil {
		renderer = sess.renderer
	}
	if renderer == nil {
		return nil, time.Time{}, ErrNilRenderer
	}

	// A newer navigation supersedes a pending redirect
	sess.cancelRedirect()
	sess.renderer = renderer

	output := s.navigate(ctx, sess, renderer, input.Path, false)
	return output, sess.lastSeen, nil
}

// navigate runs the loading, resolve, roll and render sequence. For live
// sessions the caller holds sess.mu. Nothing a renderer or listener does
// escapes it.
func (s *service) navigate(ctx context.Context, sess *session, renderer Renderer, path string, redirect bool) *NavigateOutput {
	start := s.clock.Now()

	s.guard("show loading", func() { renderer.ShowLoading(ctx) })
	defer s.guard("hide loading", func() { renderer.HideLoading(ctx) })

	route := routes.Resolve(path)
	sessionID := ""
	if sess != nil {
		sessionID = sess.id
		sess.current = path
		sess.lastSeen = start
	}

	s.emit(RouteChangeEvent{
		SessionID: sessionID,
		Path:      path,
		Route:     route,
		Redirect:  redirect,
	})

	output := &NavigateOutput{Route: route}

	if err := s.dispatch(ctx, sess, renderer, route, output); err != nil {
		output.InternalError = err
		s.logger.Error("error handling route change",
			"session_id", sessionID,
			"path", path,
			"error", err,
		)
		s.renderFallback(ctx, renderer, &models.RouteError{
			Message: i18n.MsgInternalError,
			Kind:    i18n.KindInternal,
		})
	}

	output.Duration = s.clock.Now().Sub(start)

	if route.Type == models.RouteTypeDice && output.Duration > s.renderBudget {
		s.logger.Warn("dice roll exceeded render budget",
			"notation", route.Notation,
			"duration_ms", output.Duration.Milliseconds(),
			"budget_ms", s.renderBudget.Milliseconds(),
		)
	}

	return output
}

// dispatch renders the route. Panics from renderers are returned as errors.
func (s *service) dispatch(ctx context.Context, sess *session, renderer Renderer, route models.Route, output *NavigateOutput) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrInternalRender, r)
		}
	}()

	switch route.Type {
	case models.RouteTypeHome:
		err = renderer.RenderHome(ctx)
	case models.RouteTypeHelp:
		err = renderer.RenderHelp(ctx)
	case models.RouteTypeDice:
		err = s.handleDiceRoll(ctx, renderer, route, output)
	default:
		err = s.handleInvalidRoute(ctx, sess, renderer, route, output)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternalRender, err)
	}
	return nil
}

func (s *service) handleDiceRoll(ctx context.Context, renderer Renderer, route models.Route, output *NavigateOutput) error {
	outcome, err := s.roll(route.Spec)
	if err != nil {
		s.logger.Error("error rolling dice",
			"notation", route.Notation,
			"error", err,
		)
		return renderer.RenderError(ctx, &models.RouteError{
			Message:      i18n.MsgRollError,
			Kind:         i18n.KindRoll,
			OriginalPath: route.Path,
		})
	}

	output.Outcome = outcome
	if err := renderer.RenderDice(ctx, outcome); err != nil {
		return err
	}

	s.logger.Debug("dice roll result",
		"id", outcome.ID,
		"notation", outcome.Notation,
		"rolls", outcome.Rolls,
		"sum", outcome.Sum,
	)
	return nil
}

func (s *service) handleInvalidRoute(ctx context.Context, sess *session, renderer Renderer, route models.Route, output *NavigateOutput) error {
	routeErr := route.Error
	if routeErr == nil {
		routeErr = &models.RouteError{Message: i18n.MsgInvalidURL, OriginalPath: route.Path}
	}

	if err := renderer.RenderError(ctx, routeErr); err != nil {
		return err
	}

	if routeErr.ShouldRedirect && sess != nil {
		s.scheduleRedirect(sess, routeErr.RedirectTo)
		output.RedirectScheduled = true
	}
	return nil
}

// scheduleRedirect arms the help redirect. Caller holds sess.mu.
func (s *service) scheduleRedirect(sess *session, to string) {
	if to == "" {
		to = models.HelpPath
	}

	sess.cancelRedirect()
	gen := sess.gen
	sess.redirect = s.clock.AfterFunc(s.redirectDelay, func() {
		s.fireRedirect(sess, gen, to)
	})
}

func (s *service) fireRedirect(sess *session, gen uint64, to string) {
	// Runs on a timer goroutine, so nothing may escape
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during redirect", "session_id", sess.id, "panic", r)
		}
	}()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed || sess.gen != gen || sess.renderer == nil {
		return
	}
	sess.redirect = nil

	s.logger.Info("redirecting after invalid route",
		"session_id", sess.id,
		"from", sess.current,
		"to", to,
	)
	s.navigate(context.Background(), sess, sess.renderer, to, true)
}

// guard runs a loading hook. A loading indicator that fails is logged and the
// navigation carries on.
func (s *service) guard(step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("renderer panicked", "step", step, "panic", r)
		}
	}()
	fn()
}

// renderFallback shows the generic internal error. A failure here is only logged.
func (s *service) renderFallback(ctx context.Context, renderer Renderer, routeErr *models.RouteError) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic rendering internal error", "panic", r)
		}
	}()

	if err := renderer.RenderError(ctx, routeErr); err != nil {
		s.logger.Error("failed to render internal error", "error", err)
	}
}

func (s *service) roll(spec models.DiceSpec) (*models.RollOutcome, error) {
	rolls, err := s.diceRoller.RollMany(spec.Quantity, spec.Sides)
	if err != nil {
		return nil, err
	}

	sum, err := s.diceRoller.Sum(rolls)
	if err != nil {
		return nil, err
	}

	return &models.RollOutcome{
		ID:       s.uuidGenerator.NewUUID(),
		Spec:     spec,
		Notation: spec.Notation(),
		Rolls:    rolls,
		Sum:      sum,
		RolledAt: s.clock.Now(),
	}, nil
}

// Roll validates notation and rolls it
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	spec, err := notation.Parse(input.Notation)
	if err != nil {
		return nil, err
	}

	outcome, err := s.roll(spec)
	if err != nil {
		return nil, err
	}

	return &RollOutput{Outcome: outcome}, nil
}

// OnRouteChange registers a listener
func (s *service) OnRouteChange(listener RouteListener) ListenerID {
	if listener == nil {
		return 0
	}

	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: s.nextID, listener: listener})
	return s.nextID
}

// OffRouteChange removes a listener
func (s *service) OffRouteChange(id ListenerID) bool {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	for i, entry := range s.listeners {
		if entry.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// emit notifies listeners in registration order. A panicking listener does
// not stop the others.
func (s *service) emit(event RouteChangeEvent) {
	s.listenersMu.RLock()
	entries := make([]listenerEntry, len(s.listeners))
	copy(entries, s.listeners)
	s.listenersMu.RUnlock()

	for _, entry := range entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("error in route change listener",
						"listener_id", entry.id,
						"panic", r,
					)
				}
			}()
			entry.listener(event)
		}()
	}
}

func (s *service) getOrCreateSession(id string) *session {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{id: id}
		s.sessions[id] = sess
	}
	return sess
}

// lockSession returns the locked session for id. A session closed or evicted
// while the caller waited for it is replaced by a fresh one.
func (s *service) lockSession(id string) *session {
	for {
		sess := s.getOrCreateSession(id)
		sess.mu.Lock()
		if !sess.closed {
			return sess
		}
		sess.mu.Unlock()
	}
}

// evictIdleSessions forgets sessions with no pending redirect that have not
// navigated for idleTimeout. Sessions busy navigating are skipped.
func (s *service) evictIdleSessions(now time.Time) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	if now.Sub(s.lastSweep) < s.idleTimeout {
		return
	}
	s.lastSweep = now

	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.redirect == nil && now.Sub(sess.lastSeen) >= s.idleTimeout {
			sess.closed = true
			delete(s.sessions, id)
			s.logger.Debug("evicted idle session", "session_id", id)
		}
		sess.mu.Unlock()
	}
}

// CloseSession stops a pending redirect and forgets the session
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.sessionsMu.Lock()
	sess, ok := s.sessions[input.SessionID]
	delete(s.sessions, input.SessionID)
	s.sessionsMu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cancelRedirect()
	sess.closed = true
	return nil
}

// GetStatus reports sampler and session information
func (s *service) GetStatus(ctx context.Context) (*GetStatusOutput, error) {
	s.sessionsMu.Lock()
	sessions := len(s.sessions)
	s.sessionsMu.Unlock()

	s.listenersMu.RLock()
	listeners := len(s.listeners)
	s.listenersMu.RUnlock()

	return &GetStatusOutput{
		Initialized: true,
		Random:      s.diceRoller.Info(),
		Sessions:    sessions,
		Listeners:   listeners,
		Timestamp:   s.clock.Now(),
	}, nil
}
