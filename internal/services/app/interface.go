package app

import (
	"context"

	"github.com/KirkDiggler/rollpath/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rollpath/internal/services/app Service
//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/KirkDiggler/rollpath/internal/services/app Renderer

// Service coordinates navigation: resolve the path, roll when needed, render
type Service interface {
	// Navigate handles one navigation event from initial load, a link or a redirect
	Navigate(ctx context.Context, input *NavigateInput) (*NavigateOutput, error)

	// Roll validates notation and rolls it without rendering
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// OnRouteChange registers a listener called for every resolved route.
	// Listeners run inside the navigation and must not block on it.
	OnRouteChange(listener RouteListener) ListenerID

	// OffRouteChange removes a listener, reporting whether it was registered
	OffRouteChange(id ListenerID) bool

	// CloseSession stops a live session's pending redirect and forgets it
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// GetStatus reports sampler and session information
	GetStatus(ctx context.Context) (*GetStatusOutput, error)
}

// Renderer turns resolved routes into output for one navigation surface.
// HideLoading is always called after ShowLoading, even when rendering fails.
type Renderer interface {
	ShowLoading(ctx context.Context)
	HideLoading(ctx context.Context)
	RenderHome(ctx context.Context) error
	RenderHelp(ctx context.Context) error
	RenderDice(ctx context.Context, outcome *models.RollOutcome) error
	RenderError(ctx context.Context, routeErr *models.RouteError) error
}
