package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rollpath/internal/services/messaging Service

// Service is the interface for the messaging service. It produces the
// localized text of every page, shared by all renderers.
type Service interface {
	// GetHomePage returns the home page content
	GetHomePage(ctx context.Context, input *GetHomePageInput) (*GetHomePageOutput, error)

	// GetHelpPage returns the help page content
	GetHelpPage(ctx context.Context, input *GetHelpPageInput) (*GetHelpPageOutput, error)

	// GetRollResultMessage returns the content for a roll outcome
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error page
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetFatalMessage returns the page shown when a request cannot be handled at all
	GetFatalMessage(ctx context.Context, input *GetFatalMessageInput) (*GetFatalMessageOutput, error)
}
