package messaging

import (
	"time"

	"github.com/KirkDiggler/rollpath/internal/dice"
	"github.com/KirkDiggler/rollpath/internal/models"
	"golang.org/x/text/language"
)

// CommentType represents the kind of flavor comment attached to a roll
type CommentType string

const (
	// CommentNone means the roll gets no comment
	CommentNone CommentType = ""

	// CommentCriticalHit is used when every die shows its highest face
	CommentCriticalHit CommentType = "critical_hit"

	// CommentCriticalFail is used when every die shows a one
	CommentCriticalFail CommentType = "critical_fail"
)

// Link is a navigation link on a page
type Link struct {
	// Label is the link text
	Label string

	// Path is the internal path the link navigates to
	Path string
}

// Example is a dice notation example with a description
type Example struct {
	Notation    string
	Path        string
	Description string
}

// Section is a titled block of text and list items
type Section struct {
	Heading string
	Text    string
	Items   []string
}

// Page is the content shared by the home and help pages
type Page struct {
	Title    string
	Intro    string
	Examples []Example
	Sections []Section

	// Links are shortcuts shown at the bottom of the page
	Links []Link
}

// GetHomePageInput contains parameters for the home page
type GetHomePageInput struct {
	Language language.Tag
}

// GetHomePageOutput contains the home page
type GetHomePageOutput struct {
	Page Page
}

// GetHelpPageInput contains parameters for the help page
type GetHelpPageInput struct {
	Language language.Tag
}

// GetHelpPageOutput contains the help page
type GetHelpPageOutput struct {
	Page Page
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	Language language.Tag
	Outcome  *models.RollOutcome
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	// DiceType is the canonical notation, e.g. 3d6
	DiceType string

	// Primary is the single die value, or the sum for several dice
	Primary int

	// Rolls are the individual dice, only set when more than one die was rolled
	Rolls []int

	// RollsLabel and SumLabel label the dice and the total for several dice
	RollsLabel string
	SumLabel   string

	// Summary is a one-line plain text version, e.g. "3d6: 2 + 5 + 6 = 13"
	Summary string

	// CommentType and Comment describe a critical roll, if any
	CommentType CommentType
	Comment     string

	// Links are "roll again" and "back home"
	Links []Link
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Language language.Tag

	// Error is the route error to describe
	Error *models.RouteError

	// RedirectDelay is shown as a countdown when the error redirects
	RedirectDelay time.Duration
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Hint    string
	Kind    string

	// Description is Message followed by Hint, for surfaces with one text block
	Description string

	// Redirect is the countdown notice, empty when the error does not redirect
	Redirect   string
	RedirectTo string

	// ValidFormats heads the example links
	ValidFormats string
	Usage        string
	Examples     []Example
	Links        []Link
}

// GetFatalMessageInput contains parameters for the fatal error page
type GetFatalMessageInput struct {
	Language language.Tag
}

// GetFatalMessageOutput contains the fatal error page
type GetFatalMessageOutput struct {
	Title   string
	Message string

	// Action labels the reload button
	Action string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Random describes the dice sampler, shown on the home and help pages
	Random dice.RandomInfo

	// Seed seeds comment selection; zero uses the wall clock
	Seed int64
}
