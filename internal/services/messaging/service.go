package messaging

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rollpath/internal/dice"
	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/notation"
	"github.com/KirkDiggler/rollpath/internal/routes"
	"golang.org/x/text/message"
)

var (
	homeExamples  = []models.DiceSpec{{Quantity: 1, Sides: 10}, {Quantity: 1, Sides: 20}, {Quantity: 1, Sides: 100}, {Quantity: 2, Sides: 6}, {Quantity: 5, Sides: 10}, {Quantity: 3, Sides: 20}}
	helpExamples  = []models.DiceSpec{{Quantity: 1, Sides: 10}, {Quantity: 1, Sides: 20}, {Quantity: 2, Sides: 6}, {Quantity: 5, Sides: 10}, {Quantity: 1, Sides: 100}}
	helpTryLinks  = []models.DiceSpec{{Quantity: 1, Sides: 10}, {Quantity: 1, Sides: 20}, {Quantity: 5, Sides: 6}}
	errorExamples = []models.DiceSpec{{Quantity: 1, Sides: 10}, {Quantity: 1, Sides: 20}, {Quantity: 2, Sides: 6}, {Quantity: 5, Sides: 10}}

	critHitComments  = []string{i18n.MsgCritHit1, i18n.MsgCritHit2, i18n.MsgCritHit3}
	critFailComments = []string{i18n.MsgCritFail1, i18n.MsgCritFail2, i18n.MsgCritFail3}
)

// service implements the Service interface
type service struct {
	random dice.RandomInfo

	// Random number generator for selecting comments
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		random: config.Random,
		rand:   rand.New(rand.NewSource(seed)),
	}, nil
}

// GetHomePage returns the home page content
func (s *service) GetHomePage(ctx context.Context, input *GetHomePageInput) (*GetHomePageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	p := i18n.Printer(input.Language)

	return &GetHomePageOutput{
		Page: Page{
			Title:    p.Sprintf(i18n.MsgTitle),
			Intro:    p.Sprintf(i18n.MsgTagline),
			Examples: examples(p, homeExamples),
			Sections: []Section{
				{
					Heading: p.Sprintf(i18n.MsgHowToUse),
					Text:    p.Sprintf(i18n.MsgUsage),
				},
				{
					Heading: p.Sprintf(i18n.MsgSpecs),
					Items: append(s.limitItems(p),
						p.Sprintf(i18n.MsgRandomness, s.randomness(p)),
					),
				},
				s.markupSection(p),
			},
			Links: []Link{{Label: p.Sprintf(i18n.MsgHelp), Path: models.HelpPath}},
		},
	}, nil
}

// GetHelpPage returns the help page content
func (s *service) GetHelpPage(ctx context.Context, input *GetHelpPageInput) (*GetHelpPageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	p := i18n.Printer(input.Language)

	links := make([]Link, 0, len(helpTryLinks)+1)
	for _, spec := range helpTryLinks {
		links = append(links, Link{Label: p.Sprintf(i18n.MsgTry, spec.Notation()), Path: spec.Path()})
	}
	links = append(links, backHome(p))

	return &GetHelpPageOutput{
		Page: Page{
			Title:    p.Sprintf(i18n.MsgHelpTitle),
			Intro:    p.Sprintf(i18n.MsgTagline),
			Examples: examples(p, helpExamples),
			Sections: []Section{
				{
					Heading: p.Sprintf(i18n.MsgURLFormat),
					Text:    p.Sprintf(i18n.MsgUsage),
				},
				{
					Heading: p.Sprintf(i18n.MsgLimitsTitle),
					Items:   s.limitItems(p),
				},
				s.markupSection(p),
				{
					Heading: p.Sprintf(i18n.MsgRandomness, s.random.Method),
					Text:    s.randomness(p),
				},
			},
			Links: links,
		},
	}, nil
}

// GetRollResultMessage returns the content for a roll outcome
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Outcome == nil {
		return nil, ErrNilOutcome
	}
	p := i18n.Printer(input.Language)
	outcome := input.Outcome

	output := &GetRollResultMessageOutput{
		DiceType: outcome.Notation,
		Primary:  outcome.Primary(),
		Summary:  summary(outcome),
		Links: []Link{
			{Label: p.Sprintf(i18n.MsgRollAgain), Path: outcome.Spec.Path()},
			backHome(p),
		},
	}
	if !outcome.IsSingle() {
		output.Rolls = append([]int(nil), outcome.Rolls...)
		output.RollsLabel = p.Sprintf(i18n.MsgRolls)
		output.SumLabel = p.Sprintf(i18n.MsgTotal)
	}

	output.CommentType = commentType(outcome)
	switch output.CommentType {
	case CommentCriticalHit:
		output.Comment = p.Sprintf(s.pick(critHitComments))
	case CommentCriticalFail:
		output.Comment = p.Sprintf(s.pick(critFailComments))
	}

	return output, nil
}

// GetErrorMessage returns a user-friendly error page
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	p := i18n.Printer(input.Language)

	routeErr := input.Error
	if routeErr == nil {
		routeErr = &models.RouteError{Message: i18n.MsgInvalidURL}
	}
	text := routeErr.Message
	if text == "" {
		text = i18n.MsgInvalidURL
	}

	output := &GetErrorMessageOutput{
		Title:        p.Sprintf(i18n.MsgErrorTitle),
		Message:      p.Sprintf(text),
		Hint:         i18n.Hint(p, routeErr.Kind),
		Description:  i18n.RouteErrorText(p, routeErr),
		Kind:         routeErr.Kind,
		ValidFormats: p.Sprintf(i18n.MsgValidFormats),
		Usage:        p.Sprintf(i18n.MsgUsage),
		Examples:     examples(p, errorExamples),
		Links:        []Link{backHome(p)},
	}

	if routeErr.ShouldRedirect {
		output.RedirectTo = routeErr.RedirectTo
		if output.RedirectTo == "" {
			output.RedirectTo = models.HelpPath
		}
		if input.RedirectDelay > 0 {
			seconds := int(math.Ceil(input.RedirectDelay.Seconds()))
			output.Redirect = p.Sprintf(i18n.MsgRedirecting, seconds)
		}
	}

	return output, nil
}

// GetFatalMessage returns the page shown when a request cannot be handled at all
func (s *service) GetFatalMessage(ctx context.Context, input *GetFatalMessageInput) (*GetFatalMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	p := i18n.Printer(input.Language)

	return &GetFatalMessageOutput{
		Title:   p.Sprintf(i18n.MsgErrorTitle),
		Message: p.Sprintf(i18n.MsgUnexpected),
		Action:  p.Sprintf(i18n.MsgReload),
	}, nil
}

func (s *service) limitItems(p *message.Printer) []string {
	rules := notation.GetRules()
	return []string{
		p.Sprintf(i18n.MsgQuantityRange, i18n.Number(rules.Quantity.Min), i18n.Number(rules.Quantity.Max)),
		p.Sprintf(i18n.MsgSidesRange, i18n.Number(rules.Sides.Min), i18n.Number(rules.Sides.Max)),
	}
}

func (s *service) markupSection(p *message.Printer) Section {
	return Section{
		Heading: p.Sprintf(i18n.MsgForMachines),
		Text:    p.Sprintf(i18n.MsgMarkup),
		Items: []string{
			"#dice-result: " + p.Sprintf(i18n.MsgMarkupContainer),
			".result-primary[data-result]: " + p.Sprintf(i18n.MsgMarkupPrimary),
			".roll[data-roll]: " + p.Sprintf(i18n.MsgMarkupRoll),
		},
	}
}

func (s *service) randomness(p *message.Printer) string {
	if s.random.Secure {
		return p.Sprintf(i18n.MsgStrong)
	}
	return p.Sprintf(i18n.MsgWeak)
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

func examples(p *message.Printer, specs []models.DiceSpec) []Example {
	out := make([]Example, 0, len(specs))
	for _, spec := range specs {
		description := p.Sprintf(i18n.MsgManyDice, i18n.Number(spec.Quantity), i18n.Number(spec.Sides))
		if spec.Quantity == 1 {
			description = p.Sprintf(i18n.MsgOneDie, i18n.Number(spec.Sides))
		}
		out = append(out, Example{
			Notation:    spec.Notation(),
			Path:        routes.DiceURL(spec.Quantity, spec.Sides),
			Description: description,
		})
	}
	return out
}

func backHome(p *message.Printer) Link {
	return Link{Label: p.Sprintf(i18n.MsgBackHome), Path: models.HomePath}
}

// summary renders "1d20: 15" or "3d6: 2 + 5 + 6 = 13"
func summary(outcome *models.RollOutcome) string {
	if outcome.IsSingle() {
		return fmt.Sprintf("%s: %d", outcome.Notation, outcome.Primary())
	}

	faces := make([]string, len(outcome.Rolls))
	for i, roll := range outcome.Rolls {
		faces[i] = strconv.Itoa(roll)
	}
	return fmt.Sprintf("%s: %s = %d", outcome.Notation, strings.Join(faces, " + "), outcome.Sum)
}

func commentType(outcome *models.RollOutcome) CommentType {
	if len(outcome.Rolls) == 0 {
		return CommentNone
	}

	allMax, allOne := true, true
	for _, roll := range outcome.Rolls {
		if roll != outcome.Spec.Sides {
			allMax = false
		}
		if roll != 1 {
			allOne = false
		}
	}

	switch {
	case allMax:
		return CommentCriticalHit
	case allOne:
		return CommentCriticalFail
	}
	return CommentNone
}
