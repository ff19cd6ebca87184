// Package notation parses and validates dice notation such as "3d6".
package notation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rollpath/internal/models"
)

// Validation bounds
const (
	MinQuantity = 1
	MaxQuantity = 20
	MinSides    = 2
	MaxSides    = 1000
)

// FormatSuggestion is attached to format errors
const FormatSuggestion = "Try formats like: 1d10, 2d6, 5d20"

var dicePattern = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Rules describes the bounds enforced by Parse
type Rules struct {
	Quantity Limits
	Sides    Limits
	Pattern  string
}

// GetRules returns the validation rules
func GetRules() Rules {
	return Rules{
		Quantity: Limits{Min: MinQuantity, Max: MaxQuantity},
		Sides:    Limits{Min: MinSides, Max: MaxSides},
		Pattern:  dicePattern.String(),
	}
}

// Parse validates a dice notation string.
// Checks run in order: format, then quantity, then sides, so an input that
// violates both bounds reports the quantity violation.
func Parse(input string) (models.DiceSpec, error) {
	clean := strings.ToLower(strings.TrimSpace(input))
	if clean == "" {
		return models.DiceSpec{}, &ValidationError{
			Kind:    ErrEmpty,
			Message: "Dice notation cannot be empty",
		}
	}

	match := dicePattern.FindStringSubmatch(clean)
	if match == nil {
		return models.DiceSpec{}, &ValidationError{
			Kind:       ErrFormat,
			Message:    `Invalid dice notation format. Use format like "1d10" or "5d20"`,
			Suggestion: FormatSuggestion,
		}
	}

	quantity := atoi(match[1])
	sides := atoi(match[2])

	if err := validateQuantity(quantity); err != nil {
		return models.DiceSpec{}, err
	}
	if err := validateSides(sides); err != nil {
		return models.DiceSpec{}, err
	}

	return models.DiceSpec{Quantity: quantity, Sides: sides}, nil
}

// ParsePath validates a URL path. The empty path and "home" resolve to the
// home route, "help" to the help route, anything else must be dice notation.
func ParsePath(path string) models.Route {
	clean := strings.ToLower(strings.TrimPrefix(path, "/"))

	switch clean {
	case "", "home":
		return models.HomeRoute()
	case "help":
		return models.HelpRoute()
	}

	spec, err := Parse(clean)
	if err != nil {
		routeErr := &models.RouteError{
			Message:        err.Error(),
			ShouldRedirect: true,
			RedirectTo:     models.HelpPath,
			OriginalPath:   path,
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			routeErr.Message = verr.Message
			routeErr.Kind = string(verr.Kind)
		}
		return models.Route{
			Type:  models.RouteTypeError,
			Path:  path,
			Error: routeErr,
		}
	}

	return models.Route{
		Type:     models.RouteTypeDice,
		Path:     path,
		Spec:     spec,
		Notation: spec.Notation(),
	}
}

func validateQuantity(quantity int) error {
	limits := Limits{Min: MinQuantity, Max: MaxQuantity}
	switch {
	case quantity < MinQuantity:
		return &ValidationError{
			Kind:    ErrQuantity,
			Message: fmt.Sprintf("Quantity must be at least %d", MinQuantity),
			Value:   quantity,
			Limits:  limits,
			Bound:   BoundTooLow,
		}
	case quantity > MaxQuantity:
		return &ValidationError{
			Kind:    ErrQuantity,
			Message: fmt.Sprintf("Maximum %d dice allowed", MaxQuantity),
			Value:   quantity,
			Limits:  limits,
			Bound:   BoundTooHigh,
		}
	}
	return nil
}

func validateSides(sides int) error {
	limits := Limits{Min: MinSides, Max: MaxSides}
	switch {
	case sides < MinSides:
		return &ValidationError{
			Kind:    ErrSides,
			Message: fmt.Sprintf("Dice must have at least %d sides", MinSides),
			Value:   sides,
			Limits:  limits,
			Bound:   BoundTooLow,
		}
	case sides > MaxSides:
		return &ValidationError{
			Kind:    ErrSides,
			Message: fmt.Sprintf("Maximum %d sides allowed", MaxSides),
			Value:   sides,
			Limits:  limits,
			Bound:   BoundTooHigh,
		}
	}
	return nil
}

// atoi parses an ASCII digit run. Values that overflow int saturate so they
// still fail the upper bound check.
func atoi(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}
