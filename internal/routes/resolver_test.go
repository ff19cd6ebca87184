package routes

import (
	"testing"

	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantType models.RouteType
		wantSpec models.DiceSpec
		wantKind string
	}{
		{name: "root", path: "/", wantType: models.RouteTypeHome},
		{name: "empty", path: "", wantType: models.RouteTypeHome},
		{name: "home alias", path: "/home", wantType: models.RouteTypeHome},
		{name: "help", path: "/help", wantType: models.RouteTypeHelp},
		{name: "help upper", path: "/HELP", wantType: models.RouteTypeHelp},
		{name: "single die", path: "/1d20", wantType: models.RouteTypeDice, wantSpec: models.DiceSpec{Quantity: 1, Sides: 20}},
		{name: "no slash", path: "3d6", wantType: models.RouteTypeDice, wantSpec: models.DiceSpec{Quantity: 3, Sides: 6}},
		{name: "upper d", path: "/2D8", wantType: models.RouteTypeDice, wantSpec: models.DiceSpec{Quantity: 2, Sides: 8}},
		{name: "query ignored", path: "/4d10?lang=pt-BR", wantType: models.RouteTypeDice, wantSpec: models.DiceSpec{Quantity: 4, Sides: 10}},
		{name: "fragment ignored", path: "/help#limits", wantType: models.RouteTypeHelp},
		{name: "bad format", path: "/invalid", wantType: models.RouteTypeError, wantKind: "invalid_format"},
		{name: "too many dice", path: "/25d10", wantType: models.RouteTypeError, wantKind: "invalid_quantity"},
		{name: "too few sides", path: "/1d1", wantType: models.RouteTypeError, wantKind: "invalid_sides"},
		{name: "nested", path: "/dice/1d6", wantType: models.RouteTypeError, wantKind: "invalid_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := Resolve(tt.path)
			assert.Equal(t, tt.wantType, route.Type)

			switch tt.wantType {
			case models.RouteTypeDice:
				assert.Equal(t, tt.wantSpec, route.Spec)
				assert.Equal(t, tt.wantSpec.Notation(), route.Notation)
			case models.RouteTypeError:
				require.NotNil(t, route.Error)
				assert.Equal(t, tt.wantKind, route.Error.Kind)
				assert.True(t, route.Error.ShouldRedirect)
				assert.Equal(t, models.HelpPath, route.Error.RedirectTo)
			}
		})
	}
}

func TestResolveIsStateless(t *testing.T) {
	first := Resolve("/2d6")
	Resolve("/bogus")
	Resolve("/help")
	assert.Equal(t, first, Resolve("/2d6"))
}

func TestDiceURL(t *testing.T) {
	assert.Equal(t, "/5d20", DiceURL(5, 20))
	assert.Equal(t, models.RouteTypeDice, Resolve(DiceURL(20, 1000)).Type)
}

func TestIsInternalLink(t *testing.T) {
	origin := "https://dice.example.com"

	assert.True(t, IsInternalLink("/1d20", origin))
	assert.True(t, IsInternalLink("help", origin))
	assert.True(t, IsInternalLink("https://dice.example.com/2d6", origin))
	assert.True(t, IsInternalLink("https://DICE.example.com/2d6", origin))
	assert.False(t, IsInternalLink("https://github.com/KirkDiggler", origin))
	assert.False(t, IsInternalLink("//other.example.com/1d6", origin))
	assert.False(t, IsInternalLink("http://dice.example.com/1d6", origin))
	assert.False(t, IsInternalLink("http://%zz", origin))
	assert.False(t, IsInternalLink("/1d6", "not a url"))
}
