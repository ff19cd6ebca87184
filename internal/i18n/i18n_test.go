package i18n

import (
	"testing"

	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, Portuguese, Match("pt-BR,pt;q=0.9,en;q=0.8"))
	assert.Equal(t, Portuguese, Match("pt"))
	assert.Equal(t, English, Match("en-GB"))
	assert.Equal(t, English, Match("ja"))
	assert.Equal(t, English, Match(""))
	assert.Equal(t, English, Match(";;;"))
}

func TestParse(t *testing.T) {
	tag, ok := Parse("pt-BR")
	assert.True(t, ok)
	assert.Equal(t, Portuguese, tag)

	tag, ok = Parse("not a tag!")
	assert.False(t, ok)
	assert.Equal(t, English, tag)
}

func TestSupported(t *testing.T) {
	tags := Supported()
	require.Len(t, tags, 2)
	assert.Equal(t, Default(), tags[0])

	tags[0] = Portuguese
	assert.Equal(t, English, Supported()[0])
}

func TestRouteErrorTextEnglish(t *testing.T) {
	route := notation.ParsePath("/25d10")

	text := RouteErrorText(Printer(English), route.Error)
	assert.Equal(t, "Maximum 20 dice allowed\n\nQuantity must be between 1 and 20", text)
}

func TestRouteErrorTextPortuguese(t *testing.T) {
	p := Printer(Portuguese)

	text := RouteErrorText(p, notation.ParsePath("/1d1").Error)
	assert.Equal(t, "Os dados devem ter pelo menos 2 lados\n\nNúmero de lados deve estar entre 2 e 1000", text)

	text = RouteErrorText(p, notation.ParsePath("/abc").Error)
	assert.Contains(t, text, "Formato de notação inválido")
	assert.Contains(t, text, "5d6 (cinco dados de 6 lados)")
}

func TestRouteErrorTextWithoutKind(t *testing.T) {
	p := Printer(Portuguese)

	assert.Equal(t, "Erro interno do sistema. Tente novamente.", RouteErrorText(p, &models.RouteError{
		Message: MsgInternalError,
		Kind:    KindInternal,
	}))
	assert.Equal(t, "URL inválida", RouteErrorText(p, nil))
	assert.Equal(t, "URL inválida", RouteErrorText(p, &models.RouteError{}))
}

func TestKindsMatchNotation(t *testing.T) {
	assert.Equal(t, string(notation.ErrFormat), KindFormat)
	assert.Equal(t, string(notation.ErrQuantity), KindQuantity)
	assert.Equal(t, string(notation.ErrSides), KindSides)
	assert.Equal(t, notation.MaxQuantity, maxQuantity)
	assert.Equal(t, notation.MaxSides, maxSides)
}

func TestHintLimitsAreNotGrouped(t *testing.T) {
	assert.Equal(t, "Number of sides must be between 2 and 1000", Hint(Printer(English), KindSides))
	assert.Equal(t, "Número de lados deve estar entre 2 e 1000", Hint(Printer(Portuguese), KindSides))
	assert.Equal(t, "Quantity must be between 1 and 20", Hint(Printer(English), KindQuantity))
	assert.Equal(t, "", Hint(Printer(English), KindInternal))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1000", Number(1000))
	assert.Equal(t, "20", Number(20))
}
