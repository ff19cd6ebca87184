package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Error kinds that carry a hint. They match notation's kinds and the
// coordinator's internal kinds.
const (
	KindFormat   = "invalid_format"
	KindQuantity = "invalid_quantity"
	KindSides    = "invalid_sides"
	KindInternal = "internal_error"
	KindRoll     = "roll_error"
)

const (
	minQuantity = 1
	maxQuantity = 20
	minSides    = 2
	maxSides    = 1000
)

// Message keys
const (
	MsgInternalError = "Internal system error. Try again."
	MsgRollError     = "Error generating dice. Try again."
	MsgInvalidURL    = "Invalid URL"
	MsgUnexpected    = "Unexpected error. Try reloading the page."
	MsgReload        = "Reload"
	MsgTotal         = "Total:"
	MsgRolls         = "Rolls"
	MsgBackHome      = "Back to home"
	MsgTitle         = "RPG Dice Roller"
	MsgHelpTitle     = "Help - RPG Dice Roller"
	MsgErrorTitle    = "Error"
	MsgValidFormats  = "Valid formats"
	MsgUsage         = "Use URLs in the format /[quantity]d[sides] to roll dice."
	MsgRedirecting   = "Redirecting to help in %d seconds."
	MsgRollAgain     = "Roll again"
	MsgHelp          = "Help"
	MsgHome          = "Home"
	MsgRandomness    = "Randomness: %s"
	MsgTagline       = "Generate random numbers with standard RPG dice notation through simple URLs."
	MsgHowToUse      = "How to use"
	MsgURLFormat     = "URL format"
	MsgLimitsTitle   = "Limits"
	MsgSpecs         = "Specifications"
	MsgForMachines   = "For developers and AI"
	MsgMarkup        = "Results use a fixed semantic structure:"
	MsgQuantityRange = "Quantity: %s to %s dice"
	MsgSidesRange    = "Sides: %s to %s per die"
	MsgOneDie        = "One %s-sided die"
	MsgManyDice      = "%s dice with %s sides"
	MsgTry           = "Try %s"
	MsgStrong        = "Cryptographically secure"
	MsgWeak          = "Pseudo-random fallback"

	MsgMarkupContainer = "main results container"
	MsgMarkupPrimary   = "primary result or total"
	MsgMarkupRoll      = "each individual die"

	MsgCritHit1  = "Critical hit!"
	MsgCritHit2  = "The dice gods smile upon you."
	MsgCritHit3  = "Maximum roll. Frame this one."
	MsgCritFail1 = "Critical fail!"
	MsgCritFail2 = "The dice have betrayed you."
	MsgCritFail3 = "Rock bottom. It can only go up from here."

	MsgFormatHint   = "Valid examples:\n• 1d10 (one 10-sided die)\n• 5d6 (five 6-sided dice)\n• 2d20 (two 20-sided dice)"
	MsgQuantityHint = "Quantity must be between %s and %s"
	MsgSidesHint    = "Number of sides must be between %s and %s"
)

func init() {
	pt := map[string]string{
		"Dice notation cannot be empty": "A notação de dados não pode estar vazia",
		`Invalid dice notation format. Use format like "1d10" or "5d20"`: `Formato de notação inválido. Use um formato como "1d10" ou "5d20"`,
		fmt.Sprintf("Quantity must be at least %d", minQuantity):       fmt.Sprintf("A quantidade deve ser pelo menos %d", minQuantity),
		fmt.Sprintf("Maximum %d dice allowed", maxQuantity):             fmt.Sprintf("Máximo de %d dados permitidos", maxQuantity),
		fmt.Sprintf("Dice must have at least %d sides", minSides):       fmt.Sprintf("Os dados devem ter pelo menos %d lados", minSides),
		fmt.Sprintf("Maximum %d sides allowed", maxSides):               fmt.Sprintf("Máximo de %d lados permitidos", maxSides),

		MsgInternalError: "Erro interno do sistema. Tente novamente.",
		MsgRollError:     "Erro ao gerar dados. Tente novamente.",
		MsgInvalidURL:    "URL inválida",
		MsgUnexpected:    "Erro inesperado. Tente recarregar a página.",
		MsgReload:        "Recarregar",
		MsgTotal:         "Total:",
		MsgRolls:         "Rolagens",
		MsgBackHome:      "Voltar ao início",
		MsgTitle:         "Gerador de Dados RPG",
		MsgHelpTitle:     "Ajuda - Gerador de Dados RPG",
		MsgErrorTitle:    "Erro",
		MsgValidFormats:  "Formatos válidos",
		MsgUsage:         "Use URLs no formato /[quantidade]d[lados] para gerar dados.",
		MsgRedirecting:   "Redirecionando para a ajuda em %d segundos.",
		MsgRollAgain:     "Rolar novamente",
		MsgHelp:          "Ajuda",
		MsgHome:          "Início",
		MsgRandomness:    "Aleatoriedade: %s",
		MsgTagline:       "Gere números aleatórios usando notação padrão de dados de RPG através de URLs simples.",
		MsgHowToUse:      "Como usar",
		MsgURLFormat:     "Formato de URL",
		MsgLimitsTitle:   "Limites",
		MsgSpecs:         "Especificações",
		MsgForMachines:   "Para desenvolvedores e IA",
		MsgMarkup:        "O HTML gerado segue uma estrutura semântica específica:",
		MsgQuantityRange: "Quantidade: %s a %s dados",
		MsgSidesRange:    "Lados: %s a %s por dado",
		MsgOneDie:        "Um dado de %s lados",
		MsgManyDice:      "%s dados de %s lados",
		MsgTry:           "Testar %s",
		MsgStrong:        "Criptograficamente segura",
		MsgWeak:          "Pseudoaleatória (alternativa)",

		MsgMarkupContainer: "container principal dos resultados",
		MsgMarkupPrimary:   "resultado principal ou soma total",
		MsgMarkupRoll:      "resultados individuais de cada dado",

		MsgCritHit1:  "Acerto crítico!",
		MsgCritHit2:  "Os deuses dos dados sorriem para você.",
		MsgCritHit3:  "Rolagem máxima. Guarde essa.",
		MsgCritFail1: "Falha crítica!",
		MsgCritFail2: "Os dados te traíram.",
		MsgCritFail3: "Fundo do poço. Daqui só dá para subir.",

		MsgFormatHint:   "Exemplos válidos:\n• 1d10 (um dado de 10 lados)\n• 5d6 (cinco dados de 6 lados)\n• 2d20 (dois dados de 20 lados)",
		MsgQuantityHint: "Quantidade deve estar entre %s e %s",
		MsgSidesHint:    "Número de lados deve estar entre %s e %s",
	}

	register(Portuguese, pt)
}

func register(tag language.Tag, messages map[string]string) {
	for key, msg := range messages {
		if err := message.SetString(tag, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %s %q: %v", tag, key, err))
		}
	}
}
