package discord

import (
	"strings"

	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/notation"
	"github.com/bwmarrin/discordgo"
)

// RollCommand handles the /roll command
type RollCommand struct {
	BaseCommand
	navigator *navigator
}

// newRollCommand creates a new roll command handler
func newRollCommand(n *navigator) *RollCommand {
	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll dice using RPG notation",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "notation",
					Description: notation.FormatSuggestion,
					Required:    true,
				},
			},
		},
		navigator: n,
	}
}

// Handle processes a Discord interaction for the roll command
func (c *RollCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return c.handle(s, i.Interaction)
}

func (c *RollCommand) handle(client InteractionClient, i *discordgo.Interaction) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	value := ""
	for _, option := range data.Options {
		if option.Name == "notation" {
			value = option.StringValue()
		}
	}

	// The notation becomes a path, so an input with its own slash stays one segment
	return c.navigator.navigate(client, i, "/"+strings.TrimPrefix(strings.TrimSpace(value), "/"))
}

// DiceCommand handles the /dice command
type DiceCommand struct {
	BaseCommand
	navigator *navigator
}

func newDiceCommand(n *navigator) *DiceCommand {
	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Dice roller pages",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "Show how to use the dice roller",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "home",
					Description: "Show the home page with examples",
				},
			},
		},
		navigator: n,
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return c.handle(s, i.Interaction)
}

func (c *DiceCommand) handle(client InteractionClient, i *discordgo.Interaction) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	// Handle the appropriate subcommand
	switch data.Options[0].Name {
	case "help":
		return c.navigator.navigate(client, i, models.HelpPath)
	case "home":
		return c.navigator.navigate(client, i, models.HomePath)
	default:
		return RespondWithEphemeralMessage(client, i, "Unknown subcommand: "+data.Options[0].Name)
	}
}
