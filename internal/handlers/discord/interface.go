package discord

import "github.com/bwmarrin/discordgo"

//go:generate mockgen -package=mocks -destination=mocks/mock_interaction_client.go github.com/KirkDiggler/rollpath/internal/handlers/discord InteractionClient

// InteractionClient is the part of *discordgo.Session used to answer interactions
type InteractionClient interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
