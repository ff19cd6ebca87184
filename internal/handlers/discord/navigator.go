package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rollpath/internal/services/app"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
)

// navigator turns interactions into navigations of the channel's session
type navigator struct {
	appService    app.Service
	messaging     messaging.Service
	language      language.Tag
	redirectDelay time.Duration
	logger        *slog.Logger
}

func (n *navigator) navigate(c InteractionClient, i *discordgo.Interaction, path string) error {
	ctx := context.Background()

	renderer := NewInteractionRenderer(&RendererConfig{
		Client:        c,
		Interaction:   i,
		Messaging:     n.messaging,
		Language:      n.language,
		RedirectDelay: n.redirectDelay,
		Logger:        n.logger,
	})

	output, err := n.appService.Navigate(ctx, &app.NavigateInput{
		SessionID: i.ChannelID,
		Path:      path,
		Renderer:  renderer,
	})
	if err != nil {
		n.logger.Error("error navigating",
			"channel_id", i.ChannelID,
			"path", path,
			"error", err,
		)
		return RespondWithError(c, i, err.Error())
	}

	n.logger.Debug("navigated",
		"channel_id", i.ChannelID,
		"path", path,
		"route", output.Route.Type,
		"redirect_scheduled", output.RedirectScheduled,
		"duration_ms", output.Duration.Milliseconds(),
	)
	return output.InternalError
}
