package discord

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
)

// RendererConfig holds the dependencies of an InteractionRenderer
type RendererConfig struct {
	Client      InteractionClient
	Interaction *discordgo.Interaction
	Messaging   messaging.Service

	// Language is used when the interaction carries no usable locale
	Language language.Tag

	// RedirectDelay is shown on error pages that redirect
	RedirectDelay time.Duration

	Logger *slog.Logger
}

// InteractionRenderer renders routes into the response of one interaction.
// ShowLoading defers the response and every render edits it, so a later
// redirect can reuse the same renderer.
type InteractionRenderer struct {
	mu sync.Mutex

	client        InteractionClient
	interaction   *discordgo.Interaction
	messaging     messaging.Service
	language      language.Tag
	redirectDelay time.Duration
	logger        *slog.Logger

	// responded is set once Discord has acknowledged the interaction
	responded bool

	// rendered is set when the current cycle produced a page
	rendered bool
}

// NewInteractionRenderer creates a renderer for one interaction
func NewInteractionRenderer(cfg *RendererConfig) *InteractionRenderer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &InteractionRenderer{
		client:        cfg.Client,
		interaction:   cfg.Interaction,
		messaging:     cfg.Messaging,
		language:      interactionLanguage(cfg.Interaction, cfg.Language),
		redirectDelay: cfg.RedirectDelay,
		logger:        logger,
	}
}

// interactionLanguage prefers the user's locale, then the guild's
func interactionLanguage(i *discordgo.Interaction, fallback language.Tag) language.Tag {
	if i != nil {
		if tag, ok := i18n.Parse(string(i.Locale)); ok {
			return tag
		}
		if i.GuildLocale != nil {
			if tag, ok := i18n.Parse(string(*i.GuildLocale)); ok {
				return tag
			}
		}
	}
	return fallback
}

// Language returns the locale pages are rendered in
func (r *InteractionRenderer) Language() language.Tag {
	return r.language
}

// ShowLoading acknowledges the interaction so Discord shows a thinking state
func (r *InteractionRenderer) ShowLoading(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rendered = false
	if r.responded {
		return
	}

	responseType := discordgo.InteractionResponseDeferredChannelMessageWithSource
	if r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseDeferredMessageUpdate
	}

	if err := r.client.InteractionRespond(r.interaction, &discordgo.InteractionResponse{Type: responseType}); err != nil {
		r.logger.Error("failed to defer interaction",
			"interaction_id", r.interaction.ID,
			"error", err,
		)
		return
	}
	r.responded = true
}

// HideLoading replaces a thinking state that no render filled in
func (r *InteractionRenderer) HideLoading(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.responded || r.rendered {
		return
	}

	output, err := r.messaging.GetFatalMessage(ctx, &messaging.GetFatalMessageInput{Language: r.language})
	if err != nil {
		r.logger.Error("failed to get fatal message", "error", err)
		return
	}
	if err := r.edit(fatalEmbed(output), nil); err != nil {
		r.logger.Error("failed to clear loading state",
			"interaction_id", r.interaction.ID,
			"error", err,
		)
	}
}

// RenderHome renders the home page
func (r *InteractionRenderer) RenderHome(ctx context.Context) error {
	output, err := r.messaging.GetHomePage(ctx, &messaging.GetHomePageInput{Language: r.language})
	if err != nil {
		return err
	}
	return r.render(pageEmbed(output.Page), navButtons(output.Page.Links))
}

// RenderHelp renders the help page
func (r *InteractionRenderer) RenderHelp(ctx context.Context) error {
	output, err := r.messaging.GetHelpPage(ctx, &messaging.GetHelpPageInput{Language: r.language})
	if err != nil {
		return err
	}
	return r.render(pageEmbed(output.Page), navButtons(output.Page.Links))
}

// RenderDice renders a roll outcome
func (r *InteractionRenderer) RenderDice(ctx context.Context, outcome *models.RollOutcome) error {
	output, err := r.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		Language: r.language,
		Outcome:  outcome,
	})
	if err != nil {
		return err
	}
	return r.render(rollEmbed(output), navButtons(output.Links))
}

// RenderError renders an error page
func (r *InteractionRenderer) RenderError(ctx context.Context, routeErr *models.RouteError) error {
	output, err := r.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Language:      r.language,
		Error:         routeErr,
		RedirectDelay: r.redirectDelay,
	})
	if err != nil {
		return err
	}
	return r.render(errorEmbed(output), navButtons(output.Links))
}

func (r *InteractionRenderer) render(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.edit(embed, components); err != nil {
		return err
	}
	r.rendered = true
	return nil
}

// edit writes the message. Caller holds mu.
func (r *InteractionRenderer) edit(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	embeds := []*discordgo.MessageEmbed{embed}

	if !r.responded {
		responseType := discordgo.InteractionResponseChannelMessageWithSource
		if r.interaction.Type == discordgo.InteractionMessageComponent {
			responseType = discordgo.InteractionResponseUpdateMessage
		}
		if err := r.client.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: responseType,
			Data: &discordgo.InteractionResponseData{
				Embeds:     embeds,
				Components: components,
			},
		}); err != nil {
			return err
		}
		r.responded = true
		return nil
	}

	content := ""
	_, err := r.client.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}
