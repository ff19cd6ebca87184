package discord

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rollpath/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	colorResult = 0x00ff00 // Green
	colorPage   = 0x3498db // Blue
	colorError  = 0xff0000 // Red

	// NavPrefix prefixes the custom ID of navigation buttons, e.g. nav:/2d6
	NavPrefix = "nav:"

	// Discord allows five buttons per action row
	maxButtonsPerRow = 5
)

// NavCustomID returns the button custom ID that navigates to path
func NavCustomID(path string) string {
	return NavPrefix + path
}

// ParseNavCustomID returns the path of a navigation button
func ParseNavCustomID(customID string) (string, bool) {
	if !strings.HasPrefix(customID, NavPrefix) {
		return "", false
	}
	return strings.TrimPrefix(customID, NavPrefix), true
}

func pageEmbed(page messaging.Page) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🎲 " + page.Title,
		Description: page.Intro,
		Color:       colorPage,
	}

	// Examples go under the first section, which explains the URL format
	sections := page.Sections
	if len(page.Examples) > 0 && len(sections) > 0 {
		lines := make([]string, len(page.Examples))
		for i, example := range page.Examples {
			lines[i] = "`" + example.Path + "` " + example.Description
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  sections[0].Heading,
			Value: sections[0].Text + "\n" + strings.Join(lines, "\n"),
		})
		sections = sections[1:]
	}

	for _, section := range sections {
		value := section.Text
		if len(section.Items) > 0 {
			if value != "" {
				value += "\n"
			}
			value += "• " + strings.Join(section.Items, "\n• ")
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  section.Heading,
			Value: value,
		})
	}

	return embed
}

func rollEmbed(msg *messaging.GetRollResultMessageOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       msg.DiceType,
		Description: "# " + strconv.Itoa(msg.Primary),
		Color:       colorResult,
	}

	if len(msg.Rolls) > 0 {
		faces := make([]string, len(msg.Rolls))
		for i, roll := range msg.Rolls {
			faces[i] = "`" + strconv.Itoa(roll) + "`"
		}
		embed.Description = ""
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: msg.RollsLabel, Value: strings.Join(faces, " ")},
			{Name: msg.SumLabel, Value: "**" + strconv.Itoa(msg.Primary) + "**"},
		}
	}

	if msg.Comment != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Comment}
	}

	return embed
}

func errorEmbed(msg *messaging.GetErrorMessageOutput) *discordgo.MessageEmbed {
	examples := make([]string, len(msg.Examples))
	for i, example := range msg.Examples {
		examples[i] = "`" + example.Notation + "`"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "❌ " + msg.Title,
		Description: msg.Description,
		Color:       colorError,
		Fields: []*discordgo.MessageEmbedField{
			{Name: msg.ValidFormats, Value: msg.Usage + "\n" + strings.Join(examples, " ")},
		},
	}

	if msg.Redirect != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Redirect}
	}

	return embed
}

func fatalEmbed(msg *messaging.GetFatalMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ " + msg.Title,
		Description: msg.Message,
		Color:       colorError,
	}
}

// navButtons turns page links into rows of navigation buttons. The first
// link is the primary action.
func navButtons(links []messaging.Link) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent

	for i, link := range links {
		style := discordgo.SecondaryButton
		if i == 0 {
			style = discordgo.PrimaryButton
		}
		row = append(row, discordgo.Button{
			Label:    link.Label,
			Style:    style,
			CustomID: NavCustomID(link.Path),
		})
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}

	return rows
}
