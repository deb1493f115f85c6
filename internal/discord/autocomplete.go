package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// maxAutocompleteChoices is the Discord limit
const maxAutocompleteChoices = 25

// HandleAutocomplete suggests crop names for any focused "crop" option
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	var focused string
	found := false
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused && opt.Name == OptionCrop {
			focused = strings.ToLower(opt.StringValue())
			found = true
			break
		}
	}
	if !found {
		slog.Warn("Unhandled autocomplete command", "command", i.ApplicationCommandData().Name)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	crops, err := client.GetCatalog(ctx)
	if err != nil {
		slog.Error("Failed to load catalog for autocomplete", "error", err)
		return
	}

	names := make([]string, 0, len(crops))
	for _, c := range crops {
		names = append(names, c.Name)
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: cropChoices(names, focused),
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}

// cropChoices keeps the names containing the typed text, in catalog order
func cropChoices(names []string, typed string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxAutocompleteChoices)
	for _, name := range names {
		if len(choices) == maxAutocompleteChoices {
			break
		}
		if typed == "" || strings.Contains(strings.ToLower(name), typed) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		}
	}
	return choices
}
