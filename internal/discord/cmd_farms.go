package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/format"
)

// Option names shared by the farm commands
const (
	OptionCrop         = "crop"
	OptionPrice        = "price"
	OptionLimit        = "limit"
	OptionEligibleOnly = "eligible_only"
	OptionEffort       = "effort"
	OptionLevel        = "level"
	OptionLandSize     = "land_size"
)

var minZero = 0.0

// FarmsCommand lists crops ranked by profit per hour for the caller's settings
func FarmsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "farms",
		Description: "Rank crops by profit per hour for your settings",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLimit,
				Description: fmt.Sprintf("How many crops to show (default %d)", DefaultRankingLimit),
				MinValue:    &minLimit,
				MaxValue:    MaxRankingLimit,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        OptionEligibleOnly,
				Description: "Hide crops you can't plant yet",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)
		opts := optionMap(i)

		limit := DefaultRankingLimit
		if opt, ok := opts[OptionLimit]; ok {
			limit = int(opt.IntValue())
		}
		eligibleOnly := false
		if opt, ok := opts[OptionEligibleOnly]; ok {
			eligibleOnly = opt.BoolValue()
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		ranked, err := client.GetRanking(ctx, profileFor(user))
		if err != nil {
			slog.Error("Failed to get ranking", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		title := fmt.Sprintf("🌾 Best crops for %s", user.Username)
		sendEmbed(s, i, createEmbed(title, formatRanking(ranked, limit, eligibleOnly), ColorRanking))
	}

	return cmd, handler
}

// FarmCommand shows the cost and revenue breakdown of one crop
func FarmCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "farm",
		Description: "Show the profit breakdown of a crop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptionCrop,
				Description:  "Crop name",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)
		cropName := optionMap(i)[OptionCrop].StringValue()

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		detail, err := client.GetFarm(ctx, profileFor(user), cropName)
		if err != nil {
			slog.Error("Failed to get farm detail", "user_id", user.ID, "crop", cropName, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, farmDetailEmbed(detail))
	}

	return cmd, handler
}

func farmDetailEmbed(d *FarmDetail) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf("🌱 %s", d.Crop.Name),
		fmt.Sprintf("%d plots on %s land · price %s", d.PlotCount, format.LandSize(d.LandSize), format.Profit(d.Price)),
		ColorDetail)
	if d.Crop.ImageRef != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: d.Crop.ImageRef}
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Profit / hour", Value: format.Profit(d.ProfitPerHour), Inline: true},
		{Name: "XP / hour", Value: format.XP(d.XPPerHour), Inline: true},
		{Name: "Harvest time", Value: fmt.Sprintf("%sh", format.XP(d.EffectiveHarvestTime)), Inline: true},
		{Name: "Planting cost", Value: format.Profit(d.TotalPlantingCost), Inline: true},
		{Name: "Gross revenue", Value: format.Profit(d.GrossRevenueTotal), Inline: true},
		{Name: "Market fee", Value: format.Profit(d.MarketFee), Inline: true},
		{Name: "Net profit", Value: format.Profit(d.NetProfitTotal), Inline: true},
		{Name: "Net / planting", Value: format.Profit(d.NetProfitPerPlanting), Inline: true},
		{Name: "ROI", Value: FormatROI(d), Inline: true},
		{Name: "Effort needed", Value: format.XP(d.EffortRequired), Inline: true},
		{Name: "Level", Value: fmt.Sprintf("%d", d.Crop.LevelRequirement), Inline: true},
	}
	return embed
}

// SetPriceCommand stores the market price the caller sees for a crop
func SetPriceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "setprice",
		Description: "Set the market price of a crop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptionCrop,
				Description:  "Crop name",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionPrice,
				Description: "Price per unit",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)
		opts := optionMap(i)
		cropName := opts[OptionCrop].StringValue()
		price := strings.TrimSpace(opts[OptionPrice].StringValue())

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.SetPrice(ctx, profileFor(user), cropName, price)
		if err != nil {
			slog.Error("Failed to set price", "user_id", user.ID, "crop", cropName, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		msg := fmt.Sprintf("**%s** now sells for **%s**", resp.Crop, format.Profit(resp.Price))
		sendEmbed(s, i, createEmbed("💰 Price Updated", msg, ColorPrice))
	}

	return cmd, handler
}

// SettingsCommand shows or changes effort, level and land size
func SettingsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	landChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.LandSizes))
	for _, l := range domain.LandSizes {
		landChoices = append(landChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  format.LandSize(l),
			Value: l.String(),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "settings",
		Description: "Show or change your farm settings",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        OptionEffort,
				Description: "Available effort",
				MinValue:    &minZero,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLevel,
				Description: "Character level",
				MinValue:    &minZero,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionLandSize,
				Description: "Land size",
				Choices:     landChoices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)
		update := settingsUpdate(optionMap(i))

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var (
			prefs *domain.Preferences
			err   error
			title = "⚙️ Your Settings"
		)
		if update.Empty() {
			prefs, err = client.GetPreferences(ctx, profileFor(user))
		} else {
			prefs, err = client.UpdatePreferences(ctx, profileFor(user), update)
			title = "⚙️ Settings Updated"
		}
		if err != nil {
			slog.Error("Failed to handle settings", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed(title, "", ColorSettings)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Effort", Value: format.XP(prefs.AvailableEffort), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", prefs.CharacterLevel), Inline: true},
			{Name: "Land", Value: format.LandSize(prefs.LandSize), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

func settingsUpdate(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) domain.PreferencesUpdate {
	var update domain.PreferencesUpdate
	if opt, ok := opts[OptionEffort]; ok {
		effort := opt.FloatValue()
		update.AvailableEffort = &effort
	}
	if opt, ok := opts[OptionLevel]; ok {
		level := int(opt.IntValue())
		update.CharacterLevel = &level
	}
	if opt, ok := opts[OptionLandSize]; ok {
		land := domain.LandSize(opt.StringValue())
		update.LandSize = &land
	}
	return update
}

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *APIClient) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Pong! 🏓",
			},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}
