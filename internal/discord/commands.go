package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// CommandRegistrar is the slice of the Discord REST API used to publish slash commands
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var minOne = 1.0

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func intOption(name, description string, positive bool) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    true,
	}
	if positive {
		opt.MinValue = &minOne
	}
	return opt
}

// Commands returns the /init and /exp slash command definitions
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "init",
			Description: "Track combat initiative in this channel",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("show", "Show the current initiative order"),
				subcommand("add", "Add a character to the initiative",
					stringOption("name", "Character name", true),
					intOption("initiative", "Initiative roll", false),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "type",
						Description: "Player character or NPC",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Player", Value: "pc"},
							{Name: "NPC", Value: "npc"},
						},
					},
				),
				subcommand("remove", "Remove a character from the initiative",
					stringOption("name", "Character name", true),
				),
				subcommand("start", "Start combat at round 1"),
				subcommand("end", "End combat and keep the roster"),
				subcommand("next", "Advance to the next turn"),
				subcommand("effect", "Add a timed effect to a character",
					stringOption("character", "Character name", true),
					stringOption("effect", "Effect name", true),
					intOption("duration", "Duration in rounds", true),
					stringOption("description", "What the effect does", false),
				),
				subcommand("remove_effect", "Remove an effect from a character",
					stringOption("character", "Character name", true),
					stringOption("effect", "Effect name", true),
				),
				subcommand("clear", "Clear the initiative list"),
				subcommand("effects", "Show active effects",
					stringOption("character", "Only show this character", false),
				),
			},
		},
		{
			Name:        "exp",
			Description: "Record experience earned this session",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("create", "Open a new experience sheet"),
				subcommand("add_party", "Add experience shared by the whole party",
					intOption("amount", "Experience points", true),
					stringOption("achievement", "What the party did", true),
				),
				subcommand("add_player", "Add experience for one player",
					stringOption("character", "Character name", true),
					intOption("amount", "Experience points", true),
					stringOption("achievement", "What the player did", true),
				),
				subcommand("remove_party", "Remove a party entry",
					intOption("index", "Entry number from the preview", true),
				),
				subcommand("remove_player", "Remove a player entry",
					stringOption("character", "Character name", true),
					intOption("index", "Entry number from the preview", true),
				),
				subcommand("preview", "Preview the open experience sheet"),
				subcommand("finalize", "Finalize and save the sheet",
					stringOption("session_name", "Name to save the session under", true),
				),
				subcommand("clear_session", "Discard the open experience sheet"),
				subcommand("history", "List saved sessions or show one",
					stringOption("session_name", "Saved session to show", false),
				),
			},
		},
	}
}

// RegisterCommands replaces the application's commands in one call. An empty
// guildID registers them globally.
func RegisterCommands(registrar CommandRegistrar, appID, guildID string) error {
	registered, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	for _, cmd := range registered {
		log.Printf("[Discord] Registered command: %s", cmd.Name)
	}

	return nil
}
