package core

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type contextKey string

const (
	// RequestIDKey holds the ID assigned by the request ID middleware
	RequestIDKey contextKey = "request_id"
)

// InteractionContext wraps a Discord interaction with the fields handlers
// read most often
type InteractionContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	UserID    string
	UserName  string
	GuildID   string
	ChannelID string

	// MessageID is the message a component was attached to
	MessageID string

	Member *discordgo.Member

	Context context.Context

	params map[string]any
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		Context:     ctx,
		params:      make(map[string]any),
	}

	switch {
	case i.Member != nil && i.Member.User != nil:
		ic.Member = i.Member
		ic.UserID = i.Member.User.ID
		ic.UserName = i.Member.User.Username
	case i.User != nil:
		ic.UserID = i.User.ID
		ic.UserName = i.User.Username
	}

	if i.Message != nil {
		ic.MessageID = i.Message.ID
	}

	ic.parseParams()

	return ic
}

func (ic *InteractionContext) parseParams() {
	switch ic.Interaction.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(ic.Interaction.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		ic.parseComponentParams()
	}
}

// parseOptions flattens subcommands and their options into params
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
		default:
			ic.params[opt.Name] = opt.Value
		}
	}
}

func (ic *InteractionContext) parseComponentParams() {
	customID := ic.Interaction.MessageComponentData().CustomID
	ic.params["custom_id"] = customID

	parsed, err := ParseCustomID(customID)
	if err != nil {
		return
	}
	ic.params["component_action"] = parsed.Action
	ic.params["component_target"] = parsed.Target
	ic.params["component_args"] = strings.Join(parsed.Args, CustomIDSeparator)
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) any {
	return ic.params[name]
}

// HasParam reports whether the user supplied the option
func (ic *InteractionContext) HasParam(name string) bool {
	_, ok := ic.params[name]
	return ok
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// GetIntParam retrieves an int parameter or returns 0.
// Discord delivers integer options as float64.
func (ic *InteractionContext) GetIntParam(name string) int {
	if val, ok := ic.params[name]; ok {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		}
	}
	return 0
}

// GetBoolParam retrieves a bool parameter or returns false
func (ic *InteractionContext) GetBoolParam(name string) bool {
	if val, ok := ic.params[name]; ok {
		if boolVal, ok := val.(bool); ok {
			return boolVal
		}
	}
	return false
}

func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// GetCustomID returns the custom ID for component interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	return ""
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// RequestID returns the ID assigned to this interaction, if any
func (ic *InteractionContext) RequestID() string {
	if id, ok := ic.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val any) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key any) any {
	return ic.Context.Value(key)
}
