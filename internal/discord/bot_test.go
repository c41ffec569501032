package discord

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/initiative-bot-discord/internal/services"
)

type nopMessenger struct {
	mu   sync.Mutex
	sent int
}

func (m *nopMessenger) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent++
	return &discordgo.Message{ID: fmt.Sprintf("m%d", m.sent), ChannelID: channelID, Content: content}, nil
}

func (m *nopMessenger) ChannelMessageDelete(_, _ string, _ ...discordgo.RequestOption) error {
	return nil
}

func (m *nopMessenger) MessageReactionAdd(_, _, _ string, _ ...discordgo.RequestOption) error {
	return nil
}

func (m *nopMessenger) MessageReactionRemove(_, _, _, _ string, _ ...discordgo.RequestOption) error {
	return nil
}

func newTestBot() *Bot {
	return NewBot(&BotConfig{
		Messenger:       &nopMessenger{},
		ServiceProvider: services.NewProvider(&services.ProviderConfig{}),
	})
}

// Every registered subcommand must reach a handler
func TestBot_RoutesEveryCommand(t *testing.T) {
	bot := newTestBot()

	for _, cmd := range Commands() {
		for _, sub := range cmd.Options {
			t.Run(cmd.Name+" "+sub.Name, func(t *testing.T) {
				ctx := core.NewTestInteractionContext().AsCommand(cmd.Name, sub.Name)
				for _, opt := range sub.Options {
					switch opt.Type {
					case discordgo.ApplicationCommandOptionInteger:
						ctx.WithParam(opt.Name, float64(1))
					default:
						ctx.WithParam(opt.Name, "x")
					}
				}

				responder := core.NewMockResponder()
				require.NoError(t, bot.Pipeline().Dispatch(ctx.InteractionContext, responder))

				response := responder.LastResponse()
				require.NotNil(t, response)
				assert.NotEqual(t, "I don't know how to handle that command.", response.Content)
			})
		}
	}
}

func TestBot_ExperienceNeedsGuild(t *testing.T) {
	bot := newTestBot()
	responder := core.NewMockResponder()

	ctx := core.NewTestInteractionContext().WithGuildID("").AsCommand("exp", "preview")
	require.NoError(t, bot.Pipeline().Dispatch(ctx.InteractionContext, responder))

	assert.Equal(t, "🚫 This command can only be used in a server.", responder.LastResponse().Content)
}

type fakeRegistrar struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (f *fakeRegistrar) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.appID, f.guildID, f.commands = appID, guildID, commands
	if f.err != nil {
		return nil, f.err
	}
	return commands, nil
}

func TestRegisterCommands(t *testing.T) {
	registrar := &fakeRegistrar{}

	require.NoError(t, RegisterCommands(registrar, "app", "guild"))

	assert.Equal(t, "app", registrar.appID)
	assert.Equal(t, "guild", registrar.guildID)
	require.Len(t, registrar.commands, 2)
	assert.Equal(t, "init", registrar.commands[0].Name)
	assert.Equal(t, "exp", registrar.commands[1].Name)
}

func TestRegisterCommands_Error(t *testing.T) {
	err := RegisterCommands(&fakeRegistrar{err: errors.New("401 Unauthorized")}, "app", "")

	assert.ErrorContains(t, err, "failed to register commands")
}
