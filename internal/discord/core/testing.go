package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext builds an InteractionContext without a live gateway
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	return &TestInteractionContext{
		InteractionContext: &InteractionContext{
			Context:   context.Background(),
			UserID:    "test-user-123",
			UserName:  "tester",
			GuildID:   "test-guild-123",
			ChannelID: "test-channel-123",
			params:    make(map[string]any),
		},
	}
}

// WithParam adds a parameter the way a parsed command option would appear
func (t *TestInteractionContext) WithParam(key string, value any) *TestInteractionContext {
	t.params[key] = value
	return t
}

func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

func (t *TestInteractionContext) WithUserName(name string) *TestInteractionContext {
	t.UserName = name
	return t
}

func (t *TestInteractionContext) WithGuildID(guildID string) *TestInteractionContext {
	t.GuildID = guildID
	return t
}

func (t *TestInteractionContext) WithChannelID(channelID string) *TestInteractionContext {
	t.ChannelID = channelID
	return t
}

func (t *TestInteractionContext) WithMessageID(messageID string) *TestInteractionContext {
	t.MessageID = messageID
	return t
}

// WithPermissions gives the member the supplied permission bits
func (t *TestInteractionContext) WithPermissions(perms int64) *TestInteractionContext {
	t.Member = &discordgo.Member{
		User:        &discordgo.User{ID: t.UserID},
		Permissions: perms,
	}
	return t
}

// AsCommand simulates a slash command interaction
func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   t.GuildID,
			ChannelID: t.ChannelID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}

	if len(subcommand) > 0 {
		t.params["subcommand"] = subcommand[0]
	}

	return t
}

// AsComponent simulates a component interaction
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   t.GuildID,
			ChannelID: t.ChannelID,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
	t.parseComponentParams()
	return t
}

// MockResponder records everything sent through it
type MockResponder struct {
	mu sync.Mutex

	DeferCalls   []bool
	Responses    []*Response
	Edits        []*Response
	FollowUps    []*Response
	DeferError   error
	RespondError error
	EditError    error
	Deferred     bool
	Responded    bool
}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeferCalls = append(m.DeferCalls, ephemeral)
	if m.DeferError != nil {
		return m.DeferError
	}
	m.Deferred = true
	m.Responded = true
	return nil
}

func (m *MockResponder) Respond(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Responses = append(m.Responses, response)
	if m.RespondError != nil {
		return m.RespondError
	}
	m.Responded = true
	return nil
}

func (m *MockResponder) Edit(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "test-message-123"}, nil
}

func (m *MockResponder) HasResponded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Deferred
}

// LastResponse returns the last response sent or edited
func (m *MockResponder) LastResponse() *Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
