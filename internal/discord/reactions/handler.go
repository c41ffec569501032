// Package reactions turns emoji reactions on status and confirmation
// messages into initiative operations.
package reactions

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/render"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/status"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/services/confirmation"
	initiativesvc "github.com/KirkDiggler/initiative-bot-discord/internal/services/initiative"
)

// StatusBoard is what the handler needs from the status publisher
type StatusBoard interface {
	Publish(ctx context.Context, channelID string) error
	ChannelFor(messageID string) (string, bool)
	RemoveReaction(channelID, messageID, emoji, userID string)
}

// HandlerConfig holds the handler's dependencies
type HandlerConfig struct {
	Messenger         status.Messenger
	Status            StatusBoard
	InitiativeService initiativesvc.Service
	Confirmations     confirmation.Manager
}

// Reaction is a platform-neutral view of a reaction event
type Reaction struct {
	ChannelID string
	MessageID string
	UserID    string
	Emoji     string
	IsBot     bool
}

// Handler reacts to the control emojis on live status messages and to
// answers on clear prompts
type Handler struct {
	messenger     status.Messenger
	status        StatusBoard
	initiative    initiativesvc.Service
	confirmations confirmation.Manager
}

func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Messenger == nil || cfg.Status == nil || cfg.InitiativeService == nil || cfg.Confirmations == nil {
		panic("messenger, status, initiative service and confirmations are required")
	}

	return &Handler{
		messenger:     cfg.Messenger,
		status:        cfg.Status,
		initiative:    cfg.InitiativeService,
		confirmations: cfg.Confirmations,
	}
}

// HandleReactionAdd is registered with the discordgo session
func (h *Handler) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r == nil || r.MessageReaction == nil {
		return
	}

	if s != nil && s.State != nil && s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	h.Handle(context.Background(), &Reaction{
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     r.Emoji.Name,
		IsBot:     r.Member != nil && r.Member.User != nil && r.Member.User.Bot,
	})
}

// Handle processes one reaction. Reactions on messages the bot does not
// track are ignored.
func (h *Handler) Handle(ctx context.Context, r *Reaction) {
	if r.IsBot {
		return
	}

	if pending, ok := h.confirmations.GetByMessage(r.MessageID); ok {
		if pending.Kind == confirmation.KindClearInitiative {
			h.answerClear(ctx, pending, r.Emoji)
		}
		return
	}

	channelID, ok := h.status.ChannelFor(r.MessageID)
	if !ok {
		return
	}

	h.status.RemoveReaction(channelID, r.MessageID, r.Emoji, r.UserID)

	switch {
	case render.SameEmoji(r.Emoji, render.EmojiNextTurn):
		h.nextTurn(ctx, channelID)
	case render.SameEmoji(r.Emoji, render.EmojiStart):
		h.startCombat(ctx, channelID)
	case render.SameEmoji(r.Emoji, render.EmojiEnd):
		h.endCombat(ctx, channelID)
	case render.SameEmoji(r.Emoji, render.EmojiClear):
		h.askToClear(channelID, r.UserID)
	}
}

func (h *Handler) nextTurn(ctx context.Context, channelID string) {
	result, err := h.initiative.NextTurn(ctx, channelID)
	if err != nil {
		switch {
		case errors.Is(err, initiativesvc.ErrNoCombatants):
			h.send(channelID, render.NoCombatants)
			return
		case dnderr.IsFailedPrecondition(err):
			h.send(channelID, render.NoActiveCombat)
			return
		}
		log.Printf("[Initiative] Next turn in channel %s failed: %v", channelID, err)
		return
	}

	h.send(channelID, render.TurnAnnouncement(result.Turn))
	h.publish(ctx, channelID)
}

func (h *Handler) startCombat(ctx context.Context, channelID string) {
	tracker, err := h.initiative.StartCombat(ctx, channelID)
	if err != nil {
		switch {
		case errors.Is(err, initiativesvc.ErrCombatInProgress):
			h.send(channelID, render.AlreadyInCombat)
			return
		case errors.Is(err, initiativesvc.ErrNoCombatants):
			h.send(channelID, render.NoCombatants)
			return
		}
		log.Printf("[Initiative] Start combat in channel %s failed: %v", channelID, err)
		return
	}

	h.send(channelID, render.CombatStarted(tracker.Round))
	h.publish(ctx, channelID)
	if current := tracker.Current(); current != nil {
		h.send(channelID, render.CurrentTurn(current))
	}
}

func (h *Handler) endCombat(ctx context.Context, channelID string) {
	if _, err := h.initiative.EndCombat(ctx, channelID); err != nil {
		if errors.Is(err, initiativesvc.ErrCombatNotStarted) {
			h.send(channelID, render.NoCombatToEnd)
			return
		}
		log.Printf("[Initiative] End combat in channel %s failed: %v", channelID, err)
		return
	}

	h.send(channelID, render.CombatEnded)
	h.publish(ctx, channelID)
}

// askToClear posts a prompt that is answered with ✅ or ❌ before the
// confirmation times out
func (h *Handler) askToClear(channelID, userID string) {
	prompt, err := h.messenger.ChannelMessageSend(channelID, render.ClearPrompt)
	if err != nil {
		log.Printf("[Discord] Failed to send clear prompt to channel %s: %v", channelID, err)
		return
	}

	pending, err := h.confirmations.Begin(&confirmation.BeginInput{
		Kind:      confirmation.KindClearInitiative,
		ScopeID:   channelID,
		ChannelID: channelID,
		UserID:    userID,
		OnExpire: func(p confirmation.Pending) {
			h.send(p.ChannelID, render.TimedOut)
			h.deleteMessage(p.ChannelID, prompt.ID)
		},
	})
	if err != nil {
		log.Printf("[Confirmation] Failed to begin clear for channel %s: %v", channelID, err)
		h.deleteMessage(channelID, prompt.ID)
		return
	}

	if err := h.confirmations.AttachMessage(pending.Token, prompt.ID); err != nil {
		log.Printf("[Confirmation] Failed to attach prompt %s: %v", prompt.ID, err)
		return
	}

	for _, emoji := range []string{render.EmojiConfirm, render.EmojiCancel} {
		if err := h.messenger.MessageReactionAdd(channelID, prompt.ID, emoji); err != nil {
			log.Printf("[Discord] Failed to add %s to prompt %s: %v", emoji, prompt.ID, err)
		}
	}
}

func (h *Handler) answerClear(ctx context.Context, pending *confirmation.Pending, emoji string) {
	var confirmed bool
	switch {
	case render.SameEmoji(emoji, render.EmojiConfirm):
		confirmed = true
	case render.SameEmoji(emoji, render.EmojiCancel):
		confirmed = false
	default:
		return
	}

	// Another answer or the timeout got there first
	if _, err := h.confirmations.Resolve(pending.Token, confirmed); err != nil {
		return
	}

	if confirmed {
		if _, err := h.initiative.Clear(ctx, pending.ScopeID); err != nil {
			log.Printf("[Initiative] Clear in channel %s failed: %v", pending.ScopeID, err)
		} else {
			h.send(pending.ChannelID, render.InitiativeClear)
			h.publish(ctx, pending.ScopeID)
		}
	} else {
		h.send(pending.ChannelID, render.Cancelled)
	}

	h.deleteMessage(pending.ChannelID, pending.MessageID)
}

func (h *Handler) publish(ctx context.Context, channelID string) {
	if err := h.status.Publish(ctx, channelID); err != nil {
		log.Printf("[Discord] Failed to publish status for channel %s: %v", channelID, err)
	}
}

func (h *Handler) send(channelID, content string) {
	if _, err := h.messenger.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("[Discord] Failed to send message to channel %s: %v", channelID, err)
	}
}

func (h *Handler) deleteMessage(channelID, messageID string) {
	if messageID == "" {
		return
	}
	if err := h.messenger.ChannelMessageDelete(channelID, messageID); err != nil {
		log.Printf("[Discord] Failed to delete message %s: %v", messageID, err)
	}
}
