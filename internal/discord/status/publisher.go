// Package status keeps one live initiative message per channel.
package status

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/render"
	initiativesvc "github.com/KirkDiggler/initiative-bot-discord/internal/services/initiative"
)

// Messenger is the slice of the Discord REST API the publisher needs.
// *discordgo.Session satisfies it.
type Messenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	MessageReactionRemove(channelID, messageID, emojiID, userID string, options ...discordgo.RequestOption) error
}

// PublisherConfig holds the publisher's dependencies
type PublisherConfig struct {
	Messenger         Messenger
	InitiativeService initiativesvc.Service
}

// Publisher replaces a channel's status message with a fresh one and
// remembers which channel each live status message belongs to
type Publisher struct {
	messenger  Messenger
	initiative initiativesvc.Service

	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	messages map[string]string // message ID -> channel ID
}

func NewPublisher(cfg *PublisherConfig) *Publisher {
	if cfg.Messenger == nil || cfg.InitiativeService == nil {
		panic("messenger and initiative service are required")
	}

	return &Publisher{
		messenger:  cfg.Messenger,
		initiative: cfg.InitiativeService,
		locks:      make(map[string]*sync.Mutex),
		messages:   make(map[string]string),
	}
}

// Publish posts the channel's current status, deletes the previous status
// message and adds the control reactions. Failures after the new message is
// posted are logged and do not fail the call.
func (p *Publisher) Publish(ctx context.Context, channelID string) error {
	lock := p.channelLock(channelID)
	lock.Lock()
	defer lock.Unlock()

	tracker, err := p.initiative.GetTracker(ctx, channelID)
	if err != nil {
		return fmt.Errorf("failed to load tracker: %w", err)
	}

	msg, err := p.messenger.ChannelMessageSend(channelID, render.StatusMessage(tracker))
	if err != nil {
		return fmt.Errorf("failed to send status message: %w", err)
	}

	previous, err := p.initiative.SwapStatusMessage(ctx, channelID, msg.ID)
	if err != nil {
		log.Printf("[Discord] Failed to record status message for channel %s: %v", channelID, err)
	}

	p.mu.Lock()
	p.messages[msg.ID] = channelID
	if previous != "" {
		delete(p.messages, previous)
	}
	p.mu.Unlock()

	if previous != "" {
		if err := p.messenger.ChannelMessageDelete(channelID, previous); err != nil {
			log.Printf("[Discord] Failed to delete previous status message %s: %v", previous, err)
		}
	}

	for _, emoji := range render.ControlEmojis(tracker.IsActive) {
		if err := p.messenger.MessageReactionAdd(channelID, msg.ID, emoji); err != nil {
			log.Printf("[Discord] Failed to add %s to status message %s: %v", emoji, msg.ID, err)
		}
	}

	return nil
}

// PublishAsync is Publish for after-send hooks where no caller can act on the error
func (p *Publisher) PublishAsync(ctx context.Context, channelID string) func() {
	return func() {
		if err := p.Publish(ctx, channelID); err != nil {
			log.Printf("[Discord] Failed to publish status for channel %s: %v", channelID, err)
		}
	}
}

// ChannelFor returns the channel whose live status message has this ID
func (p *Publisher) ChannelFor(messageID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	channelID, ok := p.messages[messageID]
	return channelID, ok
}

// RemoveReaction takes a user's reaction off a message so the control can be pressed again
func (p *Publisher) RemoveReaction(channelID, messageID, emoji, userID string) {
	if err := p.messenger.MessageReactionRemove(channelID, messageID, emoji, userID); err != nil {
		log.Printf("[Discord] Failed to remove reaction %s from %s: %v", emoji, messageID, err)
	}
}

func (p *Publisher) channelLock(channelID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.locks[channelID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[channelID] = lock
	}
	return lock
}
