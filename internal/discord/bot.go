// Package discord assembles the interaction pipeline, routers and reaction
// handling into a bot that can be attached to a gateway session.
package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/middleware"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/reactions"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/routers"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/status"
	"github.com/KirkDiggler/initiative-bot-discord/internal/services"
	"github.com/KirkDiggler/initiative-bot-discord/internal/uuid"
)

// BotConfig holds the bot's dependencies
type BotConfig struct {
	Messenger       status.Messenger
	ServiceProvider *services.Provider

	// RateLimitPerMinute caps interactions per user. Zero disables the limit.
	RateLimitPerMinute int
	RateLimitStore     middleware.RateLimitStore

	UUIDGenerator uuid.Generator
}

// Bot routes slash commands, buttons and reactions to the services
type Bot struct {
	pipeline  *core.Pipeline
	reactions *reactions.Handler
}

func NewBot(cfg *BotConfig) *Bot {
	if cfg.Messenger == nil || cfg.ServiceProvider == nil {
		panic("messenger and service provider are required")
	}

	store := cfg.RateLimitStore
	if store == nil {
		store = middleware.NewMemoryRateLimitStore()
	}

	provider := cfg.ServiceProvider

	pipeline := core.NewPipeline()
	pipeline.Use(
		middleware.RecoveryMiddleware(),
		middleware.RequestIDMiddleware(cfg.UUIDGenerator),
		middleware.LoggingMiddleware(nil),
		middleware.ErrorMiddleware(nil),
		middleware.UserRateLimitMiddleware(cfg.RateLimitPerMinute, time.Minute, store),
	)

	publisher := status.NewPublisher(&status.PublisherConfig{
		Messenger:         cfg.Messenger,
		InitiativeService: provider.InitiativeService,
	})

	routers.NewInitiativeRouter(pipeline, &routers.InitiativeRouterConfig{
		Service: provider.InitiativeService,
		Status:  publisher,
	})
	routers.NewExperienceRouter(pipeline, &routers.ExperienceRouterConfig{
		Service:       provider.ExperienceService,
		Confirmations: provider.ConfirmationManager,
		Middleware:    []core.Middleware{middleware.GuildRequiredMiddleware()},
	})

	reactionHandler := reactions.NewHandler(&reactions.HandlerConfig{
		Messenger:         cfg.Messenger,
		Status:            publisher,
		InitiativeService: provider.InitiativeService,
		Confirmations:     provider.ConfirmationManager,
	})

	return &Bot{
		pipeline:  pipeline,
		reactions: reactionHandler,
	}
}

// Pipeline exposes the interaction pipeline for tests
func (b *Bot) Pipeline() *core.Pipeline {
	return b.pipeline
}

// HandleInteraction is registered with the discordgo session
func (b *Bot) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.pipeline.Execute(context.Background(), s, i); err != nil {
		log.Printf("[Discord] Failed to handle interaction %s: %v", i.ID, err)
	}
}

// HandleReactionAdd is registered with the discordgo session
func (b *Bot) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	b.reactions.HandleReactionAdd(s, r)
}

// Attach registers the bot's event handlers on the session
func (b *Bot) Attach(s *discordgo.Session) {
	s.AddHandler(b.HandleInteraction)
	s.AddHandler(b.HandleReactionAdd)
}
