package services

import (
	"time"

	"github.com/KirkDiggler/initiative-bot-discord/internal/clock"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/ledgers"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
	"github.com/KirkDiggler/initiative-bot-discord/internal/services/confirmation"
	experienceService "github.com/KirkDiggler/initiative-bot-discord/internal/services/experience"
	initiativeService "github.com/KirkDiggler/initiative-bot-discord/internal/services/initiative"
	"github.com/KirkDiggler/initiative-bot-discord/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	InitiativeService   initiativeService.Service
	ExperienceService   experienceService.Service
	ConfirmationManager confirmation.Manager
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	TrackerRepository trackers.Repository
	LedgerRepository  ledgers.Repository
	TimeProvider      clock.TimeProvider
	UUIDGenerator     uuid.Generator
	ConfirmTimeout    time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	trackerRepo := cfg.TrackerRepository
	if trackerRepo == nil {
		trackerRepo = trackers.NewInMemoryRepository()
	}

	ledgerRepo := cfg.LedgerRepository
	if ledgerRepo == nil {
		ledgerRepo = ledgers.NewInMemoryRepository()
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &clock.RealTimeProvider{}
	}

	return &Provider{
		InitiativeService: initiativeService.NewService(&initiativeService.ServiceConfig{
			Repository:   trackerRepo,
			TimeProvider: timeProvider,
		}),
		ExperienceService: experienceService.NewService(&experienceService.ServiceConfig{
			Repository:   ledgerRepo,
			TimeProvider: timeProvider,
		}),
		ConfirmationManager: confirmation.NewManager(&confirmation.ManagerConfig{
			Timeout:       cfg.ConfirmTimeout,
			UUIDGenerator: cfg.UUIDGenerator,
		}),
	}
}
