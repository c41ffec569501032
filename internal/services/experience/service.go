package experience

//go:generate mockgen -destination=mock/mock_service.go -package=mockexperience -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/initiative-bot-discord/internal/clock"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/ledgers"
)

// Service manages the experience ledger of each server.
// Indices are zero-based; the Discord layer converts from the one-based
// numbers shown to users.
type Service interface {
	// GetActiveSession returns the open session, or an empty one if none was started
	GetActiveSession(ctx context.Context, guildID string) (*experience.Session, error)

	// CreateSession starts a new session. Fails while the open one has entries.
	CreateSession(ctx context.Context, guildID string) (*experience.Session, error)

	// ClearSession discards the open session and replaces it with an empty one
	ClearSession(ctx context.Context, guildID string) (*experience.Session, error)

	// AddPartyExp records experience shared by the whole party
	AddPartyExp(ctx context.Context, input *AddExpInput) (*experience.Entry, error)

	// AddPlayerExp records experience for a single character
	AddPlayerExp(ctx context.Context, input *AddExpInput) (*experience.Entry, error)

	// RemovePartyExp removes a party entry by position
	RemovePartyExp(ctx context.Context, guildID string, index int) (*experience.Entry, error)

	// RemovePlayerExp removes a character's entry by position
	RemovePlayerExp(ctx context.Context, guildID, playerName string, index int) (*experience.Entry, error)

	// FinalizeSession moves the open session into history under name and
	// returns the finalized copy
	FinalizeSession(ctx context.Context, guildID, name string) (*experience.Session, error)

	// GetHistory lists finalized sessions, oldest first
	GetHistory(ctx context.Context, guildID string) (experience.History, error)

	// GetSession returns a finalized session by its exact name
	GetSession(ctx context.Context, guildID, name string) (*experience.Session, error)
}

// AddExpInput contains data for recording experience.
// PlayerName is ignored for party experience.
type AddExpInput struct {
	GuildID     string
	PlayerName  string
	Amount      int
	Achievement string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository   ledgers.Repository
	TimeProvider clock.TimeProvider
}

type service struct {
	repository   ledgers.Repository
	timeProvider clock.TimeProvider

	mu     sync.Mutex
	guilds map[string]*sync.Mutex
}

// NewService creates a new experience service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:   cfg.Repository,
		timeProvider: cfg.TimeProvider,
		guilds:       make(map[string]*sync.Mutex),
	}

	if svc.timeProvider == nil {
		svc.timeProvider = &clock.RealTimeProvider{}
	}

	return svc
}

// lock serializes read-modify-write cycles for one guild
func (s *service) lock(guildID string) func() {
	s.mu.Lock()
	m, exists := s.guilds[guildID]
	if !exists {
		m = &sync.Mutex{}
		s.guilds[guildID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (s *service) active(ctx context.Context, guildID string) (*experience.Session, error) {
	if guildID == "" {
		return nil, dnderr.InvalidArgument("guild ID is required")
	}

	session, err := s.repository.GetActive(ctx, guildID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return experience.NewSession(s.timeProvider.Now()), nil
		}
		return nil, dnderr.Wrapf(err, "failed to load active session for guild %s", guildID)
	}

	return session, nil
}

func (s *service) saveActive(ctx context.Context, guildID string, session *experience.Session) error {
	if err := s.repository.SaveActive(ctx, guildID, session); err != nil {
		log.Printf("[Experience] Failed to save active session for guild %s: %v", guildID, err)
		return dnderr.Wrap(err, "failed to save experience session")
	}
	return nil
}

func (s *service) GetActiveSession(ctx context.Context, guildID string) (*experience.Session, error) {
	return s.active(ctx, guildID)
}

func (s *service) CreateSession(ctx context.Context, guildID string) (*experience.Session, error) {
	if guildID == "" {
		return nil, dnderr.InvalidArgument("guild ID is required")
	}

	defer s.lock(guildID)()

	current, err := s.active(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !current.IsEmpty() {
		return nil, dnderr.FailedPrecondition("an experience session with entries is already open; finalize or clear it first")
	}

	session := experience.NewSession(s.timeProvider.Now())
	if err := s.saveActive(ctx, guildID, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *service) ClearSession(ctx context.Context, guildID string) (*experience.Session, error) {
	if guildID == "" {
		return nil, dnderr.InvalidArgument("guild ID is required")
	}

	defer s.lock(guildID)()

	session := experience.NewSession(s.timeProvider.Now())
	if err := s.saveActive(ctx, guildID, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *service) AddPartyExp(ctx context.Context, input *AddExpInput) (*experience.Entry, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	achievement := strings.TrimSpace(input.Achievement)
	if achievement == "" {
		return nil, dnderr.InvalidArgument("achievement is required")
	}

	defer s.lock(input.GuildID)()

	session, err := s.active(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	entry := session.AddPartyExp(input.Amount, achievement, s.timeProvider.Now())
	if err := s.saveActive(ctx, input.GuildID, session); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) AddPlayerExp(ctx context.Context, input *AddExpInput) (*experience.Entry, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.PlayerName)
	achievement := strings.TrimSpace(input.Achievement)
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}
	if achievement == "" {
		return nil, dnderr.InvalidArgument("achievement is required")
	}

	defer s.lock(input.GuildID)()

	session, err := s.active(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	entry := session.AddPlayerExp(name, input.Amount, achievement, s.timeProvider.Now())
	if err := s.saveActive(ctx, input.GuildID, session); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) RemovePartyExp(ctx context.Context, guildID string, index int) (*experience.Entry, error) {
	defer s.lock(guildID)()

	session, err := s.active(ctx, guildID)
	if err != nil {
		return nil, err
	}

	entry, ok := session.RemovePartyExp(index)
	if !ok {
		return nil, dnderr.NotFoundf("party entry %d not found", index+1)
	}

	if err := s.saveActive(ctx, guildID, session); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) RemovePlayerExp(ctx context.Context, guildID, playerName string, index int) (*experience.Entry, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	defer s.lock(guildID)()

	session, err := s.active(ctx, guildID)
	if err != nil {
		return nil, err
	}

	entry, ok := session.RemovePlayerExp(playerName, index)
	if !ok {
		return nil, dnderr.NotFoundf("entry %d for %s not found", index+1, playerName)
	}

	if err := s.saveActive(ctx, guildID, session); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) FinalizeSession(ctx context.Context, guildID, name string) (*experience.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dnderr.InvalidArgument("session name is required")
	}

	defer s.lock(guildID)()

	session, err := s.active(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if session.IsEmpty() {
		return nil, dnderr.FailedPrecondition("the experience session is empty; add some experience before finalizing")
	}

	finalized := session.Clone()
	finalized.Finalize(name, s.timeProvider.Now())

	// The next sheet is saved before history is written. If history
	// rejects the session the open sheet is put back.
	if err := s.saveActive(ctx, guildID, experience.NewSession(s.timeProvider.Now())); err != nil {
		return nil, err
	}

	if err := s.repository.AddToHistory(ctx, guildID, finalized); err != nil {
		if restoreErr := s.repository.SaveActive(ctx, guildID, session); restoreErr != nil {
			log.Printf("[Experience] Failed to restore active session for guild %s: %v", guildID, restoreErr)
			return nil, dnderr.Wrap(restoreErr, "failed to restore experience session after history save failed")
		}
		if dnderr.IsAlreadyExists(err) {
			return nil, dnderr.AlreadyExistsf("a session named '%s' already exists; choose another name", name)
		}
		return nil, dnderr.Wrap(err, "failed to save session to history")
	}

	return finalized, nil
}

func (s *service) GetHistory(ctx context.Context, guildID string) (experience.History, error) {
	if guildID == "" {
		return nil, dnderr.InvalidArgument("guild ID is required")
	}

	history, err := s.repository.GetHistory(ctx, guildID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load history for guild %s", guildID)
	}

	return history, nil
}

func (s *service) GetSession(ctx context.Context, guildID, name string) (*experience.Session, error) {
	history, err := s.GetHistory(ctx, guildID)
	if err != nil {
		return nil, err
	}

	session := history.Find(strings.TrimSpace(name))
	if session == nil {
		return nil, dnderr.NotFoundf("session '%s' not found in history", name)
	}

	return session, nil
}
