package initiative

//go:generate mockgen -destination=mock/mock_service.go -package=mockinitiative -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/initiative-bot-discord/internal/clock"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
)

// Service owns the initiative tracker of every channel.
// Every method returns copies, so callers can render without holding a lock.
type Service interface {
	// GetTracker returns the channel's tracker, creating an empty one on first use
	GetTracker(ctx context.Context, channelID string) (*initiative.Tracker, error)

	// AddCombatant inserts a combatant into the turn order
	AddCombatant(ctx context.Context, input *AddCombatantInput) (*initiative.Tracker, error)

	// RemoveCombatant removes the first combatant matching name
	RemoveCombatant(ctx context.Context, channelID, name string) (*initiative.Tracker, error)

	// StartCombat begins round 1 at the top of the order. It refuses to
	// restart a fight that is already running.
	StartCombat(ctx context.Context, channelID string) (*initiative.Tracker, error)

	// EndCombat returns the tracker to idle, keeping the roster. It fails
	// with ErrCombatNotStarted when there is nothing to end.
	EndCombat(ctx context.Context, channelID string) (*initiative.Tracker, error)

	// NextTurn advances the cursor and ages the new combatant's effects
	NextTurn(ctx context.Context, channelID string) (*TurnResult, error)

	// AddEffect attaches a timed effect to a combatant
	AddEffect(ctx context.Context, input *AddEffectInput) (*initiative.Tracker, error)

	// RemoveEffect removes the first matching effect from a combatant
	RemoveEffect(ctx context.Context, channelID, combatantName, effectName string) (*initiative.Tracker, error)

	// Clear empties the roster and forgets the stored tracker
	Clear(ctx context.Context, channelID string) (*initiative.Tracker, error)

	// Effects lists one combatant, or every combatant when name is empty
	Effects(ctx context.Context, channelID, name string) ([]*initiative.Combatant, error)

	// SwapStatusMessage records the channel's new status message and
	// returns the one it replaces
	SwapStatusMessage(ctx context.Context, channelID, messageID string) (string, error)

	// LoadAll reads every stored tracker into memory and returns how many were loaded
	LoadAll(ctx context.Context) (int, error)
}

// Combat state errors. Callers can tell them apart with errors.Is.
var (
	ErrNoCombatants     = dnderr.FailedPrecondition("no combatants in the initiative order")
	ErrCombatInProgress = dnderr.FailedPrecondition("combat is already in progress")
	ErrCombatNotStarted = dnderr.FailedPrecondition("combat has not started")
)

// AddCombatantInput contains data for adding a combatant
type AddCombatantInput struct {
	ChannelID  string
	Name       string
	Initiative int
	IsPlayer   bool
}

// AddEffectInput contains data for adding an effect
type AddEffectInput struct {
	ChannelID     string
	CombatantName string
	EffectName    string
	Duration      int
	Description   string
}

// TurnResult is the tracker after advancing plus what happened during the advance
type TurnResult struct {
	Tracker *initiative.Tracker
	Turn    *initiative.Turn
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository   trackers.Repository
	TimeProvider clock.TimeProvider

	// LoadConcurrency bounds LoadAll. Defaults to 8.
	LoadConcurrency int
}

type channelState struct {
	mu      sync.Mutex
	tracker *initiative.Tracker
}

type service struct {
	repository      trackers.Repository
	timeProvider    clock.TimeProvider
	loadConcurrency int

	mu       sync.Mutex
	channels map[string]*channelState
}

// NewService creates a new initiative service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:      cfg.Repository,
		timeProvider:    cfg.TimeProvider,
		loadConcurrency: cfg.LoadConcurrency,
		channels:        make(map[string]*channelState),
	}

	if svc.timeProvider == nil {
		svc.timeProvider = &clock.RealTimeProvider{}
	}
	if svc.loadConcurrency <= 0 {
		svc.loadConcurrency = 8
	}

	return svc
}

// state returns the registry entry for a channel. Only one entry is ever
// created per channel.
func (s *service) state(channelID string) *channelState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, exists := s.channels[channelID]
	if !exists {
		st = &channelState{}
		s.channels[channelID] = st
	}
	return st
}

// load fills st.tracker from storage. Callers hold st.mu.
// A missing or unreadable record yields an empty tracker.
func (s *service) load(ctx context.Context, channelID string, st *channelState) {
	if st.tracker != nil {
		return
	}

	tracker, err := s.repository.Get(ctx, channelID)
	if err != nil {
		if !dnderr.IsNotFound(err) {
			log.Printf("[Initiative] Failed to load tracker for channel %s, starting fresh: %v", channelID, err)
		}
		tracker = initiative.NewTracker()
	}
	tracker.Normalize()
	st.tracker = tracker
}

func (s *service) save(ctx context.Context, channelID string, tracker *initiative.Tracker) {
	if err := s.repository.Save(ctx, channelID, tracker); err != nil {
		log.Printf("[Initiative] Failed to save tracker for channel %s: %v", channelID, err)
	}
}

// mutate runs fn against the channel's tracker under its lock and persists
// the result when fn succeeds
func (s *service) mutate(ctx context.Context, channelID string, fn func(t *initiative.Tracker) error) (*initiative.Tracker, error) {
	if channelID == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	st := s.state(channelID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.load(ctx, channelID, st)

	if err := fn(st.tracker); err != nil {
		return nil, err
	}

	s.save(ctx, channelID, st.tracker)

	return st.tracker.Clone(), nil
}

func (s *service) GetTracker(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	if channelID == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	st := s.state(channelID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.load(ctx, channelID, st)

	return st.tracker.Clone(), nil
}

func (s *service) AddCombatant(ctx context.Context, input *AddCombatantInput) (*initiative.Tracker, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, dnderr.InvalidArgument("combatant name is required")
	}

	return s.mutate(ctx, input.ChannelID, func(t *initiative.Tracker) error {
		t.Add(initiative.NewCombatant(name, input.Initiative, input.IsPlayer))
		return nil
	})
}

func (s *service) RemoveCombatant(ctx context.Context, channelID, name string) (*initiative.Tracker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dnderr.InvalidArgument("combatant name is required")
	}

	return s.mutate(ctx, channelID, func(t *initiative.Tracker) error {
		if !t.Remove(name) {
			return dnderr.NotFoundf("combatant '%s' not found", name)
		}
		return nil
	})
}

func (s *service) StartCombat(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	return s.mutate(ctx, channelID, func(t *initiative.Tracker) error {
		if t.IsActive {
			return ErrCombatInProgress
		}
		if !t.Start() {
			return ErrNoCombatants
		}
		return nil
	})
}

func (s *service) EndCombat(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	return s.mutate(ctx, channelID, func(t *initiative.Tracker) error {
		if !t.IsActive {
			return ErrCombatNotStarted
		}
		t.End()
		return nil
	})
}

func (s *service) NextTurn(ctx context.Context, channelID string) (*TurnResult, error) {
	var turn *initiative.Turn

	tracker, err := s.mutate(ctx, channelID, func(t *initiative.Tracker) error {
		if !t.IsActive {
			return ErrCombatNotStarted
		}
		turn = t.NextTurn()
		if turn == nil {
			return ErrNoCombatants
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Point the result at the snapshot rather than the live combatant
	turn.Combatant = tracker.Current()

	return &TurnResult{Tracker: tracker, Turn: turn}, nil
}

func (s *service) AddEffect(ctx context.Context, input *AddEffectInput) (*initiative.Tracker, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	combatantName := strings.TrimSpace(input.CombatantName)
	effectName := strings.TrimSpace(input.EffectName)
	if combatantName == "" {
		return nil, dnderr.InvalidArgument("combatant name is required")
	}
	if effectName == "" {
		return nil, dnderr.InvalidArgument("effect name is required")
	}
	if input.Duration < 1 {
		return nil, dnderr.InvalidArgumentf("duration must be at least 1 turn, got %d", input.Duration)
	}

	return s.mutate(ctx, input.ChannelID, func(t *initiative.Tracker) error {
		c := t.Find(combatantName)
		if c == nil {
			return dnderr.NotFoundf("combatant '%s' not found", combatantName)
		}
		c.AddEffect(initiative.NewEffect(effectName, input.Duration, strings.TrimSpace(input.Description), s.timeProvider.Now()))
		return nil
	})
}

func (s *service) RemoveEffect(ctx context.Context, channelID, combatantName, effectName string) (*initiative.Tracker, error) {
	combatantName = strings.TrimSpace(combatantName)
	effectName = strings.TrimSpace(effectName)
	if combatantName == "" || effectName == "" {
		return nil, dnderr.InvalidArgument("combatant and effect names are required")
	}

	return s.mutate(ctx, channelID, func(t *initiative.Tracker) error {
		c := t.Find(combatantName)
		if c == nil {
			return dnderr.NotFoundf("combatant '%s' not found", combatantName)
		}
		if !c.RemoveEffect(effectName) {
			return dnderr.NotFoundf("effect '%s' not found on %s", effectName, c.Name)
		}
		return nil
	})
}

func (s *service) Clear(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	if channelID == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	st := s.state(channelID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.load(ctx, channelID, st)
	st.tracker.Clear()

	if err := s.repository.Delete(ctx, channelID); err != nil {
		log.Printf("[Initiative] Failed to delete tracker for channel %s: %v", channelID, err)
	}

	return st.tracker.Clone(), nil
}

func (s *service) Effects(ctx context.Context, channelID, name string) ([]*initiative.Combatant, error) {
	tracker, err := s.GetTracker(ctx, channelID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return tracker.Combatants, nil
	}

	c := tracker.Find(name)
	if c == nil {
		return nil, dnderr.NotFoundf("combatant '%s' not found", name)
	}

	return []*initiative.Combatant{c}, nil
}

func (s *service) SwapStatusMessage(ctx context.Context, channelID, messageID string) (string, error) {
	if channelID == "" {
		return "", dnderr.InvalidArgument("channel ID is required")
	}

	st := s.state(channelID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.load(ctx, channelID, st)

	previous := st.tracker.LastMessageID
	st.tracker.LastMessageID = messageID

	return previous, nil
}

func (s *service) LoadAll(ctx context.Context) (int, error) {
	channelIDs, err := s.repository.ListChannelIDs(ctx)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to list stored trackers")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.loadConcurrency)

	for _, channelID := range channelIDs {
		channelID := channelID
		g.Go(func() error {
			st := s.state(channelID)
			st.mu.Lock()
			defer st.mu.Unlock()

			s.load(ctx, channelID, st)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	log.Printf("[Initiative] Loaded %d trackers", len(channelIDs))

	return len(channelIDs), nil
}
