package confirmation

import (
	"log"
	"sync"
	"time"

	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/uuid"
)

// State of a pending confirmation
type State int

const (
	StateAwaiting State = iota
	StateConfirmed
	StateCancelled
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAwaiting:
		return "awaiting"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

// Kind names the destructive action being confirmed
type Kind string

const (
	KindClearInitiative Kind = "init_clear"
	KindClearExperience Kind = "exp_clear"
)

// Pending is a destructive action waiting for a yes or no
type Pending struct {
	Token     string
	Kind      Kind
	ScopeID   string // Channel for trackers, guild for ledgers
	ChannelID string
	UserID    string
	MessageID string
	State     State
	CreatedAt time.Time
}

// BeginInput describes a new confirmation.
// OnExpire runs on its own goroutine if nobody answers in time.
type BeginInput struct {
	Kind      Kind
	ScopeID   string
	ChannelID string
	UserID    string
	OnExpire  func(p Pending)
}

// Manager tracks pending confirmations by token and by the message that asks
// the question. Each one resolves exactly once.
type Manager interface {
	Begin(input *BeginInput) (*Pending, error)
	AttachMessage(token, messageID string) error
	Get(token string) (*Pending, bool)
	GetByMessage(messageID string) (*Pending, bool)
	Resolve(token string, confirmed bool) (*Pending, error)
}

// ManagerConfig holds configuration for the manager
type ManagerConfig struct {
	Timeout       time.Duration
	UUIDGenerator uuid.Generator
}

type entry struct {
	pending  Pending
	timer    *time.Timer
	onExpire func(p Pending)
}

type manager struct {
	timeout       time.Duration
	uuidGenerator uuid.Generator

	mu        sync.Mutex
	byToken   map[string]*entry
	byMessage map[string]string
}

// NewManager creates a confirmation manager. Timeout defaults to 30 seconds.
func NewManager(cfg *ManagerConfig) Manager {
	m := &manager{
		timeout:       cfg.Timeout,
		uuidGenerator: cfg.UUIDGenerator,
		byToken:       make(map[string]*entry),
		byMessage:     make(map[string]string),
	}

	if m.timeout <= 0 {
		m.timeout = 30 * time.Second
	}
	if m.uuidGenerator == nil {
		m.uuidGenerator = &uuid.ShortGenerator{}
	}

	return m
}

func (m *manager) Begin(input *BeginInput) (*Pending, error) {
	if input == nil || input.Kind == "" || input.ScopeID == "" {
		return nil, dnderr.InvalidArgument("confirmation kind and scope are required")
	}

	e := &entry{
		pending: Pending{
			Token:     m.uuidGenerator.New(),
			Kind:      input.Kind,
			ScopeID:   input.ScopeID,
			ChannelID: input.ChannelID,
			UserID:    input.UserID,
			State:     StateAwaiting,
			CreatedAt: time.Now(),
		},
		onExpire: input.OnExpire,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byToken[e.pending.Token]; exists {
		return nil, dnderr.Internal("confirmation token collision")
	}

	token := e.pending.Token
	e.timer = time.AfterFunc(m.timeout, func() {
		m.expire(token)
	})
	m.byToken[token] = e

	p := e.pending
	return &p, nil
}

func (m *manager) AttachMessage(token, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.byToken[token]
	if !exists {
		return dnderr.NotFoundf("confirmation %s not found", token)
	}

	if e.pending.MessageID != "" {
		delete(m.byMessage, e.pending.MessageID)
	}
	e.pending.MessageID = messageID
	m.byMessage[messageID] = token

	return nil
}

func (m *manager) Get(token string) (*Pending, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.byToken[token]
	if !exists {
		return nil, false
	}

	p := e.pending
	return &p, true
}

func (m *manager) GetByMessage(messageID string) (*Pending, bool) {
	m.mu.Lock()
	token, exists := m.byMessage[messageID]
	m.mu.Unlock()

	if !exists {
		return nil, false
	}
	return m.Get(token)
}

// Resolve answers a pending confirmation. Unknown or already answered
// tokens return a not found error.
func (m *manager) Resolve(token string, confirmed bool) (*Pending, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.byToken[token]
	if !exists {
		return nil, dnderr.NotFound("this confirmation has expired or was already answered")
	}

	e.timer.Stop()
	m.remove(e)

	e.pending.State = StateCancelled
	if confirmed {
		e.pending.State = StateConfirmed
	}

	p := e.pending
	return &p, nil
}

func (m *manager) expire(token string) {
	m.mu.Lock()
	e, exists := m.byToken[token]
	if !exists {
		m.mu.Unlock()
		return
	}
	m.remove(e)
	e.pending.State = StateExpired
	m.mu.Unlock()

	log.Printf("[Confirmation] %s for %s expired", e.pending.Kind, e.pending.ScopeID)

	if e.onExpire != nil {
		e.onExpire(e.pending)
	}
}

// remove drops e from both indexes. Callers hold m.mu.
func (m *manager) remove(e *entry) {
	delete(m.byToken, e.pending.Token)
	if e.pending.MessageID != "" {
		delete(m.byMessage, e.pending.MessageID)
	}
}
