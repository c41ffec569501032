package experience

import (
	"strings"
	"time"
)

// Entry is a single award of experience points
type Entry struct {
	Amount      int       `json:"amount"`
	Achievement string    `json:"achievement"`
	Timestamp   time.Time `json:"timestamp"`
}

// PlayerExp collects the individual awards of one character
type PlayerExp struct {
	Name    string   `json:"name"`
	Entries []*Entry `json:"entries"`
}

// Total sums the player's individual entries
func (p *PlayerExp) Total() int {
	return sumEntries(p.Entries)
}

// Total is a name paired with an amount of experience
type Total struct {
	Name   string
	Amount int
}

// Session is the experience sheet for one play session.
// Party entries are shared by every player; player entries are individual.
type Session struct {
	PartyEntries []*Entry     `json:"party_entries"`
	Players      []*PlayerExp `json:"players"`
	CreatedAt    time.Time    `json:"creation_date"`
	Name         string       `json:"session_name,omitempty"`
	Finalized    bool         `json:"is_finalized"`
	FinalizedAt  *time.Time   `json:"finalized_at,omitempty"`
}

// NewSession creates an empty, open session
func NewSession(now time.Time) *Session {
	return &Session{
		PartyEntries: []*Entry{},
		Players:      []*PlayerExp{},
		CreatedAt:    now,
	}
}

// IsEmpty reports whether the session has no entries at all
func (s *Session) IsEmpty() bool {
	return len(s.PartyEntries) == 0 && len(s.Players) == 0
}

// AddPartyExp records experience shared by the whole party
func (s *Session) AddPartyExp(amount int, achievement string, now time.Time) *Entry {
	entry := &Entry{Amount: amount, Achievement: achievement, Timestamp: now}
	s.PartyEntries = append(s.PartyEntries, entry)
	return entry
}

// RemovePartyExp removes the party entry at the zero-based index
func (s *Session) RemovePartyExp(index int) (*Entry, bool) {
	if index < 0 || index >= len(s.PartyEntries) {
		return nil, false
	}

	entry := s.PartyEntries[index]
	s.PartyEntries = append(s.PartyEntries[:index], s.PartyEntries[index+1:]...)
	return entry, true
}

// Player looks up a player by name, ignoring case
func (s *Session) Player(name string) *PlayerExp {
	_, p := s.player(name)
	return p
}

func (s *Session) player(name string) (int, *PlayerExp) {
	for i, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return i, p
		}
	}
	return -1, nil
}

// AddPlayerExp records experience for one character, creating the
// character's sheet on first use
func (s *Session) AddPlayerExp(name string, amount int, achievement string, now time.Time) *Entry {
	_, p := s.player(name)
	if p == nil {
		p = &PlayerExp{Name: name, Entries: []*Entry{}}
		s.Players = append(s.Players, p)
	}

	entry := &Entry{Amount: amount, Achievement: achievement, Timestamp: now}
	p.Entries = append(p.Entries, entry)
	return entry
}

// RemovePlayerExp removes the player's entry at the zero-based index.
// A player left without entries is dropped from the session.
func (s *Session) RemovePlayerExp(name string, index int) (*Entry, bool) {
	i, p := s.player(name)
	if p == nil || index < 0 || index >= len(p.Entries) {
		return nil, false
	}

	entry := p.Entries[index]
	p.Entries = append(p.Entries[:index], p.Entries[index+1:]...)

	if len(p.Entries) == 0 {
		s.Players = append(s.Players[:i], s.Players[i+1:]...)
	}

	return entry, true
}

// PartyTotal sums the shared entries
func (s *Session) PartyTotal() int {
	return sumEntries(s.PartyEntries)
}

// PlayerTotals returns each player's individual total in insertion order
func (s *Session) PlayerTotals() []Total {
	totals := make([]Total, len(s.Players))
	for i, p := range s.Players {
		totals[i] = Total{Name: p.Name, Amount: p.Total()}
	}
	return totals
}

// GrandTotals returns each player's individual total plus the party total
func (s *Session) GrandTotals() []Total {
	party := s.PartyTotal()
	totals := s.PlayerTotals()
	for i := range totals {
		totals[i].Amount += party
	}
	return totals
}

// Finalize freezes the session under name
func (s *Session) Finalize(name string, now time.Time) {
	s.Name = name
	s.Finalized = true
	s.FinalizedAt = &now
}

// Normalize repairs nil collections after decoding
func (s *Session) Normalize() {
	if s.PartyEntries == nil {
		s.PartyEntries = []*Entry{}
	}
	if s.Players == nil {
		s.Players = []*PlayerExp{}
	}
	for _, p := range s.Players {
		if p.Entries == nil {
			p.Entries = []*Entry{}
		}
	}
}

// Clone returns a deep copy
func (s *Session) Clone() *Session {
	cp := *s
	cp.PartyEntries = cloneEntries(s.PartyEntries)
	cp.Players = make([]*PlayerExp, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = &PlayerExp{Name: p.Name, Entries: cloneEntries(p.Entries)}
	}
	if s.FinalizedAt != nil {
		at := *s.FinalizedAt
		cp.FinalizedAt = &at
	}
	return &cp
}

func cloneEntries(entries []*Entry) []*Entry {
	out := make([]*Entry, len(entries))
	for i, e := range entries {
		entry := *e
		out[i] = &entry
	}
	return out
}

func sumEntries(entries []*Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
