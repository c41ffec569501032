package initiative

import (
	"sort"
	"strings"
)

// Tracker owns the turn order for a single channel.
//
// While IsActive is true Round is at least 1 and CurrentIndex points into
// Combatants (when it is non-empty). Round is 0 until combat starts and again
// after it ends or the roster is cleared.
type Tracker struct {
	Combatants   []*Combatant `json:"characters"`
	CurrentIndex int          `json:"current_index"`
	Round        int          `json:"round"`
	IsActive     bool         `json:"is_active"`

	// LastMessageID is the status message currently shown in the channel.
	// It is only meaningful for the running process and is never persisted.
	LastMessageID string `json:"-"`
}

// Turn is the outcome of advancing the tracker
type Turn struct {
	Combatant *Combatant
	Expired   []string // Effects that ran out as the combatant's turn began
	Round     int
	NewRound  bool // The cursor wrapped back to the top of the order
}

// NewTracker creates an idle tracker with an empty roster
func NewTracker() *Tracker {
	return &Tracker{
		Combatants: []*Combatant{},
	}
}

// IsEmpty reports whether the roster has no combatants
func (t *Tracker) IsEmpty() bool {
	return len(t.Combatants) == 0
}

// Add inserts a combatant and re-sorts by initiative, highest first.
// Ties keep insertion order. During combat the cursor follows the combatant
// whose turn it was before the insert.
func (t *Tracker) Add(c *Combatant) {
	var current *Combatant
	if t.IsActive && t.CurrentIndex < len(t.Combatants) {
		current = t.Combatants[t.CurrentIndex]
	}

	t.Combatants = append(t.Combatants, c)
	sort.SliceStable(t.Combatants, func(i, j int) bool {
		return t.Combatants[i].Initiative > t.Combatants[j].Initiative
	})

	if current == nil {
		return
	}
	for i, existing := range t.Combatants {
		if existing == current {
			t.CurrentIndex = i
			return
		}
	}
}

// Find returns the first combatant whose name matches case-insensitively
func (t *Tracker) Find(name string) *Combatant {
	_, c := t.find(name)
	return c
}

func (t *Tracker) find(name string) (int, *Combatant) {
	for i, c := range t.Combatants {
		if strings.EqualFold(c.Name, name) {
			return i, c
		}
	}
	return -1, nil
}

// Remove deletes the first combatant matching name. Removing an entry at or
// before the cursor pulls the cursor back by one so the turn does not skip.
func (t *Tracker) Remove(name string) bool {
	i, c := t.find(name)
	if c == nil {
		return false
	}

	t.Combatants = append(t.Combatants[:i], t.Combatants[i+1:]...)

	if i <= t.CurrentIndex && t.CurrentIndex > 0 {
		t.CurrentIndex--
	}

	return true
}

// Start begins combat at the top of the order. It fails on an empty roster.
// The first combatant's effects are not aged by starting.
func (t *Tracker) Start() bool {
	if t.IsEmpty() {
		return false
	}

	t.IsActive = true
	t.CurrentIndex = 0
	t.Round = 1
	return true
}

// End stops combat. Ending an idle tracker is a no-op that still succeeds.
func (t *Tracker) End() bool {
	t.IsActive = false
	t.CurrentIndex = 0
	t.Round = 0
	return true
}

// NextTurn moves the cursor to the next combatant, wrapping into a new round
// after the last one, and ages the new current combatant's effects once.
// It returns nil when combat is not active or the roster is empty.
func (t *Tracker) NextTurn() *Turn {
	if !t.IsActive || t.IsEmpty() {
		return nil
	}

	turn := &Turn{}

	t.CurrentIndex++
	if t.CurrentIndex >= len(t.Combatants) {
		t.CurrentIndex = 0
		t.Round++
		turn.NewRound = true
	}

	current := t.Combatants[t.CurrentIndex]
	turn.Combatant = current
	turn.Expired = current.AdvanceEffects()
	turn.Round = t.Round

	return turn
}

// Current returns the combatant whose turn it is without changing any state.
// It returns nil when combat is not active or the roster is empty.
func (t *Tracker) Current() *Combatant {
	if !t.IsActive || t.IsEmpty() {
		return nil
	}
	if t.CurrentIndex < 0 || t.CurrentIndex >= len(t.Combatants) {
		return nil
	}
	return t.Combatants[t.CurrentIndex]
}

// Clear empties the roster and returns the tracker to idle
func (t *Tracker) Clear() {
	t.Combatants = []*Combatant{}
	t.End()
}

// Normalize repairs state decoded from storage written by older versions or
// edited by hand: nil collections become empty and the cursor is clamped.
func (t *Tracker) Normalize() {
	if t.Combatants == nil {
		t.Combatants = []*Combatant{}
	}
	for _, c := range t.Combatants {
		if c.Effects == nil {
			c.Effects = []*Effect{}
		}
	}

	if t.CurrentIndex < 0 || t.CurrentIndex >= len(t.Combatants) {
		t.CurrentIndex = 0
	}
	if t.IsActive && t.Round < 1 {
		t.Round = 1
	}
	if !t.IsActive {
		t.Round = 0
	}
}

// Clone returns a deep copy safe to hand to another goroutine
func (t *Tracker) Clone() *Tracker {
	cp := *t
	cp.Combatants = make([]*Combatant, len(t.Combatants))
	for i, c := range t.Combatants {
		cp.Combatants[i] = c.clone()
	}
	return &cp
}
