package initiative

import (
	"fmt"
	"time"
)

// Effect is a named, timed status modifier attached to a combatant.
// Duration counts the owner's turns remaining; the effect expires when it reaches zero.
type Effect struct {
	Name        string    `json:"name"`
	Duration    int       `json:"duration"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEffect creates an effect stamped with createdAt
func NewEffect(name string, duration int, description string, createdAt time.Time) *Effect {
	return &Effect{
		Name:        name,
		Duration:    duration,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// Tick consumes one turn and reports whether the effect has now expired
func (e *Effect) Tick() bool {
	e.Duration--
	return e.Expired()
}

// Expired returns true once no turns remain
func (e *Effect) Expired() bool {
	return e.Duration <= 0
}

func (e *Effect) String() string {
	if e.Duration == 1 {
		return fmt.Sprintf("%s (1 turn)", e.Name)
	}
	return fmt.Sprintf("%s (%d turns)", e.Name, e.Duration)
}
