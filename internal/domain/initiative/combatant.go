package initiative

import (
	"fmt"
	"strings"
)

const (
	PlayerIcon = "👤"
	NPCIcon    = "👹"
)

// Combatant is a participant in the turn order
type Combatant struct {
	Name       string    `json:"name"`
	Initiative int       `json:"initiative"`
	IsPlayer   bool      `json:"is_player"`
	IsActive   bool      `json:"is_active"` // Reserved for incapacitation tracking, always true today
	Effects    []*Effect `json:"effects"`
}

// NewCombatant creates an active combatant with no effects
func NewCombatant(name string, initiative int, isPlayer bool) *Combatant {
	return &Combatant{
		Name:       name,
		Initiative: initiative,
		IsPlayer:   isPlayer,
		IsActive:   true,
		Effects:    []*Effect{},
	}
}

// AddEffect appends an effect. Effects with the same name may coexist.
func (c *Combatant) AddEffect(effect *Effect) {
	c.Effects = append(c.Effects, effect)
}

// RemoveEffect removes the first effect whose name matches case-insensitively
func (c *Combatant) RemoveEffect(name string) bool {
	for i, effect := range c.Effects {
		if strings.EqualFold(effect.Name, name) {
			c.Effects = append(c.Effects[:i], c.Effects[i+1:]...)
			return true
		}
	}
	return false
}

// FindEffect returns the first effect whose name matches case-insensitively
func (c *Combatant) FindEffect(name string) *Effect {
	for _, effect := range c.Effects {
		if strings.EqualFold(effect.Name, name) {
			return effect
		}
	}
	return nil
}

// AdvanceEffects ticks every effect once and drops the ones that expired.
// It returns the names of the expired effects in their original order.
func (c *Combatant) AdvanceEffects() []string {
	var expired []string
	remaining := make([]*Effect, 0, len(c.Effects))

	for _, effect := range c.Effects {
		if effect.Tick() {
			expired = append(expired, effect.Name)
			continue
		}
		remaining = append(remaining, effect)
	}

	c.Effects = remaining
	return expired
}

// Icon returns the player or NPC marker
func (c *Combatant) Icon() string {
	if c.IsPlayer {
		return PlayerIcon
	}
	return NPCIcon
}

// String renders the combatant as a single status line
func (c *Combatant) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s **%s** - Initiative: %d", c.Icon(), c.Name, c.Initiative)

	if len(c.Effects) > 0 {
		parts := make([]string, len(c.Effects))
		for i, effect := range c.Effects {
			parts[i] = effect.String()
		}
		fmt.Fprintf(&sb, " (%s)", strings.Join(parts, ", "))
	}

	return sb.String()
}

func (c *Combatant) clone() *Combatant {
	cp := *c
	cp.Effects = make([]*Effect, len(c.Effects))
	for i, effect := range c.Effects {
		e := *effect
		cp.Effects[i] = &e
	}
	return &cp
}
