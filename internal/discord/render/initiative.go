// Package render turns tracker and ledger snapshots into Discord messages.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
)

// Control reactions on the status message
const (
	EmojiNextTurn = "⏩"
	EmojiStart    = "▶️"
	EmojiEnd      = "⏹️"
	EmojiClear    = "🧹"
	EmojiConfirm  = "✅"
	EmojiCancel   = "❌"
)

const (
	ColorEffects  = 0x9b59b6 // Purple
	noDescription = "No description"

	// room kept for the "more above/below" notes of a cut status message
	noteReserve = 48
)

// ControlEmojis lists the reactions the status message offers for the
// current combat state
func ControlEmojis(active bool) []string {
	if active {
		return []string{EmojiNextTurn, EmojiEnd, EmojiClear}
	}
	return []string{EmojiNextTurn, EmojiStart, EmojiClear}
}

// NormalizeEmoji strips the emoji presentation selector so reactions sent
// with or without it compare equal
func NormalizeEmoji(emoji string) string {
	return strings.ReplaceAll(emoji, "\ufe0f", "")
}

// SameEmoji reports whether two emojis match once normalized
func SameEmoji(a, b string) bool {
	return NormalizeEmoji(a) == NormalizeEmoji(b)
}

// StatusMessage is the tracker's status text cut to fit one Discord message.
// A roster too long to show whole keeps the rows around the current turn.
func StatusMessage(t *initiative.Tracker) string {
	focus := 0
	if t.IsActive {
		focus = t.CurrentIndex
	}
	return fitRows(t.FormatStatus(), focus, builders.MaxMessageChars)
}

// fitRows keeps the first line of text and as many of the following rows as
// fit in limit, growing down from focus and then up, and notes how many rows
// were left out on either side
func fitRows(text string, focus, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	rows := strings.Split(text, "\n")
	header, rows := rows[0], rows[1:]
	if focus < 0 || focus >= len(rows) {
		focus = 0
	}

	budget := limit - utf8.RuneCountInString(header) - noteReserve
	size := func(row string) int { return utf8.RuneCountInString(row) + 1 }

	lo, hi := focus, focus
	for hi < len(rows) && size(rows[hi]) <= budget {
		budget -= size(rows[hi])
		hi++
	}
	if hi == focus && hi < len(rows) && budget > 1 {
		rows[focus] = builders.Truncate(rows[focus], budget-1)
		budget = 0
		hi++
	}
	for lo > 0 && size(rows[lo-1]) <= budget {
		budget -= size(rows[lo-1])
		lo--
	}

	out := []string{header}
	if lo > 0 {
		out = append(out, fmt.Sprintf("… %d more above", lo))
	}
	out = append(out, rows[lo:hi]...)
	if hi < len(rows) {
		out = append(out, fmt.Sprintf("… %d more below", len(rows)-hi))
	}

	return builders.Truncate(strings.Join(out, "\n"), limit)
}

// TurnAnnouncement describes an advanced turn
func TurnAnnouncement(turn *initiative.Turn) string {
	var sb strings.Builder
	if turn.NewRound {
		fmt.Fprintf(&sb, "🔄 **Round %d**\n", turn.Round)
	}
	fmt.Fprintf(&sb, "➡️ It's **%s**'s turn!", turn.Combatant.Name)

	for _, name := range turn.Expired {
		fmt.Fprintf(&sb, "\n⌛ **%s** has worn off %s.", name, turn.Combatant.Name)
	}

	return sb.String()
}

func CombatStarted(round int) string {
	return fmt.Sprintf("⚔️ **Combat started!** Round %d", round)
}

func CurrentTurn(c *initiative.Combatant) string {
	return fmt.Sprintf("It's **%s**'s turn!", c.Name)
}

const (
	CombatEnded     = "🕊️ **Combat ended!**"
	InitiativeClear = "🧹 Initiative list cleared!"
	NoActiveCombat  = "❌ No active combat. Use `/init start` or react with ▶️ to begin."
	ClearPrompt     = "⚠️ Are you sure you want to clear the initiative list? React with ✅ to confirm or ❌ to cancel."
	TimedOut        = "Time's up. Operation cancelled."
	Cancelled       = "Operation cancelled."
	NoCombatants    = "❌ There are no combatants in the initiative."
	NoCombatToEnd   = "❌ There is no active combat to end."
	AlreadyInCombat = "⚔️ Combat is already in progress. React with ⏹️ to end it first."
	StatusRefreshed = "📋 Initiative order posted."
)

func CombatantAdded(c *initiative.Combatant) string {
	kind := "NPC"
	if c.IsPlayer {
		kind = "player"
	}
	return fmt.Sprintf("✅ %s added to the initiative as %s with %d.", c.Name, kind, c.Initiative)
}

func CombatantRemoved(name string) string {
	return fmt.Sprintf("✅ %s removed from the initiative.", name)
}

func EffectAdded(effect string, duration int, combatant string) string {
	return fmt.Sprintf("✨ Effect **%s** (%s) added to **%s**.", effect, turns(duration), combatant)
}

func EffectRemoved(effect, combatant string) string {
	return fmt.Sprintf("❌ Effect **%s** removed from **%s**.", effect, combatant)
}

// EffectsEmbed lists active effects. With a single named combatant each
// effect gets its own field; otherwise each combatant with effects gets one.
func EffectsEmbed(combatants []*initiative.Combatant, single bool) *discordgo.MessageEmbed {
	b := builders.NewEmbed().Title("📊 Active Effects").Color(ColorEffects)

	if single && len(combatants) == 1 {
		c := combatants[0]
		if len(c.Effects) == 0 {
			return b.Description(fmt.Sprintf("**%s** has no active effects.", c.Name)).Build()
		}

		for _, effect := range c.Effects {
			b.Field(fmt.Sprintf("%s (%s)", effect.Name, turns(effect.Duration)), describe(effect), false)
		}
		footer := "Combatant: " + c.Name
		if n := b.Dropped(); n > 0 {
			footer += fmt.Sprintf(" (%d more effects not shown)", n)
		}
		return b.Footer(footer).Build()
	}

	found := false
	for _, c := range combatants {
		if len(c.Effects) == 0 {
			continue
		}
		found = true

		lines := make([]string, len(c.Effects))
		for i, effect := range c.Effects {
			lines[i] = fmt.Sprintf("• **%s** (%s): %s", effect.Name, turns(effect.Duration), describe(effect))
		}
		b.Field(c.Name, strings.Join(lines, "\n"), false)
	}

	if !found {
		b.Description("No combatant has active effects right now.")
	}
	if n := b.Dropped(); n > 0 {
		b.Footer(fmt.Sprintf("%d more not shown. Use /init effects character:<name> to see one combatant.", n))
	}

	return b.Build()
}

func describe(effect *initiative.Effect) string {
	if effect.Description == "" {
		return noDescription
	}
	return effect.Description
}

func turns(n int) string {
	if n == 1 {
		return "1 turn"
	}
	return fmt.Sprintf("%d turns", n)
}
