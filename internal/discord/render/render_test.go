package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
)

var baseTime = time.Date(2024, 3, 9, 20, 15, 0, 0, time.UTC)

func TestControlEmojis(t *testing.T) {
	assert.Equal(t, []string{EmojiNextTurn, EmojiStart, EmojiClear}, ControlEmojis(false))
	assert.Equal(t, []string{EmojiNextTurn, EmojiEnd, EmojiClear}, ControlEmojis(true))
}

func TestSameEmoji(t *testing.T) {
	assert.True(t, SameEmoji("\u25b6", EmojiStart))
	assert.True(t, SameEmoji("⏹️", EmojiEnd))
	assert.False(t, SameEmoji(EmojiStart, EmojiEnd))
}

func TestTurnAnnouncement(t *testing.T) {
	t.Run("same round", func(t *testing.T) {
		turn := &initiative.Turn{Combatant: initiative.NewCombatant("Goblin", 12, false), Round: 1}
		assert.Equal(t, "➡️ It's **Goblin**'s turn!", TurnAnnouncement(turn))
	})

	t.Run("new round with expired effects", func(t *testing.T) {
		turn := &initiative.Turn{
			Combatant: initiative.NewCombatant("Hero", 18, true),
			Round:     2,
			NewRound:  true,
			Expired:   []string{"Bless"},
		}
		assert.Equal(t, "🔄 **Round 2**\n➡️ It's **Hero**'s turn!\n⌛ **Bless** has worn off Hero.", TurnAnnouncement(turn))
	})
}

func TestCombatantAdded(t *testing.T) {
	assert.Equal(t, "✅ Hero added to the initiative as player with 18.", CombatantAdded(initiative.NewCombatant("Hero", 18, true)))
	assert.Equal(t, "✅ Goblin added to the initiative as NPC with 12.", CombatantAdded(initiative.NewCombatant("Goblin", 12, false)))
}

func TestEffectsEmbed(t *testing.T) {
	hero := initiative.NewCombatant("Hero", 18, true)
	hero.AddEffect(initiative.NewEffect("Bless", 1, "", baseTime))
	goblin := initiative.NewCombatant("Goblin", 12, false)
	goblin.AddEffect(initiative.NewEffect("Poisoned", 3, "Disadvantage on attacks", baseTime))
	orc := initiative.NewCombatant("Orc", 9, false)

	t.Run("all combatants", func(t *testing.T) {
		embed := EffectsEmbed([]*initiative.Combatant{hero, goblin, orc}, false)

		assert.Equal(t, "📊 Active Effects", embed.Title)
		require.Len(t, embed.Fields, 2)
		assert.Equal(t, "Hero", embed.Fields[0].Name)
		assert.Equal(t, "• **Bless** (1 turn): No description", embed.Fields[0].Value)
		assert.Equal(t, "• **Poisoned** (3 turns): Disadvantage on attacks", embed.Fields[1].Value)
	})

	t.Run("nobody has effects", func(t *testing.T) {
		embed := EffectsEmbed([]*initiative.Combatant{orc}, false)
		assert.Equal(t, "No combatant has active effects right now.", embed.Description)
	})

	t.Run("single combatant", func(t *testing.T) {
		embed := EffectsEmbed([]*initiative.Combatant{goblin}, true)
		require.Len(t, embed.Fields, 1)
		assert.Equal(t, "Poisoned (3 turns)", embed.Fields[0].Name)
		assert.Equal(t, "Combatant: Goblin", embed.Footer.Text)
	})

	t.Run("single combatant without effects", func(t *testing.T) {
		embed := EffectsEmbed([]*initiative.Combatant{orc}, true)
		assert.Equal(t, "**Orc** has no active effects.", embed.Description)
	})
}

func TestEffectsEmbed_StaysWithinDiscordLimits(t *testing.T) {
	many := func(effects int, description string) []*initiative.Combatant {
		combatants := make([]*initiative.Combatant, 30)
		for i := range combatants {
			c := initiative.NewCombatant(fmt.Sprintf("Goblin %02d", i), 30-i, false)
			for j := 0; j < effects; j++ {
				c.AddEffect(initiative.NewEffect(fmt.Sprintf("Hex %d", j), 3, description, baseTime))
			}
			combatants[i] = c
		}
		return combatants
	}

	size := func(embed *discordgo.MessageEmbed) int {
		n := len([]rune(embed.Title)) + len([]rune(embed.Description))
		if embed.Footer != nil {
			n += len([]rune(embed.Footer.Text))
		}
		for _, f := range embed.Fields {
			n += len([]rune(f.Name)) + len([]rune(f.Value))
		}
		return n
	}

	t.Run("too many combatants", func(t *testing.T) {
		embed := EffectsEmbed(many(1, "Cursed"), false)

		assert.Len(t, embed.Fields, builders.MaxEmbedFields)
		assert.True(t, strings.HasPrefix(embed.Footer.Text, "5 more not shown."))
		assert.LessOrEqual(t, size(embed), builders.MaxEmbedChars)
	})

	t.Run("long descriptions", func(t *testing.T) {
		embed := EffectsEmbed(many(4, strings.Repeat("d", 400)), false)

		assert.NotEmpty(t, embed.Fields)
		for _, f := range embed.Fields {
			assert.LessOrEqual(t, len([]rune(f.Value)), builders.MaxFieldValueChars)
		}
		assert.Contains(t, embed.Footer.Text, "more not shown")
		assert.LessOrEqual(t, size(embed), builders.MaxEmbedChars)
	})

	t.Run("one combatant with many effects", func(t *testing.T) {
		goblin := many(30, "Cursed")[0]

		embed := EffectsEmbed([]*initiative.Combatant{goblin}, true)

		assert.Len(t, embed.Fields, builders.MaxEmbedFields)
		assert.Equal(t, "Combatant: Goblin 00 (5 more effects not shown)", embed.Footer.Text)
	})
}

func longRoster(n int) *initiative.Tracker {
	tracker := initiative.NewTracker()
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Goblin %02d %s", i, strings.Repeat("z", 50))
		tracker.Add(initiative.NewCombatant(name, n-i, false))
	}
	return tracker
}

func TestStatusMessage(t *testing.T) {
	t.Run("short roster is unchanged", func(t *testing.T) {
		tracker := longRoster(3)
		assert.Equal(t, tracker.FormatStatus(), StatusMessage(tracker))
	})

	t.Run("idle roster keeps the top", func(t *testing.T) {
		tracker := longRoster(40)
		require.Greater(t, len([]rune(tracker.FormatStatus())), builders.MaxMessageChars)

		msg := StatusMessage(tracker)

		assert.LessOrEqual(t, len([]rune(msg)), builders.MaxMessageChars)
		assert.True(t, strings.HasPrefix(msg, "📋 **INITIATIVE**\n"))
		assert.Contains(t, msg, "Goblin 00")
		assert.NotContains(t, msg, "more above")
		assert.Contains(t, msg, "more below")
	})

	t.Run("active roster keeps the current turn", func(t *testing.T) {
		tracker := longRoster(40)
		require.True(t, tracker.Start())
		tracker.CurrentIndex = 30

		msg := StatusMessage(tracker)

		assert.LessOrEqual(t, len([]rune(msg)), builders.MaxMessageChars)
		assert.True(t, strings.HasPrefix(msg, "📋 **INITIATIVE** (Round 1)\n"))
		assert.Contains(t, msg, initiative.CurrentMarker+" "+tracker.Combatants[30].String())
		assert.Contains(t, msg, "Goblin 39")
		assert.Contains(t, msg, "more above")
		assert.NotContains(t, msg, "more below")
	})

	t.Run("a single oversized row is still capped", func(t *testing.T) {
		tracker := initiative.NewTracker()
		tracker.Add(initiative.NewCombatant(strings.Repeat("x", 3000), 10, false))

		msg := StatusMessage(tracker)

		assert.LessOrEqual(t, len([]rune(msg)), builders.MaxMessageChars)
		assert.Contains(t, msg, strings.Repeat("x", 100))
		assert.NotContains(t, msg, "more below")
	})
}

func ledger() *experience.Session {
	s := experience.NewSession(baseTime)
	s.AddPartyExp(100, "Defeated the goblins", baseTime)
	s.AddPartyExp(50, "Found the map", baseTime)
	s.AddPlayerExp("Aria", 25, "Clever riddle answer", baseTime)
	return s
}

func TestPreviewEmbed(t *testing.T) {
	embed := PreviewEmbed(ledger())

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "1. **100 XP** - Defeated the goblins\n2. **50 XP** - Found the map\n\n**Party Total: 150 XP**", embed.Fields[0].Value)
	assert.Equal(t, "👤 Aria", embed.Fields[1].Name)
	assert.Equal(t, "1. **25 XP** - Clever riddle answer\n\n**Individual Total: 25 XP**", embed.Fields[1].Value)
	assert.Equal(t, "**Aria:** 175 XP", embed.Fields[2].Value)
}

func TestPreviewEmbed_Empty(t *testing.T) {
	embed := PreviewEmbed(experience.NewSession(baseTime))

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, noPartyExp, embed.Fields[0].Value)
	assert.Equal(t, "*No individual experience recorded*", embed.Fields[1].Value)
}

func TestReceiptEmbed(t *testing.T) {
	s := ledger()
	s.Finalize("Goblin Cave", baseTime.Add(3*time.Hour))

	embed := ReceiptEmbed(s, "Final experience summary for the session")

	assert.Equal(t, "🧾 Experience Receipt: Goblin Cave", embed.Title)
	assert.Equal(t, "**100 XP** - Defeated the goblins\n**50 XP** - Found the map\n\n**Party Total: 150 XP**", embed.Fields[0].Value)
	assert.Equal(t, "Session played on 09/03/2024", embed.Footer.Text)
}

func TestHistoryEmbed(t *testing.T) {
	var history experience.History
	for i := 1; i <= HistoryPageSize+5; i++ {
		s := experience.NewSession(baseTime)
		s.Finalize(fmt.Sprintf("Session %02d", i), baseTime)
		history = append(history, s)
	}

	embed, page, pages := HistoryEmbed(history, 9)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, pages)
	assert.Contains(t, embed.Fields[0].Value, "• **Session 21**")
	assert.NotContains(t, embed.Fields[0].Value, "Session 20")
	assert.Contains(t, embed.Footer.Text, "Page 2 of 2")

	embed, page, _ = HistoryEmbed(history[:2], 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, "• **Session 01**\n• **Session 02**", embed.Fields[0].Value)
	assert.NotContains(t, embed.Footer.Text, "Page")
}

func TestExpAdded(t *testing.T) {
	entry := &experience.Entry{Amount: 100, Achievement: "Defeated the goblins", Timestamp: baseTime}

	assert.Contains(t, PartyExpAdded(entry), "**Time:** 20:15")
	assert.Contains(t, PlayerExpAdded("Aria", entry), "**Player:** Aria")
}

func TestEffectMessages(t *testing.T) {
	assert.Equal(t, "✨ Effect **Poisoned** (3 turns) added to **Goblin**.", EffectAdded("Poisoned", 3, "Goblin"))
	assert.Equal(t, "❌ Effect **Poisoned** removed from **Goblin**.", EffectRemoved("Poisoned", "Goblin"))
}
