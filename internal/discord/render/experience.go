package render

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
)

const (
	ColorPreview = 0xf1c40f // Gold
	ColorReceipt = 0x2ecc71 // Green
	ColorHistory = 0x3498db // Blue

	// HistoryPageSize is how many session names one history page lists
	HistoryPageSize = 20

	fieldParty   = "📊 Party Experience"
	fieldTotals  = "🏆 Grand Totals (Party + Individual)"
	noPartyExp   = "*No party experience recorded*"
	dateLayout   = "02/01/2006"
	timeLayout   = "15:04"
	finalizeHint = "Use /exp finalize <session_name> to finalize and save this sheet"
)

func PartyExpAdded(entry *experience.Entry) string {
	return fmt.Sprintf("✨ **Party EXP Added!**\n**Amount:** %d XP\n**Achievement:** %s\n**Time:** %s\n\nThis experience is shared by every player in the session.",
		entry.Amount, entry.Achievement, entry.Timestamp.Format(timeLayout))
}

func PlayerExpAdded(player string, entry *experience.Entry) string {
	return fmt.Sprintf("✨ **Individual EXP Added!**\n**Player:** %s\n**Amount:** %d XP\n**Achievement:** %s\n**Time:** %s",
		player, entry.Amount, entry.Achievement, entry.Timestamp.Format(timeLayout))
}

func PartyExpRemoved(entry *experience.Entry) string {
	return fmt.Sprintf("🗑️ **Party EXP Removed!**\n**Amount:** %d XP\n**Achievement:** %s", entry.Amount, entry.Achievement)
}

func PlayerExpRemoved(player string, entry *experience.Entry) string {
	return fmt.Sprintf("🗑️ **Individual EXP Removed!**\n**Player:** %s\n**Amount:** %d XP\n**Achievement:** %s",
		player, entry.Amount, entry.Achievement)
}

const (
	SessionCreated   = "✅ New experience sheet created for the current session!"
	SessionFinalized = "✅ **Experience receipt finalized and saved!**"
	SessionCleared   = "🗑️ Active experience sheet cleared!"
	ClearSessionAsk  = "⚠️ **WARNING**: You are about to clear the active experience sheet. This cannot be undone.\nDo you want to continue?"
	NothingToClear   = "❌ There is no active experience sheet with entries to clear."
	NoHistory        = "📚 No saved sessions in this server yet."
	ConfirmExpired   = "⌛ This confirmation has expired."
)

// PreviewEmbed shows the open session with one-based indices for removal
func PreviewEmbed(session *experience.Session) *discordgo.MessageEmbed {
	b := builders.NewEmbed().
		Title("📝 Experience Sheet Preview").
		Description("Partial summary of the experience recorded this session").
		Color(ColorPreview)

	addSessionFields(b, session, true)

	if len(session.Players) == 0 {
		b.Field("👤 Individual Experience", "*No individual experience recorded*", false)
	}

	return b.Footer(finalizeHint).Build()
}

// ReceiptEmbed summarizes a finalized session
func ReceiptEmbed(session *experience.Session, description string) *discordgo.MessageEmbed {
	b := builders.NewEmbed().
		Title("🧾 Experience Receipt: " + session.Name).
		Description(description).
		Color(ColorReceipt)

	addSessionFields(b, session, false)

	return b.Footer("Session played on " + session.CreatedAt.Format(dateLayout)).Build()
}

// HistoryEmbed lists saved session names for one page. Pages are one-based
// and clamped to the available range.
func HistoryEmbed(history experience.History, page int) (*discordgo.MessageEmbed, int, int) {
	names := history.Names()
	pages := (len(names) + HistoryPageSize - 1) / HistoryPageSize
	if pages == 0 {
		pages = 1
	}
	page = max(1, min(page, pages))

	start := (page - 1) * HistoryPageSize
	end := min(start+HistoryPageSize, len(names))

	lines := make([]string, 0, end-start)
	for _, name := range names[start:end] {
		lines = append(lines, fmt.Sprintf("• **%s**", name))
	}

	b := builders.NewEmbed().
		Title("📚 Session History").
		Description("Every session saved in this server").
		Color(ColorHistory).
		Field("Available Sessions", strings.Join(lines, "\n"), false)

	footer := "Use /exp history <session_name> to see the details of one session"
	if pages > 1 {
		footer = fmt.Sprintf("Page %d of %d • %s", page, pages, footer)
	}

	return b.Footer(footer).Build(), page, pages
}

func addSessionFields(b *builders.EmbedBuilder, session *experience.Session, numbered bool) {
	party := noPartyExp
	if len(session.PartyEntries) > 0 {
		party = entryLines(session.PartyEntries, numbered) +
			fmt.Sprintf("\n\n**Party Total: %d XP**", session.PartyTotal())
	}
	b.Field(fieldParty, party, false)

	for _, p := range session.Players {
		b.Field("👤 "+p.Name, entryLines(p.Entries, numbered)+
			fmt.Sprintf("\n\n**Individual Total: %d XP**", p.Total()), false)
	}

	if totals := session.GrandTotals(); len(totals) > 0 {
		lines := make([]string, len(totals))
		for i, total := range totals {
			lines[i] = fmt.Sprintf("**%s:** %d XP", total.Name, total.Amount)
		}
		b.Field(fieldTotals, strings.Join(lines, "\n"), false)
	}
}

func entryLines(entries []*experience.Entry, numbered bool) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		if numbered {
			lines[i] = fmt.Sprintf("%d. **%d XP** - %s", i+1, e.Amount, e.Achievement)
		} else {
			lines[i] = fmt.Sprintf("**%d XP** - %s", e.Amount, e.Achievement)
		}
	}
	return strings.Join(lines, "\n")
}
