package builders

import (
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Discord caps
const (
	MaxMessageChars     = 2000
	MaxEmbedFields      = 25
	MaxEmbedChars       = 6000
	MaxTitleChars       = 256
	MaxDescriptionChars = 4096
	MaxFieldNameChars   = 256
	MaxFieldValueChars  = 1024
	MaxFooterChars      = 2048
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed   *discordgo.MessageEmbed
	dropped int
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = Truncate(title, MaxTitleChars)
	return b
}

func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = Truncate(description, MaxDescriptionChars)
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Timestamp sets the embed timestamp
func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

// Footer sets the embed footer, shortened to whatever room the embed has left
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = nil
	room := min(MaxFooterChars, MaxEmbedChars-b.length())
	b.embed.Footer = &discordgo.MessageEmbedFooter{
		Text: Truncate(text, max(room, 0)),
	}
	return b
}

// Field adds a field to the embed. Names and values longer than Discord
// allows are truncated. Fields past the field limit, or that would push the
// embed over its total size, are dropped and counted.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	field := &discordgo.MessageEmbedField{
		Name:   Truncate(name, MaxFieldNameChars),
		Value:  Truncate(value, MaxFieldValueChars),
		Inline: inline,
	}

	if len(b.embed.Fields) >= MaxEmbedFields ||
		b.length()+utf8.RuneCountInString(field.Name)+utf8.RuneCountInString(field.Value) > MaxEmbedChars {
		b.dropped++
		return b
	}

	b.embed.Fields = append(b.embed.Fields, field)
	return b
}

// Dropped reports how many fields did not fit
func (b *EmbedBuilder) Dropped() int {
	return b.dropped
}

// length counts the characters Discord adds up against MaxEmbedChars
func (b *EmbedBuilder) length() int {
	n := utf8.RuneCountInString(b.embed.Title) + utf8.RuneCountInString(b.embed.Description)
	if b.embed.Footer != nil {
		n += utf8.RuneCountInString(b.embed.Footer.Text)
	}
	if b.embed.Author != nil {
		n += utf8.RuneCountInString(b.embed.Author.Name)
	}
	for _, f := range b.embed.Fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	return n
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Common embed colors
const (
	ColorSuccess = 0x00ff00 // Green
	ColorError   = 0xff0000 // Red
	ColorWarning = 0xffaa00 // Orange
	ColorInfo    = 0x0099ff // Blue
	ColorPrimary = 0x7289da // Discord Blurple
)

func SuccessEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("✅ " + title).
		Description(description).
		Color(ColorSuccess)
}

func WarningEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("⚠️ " + title).
		Description(description).
		Color(ColorWarning)
}

func InfoEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title(title).
		Description(description).
		Color(ColorInfo)
}

// Truncate shortens s to at most limit runes, marking the cut with an ellipsis
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
