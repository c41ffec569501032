package builders

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
)

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		rows:            make([]discordgo.MessageComponent, 0),
		currentRow:      make([]discordgo.MessageComponent, 0, 5), // Max 5 per row
		customIDBuilder: customIDBuilder,
	}
}

// Button adds a button whose custom ID is <domain>:<action>:<target>:<args...>
func (b *ComponentBuilder) Button(label, emoji string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	button := discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
	}
	if emoji != "" {
		button.Emoji = &discordgo.ComponentEmoji{Name: emoji}
	}

	b.addComponent(button)
	return b
}

// DisabledButton adds a disabled button
func (b *ComponentBuilder) DisabledButton(label string, style discordgo.ButtonStyle, id string) *ComponentBuilder {
	button := discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button("noop", id),
		Disabled: true,
	}

	b.addComponent(button)
	return b
}

func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, 5)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= 5 {
		b.NewRow()
	}

	b.currentRow = append(b.currentRow, component)
}

// ConfirmationButtons adds confirm/cancel buttons for a pending token
func (b *ComponentBuilder) ConfirmationButtons(confirmAction, cancelAction, token string) *ComponentBuilder {
	b.Button("Confirm", "✅", discordgo.DangerButton, confirmAction, token)
	b.Button("Cancel", "❌", discordgo.SecondaryButton, cancelAction, token)
	return b
}

// PaginationButtons adds previous/indicator/next buttons. Pages are one-based.
func (b *ComponentBuilder) PaginationButtons(currentPage, totalPages int, action string) *ComponentBuilder {
	if currentPage > 1 {
		b.Button("Previous", "⬅️", discordgo.SecondaryButton, action, fmt.Sprintf("%d", currentPage-1))
	} else {
		b.DisabledButton("Previous", discordgo.SecondaryButton, "prev")
	}

	b.DisabledButton(fmt.Sprintf("%d/%d", currentPage, totalPages), discordgo.SecondaryButton, "page")

	if currentPage < totalPages {
		b.Button("Next", "➡️", discordgo.SecondaryButton, action, fmt.Sprintf("%d", currentPage+1))
	} else {
		b.DisabledButton("Next", discordgo.SecondaryButton, "next")
	}

	return b
}
