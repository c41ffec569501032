package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler defines the interface for all interaction handlers
type Handler interface {
	// CanHandle determines if this handler should process the interaction
	CanHandle(ctx *InteractionContext) bool

	// Handle processes the interaction and returns a result
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *InteractionContext) bool {
	return true
}

func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult contains the response and metadata from a handler
type HandlerResult struct {
	Response *Response

	// Whether the response was already deferred
	Deferred bool

	// Whether to stop processing further handlers
	StopPropagation bool

	// AfterSend runs once the response has reached Discord, in order.
	// Used for follow-up channel messages such as the status board.
	AfterSend []func()

	// Additional context to pass to middleware
	Context map[string]any
}

// NewResult wraps a response in a HandlerResult
func NewResult(response *Response) *HandlerResult {
	return &HandlerResult{Response: response}
}

// Then queues fn to run after the response is sent
func (r *HandlerResult) Then(fn func()) *HandlerResult {
	r.AfterSend = append(r.AfterSend, fn)
	return r
}

// Response represents a Discord-agnostic response
type Response struct {
	Content string

	Embeds []*discordgo.MessageEmbed

	// Interactive components (buttons, select menus, etc)
	Components []discordgo.MessageComponent

	// Whether this response should be ephemeral (only visible to the user)
	Ephemeral bool

	// Whether to replace the message the component was attached to
	Update bool

	AllowedMentions *discordgo.MessageAllowedMentions
}

func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// WithComponents adds components to the response
func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// WithEmbeds adds embeds to the response
func (r *Response) WithEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	r.Embeds = embeds
	return r
}

// AsEphemeral sets the response to be ephemeral
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// AsUpdate sets the response to update the original message
func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}

// Wrap builds a middleware handler that keeps next's CanHandle
func Wrap(next Handler, fn HandlerFunc) Handler {
	return &wrappedHandler{next: next, fn: fn}
}

type wrappedHandler struct {
	next Handler
	fn   HandlerFunc
}

func (w *wrappedHandler) CanHandle(ctx *InteractionContext) bool {
	return w.next.CanHandle(ctx)
}

func (w *wrappedHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return w.fn(ctx)
}
