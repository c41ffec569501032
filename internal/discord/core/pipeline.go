package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	// Whether to stop on first handler that can handle
	stopOnFirst bool

	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		stopOnFirst:  true,
	}
}

// Register adds handlers to the pipeline. Middleware added with Use before
// the call wraps them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

func (p *Pipeline) SetStopOnFirst(stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopOnFirst = stop
}

// Execute runs the pipeline for an interaction received from the gateway
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	interactionCtx := NewInteractionContext(ctx, s, i)
	return p.Dispatch(interactionCtx, NewDiscordResponder(s, i))
}

// Dispatch runs the registered handlers against an already built context and
// sends their responses through responder
func (p *Pipeline) Dispatch(ctx *InteractionContext, responder InteractionResponder) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	stopOnFirst := p.stopOnFirst
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	handled := false

	for _, handler := range handlers {
		if !handler.CanHandle(ctx) {
			continue
		}

		result, err := handler.Handle(ctx)
		if err != nil {
			result = errorHandler(ctx, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}

		if result != nil {
			for _, fn := range result.AfterSend {
				fn()
			}
		}

		handled = true

		if stopOnFirst || (result != nil && result.StopPropagation) {
			break
		}
	}

	if !handled && !responder.HasResponded() {
		log.Printf("[Pipeline] No handler for command %q component %q", ctx.GetCommandName(), ctx.GetCustomID())
		return sendResponse(responder, &HandlerResult{
			Response: NewEphemeralResponse("I don't know how to handle that command."),
		})
	}

	return nil
}

func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}

	return responder.Respond(result.Response)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	handlerErr := FromError(err)
	if handlerErr.Code >= ErrorCodeInternal {
		log.Printf("[Pipeline] Handler error: %v", err)
	}

	return &HandlerResult{
		Response: NewEphemeralResponse(handlerErr.UserMessage),
	}
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
