package core

import (
	"fmt"
	"strings"
)

// Router manages handlers for one slash command and the components it emits
type Router struct {
	// Domain is both the command name and the custom ID prefix (e.g. "init", "exp")
	domain string

	handlers map[string]Handler

	// Middleware specific to this router
	middleware []Middleware

	customIDBuilder *CustomIDBuilder

	pipeline *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:          domain,
		handlers:        make(map[string]Handler),
		middleware:      make([]Middleware, 0),
		customIDBuilder: NewCustomIDBuilder(domain),
		pipeline:        pipeline,
	}
}

// Use adds middleware to this router. It only wraps handlers registered afterwards.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a routing pattern
func (r *Router) Handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[pattern] = wrapped
	return r
}

func (r *Router) HandleFunc(pattern string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(pattern, HandlerFunc(fn))
}

// Subcommand registers a handler for /<domain> <sub>
func (r *Router) Subcommand(sub string, handler Handler) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s:%s", r.domain, sub), handler)
}

func (r *Router) SubcommandFunc(sub string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Subcommand(sub, HandlerFunc(fn))
}

// Component registers a component interaction handler
func (r *Router) Component(action string, handler Handler) *Router {
	return r.Handle(fmt.Sprintf("component:%s", action), handler)
}

func (r *Router) ComponentFunc(action string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Component(action, HandlerFunc(fn))
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		domain:   r.domain,
		handlers: r.handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

func (r *Router) GetCustomIDBuilder() *CustomIDBuilder {
	return r.customIDBuilder
}

type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.lookup(ctx) != nil
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.lookup(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

// lookup finds the exact pattern, then falls back to wildcard patterns
// such as "cmd:init:*"
func (h *routerHandler) lookup(ctx *InteractionContext) Handler {
	pattern := h.extractPattern(ctx)
	if pattern == "" {
		return nil
	}

	if handler, ok := h.handlers[pattern]; ok {
		return handler
	}

	parts := strings.Split(pattern, ":")
	for i := len(parts); i > 0; i-- {
		if handler, ok := h.handlers[strings.Join(parts[:i], ":")+":*"]; ok {
			return handler
		}
	}

	return nil
}

func (h *routerHandler) extractPattern(ctx *InteractionContext) string {
	if ctx.IsCommand() {
		if ctx.GetCommandName() != h.domain {
			return ""
		}

		if sub := ctx.GetSubcommand(); sub != "" {
			return fmt.Sprintf("cmd:%s:%s", h.domain, sub)
		}
		return fmt.Sprintf("cmd:%s", h.domain)
	}

	if ctx.IsComponent() {
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != h.domain {
			return ""
		}
		return fmt.Sprintf("component:%s", customID.Action)
	}

	return ""
}
