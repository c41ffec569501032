package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/initiative-bot-discord/internal/uuid"
)

// LogConfig configures logging behavior
type LogConfig struct {
	LogRequests bool
	LogDuration bool
	LogErrors   bool

	// Logger allows custom logging implementation
	Logger Logger
}

// Logger is a custom logging interface
type Logger interface {
	LogRequest(ctx *core.InteractionContext)
	LogDuration(ctx *core.InteractionContext, duration time.Duration)
	LogError(ctx *core.InteractionContext, err error)
}

func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests: true,
		LogDuration: true,
		LogErrors:   true,
		Logger:      &defaultLogger{},
	}
}

// LoggingMiddleware provides request logging
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.Logger == nil {
				return next.Handle(ctx)
			}

			if config.LogRequests {
				config.Logger.LogRequest(ctx)
			}

			start := time.Now()
			result, err := next.Handle(ctx)

			if err != nil && config.LogErrors {
				config.Logger.LogError(ctx, err)
			}
			if config.LogDuration {
				config.Logger.LogDuration(ctx, time.Since(start))
			}

			return result, err
		})
	}
}

// RequestIDMiddleware tags each interaction with a generated ID
func RequestIDMiddleware(generator uuid.Generator) core.Middleware {
	if generator == nil {
		generator = &uuid.ShortGenerator{}
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.WithValue(core.RequestIDKey, generator.New())
			return next.Handle(ctx)
		})
	}
}

type defaultLogger struct{}

func (l *defaultLogger) LogRequest(ctx *core.InteractionContext) {
	log.Printf("[Discord] [%s] %s, User: %s, Guild: %s, Channel: %s",
		ctx.RequestID(),
		describe(ctx),
		ctx.UserID,
		ctx.GuildID,
		ctx.ChannelID,
	)
}

func (l *defaultLogger) LogDuration(ctx *core.InteractionContext, duration time.Duration) {
	log.Printf("[Discord] [%s] %s completed in %v", ctx.RequestID(), describe(ctx), duration)
}

func (l *defaultLogger) LogError(ctx *core.InteractionContext, err error) {
	log.Printf("[Discord] [%s] Error in %s: %v", ctx.RequestID(), describe(ctx), err)
}

func describe(ctx *core.InteractionContext) string {
	switch {
	case ctx.IsCommand():
		name := "/" + ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			name += " " + sub
		}
		return name
	case ctx.IsComponent():
		if parsed, err := core.ParseCustomID(ctx.GetCustomID()); err == nil {
			return parsed.Domain + ":" + parsed.Action
		}
		return ctx.GetCustomID()
	}
	return "unknown"
}
