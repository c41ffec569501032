package middleware

import (
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether internal errors are logged
	LogErrors bool

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.InteractionContext, err error)

func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:   true,
		ErrorLogger: defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into ephemeral replies
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			handlerErr := core.FromError(err)
			if handlerErr.Code >= core.ErrorCodeInternal && config.LogErrors && config.ErrorLogger != nil {
				config.ErrorLogger(ctx, err)
			}

			return &core.HandlerResult{
				Response: core.NewEphemeralResponse(handlerErr.UserMessage),
				Context: map[string]any{
					"error": err,
				},
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					switch v := r.(type) {
					case error:
						err = v
					case string:
						err = errors.New(v)
					default:
						err = fmt.Errorf("panic: %v", r)
					}

					log.Printf("[Discord] Panic recovered in handler: %v", err)

					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func defaultErrorLogger(ctx *core.InteractionContext, err error) {
	logCtx := map[string]any{
		"user_id":    ctx.UserID,
		"guild_id":   ctx.GuildID,
		"channel_id": ctx.ChannelID,
	}
	if id := ctx.RequestID(); id != "" {
		logCtx["request_id"] = id
	}

	if ctx.IsCommand() {
		logCtx["command"] = ctx.GetCommandName()
		logCtx["subcommand"] = ctx.GetSubcommand()
	} else if ctx.IsComponent() {
		if customID, parseErr := core.ParseCustomID(ctx.GetCustomID()); parseErr == nil {
			logCtx["domain"] = customID.Domain
			logCtx["action"] = customID.Action
		}
	}

	log.Printf("[Discord] Handler error: %v, context: %+v", err, logCtx)
}
