package middleware

import (
	"slices"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
)

// AuthConfig configures authorization behavior
type AuthConfig struct {
	// RequireGuild rejects interactions from direct messages
	RequireGuild bool

	// RequiredPermissions lists permission bits the member must hold
	RequiredPermissions int64

	// UserBlacklist blocks specific users
	UserBlacklist []string
}

// AuthorizationMiddleware checks if user is authorized
func AuthorizationMiddleware(config *AuthConfig) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if slices.Contains(config.UserBlacklist, ctx.UserID) {
				return unauthorizedResponse("You are not authorized to use this command."), nil
			}

			if config.RequireGuild && ctx.GuildID == "" {
				return unauthorizedResponse("This command can only be used in a server."), nil
			}

			if config.RequiredPermissions > 0 && !hasRequiredPermissions(ctx, config.RequiredPermissions) {
				return unauthorizedResponse("You don't have the required permissions to use this command."), nil
			}

			return next.Handle(ctx)
		})
	}
}

// GuildRequiredMiddleware rejects interactions outside a server
func GuildRequiredMiddleware() core.Middleware {
	return AuthorizationMiddleware(&AuthConfig{RequireGuild: true})
}

func hasRequiredPermissions(ctx *core.InteractionContext, required int64) bool {
	if ctx.Member == nil {
		return false
	}
	return ctx.Member.Permissions&required == required
}

func unauthorizedResponse(message string) *core.HandlerResult {
	return &core.HandlerResult{
		Response:        core.NewEphemeralResponse("🚫 " + message),
		StopPropagation: true,
	}
}
