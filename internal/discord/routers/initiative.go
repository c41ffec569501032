package routers

import (
	"context"
	"strings"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/render"
	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
	initiativesvc "github.com/KirkDiggler/initiative-bot-discord/internal/services/initiative"
)

// StatusPublisher re-posts a channel's initiative status after a change
type StatusPublisher interface {
	PublishAsync(ctx context.Context, channelID string) func()
}

// InitiativeRouterConfig holds the /init router's dependencies
type InitiativeRouterConfig struct {
	Service    initiativesvc.Service
	Status     StatusPublisher
	Middleware []core.Middleware
}

// InitiativeRouter handles the /init command
type InitiativeRouter struct {
	router  *core.Router
	service initiativesvc.Service
	status  StatusPublisher
}

// NewInitiativeRouter creates the /init router and registers it with the pipeline
func NewInitiativeRouter(pipeline *core.Pipeline, cfg *InitiativeRouterConfig) *InitiativeRouter {
	if cfg.Service == nil || cfg.Status == nil {
		panic("initiative service and status publisher are required")
	}

	router := core.NewRouter("init", pipeline)
	router.Use(cfg.Middleware...)

	ir := &InitiativeRouter{
		router:  router,
		service: cfg.Service,
		status:  cfg.Status,
	}

	ir.registerRoutes()
	router.Register()

	return ir
}

func (r *InitiativeRouter) registerRoutes() {
	r.router.SubcommandFunc("show", r.handleShow)
	r.router.SubcommandFunc("add", r.handleAdd)
	r.router.SubcommandFunc("remove", r.handleRemove)
	r.router.SubcommandFunc("start", r.handleStart)
	r.router.SubcommandFunc("end", r.handleEnd)
	r.router.SubcommandFunc("next", r.handleNext)
	r.router.SubcommandFunc("effect", r.handleAddEffect)
	r.router.SubcommandFunc("remove_effect", r.handleRemoveEffect)
	r.router.SubcommandFunc("clear", r.handleClear)
	r.router.SubcommandFunc("effects", r.handleEffects)
}

// Handler exposes the built router for tests and custom pipelines
func (r *InitiativeRouter) Handler() core.Handler {
	return r.router.Build()
}

// withStatus queues a status re-post after the reply
func (r *InitiativeRouter) withStatus(ctx *core.InteractionContext, response *core.Response) *core.HandlerResult {
	return core.NewResult(response).Then(r.status.PublishAsync(context.WithoutCancel(ctx.Context), ctx.ChannelID))
}

func (r *InitiativeRouter) handleShow(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := r.service.GetTracker(ctx.Context, ctx.ChannelID); err != nil {
		return nil, err
	}

	return r.withStatus(ctx, core.NewEphemeralResponse(render.StatusRefreshed)), nil
}

func (r *InitiativeRouter) handleAdd(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input := &initiativesvc.AddCombatantInput{
		ChannelID:  ctx.ChannelID,
		Name:       strings.TrimSpace(ctx.GetStringParam("name")),
		Initiative: ctx.GetIntParam("initiative"),
		IsPlayer:   strings.EqualFold(ctx.GetStringParam("type"), "pc"),
	}

	if _, err := r.service.AddCombatant(ctx.Context, input); err != nil {
		return nil, err
	}

	added := initiative.NewCombatant(input.Name, input.Initiative, input.IsPlayer)
	return r.withStatus(ctx, core.NewResponse(render.CombatantAdded(added))), nil
}

func (r *InitiativeRouter) handleRemove(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name := strings.TrimSpace(ctx.GetStringParam("name"))

	if _, err := r.service.RemoveCombatant(ctx.Context, ctx.ChannelID, name); err != nil {
		return nil, err
	}

	return r.withStatus(ctx, core.NewResponse(render.CombatantRemoved(name))), nil
}

func (r *InitiativeRouter) handleStart(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	tracker, err := r.service.StartCombat(ctx.Context, ctx.ChannelID)
	if err != nil {
		return nil, err
	}

	content := render.CombatStarted(tracker.Round)
	if current := tracker.Current(); current != nil {
		content += "\n" + render.CurrentTurn(current)
	}

	return r.withStatus(ctx, core.NewResponse(content)), nil
}

func (r *InitiativeRouter) handleEnd(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := r.service.EndCombat(ctx.Context, ctx.ChannelID); err != nil {
		return nil, err
	}

	return r.withStatus(ctx, core.NewResponse(render.CombatEnded)), nil
}

func (r *InitiativeRouter) handleNext(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	result, err := r.service.NextTurn(ctx.Context, ctx.ChannelID)
	if err != nil {
		return nil, err
	}

	if result.Turn == nil || result.Turn.Combatant == nil {
		return core.NewResult(core.NewEphemeralResponse(render.NoCombatants)), nil
	}

	return r.withStatus(ctx, core.NewResponse(render.TurnAnnouncement(result.Turn))), nil
}

func (r *InitiativeRouter) handleAddEffect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input := &initiativesvc.AddEffectInput{
		ChannelID:     ctx.ChannelID,
		CombatantName: strings.TrimSpace(ctx.GetStringParam("character")),
		EffectName:    strings.TrimSpace(ctx.GetStringParam("effect")),
		Duration:      ctx.GetIntParam("duration"),
		Description:   strings.TrimSpace(ctx.GetStringParam("description")),
	}

	tracker, err := r.service.AddEffect(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	name := input.CombatantName
	if c := tracker.Find(name); c != nil {
		name = c.Name
	}

	return r.withStatus(ctx, core.NewResponse(render.EffectAdded(input.EffectName, input.Duration, name))), nil
}

func (r *InitiativeRouter) handleRemoveEffect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	combatant := strings.TrimSpace(ctx.GetStringParam("character"))
	effect := strings.TrimSpace(ctx.GetStringParam("effect"))

	tracker, err := r.service.RemoveEffect(ctx.Context, ctx.ChannelID, combatant, effect)
	if err != nil {
		return nil, err
	}

	if c := tracker.Find(combatant); c != nil {
		combatant = c.Name
	}

	return r.withStatus(ctx, core.NewResponse(render.EffectRemoved(effect, combatant))), nil
}

func (r *InitiativeRouter) handleClear(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := r.service.Clear(ctx.Context, ctx.ChannelID); err != nil {
		return nil, err
	}

	return r.withStatus(ctx, core.NewResponse(render.InitiativeClear)), nil
}

func (r *InitiativeRouter) handleEffects(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name := strings.TrimSpace(ctx.GetStringParam("character"))

	combatants, err := r.service.Effects(ctx.Context, ctx.ChannelID, name)
	if err != nil {
		return nil, err
	}

	if len(combatants) == 0 {
		return core.NewResult(core.NewEphemeralResponse(render.NoCombatants)), nil
	}

	return core.NewResult(core.NewEmbedResponse(render.EffectsEmbed(combatants, name != ""))), nil
}
