package routers

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/initiative-bot-discord/internal/discord/render"
	"github.com/KirkDiggler/initiative-bot-discord/internal/services/confirmation"
	experiencesvc "github.com/KirkDiggler/initiative-bot-discord/internal/services/experience"
)

// ExperienceRouterConfig holds the /exp router's dependencies
type ExperienceRouterConfig struct {
	Service       experiencesvc.Service
	Confirmations confirmation.Manager
	Middleware    []core.Middleware
}

// ExperienceRouter handles the /exp command and its buttons
type ExperienceRouter struct {
	router        *core.Router
	service       experiencesvc.Service
	confirmations confirmation.Manager
	idBuilder     *core.CustomIDBuilder
}

// NewExperienceRouter creates the /exp router and registers it with the pipeline
func NewExperienceRouter(pipeline *core.Pipeline, cfg *ExperienceRouterConfig) *ExperienceRouter {
	if cfg.Service == nil || cfg.Confirmations == nil {
		panic("experience service and confirmation manager are required")
	}

	router := core.NewRouter("exp", pipeline)
	router.Use(cfg.Middleware...)

	er := &ExperienceRouter{
		router:        router,
		service:       cfg.Service,
		confirmations: cfg.Confirmations,
		idBuilder:     router.GetCustomIDBuilder(),
	}

	er.registerRoutes()
	router.Register()

	return er
}

func (r *ExperienceRouter) registerRoutes() {
	// Slash commands
	r.router.SubcommandFunc("create", r.handleCreate)
	r.router.SubcommandFunc("add_party", r.handleAddParty)
	r.router.SubcommandFunc("add_player", r.handleAddPlayer)
	r.router.SubcommandFunc("remove_party", r.handleRemoveParty)
	r.router.SubcommandFunc("remove_player", r.handleRemovePlayer)
	r.router.SubcommandFunc("preview", r.handlePreview)
	r.router.SubcommandFunc("finalize", r.handleFinalize)
	r.router.SubcommandFunc("clear_session", r.handleClearSession)
	r.router.SubcommandFunc("history", r.handleHistory)

	// Component interactions
	r.router.ComponentFunc("clear_confirm", r.handleClearConfirm)
	r.router.ComponentFunc("clear_cancel", r.handleClearCancel)
	r.router.ComponentFunc("history", r.handleHistoryPage)
}

func (r *ExperienceRouter) Handler() core.Handler {
	return r.router.Build()
}

func (r *ExperienceRouter) handleCreate(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := r.service.CreateSession(ctx.Context, ctx.GuildID); err != nil {
		return nil, err
	}

	return core.NewResult(core.NewResponse(render.SessionCreated)), nil
}

func (r *ExperienceRouter) handleAddParty(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	entry, err := r.service.AddPartyExp(ctx.Context, &experiencesvc.AddExpInput{
		GuildID:     ctx.GuildID,
		Amount:      ctx.GetIntParam("amount"),
		Achievement: strings.TrimSpace(ctx.GetStringParam("achievement")),
	})
	if err != nil {
		return nil, err
	}

	return core.NewResult(core.NewResponse(render.PartyExpAdded(entry))), nil
}

func (r *ExperienceRouter) handleAddPlayer(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	player := strings.TrimSpace(ctx.GetStringParam("character"))

	entry, err := r.service.AddPlayerExp(ctx.Context, &experiencesvc.AddExpInput{
		GuildID:     ctx.GuildID,
		PlayerName:  player,
		Amount:      ctx.GetIntParam("amount"),
		Achievement: strings.TrimSpace(ctx.GetStringParam("achievement")),
	})
	if err != nil {
		return nil, err
	}

	return core.NewResult(core.NewResponse(render.PlayerExpAdded(player, entry))), nil
}

// Users see one-based positions in the preview
func (r *ExperienceRouter) handleRemoveParty(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	entry, err := r.service.RemovePartyExp(ctx.Context, ctx.GuildID, ctx.GetIntParam("index")-1)
	if err != nil {
		return nil, err
	}

	return core.NewResult(core.NewResponse(render.PartyExpRemoved(entry))), nil
}

func (r *ExperienceRouter) handleRemovePlayer(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	player := strings.TrimSpace(ctx.GetStringParam("character"))

	entry, err := r.service.RemovePlayerExp(ctx.Context, ctx.GuildID, player, ctx.GetIntParam("index")-1)
	if err != nil {
		return nil, err
	}

	return core.NewResult(core.NewResponse(render.PlayerExpRemoved(player, entry))), nil
}

func (r *ExperienceRouter) handlePreview(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	session, err := r.service.GetActiveSession(ctx.Context, ctx.GuildID)
	if err != nil {
		return nil, err
	}

	return core.NewResult(core.NewEmbedResponse(render.PreviewEmbed(session))), nil
}

func (r *ExperienceRouter) handleFinalize(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	session, err := r.service.FinalizeSession(ctx.Context, ctx.GuildID, strings.TrimSpace(ctx.GetStringParam("session_name")))
	if err != nil {
		return nil, err
	}

	response := core.NewEmbedResponse(render.ReceiptEmbed(session, "Final experience summary for the session"))
	response.Content = render.SessionFinalized

	return core.NewResult(response), nil
}

// handleClearSession asks the caller to confirm before the open sheet is discarded
func (r *ExperienceRouter) handleClearSession(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	session, err := r.service.GetActiveSession(ctx.Context, ctx.GuildID)
	if err != nil {
		return nil, err
	}

	if session.IsEmpty() {
		return core.NewResult(core.NewEphemeralResponse(render.NothingToClear)), nil
	}

	pending, err := r.confirmations.Begin(&confirmation.BeginInput{
		Kind:      confirmation.KindClearExperience,
		ScopeID:   ctx.GuildID,
		ChannelID: ctx.ChannelID,
		UserID:    ctx.UserID,
	})
	if err != nil {
		return nil, err
	}

	buttons := builders.NewComponentBuilder(r.idBuilder).
		ConfirmationButtons("clear_confirm", "clear_cancel", pending.Token).
		Build()

	return core.NewResult(core.NewEphemeralResponse(render.ClearSessionAsk).WithComponents(buttons...)), nil
}

func (r *ExperienceRouter) handleClearConfirm(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	token := ctx.GetStringParam("component_target")

	pending, ok := r.confirmations.Get(token)
	if !ok {
		return closeConfirmation(render.ConfirmExpired), nil
	}
	if pending.UserID != ctx.UserID {
		return core.NewResult(core.NewEphemeralResponse("🚫 Only the person who asked can answer this.")), nil
	}

	if _, err := r.confirmations.Resolve(token, true); err != nil {
		return closeConfirmation(render.ConfirmExpired), nil
	}

	if _, err := r.service.ClearSession(ctx.Context, pending.ScopeID); err != nil {
		return nil, err
	}

	return closeConfirmation(render.SessionCleared), nil
}

func (r *ExperienceRouter) handleClearCancel(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if _, err := r.confirmations.Resolve(ctx.GetStringParam("component_target"), false); err != nil {
		return closeConfirmation(render.ConfirmExpired), nil
	}

	return closeConfirmation("❌ " + render.Cancelled), nil
}

func (r *ExperienceRouter) handleHistory(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if name := strings.TrimSpace(ctx.GetStringParam("session_name")); name != "" {
		session, err := r.service.GetSession(ctx.Context, ctx.GuildID, name)
		if err != nil {
			return nil, err
		}

		return core.NewResult(core.NewEmbedResponse(render.ReceiptEmbed(session, "Experience summary of a saved session"))), nil
	}

	return r.historyPage(ctx, 1, false)
}

func (r *ExperienceRouter) handleHistoryPage(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	page, err := strconv.Atoi(ctx.GetStringParam("component_target"))
	if err != nil {
		page = 1
	}

	return r.historyPage(ctx, page, true)
}

func (r *ExperienceRouter) historyPage(ctx *core.InteractionContext, page int, update bool) (*core.HandlerResult, error) {
	history, err := r.service.GetHistory(ctx.Context, ctx.GuildID)
	if err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return core.NewResult(core.NewEphemeralResponse(render.NoHistory)), nil
	}

	embed, page, pages := render.HistoryEmbed(history, page)
	response := core.NewEmbedResponse(embed)
	if pages > 1 {
		response.WithComponents(builders.NewComponentBuilder(r.idBuilder).
			PaginationButtons(page, pages, "history").
			Build()...)
	}
	if update {
		response.AsUpdate()
	}

	return core.NewResult(response), nil
}

// closeConfirmation replaces the prompt and removes its buttons
func closeConfirmation(content string) *core.HandlerResult {
	response := core.NewResponse(content).AsUpdate()
	response.Components = []discordgo.MessageComponent{}
	return core.NewResult(response)
}
