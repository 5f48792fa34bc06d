// Package v1 exposes the reward resolution engine over HTTP/JSON.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/KirkDiggler/fishing-api/internal/errors"
	"github.com/KirkDiggler/fishing-api/internal/orchestrators/fishing"
)

// HandlerConfig holds the dependencies for the v1 handler
type HandlerConfig struct {
	Service fishing.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}

	return vb.Build()
}

// Handler serves the fishing API
type Handler struct {
	service fishing.Service
}

// NewHandler creates a new v1 handler with the provided dependencies
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{service: cfg.Service}, nil
}

// RegisterRoutes mounts the v1 routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", h.GetPlayer)
		r.Post("/catch", h.Catch)
		r.Get("/luck", h.Luck)
		r.Get("/quests/claimable", h.ClaimableQuests)
		r.Post("/quests/{questID}/claim", h.ClaimQuest)
		r.Post("/travel", h.Travel)
		r.Put("/location", h.SetLocation)
		r.Post("/sell", h.Sell)
		r.Post("/rods", h.BuyRod)
		r.Post("/baits", h.BuyBait)
		r.Put("/rod", h.EquipRod)
		r.Put("/bait", h.EquipBait)
		r.Post("/enchant", h.Enchant)
	})
}

// RegisterAdminRoutes mounts the operator routes. These live outside the
// versioned API surface.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Put("/admin/event", h.SetEvent)
}

// Catch resolves one catch action.
func (h *Handler) Catch(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := h.service.ResolveCatch(r.Context(), &fishing.ResolveCatchInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	resp := &CatchResponse{
		Status:    string(out.Outcome.Status),
		Rarity:    out.Outcome.Rarity.String(),
		Magnitude: out.Outcome.Magnitude,
		Reward:    out.Outcome.Reward,
		Balance:   out.Balance,
	}
	if out.Outcome.Item != nil {
		resp.Item = out.Outcome.Item.Name
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// GetPlayer returns the player profile, creating the record on first
// reference.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := h.service.GetOrCreatePlayer(r.Context(), &fishing.GetOrCreatePlayerInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	luck, err := h.service.EffectiveLuck(r.Context(), &fishing.EffectiveLuckInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	claimable, err := h.service.ClaimableQuestCount(r.Context(), &fishing.ClaimableQuestCountInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toPlayerResponse(out.Record, luck.Luck, claimable.Count))
}

// Luck returns the player's effective luck modifier.
func (h *Handler) Luck(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := h.service.EffectiveLuck(r.Context(), &fishing.EffectiveLuckInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &LuckResponse{Luck: out.Luck})
}

// ClaimableQuests returns the count of quests ready to claim.
func (h *Handler) ClaimableQuests(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := h.service.ClaimableQuestCount(r.Context(), &fishing.ClaimableQuestCountInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &ClaimableResponse{Count: out.Count})
}

// ClaimQuest claims a completed quest.
func (h *Handler) ClaimQuest(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	questID := chi.URLParam(r, "questID")

	out, err := h.service.ClaimQuest(r.Context(), &fishing.ClaimQuestInput{
		PlayerID: playerID,
		QuestID:  questID,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &ClaimResponse{
		RewardRod:   out.RewardRod,
		RewardCoins: out.RewardCoins,
		Balance:     out.Balance,
	})
}

// Travel unlocks the next location.
func (h *Handler) Travel(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.Travel(r.Context(), &fishing.TravelInput{
		PlayerID: playerID,
		Location: req.Location,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &TravelResponse{
		Location: out.Location.Name,
		Price:    out.Location.Price,
		Balance:  out.Balance,
	})
}

// SetLocation moves the player to an unlocked location.
func (h *Handler) SetLocation(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.SetLocation(r.Context(), &fishing.SetLocationInput{
		PlayerID: playerID,
		Location: req.Location,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &LocationResponse{Location: out.Location})
}

// Sell sells items out of the player's inventory.
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req SellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.RecordSale(r.Context(), &fishing.RecordSaleInput{
		PlayerID: playerID,
		ItemName: req.Item,
		Count:    req.Count,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &SellResponse{
		Earned:    out.Earned,
		Balance:   out.Balance,
		Remaining: out.Remaining,
	})
}

// BuyRod purchases a rod.
func (h *Handler) BuyRod(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req GearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.BuyRod(r.Context(), &fishing.BuyRodInput{
		PlayerID: playerID,
		RodName:  req.Name,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &GearResponse{Name: out.Rod.Name, Balance: out.Balance})
}

// BuyBait purchases a bait.
func (h *Handler) BuyBait(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req GearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.BuyBait(r.Context(), &fishing.BuyBaitInput{
		PlayerID: playerID,
		BaitName: req.Name,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &GearResponse{Name: out.Bait.Name, Balance: out.Balance})
}

// EquipRod equips an owned rod.
func (h *Handler) EquipRod(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req GearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.EquipRod(r.Context(), &fishing.EquipRodInput{
		PlayerID: playerID,
		RodName:  req.Name,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &GearResponse{Name: out.RodName})
}

// EquipBait equips an owned bait.
func (h *Handler) EquipBait(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var req GearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.EquipBait(r.Context(), &fishing.EquipBaitInput{
		PlayerID: playerID,
		BaitName: req.Name,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &GearResponse{Name: out.BaitName})
}

// Enchant raises the enchantment level of the equipped rod.
func (h *Handler) Enchant(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	out, err := h.service.EnchantRod(r.Context(), &fishing.EnchantRodInput{PlayerID: playerID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &EnchantResponse{
		Rod:     out.RodName,
		Level:   out.Level,
		Cost:    out.Cost,
		Balance: out.Balance,
	})
}

// SetEvent updates the global luck event.
func (h *Handler) SetEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.SetGlobalEvent(r.Context(), &fishing.SetGlobalEventInput{
		Multiplier: req.Multiplier,
		Active:     req.Active,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &EventResponse{Multiplier: out.Multiplier, Active: out.Active})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	resp := &ErrorResponse{
		Error: errors.GetMessage(err),
		Code:  code.String(),
		Meta:  errors.GetMeta(err),
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", r.URL.Path, "error", err)
		// Internal details stay out of the response body.
		resp.Error = "internal server error"
		resp.Meta = nil
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
