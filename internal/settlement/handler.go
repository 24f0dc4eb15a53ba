package settlement

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kpalanivelraj/nekipay/internal/auth"
	"github.com/kpalanivelraj/nekipay/internal/balance"
	"github.com/kpalanivelraj/nekipay/internal/person"
	"github.com/kpalanivelraj/nekipay/internal/validate"
	"github.com/kpalanivelraj/nekipay/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
	pins    *auth.Verifier
}

// NewHandler creates a new settlement handler. The PIN verifier gates
// the confirm endpoint.
func NewHandler(service *Service, pins *auth.Verifier) *Handler {
	return &Handler{service: service, pins: pins}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Post("/validate", h.Validate)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/confirm", h.Confirm)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /settlements
// @Summary      Create a settlement
// @Description  Record a pending settlement from the debtor to the receiver
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body CreateSettlementRequest true "Settlement creation request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	settlement, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			response.ValidationFailed(w, verr.Violations)
			return
		}
		response.InternalError(w, "Failed to create settlement")
		return
	}

	response.JSON(w, http.StatusCreated, settlement.ToResponse())
}

// List handles GET /settlements
// @Summary      List settlements
// @Description  List settlements, optionally filtered by status
// @Tags         settlements
// @Produce      json
// @Param        status query string false "Filter by status" Enums(pending, confirmed)
// @Param        order query string false "Sort order by creation time" Enums(asc, desc) default(desc)
// @Param        limit query int false "Maximum number of records"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := ListOptions{Order: r.URL.Query().Get("order")}

	switch status := r.URL.Query().Get("status"); Status(status) {
	case "", StatusPending, StatusConfirmed:
		opts.Status = Status(status)
	default:
		response.BadRequest(w, "Invalid status filter")
		return
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		opts.Limit = limit
	}

	settlements, err := h.service.List(r.Context(), opts)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	responses := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		responses[i] = s.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, responses, &response.Meta{
		Count: len(responses),
		Limit: opts.Limit,
	})
}

// Stats handles GET /settlements/stats
// @Summary      Settlement statistics
// @Description  Settled totals per direction plus confirmed/pending counts
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Stats}
// @Router       /settlements/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to calculate settlement statistics")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

// Validate handles POST /settlements/validate
// @Summary      Validate a proposed settlement
// @Description  Check a proposed settlement against the current balance without recording it
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body ValidateSettlementRequest true "Proposed settlement"
// @Success      200 {object} response.APIResponse{data=balance.ValidationCheck}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements/validate [post]
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	check, err := h.service.ValidateProposed(r.Context(), &req)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			response.ValidationFailed(w, verr.Violations)
			return
		}
		response.InternalError(w, "Failed to validate settlement")
		return
	}

	response.JSON(w, http.StatusOK, check)
}

// GetByID handles GET /settlements/{id}
// @Summary      Get settlement by ID
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	settlement, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrSettlementNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get settlement")
		return
	}

	response.JSON(w, http.StatusOK, settlement.ToResponse())
}

// Confirm handles POST /settlements/{id}/confirm
// @Summary      Confirm a settlement
// @Description  Record one party's PIN-gated confirmation; the settlement becomes confirmed once both parties have acted
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Param        request body ConfirmSettlementRequest true "Confirmation request"
// @Success      200 {object} response.APIResponse{data=ConfirmSettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/{id}/confirm [post]
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.pins.Verify(req.PIN); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			response.ValidationFailed(w, verr.Violations)
			return
		}
		response.Unauthorized(w, auth.ErrInvalidPIN.Error())
		return
	}

	confirmedBy, err := person.Parse(req.ConfirmedBy)
	if err != nil {
		response.BadRequest(w, "Invalid person confirming settlement")
		return
	}
	if !PaymentMethod(req.PaymentMethod).Valid() {
		response.BadRequest(w, "Invalid payment method")
		return
	}

	settlement, err := h.service.Confirm(r.Context(), chi.URLParam(r, "id"), confirmedBy, PaymentMethod(req.PaymentMethod))
	if err != nil {
		switch {
		case errors.Is(err, ErrSettlementNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrAlreadyConfirmed), errors.Is(err, ErrAlreadyConfirmedByParty):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrInvalidConfirmer):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to confirm settlement")
		}
		return
	}

	fullyConfirmed := settlement.Status == StatusConfirmed
	message := fmt.Sprintf("Settlement confirmed by %s. Waiting for other party.", confirmedBy)
	if fullyConfirmed {
		message = "Settlement fully confirmed by both parties!"
	}

	response.JSON(w, http.StatusOK, &ConfirmSettlementResponse{
		Message:          message,
		Settlement:       settlement.ToResponse(),
		IsFullyConfirmed: fullyConfirmed,
	})
}

// Delete handles DELETE /settlements/{id}
// @Summary      Delete a settlement
// @Description  Permanently remove a pending settlement; confirmed settlements cannot be deleted
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=DeleteSettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrSettlementNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrCannotDeleteConfirmed):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to delete settlement")
		}
		return
	}

	response.JSON(w, http.StatusOK, &DeleteSettlementResponse{
		Message:           "Settlement deleted successfully",
		DeletedSettlement: deleted.ToResponse(),
	})
}

// Balance handles GET /balance
// @Summary      Current balance
// @Description  Balance snapshot computed from all expenses and confirmed settlements, with summaries and a settlement recommendation
// @Tags         balance
// @Produce      json
// @Success      200 {object} response.APIResponse{data=BalanceResponse}
// @Router       /balance [get]
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Balance(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to calculate balance")
		return
	}

	response.JSON(w, http.StatusOK, &BalanceResponse{
		Balance:        b,
		Summary:        balance.Summarize(b),
		Individual:     balance.Individual(b),
		Recommendation: balance.Recommend(b),
	})
}
