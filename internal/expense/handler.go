package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kpalanivelraj/nekipay/internal/person"
	"github.com/kpalanivelraj/nekipay/internal/validate"
	"github.com/kpalanivelraj/nekipay/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/recent", h.Recent)
	r.Get("/search", h.Search)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /expenses
// @Summary      Record a new expense
// @Description  Record an expense paid by one of the two parties
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	expense, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			response.ValidationFailed(w, verr.Violations)
			return
		}
		response.InternalError(w, "Failed to create expense")
		return
	}

	response.JSON(w, http.StatusCreated, expense.ToResponse())
}

// List handles GET /expenses
// @Summary      List expenses
// @Description  List expenses, optionally filtered by payer, ordered by creation time
// @Tags         expenses
// @Produce      json
// @Param        paid_by query string false "Filter by payer (Kiruthika or Neha)"
// @Param        order query string false "Sort order by creation time" Enums(asc, desc) default(desc)
// @Param        limit query int false "Maximum number of records"
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := ListOptions{Order: r.URL.Query().Get("order")}

	if raw := r.URL.Query().Get("paid_by"); raw != "" {
		p, err := person.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid paid_by filter")
			return
		}
		opts.PaidBy = p
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		opts.Limit = limit
	}

	expenses, err := h.service.List(r.Context(), opts)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, toResponses(expenses), &response.Meta{
		Count: len(expenses),
		Limit: opts.Limit,
	})
}

// Stats handles GET /expenses/stats
// @Summary      Expense statistics
// @Description  Totals per person, expense count and average amount
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Stats}
// @Router       /expenses/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to calculate expense statistics")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

// Recent handles GET /expenses/recent
// @Summary      Recent expenses
// @Description  The most recently recorded expenses
// @Tags         expenses
// @Produce      json
// @Param        count query int false "Number of expenses" default(5)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses/recent [get]
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	expenses, err := h.service.Recent(r.Context(), count)
	if err != nil {
		response.InternalError(w, "Failed to list recent expenses")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(expenses))
}

// Search handles GET /expenses/search
// @Summary      Search expenses
// @Description  Case-insensitive keyword search over expense reasons
// @Tags         expenses
// @Produce      json
// @Param        q query string true "Search keyword"
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		response.BadRequest(w, "Search keyword is required")
		return
	}

	expenses, err := h.service.Search(r.Context(), keyword)
	if err != nil {
		response.InternalError(w, "Failed to search expenses")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(expenses))
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	expense, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Description  Permanently remove an expense and return the deleted record
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=DeleteExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, &DeleteExpenseResponse{
		Message:        "Expense deleted successfully",
		DeletedExpense: deleted.ToResponse(),
	})
}

func toResponses(expenses []*Expense) []*ExpenseResponse {
	responses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = e.ToResponse()
	}
	return responses
}
