package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kpalanivelraj/nekipay/internal/validate"
	"github.com/kpalanivelraj/nekipay/pkg/response"
)

// VerifyPINRequest carries the caller-supplied PIN
type VerifyPINRequest struct {
	PIN string `json:"pin"`
}

// VerifyPINResponse reports a successful verification
type VerifyPINResponse struct {
	Message string `json:"message"`
}

// Handler handles HTTP requests for PIN verification
type Handler struct {
	verifier *Verifier
}

// NewHandler creates a new auth handler
func NewHandler(verifier *Verifier) *Handler {
	return &Handler{verifier: verifier}
}

// Routes returns the router for auth endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/verify-pin", h.VerifyPIN)

	return r
}

// VerifyPIN handles POST /auth/verify-pin
// @Summary      Verify the shared PIN
// @Description  Check a caller-supplied PIN against the configured secret
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body VerifyPINRequest true "PIN verification request"
// @Success      200 {object} response.APIResponse{data=VerifyPINResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /auth/verify-pin [post]
func (h *Handler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	var req VerifyPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.verifier.Verify(req.PIN); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			response.ValidationFailed(w, verr.Violations)
			return
		}
		response.Unauthorized(w, ErrInvalidPIN.Error())
		return
	}

	response.JSON(w, http.StatusOK, &VerifyPINResponse{Message: "PIN verified successfully"})
}
