package handler

import (
	"log/slog"
	"net/http"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/domain/credit"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreditHandler struct {
	service credit.CreditService
	logger  *slog.Logger
}

func NewCreditHandler(s credit.CreditService, l *slog.Logger) *CreditHandler {
	if s == nil {
		panic("credit service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CreditHandler{
		service: s,
		logger:  l.With("component", "CreditHandler"),
	}
}

// IssueCredit handles POST /api/credits
// @Summary Issue a credit
// @Description Issues a credit to an existing customer. The first installment must fall within three months.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreditDto true "Credit request"
// @Success 201 {object} dto.CreditView "Credit issued"
// @Failure 400 {object} dto.ExceptionDetails "Invalid request payload"
// @Failure 404 {object} dto.ExceptionDetails "Customer not found"
// @Failure 409 {object} dto.ExceptionDetails "Malformed body or first installment date outside the allowed window"
// @Failure 500 {object} dto.ExceptionDetails "Internal server error"
// @Router /api/credits [post]
// @Security BearerAuth
func (h *CreditHandler) IssueCredit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditDto
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, invalidBody(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	issued, err := h.service.Issue(r.Context(), req.ToIssueParams())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to issue credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Credit issued successfully", slog.String("creditCode", issued.CreditCode.String()))
	respondJSON(w, http.StatusCreated, dto.NewCreditView(issued))
}

// GetCredit handles GET /api/credits/{creditCode}
// @Summary Retrieve a credit
// @Description Retrieves a credit by its code. When customerId is given, the credit must belong to that customer.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code" Format(uuid)
// @Param customerId query int false "Owning customer ID"
// @Success 200 {object} dto.CreditView "Credit retrieved"
// @Failure 400 {object} dto.ExceptionDetails "Invalid credit code or customer ID"
// @Failure 404 {object} dto.ExceptionDetails "Credit not found"
// @Failure 409 {object} dto.ExceptionDetails "Credit belongs to another customer"
// @Router /api/credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	code, err := uuid.Parse(chi.URLParam(r, "creditCode"))
	if err != nil {
		respondError(w, apperrors.NewValidationError("creditCode", "Invalid UUID format"))
		return
	}

	var owner *int64
	if raw := r.URL.Query().Get("customerId"); raw != "" {
		id, err := parseID(raw, "customerId")
		if err != nil {
			respondError(w, err)
			return
		}
		owner = &id
	}

	found, err := h.service.FindByCreditCode(r.Context(), code, owner)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to get credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditView(found))
}

// ListCredits handles GET /api/credits?customerId=
// @Summary List a customer's credits
// @Description Lists every credit of a customer in issue order. An unknown customer yields an empty list.
// @Tags Credits
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.CreditSummaryView "Credits of the customer"
// @Failure 400 {object} dto.ExceptionDetails "Missing or invalid customer ID"
// @Router /api/credits [get]
// @Security BearerAuth
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseID(r.URL.Query().Get("customerId"), "customerId")
	if err != nil {
		respondError(w, err)
		return
	}

	credits, err := h.service.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditSummaryViews(credits))
}
