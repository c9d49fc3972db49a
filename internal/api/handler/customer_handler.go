package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/domain/customer"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// logLevelFor keeps expected client errors out of the error log.
func logLevelFor(err error) slog.Level {
	if apperrors.KindOf(err) == apperrors.KindInternal {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// RegisterCustomer handles POST /api/customers
// @Summary Register a new customer
// @Description Registers a customer with address and income. CPF and email must be unique.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerDto true "Customer registration request"
// @Success 201 {object} dto.CustomerView "Customer successfully registered"
// @Failure 400 {object} dto.ExceptionDetails "Invalid request payload"
// @Failure 409 {object} dto.ExceptionDetails "Malformed body, or CPF or email already registered"
// @Failure 500 {object} dto.ExceptionDetails "Internal server error"
// @Router /api/customers [post]
// @Security BearerAuth
func (h *CustomerHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerDto
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, invalidBody(err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	created, err := h.service.Register(r.Context(), req.ToRegisterParams())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to register customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer registered successfully", slog.Int64("customerID", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewCustomerView(created))
}

// GetCustomer handles GET /api/customers/{id}
// @Summary Retrieve customer details
// @Description Retrieves a customer by id.
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CustomerView "Customer details retrieved"
// @Failure 400 {object} dto.ExceptionDetails "Invalid customer ID"
// @Failure 404 {object} dto.ExceptionDetails "Customer not found"
// @Failure 500 {object} dto.ExceptionDetails "Internal server error"
// @Router /api/customers/{id} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseID(chi.URLParam(r, "id"), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	found, err := h.service.FindByID(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerView(found))
}

// FindCustomerByCPF handles GET /api/customers?cpf=
// @Summary Find a customer by CPF
// @Description Looks a customer up by CPF, formatted or digits only.
// @Tags Customers
// @Produce json
// @Param cpf query string true "Customer CPF"
// @Success 200 {object} dto.CustomerView "Customer details retrieved"
// @Failure 400 {object} dto.ExceptionDetails "Missing or invalid CPF"
// @Failure 404 {object} dto.ExceptionDetails "Customer not found"
// @Router /api/customers [get]
// @Security BearerAuth
func (h *CustomerHandler) FindCustomerByCPF(w http.ResponseWriter, r *http.Request) {
	cpf := r.URL.Query().Get("cpf")
	if cpf == "" {
		respondError(w, apperrors.NewValidationError("cpf", "This field is required"))
		return
	}

	found, err := h.service.FindByCPF(r.Context(), cpf)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to find customer by CPF", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerView(found))
}

// UpdateCustomer handles PATCH /api/customers?customerId=
// @Summary Update a customer
// @Description Changes first name, last name, income and address. CPF, email and password cannot be changed.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Param request body dto.CustomerUpdateDto true "Customer update request"
// @Success 200 {object} dto.CustomerView "Customer updated"
// @Failure 400 {object} dto.ExceptionDetails "Invalid request payload"
// @Failure 404 {object} dto.ExceptionDetails "Customer not found"
// @Failure 409 {object} dto.ExceptionDetails "Malformed body or immutable field supplied"
// @Failure 500 {object} dto.ExceptionDetails "Internal server error"
// @Router /api/customers [patch]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseID(r.URL.Query().Get("customerId"), "customerId")
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.CustomerUpdateDto
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, invalidBody(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), customerID, req.ToUpdateParams())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to update customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusOK, dto.NewCustomerView(updated))
}

// DeleteCustomer handles DELETE /api/customers/{id}
// @Summary Delete a customer
// @Description Deletes a customer together with all of their credits.
// @Tags Customers
// @Param id path int true "Customer ID" Minimum(1)
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ExceptionDetails "Invalid customer ID"
// @Failure 404 {object} dto.ExceptionDetails "Customer not found"
// @Router /api/customers/{id} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseID(chi.URLParam(r, "id"), "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			h.logger.ErrorContext(r.Context(), "Service failed to delete customer", slog.Any("error", err))
		}
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}
