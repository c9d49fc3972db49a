package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"credit-application/internal/event"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

const (
	inputValidationPassed = "Input validation passed"
	customerNotFound      = "Customer not found by repository"
	fieldRequired         = "This field is required"
)

type RegisterParams struct {
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Password  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

// UpdateParams holds the only fields a customer may change after
// registration.
type UpdateParams struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

type CustomerService interface {
	Register(ctx context.Context, params RegisterParams) (*Customer, error)
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*Customer, error)
	Update(ctx context.Context, customerID int64, params UpdateParams) (*Customer, error)
	Delete(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("No event publisher provided to NewCustomerService, events will be dropped")
		eventPublisher = event.NoopPublisher{}
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID: cust.ID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Email:      cust.Email,
		Income:     cust.Income.StringFixed(2),
		ZipCode:    cust.Address.ZipCode,
		Street:     cust.Address.Street,
		CreatedAt:  cust.CreatedAt,
		UpdatedAt:  cust.UpdatedAt,
	}
}

func validateProfile(firstName, lastName string, income decimal.Decimal, zipCode, street string) []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation
	required := []struct {
		field string
		value string
	}{
		{"firstName", firstName},
		{"lastName", lastName},
		{"zipCode", zipCode},
		{"street", street},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			violations = append(violations, apperrors.FieldViolation{Field: r.field, Message: fieldRequired})
		}
	}
	if income.IsNegative() {
		violations = append(violations, apperrors.FieldViolation{Field: "income", Message: "must be greater than or equal to 0"})
	}
	return violations
}

func (s *customerService) Register(ctx context.Context, params RegisterParams) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to register new customer")

	violations := validateProfile(params.FirstName, params.LastName, params.Income, params.ZipCode, params.Street)
	if !IsValidCPF(params.CPF) {
		violations = append(violations, apperrors.FieldViolation{Field: "cpf", Message: "Invalid CPF"})
	}
	if strings.TrimSpace(params.Email) == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "email", Message: fieldRequired})
	}
	if params.Password == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "password", Message: fieldRequired})
	} else if len(params.Password) > MaxPasswordBytes {
		violations = append(violations, apperrors.FieldViolation{Field: "password", Message: passwordTooLong})
	}
	if err := apperrors.NewValidationErrors(violations); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return nil, err
	}
	s.logger.InfoContext(ctx, inputValidationPassed)

	hash, err := HashPassword(params.Password)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			s.logger.WarnContext(ctx, "Password rejected by hasher", slog.Any("error", err))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Failed to hash customer password", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternalServer, err)
	}

	customer := NewCustomer(
		params.FirstName,
		params.LastName,
		params.CPF,
		params.Email,
		hash,
		params.Income,
		Address{ZipCode: params.ZipCode, Street: params.Street},
	)

	s.logger.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			s.logger.WarnContext(ctx, "Customer already registered", slog.Any("error", err))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	log := s.logger.With(slog.Int64("customerID", customer.ID))
	monitoring.RecordCustomerRegistered()

	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(customer),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		log.ErrorContext(ctx, "Customer registered, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	log.InfoContext(ctx, "Successfully registered new customer")
	return customer, nil
}

func (s *customerService) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.InfoContext(ctx, "Attempting to get customer by ID")

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WarnContext(ctx, customerNotFound)
			return nil, err
		}
		log.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	return customer, nil
}

func (s *customerService) FindByCPF(ctx context.Context, cpf string) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer by CPF")

	if !IsValidCPF(cpf) {
		s.logger.WarnContext(ctx, "Validation failed: invalid CPF lookup")
		return nil, apperrors.NewValidationError("cpf", "Invalid CPF")
	}

	customer, err := s.repo.FindByCPF(ctx, NormalizeCPF(cpf))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound)
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer by CPF", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer by cpf: %w", err)
	}

	return customer, nil
}

func (s *customerService) Update(ctx context.Context, customerID int64, params UpdateParams) (*Customer, error) {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.InfoContext(ctx, "Attempting to update customer")

	if err := apperrors.NewValidationErrors(validateProfile(params.FirstName, params.LastName, params.Income, params.ZipCode, params.Street)); err != nil {
		log.WarnContext(ctx, "Validation failed for customer update", slog.Any("error", err))
		return nil, err
	}

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WarnContext(ctx, "Customer not found by repository for update")
			return nil, err
		}
		log.ErrorContext(ctx, "Repository error finding customer for update", slog.Any("error", err))
		return nil, fmt.Errorf("cannot find customer %d to update: %w", customerID, err)
	}

	customer.ApplyUpdate(params)

	if err := s.repo.Save(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.ErrorContext(ctx, "Customer disappeared before save completed")
			return nil, err
		}
		log.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save customer %d: %w", customerID, err)
	}

	updatedEvent := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(customer),
	}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updatedEvent); pubErr != nil {
		log.ErrorContext(ctx, "Customer updated, but FAILED to publish update event", slog.Any("error", pubErr))
	}

	log.InfoContext(ctx, "Successfully updated customer")
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.InfoContext(ctx, "Attempting to delete customer")

	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WarnContext(ctx, customerNotFound)
			return err
		}
		log.ErrorContext(ctx, "Repository error deleting customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	deletedEvent := event.CustomerDeletedEvent{Timestamp: time.Now(), CustomerID: customerID}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deletedEvent); pubErr != nil {
		log.ErrorContext(ctx, "Customer deleted, but FAILED to publish deletion event", slog.Any("error", pubErr))
	}

	log.InfoContext(ctx, "Successfully deleted customer")
	return nil
}
