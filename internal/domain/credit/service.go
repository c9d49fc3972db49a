package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-application/internal/domain/customer"
	"credit-application/internal/event"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMaxFirstInstallmentMonths = 3

	ruleFirstInstallmentWindow = "first_installment_window"
	ruleCreditOwnership        = "credit_ownership"
)

type IssueParams struct {
	CustomerID           int64
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
}

type CreditService interface {
	Issue(ctx context.Context, params IssueParams) (*Credit, error)

	// FindByCreditCode checks ownership when customerID is non-nil.
	FindByCreditCode(ctx context.Context, code uuid.UUID, customerID *int64) (*Credit, error)

	FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo            Repository
	customerService customer.CustomerService
	pub             event.EventPublisher
	cache           Cache
	maxMonths       int
	now             func() time.Time
	logger          *slog.Logger
}

type Option func(*creditService)

func WithCache(cache Cache) Option {
	return func(s *creditService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

func WithPublisher(pub event.EventPublisher) Option {
	return func(s *creditService) {
		if pub != nil {
			s.pub = pub
		}
	}
}

func WithMaxFirstInstallmentMonths(months int) Option {
	return func(s *creditService) {
		if months > 0 {
			s.maxMonths = months
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *creditService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewCreditService(repo Repository, cs customer.CustomerService, logger *slog.Logger, opts ...Option) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if cs == nil {
		panic("customer service cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	s := &creditService{
		repo:            repo,
		customerService: cs,
		pub:             event.NoopPublisher{},
		cache:           noopCache{},
		maxMonths:       DefaultMaxFirstInstallmentMonths,
		now:             time.Now,
		logger:          logger.With(slog.String("component", "creditService")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *creditService) Issue(ctx context.Context, params IssueParams) (*Credit, error) {
	log := s.logger.With(slog.Int64("customerID", params.CustomerID))
	log.InfoContext(ctx, "Attempting to issue new credit")

	var violations []apperrors.FieldViolation
	if !params.CreditValue.IsPositive() {
		violations = append(violations, apperrors.FieldViolation{Field: "creditValue", Message: "must be greater than 0"})
	}
	if params.NumberOfInstallments <= 0 {
		violations = append(violations, apperrors.FieldViolation{Field: "numberOfInstallments", Message: "must be greater than 0"})
	}
	if params.DayFirstInstallment.IsZero() {
		violations = append(violations, apperrors.FieldViolation{Field: "dayFirstInstallment", Message: "This field is required"})
	}
	if err := apperrors.NewValidationErrors(violations); err != nil {
		log.WarnContext(ctx, "Validation failed for new credit", slog.Any("error", err))
		return nil, err
	}

	latest := LatestFirstInstallment(s.now(), s.maxMonths)
	if truncateToDay(params.DayFirstInstallment).After(latest) {
		log.WarnContext(ctx, "Business rule failed: first installment too far in the future",
			slog.Time("dayFirstInstallment", params.DayFirstInstallment), slog.Time("latest", latest))
		return nil, apperrors.NewBusinessRuleError(ruleFirstInstallmentWindow, "Invalid Date")
	}

	cust, err := s.customerService.FindByID(ctx, params.CustomerID)
	if err != nil {
		log.WarnContext(ctx, "Failed to resolve credit owner", slog.Any("error", err))
		return nil, err
	}

	credit := NewCredit(cust.ID, params.CreditValue, params.DayFirstInstallment, params.NumberOfInstallments)
	credit.Customer = cust

	if err := s.repo.Save(ctx, credit); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrAlreadyExists) || errors.Is(err, apperrors.ErrValidation) {
			log.WarnContext(ctx, "Repository rejected new credit", slog.Any("error", err))
			return nil, err
		}
		log.ErrorContext(ctx, "Repository failed to save new credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new credit: %w", err)
	}

	monitoring.RecordCreditIssued()
	issued := event.CreditIssuedEvent{
		Timestamp:            time.Now(),
		CreditCode:           credit.CreditCode.String(),
		CustomerID:           credit.CustomerID,
		CreditValue:          credit.CreditValue.StringFixed(2),
		DayFirstInstallment:  credit.DayFirstInstallment.Format(time.DateOnly),
		NumberOfInstallments: credit.NumberOfInstallments,
		Status:               string(credit.Status),
	}
	if pubErr := s.pub.PublishCreditIssued(ctx, issued); pubErr != nil {
		log.ErrorContext(ctx, "Credit issued, but FAILED to publish event", slog.Any("error", pubErr))
	}

	log.InfoContext(ctx, "Successfully issued credit", slog.String("creditCode", credit.CreditCode.String()))
	return credit, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, code uuid.UUID, customerID *int64) (*Credit, error) {
	log := s.logger.With(slog.String("creditCode", code.String()))

	credit, ok := s.cache.Get(ctx, code)
	if !ok {
		var err error
		credit, err = s.repo.FindByCreditCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				log.WarnContext(ctx, "Credit not found by repository")
				return nil, err
			}
			log.ErrorContext(ctx, "Repository error finding credit", slog.Any("error", err))
			return nil, fmt.Errorf("failed to get credit %s: %w", code, err)
		}
		s.cache.Set(ctx, credit)
	}

	if customerID != nil && credit.CustomerID != *customerID {
		log.WarnContext(ctx, "Credit requested by a customer that does not own it", slog.Int64("customerID", *customerID))
		return nil, apperrors.NewBusinessRuleError(ruleCreditOwnership, "Contact admin")
	}

	if ok {
		owner, err := s.customerService.FindByID(ctx, credit.CustomerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				log.WarnContext(ctx, "Cached credit owner no longer exists")
				return nil, apperrors.NewNotFoundError("credit", code)
			}
			log.ErrorContext(ctx, "Failed to load owner of cached credit", slog.Any("error", err))
			return nil, err
		}
		credit.Customer = owner
	}

	return credit, nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing credits", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}
	if credits == nil {
		credits = []*Credit{}
	}
	return credits, nil
}
