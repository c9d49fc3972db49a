package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	insertCreditQuery = `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at`

	selectCreditByCodeQuery = `
        SELECT cr.id, cr.credit_code, cr.credit_value, cr.day_first_installment, cr.number_of_installments, cr.status, cr.customer_id, cr.created_at,
               c.first_name, c.last_name, c.email, c.income
        FROM credits cr
        JOIN customers c ON c.id = cr.customer_id
        WHERE cr.credit_code = $1`

	selectCreditsByCustomerQuery = `
        SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at
        FROM credits
        WHERE customer_id = $1
        ORDER BY id`
)

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.Repository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	if db == nil {
		panic("DBPool cannot be nil for CreditRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &CreditRepository{db: db, logger: logger.With("component", "CreditRepository")}
}

func (r *CreditRepository) Save(ctx context.Context, c *credit.Credit) error {
	if c == nil {
		return fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	logCtx := r.logger.With(slog.String("creditCode", c.CreditCode.String()), slog.Int64("customerID", c.CustomerID))
	status := "success"
	startTime := time.Now()

	err := r.db.QueryRow(ctx, insertCreditQuery,
		c.CreditCode,
		c.CreditValue,
		c.DayFirstInstallment,
		c.NumberOfInstallments,
		string(c.Status),
		c.CustomerID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("InsertCredit", status, time.Since(startTime))

	if err != nil {
		translatedErr := translateDBError(err, logCtx)
		switch {
		case errors.Is(translatedErr, apperrors.ErrAlreadyExists), errors.Is(translatedErr, apperrors.ErrValidation):
			return translatedErr
		case errors.Is(translatedErr, apperrors.ErrNotFound):
			return apperrors.NewNotFoundError("customer", c.CustomerID)
		}
		logCtx.ErrorContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return apperrors.WrapDatabaseError(err, "failed to insert credit")
	}

	logCtx.InfoContext(ctx, "Credit inserted successfully")
	return nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, code uuid.UUID) (*credit.Credit, error) {
	status := "success"
	startTime := time.Now()

	var (
		c          credit.Credit
		cust       customer.Customer
		statusText string
	)
	err := r.db.QueryRow(ctx, selectCreditByCodeQuery, code).Scan(
		&c.ID, &c.CreditCode, &c.CreditValue, &c.DayFirstInstallment,
		&c.NumberOfInstallments, &statusText, &c.CustomerID, &c.CreatedAt,
		&cust.FirstName, &cust.LastName, &cust.Email, &cust.Income,
	)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("FindCreditByCode", status, time.Since(startTime))

	if err != nil {
		if errors.Is(translateDBError(err, r.logger), apperrors.ErrNotFound) {
			r.logger.WarnContext(ctx, "Credit not found", slog.String("creditCode", code.String()))
			return nil, apperrors.NewNotFoundError("credit", code)
		}
		r.logger.ErrorContext(ctx, "Failed to find credit", slog.String("creditCode", code.String()), slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to find credit")
	}

	c.Status = credit.Status(statusText)
	cust.ID = c.CustomerID
	c.Customer = &cust
	return &c, nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	logCtx := r.logger.With(slog.Int64("customerID", customerID))
	status := "success"
	startTime := time.Now()
	defer func() {
		monitoring.RecordDBQuery("FindCreditsByCustomer", status, time.Since(startTime))
	}()

	rows, err := r.db.Query(ctx, selectCreditsByCustomerQuery, customerID)
	if err != nil {
		status = "error"
		logCtx.ErrorContext(ctx, "Failed to query credits", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to query credits")
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		var (
			c          credit.Credit
			statusText string
		)
		if err := rows.Scan(
			&c.ID, &c.CreditCode, &c.CreditValue, &c.DayFirstInstallment,
			&c.NumberOfInstallments, &statusText, &c.CustomerID, &c.CreatedAt,
		); err != nil {
			status = "error"
			logCtx.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, apperrors.WrapDatabaseError(err, "failed to scan credit row")
		}
		c.Status = credit.Status(statusText)
		credits = append(credits, &c)
	}

	if err := rows.Err(); err != nil {
		status = "error"
		logCtx.ErrorContext(ctx, "Error iterating credit rows", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to iterate credit rows")
	}

	logCtx.DebugContext(ctx, "Listed credits", slog.Int("count", len(credits)))
	return credits, nil
}
