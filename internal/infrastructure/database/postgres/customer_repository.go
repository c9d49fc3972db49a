package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-application/internal/domain/customer"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"
)

const (
	insertCustomerQuery = `
        INSERT INTO customers (first_name, last_name, cpf, email, password, income, zip_code, street, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	updateCustomerQuery = `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            income = $3,
            zip_code = $4,
            street = $5,
            updated_at = NOW()
        WHERE id = $6
        RETURNING updated_at`

	selectCustomerColumns = `
        SELECT id, first_name, last_name, cpf, email, password, income, zip_code, street, created_at, updated_at
        FROM customers`

	deleteCustomerQuery = `DELETE FROM customers WHERE id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.ID == 0 {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer")
	status := "success"
	startTime := time.Now()

	err := r.db.QueryRow(ctx, insertCustomerQuery,
		cust.FirstName,
		cust.LastName,
		cust.CPF,
		cust.Email,
		cust.PasswordHash,
		cust.Income,
		cust.Address.ZipCode,
		cust.Address.Street,
	).Scan(
		&cust.ID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("InsertCustomer", status, time.Since(startTime))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.Any("error", translatedErr))
			return translatedErr
		}
		if errors.Is(translatedErr, apperrors.ErrValidation) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to column constraint", slog.Any("error", translatedErr))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return apperrors.WrapDatabaseError(err, "failed to insert customer")
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	log := r.logger.With(slog.Int64("customerID", cust.ID))
	log.InfoContext(ctx, "Attempting to update customer")
	status := "success"
	startTime := time.Now()

	err := r.db.QueryRow(ctx, updateCustomerQuery,
		cust.FirstName,
		cust.LastName,
		cust.Income,
		cust.Address.ZipCode,
		cust.Address.Street,
		cust.ID,
	).Scan(&cust.UpdatedAt)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("UpdateCustomer", status, time.Since(startTime))

	if err != nil {
		translatedErr := translateDBError(err, log)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			log.WarnContext(ctx, "Update affected zero rows, customer likely not found")
			return apperrors.NewNotFoundError("customer", cust.ID)
		}
		if errors.Is(translatedErr, apperrors.ErrValidation) {
			log.WarnContext(ctx, "Failed to update customer due to column constraint", slog.Any("error", translatedErr))
			return translatedErr
		}
		log.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return apperrors.WrapDatabaseError(err, "failed to update customer")
	}

	log.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	return r.findOne(ctx, "FindCustomerByID", selectCustomerColumns+` WHERE id = $1`, customerID)
}

func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	return r.findOne(ctx, "FindCustomerByCPF", selectCustomerColumns+` WHERE cpf = $1`, cpf)
}

func (r *CustomerRepository) findOne(ctx context.Context, queryName, query string, key any) (*customer.Customer, error) {
	status := "success"
	startTime := time.Now()

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, key).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.CPF,
		&cust.Email,
		&cust.PasswordHash,
		&cust.Income,
		&cust.Address.ZipCode,
		&cust.Address.Street,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery(queryName, status, time.Since(startTime))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			r.logger.WarnContext(ctx, "Customer not found", slog.String("query", queryName))
			return nil, apperrors.NewNotFoundError("customer", key)
		}
		r.logger.ErrorContext(ctx, "Failed to find customer", slog.String("query", queryName), slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to find customer")
	}

	return &cust, nil
}

// Delete removes the customer; credits go with it through ON DELETE CASCADE.
func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	log := r.logger.With(slog.Int64("customerID", customerID))
	log.InfoContext(ctx, "Attempting to delete customer")
	status := "success"
	startTime := time.Now()

	cmdTag, err := r.db.Exec(ctx, deleteCustomerQuery, customerID)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("DeleteCustomer", status, time.Since(startTime))

	if err != nil {
		log.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return apperrors.WrapDatabaseError(err, "failed to delete customer")
	}

	if cmdTag.RowsAffected() == 0 {
		log.WarnContext(ctx, "Delete affected zero rows, customer not found")
		return apperrors.NewNotFoundError("customer", customerID)
	}

	log.InfoContext(ctx, "Customer deleted successfully")
	return nil
}
