package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"credit-application/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	errMsgFormat = "%w: %w"

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// DBPool is satisfied by *pgxpool.Pool and by pgxmock.PgxPoolIface.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

type uniqueKey struct {
	field   string
	message string
}

var uniqueConstraints = map[string]uniqueKey{
	"uq_customers_cpf":       {field: "cpf", message: "cpf already registered"},
	"uq_customers_email":     {field: "email", message: "email already registered"},
	"uq_credits_credit_code": {field: "creditCode", message: "credit code already issued"},
}

// checkConstraints uses the names Postgres generates for column checks.
var checkConstraints = map[string]string{
	"customers_income_check":               "income",
	"credits_credit_value_check":           "creditValue",
	"credits_number_of_installments_check": "numberOfInstallments",
	"credits_status_check":                 "status",
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			if key, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
				return apperrors.NewConflictError(key.field, key.message, err)
			}
			return apperrors.NewConflictError(pgErr.ConstraintName, "value already exists", err)
		case pgForeignKeyViolation:
			contextLogger.Warn("Database foreign key violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: referenced row does not exist (%s)", apperrors.ErrNotFound, pgErr.ConstraintName)
		case pgCheckViolation:
			contextLogger.Warn("Database check constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			field, ok := checkConstraints[pgErr.ConstraintName]
			if !ok {
				field = pgErr.ConstraintName
			}
			return apperrors.NewValidationError(field, "Invalid value")
		case pgNumericOutOfRange:
			contextLogger.Warn("Database numeric value out of range", "message", pgErr.Message, "column", pgErr.ColumnName)
			return apperrors.NewValidationError("value", "Numeric value out of range")
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
