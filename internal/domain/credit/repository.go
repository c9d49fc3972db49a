package credit

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, credit *Credit) error

	// FindByCreditCode returns the credit with its owning customer attached.
	FindByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error)

	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)
}

// Cache is an optional read-through store for single-credit lookups.
type Cache interface {
	Get(ctx context.Context, code uuid.UUID) (*Credit, bool)
	Set(ctx context.Context, credit *Credit)
}

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (*Credit, bool) { return nil, false }
func (noopCache) Set(context.Context, *Credit)                  {}
