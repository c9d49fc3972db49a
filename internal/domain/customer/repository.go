package customer

import (
	"context"
)

type CustomerRepository interface {
	// Save inserts when ID is zero and updates the mutable columns otherwise.
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindByCPF(ctx context.Context, cpf string) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error
}
