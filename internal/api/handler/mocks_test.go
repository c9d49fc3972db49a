package handler_test

import (
	"context"
	"io"
	"log/slog"

	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) Register(ctx context.Context, params customer.RegisterParams) (*customer.Customer, error) {
	ret := _m.Called(ctx, params)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	ret := _m.Called(ctx, cpf)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) Update(ctx context.Context, customerID int64, params customer.UpdateParams) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID, params)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) Delete(ctx context.Context, customerID int64) error {
	return _m.Called(ctx, customerID).Error(0)
}

type MockCreditService struct {
	mock.Mock
}

func (_m *MockCreditService) Issue(ctx context.Context, params credit.IssueParams) (*credit.Credit, error) {
	ret := _m.Called(ctx, params)

	var r0 *credit.Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*credit.Credit)
	}
	return r0, ret.Error(1)
}

func (_m *MockCreditService) FindByCreditCode(ctx context.Context, code uuid.UUID, customerID *int64) (*credit.Credit, error) {
	ret := _m.Called(ctx, code, customerID)

	var r0 *credit.Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*credit.Credit)
	}
	return r0, ret.Error(1)
}

func (_m *MockCreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*credit.Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*credit.Credit)
	}
	return r0, ret.Error(1)
}

var (
	_ customer.CustomerService = (*MockCustomerService)(nil)
	_ credit.CreditService     = (*MockCreditService)(nil)
)
