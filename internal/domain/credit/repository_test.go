package credit

import (
	"context"

	"credit-application/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, credit *Credit) error {
	ret := m.Called(ctx, credit)

	if rf, ok := ret.Get(0).(func(context.Context, *Credit) error); ok {
		return rf(ctx, credit)
	}
	return ret.Error(0)
}

func (m *MockRepository) FindByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error) {
	ret := m.Called(ctx, code)

	var r0 *Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Credit)
	}
	return r0, ret.Error(1)
}

func (m *MockRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error) {
	ret := m.Called(ctx, customerID)

	var r0 []*Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Credit)
	}
	return r0, ret.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Register(ctx context.Context, params customer.RegisterParams) (*customer.Customer, error) {
	ret := m.Called(ctx, params)
	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (m *MockCustomerService) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := m.Called(ctx, customerID)
	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (m *MockCustomerService) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	ret := m.Called(ctx, cpf)
	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, customerID int64, params customer.UpdateParams) (*customer.Customer, error) {
	ret := m.Called(ctx, customerID, params)
	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, customerID int64) error {
	return m.Called(ctx, customerID).Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, code uuid.UUID) (*Credit, bool) {
	ret := m.Called(ctx, code)
	var r0 *Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Credit)
	}
	return r0, ret.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, credit *Credit) {
	m.Called(ctx, credit)
}

var (
	_ Repository               = (*MockRepository)(nil)
	_ customer.CustomerService = (*MockCustomerService)(nil)
	_ Cache                    = (*MockCache)(nil)
)
