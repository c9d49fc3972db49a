package dto

import (
	"credit-application/internal/domain/customer"

	"github.com/shopspring/decimal"
)

type CustomerDto struct {
	FirstName string           `json:"firstName" validate:"required,notblank,max=255" example:"Ana"`
	LastName  string           `json:"lastName" validate:"required,notblank,max=255" example:"Silva"`
	CPF       string           `json:"cpf" validate:"required,cpf" example:"52998224725"`
	Income    *decimal.Decimal `json:"income" validate:"required,gte=0,money" swaggertype:"number" example:"4500.00"`
	Email     string           `json:"email" validate:"required,email,max=255" example:"ana@mail.com"`
	Password  string           `json:"password" validate:"required,notblank,max=72" example:"s3cret"`
	ZipCode   string           `json:"zipCode" validate:"required,notblank,max=20" example:"01001000"`
	Street    string           `json:"street" validate:"required,notblank,max=255" example:"Rua Augusta"`
}

func (d *CustomerDto) Validate() error {
	return validateStruct(d)
}

func (d *CustomerDto) ToRegisterParams() customer.RegisterParams {
	return customer.RegisterParams{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		CPF:       d.CPF,
		Email:     d.Email,
		Password:  d.Password,
		Income:    *d.Income,
		ZipCode:   d.ZipCode,
		Street:    d.Street,
	}
}

// CustomerUpdateDto has no cpf, email or password fields; combined with
// strict decoding, a payload carrying them is rejected.
type CustomerUpdateDto struct {
	FirstName string           `json:"firstName" validate:"required,notblank,max=255" example:"Ana"`
	LastName  string           `json:"lastName" validate:"required,notblank,max=255" example:"Souza"`
	Income    *decimal.Decimal `json:"income" validate:"required,gte=0,money" swaggertype:"number" example:"5000.00"`
	ZipCode   string           `json:"zipCode" validate:"required,notblank,max=20" example:"20040002"`
	Street    string           `json:"street" validate:"required,notblank,max=255" example:"Av. Rio Branco"`
}

func (d *CustomerUpdateDto) Validate() error {
	return validateStruct(d)
}

func (d *CustomerUpdateDto) ToUpdateParams() customer.UpdateParams {
	return customer.UpdateParams{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Income:    *d.Income,
		ZipCode:   d.ZipCode,
		Street:    d.Street,
	}
}

type CustomerView struct {
	ID        int64           `json:"id" example:"1"`
	FirstName string          `json:"firstName" example:"Ana"`
	LastName  string          `json:"lastName" example:"Silva"`
	CPF       string          `json:"cpf" example:"52998224725"`
	Income    decimal.Decimal `json:"income" swaggertype:"number" example:"4500.00"`
	Email     string          `json:"email" example:"ana@mail.com"`
	ZipCode   string          `json:"zipCode" example:"01001000"`
	Street    string          `json:"street" example:"Rua Augusta"`
}

func NewCustomerView(c *customer.Customer) CustomerView {
	return CustomerView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CPF:       c.CPF,
		Income:    c.Income,
		Email:     c.Email,
		ZipCode:   c.Address.ZipCode,
		Street:    c.Address.Street,
	}
}
