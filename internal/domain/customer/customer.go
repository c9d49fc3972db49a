package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	ID           int64           `json:"id"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	CPF          string          `json:"cpf"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Income       decimal.Decimal `json:"income"`
	Address      Address         `json:"address"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewCustomer(firstName, lastName, cpf, email, passwordHash string, income decimal.Decimal, address Address) *Customer {
	now := time.Now()
	return &Customer{
		FirstName:    firstName,
		LastName:     lastName,
		CPF:          NormalizeCPF(cpf),
		Email:        email,
		PasswordHash: passwordHash,
		Income:       income,
		Address:      address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyUpdate changes the mutable fields only. CPF, email and password
// are fixed at registration.
func (c *Customer) ApplyUpdate(p UpdateParams) {
	c.FirstName = p.FirstName
	c.LastName = p.LastName
	c.Income = p.Income
	c.Address = Address{ZipCode: p.ZipCode, Street: p.Street}
	c.UpdatedAt = time.Now()
}
