package cache

import (
	"time"

	"credit-application/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type creditSnapshot struct {
	ID                   int64           `json:"id"`
	CreditCode           uuid.UUID       `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	DayFirstInstallment  time.Time       `json:"dayFirstInstallment"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	Status               string          `json:"status"`
	CustomerID           int64           `json:"customerId"`
	CreatedAt            time.Time       `json:"createdAt"`
}

func newCreditSnapshot(c *credit.Credit) creditSnapshot {
	return creditSnapshot{
		ID:                   c.ID,
		CreditCode:           c.CreditCode,
		CreditValue:          c.CreditValue,
		DayFirstInstallment:  c.DayFirstInstallment,
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
		CustomerID:           c.CustomerID,
		CreatedAt:            c.CreatedAt,
	}
}

func (s creditSnapshot) toCredit() *credit.Credit {
	return &credit.Credit{
		ID:                   s.ID,
		CreditCode:           s.CreditCode,
		CreditValue:          s.CreditValue,
		DayFirstInstallment:  s.DayFirstInstallment,
		NumberOfInstallments: s.NumberOfInstallments,
		Status:               credit.Status(s.Status),
		CustomerID:           s.CustomerID,
		CreatedAt:            s.CreatedAt,
	}
}
