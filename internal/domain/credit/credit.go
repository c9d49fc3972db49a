package credit

import (
	"time"

	"credit-application/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Credit is immutable once persisted.
type Credit struct {
	ID                   int64           `json:"-"`
	CreditCode           uuid.UUID       `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	DayFirstInstallment  time.Time       `json:"dayFirstInstallment"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	Status               Status          `json:"status"`
	CustomerID           int64           `json:"customerId"`
	CreatedAt            time.Time       `json:"createdAt"`

	// Customer is populated on single-credit reads only.
	Customer *customer.Customer `json:"customer,omitempty"`
}

func NewCredit(customerID int64, value decimal.Decimal, dayFirstInstallment time.Time, installments int) *Credit {
	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          value,
		DayFirstInstallment:  truncateToDay(dayFirstInstallment),
		NumberOfInstallments: installments,
		Status:               StatusInProgress,
		CustomerID:           customerID,
		CreatedAt:            time.Now(),
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LatestFirstInstallment is the last day a first installment may fall on
// when the credit is requested at now. The day is clamped to the end of the
// target month, so Nov 30 plus three months is Feb 28 and not Mar 2.
func LatestFirstInstallment(now time.Time, maxMonths int) time.Time {
	y, m, d := now.UTC().Date()
	lastDay := time.Date(y, m+time.Month(maxMonths)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return time.Date(y, m+time.Month(maxMonths), min(d, lastDay), 0, 0, 0, 0, time.UTC)
}
