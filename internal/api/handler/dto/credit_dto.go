package dto

import (
	"time"

	"credit-application/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

type CreditDto struct {
	CreditValue          *decimal.Decimal `json:"creditValue" validate:"required,gt=0,money" swaggertype:"number" example:"1500.00"`
	DayFirstInstallment  string           `json:"dayFirstInstallment" validate:"required,datetime=2006-01-02" example:"2026-12-01"`
	NumberOfInstallments int              `json:"numberOfInstallments" validate:"gt=0" example:"12"`
	CustomerID           int64            `json:"customerId" validate:"gt=0" example:"1"`
}

func (d *CreditDto) Validate() error {
	return validateStruct(d)
}

// ToIssueParams assumes Validate has passed.
func (d *CreditDto) ToIssueParams() credit.IssueParams {
	day, _ := time.Parse(dateLayout, d.DayFirstInstallment)
	return credit.IssueParams{
		CustomerID:           d.CustomerID,
		CreditValue:          *d.CreditValue,
		DayFirstInstallment:  day,
		NumberOfInstallments: d.NumberOfInstallments,
	}
}

type CreditView struct {
	CreditCode           uuid.UUID       `json:"creditCode" swaggertype:"string" format:"uuid"`
	CreditValue          decimal.Decimal `json:"creditValue" swaggertype:"number" example:"1500.00"`
	DayFirstInstallment  string          `json:"dayFirstInstallment" example:"2026-12-01"`
	NumberOfInstallments int             `json:"numberOfInstallments" example:"12"`
	Status               credit.Status   `json:"status" swaggertype:"string" example:"IN_PROGRESS"`
	EmailCustomer        string          `json:"emailCustomer,omitempty" example:"ana@mail.com"`
	IncomeCustomer       decimal.Decimal `json:"incomeCustomer" swaggertype:"number" example:"4500.00"`
}

func NewCreditView(c *credit.Credit) CreditView {
	view := CreditView{
		CreditCode:           c.CreditCode,
		CreditValue:          c.CreditValue,
		DayFirstInstallment:  c.DayFirstInstallment.Format(dateLayout),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               c.Status,
	}
	if c.Customer != nil {
		view.EmailCustomer = c.Customer.Email
		view.IncomeCustomer = c.Customer.Income
	}
	return view
}

type CreditSummaryView struct {
	CreditCode           uuid.UUID       `json:"creditCode" swaggertype:"string" format:"uuid"`
	CreditValue          decimal.Decimal `json:"creditValue" swaggertype:"number" example:"1500.00"`
	NumberOfInstallments int             `json:"numberOfInstallments" example:"12"`
}

func NewCreditSummaryViews(credits []*credit.Credit) []CreditSummaryView {
	views := make([]CreditSummaryView, 0, len(credits))
	for _, c := range credits {
		views = append(views, CreditSummaryView{
			CreditCode:           c.CreditCode,
			CreditValue:          c.CreditValue,
			NumberOfInstallments: c.NumberOfInstallments,
		})
	}
	return views
}
