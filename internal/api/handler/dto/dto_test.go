package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCustomerDto() CustomerDto {
	return CustomerDto{
		FirstName: "Ana",
		LastName:  "Silva",
		CPF:       "52998224725",
		Income:    decimalPtr("4500.00"),
		Email:     "ana@mail.com",
		Password:  "s3cret",
		ZipCode:   "01001000",
		Street:    "Rua Augusta",
	}
}

func TestCustomerDto_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *CustomerDto)
		want   map[string]string
	}{
		{
			name:   "valid",
			mutate: func(d *CustomerDto) {},
		},
		{
			name:   "zero income is allowed",
			mutate: func(d *CustomerDto) { d.Income = decimalPtr("0") },
		},
		{
			name:   "empty first name",
			mutate: func(d *CustomerDto) { d.FirstName = "" },
			want:   map[string]string{"firstName": "This field is required"},
		},
		{
			name:   "blank street",
			mutate: func(d *CustomerDto) { d.Street = "   " },
			want:   map[string]string{"street": "This field is required"},
		},
		{
			name:   "invalid cpf",
			mutate: func(d *CustomerDto) { d.CPF = "12345678900" },
			want:   map[string]string{"cpf": "Invalid CPF"},
		},
		{
			name:   "invalid email",
			mutate: func(d *CustomerDto) { d.Email = "not-an-email" },
			want:   map[string]string{"email": "Invalid email format"},
		},
		{
			name:   "missing income",
			mutate: func(d *CustomerDto) { d.Income = nil },
			want:   map[string]string{"income": "This field is required"},
		},
		{
			name:   "negative income",
			mutate: func(d *CustomerDto) { d.Income = decimalPtr("-0.01") },
			want:   map[string]string{"income": "Must be greater than or equal to 0"},
		},
		{
			name:   "income with two decimals and trailing zero",
			mutate: func(d *CustomerDto) { d.Income = decimalPtr("1000.550") },
		},
		{
			name:   "income with three decimals",
			mutate: func(d *CustomerDto) { d.Income = decimalPtr("1000.555") },
			want:   map[string]string{"income": "Must have at most 13 integer digits and 2 decimal places"},
		},
		{
			name:   "income beyond thirteen integer digits",
			mutate: func(d *CustomerDto) { d.Income = decimalPtr("10000000000000") },
			want:   map[string]string{"income": "Must have at most 13 integer digits and 2 decimal places"},
		},
		{
			name:   "largest storable income",
			mutate: func(d *CustomerDto) { d.Income = decimalPtr("9999999999999.99") },
		},
		{
			name:   "password at bcrypt limit",
			mutate: func(d *CustomerDto) { d.Password = strings.Repeat("p", 72) },
		},
		{
			name:   "password longer than bcrypt accepts",
			mutate: func(d *CustomerDto) { d.Password = strings.Repeat("p", 83) },
			want:   map[string]string{"password": "Must be at most 72 characters"},
		},
		{
			name: "several fields at once",
			mutate: func(d *CustomerDto) {
				d.FirstName = ""
				d.CPF = "11111111111"
			},
			want: map[string]string{"firstName": "This field is required", "cpf": "Invalid CPF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validCustomerDto()
			tt.mutate(&d)

			err := d.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.Equal(t, tt.want, apperrors.Details(err))
		})
	}
}

func TestCustomerDto_ToRegisterParams(t *testing.T) {
	d := validCustomerDto()
	p := d.ToRegisterParams()

	assert.Equal(t, "Ana", p.FirstName)
	assert.Equal(t, "52998224725", p.CPF)
	assert.True(t, decimal.RequireFromString("4500").Equal(p.Income))
	assert.Equal(t, "Rua Augusta", p.Street)
}

func TestCustomerUpdateDto_HasNoImmutableFields(t *testing.T) {
	body := []byte(`{"firstName":"Ana","lastName":"Souza","income":10,"zipCode":"1","street":"x"}`)
	var d CustomerUpdateDto
	require.NoError(t, json.Unmarshal(body, &d))
	require.NoError(t, d.Validate())

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "cpf")
	assert.NotContains(t, string(encoded), "email")
	assert.NotContains(t, string(encoded), "password")
}

func TestCreditDto_Validate(t *testing.T) {
	valid := CreditDto{
		CreditValue:          decimalPtr("1500"),
		DayFirstInstallment:  "2026-12-01",
		NumberOfInstallments: 12,
		CustomerID:           1,
	}
	assert.NoError(t, valid.Validate())

	bad := CreditDto{
		CreditValue:          decimalPtr("0"),
		DayFirstInstallment:  "01/12/2026",
		NumberOfInstallments: 0,
		CustomerID:           0,
	}
	err := bad.Validate()
	assert.Equal(t, map[string]string{
		"creditValue":          "Must be greater than 0",
		"dayFirstInstallment":  "Must be a date in YYYY-MM-DD format",
		"numberOfInstallments": "Must be greater than 0",
		"customerId":           "Must be greater than 0",
	}, apperrors.Details(err))
}

func TestCreditDto_ValidateMoneyScale(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"two decimals", "1500.25", true},
		{"largest storable", "9999999999999.99", true},
		{"sub-cent", "0.001", false},
		{"three decimals", "10.125", false},
		{"thirteen digit overflow", "10000000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CreditDto{
				CreditValue:          decimalPtr(tt.value),
				DayFirstInstallment:  "2026-12-01",
				NumberOfInstallments: 12,
				CustomerID:           1,
			}

			err := d.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, map[string]string{
				"creditValue": "Must have at most 13 integer digits and 2 decimal places",
			}, apperrors.Details(err))
		})
	}
}

func TestCustomerUpdateDto_ValidateMoneyScale(t *testing.T) {
	d := CustomerUpdateDto{FirstName: "Ana", LastName: "Souza", Income: decimalPtr("1000.555"), ZipCode: "1", Street: "x"}

	err := d.Validate()

	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, apperrors.Details(err), "income")
}

func TestCreditDto_ToIssueParams(t *testing.T) {
	d := CreditDto{
		CreditValue:          decimalPtr("1500"),
		DayFirstInstallment:  "2026-12-01",
		NumberOfInstallments: 12,
		CustomerID:           3,
	}
	p := d.ToIssueParams()

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), p.DayFirstInstallment)
	assert.Equal(t, int64(3), p.CustomerID)
	assert.Equal(t, 12, p.NumberOfInstallments)
}

func TestNewCustomerView_OmitsPassword(t *testing.T) {
	c := &customer.Customer{
		ID:           1,
		FirstName:    "Ana",
		CPF:          "52998224725",
		PasswordHash: "secret-hash",
		Income:       decimal.RequireFromString("4500.5"),
		Address:      customer.Address{ZipCode: "01001000", Street: "Rua Augusta"},
	}

	body, err := json.Marshal(NewCustomerView(c))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "secret-hash")
	assert.NotContains(t, string(body), "password")
	assert.Contains(t, string(body), `"income":4500.5`)
	assert.Contains(t, string(body), `"zipCode":"01001000"`)
}

func TestNewCreditView_HidesInternalID(t *testing.T) {
	code := uuid.MustParse("61418e3b-62f7-49f5-b554-8504031e7c73")
	c := &credit.Credit{
		ID:                   77,
		CreditCode:           code,
		CreditValue:          decimal.NewFromInt(1500),
		DayFirstInstallment:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		NumberOfInstallments: 12,
		Status:               credit.StatusInProgress,
		CustomerID:           3,
		Customer:             &customer.Customer{Email: "ana@mail.com", Income: decimal.NewFromInt(4500)},
	}

	body, err := json.Marshal(NewCreditView(c))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.NotContains(t, decoded, "id")
	assert.Equal(t, code.String(), decoded["creditCode"])
	assert.Equal(t, "2026-12-01", decoded["dayFirstInstallment"])
	assert.Equal(t, "IN_PROGRESS", decoded["status"])
	assert.Equal(t, "ana@mail.com", decoded["emailCustomer"])
	assert.Equal(t, float64(4500), decoded["incomeCustomer"])
}

func TestNewCreditSummaryViews(t *testing.T) {
	views := NewCreditSummaryViews([]*credit.Credit{
		{ID: 1, CreditCode: uuid.New(), CreditValue: decimal.NewFromInt(10), NumberOfInstallments: 2},
		{ID: 2, CreditCode: uuid.New(), CreditValue: decimal.NewFromInt(20), NumberOfInstallments: 4},
	})

	require.Len(t, views, 2)
	assert.Equal(t, 4, views[1].NumberOfInstallments)
	assert.NotNil(t, NewCreditSummaryViews(nil))
}
