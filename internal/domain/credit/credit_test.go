package credit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCredit(t *testing.T) {
	day := time.Date(2026, 11, 20, 15, 30, 0, 0, time.UTC)

	c1 := NewCredit(4, decimal.NewFromInt(500), day, 10)
	c2 := NewCredit(4, decimal.NewFromInt(500), day, 10)

	assert.Equal(t, StatusInProgress, c1.Status)
	assert.Equal(t, int64(4), c1.CustomerID)
	assert.Equal(t, time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), c1.DayFirstInstallment)
	assert.NotEqual(t, uuid.Nil, c1.CreditCode)
	assert.Equal(t, uuid.Version(4), c1.CreditCode.Version())
	assert.NotEqual(t, c1.CreditCode, c2.CreditCode)
}

func TestLatestFirstInstallment(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		months   int
		expected time.Time
	}{
		{"Mid month", time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), 3, time.Date(2027, 1, 18, 0, 0, 0, 0, time.UTC)},
		{"Nov 30 clamps to Feb 28", time.Date(2026, 11, 30, 10, 0, 0, 0, time.UTC), 3, time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"Jan 31 clamps to Apr 30", time.Date(2027, 1, 31, 10, 0, 0, 0, time.UTC), 3, time.Date(2027, 4, 30, 0, 0, 0, 0, time.UTC)},
		{"Leap year keeps Feb 29", time.Date(2027, 11, 30, 0, 0, 0, 0, time.UTC), 3, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"Year rollover", time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 2, time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LatestFirstInstallment(tt.now, tt.months))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, Status("CANCELLED").IsValid())
}
