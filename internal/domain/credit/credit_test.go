package credit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCreditArgs() (decimal.Decimal, time.Time, int, int64) {
	return decimal.NewFromInt(10000), time.Now().AddDate(0, 1, 0), 12, int64(1)
}

func TestNewCredit(t *testing.T) {
	value, firstInstallment, installments, customerID := validCreditArgs()

	c, err := NewCredit(value, firstInstallment, installments, customerID)

	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, StatusInProgress, c.Status)
	assert.Equal(t, customerID, c.CustomerID)
}

func TestCreditValidate(t *testing.T) {
	value, firstInstallment, installments, customerID := validCreditArgs()

	testCases := []struct {
		name   string
		mutate func(c *Credit)
	}{
		{"zero credit value", func(c *Credit) { c.CreditValue = decimal.Zero }},
		{"negative credit value", func(c *Credit) { c.CreditValue = decimal.NewFromInt(-100) }},
		{"zero installments", func(c *Credit) { c.NumberOfInstallments = 0 }},
		{"too many installments", func(c *Credit) { c.NumberOfInstallments = MaxInstallments + 1 }},
		{"first installment today", func(c *Credit) { c.DayFirstInstallment = time.Now() }},
		{"first installment today as utc midnight", func(c *Credit) {
			year, month, day := time.Now().Date()
			c.DayFirstInstallment = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		}},
		{"first installment in the past", func(c *Credit) { c.DayFirstInstallment = time.Now().AddDate(0, 0, -1) }},
		{"missing customer id", func(c *Credit) { c.CustomerID = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Credit{
				CreditValue:          value,
				DayFirstInstallment:  firstInstallment,
				NumberOfInstallments: installments,
				CustomerID:           customerID,
			}
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	t.Run("max installments is allowed", func(t *testing.T) {
		c := &Credit{
			CreditValue:          value,
			DayFirstInstallment:  firstInstallment,
			NumberOfInstallments: MaxInstallments,
			CustomerID:           customerID,
		}
		assert.NoError(t, c.Validate())
	})

	t.Run("tomorrow is a valid first installment date", func(t *testing.T) {
		c := &Credit{
			CreditValue:          value,
			DayFirstInstallment:  time.Now().AddDate(0, 0, 1),
			NumberOfInstallments: installments,
			CustomerID:           customerID,
		}
		assert.NoError(t, c.Validate())
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	assert.True(t, StatusInProgress.CanTransitionTo(StatusApproved))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusRejected))

	assert.False(t, StatusInProgress.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusApproved.CanTransitionTo(StatusRejected))
	assert.False(t, StatusApproved.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusRejected.CanTransitionTo(StatusApproved))
	assert.False(t, StatusInProgress.CanTransitionTo(Status("UNKNOWN")))
}

func TestBelongsTo(t *testing.T) {
	c := &Credit{CustomerID: 7}

	assert.True(t, c.BelongsTo(7))
	assert.False(t, c.BelongsTo(8))
}
