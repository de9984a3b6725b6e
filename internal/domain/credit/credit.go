package credit

import (
	"fmt"
	"time"

	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxInstallments = 48

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo encodes the only legal moves: IN_PROGRESS is the sole
// non-terminal state. Self-transitions are rejected.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusInProgress || !next.Valid() {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// Credit carries two identities: the store-assigned numeric ID used only
// internally, and the public CreditCode handed to external callers. The two
// must never be unified.
type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	CustomerID           int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewCredit(creditValue decimal.Decimal, dayFirstInstallment time.Time, numberOfInstallments int, customerID int64) (*Credit, error) {
	c := &Credit{
		CreditValue:          creditValue,
		DayFirstInstallment:  dayFirstInstallment,
		NumberOfInstallments: numberOfInstallments,
		CustomerID:           customerID,
		Status:               StatusInProgress,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate re-checks the domain guards. The API layer validates request
// schemas before constructing a Credit, but the service re-runs this as a
// domain guard so the rules hold regardless of caller.
func (c *Credit) Validate() error {
	if !c.CreditValue.IsPositive() {
		return fmt.Errorf("%w: creditValue must be greater than zero", apperrors.ErrValidation)
	}
	if c.NumberOfInstallments <= 0 || c.NumberOfInstallments > MaxInstallments {
		return fmt.Errorf("%w: numberOfInstallments must be between 1 and %d", apperrors.ErrValidation, MaxInstallments)
	}
	if !dateOf(c.DayFirstInstallment).After(today()) {
		return fmt.Errorf("%w: dayFirstInstallment must be a future date", apperrors.ErrValidation)
	}
	if c.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (c *Credit) BelongsTo(customerID int64) bool {
	return c.CustomerID == customerID
}

// dateOf truncates a timestamp to its local calendar date. The future-date
// guard compares dates, not instants, so a timestamp carrying a time of day
// or a foreign zone must not slip past local midnight.
func dateOf(t time.Time) time.Time {
	year, month, day := t.In(time.Local).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func today() time.Time {
	return dateOf(time.Now())
}
