package dto

import (
	"fmt"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

const installmentDateLayout = "2006-01-02"

type CreateCreditRequest struct {
	CreditValue          decimal.Decimal `json:"creditValue" validate:"required"`
	DayFirstInstallment  string          `json:"dayFirstInstallment" validate:"required"`
	NumberOfInstallments int             `json:"numberOfInstallments" validate:"required,min=1,max=48"`
	CustomerID           int64           `json:"customerId" validate:"required,gt=0"`
}

func (r *CreateCreditRequest) ToDomain() (*credit.Credit, error) {
	// Parsed in local time so the domain's calendar-date guard sees the
	// same date the caller wrote.
	firstInstallment, err := time.ParseInLocation(installmentDateLayout, r.DayFirstInstallment, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dayFirstInstallment format (use YYYY-MM-DD)", apperrors.ErrValidation)
	}
	return &credit.Credit{
		CreditValue:          r.CreditValue,
		DayFirstInstallment:  firstInstallment,
		NumberOfInstallments: r.NumberOfInstallments,
		CustomerID:           r.CustomerID,
	}, nil
}

type CreditSavedResponse struct {
	CreditCode    string `json:"creditCode"`
	EmailCustomer string `json:"emailCustomer"`
	Message       string `json:"message"`
}

func NewCreditSavedResponse(c *credit.Credit, customerEmail string) CreditSavedResponse {
	return CreditSavedResponse{
		CreditCode:    c.CreditCode.String(),
		EmailCustomer: customerEmail,
		Message:       fmt.Sprintf("Credit %s - Customer %s saved!", c.CreditCode, customerEmail),
	}
}

// CreditSummary is the list projection. It deliberately omits the internal
// numeric id and the first installment date.
type CreditSummary struct {
	CreditCode           string `json:"creditCode"`
	CreditValue          string `json:"creditValue"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
	CustomerID           int64  `json:"customerId"`
}

func NewCreditSummary(c *credit.Credit) CreditSummary {
	return CreditSummary{
		CreditCode:           c.CreditCode.String(),
		CreditValue:          c.CreditValue.StringFixed(2),
		NumberOfInstallments: c.NumberOfInstallments,
		CustomerID:           c.CustomerID,
	}
}

// CreditView is the detail projection, enriched with the owning customer's
// email and income. The singular "numberOfInstallment" field name is kept for
// compatibility with existing API consumers.
type CreditView struct {
	CreditCode          string `json:"creditCode"`
	CreditValue         string `json:"creditValue"`
	NumberOfInstallment int    `json:"numberOfInstallment"`
	Status              string `json:"status"`
	EmailCustomer       string `json:"emailCustomer"`
	IncomeCustomer      string `json:"incomeCustomer"`
}

func NewCreditView(c *credit.Credit, cust *customer.Customer) CreditView {
	view := CreditView{
		CreditCode:          c.CreditCode.String(),
		CreditValue:         c.CreditValue.StringFixed(2),
		NumberOfInstallment: c.NumberOfInstallments,
		Status:              string(c.Status),
	}
	if cust != nil {
		view.EmailCustomer = cust.Email
		view.IncomeCustomer = cust.Income.StringFixed(2)
	}
	return view
}

type TokenRequest struct {
	Username string `json:"username"`
}
