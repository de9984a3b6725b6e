package dto

import (
	"strconv"

	"credit-engine/internal/domain/customer"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	CPF       string          `json:"cpf" validate:"required,numeric,len=11"`
	Email     string          `json:"email" validate:"required,email"`
	Income    decimal.Decimal `json:"income" validate:"required"`
	Password  string          `json:"password" validate:"required,min=6"`
	ZipCode   string          `json:"zipCode" validate:"required"`
	Street    string          `json:"street" validate:"required"`
}

func (r *CreateCustomerRequest) ToDomain() *customer.Customer {
	return customer.NewCustomer(
		r.FirstName,
		r.LastName,
		r.CPF,
		r.Email,
		r.Password,
		r.Income,
		customer.Address{ZipCode: r.ZipCode, Street: r.Street},
	)
}

// UpdateCustomerRequest carries the patchable profile fields. Identity fields
// (cpf, email, password) are not accepted here.
type UpdateCustomerRequest struct {
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	Income    decimal.Decimal `json:"income" validate:"required"`
	ZipCode   string          `json:"zipCode" validate:"required"`
	Street    string          `json:"street" validate:"required"`
}

func (r *UpdateCustomerRequest) ToPatch() customer.UpdatePatch {
	return customer.UpdatePatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    r.Income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

type CustomerView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Income    string `json:"income"`
	ZipCode   string `json:"zipCode"`
	Street    string `json:"street"`
}

func NewCustomerView(cust *customer.Customer) CustomerView {
	if cust == nil {
		return CustomerView{}
	}
	return CustomerView{
		ID:        strconv.FormatInt(cust.ID, 10),
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		CPF:       cust.CPF,
		Email:     cust.Email,
		Income:    cust.Income.StringFixed(2),
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
	}
}

type CustomerSavedResponse struct {
	Message string `json:"message"`
}

func NewCustomerSavedResponse(cust *customer.Customer) CustomerSavedResponse {
	return CustomerSavedResponse{Message: "Customer " + cust.Email + " saved!"}
}
