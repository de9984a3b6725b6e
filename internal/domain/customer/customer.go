package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is a value object owned by its Customer. It has no identity or
// lifecycle of its own.
type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Income    decimal.Decimal `json:"income"`
	Password  string          `json:"-"`
	Address   Address         `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewCustomer(firstName, lastName, cpf, email, password string, income decimal.Decimal, address Address) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Email:     email,
		Password:  password,
		Income:    income,
		Address:   address,
	}
}

// UpdatePatch carries the mutable profile fields. Identity fields (cpf,
// email, password) are not patchable through the profile update flow.
type UpdatePatch struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

func (c *Customer) Apply(patch UpdatePatch) {
	c.FirstName = patch.FirstName
	c.LastName = patch.LastName
	c.Income = patch.Income
	c.Address.ZipCode = patch.ZipCode
	c.Address.Street = patch.Street
	c.UpdatedAt = time.Now()
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
