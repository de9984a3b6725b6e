package customer

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("customer not found")

	ErrDuplicateCPF = errors.New("cpf already registered")

	ErrDuplicateEmail = errors.New("email already registered")
)

type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	// Delete removes the customer row; dependent credits are removed by the
	// store's cascade rule.
	Delete(ctx context.Context, customerID int64) error
}
