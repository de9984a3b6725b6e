package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
)

type CreditService interface {
	// Save validates the credit request, resolves the owning customer and
	// persists a new credit with a fresh credit code and IN_PROGRESS status.
	Save(ctx context.Context, c *Credit) (*Credit, error)

	FindAllByCustomer(ctx context.Context, customerID int64) ([]Credit, error)

	FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo            Repository
	customerService customer.CustomerService
	pub             event.EventPublisher
	logger          *slog.Logger
}

func NewCreditService(repo Repository, cs customer.CustomerService, eventPublisher event.EventPublisher, logger *slog.Logger) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if cs == nil {
		panic("customer service cannot be nil")
	}
	if eventPublisher == nil {
		eventPublisher = event.NewNoopEventPublisher(logger)
	}
	return &creditService{
		repo:            repo,
		customerService: cs,
		pub:             eventPublisher,
		logger:          logger.With(slog.String("component", "creditService")),
	}
}

func (s *creditService) Save(ctx context.Context, c *Credit) (*Credit, error) {
	s.logger.InfoContext(ctx, "Creating new credit", slog.Int64("customerID", c.CustomerID))

	// The API layer already validated the request schema; this re-check is
	// the domain guard.
	if err := c.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Credit validation failed", slog.Any("error", err))
		return nil, err
	}

	// Resolving the customer before touching the credit store guarantees no
	// write happens for an unknown customer id.
	if _, err := s.customerService.GetCustomer(ctx, c.CustomerID); err != nil {
		s.logger.WarnContext(ctx, "Owning customer could not be resolved", slog.Int64("customerID", c.CustomerID), slog.Any("error", err))
		return nil, err
	}

	c.CreditCode = uuid.New()
	c.Status = StatusInProgress

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) || errors.Is(err, apperrors.ErrConstraint) {
			s.logger.WarnContext(ctx, "Store rejected credit insert with a constraint violation", slog.Any("error", err))
			return nil, apperrors.WrapBusinessError(err, err.Error())
		}
		s.logger.ErrorContext(ctx, "Failed to save credit", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to save credit: %v", apperrors.ErrInternalServer, err)
	}

	monitoring.RecordCreditCreated()
	s.logger.InfoContext(ctx, "Credit created successfully",
		slog.String("creditCode", created.CreditCode.String()), slog.Int64("customerID", created.CustomerID))

	createdEvent := event.CreditCreatedEvent{
		Timestamp: time.Now(),
		Payload: event.CreditEventPayload{
			CreditCode:           created.CreditCode.String(),
			CreditValue:          created.CreditValue.StringFixed(2),
			NumberOfInstallments: created.NumberOfInstallments,
			Status:               string(created.Status),
			CustomerID:           created.CustomerID,
		},
	}
	if pubErr := s.pub.PublishCreditCreated(ctx, createdEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Credit created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	return created, nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]Credit, error) {
	s.logger.InfoContext(ctx, "Listing credits by customer", slog.Int64("customerID", customerID))

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list credits by customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to list credits for customer %d: %v", apperrors.ErrInternalServer, customerID, err)
	}

	return credits, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error) {
	s.logger.InfoContext(ctx, "Getting credit by credit code", slog.String("creditCode", creditCode.String()))

	c, err := s.repo.FindByCreditCode(ctx, creditCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Credit not found", slog.String("creditCode", creditCode.String()))
			return nil, apperrors.WrapBusinessError(err, fmt.Sprintf("Credit code %s not found", creditCode))
		}
		s.logger.ErrorContext(ctx, "Failed to get credit by credit code", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get credit %s: %v", apperrors.ErrInternalServer, creditCode, err)
	}

	// Another customer's credit is reported with the same failure kind as a
	// missing one; only the message text differs. Historical API behaviour,
	// relied upon by existing callers.
	if !c.BelongsTo(customerID) {
		s.logger.WarnContext(ctx, "Credit does not belong to requesting customer",
			slog.String("creditCode", creditCode.String()), slog.Int64("customerID", customerID))
		return nil, apperrors.NewBusinessError(fmt.Sprintf("Credit code %s not found for customer %d", creditCode, customerID))
	}

	return c, nil
}
