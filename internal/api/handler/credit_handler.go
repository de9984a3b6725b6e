package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreditHandler struct {
	service         credit.CreditService
	customerService customer.CustomerService
	logger          *slog.Logger
}

func NewCreditHandler(s credit.CreditService, cs customer.CustomerService, l *slog.Logger) *CreditHandler {
	return &CreditHandler{
		service:         s,
		customerService: cs,
		logger:          l.With("component", "CreditHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondValidation(w http.ResponseWriter, details []string) {
	respondJSON(w, http.StatusBadRequest,
		dto.NewErrorResponse(http.StatusBadRequest, "ValidationException", details))
}

func respondError(w http.ResponseWriter, err error) {
	status, exception := http.StatusInternalServerError, "InternalServerErrorException"
	details := []string{"An unexpected error occurred."}
	var validationError *apperrors.ValidationError
	var businessError *apperrors.BusinessError

	switch {
	case errors.As(err, &businessError), errors.Is(err, apperrors.ErrBusiness):
		// Domain failures, including not-found ones, are client errors here.
		status, exception, details = http.StatusBadRequest, "BusinessException", []string{err.Error()}
	case errors.As(err, &validationError):
		status, exception, details = http.StatusBadRequest, "ValidationException", []string{validationError.Message}
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidArgument):
		status, exception, details = http.StatusBadRequest, "ValidationException", []string{err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, exception, details = http.StatusUnauthorized, "UnauthorizedException", []string{err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		status, exception, details = http.StatusNotFound, "NotFoundException", []string{"Resource not found."}
	case errors.Is(err, apperrors.ErrAlreadyExists), errors.Is(err, apperrors.ErrConstraint):
		status, exception, details = http.StatusConflict, "DataAccessException", []string{err.Error()}
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	respondJSON(w, status, dto.NewErrorResponse(status, exception, details))
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	idStr := r.URL.Query().Get("customerId")
	if idStr == "" {
		return 0, fmt.Errorf("%w: missing required query parameter 'customerId'", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerId format: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// SaveCredit handles POST /api/credits
// @Summary Request a new credit
// @Description Registers a new credit application for an existing customer. The credit starts in IN_PROGRESS status and is identified externally by a generated credit code.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditRequest true "Credit request payload"
// @Success 201 {object} dto.CreditSavedResponse "Credit successfully saved"
// @Failure 400 {object} dto.ErrorResponse "Validation or business rule violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [post]
// @Security BearerAuth
func (h *CreditHandler) SaveCredit(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received save credit request")

	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if violations := dto.Validate(&req); len(violations) > 0 {
		h.logger.WarnContext(r.Context(), "Credit request failed schema validation", slog.Any("violations", violations))
		respondValidation(w, violations)
		return
	}

	newCredit, err := req.ToDomain()
	if err != nil {
		h.logger.WarnContext(r.Context(), "Credit request carries an invalid installment date", slog.Any("error", err))
		respondError(w, err)
		return
	}

	created, err := h.service.Save(r.Context(), newCredit)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to save credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	cust, err := h.customerService.GetCustomer(r.Context(), created.CustomerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Credit saved but owning customer could not be reloaded", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Credit saved successfully", slog.String("creditCode", created.CreditCode.String()))
	respondJSON(w, http.StatusCreated, dto.NewCreditSavedResponse(created, cust.Email))
}

// ListCreditsByCustomer handles GET /api/credits?customerId=N
// @Summary List credits for a customer
// @Description Retrieves the credit applications belonging to a customer as summaries. Internal ids and installment dates are not exposed.
// @Tags Credits
// @Produce json
// @Param customerId query int true "Owning customer ID" Minimum(1)
// @Success 200 {array} dto.CreditSummary "List of credit summaries"
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing customerId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [get]
// @Security BearerAuth
func (h *CreditHandler) ListCreditsByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	credits, err := h.service.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CreditSummary, len(credits))
	for i := range credits {
		resp[i] = dto.NewCreditSummary(&credits[i])
	}

	h.logger.InfoContext(r.Context(), "Credits listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetCreditByCode handles GET /api/credits/{creditCode}?customerId=N
// @Summary Retrieve a credit by its credit code
// @Description Retrieves a single credit application by its public credit code, scoped to the requesting customer.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Public credit code (UUID)"
// @Param customerId query int true "Owning customer ID" Minimum(1)
// @Success 200 {object} dto.CreditView "Credit details"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters or credit not found for customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) GetCreditByCode(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	codeStr := chi.URLParam(r, "creditCode")
	creditCode, err := uuid.Parse(codeStr)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid credit code in URL path", slog.String("creditCode", codeStr))
		respondError(w, fmt.Errorf("%w: invalid creditCode format: %s", apperrors.ErrInvalidArgument, codeStr))
		return
	}

	domainCredit, err := h.service.FindByCreditCode(r.Context(), customerID, creditCode)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrBusiness) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get credit by code", slog.Any("error", err))
		respondError(w, err)
		return
	}

	cust, err := h.customerService.GetCustomer(r.Context(), domainCredit.CustomerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load owning customer for credit view", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Credit retrieved successfully", slog.String("creditCode", creditCode.String()))
	respondJSON(w, http.StatusOK, dto.NewCreditView(domainCredit, cust))
}
