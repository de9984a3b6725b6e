package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"credit-engine/internal/api/handler"
	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCreditService struct {
	mock.Mock
}

func (_m *MockCreditService) Save(ctx context.Context, c *credit.Credit) (*credit.Credit, error) {
	ret := _m.Called(ctx, c)

	var r0 *credit.Credit
	if rf, ok := ret.Get(0).(func(context.Context, *credit.Credit) *credit.Credit); ok {
		r0 = rf(ctx, c)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*credit.Credit)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *credit.Credit) error); ok {
		r1 = rf(ctx, c)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]credit.Credit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []credit.Credit
	if rf, ok := ret.Get(0).(func(context.Context, int64) []credit.Credit); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]credit.Credit)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCreditService) FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*credit.Credit, error) {
	ret := _m.Called(ctx, customerID, creditCode)

	var r0 *credit.Credit
	if rf, ok := ret.Get(0).(func(context.Context, int64, uuid.UUID) *credit.Credit); ok {
		r0 = rf(ctx, customerID, creditCode)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*credit.Credit)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, uuid.UUID) error); ok {
		r1 = rf(ctx, customerID, creditCode)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func testCredit() *credit.Credit {
	return &credit.Credit{
		ID:                   10,
		CreditCode:           uuid.New(),
		CreditValue:          decimal.NewFromInt(10000),
		DayFirstInstallment:  time.Now().AddDate(0, 1, 0),
		NumberOfInstallments: 12,
		Status:               credit.StatusInProgress,
		CustomerID:           1,
	}
}

func validSaveCreditBody() map[string]any {
	return map[string]any{
		"creditValue":          10000.0,
		"dayFirstInstallment":  time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"numberOfInstallments": 12,
		"customerId":           1,
	}
}

func newCreditRouter(svc credit.CreditService, customerSvc customer.CustomerService) *chi.Mux {
	h := handler.NewCreditHandler(svc, customerSvc, logger)
	r := chi.NewRouter()
	r.Post("/api/credits", h.SaveCredit)
	r.Get("/api/credits", h.ListCreditsByCustomer)
	r.Get("/api/credits/{creditCode}", h.GetCreditByCode)
	return r
}

func TestSaveCreditHandler(t *testing.T) {
	t.Run("returns 201 with credit code and customer email", func(t *testing.T) {
		svc := new(MockCreditService)
		customerSvc := new(MockCustomerService)
		saved := testCredit()
		svc.On("Save", mock.Anything, mock.AnythingOfType("*credit.Credit")).Return(saved, nil)
		customerSvc.On("GetCustomer", mock.Anything, int64(1)).Return(testCustomer(), nil)
		router := newCreditRouter(svc, customerSvc)

		body, _ := json.Marshal(validSaveCreditBody())
		req := httptest.NewRequest(http.MethodPost, "/api/credits", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CreditSavedResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, saved.CreditCode.String(), resp.CreditCode)
		assert.Equal(t, "camila@email.com", resp.EmailCustomer)
		assert.Equal(t, fmt.Sprintf("Credit %s - Customer camila@email.com saved!", saved.CreditCode), resp.Message)
		svc.AssertExpectations(t)
		customerSvc.AssertExpectations(t)
	})

	t.Run("returns 400 with violation list when installments exceed the limit", func(t *testing.T) {
		svc := new(MockCreditService)
		router := newCreditRouter(svc, new(MockCustomerService))

		payload := validSaveCreditBody()
		payload["numberOfInstallments"] = 49
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/credits", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "ValidationException", resp.Exception)
		assert.NotEmpty(t, resp.Details)
		svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("returns 400 for an unparseable installment date", func(t *testing.T) {
		svc := new(MockCreditService)
		router := newCreditRouter(svc, new(MockCustomerService))

		payload := validSaveCreditBody()
		payload["dayFirstInstallment"] = "13/04/2026"
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/credits", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "ValidationException", resp.Exception)
		svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("returns 400 business failure for an unknown customer", func(t *testing.T) {
		svc := new(MockCreditService)
		svc.On("Save", mock.Anything, mock.Anything).Return(nil, apperrors.NewBusinessError("Id 1 not found"))
		router := newCreditRouter(svc, new(MockCustomerService))

		body, _ := json.Marshal(validSaveCreditBody())
		req := httptest.NewRequest(http.MethodPost, "/api/credits", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "Bad Request ! Consult the documentation", resp.Title)
		assert.Equal(t, "BusinessException", resp.Exception)
		assert.Equal(t, []string{"Id 1 not found"}, resp.Details)
	})
}

func TestListCreditsByCustomerHandler(t *testing.T) {
	t.Run("returns 200 with summaries omitting internal fields", func(t *testing.T) {
		svc := new(MockCreditService)
		first := testCredit()
		second := testCredit()
		svc.On("FindAllByCustomer", mock.Anything, int64(1)).Return([]credit.Credit{*first, *second}, nil)
		router := newCreditRouter(svc, new(MockCustomerService))

		req := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var raw []map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
		assert.Len(t, raw, 2)
		assert.Equal(t, first.CreditCode.String(), raw[0]["creditCode"])
		assert.Equal(t, "10000.00", raw[0]["creditValue"])
		assert.Equal(t, float64(12), raw[0]["numberOfInstallments"])
		assert.Equal(t, float64(1), raw[0]["customerId"])
		assert.NotContains(t, raw[0], "id")
		assert.NotContains(t, raw[0], "dayFirstInstallment")
	})

	t.Run("returns 200 with an empty array when the customer has no credits", func(t *testing.T) {
		svc := new(MockCreditService)
		svc.On("FindAllByCustomer", mock.Anything, int64(7)).Return([]credit.Credit{}, nil)
		router := newCreditRouter(svc, new(MockCustomerService))

		req := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=7", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("returns 400 when customerId query parameter is missing", func(t *testing.T) {
		svc := new(MockCreditService)
		router := newCreditRouter(svc, new(MockCustomerService))

		req := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "ValidationException", resp.Exception)
		svc.AssertNotCalled(t, "FindAllByCustomer", mock.Anything, mock.Anything)
	})
}

func TestGetCreditByCodeHandler(t *testing.T) {
	t.Run("returns 200 with the enriched credit view", func(t *testing.T) {
		svc := new(MockCreditService)
		customerSvc := new(MockCustomerService)
		stored := testCredit()
		svc.On("FindByCreditCode", mock.Anything, int64(1), stored.CreditCode).Return(stored, nil)
		customerSvc.On("GetCustomer", mock.Anything, int64(1)).Return(testCustomer(), nil)
		router := newCreditRouter(svc, customerSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/credits/"+stored.CreditCode.String()+"?customerId=1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
		assert.Equal(t, stored.CreditCode.String(), raw["creditCode"])
		assert.Equal(t, "IN_PROGRESS", raw["status"])
		assert.Equal(t, "camila@email.com", raw["emailCustomer"])
		assert.Equal(t, "1000.00", raw["incomeCustomer"])
		assert.Equal(t, float64(12), raw["numberOfInstallment"])
	})

	t.Run("returns 400 business failure when the credit belongs to another customer", func(t *testing.T) {
		svc := new(MockCreditService)
		code := uuid.New()
		msg := fmt.Sprintf("Credit code %s not found for customer 2", code)
		svc.On("FindByCreditCode", mock.Anything, int64(2), code).Return(nil, apperrors.NewBusinessError(msg))
		router := newCreditRouter(svc, new(MockCustomerService))

		req := httptest.NewRequest(http.MethodGet, "/api/credits/"+code.String()+"?customerId=2", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "BusinessException", resp.Exception)
		assert.Equal(t, []string{msg}, resp.Details)
	})

	t.Run("returns 400 for a malformed credit code", func(t *testing.T) {
		svc := new(MockCreditService)
		router := newCreditRouter(svc, new(MockCustomerService))

		req := httptest.NewRequest(http.MethodGet, "/api/credits/not-a-uuid?customerId=1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "ValidationException", resp.Exception)
		svc.AssertNotCalled(t, "FindByCreditCode", mock.Anything, mock.Anything, mock.Anything)
	})
}
