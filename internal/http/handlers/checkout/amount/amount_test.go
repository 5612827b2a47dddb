package amount

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ovrlab/overlay-hub/internal/models"
	"github.com/ovrlab/overlay-hub/internal/services/coupon"
)

// MockService реализует интерфейс amount.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ComputeOrderAmount(ctx context.Context, basePriceMajor float64, code string, purchase models.CouponContext) (int64, error) {
	args := m.Called(ctx, basePriceMajor, code, purchase)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAmountHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "сумма без купона",
			requestBody: models.DummyCheckoutAmount{BasePrice: 1000, PlanID: "pro_6m"},
			setupMock: func(m *MockService) {
				m.On("ComputeOrderAmount", mock.Anything, float64(1000), "",
					models.CouponContext{PlanID: "pro_6m"}).Return(int64(100000), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"amount_minor":100000`,
		},
		{
			name:        "сумма с купоном",
			requestBody: models.DummyCheckoutAmount{BasePrice: 1000, Code: "PLAN50", PlanID: "pro_6m"},
			setupMock: func(m *MockService) {
				m.On("ComputeOrderAmount", mock.Anything, float64(1000), "PLAN50",
					models.CouponContext{PlanID: "pro_6m"}).Return(int64(50000), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"amount_minor":50000`,
		},
		{
			name:           "отсутствует базовая цена",
			requestBody:    models.DummyCheckoutAmount{Code: "PLAN50"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field BasePrice is a required field`,
		},
		{
			name:        "неизвестный код купона",
			requestBody: models.DummyCheckoutAmount{BasePrice: 1000, Code: "NOPE"},
			setupMock: func(m *MockService) {
				m.On("ComputeOrderAmount", mock.Anything, float64(1000), "NOPE",
					models.CouponContext{}).Return(int64(0), coupon.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"invalid coupon code"}`,
		},
		{
			name:        "купон не применим",
			requestBody: models.DummyCheckoutAmount{BasePrice: 1000, Code: "OREX20"},
			setupMock: func(m *MockService) {
				m.On("ComputeOrderAmount", mock.Anything, float64(1000), "OREX20",
					models.CouponContext{}).Return(int64(0), coupon.ErrNotApplicable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"coupon is not applicable to this purchase"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			body, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/checkout/amount", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
