package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

// MockService реализует интерфейс verify.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Verify(ctx context.Context, code string, purchase models.CouponContext) (*models.Discount, error) {
	args := m.Called(ctx, code, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discount), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerifyHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "применимый купон",
			requestBody: models.DummyVerifyCoupon{Code: "OREX20", LayoutID: "orex"},
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "OREX20", models.CouponContext{LayoutID: "orex"}).
					Return(&models.Discount{Type: models.DiscountTypePercent, Value: 20, Code: "OREX20"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"type":"PERCENT"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "отсутствует код купона",
			requestBody:    models.DummyVerifyCoupon{LayoutID: "orex"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Code is a required field`,
		},
		{
			name:        "неизвестный код",
			requestBody: models.DummyVerifyCoupon{Code: "NOPE"},
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "NOPE", models.CouponContext{}).
					Return(nil, coupon.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"invalid coupon code"}`,
		},
		{
			name:        "просроченный купон",
			requestBody: models.DummyVerifyCoupon{Code: "OLD"},
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "OLD", models.CouponContext{}).
					Return(nil, coupon.ErrExpired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"coupon expired"}`,
		},
		{
			name:        "исчерпанный купон",
			requestBody: models.DummyVerifyCoupon{Code: "USEDUP"},
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "USEDUP", models.CouponContext{}).
					Return(nil, coupon.ErrLimitReached)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"coupon usage limit reached"}`,
		},
		{
			name:        "купон не применим к покупке",
			requestBody: models.DummyVerifyCoupon{Code: "OREX20", PlanID: "pro_6m"},
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "OREX20", models.CouponContext{PlanID: "pro_6m"}).
					Return(nil, coupon.ErrNotApplicable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"coupon is not applicable to this purchase"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: models.DummyVerifyCoupon{Code: "OREX20"},
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "OREX20", models.CouponContext{}).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not verify coupon"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/coupons/verify", bytes.NewReader(body))
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
