package checkout

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ovrlab/overlay-hub/internal/models"
	"github.com/ovrlab/overlay-hub/internal/services/coupon"
)

type VerifierMock struct{ mock.Mock }

func (m *VerifierMock) Verify(ctx context.Context, code string, purchase models.CouponContext) (*models.Discount, error) {
	args := m.Called(ctx, code, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discount), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_ComputeOrderAmount(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		code       string
		setupMocks func(v *VerifierMock)
		want       int64
		wantErr    error
	}{
		{
			name:       "без купона сумма конвертируется в минорные единицы",
			base:       1000,
			code:       "",
			setupMocks: func(_ *VerifierMock) {},
			want:       100000,
		},
		{
			name: "с процентным купоном",
			base: 1000,
			code: "PLAN50",
			setupMocks: func(v *VerifierMock) {
				v.On("Verify", mock.Anything, "PLAN50", mock.Anything).
					Return(&models.Discount{Type: models.DiscountTypePercent, Value: 50, Code: "PLAN50"}, nil).Once()
			},
			want: 50000,
		},
		{
			name: "ошибка проверки купона проходит без изменений",
			base: 1000,
			code: "BAD",
			setupMocks: func(v *VerifierMock) {
				v.On("Verify", mock.Anything, "BAD", mock.Anything).
					Return(nil, coupon.ErrNotApplicable).Once()
			},
			wantErr: coupon.ErrNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(VerifierMock)
			tt.setupMocks(verifier)

			svc := New(verifier, newNoopLogger())

			got, err := svc.ComputeOrderAmount(context.Background(), tt.base, tt.code, models.CouponContext{PlanID: "pro_6m"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			verifier.AssertExpectations(t)
		})
	}
}
