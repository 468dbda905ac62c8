package status

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/finance-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// MockService реализует интерфейс status.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Status(ctx context.Context, userID int64) ([]*models.BudgetStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BudgetStatus), args.Error(1)
}

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         int64
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное состояние бюджетов",
			userID: 7,
			setupMock: func(m *MockService) {
				m.On("Status", mock.Anything, int64(7)).Return([]*models.BudgetStatus{
					{
						Category:  "groceries",
						Limit:     decimal.RequireFromString("400"),
						Spent:     decimal.RequireFromString("150.25"),
						Remaining: decimal.RequireFromString("249.75"),
					},
					{
						Category:  "dining",
						Limit:     decimal.RequireFromString("50"),
						Spent:     decimal.RequireFromString("72.3"),
						Remaining: decimal.RequireFromString("-22.3"),
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"budgets":[
				{"category":"groceries","limit":"400","spent":"150.25","remaining":"249.75"},
				{"category":"dining","limit":"50","spent":"72.3","remaining":"-22.3"}
			]}}`,
		},
		{
			name:   "нет бюджетов",
			userID: 7,
			setupMock: func(m *MockService) {
				m.On("Status", mock.Anything, int64(7)).Return([]*models.BudgetStatus{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"budgets":[]}}`,
		},
		{
			name:           "нет авторизации",
			userID:         0,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:   "ошибка сервиса",
			userID: 7,
			setupMock: func(m *MockService) {
				m.On("Status", mock.Anything, int64(7)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not compute budget status"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/status", nil)

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.userID != 0 {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
