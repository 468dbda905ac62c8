package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/finance-ledger/internal/models"
	services "github.com/magabrotheeeer/finance-ledger/internal/services/budget"
)

// Мок для BudgetRepository
type BudgetRepoMock struct {
	mock.Mock
}

func (m *BudgetRepoMock) UpsertBudget(ctx context.Context, budget models.Budget) (int64, error) {
	args := m.Called(ctx, budget)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BudgetRepoMock) ListBudgetStatuses(ctx context.Context, userID int64, from, to time.Time) ([]*models.BudgetStatus, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BudgetStatus), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestBudgetService_SetLimit(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyBudget
		setupMocks func(r *BudgetRepoMock)
		wantID     int64
		wantErr    error
	}{
		{
			name: "successful set limit",
			req:  models.DummyBudget{Category: "groceries", MonthlyLimit: "400.00"},
			setupMocks: func(r *BudgetRepoMock) {
				r.On("UpsertBudget", mock.Anything, mock.MatchedBy(func(b models.Budget) bool {
					return b.UserID == 7 &&
						b.Category == "groceries" &&
						b.MonthlyLimit.Equal(decimal.RequireFromString("400.00"))
				})).Return(int64(3), nil).Once()
			},
			wantID: 3,
		},
		{
			name: "replacing an existing limit returns the same row",
			req:  models.DummyBudget{Category: "groceries", MonthlyLimit: "250.00"},
			setupMocks: func(r *BudgetRepoMock) {
				r.On("UpsertBudget", mock.Anything, mock.Anything).Return(int64(3), nil).Once()
			},
			wantID: 3,
		},
		{
			name:       "non-positive limit",
			req:        models.DummyBudget{Category: "groceries", MonthlyLimit: "0"},
			setupMocks: func(_ *BudgetRepoMock) {},
			wantErr:    models.ErrValidation,
		},
		{
			name:       "malformed amount",
			req:        models.DummyBudget{Category: "groceries", MonthlyLimit: "abc"},
			setupMocks: func(_ *BudgetRepoMock) {},
			wantErr:    models.ErrValidation,
		},
		{
			name: "repository error",
			req:  models.DummyBudget{Category: "groceries", MonthlyLimit: "400.00"},
			setupMocks: func(r *BudgetRepoMock) {
				r.On("UpsertBudget", mock.Anything, mock.Anything).
					Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(BudgetRepoMock)
			svc := services.NewBudgetService(repo, newNoopLogger())

			tt.setupMocks(repo)

			got, err := svc.SetLimit(context.Background(), 7, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestBudgetService_Status(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *BudgetRepoMock)
		want       map[string]string
		wantErr    bool
	}{
		{
			name: "remaining is limit minus spent",
			setupMocks: func(r *BudgetRepoMock) {
				statuses := []*models.BudgetStatus{
					{
						Category: "groceries",
						Limit:    decimal.RequireFromString("400.00"),
						Spent:    decimal.RequireFromString("150.25"),
					},
					{
						Category: "transport",
						Limit:    decimal.RequireFromString("100.00"),
						Spent:    decimal.Zero,
					},
				}
				r.On("ListBudgetStatuses", mock.Anything, int64(7), mock.Anything, mock.Anything).
					Return(statuses, nil).Once()
			},
			want: map[string]string{
				"groceries": "249.75",
				"transport": "100",
			},
		},
		{
			name: "overspent category yields negative remaining",
			setupMocks: func(r *BudgetRepoMock) {
				statuses := []*models.BudgetStatus{
					{
						Category: "dining",
						Limit:    decimal.RequireFromString("50.00"),
						Spent:    decimal.RequireFromString("72.30"),
					},
				}
				r.On("ListBudgetStatuses", mock.Anything, int64(7), mock.Anything, mock.Anything).
					Return(statuses, nil).Once()
			},
			want: map[string]string{
				"dining": "-22.3",
			},
		},
		{
			name: "no budgets",
			setupMocks: func(r *BudgetRepoMock) {
				r.On("ListBudgetStatuses", mock.Anything, int64(7), mock.Anything, mock.Anything).
					Return([]*models.BudgetStatus{}, nil).Once()
			},
			want: map[string]string{},
		},
		{
			name: "repository error",
			setupMocks: func(r *BudgetRepoMock) {
				r.On("ListBudgetStatuses", mock.Anything, int64(7), mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(BudgetRepoMock)
			svc := services.NewBudgetService(repo, newNoopLogger())

			tt.setupMocks(repo)

			got, err := svc.Status(context.Background(), 7)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, len(tt.want))
				for _, st := range got {
					expected, ok := tt.want[st.Category]
					require.True(t, ok, "unexpected category %q", st.Category)
					assert.True(t, st.Remaining.Equal(decimal.RequireFromString(expected)),
						"remaining for %q: want %s, got %s", st.Category, expected, st.Remaining)
				}
			}

			repo.AssertExpectations(t)
		})
	}
}

// Границы текущего месяца передаются в хранилище полуоткрытым интервалом.
func TestBudgetService_Status_MonthWindow(t *testing.T) {
	repo := new(BudgetRepoMock)
	svc := services.NewBudgetService(repo, newNoopLogger())

	now := time.Now().UTC()
	wantFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	wantTo := wantFrom.AddDate(0, 1, 0)

	repo.On("ListBudgetStatuses", mock.Anything, int64(7), wantFrom, wantTo).
		Return([]*models.BudgetStatus{}, nil).Once()

	_, err := svc.Status(context.Background(), 7)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}
