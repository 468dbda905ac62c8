package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/finance-ledger/internal/models"
	services "github.com/magabrotheeeer/finance-ledger/internal/services/admin"
)

// Мок для AdminRepository
type AdminRepoMock struct {
	mock.Mock
}

func (m *AdminRepoMock) ListUsers(ctx context.Context) ([]*models.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserInfo), args.Error(1)
}

func (m *AdminRepoMock) CountTransactions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestAdminService_Overview(t *testing.T) {
	sampleUsers := []*models.UserInfo{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}

	tests := []struct {
		name       string
		setupMocks func(r *AdminRepoMock)
		want       *models.AdminOverview
		wantErr    bool
	}{
		{
			name: "successful overview",
			setupMocks: func(r *AdminRepoMock) {
				r.On("ListUsers", mock.Anything).Return(sampleUsers, nil).Once()
				r.On("CountTransactions", mock.Anything).Return(int64(57), nil).Once()
			},
			want: &models.AdminOverview{
				Users:             sampleUsers,
				TotalTransactions: 57,
			},
		},
		{
			name: "empty system",
			setupMocks: func(r *AdminRepoMock) {
				r.On("ListUsers", mock.Anything).Return([]*models.UserInfo{}, nil).Once()
				r.On("CountTransactions", mock.Anything).Return(int64(0), nil).Once()
			},
			want: &models.AdminOverview{
				Users:             []*models.UserInfo{},
				TotalTransactions: 0,
			},
		},
		{
			name: "users listing error",
			setupMocks: func(r *AdminRepoMock) {
				r.On("ListUsers", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
		{
			name: "count error",
			setupMocks: func(r *AdminRepoMock) {
				r.On("ListUsers", mock.Anything).Return(sampleUsers, nil).Once()
				r.On("CountTransactions", mock.Anything).Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(AdminRepoMock)
			svc := services.NewAdminService(repo, newNoopLogger())

			tt.setupMocks(repo)

			got, err := svc.Overview(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			repo.AssertExpectations(t)
		})
	}
}
