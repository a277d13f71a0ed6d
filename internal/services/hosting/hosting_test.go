package hosting

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

type BillingMock struct{ mock.Mock }

func (m *BillingMock) GetClientsProducts(ctx context.Context, clientID string) ([]models.Service, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *BillingMock) GetClientsProductByID(ctx context.Context, clientID, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, clientID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *BillingMock) GetServiceSSO(ctx context.Context, clientID, serviceID string) (string, error) {
	args := m.Called(ctx, clientID, serviceID)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_List(t *testing.T) {
	billingMock := new(BillingMock)
	billingMock.On("GetClientsProducts", mock.Anything, "1").Return([]models.Service{
		{
			ID:     "10",
			Name:   "Starter Hosting",
			Status: models.ServiceStatusActive,
			Usage:  &models.ServiceUsage{DiskUsed: 2500, DiskLimit: 10000, BwUsed: 100, BwLimit: 999999},
		},
		{ID: "11", Name: "VPS Basic", Status: models.ServiceStatusSuspended},
	}, nil).Once()

	svc := New(billingMock, newNoopLogger())
	services, err := svc.List(context.Background(), "1")

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.InDelta(t, 25.0, services[0].Usage.DiskPercent, 0.001)
	assert.Equal(t, "2500 MB / 10000 MB", services[0].Usage.DiskDisplay)
	assert.InDelta(t, 100.0, services[0].Usage.BwPercent, 0.001)
	assert.Equal(t, "100 MB / Unlimited", services[0].Usage.BwDisplay)
	assert.Nil(t, services[1].Usage)
	billingMock.AssertExpectations(t)
}

func TestService_Read(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *BillingMock)
		wantSSO   string
		wantErr   error
	}{
		{
			name: "активная услуга получает SSO-ссылку",
			setupMock: func(m *BillingMock) {
				m.On("GetClientsProductByID", mock.Anything, "1", "10").
					Return(&models.Service{ID: "10", Status: models.ServiceStatusActive}, nil).Once()
				m.On("GetServiceSSO", mock.Anything, "1", "10").
					Return("https://panel.example.com/sso?token=abc", nil).Once()
			},
			wantSSO: "https://panel.example.com/sso?token=abc",
		},
		{
			name: "ошибка SSO не ломает карточку",
			setupMock: func(m *BillingMock) {
				m.On("GetClientsProductByID", mock.Anything, "1", "10").
					Return(&models.Service{ID: "10", Status: models.ServiceStatusActive}, nil).Once()
				m.On("GetServiceSSO", mock.Anything, "1", "10").
					Return("", assert.AnError).Once()
			},
			wantSSO: "",
		},
		{
			name: "приостановленная услуга без SSO-запроса",
			setupMock: func(m *BillingMock) {
				m.On("GetClientsProductByID", mock.Anything, "1", "10").
					Return(&models.Service{ID: "10", Status: models.ServiceStatusSuspended}, nil).Once()
			},
			wantSSO: "",
		},
		{
			name: "чужая услуга не видна",
			setupMock: func(m *BillingMock) {
				m.On("GetClientsProductByID", mock.Anything, "1", "10").
					Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billingMock := new(BillingMock)
			tt.setupMock(billingMock)

			svc := New(billingMock, newNoopLogger())
			res, err := svc.Read(context.Background(), "1", "10")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantSSO, res.SSOURL)
			}
			billingMock.AssertExpectations(t)
			if tt.name == "приостановленная услуга без SSO-запроса" {
				billingMock.AssertNotCalled(t, "GetServiceSSO", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
