package domain

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

func (m *BillingMock) GetClientsDomains(ctx context.Context, clientID string) ([]models.Domain, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Domain), args.Error(1)
}

func (m *BillingMock) GetClientsDomainByID(ctx context.Context, clientID, domainID string) (*models.Domain, error) {
	args := m.Called(ctx, clientID, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Domain), args.Error(1)
}

func (m *BillingMock) UpdateNameservers(ctx context.Context, clientID, domainID string, nameservers []string) error {
	return m.Called(ctx, clientID, domainID, nameservers).Error(0)
}

func (m *BillingMock) SetRegistrarLock(ctx context.Context, clientID, domainID string, locked bool) (bool, error) {
	args := m.Called(ctx, clientID, domainID, locked)
	return args.Bool(0), args.Error(1)
}

func (m *BillingMock) CheckDomain(ctx context.Context, domain string) (*models.DomainAvailability, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DomainAvailability), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_UpdateNameservers(t *testing.T) {
	tests := []struct {
		name        string
		nameservers []string
		setupMock   func(m *BillingMock)
		wantErr     error
	}{
		{
			name:        "успешная замена двух NS",
			nameservers: []string{"ns1.example.com", "ns2.example.com"},
			setupMock: func(m *BillingMock) {
				m.On("UpdateNameservers", mock.Anything, "1", "20",
					[]string{"ns1.example.com", "ns2.example.com"}).Return(nil).Once()
			},
		},
		{
			name:        "одна NS-запись отклоняется",
			nameservers: []string{"ns1.example.com"},
			setupMock:   func(_ *BillingMock) {},
			wantErr:     models.ErrValidation,
		},
		{
			name: "шесть NS-записей отклоняются",
			nameservers: []string{
				"ns1.example.com", "ns2.example.com", "ns3.example.com",
				"ns4.example.com", "ns5.example.com", "ns6.example.com",
			},
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:        "пустая строка среди записей",
			nameservers: []string{"ns1.example.com", "  "},
			setupMock:   func(_ *BillingMock) {},
			wantErr:     models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billingMock := new(BillingMock)
			tt.setupMock(billingMock)

			svc := New(billingMock, newNoopLogger())
			err := svc.UpdateNameservers(context.Background(), "1", "20", tt.nameservers)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				// Невалидный список не доходит до биллинг-системы.
				billingMock.AssertNotCalled(t, "UpdateNameservers",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			billingMock.AssertExpectations(t)
		})
	}
}

func TestService_Check(t *testing.T) {
	tests := []struct {
		name      string
		domain    string
		setupMock func(m *BillingMock)
		wantErr   error
	}{
		{
			name:   "корректное имя",
			domain: "example.com",
			setupMock: func(m *BillingMock) {
				m.On("CheckDomain", mock.Anything, "example.com").
					Return(&models.DomainAvailability{Domain: "example.com", Available: true, Status: "available"}, nil).Once()
			},
		},
		{
			name:   "имя приводится к нижнему регистру",
			domain: "  Example.COM ",
			setupMock: func(m *BillingMock) {
				m.On("CheckDomain", mock.Anything, "example.com").
					Return(&models.DomainAvailability{Domain: "example.com", Available: false, Status: "registered"}, nil).Once()
			},
		},
		{
			name:      "имя без зоны отклоняется",
			domain:    "example",
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:      "мусор отклоняется",
			domain:    "not a domain!",
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billingMock := new(BillingMock)
			tt.setupMock(billingMock)

			svc := New(billingMock, newNoopLogger())
			res, err := svc.Check(context.Background(), tt.domain)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				billingMock.AssertNotCalled(t, "CheckDomain", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "example.com", res.Domain)
			}
			billingMock.AssertExpectations(t)
		})
	}
}

func TestService_SetLock(t *testing.T) {
	billingMock := new(BillingMock)
	billingMock.On("SetRegistrarLock", mock.Anything, "1", "20", true).Return(true, nil).Once()

	svc := New(billingMock, newNoopLogger())
	newState, err := svc.SetLock(context.Background(), "1", "20", true)

	require.NoError(t, err)
	assert.True(t, newState)
	billingMock.AssertExpectations(t)
}
