package billing

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

type BillingMock struct{ mock.Mock }

func (m *BillingMock) GetInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *BillingMock) GetProducts(ctx context.Context, groupID string) ([]models.Product, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *BillingMock) GetProductGroups(ctx context.Context) ([]models.ProductGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductGroup), args.Error(1)
}

func (m *BillingMock) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentMethod), args.Error(1)
}

func (m *BillingMock) AddFunds(ctx context.Context, clientID string, amount float64, method string) (*models.FundsResult, error) {
	args := m.Called(ctx, clientID, amount, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FundsResult), args.Error(1)
}

func (m *BillingMock) AddDomainOrder(ctx context.Context, clientID string, req models.DomainOrderRequest) (*models.OrderResult, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResult), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_AddFunds(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		method    string
		setupMock func(m *BillingMock)
		wantErr   error
	}{
		{
			name:   "успешное пополнение",
			amount: 25,
			method: "stripe",
			setupMock: func(m *BillingMock) {
				m.On("AddFunds", mock.Anything, "1", 25.0, "stripe").
					Return(&models.FundsResult{InvoiceID: "100", RedirectURL: "https://pay.example.com/100"}, nil).Once()
			},
		},
		{
			name:      "нулевая сумма отклоняется",
			amount:    0,
			method:    "stripe",
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:      "отрицательная сумма отклоняется",
			amount:    -5,
			method:    "stripe",
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:      "пустой платёжный модуль отклоняется",
			amount:    25,
			method:    "  ",
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billingMock := new(BillingMock)
			tt.setupMock(billingMock)

			svc := New(billingMock, nil, newNoopLogger())
			res, err := svc.AddFunds(context.Background(), "1", tt.amount, tt.method)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				// Счёт не выставляется при невалидных аргументах.
				billingMock.AssertNotCalled(t, "AddFunds",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "100", res.InvoiceID)
			}
			billingMock.AssertExpectations(t)
		})
	}
}

func TestService_Products_CacheHit(t *testing.T) {
	cached := Catalog{
		Products: []models.Product{{ID: "1", Name: "Starter Hosting"}},
		Groups:   []models.ProductGroup{{ID: "1", Name: "Shared Hosting"}},
	}

	billingMock := new(BillingMock)
	cacheMock := new(CacheMock)
	cacheMock.On("Get", mock.Anything, "catalog:products:", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*Catalog) = cached
		}).Return(true, nil).Once()

	svc := New(billingMock, cacheMock, newNoopLogger())
	catalog, err := svc.Products(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, cached.Products, catalog.Products)
	// При попадании в кеш биллинг-система не вызывается.
	billingMock.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
	cacheMock.AssertExpectations(t)
}

func TestService_Products_GroupsFallback(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Starter Hosting", GroupID: "1", GroupName: "Shared Hosting"},
		{ID: "2", Name: "Business Hosting", GroupID: "1", GroupName: "Shared Hosting"},
		{ID: "3", Name: "VPS Basic", GroupID: "2", GroupName: "VPS"},
	}

	billingMock := new(BillingMock)
	billingMock.On("GetProducts", mock.Anything, "").Return(products, nil).Once()
	billingMock.On("GetProductGroups", mock.Anything).Return([]models.ProductGroup{}, nil).Once()

	svc := New(billingMock, nil, newNoopLogger())
	catalog, err := svc.Products(context.Background(), "")

	require.NoError(t, err)
	// Пустой ответ группирующего вызова не ошибка: группы выводятся из продуктов.
	assert.Equal(t, []models.ProductGroup{
		{ID: "1", Name: "Shared Hosting"},
		{ID: "2", Name: "VPS"},
	}, catalog.Groups)
	assert.Len(t, catalog.ByGroup["Shared Hosting"], 2)
	assert.Len(t, catalog.ByGroup["VPS"], 1)
	billingMock.AssertExpectations(t)
}

func TestService_Products_CacheErrorDegrades(t *testing.T) {
	products := []models.Product{{ID: "1", Name: "Starter Hosting", GroupID: "1", GroupName: "Shared Hosting"}}

	billingMock := new(BillingMock)
	billingMock.On("GetProducts", mock.Anything, "").Return(products, nil).Once()
	billingMock.On("GetProductGroups", mock.Anything).
		Return([]models.ProductGroup{{ID: "1", Name: "Shared Hosting"}}, nil).Once()

	cacheMock := new(CacheMock)
	cacheMock.On("Get", mock.Anything, "catalog:products:", mock.Anything).
		Return(false, assert.AnError).Once()
	cacheMock.On("Set", mock.Anything, "catalog:products:", mock.Anything, catalogTTL).
		Return(assert.AnError).Once()

	svc := New(billingMock, cacheMock, newNoopLogger())
	catalog, err := svc.Products(context.Background(), "")

	// Ошибки кеша наружу не уходят.
	require.NoError(t, err)
	assert.Equal(t, products, catalog.Products)
	billingMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestService_OrderDomain(t *testing.T) {
	validReq := models.DomainOrderRequest{
		Domain:        "example.com",
		Period:        1,
		PaymentMethod: "stripe",
	}

	tests := []struct {
		name      string
		req       models.DomainOrderRequest
		setupMock func(m *BillingMock)
		wantErr   error
	}{
		{
			name: "успешный заказ",
			req:  validReq,
			setupMock: func(m *BillingMock) {
				m.On("AddDomainOrder", mock.Anything, "1", validReq).
					Return(&models.OrderResult{OrderID: "55", InvoiceID: "101"}, nil).Once()
			},
		},
		{
			name:      "пустое имя домена",
			req:       models.DomainOrderRequest{Period: 1, PaymentMethod: "stripe"},
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:      "нулевой период",
			req:       models.DomainOrderRequest{Domain: "example.com", PaymentMethod: "stripe"},
			setupMock: func(_ *BillingMock) {},
			wantErr:   models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billingMock := new(BillingMock)
			tt.setupMock(billingMock)

			svc := New(billingMock, nil, newNoopLogger())
			res, err := svc.OrderDomain(context.Background(), "1", tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				billingMock.AssertNotCalled(t, "AddDomainOrder", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "55", res.OrderID)
			}
			billingMock.AssertExpectations(t)
		})
	}
}

func TestDeriveGroups(t *testing.T) {
	products := []models.Product{
		{ID: "1", GroupID: "1", GroupName: "Shared Hosting"},
		{ID: "2", GroupID: "2", GroupName: "VPS"},
		{ID: "3", GroupID: "1", GroupName: "Shared Hosting"},
		{ID: "4"},
	}

	groups := DeriveGroups(products)

	// Порядок первого появления, без дублей и пустых имён.
	assert.Equal(t, []models.ProductGroup{
		{ID: "1", Name: "Shared Hosting"},
		{ID: "2", Name: "VPS"},
	}, groups)
}
