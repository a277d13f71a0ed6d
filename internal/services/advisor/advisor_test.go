package advisor

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

type CompleterMock struct{ mock.Mock }

func (m *CompleterMock) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) GetProducts(ctx context.Context, groupID string) ([]models.Product, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

type ServicesMock struct{ mock.Mock }

func (m *ServicesMock) GetClientsProducts(ctx context.Context, clientID string) ([]models.Service, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

var testCatalog = []models.Product{
	{ID: "1", Name: "Starter Hosting", GroupName: "Shared Hosting"},
	{ID: "2", Name: "Business Hosting", GroupName: "Shared Hosting"},
	{ID: "3", Name: "VPS Basic", GroupName: "VPS"},
}

func TestService_Recommend(t *testing.T) {
	req := models.RecommendRequest{
		SiteType:        "blog",
		ExpectedTraffic: "low",
		TechLevel:       "beginner",
		Budget:          "minimal",
	}

	tests := []struct {
		name        string
		modelOutput string
		modelErr    error
		wantID      string
		wantErr     error
	}{
		{
			name:        "модель выбрала продукт из каталога",
			modelOutput: `{"product_id": "1", "reason": "A starter plan covers a low-traffic blog."}`,
			wantID:      "1",
		},
		{
			name:        "продукт вне каталога отклоняется",
			modelOutput: `{"product_id": "999", "reason": "Sounds good."}`,
			wantErr:     models.ErrDownstream,
		},
		{
			name:        "невалидный JSON от модели",
			modelOutput: `starter hosting is the best choice`,
			wantErr:     models.ErrDownstream,
		},
		{
			name:        "пустое обоснование отклоняется",
			modelOutput: `{"product_id": "1", "reason": ""}`,
			wantErr:     models.ErrDownstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogMock := new(CatalogMock)
			catalogMock.On("GetProducts", mock.Anything, "").Return(testCatalog, nil).Once()

			completerMock := new(CompleterMock)
			completerMock.On("Complete", mock.Anything, mock.Anything, mock.Anything).
				Return(tt.modelOutput, tt.modelErr).Once()

			svc := New(completerMock, catalogMock, new(ServicesMock), newNoopLogger())
			rec, err := svc.Recommend(context.Background(), req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, rec.ProductID)
				assert.Equal(t, "Starter Hosting", rec.ProductName)
				assert.NotEmpty(t, rec.Reason)
			}
			catalogMock.AssertExpectations(t)
			completerMock.AssertExpectations(t)
		})
	}
}

func TestService_Recommend_EmptyCatalog(t *testing.T) {
	catalogMock := new(CatalogMock)
	catalogMock.On("GetProducts", mock.Anything, "").Return([]models.Product{}, nil).Once()
	completerMock := new(CompleterMock)

	svc := New(completerMock, catalogMock, new(ServicesMock), newNoopLogger())
	_, err := svc.Recommend(context.Background(), models.RecommendRequest{
		SiteType: "blog", ExpectedTraffic: "low", TechLevel: "beginner", Budget: "minimal",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDownstream)
	// Модель не вызывается без каталога.
	completerMock.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Summary(t *testing.T) {
	t.Run("аккаунт без услуг получает приветственную пару без вызова модели", func(t *testing.T) {
		servicesMock := new(ServicesMock)
		servicesMock.On("GetClientsProducts", mock.Anything, "1").Return([]models.Service{}, nil).Once()
		completerMock := new(CompleterMock)
		catalogMock := new(CatalogMock)

		svc := New(completerMock, catalogMock, servicesMock, newNoopLogger())
		res, err := svc.Summary(context.Background(), "1")

		require.NoError(t, err)
		assert.Equal(t, WelcomeSummary, res.Summary)
		assert.Equal(t, WelcomeUpsell, res.Upsell)
		completerMock.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
		catalogMock.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
	})

	t.Run("аккаунт с услугами получает резюме от модели", func(t *testing.T) {
		servicesMock := new(ServicesMock)
		servicesMock.On("GetClientsProducts", mock.Anything, "1").
			Return([]models.Service{{ID: "10", Name: "Starter Hosting"}}, nil).Once()
		catalogMock := new(CatalogMock)
		catalogMock.On("GetProducts", mock.Anything, "").Return(testCatalog, nil).Once()
		completerMock := new(CompleterMock)
		completerMock.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(`{"summary": "One starter plan, all good.", "upsell": "Consider VPS Basic for more control."}`, nil).Once()

		svc := New(completerMock, catalogMock, servicesMock, newNoopLogger())
		res, err := svc.Summary(context.Background(), "1")

		require.NoError(t, err)
		assert.Equal(t, "One starter plan, all good.", res.Summary)
		assert.Equal(t, "Consider VPS Basic for more control.", res.Upsell)
		completerMock.AssertExpectations(t)
	})

	t.Run("повреждённый ответ модели — ошибка вниз по течению", func(t *testing.T) {
		servicesMock := new(ServicesMock)
		servicesMock.On("GetClientsProducts", mock.Anything, "1").
			Return([]models.Service{{ID: "10", Name: "Starter Hosting"}}, nil).Once()
		catalogMock := new(CatalogMock)
		catalogMock.On("GetProducts", mock.Anything, "").Return(testCatalog, nil).Once()
		completerMock := new(CompleterMock)
		completerMock.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(`not json`, nil).Once()

		svc := New(completerMock, catalogMock, servicesMock, newNoopLogger())
		_, err := svc.Summary(context.Background(), "1")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrDownstream)
	})
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Fast shared hosting", stripTags("<b>Fast</b> shared <i>hosting</i>"))
	assert.Equal(t, "plain text", stripTags("plain text"))
	assert.Equal(t, "", stripTags("<br/>"))
}
