package open

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/hosting-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// MockService реализует интерфейс open.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Open(ctx context.Context, clientID string, req models.OpenTicketRequest) (*models.Ticket, error) {
	args := m.Called(ctx, clientID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestOpenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		clientID       string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное создание тикета",
			clientID: "1",
			body:     `{"subject": "Site is down", "department": "Technical Support", "message": "502 since morning", "priority": "High"}`,
			setupMock: func(m *MockService) {
				m.On("Open", mock.Anything, "1", models.OpenTicketRequest{
					Subject:    "Site is down",
					Department: "Technical Support",
					Message:    "502 since morning",
					Priority:   "High",
				}).Return(&models.Ticket{ID: "40", Number: "100040"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"ticket_id":"40"`,
		},
		{
			name:           "пустая тема отклоняется валидатором",
			clientID:       "1",
			body:           `{"subject": "", "department": "Technical Support", "message": "text", "priority": "Low"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Subject is a required field`,
		},
		{
			name:           "неподдерживаемый приоритет",
			clientID:       "1",
			body:           `{"subject": "Help", "department": "Technical Support", "message": "text", "priority": "Urgent"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Priority has an unsupported value`,
		},
		{
			name:           "без авторизации",
			clientID:       "",
			body:           `{"subject": "Help", "department": "Technical Support", "message": "text", "priority": "Low"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(tt.body))
			if tt.clientID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.ClientID, tt.clientID))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
