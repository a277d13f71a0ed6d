// Package ticket содержит бизнес-логику обращений в поддержку.
package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// BillingAPI описывает операции биллинг-системы, нужные этому сервису.
type BillingAPI interface {
	GetTickets(ctx context.Context, clientID, status string) ([]models.Ticket, error)
	GetTicket(ctx context.Context, clientID, ticketID string) (*models.Ticket, error)
	OpenTicket(ctx context.Context, clientID string, req models.OpenTicketRequest) (*models.Ticket, error)
	AddTicketReply(ctx context.Context, clientID, ticketID, message string) (*models.TicketReply, error)
}

// Service реализует операции над тикетами.
type Service struct {
	billing BillingAPI
	log     *slog.Logger
}

// New создает новый Service.
func New(billing BillingAPI, log *slog.Logger) *Service {
	return &Service{billing: billing, log: log}
}

var validStatuses = map[string]bool{
	models.TicketStatusOpen:          true,
	models.TicketStatusAnswered:      true,
	models.TicketStatusCustomerReply: true,
	models.TicketStatusInProgress:    true,
	models.TicketStatusClosed:        true,
}

// List возвращает тикеты аккаунта. Фильтр статуса проверяется по закрытому
// набору значений; пустой фильтр означает все статусы.
func (s *Service) List(ctx context.Context, clientID, status string) ([]models.Ticket, error) {
	if status != "" && !validStatuses[status] {
		return nil, fmt.Errorf("unknown status %q: %w", status, models.ErrValidation)
	}
	return s.billing.GetTickets(ctx, clientID, status)
}

// Read возвращает тикет с полной историей сообщений.
func (s *Service) Read(ctx context.Context, clientID, ticketID string) (*models.Ticket, error) {
	return s.billing.GetTicket(ctx, clientID, ticketID)
}

// Open создаёт новое обращение. Обязательные поля проверяются до
// обращения к биллинг-системе.
func (s *Service) Open(ctx context.Context, clientID string, req models.OpenTicketRequest) (*models.Ticket, error) {
	if strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Department) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("subject, department and message are required: %w", models.ErrValidation)
	}
	if req.Priority != models.TicketPriorityLow &&
		req.Priority != models.TicketPriorityMedium &&
		req.Priority != models.TicketPriorityHigh {
		return nil, fmt.Errorf("unknown priority %q: %w", req.Priority, models.ErrValidation)
	}
	t, err := s.billing.OpenTicket(ctx, clientID, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("ticket opened", slog.String("ticket_id", t.ID), slog.String("number", t.Number))
	return t, nil
}

// Reply добавляет ответ клиента в тикет. Пустое сообщение отклоняется
// до запроса вниз.
func (s *Service) Reply(ctx context.Context, clientID, ticketID, message string) (*models.TicketReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required: %w", models.ErrValidation)
	}
	reply, err := s.billing.AddTicketReply(ctx, clientID, ticketID, message)
	if err != nil {
		return nil, err
	}
	s.log.Info("ticket reply added", slog.String("ticket_id", ticketID))
	return reply, nil
}
