// Package account содержит бизнес-логику входа, регистрации и чтения профиля.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// BillingAPI описывает операции биллинг-системы, нужные этому сервису.
type BillingAPI interface {
	// ValidateLogin проверяет учётные данные и возвращает идентификатор
	// клиента и opaque-сессию биллинг-системы.
	ValidateLogin(ctx context.Context, email, password string) (string, string, error)
	// AddClient регистрирует аккаунт и возвращает его идентификатор.
	AddClient(ctx context.Context, req models.RegisterRequest) (string, error)
	// GetClientsDetails возвращает профиль аккаунта.
	GetClientsDetails(ctx context.Context, clientID string) (*models.Account, error)
}

// TokenMaker выпускает сессионный токен портала.
type TokenMaker interface {
	Generate(clientID string) (string, error)
}

// Session — результат входа или регистрации: токен портала и идентификатор клиента.
type Session struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
}

// Service реализует операции над аккаунтом.
type Service struct {
	billing BillingAPI
	tokens  TokenMaker
	log     *slog.Logger
}

// New создает новый Service.
func New(billing BillingAPI, tokens TokenMaker, log *slog.Logger) *Service {
	return &Service{billing: billing, tokens: tokens, log: log}
}

// Login проверяет учётные данные через биллинг-систему и выпускает токен.
// Несовпадение даёт общий ErrUnauthorized: наружу никогда не уходит,
// какое из полей неверно.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	const op = "account.Login"
	clientID, _, err := s.billing.ValidateLogin(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUnauthorized)
	}
	tok, err := s.tokens.Generate(clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("client logged in", slog.String("client_id", clientID))
	return &Session{Token: tok, ClientID: clientID}, nil
}

// Register создаёт аккаунт и сразу выпускает токен: новый клиент
// попадает в кабинет без повторного входа.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*Session, error) {
	const op = "account.Register"
	clientID, err := s.billing.AddClient(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tok, err := s.tokens.Generate(clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("client registered", slog.String("client_id", clientID))
	return &Session{Token: tok, ClientID: clientID}, nil
}

// Profile возвращает профиль аккаунта.
func (s *Service) Profile(ctx context.Context, clientID string) (*models.Account, error) {
	return s.billing.GetClientsDetails(ctx, clientID)
}
