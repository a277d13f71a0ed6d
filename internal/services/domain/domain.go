// Package domain содержит бизнес-логику по доменам клиента: списки,
// детальные карточки, смена NS-записей, registrar lock и проверка
// доступности имени. Все предусловия проверяются до обращения к
// биллинг-системе.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// От 2 до 5 NS-записей на домен.
const (
	minNameservers = 2
	maxNameservers = 5
)

var domainNameRe = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// BillingAPI описывает операции биллинг-системы, нужные этому сервису.
type BillingAPI interface {
	GetClientsDomains(ctx context.Context, clientID string) ([]models.Domain, error)
	GetClientsDomainByID(ctx context.Context, clientID, domainID string) (*models.Domain, error)
	UpdateNameservers(ctx context.Context, clientID, domainID string, nameservers []string) error
	SetRegistrarLock(ctx context.Context, clientID, domainID string, locked bool) (bool, error)
	CheckDomain(ctx context.Context, domain string) (*models.DomainAvailability, error)
}

// Service реализует операции над доменами.
type Service struct {
	billing BillingAPI
	log     *slog.Logger
}

// New создает новый Service.
func New(billing BillingAPI, log *slog.Logger) *Service {
	return &Service{billing: billing, log: log}
}

// List возвращает домены аккаунта.
func (s *Service) List(ctx context.Context, clientID string) ([]models.Domain, error) {
	return s.billing.GetClientsDomains(ctx, clientID)
}

// Read возвращает один домен аккаунта.
func (s *Service) Read(ctx context.Context, clientID, domainID string) (*models.Domain, error) {
	return s.billing.GetClientsDomainByID(ctx, clientID, domainID)
}

// UpdateNameservers заменяет NS-записи домена. Меньше двух или больше
// пяти записей, как и пустые строки, отклоняются до запроса вниз.
func (s *Service) UpdateNameservers(ctx context.Context, clientID, domainID string, nameservers []string) error {
	if len(nameservers) < minNameservers || len(nameservers) > maxNameservers {
		return fmt.Errorf("between %d and %d nameservers required: %w",
			minNameservers, maxNameservers, models.ErrValidation)
	}
	for _, ns := range nameservers {
		if strings.TrimSpace(ns) == "" {
			return fmt.Errorf("empty nameserver entry: %w", models.ErrValidation)
		}
	}
	if err := s.billing.UpdateNameservers(ctx, clientID, domainID, nameservers); err != nil {
		return err
	}
	s.log.Info("nameservers updated", slog.String("domain_id", domainID))
	return nil
}

// SetLock устанавливает registrar lock и возвращает подтверждённое
// биллинг-системой состояние. Локальное состояние не обновляется
// до подтверждения.
func (s *Service) SetLock(ctx context.Context, clientID, domainID string, locked bool) (bool, error) {
	newState, err := s.billing.SetRegistrarLock(ctx, clientID, domainID, locked)
	if err != nil {
		return false, err
	}
	s.log.Info("registrar lock changed",
		slog.String("domain_id", domainID), slog.Bool("locked", newState))
	return newState, nil
}

// Check проверяет доступность доменного имени. Некорректный синтаксис
// имени отклоняется до запроса вниз.
func (s *Service) Check(ctx context.Context, domainName string) (*models.DomainAvailability, error) {
	name := strings.ToLower(strings.TrimSpace(domainName))
	if !domainNameRe.MatchString(name) {
		return nil, fmt.Errorf("malformed domain name: %w", models.ErrValidation)
	}
	return s.billing.CheckDomain(ctx, name)
}
