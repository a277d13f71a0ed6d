// Package hosting содержит бизнес-логику по услугам хостинга:
// список услуг аккаунта и детальная карточка с производными полями
// потребления и ссылкой единого входа в панель управления.
package hosting

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/hosting-portal/internal/lib/format"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// BillingAPI описывает операции биллинг-системы, нужные этому сервису.
// Идентификатор клиента — обязательный фильтр каждой выборки.
type BillingAPI interface {
	GetClientsProducts(ctx context.Context, clientID string) ([]models.Service, error)
	GetClientsProductByID(ctx context.Context, clientID, serviceID string) (*models.Service, error)
	GetServiceSSO(ctx context.Context, clientID, serviceID string) (string, error)
}

// Service реализует операции над услугами хостинга.
type Service struct {
	billing BillingAPI
	log     *slog.Logger
}

// New создает новый Service.
func New(billing BillingAPI, log *slog.Logger) *Service {
	return &Service{billing: billing, log: log}
}

// List возвращает услуги аккаунта с заполненными производными полями.
func (s *Service) List(ctx context.Context, clientID string) ([]models.Service, error) {
	services, err := s.billing.GetClientsProducts(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range services {
		fillUsage(&services[i])
	}
	return services, nil
}

// Read возвращает одну услугу аккаунта. Для активной услуги дополнительно
// запрашивается SSO-ссылка в панель управления; её отсутствие не ошибка —
// карточка остаётся полной и без неё.
func (s *Service) Read(ctx context.Context, clientID, serviceID string) (*models.Service, error) {
	svc, err := s.billing.GetClientsProductByID(ctx, clientID, serviceID)
	if err != nil {
		return nil, err
	}
	fillUsage(svc)

	if svc.Status == models.ServiceStatusActive {
		ssoURL, err := s.billing.GetServiceSSO(ctx, clientID, serviceID)
		if err != nil {
			s.log.Warn("failed to get sso link", slog.String("service_id", serviceID), sl.Err(err))
		} else {
			svc.SSOURL = ssoURL
		}
	}
	return svc, nil
}

// fillUsage вычисляет проценты и строки отображения потребления ресурсов.
func fillUsage(svc *models.Service) {
	if svc.Usage == nil {
		return
	}
	u := svc.Usage
	u.DiskPercent = format.UsagePercent(u.DiskUsed, u.DiskLimit)
	u.DiskDisplay = format.UsageDisplay(u.DiskUsed, u.DiskLimit)
	u.BwPercent = format.UsagePercent(u.BwUsed, u.BwLimit)
	u.BwDisplay = format.UsageDisplay(u.BwUsed, u.BwLimit)
}
