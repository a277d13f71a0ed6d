// Package billing содержит бизнес-логику по счетам, каталогу продуктов,
// платёжным модулям, пополнению баланса и заказам доменов.
//
// Справочники каталога кешируются в Redis; любая ошибка кеша деградирует
// до прямого запроса в биллинг-систему и наружу не уходит.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

const catalogTTL = 30 * time.Minute

// BillingAPI описывает операции биллинг-системы, нужные этому сервису.
type BillingAPI interface {
	GetInvoices(ctx context.Context, clientID string) ([]models.Invoice, error)
	GetProducts(ctx context.Context, groupID string) ([]models.Product, error)
	GetProductGroups(ctx context.Context) ([]models.ProductGroup, error)
	GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	AddFunds(ctx context.Context, clientID string, amount float64, method string) (*models.FundsResult, error)
	AddDomainOrder(ctx context.Context, clientID string, req models.DomainOrderRequest) (*models.OrderResult, error)
}

// Cache описывает методы кеширования справочников.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Catalog — каталог продуктов с группами и раскладкой по группам.
type Catalog struct {
	Products []models.Product            `json:"products"`
	Groups   []models.ProductGroup       `json:"groups"`
	ByGroup  map[string][]models.Product `json:"by_group"`
}

// Service реализует биллинг-операции портала.
type Service struct {
	billing BillingAPI
	cache   Cache
	log     *slog.Logger
}

// New создает новый Service. Кеш опционален: nil означает прямые запросы.
func New(billing BillingAPI, cache Cache, log *slog.Logger) *Service {
	return &Service{billing: billing, cache: cache, log: log}
}

// Invoices возвращает счета аккаунта.
func (s *Service) Invoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	return s.billing.GetInvoices(ctx, clientID)
}

// Products возвращает каталог. Группы берутся из биллинг-системы; пустой
// ответ группирующего вызова не ошибка — группы выводятся из плоского
// списка продуктов чистой функцией DeriveGroups. Обе ветки дают один
// и тот же контракт результата.
func (s *Service) Products(ctx context.Context, groupID string) (*Catalog, error) {
	cacheKey := fmt.Sprintf("catalog:products:%s", groupID)
	var catalog Catalog
	if s.cacheGet(ctx, cacheKey, &catalog) {
		return &catalog, nil
	}

	products, err := s.billing.GetProducts(ctx, groupID)
	if err != nil {
		return nil, err
	}
	groups, err := s.billing.GetProductGroups(ctx)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		groups = DeriveGroups(products)
	}

	byGroup := make(map[string][]models.Product, len(groups))
	for _, p := range products {
		byGroup[p.GroupName] = append(byGroup[p.GroupName], p)
	}
	catalog = Catalog{Products: products, Groups: groups, ByGroup: byGroup}

	s.cacheSet(ctx, cacheKey, catalog)
	return &catalog, nil
}

// PaymentMethods возвращает платёжные модули.
func (s *Service) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	const cacheKey = "catalog:paymentmethods"
	var methods []models.PaymentMethod
	if s.cacheGet(ctx, cacheKey, &methods) {
		return methods, nil
	}
	methods, err := s.billing.GetPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKey, methods)
	return methods, nil
}

// AddFunds выставляет счёт на пополнение баланса. Неположительная сумма
// и пустой платёжный модуль отклоняются до запроса вниз: биллинг-операции
// нельзя дублировать или выполнять с мусорными аргументами.
func (s *Service) AddFunds(ctx context.Context, clientID string, amount float64, method string) (*models.FundsResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero: %w", models.ErrValidation)
	}
	if strings.TrimSpace(method) == "" {
		return nil, fmt.Errorf("payment method is required: %w", models.ErrValidation)
	}
	res, err := s.billing.AddFunds(ctx, clientID, amount, method)
	if err != nil {
		return nil, err
	}
	s.log.Info("funds invoice created",
		slog.String("client_id", clientID), slog.String("invoice_id", res.InvoiceID))
	return res, nil
}

// OrderDomain размещает заказ на регистрацию домена.
func (s *Service) OrderDomain(ctx context.Context, clientID string, req models.DomainOrderRequest) (*models.OrderResult, error) {
	if strings.TrimSpace(req.Domain) == "" {
		return nil, fmt.Errorf("domain name is required: %w", models.ErrValidation)
	}
	if req.Period <= 0 {
		return nil, fmt.Errorf("registration period is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, fmt.Errorf("payment method is required: %w", models.ErrValidation)
	}
	res, err := s.billing.AddDomainOrder(ctx, clientID, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("domain order placed",
		slog.String("client_id", clientID), slog.String("order_id", res.OrderID))
	return res, nil
}

// DeriveGroups выводит группы каталога из плоского списка продуктов,
// сохраняя порядок первого появления. Чистая функция.
func DeriveGroups(products []models.Product) []models.ProductGroup {
	seen := make(map[string]bool, len(products))
	groups := make([]models.ProductGroup, 0)
	for _, p := range products {
		if p.GroupName == "" || seen[p.GroupName] {
			continue
		}
		seen[p.GroupName] = true
		groups = append(groups, models.ProductGroup{ID: p.GroupID, Name: p.GroupName})
	}
	return groups
}

func (s *Service) cacheGet(ctx context.Context, key string, result any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", key), sl.Err(err))
		return false
	}
	return found
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, catalogTTL); err != nil {
		s.log.Warn("cache write failed", slog.String("key", key), sl.Err(err))
	}
}
