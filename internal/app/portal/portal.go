// Package portal собирает приложение клиентского портала: подключение
// к биллинг-системе, кеш справочников, сервисы и HTTP-сервер.
package portal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/hosting-portal/internal/ai"
	"github.com/magabrotheeeer/hosting-portal/internal/cache"
	"github.com/magabrotheeeer/hosting-portal/internal/config"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/token"
	accountservice "github.com/magabrotheeeer/hosting-portal/internal/services/account"
	advisorservice "github.com/magabrotheeeer/hosting-portal/internal/services/advisor"
	billingservice "github.com/magabrotheeeer/hosting-portal/internal/services/billing"
	domainservice "github.com/magabrotheeeer/hosting-portal/internal/services/domain"
	hostingservice "github.com/magabrotheeeer/hosting-portal/internal/services/hosting"
	ticketservice "github.com/magabrotheeeer/hosting-portal/internal/services/ticket"
	"github.com/magabrotheeeer/hosting-portal/internal/whmcs"
	"github.com/magabrotheeeer/hosting-portal/internal/whmcs/fake"
)

// billingBackend объединяет весь API биллинг-системы, который используют
// сервисы портала. Ему удовлетворяют и реальный клиент, и локальная заглушка.
type billingBackend interface {
	accountservice.BillingAPI
	hostingservice.BillingAPI
	domainservice.BillingAPI
	ticketservice.BillingAPI
	billingservice.BillingAPI
}

// App - структура приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New создает приложение: выбирает бэкенд биллинга по окружению,
// инициализирует кеш и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var backend billingBackend
	if cfg.Env == "local" {
		logger.Info("using in-memory billing backend")
		backend = fake.NewSeeded()
	} else {
		backend = whmcs.NewClient(cfg.WHMCS.APIURL, cfg.WHMCS.Identifier, cfg.WHMCS.Secret, cfg.WHMCS.Timeout)
	}

	// Кеш опционален: без Redis каталог ходит напрямую в биллинг.
	var catalogCache billingservice.Cache
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", sl.Err(err))
		} else {
			catalogCache = cacheRedis
		}
	}

	tokens := token.NewMaker(cfg.Token.SecretKey, cfg.Token.TokenTTL)
	model := ai.NewClient(cfg.AI.APIURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)

	accountSvc := accountservice.New(backend, tokens, logger)
	hostingSvc := hostingservice.New(backend, logger)
	domainSvc := domainservice.New(backend, logger)
	ticketSvc := ticketservice.New(backend, logger)
	billingSvc := billingservice.New(backend, catalogCache, logger)
	advisorSvc := advisorservice.New(model, backend, backend, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, tokens, &Services{
		Account: accountSvc,
		Hosting: hostingSvc,
		Domain:  domainSvc,
		Ticket:  ticketSvc,
		Billing: billingSvc,
		Advisor: advisorSvc,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
