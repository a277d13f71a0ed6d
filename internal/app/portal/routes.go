package portal

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/hosting-portal/internal/http/handlers/account/profile"
	advisorrecommend "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/advisor/recommend"
	advisorsummary "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/advisor/summary"
	"github.com/magabrotheeeer/hosting-portal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/hosting-portal/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/hosting-portal/internal/http/handlers/catalog/paymentmethods"
	"github.com/magabrotheeeer/hosting-portal/internal/http/handlers/catalog/products"
	domaincheck "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/domain/check"
	domainlist "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/domain/list"
	domainlock "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/domain/lock"
	domainnameservers "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/domain/nameservers"
	domainread "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/domain/read"
	fundsadd "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/funds/add"
	hostinglist "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/hosting/list"
	hostingread "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/hosting/read"
	invoicelist "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/invoice/list"
	"github.com/magabrotheeeer/hosting-portal/internal/http/handlers/order/domainorder"
	ticketlist "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/ticket/list"
	ticketopen "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/ticket/open"
	ticketread "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/ticket/read"
	ticketreply "github.com/magabrotheeeer/hosting-portal/internal/http/handlers/ticket/reply"
	"github.com/magabrotheeeer/hosting-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/token"
	accountservice "github.com/magabrotheeeer/hosting-portal/internal/services/account"
	advisorservice "github.com/magabrotheeeer/hosting-portal/internal/services/advisor"
	billingservice "github.com/magabrotheeeer/hosting-portal/internal/services/billing"
	domainservice "github.com/magabrotheeeer/hosting-portal/internal/services/domain"
	hostingservice "github.com/magabrotheeeer/hosting-portal/internal/services/hosting"
	ticketservice "github.com/magabrotheeeer/hosting-portal/internal/services/ticket"
)

// Services - набор сервисов портала для регистрации маршрутов.
type Services struct {
	Account *accountservice.Service
	Hosting *hostingservice.Service
	Domain  *domainservice.Service
	Ticket  *ticketservice.Service
	Billing *billingservice.Service
	Advisor *advisorservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokens *token.Maker, svcs *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	limiter := rate.NewLimiter(rate.Limit(20), 40)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, svcs.Account).ServeHTTP)
		r.Post("/login", login.New(logger, svcs.Account).ServeHTTP)
		r.Get("/products", products.New(logger, svcs.Billing).ServeHTTP)

		// Группа с аутентификацией по токену портала
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(tokens, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.Get("/account", profile.New(logger, svcs.Account).ServeHTTP)
			r.Get("/services", hostinglist.New(logger, svcs.Hosting).ServeHTTP)
			r.Get("/services/{id}", hostingread.New(logger, svcs.Hosting).ServeHTTP)
			r.Get("/domains", domainlist.New(logger, svcs.Domain).ServeHTTP)
			r.Get("/domains/check", domaincheck.New(logger, svcs.Domain).ServeHTTP)
			r.Get("/domains/{id}", domainread.New(logger, svcs.Domain).ServeHTTP)
			r.Put("/domains/{id}/nameservers", domainnameservers.New(logger, svcs.Domain).ServeHTTP)
			r.Put("/domains/{id}/lock", domainlock.New(logger, svcs.Domain).ServeHTTP)
			r.Get("/invoices", invoicelist.New(logger, svcs.Billing).ServeHTTP)
			r.Get("/paymentmethods", paymentmethods.New(logger, svcs.Billing).ServeHTTP)
			r.Get("/tickets", ticketlist.New(logger, svcs.Ticket).ServeHTTP)
			r.Get("/tickets/{id}", ticketread.New(logger, svcs.Ticket).ServeHTTP)
			r.Post("/tickets", ticketopen.New(logger, svcs.Ticket).ServeHTTP)
			r.Post("/tickets/{id}/reply", ticketreply.New(logger, svcs.Ticket).ServeHTTP)
			r.Post("/funds", fundsadd.New(logger, svcs.Billing).ServeHTTP)
			r.Post("/orders/domain", domainorder.New(logger, svcs.Billing).ServeHTTP)
			r.Post("/advisor/recommend", advisorrecommend.New(logger, svcs.Advisor).ServeHTTP)
			r.Post("/advisor/summary", advisorsummary.New(logger, svcs.Advisor).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
