// Package fake реализует in-memory заглушку биллинг-системы для локальной
// разработки и тестов. Заглушка внедряется за тем же набором интерфейсов,
// что и настоящий клиент WHMCS, и никогда не используется как глобальное
// состояние: каждый App получает свой экземпляр.
package fake

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

type account struct {
	profile      models.Account
	passwordHash string
}

// Backend — потокобезопасное in-memory хранилище биллинг-сущностей.
type Backend struct {
	mu             sync.Mutex
	accounts       map[string]*account // по идентификатору клиента
	emails         map[string]string   // email -> идентификатор клиента
	services       map[string][]models.Service
	domains        map[string][]models.Domain
	invoices       map[string][]models.Invoice
	tickets        []*models.Ticket
	products       []models.Product
	groups         []models.ProductGroup
	paymentMethods []models.PaymentMethod
	takenDomains   map[string]bool
	nextID         int
}

// NewSeeded создаёт заглушку с демонстрационным аккаунтом
// test@example.com / password123 (идентификатор клиента "1"),
// его услугами, доменами, счетами и каталогом продуктов.
func NewSeeded() *Backend {
	b := &Backend{
		accounts:     make(map[string]*account),
		emails:       make(map[string]string),
		services:     make(map[string][]models.Service),
		domains:      make(map[string][]models.Domain),
		invoices:     make(map[string][]models.Invoice),
		takenDomains: map[string]bool{"example.com": true, "google.com": true},
		nextID:       100,
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	b.accounts["1"] = &account{
		profile: models.Account{
			ID:        "1",
			FirstName: "Test",
			LastName:  "Client",
			Email:     "test@example.com",
			Company:   "Example LLC",
			Address:   "1 Main Street",
			City:      "Springfield",
			Country:   "US",
			Phone:     "+1.5551234567",
		},
		passwordHash: string(hash),
	}
	b.emails["test@example.com"] = "1"

	b.services["1"] = []models.Service{
		{
			ID: "10", ClientID: "1", Name: "Starter Hosting", Status: models.ServiceStatusActive,
			Domain: "myblog.example.net", RegDate: "2024-03-12", NextDueDate: "2026-03-12",
			BillingCycle: "Annually", Price: "$49.00 USD", ServerName: "web01",
			PanelURL: "https://web01.hosting.example/cpanel",
			Usage:    &models.ServiceUsage{DiskUsed: 2500, DiskLimit: 10000, BwUsed: 40000, BwLimit: 100000},
		},
		{
			ID: "11", ClientID: "1", Name: "Business Hosting", Status: models.ServiceStatusSuspended,
			Domain: "shop.example.org", RegDate: "2023-07-01", NextDueDate: "2025-07-01",
			BillingCycle: "Monthly", Price: "$19.95 USD", ServerName: "web02",
			Usage: &models.ServiceUsage{DiskUsed: 800, DiskLimit: 0, BwUsed: 120000, BwLimit: 999999},
		},
	}
	b.domains["1"] = []models.Domain{
		{
			ID: "20", ClientID: "1", Name: "myblog.example.net", Status: models.DomainStatusActive,
			RegDate: "2024-03-12", ExpiryDate: "2026-03-12", Registrar: "enom",
			Nameservers: []string{"ns1.hosting.example", "ns2.hosting.example"}, Locked: true,
		},
		{
			ID: "21", ClientID: "1", Name: "shop.example.org", Status: models.DomainStatusExpired,
			RegDate: "2021-01-05", ExpiryDate: "2025-01-05", Registrar: "resellerclub",
			Nameservers: []string{"ns1.hosting.example", "ns2.hosting.example", "ns3.hosting.example"},
		},
	}
	b.invoices["1"] = []models.Invoice{
		{
			ID: "30", ClientID: "1", Number: "INV-000030", Created: "2025-06-01", DueDate: "2025-06-15",
			Total: "$49.00 USD", Status: models.InvoiceStatusPaid,
			Items: []models.InvoiceItem{{Description: "Starter Hosting (12 months)", Amount: "$49.00 USD"}},
		},
		{
			ID: "31", ClientID: "1", Number: "INV-000031", Created: "2025-08-01", DueDate: "2025-08-15",
			Total: "$19.95 USD", Status: models.InvoiceStatusUnpaid,
			Items: []models.InvoiceItem{{Description: "Business Hosting (1 month)", Amount: "$19.95 USD"}},
		},
	}
	b.products = []models.Product{
		{
			ID: "1", Name: "Starter Hosting", GroupID: "1", GroupName: "Shared Hosting",
			Description: "<p>10 GB SSD, 1 site</p>",
			Pricing: []models.PricingCycle{
				{Cycle: "monthly", Price: "$4.95"},
				{Cycle: "annually", Price: "$49.00"},
			},
		},
		{
			ID: "2", Name: "Business Hosting", GroupID: "1", GroupName: "Shared Hosting",
			Description: "<p>Unlimited SSD, 10 sites</p>",
			Pricing: []models.PricingCycle{
				{Cycle: "monthly", Price: "$19.95"},
			},
		},
		{
			ID: "3", Name: "Cloud VPS", GroupID: "2", GroupName: "VPS",
			Description: "<p>2 vCPU, 4 GB RAM</p>",
			Pricing: []models.PricingCycle{
				{Cycle: "monthly", Price: "$29.00", SetupFee: "$10.00"},
			},
		},
	}
	b.groups = []models.ProductGroup{
		{ID: "1", Name: "Shared Hosting"},
		{ID: "2", Name: "VPS"},
	}
	b.paymentMethods = []models.PaymentMethod{
		{Module: "stripe", DisplayName: "Credit Card"},
		{Module: "paypal", DisplayName: "PayPal"},
	}
	return b
}

func (b *Backend) newID() string {
	b.nextID++
	return strconv.Itoa(b.nextID)
}

// ValidateLogin сверяет пароль с bcrypt-хэшем. Любое несовпадение —
// единый ErrUnauthorized, без уточнения поля.
func (b *Backend) ValidateLogin(_ context.Context, email, password string) (string, string, error) {
	const op = "fake.ValidateLogin"
	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.emails[strings.ToLower(email)]
	if !ok {
		return "", "", fmt.Errorf("%s: %w", op, models.ErrUnauthorized)
	}
	acc := b.accounts[id]
	if bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)) != nil {
		return "", "", fmt.Errorf("%s: %w", op, models.ErrUnauthorized)
	}
	return id, uuid.NewString(), nil
}

// AddClient регистрирует аккаунт, дубль email даёт ошибку валидации.
func (b *Backend) AddClient(_ context.Context, req models.RegisterRequest) (string, error) {
	const op = "fake.AddClient"
	b.mu.Lock()
	defer b.mu.Unlock()

	email := strings.ToLower(req.Email)
	if _, exists := b.emails[email]; exists {
		return "", fmt.Errorf("email already registered: %w", models.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id := b.newID()
	b.accounts[id] = &account{
		profile: models.Account{
			ID:        id,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     email,
			Company:   req.Company,
			Address:   req.Address,
			City:      req.City,
			Country:   req.Country,
			Phone:     req.Phone,
		},
		passwordHash: string(hash),
	}
	b.emails[email] = id
	return id, nil
}

func (b *Backend) GetClientsDetails(_ context.Context, clientID string) (*models.Account, error) {
	const op = "fake.GetClientsDetails"
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[clientID]
	if !ok {
		return nil, fmt.Errorf("%s: client %s: %w", op, clientID, models.ErrNotFound)
	}
	profile := acc.profile
	return &profile, nil
}

func (b *Backend) GetClientsProducts(_ context.Context, clientID string) ([]models.Service, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Service(nil), b.services[clientID]...), nil
}

func (b *Backend) GetClientsProductByID(_ context.Context, clientID, serviceID string) (*models.Service, error) {
	const op = "fake.GetClientsProductByID"
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, svc := range b.services[clientID] {
		if svc.ID == serviceID {
			out := svc
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%s: service %s: %w", op, serviceID, models.ErrNotFound)
}

func (b *Backend) GetServiceSSO(_ context.Context, clientID, serviceID string) (string, error) {
	return fmt.Sprintf("https://sso.hosting.example/login?client=%s&service=%s&token=%s",
		clientID, serviceID, uuid.NewString()), nil
}

func (b *Backend) GetClientsDomains(_ context.Context, clientID string) ([]models.Domain, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Domain(nil), b.domains[clientID]...), nil
}

func (b *Backend) GetClientsDomainByID(_ context.Context, clientID, domainID string) (*models.Domain, error) {
	const op = "fake.GetClientsDomainByID"
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, d := range b.domains[clientID] {
		if d.ID == domainID {
			out := d
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%s: domain %s: %w", op, domainID, models.ErrNotFound)
}

func (b *Backend) UpdateNameservers(_ context.Context, clientID, domainID string, nameservers []string) error {
	const op = "fake.UpdateNameservers"
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.domains[clientID]
	for i := range list {
		if list[i].ID == domainID {
			list[i].Nameservers = append([]string(nil), nameservers...)
			return nil
		}
	}
	return fmt.Errorf("%s: domain %s: %w", op, domainID, models.ErrNotFound)
}

func (b *Backend) SetRegistrarLock(_ context.Context, clientID, domainID string, locked bool) (bool, error) {
	const op = "fake.SetRegistrarLock"
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.domains[clientID]
	for i := range list {
		if list[i].ID == domainID {
			list[i].Locked = locked
			return locked, nil
		}
	}
	return false, fmt.Errorf("%s: domain %s: %w", op, domainID, models.ErrNotFound)
}

func (b *Backend) GetInvoices(_ context.Context, clientID string) ([]models.Invoice, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Invoice(nil), b.invoices[clientID]...), nil
}

func (b *Backend) GetTickets(_ context.Context, clientID, status string) ([]models.Ticket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Ticket, 0)
	for _, t := range b.tickets {
		if t.ClientID != clientID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		summary := *t
		summary.Replies = nil
		out = append(out, summary)
	}
	return out, nil
}

func (b *Backend) GetTicket(_ context.Context, clientID, ticketID string) (*models.Ticket, error) {
	const op = "fake.GetTicket"
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range b.tickets {
		if t.ID == ticketID && t.ClientID == clientID {
			out := *t
			out.Replies = append([]models.TicketReply(nil), t.Replies...)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%s: ticket %s: %w", op, ticketID, models.ErrNotFound)
}

func (b *Backend) OpenTicket(_ context.Context, clientID string, req models.OpenTicketRequest) (*models.Ticket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	t := &models.Ticket{
		ID:         b.newID(),
		ClientID:   clientID,
		Number:     fmt.Sprintf("TKT-%06d", b.nextID),
		Subject:    req.Subject,
		Department: req.Department,
		Status:     models.TicketStatusOpen,
		Priority:   req.Priority,
		Created:    now,
		Updated:    now,
		Replies: []models.TicketReply{
			{Role: models.ReplyRoleClient, Message: req.Message, Date: now},
		},
	}
	b.tickets = append(b.tickets, t)
	out := *t
	return &out, nil
}

func (b *Backend) AddTicketReply(_ context.Context, clientID, ticketID, message string) (*models.TicketReply, error) {
	const op = "fake.AddTicketReply"
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range b.tickets {
		if t.ID == ticketID && t.ClientID == clientID {
			reply := models.TicketReply{
				Role:    models.ReplyRoleClient,
				Message: message,
				Date:    time.Now().UTC().Format("2006-01-02 15:04:05"),
			}
			t.Replies = append(t.Replies, reply)
			t.Status = models.TicketStatusCustomerReply
			t.Updated = reply.Date
			return &reply, nil
		}
	}
	return nil, fmt.Errorf("%s: ticket %s: %w", op, ticketID, models.ErrNotFound)
}

func (b *Backend) GetProducts(_ context.Context, groupID string) ([]models.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if groupID == "" {
		return append([]models.Product(nil), b.products...), nil
	}
	out := make([]models.Product, 0)
	for _, p := range b.products {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (b *Backend) GetProductGroups(_ context.Context) ([]models.ProductGroup, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.ProductGroup(nil), b.groups...), nil
}

func (b *Backend) GetPaymentMethods(_ context.Context) ([]models.PaymentMethod, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.PaymentMethod(nil), b.paymentMethods...), nil
}

func (b *Backend) AddFunds(_ context.Context, clientID string, amount float64, method string) (*models.FundsResult, error) {
	const op = "fake.AddFunds"
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[clientID]; !ok {
		return nil, fmt.Errorf("%s: client %s: %w", op, clientID, models.ErrNotFound)
	}
	id := b.newID()
	inv := models.Invoice{
		ID:       id,
		ClientID: clientID,
		Number:   fmt.Sprintf("INV-%06d", b.nextID),
		Created:  time.Now().UTC().Format("2006-01-02"),
		DueDate:  time.Now().UTC().Format("2006-01-02"),
		Total:    fmt.Sprintf("$%.2f USD", amount),
		Status:   models.InvoiceStatusUnpaid,
		Items: []models.InvoiceItem{
			{Description: "Add Funds", Amount: fmt.Sprintf("$%.2f USD", amount)},
		},
	}
	b.invoices[clientID] = append(b.invoices[clientID], inv)
	return &models.FundsResult{
		InvoiceID:   id,
		RedirectURL: fmt.Sprintf("https://pay.hosting.example/%s/invoice/%s", method, id),
	}, nil
}

func (b *Backend) AddDomainOrder(_ context.Context, clientID string, req models.DomainOrderRequest) (*models.OrderResult, error) {
	const op = "fake.AddDomainOrder"
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[clientID]; !ok {
		return nil, fmt.Errorf("%s: client %s: %w", op, clientID, models.ErrNotFound)
	}
	orderID := b.newID()
	invoiceID := b.newID()
	nameservers := req.Nameservers
	if len(nameservers) == 0 {
		nameservers = []string{"ns1.hosting.example", "ns2.hosting.example"}
	}
	b.domains[clientID] = append(b.domains[clientID], models.Domain{
		ID:          b.newID(),
		ClientID:    clientID,
		Name:        req.Domain,
		Status:      models.DomainStatusPending,
		Registrar:   "enom",
		Nameservers: nameservers,
	})
	b.takenDomains[strings.ToLower(req.Domain)] = true
	return &models.OrderResult{
		OrderID:     orderID,
		InvoiceID:   invoiceID,
		RedirectURL: fmt.Sprintf("https://pay.hosting.example/%s/invoice/%s", req.PaymentMethod, invoiceID),
	}, nil
}

func (b *Backend) CheckDomain(_ context.Context, domain string) (*models.DomainAvailability, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	taken := b.takenDomains[strings.ToLower(domain)]
	status := "available"
	if taken {
		status = "taken"
	}
	return &models.DomainAvailability{
		Domain:    domain,
		Available: !taken,
		Status:    status,
	}, nil
}
