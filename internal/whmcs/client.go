package whmcs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"encoding/json"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// Client — HTTP-клиент API WHMCS. Авторизация на стороне API — парой
// identifier/secret, передаваемой в каждом запросе.
type Client struct {
	apiURL     string
	identifier string
	secret     string
	httpClient *http.Client
}

// NewClient создаёт клиент WHMCS с таймаутом запросов.
func NewClient(apiURL, identifier, secret string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     apiURL,
		identifier: identifier,
		secret:     secret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// call выполняет один вызов API: POST form-encoded с полем action,
// разбор JSON-ответа в out и проверка result == "success".
func (c *Client) call(ctx context.Context, action string, params url.Values, out interface {
	result() (string, string)
}) error {
	const op = "whmcs.call"

	form := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			form.Add(k, v)
		}
	}
	form.Set("action", action)
	form.Set("identifier", c.identifier)
	form.Set("secret", c.secret)
	form.Set("responsetype", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", op, action, models.ErrDownstream)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s: unexpected status %s: %w", op, action, resp.Status, models.ErrDownstream)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %s: %w", op, action, models.ErrDownstream)
	}
	if result, msg := out.result(); result != "success" {
		return fmt.Errorf("%s: %s: %s: %w", op, action, msg, models.ErrDownstream)
	}
	return nil
}

func (r apiResponse) result() (string, string) { return r.Result, r.Message }

// ValidateLogin проверяет учётные данные клиента. Несовпадение даёт
// ErrUnauthorized без уточнения, какое из полей неверно.
func (c *Client) ValidateLogin(ctx context.Context, email, password string) (string, string, error) {
	const op = "whmcs.ValidateLogin"
	var resp loginResponse
	err := c.call(ctx, "ValidateLogin", url.Values{
		"email":     {email},
		"password2": {password},
	}, &resp)
	if err != nil {
		// WHMCS отвечает result=error и на неверные учётные данные;
		// наружу в обоих случаях уходит общий отказ авторизации.
		return "", "", fmt.Errorf("%s: %w", op, models.ErrUnauthorized)
	}
	return resp.ClientID, resp.SessionID, nil
}

// AddClient регистрирует новый аккаунт и возвращает его идентификатор.
func (c *Client) AddClient(ctx context.Context, req models.RegisterRequest) (string, error) {
	const op = "whmcs.AddClient"
	var resp addClientResponse
	err := c.call(ctx, "AddClient", url.Values{
		"firstname":   {req.FirstName},
		"lastname":    {req.LastName},
		"email":       {req.Email},
		"password2":   {req.Password},
		"companyname": {req.Company},
		"address1":    {req.Address},
		"city":        {req.City},
		"country":     {req.Country},
		"phonenumber": {req.Phone},
	}, &resp)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate Email") {
			return "", fmt.Errorf("email already registered: %w", models.ErrValidation)
		}
		return "", err
	}
	return resp.ClientID, nil
}

// GetClientsDetails возвращает профиль аккаунта.
func (c *Client) GetClientsDetails(ctx context.Context, clientID string) (*models.Account, error) {
	var resp clientDetailsResponse
	err := c.call(ctx, "GetClientsDetails", url.Values{
		"clientid": {clientID},
		"stats":    {"false"},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &models.Account{
		ID:        resp.ClientID,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		Company:   resp.Company,
		Address:   resp.Address,
		City:      resp.City,
		Country:   resp.Country,
		Phone:     resp.Phone,
	}, nil
}

// GetClientsProducts возвращает услуги аккаунта. Фильтрация по владельцу
// выполняется на стороне WHMCS параметром clientid.
func (c *Client) GetClientsProducts(ctx context.Context, clientID string) ([]models.Service, error) {
	var resp clientsProductsResponse
	err := c.call(ctx, "GetClientsProducts", url.Values{
		"clientid": {clientID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	services := make([]models.Service, 0, len(resp.Products.Product))
	for _, p := range resp.Products.Product {
		services = append(services, normalizeService(p, clientID))
	}
	return services, nil
}

// GetClientsProductByID возвращает одну услугу аккаунта. Чужой или
// несуществующий идентификатор даёт ErrNotFound: clientid — обязательный
// фильтр запроса, чужие услуги в выборку не попадают.
func (c *Client) GetClientsProductByID(ctx context.Context, clientID, serviceID string) (*models.Service, error) {
	const op = "whmcs.GetClientsProductByID"
	var resp clientsProductsResponse
	err := c.call(ctx, "GetClientsProducts", url.Values{
		"clientid":  {clientID},
		"serviceid": {serviceID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Products.Product) == 0 {
		return nil, fmt.Errorf("%s: service %s: %w", op, serviceID, models.ErrNotFound)
	}
	svc := normalizeService(resp.Products.Product[0], clientID)
	return &svc, nil
}

// GetServiceSSO запрашивает одноразовую ссылку входа в панель управления услугой.
func (c *Client) GetServiceSSO(ctx context.Context, clientID, serviceID string) (string, error) {
	var resp ssoResponse
	err := c.call(ctx, "CreateSsoToken", url.Values{
		"clientid":   {clientID},
		"service_id": {serviceID},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}

// GetClientsDomains возвращает домены аккаунта.
func (c *Client) GetClientsDomains(ctx context.Context, clientID string) ([]models.Domain, error) {
	var resp clientsDomainsResponse
	err := c.call(ctx, "GetClientsDomains", url.Values{
		"clientid": {clientID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	domains := make([]models.Domain, 0, len(resp.Domains.Domain))
	for _, d := range resp.Domains.Domain {
		domains = append(domains, normalizeDomain(d, clientID))
	}
	return domains, nil
}

// GetClientsDomainByID возвращает один домен аккаунта, ErrNotFound для
// чужого или несуществующего идентификатора.
func (c *Client) GetClientsDomainByID(ctx context.Context, clientID, domainID string) (*models.Domain, error) {
	const op = "whmcs.GetClientsDomainByID"
	var resp clientsDomainsResponse
	err := c.call(ctx, "GetClientsDomains", url.Values{
		"clientid": {clientID},
		"domainid": {domainID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Domains.Domain) == 0 {
		return nil, fmt.Errorf("%s: domain %s: %w", op, domainID, models.ErrNotFound)
	}
	d := normalizeDomain(resp.Domains.Domain[0], clientID)
	return &d, nil
}

// UpdateNameservers заменяет NS-записи домена.
func (c *Client) UpdateNameservers(ctx context.Context, clientID, domainID string, nameservers []string) error {
	params := url.Values{
		"clientid": {clientID},
		"domainid": {domainID},
	}
	for i, ns := range nameservers {
		params.Set(fmt.Sprintf("ns%d", i+1), ns)
	}
	var resp apiResponse
	return c.call(ctx, "DomainUpdateNameservers", params, &resp)
}

// SetRegistrarLock устанавливает registrar lock и возвращает новое состояние.
func (c *Client) SetRegistrarLock(ctx context.Context, clientID, domainID string, locked bool) (bool, error) {
	var resp lockResponse
	err := c.call(ctx, "DomainUpdateLockingStatus", url.Values{
		"clientid":   {clientID},
		"domainid":   {domainID},
		"lockstatus": {strconv.FormatBool(locked)},
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.LockStatus, nil
}

// GetInvoices возвращает счета аккаунта.
func (c *Client) GetInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	var resp invoicesResponse
	err := c.call(ctx, "GetInvoices", url.Values{
		"userid": {clientID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	invoices := make([]models.Invoice, 0, len(resp.Invoices.Invoice))
	for _, inv := range resp.Invoices.Invoice {
		invoices = append(invoices, normalizeInvoice(inv, clientID))
	}
	return invoices, nil
}

// GetTickets возвращает тикеты аккаунта, опционально по статусу.
func (c *Client) GetTickets(ctx context.Context, clientID, status string) ([]models.Ticket, error) {
	params := url.Values{"clientid": {clientID}}
	if status != "" {
		params.Set("status", status)
	}
	var resp ticketsResponse
	if err := c.call(ctx, "GetTickets", params, &resp); err != nil {
		return nil, err
	}
	tickets := make([]models.Ticket, 0, len(resp.Tickets.Ticket))
	for _, t := range resp.Tickets.Ticket {
		tickets = append(tickets, normalizeTicket(t, clientID))
	}
	return tickets, nil
}

// GetTicket возвращает тикет с полной историей сообщений.
func (c *Client) GetTicket(ctx context.Context, clientID, ticketID string) (*models.Ticket, error) {
	const op = "whmcs.GetTicket"
	var resp ticketResponse
	err := c.call(ctx, "GetTicket", url.Values{
		"clientid": {clientID},
		"ticketid": {ticketID},
	}, &resp)
	if err != nil {
		if strings.Contains(err.Error(), "Ticket ID Not Found") {
			return nil, fmt.Errorf("%s: ticket %s: %w", op, ticketID, models.ErrNotFound)
		}
		return nil, err
	}
	t := normalizeTicket(resp.rawTicket, clientID)
	return &t, nil
}

// OpenTicket создаёт новое обращение и возвращает его id и номер.
func (c *Client) OpenTicket(ctx context.Context, clientID string, req models.OpenTicketRequest) (*models.Ticket, error) {
	var resp openTicketResponse
	err := c.call(ctx, "OpenTicket", url.Values{
		"clientid": {clientID},
		"deptname": {req.Department},
		"subject":  {req.Subject},
		"message":  {req.Message},
		"priority": {req.Priority},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &models.Ticket{
		ID:       resp.TicketID,
		ClientID: clientID,
		Number:   resp.Number,
		Subject:  req.Subject,
		Status:   models.TicketStatusOpen,
	}, nil
}

// AddTicketReply добавляет ответ клиента в тикет.
func (c *Client) AddTicketReply(ctx context.Context, clientID, ticketID, message string) (*models.TicketReply, error) {
	var resp apiResponse
	err := c.call(ctx, "AddTicketReply", url.Values{
		"clientid": {clientID},
		"ticketid": {ticketID},
		"message":  {message},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &models.TicketReply{
		Role:    models.ReplyRoleClient,
		Message: message,
		Date:    time.Now().UTC().Format("2006-01-02 15:04:05"),
	}, nil
}

// GetProducts возвращает каталог продуктов, опционально по группе.
func (c *Client) GetProducts(ctx context.Context, groupID string) ([]models.Product, error) {
	params := url.Values{}
	if groupID != "" {
		params.Set("gid", groupID)
	}
	var resp productsResponse
	if err := c.call(ctx, "GetProducts", params, &resp); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(resp.Products.Product))
	for _, p := range resp.Products.Product {
		products = append(products, normalizeProduct(p))
	}
	return products, nil
}

// GetProductGroups возвращает группы каталога. Пустой список — не ошибка:
// сервис каталога в этом случае выводит группы из плоского списка продуктов.
func (c *Client) GetProductGroups(ctx context.Context) ([]models.ProductGroup, error) {
	var resp productGroupsResponse
	if err := c.call(ctx, "GetProductGroups", url.Values{}, &resp); err != nil {
		return nil, err
	}
	groups := make([]models.ProductGroup, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		groups = append(groups, models.ProductGroup{ID: g.ID, Name: g.Name})
	}
	return groups, nil
}

// GetPaymentMethods возвращает доступные платёжные модули.
func (c *Client) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var resp paymentMethodsResponse
	if err := c.call(ctx, "GetPaymentMethods", url.Values{}, &resp); err != nil {
		return nil, err
	}
	methods := make([]models.PaymentMethod, 0, len(resp.PaymentMethods.PaymentMethod))
	for _, m := range resp.PaymentMethods.PaymentMethod {
		methods = append(methods, models.PaymentMethod{
			Module:      m.Module,
			DisplayName: m.DisplayName,
		})
	}
	return methods, nil
}

// AddFunds выставляет счёт на пополнение баланса.
func (c *Client) AddFunds(ctx context.Context, clientID string, amount float64, method string) (*models.FundsResult, error) {
	var resp addFundsResponse
	err := c.call(ctx, "AddFunds", url.Values{
		"clientid":      {clientID},
		"amount":        {strconv.FormatFloat(amount, 'f', 2, 64)},
		"paymentmethod": {method},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &models.FundsResult{
		InvoiceID:   resp.InvoiceID,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// AddDomainOrder размещает заказ на регистрацию домена.
func (c *Client) AddDomainOrder(ctx context.Context, clientID string, req models.DomainOrderRequest) (*models.OrderResult, error) {
	params := url.Values{
		"clientid":      {clientID},
		"domain":        {req.Domain},
		"regperiod":     {strconv.Itoa(req.Period)},
		"paymentmethod": {req.PaymentMethod},
		"idprotection":  {strconv.FormatBool(req.IDProtection)},
		"dnsmanagement": {strconv.FormatBool(req.DNSManagement)},
	}
	for i, ns := range req.Nameservers {
		params.Set(fmt.Sprintf("nameserver%d", i+1), ns)
	}
	var resp addOrderResponse
	if err := c.call(ctx, "AddOrder", params, &resp); err != nil {
		return nil, err
	}
	return &models.OrderResult{
		OrderID:     resp.OrderID,
		InvoiceID:   resp.InvoiceID,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// CheckDomain проверяет доступность доменного имени к регистрации.
func (c *Client) CheckDomain(ctx context.Context, domain string) (*models.DomainAvailability, error) {
	var resp domainCheckResponse
	err := c.call(ctx, "DomainWhois", url.Values{
		"domain": {domain},
	}, &resp)
	if err != nil {
		return nil, err
	}
	available := resp.Status == "available"
	status := "taken"
	if available {
		status = "available"
	}
	return &models.DomainAvailability{
		Domain:    domain,
		Available: available,
		Status:    status,
	}, nil
}
