// Package whmcs реализует клиент внешней биллинг-системы WHMCS.
//
// Каждая операция портала — один вызов API WHMCS (POST form-encoded с полем
// action, ответ в JSON). Клиент занимается маршалингом аргументов и
// нормализацией ответов в доменные модели; формат проводного протокола
// принадлежит WHMCS и здесь не переопределяется.
package whmcs

// apiResponse — общая обёртка ответа WHMCS: result = "success" | "error".
type apiResponse struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`
}

type loginResponse struct {
	apiResponse
	ClientID  string `json:"userid"`
	SessionID string `json:"sessionid"`
}

type addClientResponse struct {
	apiResponse
	ClientID string `json:"clientid"`
}

type clientDetailsResponse struct {
	apiResponse
	ClientID  string `json:"userid"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Company   string `json:"companyname"`
	Address   string `json:"address1"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phonenumber"`
}

type rawProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Domain       string `json:"domain"`
	RegDate      string `json:"regdate"`
	NextDueDate  string `json:"nextduedate"`
	BillingCycle string `json:"billingcycle"`
	Amount       string `json:"recurringamount"`
	ServerName   string `json:"servername"`
	PanelURL     string `json:"panelurl"`
	DiskUsage    int    `json:"diskusage"`
	DiskLimit    int    `json:"disklimit"`
	BwUsage      int    `json:"bwusage"`
	BwLimit      int    `json:"bwlimit"`
}

type clientsProductsResponse struct {
	apiResponse
	Products struct {
		Product []rawProduct `json:"product"`
	} `json:"products"`
}

type ssoResponse struct {
	apiResponse
	RedirectURL string `json:"redirect_url"`
}

type rawDomain struct {
	ID          string   `json:"id"`
	DomainName  string   `json:"domainname"`
	Status      string   `json:"status"`
	RegDate     string   `json:"regdate"`
	ExpiryDate  string   `json:"expirydate"`
	Registrar   string   `json:"registrar"`
	Nameservers []string `json:"nameservers"`
	LockStatus  bool     `json:"lockstatus"`
}

type clientsDomainsResponse struct {
	apiResponse
	Domains struct {
		Domain []rawDomain `json:"domain"`
	} `json:"domains"`
}

type lockResponse struct {
	apiResponse
	LockStatus bool `json:"lockstatus"`
}

type rawInvoiceItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type rawInvoice struct {
	ID      string           `json:"id"`
	Number  string           `json:"invoicenum"`
	Date    string           `json:"date"`
	DueDate string           `json:"duedate"`
	Total   string           `json:"total"`
	Status  string           `json:"status"`
	Items   []rawInvoiceItem `json:"items"`
}

type invoicesResponse struct {
	apiResponse
	Invoices struct {
		Invoice []rawInvoice `json:"invoice"`
	} `json:"invoices"`
}

type rawReply struct {
	RequestorType string `json:"requestor_type"`
	Message       string `json:"message"`
	Date          string `json:"date"`
}

type rawTicket struct {
	ID         string     `json:"id"`
	Number     string     `json:"tid"`
	Subject    string     `json:"subject"`
	Department string     `json:"deptname"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	Date       string     `json:"date"`
	LastReply  string     `json:"lastreply"`
	Replies    []rawReply `json:"replies"`
}

type ticketsResponse struct {
	apiResponse
	Tickets struct {
		Ticket []rawTicket `json:"ticket"`
	} `json:"tickets"`
}

type ticketResponse struct {
	apiResponse
	rawTicket
}

type openTicketResponse struct {
	apiResponse
	TicketID string `json:"id"`
	Number   string `json:"tid"`
}

type rawPricing struct {
	Cycle    string `json:"cycle"`
	Price    string `json:"price"`
	SetupFee string `json:"setupfee"`
}

type rawCatalogProduct struct {
	ID          string       `json:"pid"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	GroupID     string       `json:"gid"`
	GroupName   string       `json:"groupname"`
	Pricing     []rawPricing `json:"pricing"`
}

type productsResponse struct {
	apiResponse
	Products struct {
		Product []rawCatalogProduct `json:"product"`
	} `json:"products"`
}

type productGroupsResponse struct {
	apiResponse
	Groups []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"groups"`
}

type paymentMethodsResponse struct {
	apiResponse
	PaymentMethods struct {
		PaymentMethod []struct {
			Module      string `json:"module"`
			DisplayName string `json:"displayname"`
		} `json:"paymentmethod"`
	} `json:"paymentmethods"`
}

type addFundsResponse struct {
	apiResponse
	InvoiceID   string `json:"invoiceid"`
	RedirectURL string `json:"redirect_url"`
}

type addOrderResponse struct {
	apiResponse
	OrderID     string `json:"orderid"`
	InvoiceID   string `json:"invoiceid"`
	RedirectURL string `json:"redirect_url"`
}

type domainCheckResponse struct {
	apiResponse
	Status string `json:"status"` // "available" | "regged"
}
