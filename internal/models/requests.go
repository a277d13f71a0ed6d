package models

// DTO для приёма JSON-запросов портала. Поля валидируются
// go-playground/validator до обращения к биллинг-системе.

// LoginRequest — данные формы входа.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest — данные регистрации нового аккаунта.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// NameserversRequest — новый список NS-записей домена (от 2 до 5).
type NameserversRequest struct {
	Nameservers []string `json:"nameservers" validate:"required,min=2,max=5,dive,required"`
}

// LockRequest — желаемое состояние registrar lock.
type LockRequest struct {
	Locked *bool `json:"locked" validate:"required"`
}

// OpenTicketRequest — данные нового обращения в поддержку.
type OpenTicketRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Department string `json:"department" validate:"required"`
	Message    string `json:"message" validate:"required"`
	Priority   string `json:"priority" validate:"required,oneof=Low Medium High"`
}

// ReplyTicketRequest — текст ответа клиента в тикете.
type ReplyTicketRequest struct {
	Message string `json:"message" validate:"required"`
}

// AddFundsRequest — пополнение баланса аккаунта.
type AddFundsRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// DomainOrderRequest — конфигурация заказа домена.
type DomainOrderRequest struct {
	Domain        string   `json:"domain" validate:"required"`
	Period        int      `json:"period" validate:"required,gt=0"`
	IDProtection  bool     `json:"id_protection"`
	DNSManagement bool     `json:"dns_management"`
	Nameservers   []string `json:"nameservers,omitempty" validate:"omitempty,max=5"`
	PaymentMethod string   `json:"payment_method" validate:"required"`
}

// RecommendRequest — ответы анкеты подбора тарифа.
type RecommendRequest struct {
	SiteType        string `json:"site_type" validate:"required"`
	ExpectedTraffic string `json:"expected_traffic" validate:"required"`
	TechLevel       string `json:"tech_level" validate:"required"`
	Budget          string `json:"budget" validate:"required"`
}
