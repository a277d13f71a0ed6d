package models

// Статусы зарегистрированного домена.
const (
	DomainStatusActive          = "Active"
	DomainStatusPending         = "Pending"
	DomainStatusExpired         = "Expired"
	DomainStatusTransferredAway = "Transferred Away"
)

// Domain представляет домен, зарегистрированный на клиента.
type Domain struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"-"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	RegDate     string   `json:"reg_date"`
	ExpiryDate  string   `json:"expiry_date"`
	Registrar   string   `json:"registrar"`
	Nameservers []string `json:"nameservers"` // Упорядоченный список, от 2 до 5 записей
	Locked      bool     `json:"locked"`      // Флаг registrar lock
}

// DomainAvailability — результат проверки доступности доменного имени.
type DomainAvailability struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Status    string `json:"status"` // "available" или "taken"
}
