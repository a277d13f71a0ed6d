package models

// Статусы услуги хостинга, как их отдаёт биллинг-система.
const (
	ServiceStatusActive     = "Active"
	ServiceStatusSuspended  = "Suspended"
	ServiceStatusTerminated = "Terminated"
	ServiceStatusPending    = "Pending"
	ServiceStatusCancelled  = "Cancelled"
)

// Service представляет купленную клиентом услугу хостинга.
// Поля Usage и SSOURL заполняются только при детальном чтении услуги.
type Service struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"-"` // Идентификатор владельца, наружу не отдаётся
	Name         string        `json:"name"`
	Status       string        `json:"status"`
	Domain       string        `json:"domain,omitempty"`
	RegDate      string        `json:"reg_date"`
	NextDueDate  string        `json:"next_due_date"`
	BillingCycle string        `json:"billing_cycle"`
	Price        string        `json:"price"` // Отформатированная строка, например "$9.95 USD"
	ServerName   string        `json:"server_name,omitempty"`
	PanelURL     string        `json:"panel_url,omitempty"`
	Usage        *ServiceUsage `json:"usage,omitempty"`
	SSOURL       string        `json:"sso_url,omitempty"`
}

// ServiceUsage содержит счётчики потребления ресурсов услуги.
// Сырые значения приходят из биллинг-системы, проценты и строки
// отображения вычисляются порталом (см. lib/format).
type ServiceUsage struct {
	DiskUsed    int     `json:"disk_used"`  // МБ
	DiskLimit   int     `json:"disk_limit"` // МБ, 0 или выше сентинеля — безлимит
	DiskPercent float64 `json:"disk_percent"`
	DiskDisplay string  `json:"disk_display"`
	BwUsed      int     `json:"bw_used"` // МБ за месяц
	BwLimit     int     `json:"bw_limit"`
	BwPercent   float64 `json:"bw_percent"`
	BwDisplay   string  `json:"bw_display"`
}
