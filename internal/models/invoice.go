package models

// Статусы счёта.
const (
	InvoiceStatusPaid      = "Paid"
	InvoiceStatusUnpaid    = "Unpaid"
	InvoiceStatusCancelled = "Cancelled"
	InvoiceStatusOverdue   = "Overdue"
)

// Invoice представляет выставленный клиенту счёт.
type Invoice struct {
	ID       string        `json:"id"`
	ClientID string        `json:"-"`
	Number   string        `json:"number"` // Человекочитаемый номер счёта
	Created  string        `json:"created"`
	DueDate  string        `json:"due_date"`
	Total    string        `json:"total"` // Отформатированная сумма с валютой
	Status   string        `json:"status"`
	Items    []InvoiceItem `json:"items"`
}

// InvoiceItem — строка счёта.
type InvoiceItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}
