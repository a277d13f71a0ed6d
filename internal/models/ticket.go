package models

// Статусы тикета поддержки.
const (
	TicketStatusOpen          = "Open"
	TicketStatusAnswered      = "Answered"
	TicketStatusCustomerReply = "Customer-Reply"
	TicketStatusInProgress    = "In Progress"
	TicketStatusClosed        = "Closed"
)

// Приоритеты тикета.
const (
	TicketPriorityLow    = "Low"
	TicketPriorityMedium = "Medium"
	TicketPriorityHigh   = "High"
)

// Роли авторов сообщений в тикете.
const (
	ReplyRoleClient = "Client"
	ReplyRoleStaff  = "Support Staff"
)

// Ticket представляет обращение клиента в поддержку.
// Поле Replies заполняется только при детальном чтении тикета.
type Ticket struct {
	ID         string        `json:"id"`
	ClientID   string        `json:"-"`
	Number     string        `json:"number"`
	Subject    string        `json:"subject"`
	Department string        `json:"department"`
	Status     string        `json:"status"`
	Priority   string        `json:"priority"`
	Created    string        `json:"created"`
	Updated    string        `json:"updated"`
	Replies    []TicketReply `json:"replies,omitempty"`
}

// TicketReply — одно сообщение в переписке тикета.
type TicketReply struct {
	Role    string `json:"role"` // Client или Support Staff
	Message string `json:"message"`
	Date    string `json:"date"`
}
