package models

// Product — позиция каталога услуг, доступная к заказу.
// Каталог не привязан к аккаунту и одинаков для всех клиентов.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"` // HTML-описание из биллинг-системы
	GroupID     string         `json:"group_id"`
	GroupName   string         `json:"group_name"`
	Pricing     []PricingCycle `json:"pricing"`
}

// PricingCycle — вариант биллинг-цикла продукта со своей ценой.
type PricingCycle struct {
	Cycle    string `json:"cycle"` // monthly, quarterly, annually и т.д.
	Price    string `json:"price"`
	SetupFee string `json:"setup_fee,omitempty"`
}

// ProductGroup — группа каталога (например "Shared Hosting").
type ProductGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentMethod — доступный платёжный модуль биллинг-системы.
type PaymentMethod struct {
	Module      string `json:"module"`
	DisplayName string `json:"display_name"`
}

// FundsResult — результат пополнения баланса: выставленный счёт
// и ссылка на оплату.
type FundsResult struct {
	InvoiceID   string `json:"invoice_id"`
	RedirectURL string `json:"redirect_url"`
}

// OrderResult — результат размещения заказа на регистрацию домена.
type OrderResult struct {
	OrderID     string `json:"order_id"`
	InvoiceID   string `json:"invoice_id"`
	RedirectURL string `json:"redirect_url"`
}
