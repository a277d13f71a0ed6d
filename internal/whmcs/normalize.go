package whmcs

import (
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// Нормализация сырых ответов WHMCS в доменные модели портала.
// Функции чистые: одинаковый вход всегда даёт одинаковый результат.

func normalizeService(p rawProduct, clientID string) models.Service {
	svc := models.Service{
		ID:           p.ID,
		ClientID:     clientID,
		Name:         p.Name,
		Status:       p.Status,
		Domain:       p.Domain,
		RegDate:      p.RegDate,
		NextDueDate:  p.NextDueDate,
		BillingCycle: p.BillingCycle,
		Price:        p.Amount,
		ServerName:   p.ServerName,
		PanelURL:     p.PanelURL,
	}
	if p.DiskUsage != 0 || p.DiskLimit != 0 || p.BwUsage != 0 || p.BwLimit != 0 {
		svc.Usage = &models.ServiceUsage{
			DiskUsed:  p.DiskUsage,
			DiskLimit: p.DiskLimit,
			BwUsed:    p.BwUsage,
			BwLimit:   p.BwLimit,
		}
	}
	return svc
}

func normalizeDomain(d rawDomain, clientID string) models.Domain {
	return models.Domain{
		ID:          d.ID,
		ClientID:    clientID,
		Name:        d.DomainName,
		Status:      d.Status,
		RegDate:     d.RegDate,
		ExpiryDate:  d.ExpiryDate,
		Registrar:   d.Registrar,
		Nameservers: d.Nameservers,
		Locked:      d.LockStatus,
	}
}

func normalizeInvoice(inv rawInvoice, clientID string) models.Invoice {
	items := make([]models.InvoiceItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, models.InvoiceItem{
			Description: it.Description,
			Amount:      it.Amount,
		})
	}
	return models.Invoice{
		ID:       inv.ID,
		ClientID: clientID,
		Number:   inv.Number,
		Created:  inv.Date,
		DueDate:  inv.DueDate,
		Total:    inv.Total,
		Status:   inv.Status,
		Items:    items,
	}
}

func normalizeTicket(t rawTicket, clientID string) models.Ticket {
	replies := make([]models.TicketReply, 0, len(t.Replies))
	for _, r := range t.Replies {
		role := models.ReplyRoleStaff
		if r.RequestorType == "client" {
			role = models.ReplyRoleClient
		}
		replies = append(replies, models.TicketReply{
			Role:    role,
			Message: r.Message,
			Date:    r.Date,
		})
	}
	return models.Ticket{
		ID:         t.ID,
		ClientID:   clientID,
		Number:     t.Number,
		Subject:    t.Subject,
		Department: t.Department,
		Status:     t.Status,
		Priority:   t.Priority,
		Created:    t.Date,
		Updated:    t.LastReply,
		Replies:    replies,
	}
}

func normalizeProduct(p rawCatalogProduct) models.Product {
	pricing := make([]models.PricingCycle, 0, len(p.Pricing))
	for _, pr := range p.Pricing {
		pricing = append(pricing, models.PricingCycle{
			Cycle:    pr.Cycle,
			Price:    pr.Price,
			SetupFee: pr.SetupFee,
		})
	}
	return models.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		GroupID:     p.GroupID,
		GroupName:   p.GroupName,
		Pricing:     pricing,
	}
}
