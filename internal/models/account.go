// Package models содержит доменные структуры портала хостинг-провайдера:
// аккаунты, услуги, домены, счета, тикеты и элементы каталога.
// Все сущности — неизменяемые снимки, полученные из внешней биллинг-системы;
// портал не хранит авторитетного состояния.
package models

// Account представляет клиентский аккаунт в биллинг-системе.
type Account struct {
	ID        string `json:"id"`         // Идентификатор клиента в биллинг-системе
	FirstName string `json:"first_name"` // Имя
	LastName  string `json:"last_name"`  // Фамилия
	Email     string `json:"email"`      // Электронная почта (уникальная)
	Company   string `json:"company,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
