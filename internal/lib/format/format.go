// Package format содержит чистые функции вычисления производных полей
// для отображения: проценты потребления ресурсов, строки «использовано/лимит»
// и денежные суммы. Функции детерминированы и не имеют побочных эффектов.
package format

import (
	"fmt"
	"math"
)

// UnlimitedLimit — сентинель биллинг-системы: лимит на уровне этого значения
// или выше означает безлимитный тариф.
const UnlimitedLimit = 999999

// UsagePercent возвращает процент потребления used от limit.
//
// Безлимитные тарифы (limit >= UnlimitedLimit, либо limit == 0 при ненулевом
// used) дают 100 — «использовано из безлимита». Пара used == 0 и limit == 0
// даёт 0. Деления на ноль не возникает ни при каких входах.
func UsagePercent(used, limit int) float64 {
	if used == 0 && limit == 0 {
		return 0
	}
	if limit <= 0 || limit >= UnlimitedLimit {
		return 100
	}
	pct := float64(used) / float64(limit) * 100
	return math.Round(pct*10) / 10
}

// UsageDisplay возвращает строку вида "2500 MB / 10000 MB".
// Для безлимита правая часть — "Unlimited", для пустой пары — "N/A".
func UsageDisplay(used, limit int) string {
	switch {
	case used == 0 && limit == 0:
		return "N/A"
	case limit <= 0 || limit >= UnlimitedLimit:
		return fmt.Sprintf("%d MB / Unlimited", used)
	default:
		return fmt.Sprintf("%d MB / %d MB", used, limit)
	}
}

// Amount форматирует денежную сумму с кодом валюты: Amount(9.95, "USD") —
// "$9.95 USD". Символ подбирается по коду валюты, по умолчанию "$".
func Amount(value float64, currency string) string {
	symbol := "$"
	switch currency {
	case "EUR":
		symbol = "€"
	case "GBP":
		symbol = "£"
	case "RUB":
		symbol = "₽"
	}
	return fmt.Sprintf("%s%.2f %s", symbol, value, currency)
}
