package view

import (
	"html/template"
	"strings"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

const placeholderImage = "/placeholder.svg"

// Funcsはテンプレート関数
func Funcs(imageBase string) template.FuncMap {
	return template.FuncMap{
		"money":    Money,
		"imageURL": func(u string) string { return ImageURL(imageBase, u) },
		"subtotal": func(i model.CartItem) string { return Money(i.Subtotal()) },
		"statuses": func() []model.OrderStatus { return model.OrderStatuses },
		"roles":    func() []model.Role { return []model.Role{model.RoleUser, model.RoleAdmin} },
	}
}

// Moneyは小数2桁（12.5 → "12.50"）
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ImageURLは空ならプレースホルダ、絶対URLと / 始まりはそのまま
func ImageURL(base, u string) string {
	u = strings.TrimSpace(u)
	switch {
	case u == "":
		return placeholderImage
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"), strings.HasPrefix(u, "/"):
		return u
	default:
		return base + u
	}
}
