package models

import "github.com/shopspring/decimal"

type CartItem struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"image_url"`
	Category   Category        `json:"category"`
	SeaterType SeaterType      `json:"seater_type"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items          []CartItem      `json:"items"`
	Count          int             `json:"count"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	Currency       string          `json:"currency"`
}
