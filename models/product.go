package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySofas         Category = "Sofas"
	CategorySofaBeds      Category = "Sofa Beds"
	CategoryBeds          Category = "Beds"
	CategoryBedSheets     Category = "Bed Sheets"
	CategoryChairs        Category = "Chairs"
	CategoryTables        Category = "Tables"
	CategoryHomeFurniture Category = "Home Furniture"
)

// Categories lists every catalog category in display order.
var Categories = []Category{
	CategorySofas,
	CategorySofaBeds,
	CategoryBeds,
	CategoryBedSheets,
	CategoryChairs,
	CategoryTables,
	CategoryHomeFurniture,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type SeaterType string

const (
	SeaterOne           SeaterType = "1 Seater"
	SeaterTwo           SeaterType = "2 Seater"
	SeaterThree         SeaterType = "3 Seater"
	SeaterFive          SeaterType = "5 Seater"
	SeaterNotApplicable SeaterType = "N/A"
)

var SeaterTypes = []SeaterType{
	SeaterOne,
	SeaterTwo,
	SeaterThree,
	SeaterFive,
	SeaterNotApplicable,
}

func (s SeaterType) Valid() bool {
	for _, known := range SeaterTypes {
		if s == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	SeaterType  SeaterType      `json:"seater_type"`
	ImageURL    string          `json:"image_url"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FilterAll is the sentinel the storefront sends for "no restriction".
const FilterAll = "All"

// ProductFilter is the catalog page filter. Zero values match everything.
type ProductFilter struct {
	Search     string
	Category   string
	SeaterType string
	MaxPrice   *decimal.Decimal
}

func (f ProductFilter) Match(p Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != FilterAll && string(p.Category) != f.Category {
		return false
	}
	if f.SeaterType != "" && f.SeaterType != FilterAll && string(p.SeaterType) != f.SeaterType {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// FilterProducts keeps catalog order.
func FilterProducts(products []Product, f ProductFilter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
