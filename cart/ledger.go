// Package cart holds the session shopping cart: one line per product, a
// quantity per line, and the derived item count and total.
package cart

import (
	"furniture-shop/models"

	"github.com/shopspring/decimal"
)

// Line is a product snapshot taken when the product was first added, plus
// a quantity that is always at least 1.
type Line struct {
	ProductID  string            `json:"product_id"`
	Name       string            `json:"name"`
	Price      decimal.Decimal   `json:"price"`
	ImageURL   string            `json:"image_url"`
	Category   models.Category   `json:"category"`
	SeaterType models.SeaterType `json:"seater_type"`
	Quantity   int               `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Ledger is not safe for concurrent use. Each request loads its own copy
// from the session store.
type Ledger struct {
	lines []Line
}

// MaxQuantity is the most units a single line can hold. Additions past it
// saturate rather than overflow.
const MaxQuantity = 9999

func addQuantity(a, b int) int {
	if b > MaxQuantity-a {
		return MaxQuantity
	}
	return a + b
}

func New() *Ledger {
	return &Ledger{}
}

// FromLines rebuilds a ledger from stored lines. Duplicate product lines are
// merged and lines without a positive quantity are dropped.
func FromLines(lines []Line) *Ledger {
	l := New()
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity < 1 {
			continue
		}
		line.Quantity = min(line.Quantity, MaxQuantity)
		if i := l.index(line.ProductID); i >= 0 {
			l.lines[i].Quantity = addQuantity(l.lines[i].Quantity, line.Quantity)
			continue
		}
		l.lines = append(l.lines, line)
	}
	return l
}

func (l *Ledger) index(productID string) int {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts quantity units of p in the cart. A quantity below 1 is clamped
// to 1 and a line never grows past MaxQuantity. Adding a product that is
// already present only bumps its quantity; the original snapshot is kept.
func (l *Ledger) Add(p models.Product, quantity int) {
	quantity = max(1, min(quantity, MaxQuantity))
	if i := l.index(p.ID); i >= 0 {
		l.lines[i].Quantity = addQuantity(l.lines[i].Quantity, quantity)
		return
	}
	l.lines = append(l.lines, Line{
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		ImageURL:   p.ImageURL,
		Category:   p.Category,
		SeaterType: p.SeaterType,
		Quantity:   quantity,
	})
}

// Remove is a no-op for a product that is not in the cart.
func (l *Ledger) Remove(productID string) {
	i := l.index(productID)
	if i < 0 {
		return
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
}

// UpdateQuantity sets the quantity of an existing line. Zero or less removes
// the line. An unknown product is ignored: the storefront steppers only ever
// act on lines that are already in the cart.
func (l *Ledger) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		l.Remove(productID)
		return
	}
	if i := l.index(productID); i >= 0 {
		l.lines[i].Quantity = min(quantity, MaxQuantity)
	}
}

func (l *Ledger) Clear() {
	l.lines = nil
}

// Lines returns a copy in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Line(productID string) (Line, bool) {
	if i := l.index(productID); i >= 0 {
		return l.lines[i], true
	}
	return Line{}, false
}

func (l *Ledger) Len() int {
	return len(l.lines)
}

func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Count is the number of units across all lines, the badge on the cart icon.
func (l *Ledger) Count() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// View renders the ledger for API responses.
func (l *Ledger) View() models.CartView {
	items := make([]models.CartItem, 0, len(l.lines))
	for _, line := range l.lines {
		items = append(items, models.CartItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Price:      line.Price,
			ImageURL:   line.ImageURL,
			Category:   line.Category,
			SeaterType: line.SeaterType,
			Quantity:   line.Quantity,
			Subtotal:   line.Subtotal(),
		})
	}
	total := l.Total()
	return models.CartView{
		Items:          items,
		Count:          l.Count(),
		Total:          total,
		TotalFormatted: models.FormatPrice(total),
		Currency:       models.StoreCurrency.String(),
	}
}

// OrderItems freezes the current lines for an order.
func (l *Ledger) OrderItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(l.lines))
	for _, line := range l.lines {
		items = append(items, models.OrderItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Category:   line.Category,
			SeaterType: line.SeaterType,
			ImageURL:   line.ImageURL,
		})
	}
	return items
}
