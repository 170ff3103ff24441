package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User - The clerk logging into the system.
// There is exactly one shared credential, seeded from .env at startup.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// LoginSession - The persisted "logged in" flag.
// Written on login, cleared on logout.
type LoginSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `json:"username"`
	Active    bool      `json:"active"`
	LoginTime time.Time `json:"login_time"`
}

// Product - The catalog. AvailableQty is mutated only through the
// session engine's stock reservations, never directly.
type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"uniqueIndex;size:120" json:"name"`
	Group        string          `gorm:"size:80" json:"group"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(14,2)" json:"unit_price"`
	AvailableQty int             `json:"available_qty"`
}

// DiscountKind selects how a discount amount is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage" // amount in [0,100]
	DiscountFixed      DiscountKind = "fixed"      // absolute amount
)

// Valid reports whether k is one of the two supported kinds.
func (k DiscountKind) Valid() bool {
	return k == DiscountPercentage || k == DiscountFixed
}

// LineDiscount - A discount attached to a single invoice line.
type LineDiscount struct {
	Amount decimal.Decimal `json:"amount"`
	Kind   DiscountKind    `json:"kind"`
}

// InvoiceDiscount - A single discount on the whole invoice subtotal.
type InvoiceDiscount struct {
	Amount decimal.Decimal `json:"amount"`
	Kind   DiscountKind    `json:"kind"`
}

// InvoiceLine - One entry in the invoice. It references a catalog product
// by pointer; the line never stores a derived total. Totals are always
// recomputed by the pricing package from current line state.
type InvoiceLine struct {
	ID          string           `json:"id"` // stable opaque identifier, assigned at creation
	Product     *Product         `json:"product"`
	Quantity    int              `json:"quantity"`
	CustomPrice *decimal.Decimal `json:"custom_price,omitempty"` // overrides Product.UnitPrice when set
	Discount    *LineDiscount    `json:"discount,omitempty"`
}

// CustomerInfo - Optional customer details on the invoice.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Empty reports whether every field is blank.
func (c CustomerInfo) Empty() bool {
	return c.Name == "" && c.Address == "" && c.Phone == ""
}

// InvoiceLineView - A priced line inside an assembled invoice.
type InvoiceLineView struct {
	ProductName string          `json:"product_name"`
	Group       string          `json:"group,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // effective price: custom override or list price
	Discount    *LineDiscount   `json:"discount,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice - An assembled snapshot ready for export. Immutable once built;
// a fresh one is derived from live session state on every export request.
type Invoice struct {
	Number        string            `json:"invoice_number"`
	Date          time.Time         `json:"date"`
	Lines         []InvoiceLineView `json:"items"`
	Customer      *CustomerInfo     `json:"customer_info,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Discount      *InvoiceDiscount  `json:"discount,omitempty"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	DiscountValue decimal.Decimal   `json:"discount_value"`
	Total         decimal.Decimal   `json:"total_amount"`
}
