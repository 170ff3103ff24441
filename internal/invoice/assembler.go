// Package invoice assembles the exportable invoice record from a session
// snapshot. Nothing is cached: every export request re-derives the record
// from live state, so edits made right before exporting are always included.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"go-invoice-pos/internal/engine"
	"go-invoice-pos/internal/models"
	"go-invoice-pos/internal/pricing"
)

// Build packages the snapshot into an immutable invoice record.
// Customer info is included only when at least one field is non-empty, and
// notes only when non-blank after trimming.
func Build(snap engine.Snapshot) models.Invoice {
	now := time.Now()

	inv := models.Invoice{
		Number: Number(now),
		Date:   now,
		Lines:  make([]models.InvoiceLineView, 0, len(snap.Lines)),
	}

	for _, line := range snap.Lines {
		inv.Lines = append(inv.Lines, models.InvoiceLineView{
			ProductName: line.Product.Name,
			Group:       line.Product.Group,
			Quantity:    line.Quantity,
			UnitPrice:   pricing.EffectiveUnitPrice(line),
			Discount:    line.Discount,
			Total:       pricing.LineTotal(line),
		})
	}

	if !snap.Customer.Empty() {
		c := snap.Customer
		inv.Customer = &c
	}
	if notes := strings.TrimSpace(snap.Notes); notes != "" {
		inv.Notes = notes
	}
	inv.Discount = snap.Discount

	inv.Subtotal, inv.DiscountValue, inv.Total = pricing.GrandTotal(snap.Lines, snap.Discount)
	return inv
}

// Number generates the invoice number for a creation time: "INV-" followed
// by milliseconds since epoch, so later invoices always sort after earlier
// ones.
func Number(t time.Time) string {
	return fmt.Sprintf("INV-%d", t.UnixMilli())
}
