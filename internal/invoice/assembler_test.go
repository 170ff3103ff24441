package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"go-invoice-pos/internal/engine"
	"go-invoice-pos/internal/models"
)

func sessionWithLines(t *testing.T) *engine.Session {
	t.Helper()
	s := engine.NewSession([]models.Product{
		{Name: "Pen", Group: "Stationery", UnitPrice: decimal.NewFromInt(500), AvailableQty: 10},
		{Name: "Notebook", Group: "Stationery", UnitPrice: decimal.NewFromInt(1200), AvailableQty: 4},
	})
	if _, err := s.AddLine("Pen", 3); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := s.AddLine("Notebook", 1); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	return s
}

func TestBuildEmbedsComputedTotals(t *testing.T) {
	s := sessionWithLines(t)
	s.SetInvoiceDiscount(decimal.NewFromInt(10), models.DiscountPercentage)

	inv := Build(s.Snapshot())

	if len(inv.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(inv.Lines))
	}
	if !inv.Subtotal.Equal(decimal.NewFromInt(2700)) {
		t.Fatalf("expected subtotal 2700, got %s", inv.Subtotal)
	}
	if !inv.DiscountValue.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("expected discount value 270, got %s", inv.DiscountValue)
	}
	if !inv.Total.Equal(decimal.NewFromInt(2430)) {
		t.Fatalf("expected total 2430, got %s", inv.Total)
	}
	if inv.Lines[0].ProductName != "Pen" || !inv.Lines[0].Total.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected first line: %+v", inv.Lines[0])
	}
}

func TestBuildOmitsEmptyCustomer(t *testing.T) {
	s := sessionWithLines(t)
	inv := Build(s.Snapshot())
	if inv.Customer != nil {
		t.Fatal("customer must be omitted when every field is blank")
	}

	s.SetCustomer(models.CustomerInfo{Phone: "0770"})
	inv = Build(s.Snapshot())
	if inv.Customer == nil || inv.Customer.Phone != "0770" {
		t.Fatalf("customer with one field set must be included, got %+v", inv.Customer)
	}
}

func TestBuildTrimsNotes(t *testing.T) {
	s := sessionWithLines(t)

	s.SetNotes("   \n\t ")
	if inv := Build(s.Snapshot()); inv.Notes != "" {
		t.Fatalf("blank notes must be omitted, got %q", inv.Notes)
	}

	s.SetNotes("  deliver friday  ")
	if inv := Build(s.Snapshot()); inv.Notes != "deliver friday" {
		t.Fatalf("expected trimmed notes, got %q", inv.Notes)
	}
}

func TestBuildOmitsUnsetDiscount(t *testing.T) {
	s := sessionWithLines(t)
	if inv := Build(s.Snapshot()); inv.Discount != nil {
		t.Fatal("discount must be omitted when unset")
	}
}

func TestNumberFormatAndMonotonicity(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)

	n1, n2 := Number(t1), Number(t2)
	if !strings.HasPrefix(n1, "INV-") {
		t.Fatalf("expected INV- prefix, got %q", n1)
	}
	if n1 >= n2 {
		t.Fatalf("later invoice must get a larger number: %q vs %q", n1, n2)
	}
}

func TestBuildIsAFreshSnapshotEachTime(t *testing.T) {
	s := sessionWithLines(t)
	before := Build(s.Snapshot())

	// A late edit must show up in the next build.
	s.SetNotes("urgent")
	after := Build(s.Snapshot())

	if before.Notes == after.Notes {
		t.Fatal("export must re-derive from live state")
	}
	if !before.Subtotal.Equal(after.Subtotal) {
		t.Fatal("untouched totals must match across builds")
	}
}
