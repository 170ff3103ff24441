// Package engine holds the clerk session: the stock snapshot taken from the
// catalog at session start, the ordered invoice line set, and the auxiliary
// invoice fields (customer, notes, invoice discount).
//
// Every exported operation is one indivisible state transition guarded by a
// single mutex: a reader never observes stock adjusted without the matching
// line change, or the other way round. reserve is the only place that
// touches a product's available quantity.
package engine

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-invoice-pos/internal/models"
)

// Session is the single-clerk invoice building session.
type Session struct {
	mu       sync.Mutex
	products []*models.Product
	byName   map[string]*models.Product
	lines    []*models.InvoiceLine
	customer models.CustomerInfo
	notes    string
	discount *models.InvoiceDiscount
}

// Snapshot is a consistent copy of session state for the pricing calculator
// and the invoice assembler. Lines and products are deep-copied so callers
// can read them without holding the session lock.
type Snapshot struct {
	Lines    []*models.InvoiceLine
	Customer models.CustomerInfo
	Notes    string
	Discount *models.InvoiceDiscount
}

// NewSession copies the catalog into a fresh session. The catalog source is
// treated as an initial snapshot; it is never re-pulled mid-session.
func NewSession(products []models.Product) *Session {
	s := &Session{}
	s.load(products)
	return s
}

func (s *Session) load(products []models.Product) {
	s.products = make([]*models.Product, 0, len(products))
	s.byName = make(map[string]*models.Product, len(products))
	for _, p := range products {
		cp := p
		s.products = append(s.products, &cp)
		s.byName[cp.Name] = &cp
	}
	s.lines = nil
	s.customer = models.CustomerInfo{}
	s.notes = ""
	s.discount = nil
}

// ResetCatalog replaces the product snapshot and clears the invoice in one
// transition. Used after a catalog re-import.
func (s *Session) ResetCatalog(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(products)
}

// reserve adjusts a product's available quantity. This is the only mutator
// of stock; callers must have rejected anything that would drive the
// quantity negative before getting here.
func (s *Session) reserve(p *models.Product, delta int) {
	p.AvailableQty += delta
}

// Products returns the session's product view in catalog order, with
// available quantities reflecting current reservations.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

// AddLine adds quantity units of the named product to the invoice.
// If a line for the product already exists the quantities merge into it;
// one line per distinct product, always.
func (s *Session) AddLine(productName string, quantity int) (models.InvoiceLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return models.InvoiceLine{}, ErrInvalidQuantity
	}
	p, ok := s.byName[productName]
	if !ok {
		return models.InvoiceLine{}, ErrProductNotFound
	}

	if line := s.findByProduct(productName); line != nil {
		// Merge: the combined quantity is checked against what is
		// available right now, before any of it is reserved.
		merged := line.Quantity + quantity
		if merged > p.AvailableQty {
			return models.InvoiceLine{}, ErrStockExceeded
		}
		line.Quantity = merged
		s.reserve(p, -quantity)
		return copyLine(line), nil
	}

	if quantity > p.AvailableQty {
		return models.InvoiceLine{}, ErrStockExceeded
	}
	line := &models.InvoiceLine{
		ID:       uuid.NewString(),
		Product:  p,
		Quantity: quantity,
	}
	s.lines = append(s.lines, line)
	s.reserve(p, -quantity)
	return copyLine(line), nil
}

// RemoveLine returns the line's full quantity to stock and deletes the line.
func (s *Session) RemoveLine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ID == id {
			s.reserve(line.Product, line.Quantity)
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// UpdateQuantity sets a line's quantity. An increase is checked against the
// stock available right now; a decrease always succeeds and returns the
// difference to stock. Zero or negative quantities are rejected; removing
// a line is a separate explicit operation.
func (s *Session) UpdateQuantity(id string, newQuantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newQuantity <= 0 {
		return ErrInvalidQuantity
	}
	line := s.findByID(id)
	if line == nil {
		return ErrLineNotFound
	}

	diff := newQuantity - line.Quantity
	if diff > line.Product.AvailableQty {
		return ErrStockExceeded
	}
	line.Quantity = newQuantity
	s.reserve(line.Product, -diff)
	return nil
}

// UpdatePrice sets a custom unit price on a line, overriding the product's
// list price for that line only.
func (s *Session) UpdatePrice(id string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if price.IsNegative() {
		return ErrInvalidMonetaryValue
	}
	line := s.findByID(id)
	if line == nil {
		return ErrLineNotFound
	}
	cp := price
	line.CustomPrice = &cp
	return nil
}

// UpdateLineDiscount stores a discount on a line. The discounted figure is
// computed on demand by the pricing package, never persisted on the line.
// A fixed discount may not exceed the line's current undiscounted total.
func (s *Session) UpdateLineDiscount(id string, amount decimal.Decimal, kind models.DiscountKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.findByID(id)
	if line == nil {
		return ErrLineNotFound
	}
	if err := validateDiscount(amount, kind); err != nil {
		return err
	}
	if kind == models.DiscountFixed {
		raw := effectivePrice(line).Mul(decimal.NewFromInt(int64(line.Quantity)))
		if amount.GreaterThan(raw) {
			return ErrInvalidMonetaryValue
		}
	}
	line.Discount = &models.LineDiscount{Amount: amount, Kind: kind}
	return nil
}

// ClearLineDiscount removes a line's discount.
func (s *Session) ClearLineDiscount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.findByID(id)
	if line == nil {
		return ErrLineNotFound
	}
	line.Discount = nil
	return nil
}

// SetInvoiceDiscount sets the whole-invoice discount. A fixed amount is not
// pre-clamped against the subtotal; the grand-total computation clamps.
func (s *Session) SetInvoiceDiscount(amount decimal.Decimal, kind models.DiscountKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateDiscount(amount, kind); err != nil {
		return err
	}
	s.discount = &models.InvoiceDiscount{Amount: amount, Kind: kind}
	return nil
}

// ClearInvoiceDiscount removes the whole-invoice discount.
func (s *Session) ClearInvoiceDiscount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = nil
}

// SetCustomer stores the customer info fields.
func (s *Session) SetCustomer(c models.CustomerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = c
}

// SetNotes stores the invoice notes.
func (s *Session) SetNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
}

// Clear returns every reserved quantity to stock, empties the line set, and
// resets customer info, notes, and the invoice discount. One lock scope, so
// a half-cleared invoice is never observable.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		s.reserve(line.Product, line.Quantity)
	}
	s.lines = nil
	s.customer = models.CustomerInfo{}
	s.notes = ""
	s.discount = nil
}

// Snapshot returns a consistent deep copy of the invoice state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Customer: s.customer,
		Notes:    s.notes,
	}
	if s.discount != nil {
		d := *s.discount
		snap.Discount = &d
	}
	snap.Lines = make([]*models.InvoiceLine, 0, len(s.lines))
	for _, line := range s.lines {
		cp := copyLine(line)
		snap.Lines = append(snap.Lines, &cp)
	}
	return snap
}

func (s *Session) findByID(id string) *models.InvoiceLine {
	for _, line := range s.lines {
		if line.ID == id {
			return line
		}
	}
	return nil
}

func (s *Session) findByProduct(name string) *models.InvoiceLine {
	for _, line := range s.lines {
		if line.Product.Name == name {
			return line
		}
	}
	return nil
}

func effectivePrice(line *models.InvoiceLine) decimal.Decimal {
	if line.CustomPrice != nil {
		return *line.CustomPrice
	}
	return line.Product.UnitPrice
}

func validateDiscount(amount decimal.Decimal, kind models.DiscountKind) error {
	if !kind.Valid() {
		return ErrInvalidMonetaryValue
	}
	if amount.IsNegative() {
		return ErrInvalidMonetaryValue
	}
	if kind == models.DiscountPercentage && amount.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidMonetaryValue
	}
	return nil
}

func copyLine(line *models.InvoiceLine) models.InvoiceLine {
	cp := models.InvoiceLine{
		ID:       line.ID,
		Quantity: line.Quantity,
	}
	if line.Product != nil {
		p := *line.Product
		cp.Product = &p
	}
	if line.CustomPrice != nil {
		price := *line.CustomPrice
		cp.CustomPrice = &price
	}
	if line.Discount != nil {
		d := *line.Discount
		cp.Discount = &d
	}
	return cp
}
