package handlers

import (
	"net/http"

	"go-invoice-pos/internal/models"
	"go-invoice-pos/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AddLineRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type PriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type DiscountRequest struct {
	Amount decimal.Decimal     `json:"amount"`
	Kind   models.DiscountKind `json:"kind" binding:"required"`
}

// LineView is one invoice row as rendered to the clerk: the stored line
// plus its total derived by the pricing calculator.
type LineView struct {
	ID          string               `json:"id"`
	ProductName string               `json:"product_name"`
	Quantity    int                  `json:"quantity"`
	UnitPrice   decimal.Decimal      `json:"unit_price"`
	Discount    *models.LineDiscount `json:"discount,omitempty"`
	Total       decimal.Decimal      `json:"total"`
}

// InvoiceView is the live invoice state plus all computed totals.
type InvoiceView struct {
	Lines         []LineView              `json:"lines"`
	Customer      models.CustomerInfo     `json:"customer_info"`
	Notes         string                  `json:"notes"`
	Discount      *models.InvoiceDiscount `json:"discount,omitempty"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	DiscountValue decimal.Decimal         `json:"discount_value"`
	Total         decimal.Decimal         `json:"total"`
}

// AddLine adds a product to the invoice, merging into an existing line when
// the product is already present.
func AddLine(c *gin.Context) {
	var req AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	line, err := Sess.AddLine(req.ProductName, req.Quantity)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"line_id":  line.ID,
		"quantity": line.Quantity,
		"total":    pricing.LineTotal(&line),
	})
}

// RemoveLine returns the line's quantity to stock and deletes it.
func RemoveLine(c *gin.Context) {
	if err := Sess.RemoveLine(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Line removed"})
}

// UpdateQuantity sets a line's quantity, checking increases against stock.
func UpdateQuantity(c *gin.Context) {
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := Sess.UpdateQuantity(c.Param("id"), req.Quantity); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

// UpdatePrice sets a custom unit price on a line.
func UpdatePrice(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := Sess.UpdatePrice(c.Param("id"), req.Price); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated"})
}

// UpdateLineDiscount stores a per-line discount.
func UpdateLineDiscount(c *gin.Context) {
	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := Sess.UpdateLineDiscount(c.Param("id"), req.Amount, req.Kind); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount updated"})
}

// ClearLineDiscount removes a per-line discount.
func ClearLineDiscount(c *gin.Context) {
	if err := Sess.ClearLineDiscount(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount cleared"})
}

// SetInvoiceDiscount sets the whole-invoice discount.
func SetInvoiceDiscount(c *gin.Context) {
	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := Sess.SetInvoiceDiscount(req.Amount, req.Kind); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice discount updated"})
}

// ClearInvoiceDiscount removes the whole-invoice discount.
func ClearInvoiceDiscount(c *gin.Context) {
	Sess.ClearInvoiceDiscount()
	c.JSON(http.StatusOK, gin.H{"message": "Invoice discount cleared"})
}

// SetCustomer stores the customer info fields.
func SetCustomer(c *gin.Context) {
	var req models.CustomerInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	Sess.SetCustomer(req)
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated"})
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

// SetNotes stores the invoice notes.
func SetNotes(c *gin.Context) {
	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	Sess.SetNotes(req.Notes)
	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}

// ClearInvoice empties the invoice and returns every reservation to stock.
func ClearInvoice(c *gin.Context) {
	Sess.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Invoice cleared"})
}

// GetInvoice renders the live invoice: every total is re-derived from line
// state on each call.
func GetInvoice(c *gin.Context) {
	snap := Sess.Snapshot()

	view := InvoiceView{
		Lines:    make([]LineView, 0, len(snap.Lines)),
		Customer: snap.Customer,
		Notes:    snap.Notes,
		Discount: snap.Discount,
	}
	for _, line := range snap.Lines {
		view.Lines = append(view.Lines, LineView{
			ID:          line.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   pricing.EffectiveUnitPrice(line),
			Discount:    line.Discount,
			Total:       pricing.LineTotal(line),
		})
	}
	view.Subtotal, view.DiscountValue, view.Total = pricing.GrandTotal(snap.Lines, snap.Discount)

	c.JSON(http.StatusOK, view)
}
