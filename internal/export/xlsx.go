// Package export renders an assembled invoice into a downloadable document.
// The engine's only contract with this layer is the complete invoice record;
// nothing here reaches back into session state.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"go-invoice-pos/internal/models"
)

const sheetName = "Invoice"

// InvoiceXLSX renders the invoice into an XLSX workbook and returns its
// bytes, ready to stream as an attachment.
func InvoiceXLSX(inv models.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	set := func(col string, v interface{}) {
		// Cell coordinates are built per row; errors only occur for
		// invalid coordinates, which cannot happen here.
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
	}

	set("A", "Invoice")
	set("B", inv.Number)
	row++
	set("A", "Date")
	set("B", inv.Date.Format("2006-01-02 15:04"))
	row++

	if inv.Customer != nil {
		set("A", "Customer")
		set("B", inv.Customer.Name)
		set("C", inv.Customer.Phone)
		set("D", inv.Customer.Address)
		row++
	}
	row++

	// Line table
	set("A", "Product")
	set("B", "Group")
	set("C", "Qty")
	set("D", "Unit Price")
	set("E", "Discount")
	set("F", "Total")
	row++

	for _, line := range inv.Lines {
		set("A", line.ProductName)
		set("B", line.Group)
		set("C", line.Quantity)
		set("D", line.UnitPrice.String())
		set("E", discountLabel(line.Discount))
		set("F", line.Total.String())
		row++
	}
	row++

	set("A", "Subtotal")
	set("F", inv.Subtotal.String())
	row++
	if inv.Discount != nil {
		set("A", "Invoice Discount")
		set("E", invoiceDiscountLabel(inv.Discount))
		set("F", inv.DiscountValue.Neg().String())
		row++
	}
	set("A", "Total")
	set("F", inv.Total.String())
	row++

	if inv.Notes != "" {
		row++
		set("A", "Notes")
		set("B", inv.Notes)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func discountLabel(d *models.LineDiscount) string {
	if d == nil || d.Amount.IsZero() {
		return ""
	}
	if d.Kind == models.DiscountPercentage {
		return d.Amount.String() + "%"
	}
	return d.Amount.String()
}

func invoiceDiscountLabel(d *models.InvoiceDiscount) string {
	if d == nil {
		return ""
	}
	if d.Kind == models.DiscountPercentage {
		return d.Amount.String() + "%"
	}
	return d.Amount.String()
}
