// Package sheet imports the product catalog from a spreadsheet. The expected
// layout matches the published sheet the clerk maintains: a header row, then
// one product per row with columns name, group, unit price, available qty.
package sheet

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"go-invoice-pos/internal/models"
)

// ParseCatalog reads product rows from an XLSX stream. Rows with a blank
// name are skipped; malformed numbers are an error, not a silent zero.
func ParseCatalog(r io.Reader) ([]models.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	var products []models.Product
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(cell(row, 2)))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad unit price %q", i+1, cell(row, 2))
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("row %d: unit price must not be negative", i+1)
		}

		qty, err := strconv.Atoi(strings.TrimSpace(cell(row, 3)))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad available quantity %q", i+1, cell(row, 3))
		}
		if qty < 0 {
			return nil, fmt.Errorf("row %d: available quantity must not be negative", i+1)
		}

		products = append(products, models.Product{
			Name:         name,
			Group:        strings.TrimSpace(cell(row, 1)),
			UnitPrice:    price,
			AvailableQty: qty,
		})
	}
	return products, nil
}

// LoadFile reads the catalog from an XLSX file on disk.
func LoadFile(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalog(f)
}

// cell returns column j of a row, tolerating short rows.
func cell(row []string, j int) string {
	if j >= len(row) {
		return ""
	}
	return row[j]
}
