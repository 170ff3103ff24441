package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheetName, cellRef, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func header() []interface{} {
	return []interface{}{"Name", "Group", "Unit Price", "Available Qty"}
}

func TestParseCatalog(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		header(),
		{"Pen", "Stationery", 500, 10},
		{"Notebook", "Stationery", "1200.50", 4},
	})

	products, err := ParseCatalog(buf)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Pen" || products[0].Group != "Stationery" || products[0].AvailableQty != 10 {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if !products[1].UnitPrice.Equal(decimal.NewFromFloat(1200.50)) {
		t.Fatalf("expected price 1200.50, got %s", products[1].UnitPrice)
	}
}

func TestParseCatalogSkipsBlankNames(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		header(),
		{"", "Stationery", 500, 10},
		{"Pen", "Stationery", 500, 10},
	})

	products, err := ParseCatalog(buf)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Pen" {
		t.Fatalf("blank-name row must be skipped, got %+v", products)
	}
}

func TestParseCatalogRejectsBadNumbers(t *testing.T) {
	cases := []struct {
		name string
		row  []interface{}
	}{
		{"bad price", []interface{}{"Pen", "Stationery", "abc", 10}},
		{"negative price", []interface{}{"Pen", "Stationery", -5, 10}},
		{"bad quantity", []interface{}{"Pen", "Stationery", 500, "many"}},
		{"fractional quantity", []interface{}{"Pen", "Stationery", 500, "2.5"}},
		{"negative quantity", []interface{}{"Pen", "Stationery", 500, -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := workbook(t, [][]interface{}{header(), tc.row})
			if _, err := ParseCatalog(buf); err == nil {
				t.Fatal("expected an error, not a silent zero")
			}
		})
	}
}

func TestParseCatalogNotAWorkbook(t *testing.T) {
	if _, err := ParseCatalog(strings.NewReader("name,group\nPen,Stationery")); err == nil {
		t.Fatal("expected error for non-xlsx input")
	}
}
