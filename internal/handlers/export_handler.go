package handlers

import (
	"fmt"
	"net/http"

	"go-invoice-pos/internal/database"
	"go-invoice-pos/internal/export"
	"go-invoice-pos/internal/invoice"
	"go-invoice-pos/internal/sheet"

	"github.com/gin-gonic/gin"
)

// ExportInvoice assembles the invoice from live state and streams it as an
// XLSX attachment. Late edits right before exporting are always reflected
// because nothing is cached.
func ExportInvoice(c *gin.Context) {
	inv := invoice.Build(Sess.Snapshot())

	data, err := export.InvoiceXLSX(inv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", inv.Number))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}

// GetInvoiceRecord returns the assembled invoice as JSON, for export
// collaborators that render their own documents.
func GetInvoiceRecord(c *gin.Context) {
	c.JSON(http.StatusOK, invoice.Build(Sess.Snapshot()))
}

// ImportCatalog replaces the catalog from an uploaded XLSX workbook and
// restarts the session with the fresh snapshot. The current invoice is
// discarded, so the clerk is warned client-side before calling this.
func ImportCatalog(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer src.Close()

	products, err := sheet.ParseCatalog(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workbook contains no products"})
		return
	}

	if err := database.ReplaceCatalog(database.DB, products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save catalog"})
		return
	}

	Sess.ResetCatalog(products)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Catalog imported",
		"products": len(products),
	})
}
