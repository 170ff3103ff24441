package handlers

import (
	"net/http"

	"go-invoice-pos/internal/catalog"
	"go-invoice-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the catalog view the clerk picks from. Available
// quantities reflect what the current invoice has already reserved.
// ?group= and ?search= are both applied against the full catalog: group
// filter first, then name search.
func GetProducts(c *gin.Context) {
	view := catalog.View(Sess.Products(), c.Query("group"), c.Query("search"))
	if view == nil {
		view = []models.Product{}
	}
	c.JSON(http.StatusOK, view)
}

// GetGroups returns the de-duplicated group labels in catalog order.
func GetGroups(c *gin.Context) {
	groups := catalog.UniqueGroups(Sess.Products())
	if groups == nil {
		groups = []string{}
	}
	c.JSON(http.StatusOK, groups)
}
