// Package catalog answers filter and search queries over the product set.
// All functions are pure queries: they never mutate the input slice and
// always preserve its order.
package catalog

import (
	"strings"

	"go-invoice-pos/internal/models"
)

// UniqueGroups returns the de-duplicated group labels in first-seen order.
func UniqueGroups(products []models.Product) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, p := range products {
		if p.Group == "" || seen[p.Group] {
			continue
		}
		seen[p.Group] = true
		groups = append(groups, p.Group)
	}
	return groups
}

// FilterByGroup returns the products belonging to group. An empty group is
// the identity: it returns the full input, never "no products".
func FilterByGroup(products []models.Product, group string) []models.Product {
	if group == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out
}

// Search returns the products whose name contains term, case-insensitively.
// An empty term is the identity.
func Search(products []models.Product, term string) []models.Product {
	if term == "" {
		return products
	}
	term = strings.ToLower(term)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// View composes group filter and search over the full catalog. Both filters
// always recompute from the complete product set, so changing one never
// needs the other to be undone first.
func View(products []models.Product, group, term string) []models.Product {
	return Search(FilterByGroup(products, group), term)
}
