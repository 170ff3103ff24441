package catalog

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"go-invoice-pos/internal/models"
)

func sample() []models.Product {
	mk := func(name, group string) models.Product {
		return models.Product{Name: name, Group: group, UnitPrice: decimal.NewFromInt(100), AvailableQty: 5}
	}
	return []models.Product{
		mk("Blue Pen", "Stationery"),
		mk("Notebook", "Stationery"),
		mk("Stapler", "Office"),
		mk("Red Pen", "Stationery"),
		mk("Desk Lamp", "Office"),
		mk("USB Cable", "Electronics"),
	}
}

func names(products []models.Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestUniqueGroupsFirstSeenOrder(t *testing.T) {
	got := UniqueGroups(sample())
	want := []string{"Stationery", "Office", "Electronics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUniqueGroupsSkipsEmptyLabels(t *testing.T) {
	products := append(sample(), models.Product{Name: "Loose Item"})
	for _, g := range UniqueGroups(products) {
		if g == "" {
			t.Fatal("empty group label should not be listed")
		}
	}
}

func TestFilterByGroup(t *testing.T) {
	got := FilterByGroup(sample(), "Office")
	want := []string{"Stapler", "Desk Lamp"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestFilterByGroupEmptyIsIdentity(t *testing.T) {
	products := sample()
	got := FilterByGroup(products, "")
	if len(got) != len(products) {
		t.Fatalf("empty group must return the full catalog, got %d of %d", len(got), len(products))
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	got := Search(sample(), "pen")
	want := []string{"Blue Pen", "Red Pen"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestSearchEmptyTermIsIdentity(t *testing.T) {
	products := sample()
	if got := Search(products, ""); len(got) != len(products) {
		t.Fatalf("empty term must return the full catalog, got %d of %d", len(got), len(products))
	}
}

func TestViewComposesGroupThenSearch(t *testing.T) {
	got := View(sample(), "Stationery", "red")
	want := []string{"Red Pen"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestViewAlwaysRecomputesFromFullCatalog(t *testing.T) {
	products := sample()

	// Narrow to one group, then switch the group without "undoing" anything:
	// the other group's products must come back.
	_ = View(products, "Electronics", "")
	got := View(products, "Office", "")
	want := []string{"Stapler", "Desk Lamp"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v after switching groups, got %v", want, names(got))
	}
}

func TestQueriesDoNotMutateInput(t *testing.T) {
	products := sample()
	before := names(products)
	UniqueGroups(products)
	FilterByGroup(products, "Office")
	Search(products, "pen")
	if !reflect.DeepEqual(names(products), before) {
		t.Fatal("catalog queries must not reorder or mutate the input")
	}
}
