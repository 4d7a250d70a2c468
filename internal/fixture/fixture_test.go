package fixture

import (
	"strings"
	"testing"
)

func TestDatasetShape(t *testing.T) {
	customers := Customers()

	if len(customers) != DatasetSize {
		t.Fatalf("expected %d customers, got %d", DatasetSize, len(customers))
	}

	products := map[string]bool{}
	for _, p := range Products() {
		products[p.Name] = true
	}

	for i, c := range customers {
		if c.ID != i+1 {
			t.Errorf("expected id %d at position %d, got %d", i+1, i, c.ID)
		}
		if c.Confidence < 0 || c.Confidence > 1 {
			t.Errorf("customer %d: confidence %f out of [0,1]", c.ID, c.Confidence)
		}
		if !products[c.RecommendedProduct] {
			t.Errorf("customer %d: product %q not in product list", c.ID, c.RecommendedProduct)
		}
		if c.Reason == "" {
			t.Errorf("customer %d: empty reason", c.ID)
		}
		if strings.Contains(c.Reason, "{") {
			t.Errorf("customer %d: unfilled placeholder in reason %q", c.ID, c.Reason)
		}
		if c.Gender != "male" && c.Gender != "female" {
			t.Errorf("customer %d: unexpected gender %q", c.ID, c.Gender)
		}
	}
}

func TestDatasetDeterministic(t *testing.T) {
	a := buildCustomers()
	b := buildCustomers()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("dataset not deterministic at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestOptionsAgeBounds(t *testing.T) {
	opts := Options()
	customers := Customers()

	for _, c := range customers {
		if c.Age < opts.MinAge || c.Age > opts.MaxAge {
			t.Errorf("customer %d: age %d outside advertised bounds [%d,%d]",
				c.ID, c.Age, opts.MinAge, opts.MaxAge)
		}
	}

	if len(opts.States) == 0 || len(opts.Products) == 0 {
		t.Error("expected non-empty states and products enumerations")
	}
	if len(opts.AccountTypes) == 0 || len(opts.Statuses) == 0 {
		t.Error("expected non-empty account types and statuses")
	}
}

func TestRenderReason(t *testing.T) {
	got := RenderReason("A {x} and {y}", map[string]string{"x": "1", "y": "2"})
	if got != "A 1 and 2" {
		t.Errorf("unexpected render result: %q", got)
	}
}
