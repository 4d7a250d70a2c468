package service_test

import (
	"testing"

	"github.com/unclebandit/bankrec-mock-backend/internal/fixture"
	"github.com/unclebandit/bankrec-mock-backend/internal/repository"
	"github.com/unclebandit/bankrec-mock-backend/internal/service"
)

func TestPaginationWalk(t *testing.T) {
	svc := &service.RecommendationService{
		CustomerRepo: repository.NewFixtureCustomerRepository(),
	}

	pageSize := 25
	seen := map[int]bool{}
	totalPages := (fixture.DatasetSize + pageSize - 1) / pageSize

	for page := 1; page <= totalPages; page++ {
		customers, pagination, err := svc.ListCustomers(page, pageSize, repository.CustomerFilter{})
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", page, err)
		}

		if pagination["total_count"] != fixture.DatasetSize {
			t.Errorf("page %d: expected total_count %d, got %d",
				page, fixture.DatasetSize, pagination["total_count"])
		}
		if pagination["total_pages"] != totalPages {
			t.Errorf("page %d: expected total_pages %d, got %d",
				page, totalPages, pagination["total_pages"])
		}

		for _, c := range customers {
			if seen[c.ID] {
				t.Errorf("duplicate customer ID %d across pages", c.ID)
			}
			seen[c.ID] = true
		}

		// Ascending id order inside each page
		for i := 1; i < len(customers); i++ {
			if customers[i-1].ID >= customers[i].ID {
				t.Errorf("page %d: ids not ascending", page)
			}
		}
	}

	if len(seen) != fixture.DatasetSize {
		t.Errorf("expected %d unique customers, got %d", fixture.DatasetSize, len(seen))
	}

	// Last page is short: 120 % 25 = 20.
	customers, _, _ := svc.ListCustomers(totalPages, pageSize, repository.CustomerFilter{})
	if len(customers) != fixture.DatasetSize%pageSize {
		t.Errorf("expected %d rows on last page, got %d", fixture.DatasetSize%pageSize, len(customers))
	}

	// Page past the end is empty but well-formed.
	customers, pagination, _ := svc.ListCustomers(totalPages+1, pageSize, repository.CustomerFilter{})
	if len(customers) != 0 {
		t.Errorf("expected empty page past the end, got %d rows", len(customers))
	}
	if pagination["total_count"] != fixture.DatasetSize {
		t.Errorf("expected total_count intact past the end, got %d", pagination["total_count"])
	}
}
