package service_test

import (
	"testing"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
	"github.com/unclebandit/bankrec-mock-backend/internal/repository"
	"github.com/unclebandit/bankrec-mock-backend/internal/service"
)

// Mock repository recording the offset/limit the service computes
type MockCustomerRepo struct {
	lastOffset int
	lastLimit  int
}

func (m *MockCustomerRepo) List(f repository.CustomerFilter, offset, limit int) ([]model.Customer, int, error) {
	m.lastOffset = offset
	m.lastLimit = limit
	return []model.Customer{}, 0, nil
}

func (m *MockCustomerRepo) GetByID(id int) (*model.Customer, error) {
	return &model.Customer{ID: id, Name: "Aarav Sharma"}, nil
}

func (m *MockCustomerRepo) Products() ([]model.Product, error) {
	return []model.Product{{Name: "Savings Account"}}, nil
}

func (m *MockCustomerRepo) FilterOptions() (model.FilterOptions, error) {
	return model.FilterOptions{}, nil
}

func TestListCustomersClamping(t *testing.T) {
	repo := &MockCustomerRepo{}
	svc := &service.RecommendationService{CustomerRepo: repo}

	// Negative page falls back to 1, zero page size to 20.
	_, pagination, err := svc.ListCustomers(-3, 0, repository.CustomerFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pagination["page"] != 1 {
		t.Errorf("expected page 1, got %d", pagination["page"])
	}
	if pagination["page_size"] != 20 {
		t.Errorf("expected page_size 20, got %d", pagination["page_size"])
	}
	if repo.lastOffset != 0 {
		t.Errorf("expected offset 0, got %d", repo.lastOffset)
	}

	// Oversized page size is capped at 100.
	_, pagination, _ = svc.ListCustomers(2, 500, repository.CustomerFilter{})
	if pagination["page_size"] != 100 {
		t.Errorf("expected capped page_size 100, got %d", pagination["page_size"])
	}
	if repo.lastOffset != 100 {
		t.Errorf("expected offset 100 for page 2, got %d", repo.lastOffset)
	}
	if repo.lastLimit != 100 {
		t.Errorf("expected limit 100, got %d", repo.lastLimit)
	}
}

func TestEmptyPageEnvelope(t *testing.T) {
	svc := &service.RecommendationService{CustomerRepo: &MockCustomerRepo{}}

	customers, pagination := svc.EmptyPage(3, 15)
	if len(customers) != 0 {
		t.Errorf("expected no customers, got %d", len(customers))
	}
	if pagination["page"] != 3 || pagination["page_size"] != 15 {
		t.Errorf("expected requested page echoed back, got %+v", pagination)
	}
	if pagination["total_count"] != 0 || pagination["total_pages"] != 0 {
		t.Errorf("expected zeroed counts, got %+v", pagination)
	}
}
