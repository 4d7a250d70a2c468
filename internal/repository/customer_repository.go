package repository

import (
	"strings"

	appErrors "github.com/unclebandit/bankrec-mock-backend/internal/errors"
	"github.com/unclebandit/bankrec-mock-backend/internal/fixture"
	"github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// CustomerFilter holds the conjunctive list filters. Zero values mean
// "no constraint".
type CustomerFilter struct {
	Search        string  // case-insensitive substring on name
	MinAge        int
	MaxAge        int
	MinConfidence float64
	Product       string
	State         string
	Gender        string
}

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	List(f CustomerFilter, offset, limit int) ([]model.Customer, int, error)
	GetByID(id int) (*model.Customer, error)
	Products() ([]model.Product, error)
	FilterOptions() (model.FilterOptions, error)
}

// FixtureCustomerRepository serves the in-memory fixture dataset. It is the
// default backend while USE_MOCK is true.
type FixtureCustomerRepository struct {
	customers []model.Customer
}

func NewFixtureCustomerRepository() *FixtureCustomerRepository {
	return &FixtureCustomerRepository{customers: fixture.Customers()}
}

// Matches reports whether c passes every set constraint in f.
func (f CustomerFilter) Matches(c model.Customer) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.MinAge > 0 && c.Age < f.MinAge {
		return false
	}
	if f.MaxAge > 0 && c.Age > f.MaxAge {
		return false
	}
	if f.MinConfidence > 0 && c.Confidence < f.MinConfidence {
		return false
	}
	if f.Product != "" && c.RecommendedProduct != f.Product {
		return false
	}
	if f.State != "" && c.State != f.State {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(c.Gender, f.Gender) {
		return false
	}
	return true
}

// List applies the filter and slices out one page. Customers are already in
// ascending id order so page walks are stable.
func (r *FixtureCustomerRepository) List(f CustomerFilter, offset, limit int) ([]model.Customer, int, error) {
	matched := []model.Customer{}
	for _, c := range r.customers {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}

	total := len(matched)
	start := offset
	end := offset + limit
	if start >= total {
		return []model.Customer{}, total, nil
	}
	if end > total {
		end = total
	}

	page := make([]model.Customer, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

// GetByID fetches a customer by ID
func (r *FixtureCustomerRepository) GetByID(id int) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, appErrors.NewCustomerNotFound(id)
}

func (r *FixtureCustomerRepository) Products() ([]model.Product, error) {
	return fixture.Products(), nil
}

func (r *FixtureCustomerRepository) FilterOptions() (model.FilterOptions, error) {
	return fixture.Options(), nil
}

var _ CustomerRepositoryInterface = (*FixtureCustomerRepository)(nil)
