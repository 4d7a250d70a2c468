// internal/service/recommendation_service.go
package service

import (
    "time"

    "github.com/google/uuid"

    "github.com/unclebandit/bankrec-mock-backend/internal/model"
    "github.com/unclebandit/bankrec-mock-backend/internal/queue"
    "github.com/unclebandit/bankrec-mock-backend/internal/repository"
)

type RecommendationService struct {
    CustomerRepo repository.CustomerRepositoryInterface
    Queue        queue.Queue
}

// ListCustomers fetches one page of filtered customers with pagination info
func (s *RecommendationService) ListCustomers(page, pageSize int, f repository.CustomerFilter) ([]model.Customer, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    customers, total, err := s.CustomerRepo.List(f, offset, pageSize)
    if err != nil {
        return nil, nil, err
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return customers, pagination, nil
}

// EmptyPage returns the envelope the empty=true flag promises: zero rows,
// zeroed counts, but the same shape.
func (s *RecommendationService) EmptyPage(page, pageSize int) ([]model.Customer, map[string]int) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    return []model.Customer{}, map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": 0,
        "total_pages": 0,
    }
}

// GetCustomer fetches a single customer by ID
func (s *RecommendationService) GetCustomer(id int) (*model.Customer, error) {
    return s.CustomerRepo.GetByID(id)
}

func (s *RecommendationService) Products() ([]model.Product, error) {
    return s.CustomerRepo.Products()
}

func (s *RecommendationService) FilterOptions() (model.FilterOptions, error) {
    return s.CustomerRepo.FilterOptions()
}

// Record publishes one served request onto the journal topic. Recording is
// best-effort: a missing subscriber must never fail a response.
func (s *RecommendationService) Record(method, path, rawQuery string, status int) {
    if s.Queue == nil {
        return
    }
    rec := model.RequestRecord{
        ID:       uuid.NewString(),
        Method:   method,
        Path:     path,
        Query:    rawQuery,
        Status:   status,
        ServedAt: time.Now(),
    }
    _ = s.Queue.Publish(queue.TopicRequestEvents, rec)
}
