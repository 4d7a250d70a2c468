// internal/controller/recommendation_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/bankrec-mock-backend/internal/errors"
    "github.com/unclebandit/bankrec-mock-backend/internal/repository"
    "github.com/unclebandit/bankrec-mock-backend/internal/service"
)

type RecommendationController struct {
    Service *service.RecommendationService
}

// writeJSON and writeError keep every endpoint on the same envelope.
func writeJSON(w http.ResponseWriter, status int, data any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
    writeJSON(w, status, map[string]string{"error": message})
}

// mockErrorRequested reports whether the simulated-failure flag is set.
// The flag always wins over normal handling.
func mockErrorRequested(r *http.Request) bool {
    return r.URL.Query().Get("mockError") == "true"
}

func emptyRequested(r *http.Request) bool {
    return r.URL.Query().Get("empty") == "true"
}

func intParam(r *http.Request, key string) int {
    // Malformed values fall back to 0; the service applies defaults.
    n, _ := strconv.Atoi(r.URL.Query().Get(key))
    return n
}

func floatParam(r *http.Request, key string) float64 {
    f, _ := strconv.ParseFloat(r.URL.Query().Get(key), 64)
    return f
}

// ListCustomers serves GET /api/customers
func (c *RecommendationController) ListCustomers(w http.ResponseWriter, r *http.Request) {
    if mockErrorRequested(r) {
        writeError(w, http.StatusInternalServerError, "simulated backend failure")
        return
    }

    page := intParam(r, "page")
    pageSize := intParam(r, "page_size")

    if emptyRequested(r) {
        customers, pagination := c.Service.EmptyPage(page, pageSize)
        writeJSON(w, http.StatusOK, map[string]interface{}{
            "data":       customers,
            "pagination": pagination,
        })
        return
    }

    filter := repository.CustomerFilter{
        Search:        r.URL.Query().Get("search"),
        MinAge:        intParam(r, "min_age"),
        MaxAge:        intParam(r, "max_age"),
        MinConfidence: floatParam(r, "min_confidence"),
        Product:       r.URL.Query().Get("product"),
        State:         r.URL.Query().Get("state"),
        Gender:        r.URL.Query().Get("gender"),
    }

    customers, pagination, err := c.Service.ListCustomers(page, pageSize, filter)
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":       customers,
        "pagination": pagination, // already contains total_count, total_pages, page, page_size
    })
}

// GetCustomer serves GET /api/customers/{id}
func (c *RecommendationController) GetCustomer(w http.ResponseWriter, r *http.Request) {
    if mockErrorRequested(r) {
        writeError(w, http.StatusInternalServerError, "simulated backend failure")
        return
    }

    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        writeError(w, http.StatusBadRequest, "invalid customer id")
        return
    }

    customer, err := c.Service.GetCustomer(id)
    if err != nil {
        if appErrors.IsCustomerNotFound(err) {
            writeError(w, http.StatusNotFound, err.Error())
            return
        }
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, customer)
}

// ListProducts serves GET /api/products
func (c *RecommendationController) ListProducts(w http.ResponseWriter, r *http.Request) {
    if mockErrorRequested(r) {
        writeError(w, http.StatusInternalServerError, "simulated backend failure")
        return
    }

    if emptyRequested(r) {
        writeJSON(w, http.StatusOK, map[string]interface{}{"products": []string{}})
        return
    }

    products, err := c.Service.Products()
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    names := make([]string, len(products))
    for i, p := range products {
        names[i] = p.Name
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{"products": names})
}

// GetFilterOptions serves GET /api/filters
func (c *RecommendationController) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
    if mockErrorRequested(r) {
        writeError(w, http.StatusInternalServerError, "simulated backend failure")
        return
    }

    opts, err := c.Service.FilterOptions()
    if err != nil {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{"filters": opts})
}
