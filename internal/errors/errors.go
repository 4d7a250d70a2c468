// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCustomerNotFound is a sentinel error
type ErrCustomerNotFound struct {
    CustomerID int
}

func (e *ErrCustomerNotFound) Error() string {
    return fmt.Sprintf("customer with ID %d not found", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id int) error {
    return &ErrCustomerNotFound{CustomerID: id}
}

// IsCustomerNotFound reports whether err is an ErrCustomerNotFound.
func IsCustomerNotFound(err error) bool {
    _, ok := err.(*ErrCustomerNotFound)
    return ok
}
