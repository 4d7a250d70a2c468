// internal/model/product.go
package model

// Product is a recommendable banking product.
type Product struct {
    Name string `db:"name" json:"name"`
}

// FilterOptions holds the static enumerations the UI uses to build its
// filter controls.
type FilterOptions struct {
    MinAge         int      `json:"min_age"`
    MaxAge         int      `json:"max_age"`
    States         []string `json:"states"`
    AccountTypes   []string `json:"account_types"`
    Statuses       []string `json:"statuses"`
    Products       []string `json:"products"`
    IncomeBrackets []string `json:"income_brackets"`
}
