// internal/model/customer.go
package model

// Customer is one fixture record served to the recommendations UI.
// The dataset is read-only for the lifetime of the mock session.
type Customer struct {
    ID                 int     `db:"id" json:"id"`
    Name               string  `db:"name" json:"name"`
    Gender             string  `db:"gender" json:"gender"`
    Age                int     `db:"age" json:"age"`
    City               string  `db:"city" json:"city"`
    State              string  `db:"state" json:"state"`
    Occupation         string  `db:"occupation" json:"occupation"`
    IncomeBracket      string  `db:"income_bracket" json:"income_bracket"`
    RecommendedProduct string  `db:"recommended_product" json:"recommended_product"`
    Confidence         float64 `db:"confidence" json:"confidence"`
    Reason             string  `db:"reason" json:"reason"`
}
