package repository

import (
    "database/sql"
    "fmt"

    appErrors "github.com/unclebandit/bankrec-mock-backend/internal/errors"
    "github.com/unclebandit/bankrec-mock-backend/internal/fixture"
    "github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// PostgresCustomerRepository serves customers from the seeded database when
// the mock is switched to real-backend mode. Response shapes stay identical
// to the fixture backend.
type PostgresCustomerRepository struct {
    DB *sql.DB
}

const customerColumns = `id, name, gender, age, city, state, occupation, income_bracket, recommended_product, confidence, reason`

func scanCustomer(row interface{ Scan(...any) error }) (*model.Customer, error) {
    var c model.Customer
    err := row.Scan(
        &c.ID, &c.Name, &c.Gender, &c.Age, &c.City, &c.State,
        &c.Occupation, &c.IncomeBracket, &c.RecommendedProduct,
        &c.Confidence, &c.Reason,
    )
    if err != nil {
        return nil, err
    }
    return &c, nil
}

// buildWhere turns the filter into a WHERE clause with positional args.
func buildWhere(f CustomerFilter) (string, []interface{}) {
    clause := ` WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if f.Search != "" {
        clause += fmt.Sprintf(" AND name ILIKE $%d", argPos)
        args = append(args, "%"+f.Search+"%")
        argPos++
    }
    if f.MinAge > 0 {
        clause += fmt.Sprintf(" AND age >= $%d", argPos)
        args = append(args, f.MinAge)
        argPos++
    }
    if f.MaxAge > 0 {
        clause += fmt.Sprintf(" AND age <= $%d", argPos)
        args = append(args, f.MaxAge)
        argPos++
    }
    if f.MinConfidence > 0 {
        clause += fmt.Sprintf(" AND confidence >= $%d", argPos)
        args = append(args, f.MinConfidence)
        argPos++
    }
    if f.Product != "" {
        clause += fmt.Sprintf(" AND recommended_product = $%d", argPos)
        args = append(args, f.Product)
        argPos++
    }
    if f.State != "" {
        clause += fmt.Sprintf(" AND state = $%d", argPos)
        args = append(args, f.State)
        argPos++
    }
    if f.Gender != "" {
        clause += fmt.Sprintf(" AND LOWER(gender) = LOWER($%d)", argPos)
        args = append(args, f.Gender)
        argPos++
    }

    return clause, args
}

func (r *PostgresCustomerRepository) List(f CustomerFilter, offset, limit int) ([]model.Customer, int, error) {
    where, args := buildWhere(f)

    query := `SELECT ` + customerColumns + ` FROM customers` + where
    query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
    rows, err := r.DB.Query(query, append(args, limit, offset)...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    customers := []model.Customer{}
    for rows.Next() {
        c, err := scanCustomer(rows)
        if err != nil {
            return nil, 0, err
        }
        customers = append(customers, *c)
    }

    var total int
    countQuery := `SELECT COUNT(*) FROM customers` + where
    if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return customers, total, nil
}

func (r *PostgresCustomerRepository) GetByID(id int) (*model.Customer, error) {
    query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
    c, err := scanCustomer(r.DB.QueryRow(query, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCustomerNotFound(id)
        }
        return nil, err
    }
    return c, nil
}

func (r *PostgresCustomerRepository) Products() ([]model.Product, error) {
    rows, err := r.DB.Query(`SELECT name FROM products ORDER BY name`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    products := []model.Product{}
    for rows.Next() {
        var p model.Product
        if err := rows.Scan(&p.Name); err != nil {
            return nil, err
        }
        products = append(products, p)
    }
    return products, nil
}

// FilterOptions computes age bounds and states from the seeded rows; the
// purely static enumerations come from the fixture package either way.
func (r *PostgresCustomerRepository) FilterOptions() (model.FilterOptions, error) {
    opts := fixture.Options()

    err := r.DB.QueryRow(`SELECT MIN(age), MAX(age) FROM customers`).Scan(&opts.MinAge, &opts.MaxAge)
    if err != nil {
        return model.FilterOptions{}, err
    }

    rows, err := r.DB.Query(`SELECT DISTINCT state FROM customers ORDER BY state`)
    if err != nil {
        return model.FilterOptions{}, err
    }
    defer rows.Close()

    states := []string{}
    for rows.Next() {
        var s string
        if err := rows.Scan(&s); err != nil {
            return model.FilterOptions{}, err
        }
        states = append(states, s)
    }
    opts.States = states

    return opts, nil
}

var _ CustomerRepositoryInterface = (*PostgresCustomerRepository)(nil)
