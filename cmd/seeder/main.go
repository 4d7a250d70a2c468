//cmd/seeder/main.go
package main

import (
    "database/sql"
    "fmt"
    "log"

    "github.com/joho/godotenv"
    _ "github.com/lib/pq"

    "github.com/unclebandit/bankrec-mock-backend/internal/db"
    "github.com/unclebandit/bankrec-mock-backend/internal/fixture"
)

// The seeder pushes the fixture dataset into Postgres so real-backend mode
// serves the same 120 customers the in-memory mock does.

const schema = `
CREATE TABLE IF NOT EXISTS customers (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    gender TEXT NOT NULL,
    age INTEGER NOT NULL,
    city TEXT NOT NULL,
    state TEXT NOT NULL,
    occupation TEXT NOT NULL,
    income_bracket TEXT NOT NULL,
    recommended_product TEXT NOT NULL,
    confidence DOUBLE PRECISION NOT NULL,
    reason TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS request_log (
    id UUID PRIMARY KEY,
    method TEXT NOT NULL,
    path TEXT NOT NULL,
    query TEXT NOT NULL DEFAULT '',
    status INTEGER NOT NULL,
    served_at TIMESTAMPTZ NOT NULL
);
`

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    conn, err := sql.Open("postgres", db.DSN())
    if err != nil {
        log.Fatal(err)
    }
    defer conn.Close()

    if _, err := conn.Exec(schema); err != nil {
        log.Fatalf("failed to create tables: %v", err)
    }

    for _, p := range fixture.Products() {
        _, err := conn.Exec(
            `INSERT INTO products (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
            p.Name,
        )
        if err != nil {
            log.Fatalf("failed to seed product %s: %v", p.Name, err)
        }
    }

    seeded := 0
    for _, c := range fixture.Customers() {
        _, err := conn.Exec(`
            INSERT INTO customers
            (id, name, gender, age, city, state, occupation, income_bracket, recommended_product, confidence, reason)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
            ON CONFLICT (id) DO UPDATE SET
                name = EXCLUDED.name,
                gender = EXCLUDED.gender,
                age = EXCLUDED.age,
                city = EXCLUDED.city,
                state = EXCLUDED.state,
                occupation = EXCLUDED.occupation,
                income_bracket = EXCLUDED.income_bracket,
                recommended_product = EXCLUDED.recommended_product,
                confidence = EXCLUDED.confidence,
                reason = EXCLUDED.reason
        `,
            c.ID, c.Name, c.Gender, c.Age, c.City, c.State,
            c.Occupation, c.IncomeBracket, c.RecommendedProduct,
            c.Confidence, c.Reason,
        )
        if err != nil {
            log.Fatalf("failed to seed customer %d: %v", c.ID, err)
        }
        seeded++
    }

    fmt.Printf("Seeded: %d customers, %d products\n", seeded, len(fixture.Products()))
    fmt.Println("Database seeding completed successfully!")
}
