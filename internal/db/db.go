// internal/db/db.go
package db

import (
    "database/sql"
    "fmt"
    _ "github.com/lib/pq"
    "log"
    "os"
)

var DB *sql.DB

// DSN builds the Postgres connection string for real-backend mode.
// DATABASE_URL wins when set, otherwise the discrete DB_* variables are used.
func DSN() string {
    if url := os.Getenv("DATABASE_URL"); url != "" {
        return url
    }
    user := os.Getenv("DB_USER")
    pass := os.Getenv("DB_PASSWORD")
    host := os.Getenv("DB_HOST")
    port := os.Getenv("DB_PORT")
    name := os.Getenv("DB_NAME")
    return fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        user, pass, host, port, name,
    )
}

// Init connects to Postgres and stores the handle in DB.
// Only called when the mock is switched to real-backend mode.
func Init() {
    dsn := DSN()

    var err error
    DB, err = sql.Open("postgres", dsn)
    if err != nil {
        log.Fatalf("failed to connect to DB: %v", err)
    }

    if err = DB.Ping(); err != nil {
        log.Fatalf("failed to ping DB: %v", err)
    }

    log.Println("✅ Connected to database")
}
