package repository

import (
    "database/sql"

    "github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// RequestLogRepositoryInterface defines methods used by the journal worker.
type RequestLogRepositoryInterface interface {
    Create(rec *model.RequestRecord) error
    ListRecent(limit int) ([]model.RequestRecord, error)
}

// RequestLogRepository persists mirrored journal events so served requests
// survive mock restarts.
type RequestLogRepository struct {
    DB *sql.DB
}

// Create inserts a journal entry. Duplicate ids are ignored so the worker's
// retry loop stays idempotent.
func (r *RequestLogRepository) Create(rec *model.RequestRecord) error {
    query := `
        INSERT INTO request_log (id, method, path, query, status, served_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING
    `
    _, err := r.DB.Exec(query, rec.ID, rec.Method, rec.Path, rec.Query, rec.Status, rec.ServedAt)
    return err
}

// ListRecent returns the newest entries first.
func (r *RequestLogRepository) ListRecent(limit int) ([]model.RequestRecord, error) {
    query := `
        SELECT id, method, path, query, status, served_at
        FROM request_log
        ORDER BY served_at DESC
        LIMIT $1
    `
    rows, err := r.DB.Query(query, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    records := []model.RequestRecord{}
    for rows.Next() {
        var rec model.RequestRecord
        if err := rows.Scan(&rec.ID, &rec.Method, &rec.Path, &rec.Query, &rec.Status, &rec.ServedAt); err != nil {
            return nil, err
        }
        records = append(records, rec)
    }
    return records, nil
}

var _ RequestLogRepositoryInterface = (*RequestLogRepository)(nil)
