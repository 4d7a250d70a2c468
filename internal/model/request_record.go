// internal/model/request_record.go
package model

import "time"

// RequestRecord is one journal entry describing a request the mock served.
// The frontend team reads these back to see what the UI actually called.
type RequestRecord struct {
    ID       string    `db:"id" json:"id"`
    Method   string    `db:"method" json:"method"`
    Path     string    `db:"path" json:"path"`
    Query    string    `db:"query" json:"query"`
    Status   int       `db:"status" json:"status"`
    ServedAt time.Time `db:"served_at" json:"served_at"`
}
