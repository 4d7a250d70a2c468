// internal/queue/journal.go
package queue

import (
	"sync"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// Journal is the capped in-memory record of served requests. Oldest entries
// fall off once the cap is reached.
type Journal struct {
	mu      sync.RWMutex
	records []model.RequestRecord
	cap     int
}

// NewJournal creates a journal holding at most capacity records.
func NewJournal(capacity int) *Journal {
	if capacity < 1 {
		capacity = 1
	}
	return &Journal{cap: capacity}
}

// Append adds a record, evicting the oldest one when full.
func (j *Journal) Append(rec model.RequestRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.records = append(j.records, rec)
	if len(j.records) > j.cap {
		j.records = j.records[len(j.records)-j.cap:]
	}
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(limit int) []model.RequestRecord {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if limit <= 0 || limit > len(j.records) {
		limit = len(j.records)
	}

	out := make([]model.RequestRecord, 0, limit)
	for i := len(j.records) - 1; i >= len(j.records)-limit; i-- {
		out = append(out, j.records[i])
	}
	return out
}

// Len returns the number of stored records.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.records)
}

// Clear empties the journal.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = nil
}
