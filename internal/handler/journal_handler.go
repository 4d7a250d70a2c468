// internal/handler/journal_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/unclebandit/bankrec-mock-backend/internal/queue"
)

// JournalHandler holds the dependencies for the request-journal HTTP handlers
type JournalHandler struct {
	Journal *queue.Journal
}

// NewJournalHandler creates a new JournalHandler over the given journal
func NewJournalHandler(journal *queue.Journal) *JournalHandler {
	return &JournalHandler{
		Journal: journal,
	}
}

// ListJournalHandler returns recently served requests, newest first
func (h *JournalHandler) ListJournalHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	records := h.Journal.Recent(limit)

	response := map[string]interface{}{
		"requests": records,
		"count":    len(records),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ClearJournalHandler empties the journal
func (h *JournalHandler) ClearJournalHandler(w http.ResponseWriter, r *http.Request) {
	h.Journal.Clear()
	w.WriteHeader(http.StatusNoContent)
}
