package service

import (
	"log"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
	"github.com/unclebandit/bankrec-mock-backend/internal/repository"
)

// JournalWorker drains mirrored request events into the request_log table.
type JournalWorker struct {
	JournalRepo repository.RequestLogRepositoryInterface
	JobChan     <-chan model.RequestRecord
}

// Constructor
func NewJournalWorker(repo repository.RequestLogRepositoryInterface, jobChan <-chan model.RequestRecord) *JournalWorker {
	return &JournalWorker{
		JournalRepo: repo,
		JobChan:     jobChan,
	}
}

// Start begins processing jobs. Returns when JobChan closes.
func (w *JournalWorker) Start() {
	for rec := range w.JobChan {
		if err := w.JournalRepo.Create(&rec); err != nil {
			log.Println("Failed to persist journal entry:", err)
			continue
		}
	}
}
