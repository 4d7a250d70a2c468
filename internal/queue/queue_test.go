package queue_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
	"github.com/unclebandit/bankrec-mock-backend/internal/queue"
)

func TestJournalCapAndOrder(t *testing.T) {
	j := queue.NewJournal(3)

	for i := 1; i <= 5; i++ {
		j.Append(model.RequestRecord{ID: fmt.Sprintf("r%d", i)})
	}

	if j.Len() != 3 {
		t.Fatalf("expected cap 3, got %d", j.Len())
	}

	recent := j.Recent(10)
	if len(recent) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recent))
	}
	// Newest first, oldest two evicted.
	if recent[0].ID != "r5" || recent[1].ID != "r4" || recent[2].ID != "r3" {
		t.Errorf("unexpected order: %s %s %s", recent[0].ID, recent[1].ID, recent[2].ID)
	}

	j.Clear()
	if j.Len() != 0 {
		t.Errorf("expected empty journal after clear, got %d", j.Len())
	}
}

func TestJournalRecentLimit(t *testing.T) {
	j := queue.NewJournal(10)
	for i := 1; i <= 5; i++ {
		j.Append(model.RequestRecord{ID: fmt.Sprintf("r%d", i)})
	}

	recent := j.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].ID != "r5" || recent[1].ID != "r4" {
		t.Errorf("expected newest first, got %s %s", recent[0].ID, recent[1].ID)
	}
}

func TestJournalSubscriberAppends(t *testing.T) {
	q := queue.NewInMemoryQueue()
	j := queue.NewJournal(10)

	queue.StartJournalSubscriber(q, j, nil)

	rec := model.RequestRecord{
		ID:       "abc",
		Method:   "GET",
		Path:     "/api/customers",
		Status:   200,
		ServedAt: time.Now(),
	}
	if err := q.Publish(queue.TopicRequestEvents, rec); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	// Subscribers run in goroutines; wait for the record to land.
	deadline := time.Now().Add(2 * time.Second)
	for j.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for journal append")
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := j.Recent(1)[0]
	if got.ID != "abc" || got.Path != "/api/customers" {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	q := queue.NewInMemoryQueue()
	if err := q.Publish("nobody_listening", 1); err == nil {
		t.Error("expected error when no subscribers exist")
	}
}
