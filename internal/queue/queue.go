package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// TopicRequestEvents carries one payload per request the mock serves.
const TopicRequestEvents = "request_events"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process pub/sub queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %v\n", job.RetryCount, job.MaxRetries, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts\n", job.MaxRetries)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartJournalSubscriber wires the request-event topic into the in-memory
// journal. When mirror is non-nil every record is also published to RabbitMQ
// so external tooling (or cmd/worker) can pick it up. Mirroring is
// best-effort: a broker outage must not duplicate journal entries through
// the retry loop, so mirror failures are only logged.
func StartJournalSubscriber(q Queue, journal *Journal, mirror *AmqpMirror) {
	err := q.Subscribe(TopicRequestEvents, func(payload any) error {
		rec, ok := payload.(model.RequestRecord)
		if !ok {
			log.Println("⚠️ Invalid payload type, expected model.RequestRecord")
			return nil // no retry
		}

		journal.Append(rec)

		if mirror != nil {
			if err := mirror.Publish(rec); err != nil {
				log.Println("⚠️ Failed to mirror journal event:", err)
			}
		}

		return nil
	})

	if err != nil {
		log.Println("⚠️ Failed to start subscriber for", TopicRequestEvents, ":", err)
	}
}
