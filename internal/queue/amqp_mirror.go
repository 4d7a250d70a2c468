// internal/queue/amqp_mirror.go
package queue

import (
	"encoding/json"

	"github.com/streadway/amqp"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// MirrorQueueName is the RabbitMQ queue journal events are mirrored to.
const MirrorQueueName = "mock_request_events"

// AmqpMirror publishes journal events to RabbitMQ.
type AmqpMirror struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialMirror connects to RabbitMQ and declares the mirror queue.
func DialMirror(url string) (*AmqpMirror, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		MirrorQueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AmqpMirror{conn: conn, ch: ch}, nil
}

// Publish sends one journal record as JSON.
func (m *AmqpMirror) Publish(rec model.RequestRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return m.ch.Publish(
		"",
		MirrorQueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Close tears down the channel and connection.
func (m *AmqpMirror) Close() {
	if m.ch != nil {
		m.ch.Close()
	}
	if m.conn != nil {
		m.conn.Close()
	}
}
