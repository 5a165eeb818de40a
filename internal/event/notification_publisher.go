package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationPublisher publishes notification events to RabbitMQ. The
// service layer fires these on status changes; email/SMS delivery is the
// consumer's problem.
type NotificationPublisher struct {
	conn *RabbitMQConnection
}

func NewNotificationPublisher(conn *RabbitMQConnection) *NotificationPublisher {
	return &NotificationPublisher{conn: conn}
}

// Publish sends a notification event to the notification queue.
func (p *NotificationPublisher) Publish(ctx context.Context, ev NotificationEvent) error {
	_, err := p.conn.Channel.QueueDeclare(
		NotificationQueue, // queue name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",                // exchange
		NotificationQueue, // routing key (queue name)
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	slog.Info("Notification event published",
		"queue", NotificationQueue,
		"event_type", ev.EventType,
		"reference", ev.Reference,
	)

	return nil
}
