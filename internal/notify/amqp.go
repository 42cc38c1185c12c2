package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"finmate/internal/logger"
)

const publishTimeout = 5 * time.Second

// AMQPNotifier publishes breach events to a direct exchange backed by a
// durable queue.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
}

// NewAMQPNotifier dials the broker and declares the exchange and queue.
func NewAMQPNotifier(url, exchange, queue string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, q.Name, exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Get().Infow("connected to rabbitmq", "exchange", exchange, "queue", queue)
	return &AMQPNotifier{conn: conn, channel: ch, exchange: exchange, queue: queue}, nil
}

// PublishBreaches serializes the event as JSON and publishes it with a
// bounded timeout so a slow broker never stalls request handling.
func (n *AMQPNotifier) PublishBreaches(ctx context.Context, event BreachEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal breach event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(ctx, n.exchange, n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish breach event: %w", err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (n *AMQPNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		_ = n.conn.Close()
		return err
	}
	return n.conn.Close()
}
