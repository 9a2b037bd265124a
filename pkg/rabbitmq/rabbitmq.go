package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
)

// DefaultQueue is the queue sale events are published to when none is configured.
const DefaultQueue = "sale_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declare(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	slog.Info("RabbitMQ client connected", "queue", queue)

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

func declare(ch *amqp.Channel, queue string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return q, nil
}

// Queue returns the name of the queue the client publishes to.
func (c *Client) Queue() string {
	return c.queue
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// encode builds a persistent JSON message for payload.
func encode(payload interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event to JSON: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
	}, nil
}

// PublishJSON marshals payload and publishes it on the default exchange,
// routed to the client's queue.
func (c *Client) PublishJSON(ctx context.Context, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.channel == nil {
		return errors.New("RabbitMQ channel is not available")
	}

	msg, err := encode(payload, time.Now())
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key
		false,   // mandatory
		false,   // immediate
		msg,
	)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	slog.Debug("sent event", "queue", c.queue, "bytes", len(msg.Body))
	return nil
}

// ConsumeSaleEvents delivers messages from the client's queue to handler
// until ctx is cancelled or the broker closes the delivery channel. A message
// is acked when handler returns nil. A handler error nacks it without
// requeueing so a poisoned message cannot loop.
func (c *Client) ConsumeSaleEvents(ctx context.Context, handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return errors.New("RabbitMQ channel is not available for consumption")
	}

	queue, err := declare(c.channel, c.queue)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	slog.Info("waiting for sale events", "queue", queue.Name)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed by broker")
			}
			handle(msg, handler)
		}
	}
}

func handle(msg amqp.Delivery, handler func(msg amqp.Delivery) error) {
	if err := handler(msg); err != nil {
		slog.Error("error processing message", "delivery_tag", msg.DeliveryTag, "error", err)
		if nackErr := msg.Nack(false, false); nackErr != nil {
			slog.Error("error nacking message", "delivery_tag", msg.DeliveryTag, "error", nackErr)
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		slog.Error("error acking message", "delivery_tag", msg.DeliveryTag, "error", ackErr)
	}
}
