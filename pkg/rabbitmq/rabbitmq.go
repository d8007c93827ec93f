package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
)

// Routing keys of the product events.
const (
	ProductUpdatedKey = "product.updated"
	ProductDeletedKey = "product.deleted"
)

// channel is the subset of *amqp.Channel used by Client.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Client publishes product events to a RabbitMQ topic exchange. It
// satisfies services.ProductIndexer.
type Client struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	log      zerolog.Logger
	now      func() time.Time

	mu sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
}

// ProductEvent is the JSON body of every message.
type ProductEvent struct {
	Event      string          `json:"event"`
	ProductID  int             `json:"product_id"`
	Product    *models.Product `json:"product,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewClient creates a new RabbitMQ client.
// It connects to RabbitMQ, opens a channel and declares the exchange.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // delete when unused
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	log.Info().Str("exchange", cfg.Exchange).Msg("RabbitMQ client connected")

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		log:      log,
		now:      time.Now,
	}, nil
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
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// ProductUpdated publishes a product.updated event carrying the product.
func (c *Client) ProductUpdated(ctx context.Context, product models.Product) error {
	return c.publish(ctx, ProductUpdatedKey, ProductEvent{
		Event:     ProductUpdatedKey,
		ProductID: product.ID,
		Product:   &product,
	})
}

// ProductDeleted publishes a product.deleted event.
func (c *Client) ProductDeleted(ctx context.Context, id int) error {
	return c.publish(ctx, ProductDeletedKey, ProductEvent{
		Event:     ProductDeletedKey,
		ProductID: id,
	})
}

func (c *Client) publish(ctx context.Context, routingKey string, event ProductEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	event.OccurredAt = c.now().UTC()
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.Publish(
		c.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.New().String(),
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	c.log.Debug().Str("routing_key", routingKey).Int("product_id", event.ProductID).Msg("product event published")
	return nil
}
