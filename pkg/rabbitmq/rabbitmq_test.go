package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent       []published
	publishErr error
	closed     bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestClient(ch *fakeChannel) *Client {
	return &Client{
		channel:  ch,
		exchange: "catalog",
		log:      zerolog.Nop(),
		now:      func() time.Time { return fixedTime },
	}
}

func TestClient_ProductUpdated(t *testing.T) {
	ch := &fakeChannel{}
	client := newTestClient(ch)

	product := models.Product{ID: 3, Name: "Lamp", Description: "Desk lamp", Price: 19.5, Stock: 4}
	require.NoError(t, client.ProductUpdated(context.Background(), product))

	require.Len(t, ch.sent, 1)
	sent := ch.sent[0]
	assert.Equal(t, "catalog", sent.exchange)
	assert.Equal(t, ProductUpdatedKey, sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, fixedTime, sent.msg.Timestamp)
	_, err := uuid.Parse(sent.msg.MessageId)
	assert.NoError(t, err)

	var event ProductEvent
	require.NoError(t, json.Unmarshal(sent.msg.Body, &event))
	assert.Equal(t, ProductUpdatedKey, event.Event)
	assert.Equal(t, 3, event.ProductID)
	assert.Equal(t, &product, event.Product)
	assert.True(t, fixedTime.Equal(event.OccurredAt))
}

func TestClient_ProductDeleted(t *testing.T) {
	ch := &fakeChannel{}
	client := newTestClient(ch)

	require.NoError(t, client.ProductDeleted(context.Background(), 7))

	require.Len(t, ch.sent, 1)
	assert.Equal(t, ProductDeletedKey, ch.sent[0].key)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(ch.sent[0].msg.Body, &body))
	assert.Equal(t, "product.deleted", body["event"])
	assert.EqualValues(t, 7, body["product_id"])
	assert.NotContains(t, body, "product")
}

func TestClient_PublishErrors(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	client := newTestClient(ch)

	err := client.ProductDeleted(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish product.deleted event")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = newTestClient(&fakeChannel{}).ProductDeleted(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	err = (&Client{now: time.Now}).ProductDeleted(context.Background(), 1)
	assert.EqualError(t, err, "RabbitMQ channel is not available")
}

func TestClient_Close(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, newTestClient(ch).Close())
	assert.True(t, ch.closed)
}
