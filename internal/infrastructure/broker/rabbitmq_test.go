package broker

import (
	"context"
	"errors"
	"testing"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	fail   error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func event() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:          "evt-1",
		Type:        domain.EventTypeMatchSettled,
		AggregateID: "match-1",
		Data:        []byte(`{"match_id":"match-1"}`),
	}
}

func TestPublish_SendsPersistentMessage(t *testing.T) {
	ch := &fakeChannel{}
	dials := 0
	p := NewPublisher("", func() (Channel, error) {
		dials++
		return ch, nil
	}, logger.NewNop())

	require.NoError(t, p.Publish(context.Background(), event()))
	require.NoError(t, p.Publish(context.Background(), event()))

	assert.Equal(t, 1, dials)
	require.Len(t, ch.sent, 2)
	sent := ch.sent[0]
	assert.Equal(t, "pontiff.settlements", sent.exchange)
	assert.Equal(t, "match.settled", sent.key)
	assert.Equal(t, "evt-1", sent.msg.MessageId)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, "match-1", sent.msg.Headers["aggregate_id"])
	assert.JSONEq(t, `{"match_id":"match-1"}`, string(sent.msg.Body))
}

func TestPublish_ReconnectsAfterFailure(t *testing.T) {
	broken := &fakeChannel{fail: errors.New("channel closed")}
	healthy := &fakeChannel{}
	channels := []*fakeChannel{broken, healthy}
	p := NewPublisher("x", func() (Channel, error) {
		ch := channels[0]
		channels = channels[1:]
		return ch, nil
	}, logger.NewNop())

	assert.Error(t, p.Publish(context.Background(), event()))
	assert.True(t, broken.closed)

	require.NoError(t, p.Publish(context.Background(), event()))
	assert.Len(t, healthy.sent, 1)
}

func TestPublish_DialError(t *testing.T) {
	p := NewPublisher("x", func() (Channel, error) {
		return nil, errors.New("connection refused")
	}, logger.NewNop())
	assert.Error(t, p.Publish(context.Background(), event()))
	assert.NoError(t, p.Close())
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "game.settled", RoutingKey(domain.EventTypeGameSettled))
	assert.Equal(t, "match.cancelled", RoutingKey(domain.EventTypeMatchCancelled))
}
