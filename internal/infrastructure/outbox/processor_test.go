package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain/mocks"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database/dbtest"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/repository"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newEvent(id, eventType string, deliveries domain.Deliveries) *domain.OutboxEvent {
	if deliveries == nil {
		deliveries = domain.Deliveries{}
	}
	return &domain.OutboxEvent{
		ID:          id,
		Type:        eventType,
		AggregateID: "agg-" + id,
		Data:        []byte(`{}`),
		Status:      domain.EventStatusPending,
		Deliveries:  datatypes.NewJSONType(deliveries),
	}
}

func namedSink(ctrl *gomock.Controller, name string) *mocks.MockEventSink {
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Name().Return(name).AnyTimes()
	return sink
}

func delivered() *domain.SinkDelivery {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.SinkDelivery{Attempts: 1, DeliveredAt: &at}
}

// countingSink fails its first `failures` publishes
type countingSink struct {
	name     string
	failures int
	calls    int
}

func (s *countingSink) Name() string { return s.name }

func (s *countingSink) Publish(context.Context, *domain.OutboxEvent) error {
	s.calls++
	if s.failures < 0 || s.calls <= s.failures {
		return errors.New(s.name + " unavailable")
	}
	return nil
}

func TestProcessEvent_AllSinksAccept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	sinkA := namedSink(ctrl, "feed")
	sinkB := namedSink(ctrl, "chain")
	p := NewProcessor(Config{}, repo, []domain.EventSink{sinkA, sinkB}, logger.NewNop())

	event := newEvent("e1", domain.EventTypeGameSettled, nil)
	sinkA.EXPECT().Publish(gomock.Any(), event).Return(nil)
	sinkB.EXPECT().Publish(gomock.Any(), event).Return(nil)
	repo.EXPECT().MarkAsProcessed(gomock.Any(), "e1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d domain.Deliveries) error {
			assert.True(t, d.Delivered("feed"))
			assert.True(t, d.Delivered("chain"))
			return nil
		})

	require.NoError(t, p.ProcessEvent(context.Background(), event))
}

func TestProcessEvent_FailingSinkIsRetriedAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	feed := namedSink(ctrl, "feed")
	chain := namedSink(ctrl, "chain")
	p := NewProcessor(Config{MaxRetries: 3}, repo, []domain.EventSink{feed, chain}, logger.NewNop())

	event := newEvent("e1", domain.EventTypeMatchSettled, domain.Deliveries{
		"feed":  delivered(),
		"chain": {Attempts: 1, LastError: "timeout"},
	})
	feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	chain.EXPECT().Publish(gomock.Any(), event).Return(errors.New("connection refused"))
	repo.EXPECT().MarkAsProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().IncrementRetryCount(gomock.Any(), "e1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d domain.Deliveries, msg string) error {
			assert.True(t, d.Delivered("feed"))
			assert.Equal(t, 2, d["chain"].Attempts)
			assert.Equal(t, "connection refused", d["chain"].LastError)
			assert.Contains(t, msg, "chain")
			return nil
		})

	err := p.ProcessEvent(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain")
}

func TestProcessEvent_ExhaustedSinkFailsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	feed := namedSink(ctrl, "feed")
	search := namedSink(ctrl, "search")
	p := NewProcessor(Config{MaxRetries: 3}, repo, []domain.EventSink{feed, search}, logger.NewNop())

	event := newEvent("e1", domain.EventTypeGameFailed, domain.Deliveries{
		"search": {Attempts: 3},
	})
	feed.EXPECT().Publish(gomock.Any(), event).Return(nil)
	search.EXPECT().Publish(gomock.Any(), event).Return(errors.New("timeout"))
	repo.EXPECT().MarkAsFailed(gomock.Any(), "e1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d domain.Deliveries, msg string) error {
			assert.True(t, d.Delivered("feed"))
			assert.False(t, d.Delivered("search"))
			assert.Equal(t, 4, d["search"].Attempts)
			assert.Contains(t, msg, "search")
			return nil
		})

	assert.Error(t, p.ProcessEvent(context.Background(), event))
}

func TestProcessEvent_UnknownTypeFailsWithoutDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	sink := namedSink(ctrl, "feed")
	p := NewProcessor(Config{}, repo, []domain.EventSink{sink}, logger.NewNop())

	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().MarkAsFailed(gomock.Any(), "e1", gomock.Any(), gomock.Any()).Return(nil)

	err := p.ProcessEvent(context.Background(), newEvent("e1", "SOMETHING_ELSE", nil))
	assert.Error(t, err)
}

func TestProcessEvents_Batch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	sink := namedSink(ctrl, "search")
	p := NewProcessor(Config{BatchSize: 10, MaxRetries: 3}, repo, []domain.EventSink{sink}, logger.NewNop())

	fresh := newEvent("fresh", domain.EventTypeGameSettled, domain.Deliveries{"search": {Attempts: 1}})
	exhausted := newEvent("exhausted", domain.EventTypeGameFailed, domain.Deliveries{"search": {Attempts: 3}})
	ok := newEvent("ok", domain.EventTypeMatchCancelled, nil)

	repo.EXPECT().GetPendingEvents(gomock.Any(), 10).
		Return([]*domain.OutboxEvent{fresh, exhausted, ok}, nil)

	sink.EXPECT().Publish(gomock.Any(), fresh).Return(errors.New("timeout"))
	sink.EXPECT().Publish(gomock.Any(), exhausted).Return(errors.New("timeout"))
	sink.EXPECT().Publish(gomock.Any(), ok).Return(nil)

	repo.EXPECT().IncrementRetryCount(gomock.Any(), "fresh", gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkAsFailed(gomock.Any(), "exhausted", gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkAsProcessed(gomock.Any(), "ok", gomock.Any()).Return(nil)

	require.NoError(t, p.ProcessEvents(context.Background()))
}

func TestProcessEvents_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	p := NewProcessor(Config{}, repo, nil, logger.NewNop())

	repo.EXPECT().GetPendingEvents(gomock.Any(), 100).Return(nil, errors.New("db down"))
	assert.Error(t, p.ProcessEvents(context.Background()))
}

func TestProcessEvents_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	p := NewProcessor(Config{}, repo, nil, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.ProcessEvents(ctx), context.Canceled)
}

func TestProcessEvents_StoredDeliveriesSurviveSweeps(t *testing.T) {
	tests := []struct {
		name          string
		chainFailures int
		chainCalls    int
		status        string
	}{
		{"chain never recovers", -1, 3, domain.EventStatusFailed},
		{"chain recovers", 2, 3, domain.EventStatusProcessed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := dbtest.New(t)
			repo := repository.NewOutboxRepository(db)
			ctx := context.Background()

			event := &domain.OutboxEvent{Type: domain.EventTypeGameSettled, AggregateID: "game-1", Data: []byte(`{}`)}
			require.NoError(t, repo.Save(ctx, event))

			feed := &countingSink{name: "feed"}
			chain := &countingSink{name: "chain", failures: tt.chainFailures}
			p := NewProcessor(Config{MaxRetries: 2}, repo, []domain.EventSink{feed, chain}, logger.NewNop())

			for i := 0; i < 10; i++ {
				require.NoError(t, p.ProcessEvents(ctx))
			}

			assert.Equal(t, 1, feed.calls)
			assert.Equal(t, tt.chainCalls, chain.calls)

			var stored domain.OutboxEvent
			require.NoError(t, db.First(&stored, "id = ?", event.ID).Error)
			assert.Equal(t, tt.status, stored.Status)
			deliveries := stored.Deliveries.Data()
			assert.True(t, deliveries.Delivered("feed"))
			assert.Equal(t, tt.status == domain.EventStatusProcessed, deliveries.Delivered("chain"))
			assert.Equal(t, tt.chainCalls, deliveries["chain"].Attempts)
		})
	}
}

func TestBackgroundProcessing_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOutboxRepository(ctrl)
	repo.EXPECT().GetPendingEvents(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	p := NewProcessor(Config{}, repo, nil, logger.NewNop())

	p.StartBackgroundProcessing()
	p.StartBackgroundProcessing()
	p.StopBackgroundProcessing()
	p.StopBackgroundProcessing()
}
