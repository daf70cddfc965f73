package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:          "evt-1",
		Type:        domain.EventTypeGameSettled,
		AggregateID: "game-1",
		Data:        []byte(`{"game_id":"game-1"}`),
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestNotifier(url string, retries int) *Notifier {
	n := NewNotifier(Config{URL: url, APIKey: "secret", Timeout: time.Second, RetryMax: retries}, logger.NewNop())
	n.client.RetryWaitMin = time.Millisecond
	n.client.RetryWaitMax = time.Millisecond
	return n
}

func TestPublish_PostsNotice(t *testing.T) {
	var got SettlementNotice
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/settlements", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "evt-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	require.NoError(t, newTestNotifier(server.URL+"/", 0).Publish(context.Background(), testEvent()))
	assert.Equal(t, "evt-1", got.EventID)
	assert.Equal(t, "game-1", got.AggregateID)
	assert.JSONEq(t, `{"game_id":"game-1"}`, string(got.Payload))
}

func TestPublish_ConflictMeansDelivered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"DUPLICATE","msg":"already settled"}`))
	}))
	defer server.Close()

	assert.NoError(t, newTestNotifier(server.URL, 0).Publish(context.Background(), testEvent()))
}

func TestPublish_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	require.NoError(t, newTestNotifier(server.URL, 3).Publish(context.Background(), testEvent()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPublish_ClientErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"BAD_PAYLOAD","msg":"missing game"}`))
	}))
	defer server.Close()

	err := newTestNotifier(server.URL, 2).Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.True(t, Is4xxError(err))
	assert.False(t, Is5xxError(err))

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "BAD_PAYLOAD", gwErr.Code)
}

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
		is4xx    bool
		is5xx    bool
	}{
		{"conflict", &GatewayError{StatusCode: 409}, true, true, false},
		{"bad request", &GatewayError{StatusCode: 400}, false, true, false},
		{"unavailable", &GatewayError{StatusCode: 503}, false, false, true},
		{"plain error", assert.AnError, false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
			assert.Equal(t, tt.is4xx, Is4xxError(tt.err))
			assert.Equal(t, tt.is5xx, Is5xxError(tt.err))
		})
	}
}
