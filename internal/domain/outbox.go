package domain

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OutboxEvent represents an event stored in the outbox. It is written in the same
// transaction as the settlement it describes and dispatched after commit.
type OutboxEvent struct {
	ID          string         `json:"id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Type        string         `json:"type" gorm:"type:varchar(64);not null"`
	AggregateID string         `json:"aggregate_id" gorm:"type:varchar(64);not null;index"`
	Data        datatypes.JSON `json:"data" gorm:"type:jsonb"`
	Status      string         `json:"status" gorm:"type:varchar(16);not null;default:'PENDING';index:idx_outbox_status_created,priority:1"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null;index:idx_outbox_status_created,priority:2"`
	ProcessedAt *time.Time     `json:"processed_at,omitempty"`
	Error       *string        `json:"error,omitempty"`
	RetryCount  int            `json:"retry_count" gorm:"default:0"`
	// Deliveries is keyed by sink name; a sink that accepted the event is never sent it again.
	Deliveries datatypes.JSONType[Deliveries] `json:"deliveries" gorm:"type:jsonb;not null;default:'{}'"`
}

// SinkDelivery is the delivery state of one event at one sink
type SinkDelivery struct {
	Attempts    int        `json:"attempts"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
}

// Deliveries maps sink names to their delivery state
type Deliveries map[string]*SinkDelivery

// Delivered reports whether the named sink accepted the event
func (d Deliveries) Delivered(sink string) bool {
	s, ok := d[sink]
	return ok && s.DeliveredAt != nil
}

// TableName specifies the table name for OutboxEvent
func (o OutboxEvent) TableName() string {
	return "outbox_events"
}

// OutboxRepository defines the interface for outbox persistence
type OutboxRepository interface {
	Save(ctx context.Context, event *OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, eventID string, deliveries Deliveries) error
	MarkAsFailed(ctx context.Context, eventID string, deliveries Deliveries, errMsg string) error
	IncrementRetryCount(ctx context.Context, eventID string, deliveries Deliveries, errMsg string) error
	WithTransaction(tx *gorm.DB) OutboxRepository
}

// OutboxProcessor defines the interface for processing outbox events
type OutboxProcessor interface {
	ProcessEvents(ctx context.Context) error
	ProcessEvent(ctx context.Context, event *OutboxEvent) error
	StartBackgroundProcessing()
	StopBackgroundProcessing()
}

// EventSink receives settled events after commit. Deliveries may repeat, so sinks
// key their side effects by event id.
type EventSink interface {
	Name() string
	Publish(ctx context.Context, event *OutboxEvent) error
}

// Event types
const (
	EventTypeGameSettled    = "GAME_SETTLED"
	EventTypeGameFailed     = "GAME_FAILED"
	EventTypeMatchSettled   = "MATCH_SETTLED"
	EventTypeMatchCancelled = "MATCH_CANCELLED"
)

// Event statuses
const (
	EventStatusPending   = "PENDING"
	EventStatusProcessed = "PROCESSED"
	EventStatusFailed    = "FAILED"
)

// GameEventPayload is the body of game events
type GameEventPayload struct {
	GameID    string         `json:"game_id"`
	Account   string         `json:"account"`
	GameType  GameType       `json:"game_type"`
	Wager     string         `json:"wager"`
	Payout    string         `json:"payout"`
	HouseEdge string         `json:"house_edge"`
	Result    GameResult     `json:"result,omitempty"`
	Status    GameStatus     `json:"status"`
	SettledAt time.Time      `json:"settled_at"`
	Fairness  FairnessReveal `json:"fairness"`
}

// MatchEventPayload is the body of match events
type MatchEventPayload struct {
	MatchID   string      `json:"match_id"`
	PlayerA   string      `json:"player_a"`
	PlayerB   string      `json:"player_b"`
	Winner    *string     `json:"winner,omitempty"`
	IsDraw    bool        `json:"is_draw"`
	Stake     string      `json:"stake"`
	Payout    string      `json:"payout"`
	HouseFee  string      `json:"house_fee"`
	Status    MatchStatus `json:"status"`
	SettledAt time.Time   `json:"settled_at"`
}
