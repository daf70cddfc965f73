package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QueueStatus is the state of a matchmaking queue entry
type QueueStatus string

const (
	QueueStatusWaiting   QueueStatus = "WAITING"
	QueueStatusMatched   QueueStatus = "MATCHED"
	QueueStatusCancelled QueueStatus = "CANCELLED"
	QueueStatusExpired   QueueStatus = "EXPIRED"
)

// QueueEntry is an account waiting for an opponent
type QueueEntry struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Account   string          `json:"account" gorm:"type:varchar(64);not null;index"`
	GameType  GameType        `json:"game_type" gorm:"type:varchar(16);not null;index:idx_queue_lookup,priority:2"`
	Stake     decimal.Decimal `json:"stake" gorm:"type:numeric(30,8);not null"`
	MinStake  decimal.Decimal `json:"min_stake" gorm:"type:numeric(30,8);not null"`
	MaxStake  decimal.Decimal `json:"max_stake" gorm:"type:numeric(30,8);not null"`
	Status    QueueStatus     `json:"status" gorm:"type:varchar(16);not null;index:idx_queue_lookup,priority:1"`
	MatchID   *string         `json:"match_id,omitempty" gorm:"type:varchar(64)"`
	ExpiresAt time.Time       `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"not null;index:idx_queue_lookup,priority:3"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for QueueEntry
func (QueueEntry) TableName() string {
	return "matchmaking_queue"
}

// Overlaps reports whether two stake ranges intersect
func (q *QueueEntry) Overlaps(other *QueueEntry) bool {
	return q.MinStake.LessThanOrEqual(other.MaxStake) && q.MaxStake.GreaterThanOrEqual(other.MinStake)
}

// JoinQueueRequest asks to be paired with an opponent
type JoinQueueRequest struct {
	Account  string
	GameType GameType
	Stake    decimal.Decimal
}

// JoinResult is the queue entry and, when paired immediately, the created match
type JoinResult struct {
	Entry *QueueEntry `json:"entry"`
	Match *Match      `json:"match,omitempty"`
}

// QueueRepository defines persistence for the matchmaking queue
type QueueRepository interface {
	Create(ctx context.Context, entry *QueueEntry) error
	GetByIDForUpdate(ctx context.Context, id string) (*QueueEntry, error)
	GetActiveByAccount(ctx context.Context, account string, now time.Time) (*QueueEntry, error)
	FindCandidates(ctx context.Context, entry *QueueEntry, now time.Time, limit int) ([]*QueueEntry, error)
	UpdateStatus(ctx context.Context, id string, status QueueStatus, matchID *string) error
	ListWaiting(ctx context.Context, gameType GameType, now time.Time, limit int) ([]*QueueEntry, error)
	ExpireBefore(ctx context.Context, now time.Time) (int64, error)
	WithTransaction(tx *gorm.DB) QueueRepository
}

// MatchmakingUseCase pairs accounts and exposes rankings
type MatchmakingUseCase interface {
	JoinQueue(ctx context.Context, req JoinQueueRequest) (*JoinResult, error)
	LeaveQueue(ctx context.Context, account string) error
	FindMatch(ctx context.Context, entryID string) (*Match, error)
	ListQueue(ctx context.Context, gameType GameType, limit int) ([]*QueueEntry, error)
	CleanupExpired(ctx context.Context) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}
