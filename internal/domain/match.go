package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MatchStatus is the lifecycle state of a PvP match
type MatchStatus string

const (
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusSettled    MatchStatus = "SETTLED"
	MatchStatusCancelled  MatchStatus = "CANCELLED"
)

// Match is a best-of-N series between two accounts
type Match struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(64)"`
	GameType       GameType        `json:"game_type" gorm:"type:varchar(16);not null"`
	PlayerA        string          `json:"player_a" gorm:"type:varchar(64);not null;index"`
	PlayerB        string          `json:"player_b" gorm:"type:varchar(64);not null;index"`
	Stake          decimal.Decimal `json:"stake" gorm:"type:numeric(30,8);not null"`
	BestOf         int             `json:"best_of" gorm:"not null"`
	WinsA          int             `json:"wins_a" gorm:"not null;default:0"`
	WinsB          int             `json:"wins_b" gorm:"not null;default:0"`
	RoundsPlayed   int             `json:"rounds_played" gorm:"not null;default:0"`
	Status         MatchStatus     `json:"status" gorm:"type:varchar(16);not null;index:idx_matches_status_created,priority:1"`
	Winner         *string         `json:"winner,omitempty" gorm:"type:varchar(64)"`
	IsDraw         bool            `json:"is_draw" gorm:"not null;default:false"`
	Payout         decimal.Decimal `json:"payout" gorm:"type:numeric(30,8);not null;default:0"`
	HouseFee       decimal.Decimal `json:"house_fee" gorm:"type:numeric(30,8);not null;default:0"`
	FeeBps         int             `json:"fee_bps" gorm:"not null"`
	RatingBeforeA  *int            `json:"rating_before_a,omitempty"`
	RatingBeforeB  *int            `json:"rating_before_b,omitempty"`
	RatingAfterA   *int            `json:"rating_after_a,omitempty"`
	RatingAfterB   *int            `json:"rating_after_b,omitempty"`
	CommitmentID   string          `json:"commitment_id" gorm:"type:varchar(64);not null"`
	ClientSeedA    string          `json:"client_seed_a" gorm:"type:varchar(128);not null"`
	ClientSeedB    string          `json:"client_seed_b" gorm:"type:varchar(128);not null"`
	DurationMillis int64           `json:"duration_ms" gorm:"not null;default:0"`
	CreatedAt      time.Time       `json:"created_at" gorm:"not null;index:idx_matches_status_created,priority:2"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"not null"`
	SettledAt      *time.Time      `json:"settled_at,omitempty"`

	Rounds []MatchRound          `json:"rounds,omitempty" gorm:"foreignKey:MatchID"`
	Ledger []*LedgerTransaction `json:"ledger,omitempty" gorm:"-"`
}

// TableName specifies the table name for Match
func (Match) TableName() string {
	return "matches"
}

// WinsNeeded is the number of round wins that decides the series
func (m *Match) WinsNeeded() int {
	return (m.BestOf + 1) / 2
}

// Decided reports whether no further rounds may be played
func (m *Match) Decided() bool {
	return m.WinsA >= m.WinsNeeded() || m.WinsB >= m.WinsNeeded() || m.RoundsPlayed >= m.BestOf
}

// Pot is the combined stake of both players
func (m *Match) Pot() decimal.Decimal {
	return m.Stake.Add(m.Stake)
}

// Participant reports whether account plays in the match
func (m *Match) Participant(account string) bool {
	return m.PlayerA == account || m.PlayerB == account
}

// MatchRound is one throw of a match
type MatchRound struct {
	ID        int64       `json:"-" gorm:"primaryKey;autoIncrement"`
	MatchID   string      `json:"match_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_match_rounds_match_round,priority:1"`
	Round     int         `json:"round" gorm:"not null;uniqueIndex:idx_match_rounds_match_round,priority:2"`
	MoveA     Move        `json:"move_a" gorm:"not null"`
	MoveB     Move        `json:"move_b" gorm:"not null"`
	AutoA     bool        `json:"auto_a" gorm:"not null;default:false"`
	AutoB     bool        `json:"auto_b" gorm:"not null;default:false"`
	Winner    RoundWinner `json:"winner" gorm:"type:varchar(8);not null"`
	CreatedAt time.Time   `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for MatchRound
func (MatchRound) TableName() string {
	return "match_rounds"
}

// RoundResult is returned after a round is recorded
type RoundResult struct {
	MatchID string      `json:"match_id"`
	Round   int         `json:"round"`
	MoveA   Move        `json:"move_a"`
	MoveB   Move        `json:"move_b"`
	Winner  RoundWinner `json:"winner"`
	WinsA   int         `json:"wins_a"`
	WinsB   int         `json:"wins_b"`
	Decided bool        `json:"decided"`
}

// MatchSettlement is the financial and rating result of a settled match
type MatchSettlement struct {
	MatchID      string          `json:"match_id"`
	Winner       *string         `json:"winner,omitempty"`
	IsDraw       bool            `json:"is_draw"`
	Pot          decimal.Decimal `json:"pot"`
	Payout       decimal.Decimal `json:"payout"`
	HouseFee     decimal.Decimal `json:"house_fee"`
	RatingDeltaA int             `json:"rating_delta_a"`
	RatingDeltaB int             `json:"rating_delta_b"`
	RatingAfterA int             `json:"rating_after_a"`
	RatingAfterB int             `json:"rating_after_b"`
	Fairness     FairnessReveal  `json:"fairness"`
}

// CreateMatchRequest pairs two accounts for a match
type CreateMatchRequest struct {
	PlayerA     string
	PlayerB     string
	Stake       decimal.Decimal
	GameType    GameType
	ClientSeedA string
	ClientSeedB string
}

// MatchRepository defines persistence for matches and their rounds
type MatchRepository interface {
	Create(ctx context.Context, match *Match) error
	GetByID(ctx context.Context, id string) (*Match, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Match, error)
	Update(ctx context.Context, match *Match) error
	AddRound(ctx context.Context, round *MatchRound) error
	ListRecent(ctx context.Context, account string, limit int) ([]*Match, error)
	ListStale(ctx context.Context, before time.Time, limit int) ([]*Match, error)
	WithTransaction(tx *gorm.DB) MatchRepository
}

// MatchUseCase runs and settles PvP matches
type MatchUseCase interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*Match, error)
	RecordRound(ctx context.Context, matchID string, round int, moveA, moveB Move) (*RoundResult, error)
	SettleMatch(ctx context.Context, matchID string) (*MatchSettlement, error)
	GetMatch(ctx context.Context, matchID string) (*Match, error)
	ListRecentMatches(ctx context.Context, account string, limit int) ([]*Match, error)
	ReconcileStale(ctx context.Context, before time.Time) (*StaleReport, error)
	WithTransaction(tx *gorm.DB) MatchUseCase
}
