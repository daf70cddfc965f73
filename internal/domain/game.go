package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GameType names a single-player game
type GameType string

const GameTypeRPS GameType = "RPS"

// GameStatus is the settlement state of a single-player game
type GameStatus string

const (
	// GameStatusCreated is the in-memory state before the wager is debited
	GameStatusCreated GameStatus = "CREATED"

	// GameStatusDebited wager taken, outcome not yet recorded
	GameStatusDebited GameStatus = "DEBITED"

	// GameStatusResolved outcome recorded, payout not yet applied
	GameStatusResolved GameStatus = "RESOLVED"

	// GameStatusSettled payout applied and seed revealed (terminal)
	GameStatusSettled GameStatus = "SETTLED"

	// GameStatusFailed wager refunded after an unrecoverable failure (terminal)
	GameStatusFailed GameStatus = "FAILED"
)

// Terminal reports whether no further transition is allowed
func (s GameStatus) Terminal() bool {
	return s == GameStatusSettled || s == GameStatusFailed
}

// GameResult is the player's outcome against the house
type GameResult string

const (
	GameResultWin  GameResult = "WIN"
	GameResultLoss GameResult = "LOSS"
	GameResultDraw GameResult = "DRAW"
)

// Game is the record of one single-player game
type Game struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(64)"`
	GameType      GameType        `json:"game_type" gorm:"type:varchar(16);not null"`
	Account       string          `json:"account" gorm:"type:varchar(64);not null;index"`
	Wager         decimal.Decimal `json:"wager" gorm:"type:numeric(30,8);not null"`
	PlayerMove    Move            `json:"player_move" gorm:"not null"`
	HouseMove     Move            `json:"house_move"`
	Result        GameResult      `json:"result,omitempty" gorm:"type:varchar(8)"`
	Payout        decimal.Decimal `json:"payout" gorm:"type:numeric(30,8);not null;default:0"`
	HouseEdge     decimal.Decimal `json:"house_edge" gorm:"type:numeric(30,8);not null;default:0"`
	HouseEdgeBps  int             `json:"house_edge_bps" gorm:"not null"`
	Status        GameStatus      `json:"status" gorm:"type:varchar(16);not null;index:idx_games_status_updated,priority:1"`
	CommitmentID  string          `json:"commitment_id" gorm:"type:varchar(64);not null"`
	FailureReason *string         `json:"failure_reason,omitempty" gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null;index:idx_games_status_updated,priority:2"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty"`
	SettledAt     *time.Time      `json:"settled_at,omitempty"`

	// Ledger holds the rows the game produced, oldest first; filled by GetGame only.
	Ledger []*LedgerTransaction `json:"ledger,omitempty" gorm:"-"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}

// GameRepository defines persistence for single-player games
type GameRepository interface {
	Create(ctx context.Context, game *Game) error
	GetByID(ctx context.Context, id string) (*Game, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Game, error)
	Update(ctx context.Context, game *Game) error
	ListByAccount(ctx context.Context, account string, limit int) ([]*Game, error)
	ListStale(ctx context.Context, statuses []GameStatus, before time.Time, limit int) ([]*Game, error)
	WithTransaction(tx *gorm.DB) GameRepository
}

// PlayRequest is a wager against the house
type PlayRequest struct {
	Account      string
	Wager        decimal.Decimal
	Move         Move
	ClientSeed   string
	CommitmentID string
}

// SettlementResult is returned to the player after a game settles
type SettlementResult struct {
	GameID     string          `json:"game_id"`
	Status     GameStatus      `json:"status"`
	Result     GameResult      `json:"result"`
	PlayerMove Move            `json:"player_move"`
	HouseMove  Move            `json:"house_move"`
	Wager      decimal.Decimal `json:"wager"`
	Payout     decimal.Decimal `json:"payout"`
	HouseEdge  decimal.Decimal `json:"house_edge"`
	Balance    decimal.Decimal `json:"balance"`
	Fairness   FairnessReveal  `json:"fairness"`
}

// StaleReport summarizes one reconciliation pass
type StaleReport struct {
	Refunded  int `json:"refunded"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// CasinoUseCase settles single-player games against the house
type CasinoUseCase interface {
	Play(ctx context.Context, req PlayRequest) (*SettlementResult, error)
	Settle(ctx context.Context, gameID string) (*SettlementResult, error)
	GetGame(ctx context.Context, id string) (*Game, error)
	ListGames(ctx context.Context, account string, limit int) ([]*Game, error)
	ReconcileStale(ctx context.Context, before time.Time) (*StaleReport, error)
}
