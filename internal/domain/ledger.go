package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransactionType represents the type of a ledger transaction
type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "DEPOSIT"
	TransactionTypeWithdraw     TransactionType = "WITHDRAW"
	TransactionTypeWager        TransactionType = "WAGER"
	TransactionTypeWin          TransactionType = "WIN"
	TransactionTypeLoss         TransactionType = "LOSS"
	TransactionTypeRefund       TransactionType = "REFUND"
	TransactionTypeHouseEdge    TransactionType = "HOUSE_EDGE"
	TransactionTypeRatingReward TransactionType = "RATING_REWARD"
)

// Direction is the sign a transaction type applies to the balance
type Direction int

const (
	DirectionCredit Direction = 1
	DirectionDebit  Direction = -1
)

// Direction returns whether the type credits or debits the account.
// Unknown types return 0.
func (t TransactionType) Direction() Direction {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWin, TransactionTypeRefund,
		TransactionTypeHouseEdge, TransactionTypeRatingReward:
		return DirectionCredit
	case TransactionTypeWithdraw, TransactionTypeWager, TransactionTypeLoss:
		return DirectionDebit
	}
	return 0
}

// AmountScale is the number of decimal places the ledger stores
const AmountScale = 8

// Balance is the per-account balance row
type Balance struct {
	Account        string          `json:"account" gorm:"primaryKey;type:varchar(64)"`
	Available      decimal.Decimal `json:"available" gorm:"type:numeric(30,8);not null;default:0"`
	Frozen         decimal.Decimal `json:"frozen" gorm:"type:numeric(30,8);not null;default:0"`
	TotalDeposited decimal.Decimal `json:"total_deposited" gorm:"type:numeric(30,8);not null;default:0"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn" gorm:"type:numeric(30,8);not null;default:0"`
	TotalWagered   decimal.Decimal `json:"total_wagered" gorm:"type:numeric(30,8);not null;default:0"`
	TotalWon       decimal.Decimal `json:"total_won" gorm:"type:numeric(30,8);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}

// TxMetadataVersion is the current schema version of TxMetadata
const TxMetadataVersion = 1

// TxMetadata is the versioned metadata attached to a ledger row.
// At most one of the typed sections is set, matching the transaction type.
type TxMetadata struct {
	Version  int               `json:"v"`
	Game     *GameTxMetadata   `json:"game,omitempty"`
	Match    *MatchTxMetadata  `json:"match,omitempty"`
	Fee      *FeeTxMetadata    `json:"fee,omitempty"`
	Transfer *TransferMetadata `json:"transfer,omitempty"`
	Reason   string            `json:"reason,omitempty"`
}

// GameTxMetadata describes a single-player game movement
type GameTxMetadata struct {
	PlayerMove Move       `json:"player_move"`
	HouseMove  Move       `json:"house_move,omitempty"`
	Result     GameResult `json:"result,omitempty"`
}

// MatchTxMetadata describes a PvP escrow or payout
type MatchTxMetadata struct {
	Opponent string `json:"opponent"`
	WinsA    int    `json:"wins_a"`
	WinsB    int    `json:"wins_b"`
}

// FeeTxMetadata describes house revenue taken from a payout
type FeeTxMetadata struct {
	SourceAccount string          `json:"source_account"`
	Gross         decimal.Decimal `json:"gross"`
	RateBps       int             `json:"rate_bps"`
}

// TransferMetadata describes an external deposit or withdrawal
type TransferMetadata struct {
	ChainTxHash string `json:"chain_tx_hash,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// LedgerTransaction is an immutable row of the append-only log
type LedgerTransaction struct {
	ID            int64                          `json:"id" gorm:"primaryKey;autoIncrement;index:idx_ledger_account_id,priority:2"`
	Account       string                         `json:"account" gorm:"type:varchar(64);not null;index:idx_ledger_account_id,priority:1"`
	Type          TransactionType                `json:"type" gorm:"type:varchar(16);not null"`
	Amount        decimal.Decimal                `json:"amount" gorm:"type:numeric(30,8);not null"`
	BalanceBefore decimal.Decimal                `json:"balance_before" gorm:"type:numeric(30,8);not null"`
	BalanceAfter  decimal.Decimal                `json:"balance_after" gorm:"type:numeric(30,8);not null"`
	GameID        *string                        `json:"game_id,omitempty" gorm:"type:varchar(64);index"`
	GameType      string                         `json:"game_type,omitempty" gorm:"type:varchar(16)"`
	Metadata      datatypes.JSONType[TxMetadata] `json:"metadata" gorm:"type:jsonb"`
	CreatedAt     time.Time                      `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for LedgerTransaction
func (LedgerTransaction) TableName() string {
	return "ledger_transactions"
}

// Mutation is a single credit or debit request against one account
type Mutation struct {
	Account  string
	Amount   decimal.Decimal
	Type     TransactionType
	GameID   *string
	GameType string
	Metadata TxMetadata
}

// ReconciliationReport compares the stored balance with the folded log
type ReconciliationReport struct {
	Account    string          `json:"account"`
	Stored     decimal.Decimal `json:"stored"`
	Folded     decimal.Decimal `json:"folded"`
	Entries    int             `json:"entries"`
	Consistent bool            `json:"consistent"`
	// BrokenLinkID is the first row whose balance_before differs from the previous balance_after.
	BrokenLinkID *int64 `json:"broken_link_id,omitempty"`
}

// BalanceRepository defines persistence for balance rows
type BalanceRepository interface {
	EnsureExists(ctx context.Context, account string) error
	GetByAccount(ctx context.Context, account string) (*Balance, error)
	GetForUpdate(ctx context.Context, account string) (*Balance, error)
	Save(ctx context.Context, balance *Balance) error
	WithTransaction(tx *gorm.DB) BalanceRepository
}

// LedgerRepository defines persistence for the append-only transaction log
type LedgerRepository interface {
	Append(ctx context.Context, tx *LedgerTransaction) error
	ListByAccount(ctx context.Context, account string, limit int) ([]*LedgerTransaction, error)
	ListAllByAccount(ctx context.Context, account string) ([]*LedgerTransaction, error)
	ListByGame(ctx context.Context, gameID string) ([]*LedgerTransaction, error)
	WithTransaction(tx *gorm.DB) LedgerRepository
}

// BalanceService is the only writer of balances and ledger rows
type BalanceService interface {
	Credit(ctx context.Context, m Mutation) (decimal.Decimal, error)
	Debit(ctx context.Context, m Mutation) (decimal.Decimal, error)
	Apply(ctx context.Context, mutations []Mutation) ([]*LedgerTransaction, error)
	GetBalance(ctx context.Context, account string) (*Balance, error)
	GetTransactionHistory(ctx context.Context, account string, limit int) ([]*LedgerTransaction, error)
	GetGameLedger(ctx context.Context, gameID string) ([]*LedgerTransaction, error)
	Reconcile(ctx context.Context, account string) (*ReconciliationReport, error)
	WithTransaction(tx *gorm.DB) BalanceService
}

// MaxBps is 100% expressed in basis points
const MaxBps = 10000

var bpsDenominator = decimal.NewFromInt(MaxBps)

// ApplyBps returns amount * bps / 10000 truncated to AmountScale
func ApplyBps(amount decimal.Decimal, bps int) decimal.Decimal {
	if bps <= 0 {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(int64(bps))).Div(bpsDenominator).Truncate(AmountScale)
}
