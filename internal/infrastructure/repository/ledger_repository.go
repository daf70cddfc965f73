package repository

import (
	"context"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
)

// LedgerRepository implements domain.LedgerRepository. It only appends and reads.
type LedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return &LedgerRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *LedgerRepository) WithTransaction(tx *gorm.DB) domain.LedgerRepository {
	return &LedgerRepository{db: tx}
}

// Append writes a new log row
func (r *LedgerRepository) Append(ctx context.Context, tx *domain.LedgerTransaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(tx).Error
}

// ListByAccount returns the newest rows first
func (r *LedgerRepository) ListByAccount(ctx context.Context, account string, limit int) ([]*domain.LedgerTransaction, error) {
	var rows []*domain.LedgerTransaction
	err := r.db.WithContext(ctx).
		Where("account = ?", account).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ListAllByAccount returns the full log of an account in write order
func (r *LedgerRepository) ListAllByAccount(ctx context.Context, account string) ([]*domain.LedgerTransaction, error) {
	var rows []*domain.LedgerTransaction
	err := r.db.WithContext(ctx).
		Where("account = ?", account).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// ListByGame returns every row referencing a game or match id
func (r *LedgerRepository) ListByGame(ctx context.Context, gameID string) ([]*domain.LedgerTransaction, error) {
	var rows []*domain.LedgerTransaction
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
