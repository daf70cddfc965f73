package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueueRepository implements domain.QueueRepository
type QueueRepository struct {
	db *gorm.DB
}

// NewQueueRepository creates a new queue repository
func NewQueueRepository(db *gorm.DB) domain.QueueRepository {
	return &QueueRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *QueueRepository) WithTransaction(tx *gorm.DB) domain.QueueRepository {
	return &QueueRepository{db: tx}
}

// Create adds an entry to the queue
func (r *QueueRepository) Create(ctx context.Context, entry *domain.QueueEntry) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByIDForUpdate retrieves and row-locks an entry
func (r *QueueRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.QueueEntry, error) {
	var entry domain.QueueEntry
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &entry, nil
}

// GetActiveByAccount returns the waiting, unexpired entry of an account
func (r *QueueRepository) GetActiveByAccount(ctx context.Context, account string, now time.Time) (*domain.QueueEntry, error) {
	var entry domain.QueueEntry
	result := r.db.WithContext(ctx).
		Where("account = ? AND status = ? AND expires_at > ?", account, domain.QueueStatusWaiting, now).
		Order("created_at DESC").
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &entry, nil
}

// FindCandidates returns the oldest compatible waiting entries, skipping rows
// already locked by a concurrent pairing.
func (r *QueueRepository) FindCandidates(ctx context.Context, entry *domain.QueueEntry, now time.Time, limit int) ([]*domain.QueueEntry, error) {
	var entries []*domain.QueueEntry
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND game_type = ? AND account <> ? AND expires_at > ?",
			domain.QueueStatusWaiting, entry.GameType, entry.Account, now).
		Where("min_stake <= ? AND max_stake >= ?", entry.MaxStake, entry.MinStake).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// UpdateStatus moves an entry to a new status
func (r *QueueRepository) UpdateStatus(ctx context.Context, id string, status domain.QueueStatus, matchID *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if matchID != nil {
		updates["match_id"] = *matchID
	}
	return r.db.WithContext(ctx).Model(&domain.QueueEntry{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ListWaiting lists unexpired waiting entries, optionally for one game type
func (r *QueueRepository) ListWaiting(ctx context.Context, gameType domain.GameType, now time.Time, limit int) ([]*domain.QueueEntry, error) {
	var entries []*domain.QueueEntry
	query := r.db.WithContext(ctx).
		Where("status = ? AND expires_at > ?", domain.QueueStatusWaiting, now)
	if gameType != "" {
		query = query.Where("game_type = ?", gameType)
	}
	err := query.Order("created_at ASC").Limit(limit).Find(&entries).Error
	return entries, err
}

// ExpireBefore marks waiting entries past their expiry
func (r *QueueRepository) ExpireBefore(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.QueueEntry{}).
		Where("status = ? AND expires_at <= ?", domain.QueueStatusWaiting, now).
		Updates(map[string]interface{}{
			"status":     domain.QueueStatusExpired,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
