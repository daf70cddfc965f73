package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository implements domain.MatchRepository
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) domain.MatchRepository {
	return &MatchRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *MatchRepository) WithTransaction(tx *gorm.DB) domain.MatchRepository {
	return &MatchRepository{db: tx}
}

// Create creates a new match
func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) error {
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error
}

// GetByID retrieves a match together with its rounds
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	result := r.db.WithContext(ctx).
		Preload("Rounds", func(db *gorm.DB) *gorm.DB { return db.Order("round ASC") }).
		Where("id = ?", id).
		First(&match)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &match, nil
}

// GetByIDForUpdate retrieves a match with a row lock, without rounds
func (r *MatchRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&match)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &match, nil
}

// Update updates the match row only
func (r *MatchRepository) Update(ctx context.Context, match *domain.Match) error {
	match.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(match).Error
}

// AddRound appends a round; the (match_id, round) unique index rejects duplicates
func (r *MatchRepository) AddRound(ctx context.Context, round *domain.MatchRound) error {
	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(round).Error
}

// ListRecent returns the latest matches, optionally filtered by participant
func (r *MatchRepository) ListRecent(ctx context.Context, account string, limit int) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := r.db.WithContext(ctx)
	if account != "" {
		query = query.Where("player_a = ? OR player_b = ?", account, account)
	}
	err := query.Order("created_at DESC").Limit(limit).Find(&matches).Error
	return matches, err
}

// ListStale returns in-progress matches created before the cutoff
func (r *MatchRepository) ListStale(ctx context.Context, before time.Time, limit int) ([]*domain.Match, error) {
	var matches []*domain.Match
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", domain.MatchStatusInProgress, before).
		Order("created_at ASC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}
