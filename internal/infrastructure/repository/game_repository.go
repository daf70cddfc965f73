package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *GameRepository) WithTransaction(tx *gorm.DB) domain.GameRepository {
	return &GameRepository{db: tx}
}

// Create creates a new game
func (r *GameRepository) Create(ctx context.Context, game *domain.Game) error {
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now
	return r.db.WithContext(ctx).Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves a game with a row lock
func (r *GameRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Game, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GameRepository) get(db *gorm.DB, id string) (*domain.Game, error) {
	var game domain.Game
	result := db.Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// Update updates an existing game
func (r *GameRepository) Update(ctx context.Context, game *domain.Game) error {
	game.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(game).Error
}

// ListByAccount retrieves the latest games of an account
func (r *GameRepository) ListByAccount(ctx context.Context, account string, limit int) ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.WithContext(ctx).
		Where("account = ?", account).
		Order("created_at DESC").
		Limit(limit).
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// ListStale retrieves games stuck in one of statuses since before
func (r *GameRepository) ListStale(ctx context.Context, statuses []domain.GameStatus, before time.Time, limit int) ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?", statuses, before).
		Order("updated_at ASC").
		Limit(limit).
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}
