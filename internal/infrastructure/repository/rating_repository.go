package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository implements domain.RatingRepository
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) domain.RatingRepository {
	return &RatingRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *RatingRepository) WithTransaction(tx *gorm.DB) domain.RatingRepository {
	return &RatingRepository{db: tx}
}

// EnsureExists creates a rating row at the initial rating unless present
func (r *RatingRepository) EnsureExists(ctx context.Context, account string, initial int) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoNothing: true,
		}).
		Create(&domain.PlayerRating{
			Account:   account,
			Rating:    initial,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
}

// GetForUpdate reads a rating with a row lock
func (r *RatingRepository) GetForUpdate(ctx context.Context, account string) (*domain.PlayerRating, error) {
	var rating domain.PlayerRating
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account = ?", account).
		First(&rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &rating, nil
}

// Save writes the rating row
func (r *RatingRepository) Save(ctx context.Context, rating *domain.PlayerRating) error {
	rating.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(rating).Error
}

// Top returns the highest rated accounts
func (r *RatingRepository) Top(ctx context.Context, limit int) ([]*domain.PlayerRating, error) {
	var ratings []*domain.PlayerRating
	err := r.db.WithContext(ctx).
		Where("matches_played > 0").
		Order("rating DESC, wins DESC, account ASC").
		Limit(limit).
		Find(&ratings).Error
	return ratings, err
}
