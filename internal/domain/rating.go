package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlayerRating is the competitive record of an account
type PlayerRating struct {
	Account       string          `json:"account" gorm:"primaryKey;type:varchar(64)"`
	Rating        int             `json:"rating" gorm:"not null;index"`
	Wins          int             `json:"wins" gorm:"not null;default:0"`
	Losses        int             `json:"losses" gorm:"not null;default:0"`
	Draws         int             `json:"draws" gorm:"not null;default:0"`
	MatchesPlayed int             `json:"matches_played" gorm:"not null;default:0"`
	TotalEarnings decimal.Decimal `json:"total_earnings" gorm:"type:numeric(30,8);not null;default:0"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for PlayerRating
func (PlayerRating) TableName() string {
	return "player_ratings"
}

// LeaderboardEntry is a ranked rating row
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	PlayerRating
	Tier string `json:"tier"`
}

// RatingRepository defines persistence for player ratings
type RatingRepository interface {
	EnsureExists(ctx context.Context, account string, initial int) error
	GetForUpdate(ctx context.Context, account string) (*PlayerRating, error)
	Save(ctx context.Context, rating *PlayerRating) error
	Top(ctx context.Context, limit int) ([]*PlayerRating, error)
	WithTransaction(tx *gorm.DB) RatingRepository
}
