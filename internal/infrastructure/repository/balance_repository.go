package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements domain.BalanceRepository
type BalanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *gorm.DB) domain.BalanceRepository {
	return &BalanceRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *BalanceRepository) WithTransaction(tx *gorm.DB) domain.BalanceRepository {
	return &BalanceRepository{db: tx}
}

// EnsureExists inserts a zero balance row unless one is already there
func (r *BalanceRepository) EnsureExists(ctx context.Context, account string) error {
	now := time.Now().UTC()
	row := &domain.Balance{
		Account:   account,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoNothing: true,
		}).
		Create(row).Error
}

// GetByAccount reads a balance without locking
func (r *BalanceRepository) GetByAccount(ctx context.Context, account string) (*domain.Balance, error) {
	var balance domain.Balance
	result := r.db.WithContext(ctx).Where("account = ?", account).First(&balance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &balance, nil
}

// GetForUpdate reads a balance with SELECT ... FOR UPDATE
func (r *BalanceRepository) GetForUpdate(ctx context.Context, account string) (*domain.Balance, error) {
	var balance domain.Balance
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account = ?", account).
		First(&balance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &balance, nil
}

// Save writes every column of the balance row
func (r *BalanceRepository) Save(ctx context.Context, balance *domain.Balance) error {
	balance.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.Balance{}).
		Where("account = ?", balance.Account).
		Updates(map[string]interface{}{
			"available":       balance.Available,
			"frozen":          balance.Frozen,
			"total_deposited": balance.TotalDeposited,
			"total_withdrawn": balance.TotalWithdrawn,
			"total_wagered":   balance.TotalWagered,
			"total_won":       balance.TotalWon,
			"updated_at":      balance.UpdatedAt,
		}).Error
}
