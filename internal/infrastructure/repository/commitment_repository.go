package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommitmentRepository implements domain.CommitmentRepository
type CommitmentRepository struct {
	db *gorm.DB
}

// NewCommitmentRepository creates a new commitment repository
func NewCommitmentRepository(db *gorm.DB) domain.CommitmentRepository {
	return &CommitmentRepository{db: db}
}

// WithTransaction binds the repository to tx
func (r *CommitmentRepository) WithTransaction(tx *gorm.DB) domain.CommitmentRepository {
	return &CommitmentRepository{db: tx}
}

// Create stores a new commitment
func (r *CommitmentRepository) Create(ctx context.Context, c *domain.Commitment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID retrieves a commitment by id
func (r *CommitmentRepository) GetByID(ctx context.Context, id string) (*domain.Commitment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves and row-locks a commitment
func (r *CommitmentRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Commitment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *CommitmentRepository) get(db *gorm.DB, id string) (*domain.Commitment, error) {
	var c domain.Commitment
	if err := db.Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Bind attaches an unbound commitment to a game or match. It affects nothing if the
// commitment was bound concurrently, which is reported as gorm.ErrRecordNotFound.
func (r *CommitmentRepository) Bind(ctx context.Context, id, referenceID, clientSeed string, nonce int64) error {
	result := r.db.WithContext(ctx).Model(&domain.Commitment{}).
		Where("id = ? AND reference_id IS NULL", id).
		Updates(map[string]interface{}{
			"reference_id": referenceID,
			"client_seed":  clientSeed,
			"nonce":        nonce,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkRevealed publishes the server seed
func (r *CommitmentRepository) MarkRevealed(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Commitment{}).
		Where("id = ? AND revealed_at IS NULL", id).
		Update("revealed_at", at).Error
}
