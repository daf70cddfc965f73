package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// CommitmentPurpose tells what a commitment is bound to
type CommitmentPurpose string

const (
	CommitmentPurposeGame  CommitmentPurpose = "GAME"
	CommitmentPurposeMatch CommitmentPurpose = "MATCH"
)

// Commitment is a commit-reveal seed pair. ServerSeed stays private until RevealedAt is set.
type Commitment struct {
	ID             string            `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Account        string            `json:"account" gorm:"type:varchar(64);not null;index"`
	Purpose        CommitmentPurpose `json:"purpose" gorm:"type:varchar(16);not null"`
	ServerSeed     string            `json:"-" gorm:"type:varchar(128);not null"`
	ServerSeedHash string            `json:"server_seed_hash" gorm:"type:varchar(64);not null"`
	ClientSeed     string            `json:"client_seed,omitempty" gorm:"type:varchar(128)"`
	Nonce          int64             `json:"nonce" gorm:"not null;default:0"`
	ReferenceID    *string           `json:"reference_id,omitempty" gorm:"type:varchar(64);uniqueIndex"`
	RevealedAt     *time.Time        `json:"revealed_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Commitment
func (Commitment) TableName() string {
	return "fairness_commitments"
}

// Revealed reports whether the server seed may be published
func (c *Commitment) Revealed() bool {
	return c.RevealedAt != nil
}

// FairnessReveal is the verification bundle returned to players
type FairnessReveal struct {
	CommitmentID   string `json:"commitment_id"`
	ServerSeed     string `json:"server_seed,omitempty"`
	ServerSeedHash string `json:"server_seed_hash"`
	ClientSeed     string `json:"client_seed,omitempty"`
	Nonce          int64  `json:"nonce"`
}

// RevealOf builds the public view of a commitment, hiding the seed until reveal.
func RevealOf(c *Commitment) FairnessReveal {
	r := FairnessReveal{
		CommitmentID:   c.ID,
		ServerSeedHash: c.ServerSeedHash,
		ClientSeed:     c.ClientSeed,
		Nonce:          c.Nonce,
	}
	if c.Revealed() {
		r.ServerSeed = c.ServerSeed
	}
	return r
}

// OutcomeProof is the result of a stateless outcome verification
type OutcomeProof struct {
	ServerSeedHash string `json:"server_seed_hash"`
	HashMatches    bool   `json:"hash_matches"`
	Outcome        int    `json:"outcome"`
	Move           Move   `json:"move,omitempty"`
}

// CommitmentRepository defines persistence for fairness commitments
type CommitmentRepository interface {
	Create(ctx context.Context, c *Commitment) error
	GetByID(ctx context.Context, id string) (*Commitment, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Commitment, error)
	Bind(ctx context.Context, id, referenceID, clientSeed string, nonce int64) error
	MarkRevealed(ctx context.Context, id string, at time.Time) error
	WithTransaction(tx *gorm.DB) CommitmentRepository
}

// FairnessService exposes commitments to players
type FairnessService interface {
	Commit(ctx context.Context, account string) (*Commitment, error)
	Get(ctx context.Context, id string) (*FairnessReveal, error)
	VerifyCommitment(ctx context.Context, id string) (*FairnessReveal, error)
	VerifyOutcome(serverSeed, serverSeedHash, clientSeed string, nonce int64, modulus int) (*OutcomeProof, error)
}
