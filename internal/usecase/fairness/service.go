package fairness

import (
	"context"
	"strings"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service publishes and verifies commitments for players
type Service struct {
	engine         *Engine
	commitmentRepo domain.CommitmentRepository
	logger         *logger.Logger
}

// NewService creates a new fairness service
func NewService(engine *Engine, commitmentRepo domain.CommitmentRepository, logger *logger.Logger) domain.FairnessService {
	return &Service{
		engine:         engine,
		commitmentRepo: commitmentRepo,
		logger:         logger,
	}
}

// Commit creates an unbound game commitment so the hash is published before the player moves
func (s *Service) Commit(ctx context.Context, account string) (*domain.Commitment, error) {
	account = strings.ToLower(strings.TrimSpace(account))
	if account == "" {
		return nil, domain.NewInvalidInputError("account", "is required")
	}

	c, err := NewCommitment(s.engine, account, domain.CommitmentPurposeGame)
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate commitment", err)
	}
	if err := s.commitmentRepo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to store commitment", zap.String("account", account), zap.Error(err))
		return nil, domain.NewStoreUnavailableError("commit", err)
	}

	s.logger.Info("Commitment published",
		zap.String("commitmentID", c.ID),
		zap.String("account", account),
		zap.String("serverSeedHash", c.ServerSeedHash))
	return c, nil
}

// Get returns the public view of a commitment
func (s *Service) Get(ctx context.Context, id string) (*domain.FairnessReveal, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	reveal := domain.RevealOf(c)
	return &reveal, nil
}

// VerifyCommitment re-checks a revealed commitment against its published hash
func (s *Service) VerifyCommitment(ctx context.Context, id string) (*domain.FairnessReveal, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Revealed() {
		return nil, domain.NewInvalidInputError("commitment_id", "server seed is not revealed yet")
	}
	if err := CheckIntegrity(c, s.logger); err != nil {
		return nil, err
	}
	reveal := domain.RevealOf(c)
	return &reveal, nil
}

// VerifyOutcome recomputes an outcome from player-supplied seeds without touching the store
func (s *Service) VerifyOutcome(serverSeed, serverSeedHash, clientSeed string, nonce int64, modulus int) (*domain.OutcomeProof, error) {
	if serverSeed == "" {
		return nil, domain.NewInvalidInputError("server_seed", "is required")
	}
	if nonce < 0 {
		return nil, domain.NewInvalidInputError("nonce", "must not be negative")
	}
	if modulus == 0 {
		modulus = domain.MoveCount
	}

	outcome, err := DeriveOutcome(serverSeed, clientSeed, nonce, modulus)
	if err != nil {
		return nil, err
	}

	proof := &domain.OutcomeProof{
		ServerSeedHash: HashSeed(serverSeed),
		HashMatches:    serverSeedHash == "" || Verify(serverSeedHash, serverSeed),
		Outcome:        outcome,
	}
	if modulus == domain.MoveCount {
		proof.Move = domain.MoveFromOutcome(outcome)
	}
	return proof, nil
}

func (s *Service) load(ctx context.Context, id string) (*domain.Commitment, error) {
	c, err := s.commitmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load commitment", err)
	}
	if c == nil {
		return nil, domain.NewNotFoundError("Commitment")
	}
	return c, nil
}

// NewCommitment builds an unsaved commitment with a fresh server seed
func NewCommitment(engine *Engine, account string, purpose domain.CommitmentPurpose) (*domain.Commitment, error) {
	hash, seed, err := engine.Commit()
	if err != nil {
		return nil, err
	}
	return &domain.Commitment{
		ID:             uuid.NewString(),
		Account:        account,
		Purpose:        purpose,
		ServerSeed:     seed,
		ServerSeedHash: hash,
	}, nil
}

// CheckIntegrity fails with CommitmentMismatch when the stored seed no longer matches
// its published hash. That only happens on corruption or tampering, so it is logged loudly.
func CheckIntegrity(c *domain.Commitment, log *logger.Logger) error {
	if Verify(c.ServerSeedHash, c.ServerSeed) {
		return nil
	}
	log.Error("Fairness commitment integrity violation",
		zap.String("commitmentID", c.ID),
		zap.String("account", c.Account),
		zap.String("serverSeedHash", c.ServerSeedHash),
		zap.Bool("investigation_required", true))
	return domain.NewCommitmentMismatchError(c.ID)
}
