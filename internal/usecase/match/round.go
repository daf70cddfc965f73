package match

import (
	"context"
	"fmt"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/fairness"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordRound plays round number round (1-based). A zero move is derived from the
// match commitment with the round as nonce and the player's own client seed.
func (uc *MatchUseCase) RecordRound(ctx context.Context, matchID string, round int, moveA, moveB domain.Move) (*domain.RoundResult, error) {
	if err := validateMove("move_a", moveA); err != nil {
		return nil, err
	}
	if err := validateMove("move_b", moveB); err != nil {
		return nil, err
	}

	var result *domain.RoundResult
	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matchRepo := uc.matchRepo.WithTransaction(tx)

		match, err := uc.lock(ctx, matchRepo, matchID)
		if err != nil {
			return err
		}
		if match.Status != domain.MatchStatusInProgress {
			return domain.NewAlreadySettledError("Match", matchID)
		}
		if match.Decided() {
			return domain.NewInvalidInputError("round", "series is already decided")
		}
		if round != match.RoundsPlayed+1 {
			return domain.NewInvalidInputError("round", fmt.Sprintf("expected round %d", match.RoundsPlayed+1))
		}

		r := &domain.MatchRound{
			MatchID: match.ID,
			Round:   round,
			MoveA:   moveA,
			MoveB:   moveB,
		}
		if moveA == domain.MoveAuto || moveB == domain.MoveAuto {
			if err := uc.autoMoves(ctx, tx, match, r); err != nil {
				return err
			}
		}
		r.Winner = domain.ResolveRound(r.MoveA, r.MoveB)

		switch r.Winner {
		case domain.RoundWinnerA:
			match.WinsA++
		case domain.RoundWinnerB:
			match.WinsB++
		}
		match.RoundsPlayed = round

		if err := matchRepo.AddRound(ctx, r); err != nil {
			return domain.NewStoreUnavailableError("add round", err)
		}
		if err := matchRepo.Update(ctx, match); err != nil {
			return domain.NewStoreUnavailableError("update match", err)
		}

		result = &domain.RoundResult{
			MatchID: match.ID,
			Round:   round,
			MoveA:   r.MoveA,
			MoveB:   r.MoveB,
			Winner:  r.Winner,
			WinsA:   match.WinsA,
			WinsB:   match.WinsB,
			Decided: match.Decided(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Round recorded",
		zap.String("matchID", matchID),
		zap.Int("round", round),
		zap.String("moveA", result.MoveA.String()),
		zap.String("moveB", result.MoveB.String()),
		zap.String("winner", string(result.Winner)))
	return result, nil
}

func (uc *MatchUseCase) autoMoves(ctx context.Context, tx *gorm.DB, match *domain.Match, r *domain.MatchRound) error {
	commitment, err := uc.commitmentRepo.WithTransaction(tx).GetByID(ctx, match.CommitmentID)
	if err != nil {
		return domain.NewStoreUnavailableError("load commitment", err)
	}
	if commitment == nil {
		return domain.NewCommitmentMismatchError(match.CommitmentID)
	}
	if err := fairness.CheckIntegrity(commitment, uc.logger); err != nil {
		return err
	}

	derive := func(clientSeed string) (domain.Move, error) {
		outcome, err := fairness.DeriveOutcome(commitment.ServerSeed, clientSeed, int64(r.Round), domain.MoveCount)
		if err != nil {
			return domain.MoveAuto, err
		}
		return domain.MoveFromOutcome(outcome), nil
	}

	if r.MoveA == domain.MoveAuto {
		if r.MoveA, err = derive(match.ClientSeedA); err != nil {
			return err
		}
		r.AutoA = true
	}
	if r.MoveB == domain.MoveAuto {
		if r.MoveB, err = derive(match.ClientSeedB); err != nil {
			return err
		}
		r.AutoB = true
	}
	return nil
}

func validateMove(field string, m domain.Move) error {
	if m != domain.MoveAuto && !m.Valid() {
		return domain.NewInvalidInputError(field, "must be 0 (auto), 1 (rock), 2 (paper) or 3 (scissors)")
	}
	return nil
}
