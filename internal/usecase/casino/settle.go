package casino

import (
	"context"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// settleWithRetry finalizes a resolved game. Finalize is idempotent, so transient
// failures are retried; once retries run out the game stays RESOLVED for the reconciler.
func (uc *CasinoUseCase) settleWithRetry(ctx context.Context, gameID string) (*domain.SettlementResult, error) {
	attempts := uc.cfg.SettleRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
retry:
	for attempt := 1; attempt <= attempts; attempt++ {
		var result *domain.SettlementResult
		result, err = uc.finalize(ctx, gameID)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return nil, err
		}

		uc.logger.Warn("Settlement attempt failed",
			zap.String("gameID", gameID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break retry
		case <-time.After(uc.cfg.RetryBackoff * time.Duration(attempt)):
		}
	}

	uc.logger.Error("wager settlement failed; manual reconciliation required",
		zap.String("gameID", gameID),
		zap.Int("attempts", attempts),
		zap.Bool("reconciliation_required", true),
		zap.Error(err))
	return nil, domain.NewStoreUnavailableError("settle game", err)
}

// finalize applies the payout of a RESOLVED game, reveals its seed and marks it SETTLED
func (uc *CasinoUseCase) finalize(ctx context.Context, gameID string) (*domain.SettlementResult, error) {
	var result *domain.SettlementResult

	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameRepo := uc.gameRepo.WithTransaction(tx)
		commitmentRepo := uc.commitmentRepo.WithTransaction(tx)
		balanceSvc := uc.balanceSvc.WithTransaction(tx)

		game, err := gameRepo.GetByIDForUpdate(ctx, gameID)
		if err != nil {
			return domain.NewStoreUnavailableError("lock game", err)
		}
		if game == nil {
			return domain.NewNotFoundError("Game")
		}

		switch game.Status {
		case domain.GameStatusSettled:
			result, err = uc.storedResult(ctx, commitmentRepo, balanceSvc, game)
			return err
		case domain.GameStatusResolved:
		default:
			return domain.NewConflictError("Game " + game.ID + " is " + string(game.Status) + ", cannot settle")
		}

		if mutations := uc.payoutMutations(game); len(mutations) > 0 {
			if _, err := balanceSvc.Apply(ctx, mutations); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		if err := commitmentRepo.MarkRevealed(ctx, game.CommitmentID, now); err != nil {
			return domain.NewStoreUnavailableError("reveal commitment", err)
		}

		game.Status = domain.GameStatusSettled
		game.SettledAt = &now
		if err := gameRepo.Update(ctx, game); err != nil {
			return domain.NewStoreUnavailableError("settle game", err)
		}

		result, err = uc.storedResult(ctx, commitmentRepo, balanceSvc, game)
		if err != nil {
			return err
		}

		event, err := newEvent(domain.EventTypeGameSettled, game.ID, gamePayload(game, result.Fairness))
		if err != nil {
			return domain.NewInternalError("Failed to encode settlement event", err)
		}
		if err := uc.outboxRepo.WithTransaction(tx).Save(ctx, event); err != nil {
			return domain.NewStoreUnavailableError("save outbox event", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logResult(result)
	return result, nil
}

// payoutMutations returns the ledger writes for the recorded outcome. A loss needs none.
func (uc *CasinoUseCase) payoutMutations(game *domain.Game) []domain.Mutation {
	gameID := game.ID
	meta := domain.TxMetadata{Game: &domain.GameTxMetadata{
		PlayerMove: game.PlayerMove,
		HouseMove:  game.HouseMove,
		Result:     game.Result,
	}}

	switch game.Result {
	case domain.GameResultWin:
		mutations := []domain.Mutation{{
			Account:  game.Account,
			Amount:   game.Payout,
			Type:     domain.TransactionTypeWin,
			GameID:   &gameID,
			GameType: string(game.GameType),
			Metadata: meta,
		}}
		if game.HouseEdge.IsPositive() {
			mutations = append(mutations, domain.Mutation{
				Account:  uc.cfg.TreasuryAccount,
				Amount:   game.HouseEdge,
				Type:     domain.TransactionTypeHouseEdge,
				GameID:   &gameID,
				GameType: string(game.GameType),
				Metadata: domain.TxMetadata{Fee: &domain.FeeTxMetadata{
					SourceAccount: game.Account,
					Gross:         game.Payout.Add(game.HouseEdge),
					RateBps:       game.HouseEdgeBps,
				}},
			})
		}
		return mutations
	case domain.GameResultDraw:
		return []domain.Mutation{{
			Account:  game.Account,
			Amount:   game.Wager,
			Type:     domain.TransactionTypeRefund,
			GameID:   &gameID,
			GameType: string(game.GameType),
			Metadata: meta,
		}}
	}
	return nil
}

// failGame refunds the wager of an unsettled game and marks it FAILED.
// The server seed stays hidden since no outcome was settled with it.
func (uc *CasinoUseCase) failGame(ctx context.Context, gameID, reason string) error {
	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameRepo := uc.gameRepo.WithTransaction(tx)

		game, err := gameRepo.GetByIDForUpdate(ctx, gameID)
		if err != nil {
			return domain.NewStoreUnavailableError("lock game", err)
		}
		if game == nil {
			return domain.NewNotFoundError("Game")
		}
		if game.Status.Terminal() {
			return nil
		}

		id := game.ID
		_, err = uc.balanceSvc.WithTransaction(tx).Credit(ctx, domain.Mutation{
			Account:  game.Account,
			Amount:   game.Wager,
			Type:     domain.TransactionTypeRefund,
			GameID:   &id,
			GameType: string(game.GameType),
			Metadata: domain.TxMetadata{Reason: reason},
		})
		if err != nil {
			return err
		}

		game.Status = domain.GameStatusFailed
		game.FailureReason = &reason
		game.Payout = game.Wager
		game.HouseEdge = decimal.Zero
		if err := gameRepo.Update(ctx, game); err != nil {
			return domain.NewStoreUnavailableError("fail game", err)
		}

		event, err := newEvent(domain.EventTypeGameFailed, game.ID, gamePayload(game, domain.FairnessReveal{CommitmentID: game.CommitmentID}))
		if err != nil {
			return domain.NewInternalError("Failed to encode failure event", err)
		}
		if err := uc.outboxRepo.WithTransaction(tx).Save(ctx, event); err != nil {
			return domain.NewStoreUnavailableError("save outbox event", err)
		}

		uc.logger.Warn("Game failed and wager refunded",
			zap.String("gameID", game.ID),
			zap.String("account", game.Account),
			zap.String("wager", game.Wager.String()),
			zap.String("reason", reason))
		return nil
	})
}

// storedResult builds the player-facing result of a settled game
func (uc *CasinoUseCase) storedResult(ctx context.Context, commitmentRepo domain.CommitmentRepository, balanceSvc domain.BalanceService, game *domain.Game) (*domain.SettlementResult, error) {
	commitment, err := commitmentRepo.GetByID(ctx, game.CommitmentID)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load commitment", err)
	}
	if commitment == nil {
		return nil, domain.NewCommitmentMismatchError(game.CommitmentID)
	}
	balance, err := balanceSvc.GetBalance(ctx, game.Account)
	if err != nil {
		return nil, err
	}

	return &domain.SettlementResult{
		GameID:     game.ID,
		Status:     game.Status,
		Result:     game.Result,
		PlayerMove: game.PlayerMove,
		HouseMove:  game.HouseMove,
		Wager:      game.Wager,
		Payout:     game.Payout,
		HouseEdge:  game.HouseEdge,
		Balance:    balance.Available,
		Fairness:   domain.RevealOf(commitment),
	}, nil
}

func (uc *CasinoUseCase) logResult(result *domain.SettlementResult) {
	fields := []zap.Field{
		zap.String("gameID", result.GameID),
		zap.String("result", string(result.Result)),
		zap.String("playerMove", result.PlayerMove.String()),
		zap.String("houseMove", result.HouseMove.String()),
		zap.String("wager", result.Wager.String()),
		zap.String("payout", result.Payout.String()),
	}
	uc.logger.Info("Game settled", fields...)
}

func retryable(err error) bool {
	if _, ok := domain.IsAppError(err); ok {
		return domain.IsRetryable(err)
	}
	return true
}
