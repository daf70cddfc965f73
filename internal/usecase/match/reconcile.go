package match

import (
	"context"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReconcileStale closes matches left in progress since before. Decided series are
// settled normally; undecided ones are cancelled and both stakes refunded.
func (uc *MatchUseCase) ReconcileStale(ctx context.Context, before time.Time) (*domain.StaleReport, error) {
	matches, err := uc.matchRepo.ListStale(ctx, before.UTC(), uc.cfg.BatchSize)
	if err != nil {
		uc.logger.Error("Failed to list stale matches", zap.Error(err))
		return nil, domain.NewStoreUnavailableError("list stale matches", err)
	}

	report := &domain.StaleReport{}
	for _, m := range matches {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		if m.Decided() {
			if _, err := uc.SettleMatch(ctx, m.ID); err != nil {
				report.Failed++
				uc.logger.Error("Failed to settle stale match",
					zap.String("matchID", m.ID),
					zap.Bool("reconciliation_required", true),
					zap.Error(err))
				continue
			}
			report.Completed++
			continue
		}

		cancelled, err := uc.cancel(ctx, m.ID, "match timeout")
		if err != nil {
			report.Failed++
			uc.logger.Error("Failed to cancel stale match",
				zap.String("matchID", m.ID),
				zap.Bool("reconciliation_required", true),
				zap.Error(err))
			continue
		}
		if cancelled {
			report.Refunded++
		}
	}

	if len(matches) > 0 {
		uc.logger.Info("Stale matches reconciled",
			zap.Int("refunded", report.Refunded),
			zap.Int("completed", report.Completed),
			zap.Int("failed", report.Failed))
	}
	return report, nil
}

// cancel refunds both stakes of an in-progress match and marks it CANCELLED
func (uc *MatchUseCase) cancel(ctx context.Context, matchID, reason string) (bool, error) {
	cancelled := false
	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matchRepo := uc.matchRepo.WithTransaction(tx)

		match, err := uc.lock(ctx, matchRepo, matchID)
		if err != nil {
			return err
		}
		if match.Status != domain.MatchStatusInProgress {
			return nil
		}

		id := match.ID
		refund := func(player, opponent string) domain.Mutation {
			return domain.Mutation{
				Account:  player,
				Amount:   match.Stake,
				Type:     domain.TransactionTypeRefund,
				GameID:   &id,
				GameType: string(match.GameType),
				Metadata: domain.TxMetadata{
					Match:  &domain.MatchTxMetadata{Opponent: opponent, WinsA: match.WinsA, WinsB: match.WinsB},
					Reason: reason,
				},
			}
		}
		if _, err := uc.balanceSvc.WithTransaction(tx).Apply(ctx, []domain.Mutation{
			refund(match.PlayerA, match.PlayerB),
			refund(match.PlayerB, match.PlayerA),
		}); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := uc.commitmentRepo.WithTransaction(tx).MarkRevealed(ctx, match.CommitmentID, now); err != nil {
			return domain.NewStoreUnavailableError("reveal commitment", err)
		}

		match.Status = domain.MatchStatusCancelled
		match.Payout = match.Stake
		match.HouseFee = decimal.Zero
		match.SettledAt = &now
		match.DurationMillis = durationSince(match.CreatedAt, now)
		if err := matchRepo.Update(ctx, match); err != nil {
			return domain.NewStoreUnavailableError("cancel match", err)
		}
		if err := uc.saveEvent(ctx, tx, domain.EventTypeMatchCancelled, match); err != nil {
			return err
		}

		uc.logger.Warn("Match cancelled and stakes refunded",
			zap.String("matchID", match.ID),
			zap.String("reason", reason),
			zap.Int("roundsPlayed", match.RoundsPlayed))
		cancelled = true
		return nil
	})
	return cancelled, err
}
