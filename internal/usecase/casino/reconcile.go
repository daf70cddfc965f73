package casino

import (
	"context"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"go.uber.org/zap"
)

// ReconcileStale finishes games abandoned before settlement. DEBITED games have no
// recorded outcome and are refunded; RESOLVED games are settled with their outcome.
func (uc *CasinoUseCase) ReconcileStale(ctx context.Context, before time.Time) (*domain.StaleReport, error) {
	games, err := uc.gameRepo.ListStale(ctx,
		[]domain.GameStatus{domain.GameStatusDebited, domain.GameStatusResolved},
		before.UTC(), uc.cfg.BatchSize)
	if err != nil {
		uc.logger.Error("Failed to list stale games", zap.Error(err))
		return nil, domain.NewStoreUnavailableError("list stale games", err)
	}

	report := &domain.StaleReport{}
	for _, game := range games {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		switch game.Status {
		case domain.GameStatusDebited:
			if err := uc.failGame(ctx, game.ID, "settlement timeout"); err != nil {
				report.Failed++
				uc.logger.Error("wager settlement failed; manual reconciliation required",
					zap.String("gameID", game.ID),
					zap.Bool("reconciliation_required", true),
					zap.Error(err))
				continue
			}
			report.Refunded++
		case domain.GameStatusResolved:
			if _, err := uc.finalize(ctx, game.ID); err != nil {
				report.Failed++
				uc.logger.Error("wager settlement failed; manual reconciliation required",
					zap.String("gameID", game.ID),
					zap.Bool("reconciliation_required", true),
					zap.Error(err))
				continue
			}
			report.Completed++
		}
	}

	if len(games) > 0 {
		uc.logger.Info("Stale games reconciled",
			zap.Int("refunded", report.Refunded),
			zap.Int("completed", report.Completed),
			zap.Int("failed", report.Failed))
	}
	return report, nil
}
