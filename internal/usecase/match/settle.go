package match

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettleMatch pays out a decided series and updates both ratings in one transaction.
// Settling a settled match returns the stored result and writes nothing.
func (uc *MatchUseCase) SettleMatch(ctx context.Context, matchID string) (*domain.MatchSettlement, error) {
	var (
		settlement *domain.MatchSettlement
		fresh      bool
	)

	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matchRepo := uc.matchRepo.WithTransaction(tx)
		commitmentRepo := uc.commitmentRepo.WithTransaction(tx)

		match, err := uc.lock(ctx, matchRepo, matchID)
		if err != nil {
			return err
		}

		switch match.Status {
		case domain.MatchStatusSettled:
			settlement, err = uc.storedSettlement(ctx, commitmentRepo, match)
			return err
		case domain.MatchStatusCancelled:
			return domain.NewAlreadySettledError("Match", matchID)
		}
		if !match.Decided() {
			return domain.NewInvalidInputError("match", "series is not decided yet")
		}

		now := time.Now().UTC()
		if err := uc.settlePot(ctx, tx, match); err != nil {
			return err
		}
		if err := uc.updateRatings(ctx, tx, match); err != nil {
			return err
		}
		if err := commitmentRepo.MarkRevealed(ctx, match.CommitmentID, now); err != nil {
			return domain.NewStoreUnavailableError("reveal commitment", err)
		}

		match.Status = domain.MatchStatusSettled
		match.SettledAt = &now
		match.DurationMillis = durationSince(match.CreatedAt, now)
		if err := matchRepo.Update(ctx, match); err != nil {
			return domain.NewStoreUnavailableError("settle match", err)
		}

		if err := uc.saveEvent(ctx, tx, domain.EventTypeMatchSettled, match); err != nil {
			return err
		}

		settlement, err = uc.storedSettlement(ctx, commitmentRepo, match)
		fresh = true
		return err
	})
	if err != nil {
		return nil, err
	}

	if fresh {
		uc.logger.Info("Match settled",
			zap.String("matchID", settlement.MatchID),
			zap.Bool("isDraw", settlement.IsDraw),
			zap.String("payout", settlement.Payout.String()),
			zap.String("houseFee", settlement.HouseFee.String()),
			zap.Int("ratingDeltaA", settlement.RatingDeltaA),
			zap.Int("ratingDeltaB", settlement.RatingDeltaB))
	}
	return settlement, nil
}

// settlePot moves the escrowed stakes. A decisive series pays the winner the pot less
// the house fee; a draw refunds both stakes and the house takes nothing.
func (uc *MatchUseCase) settlePot(ctx context.Context, tx *gorm.DB, match *domain.Match) error {
	matchID := match.ID
	meta := func(opponent string) domain.TxMetadata {
		return domain.TxMetadata{Match: &domain.MatchTxMetadata{
			Opponent: opponent,
			WinsA:    match.WinsA,
			WinsB:    match.WinsB,
		}}
	}

	var mutations []domain.Mutation
	switch {
	case match.WinsA == match.WinsB:
		match.IsDraw = true
		match.Winner = nil
		match.Payout = match.Stake
		match.HouseFee = decimal.Zero
		for _, p := range [][2]string{{match.PlayerA, match.PlayerB}, {match.PlayerB, match.PlayerA}} {
			mutations = append(mutations, domain.Mutation{
				Account:  p[0],
				Amount:   match.Stake,
				Type:     domain.TransactionTypeRefund,
				GameID:   &matchID,
				GameType: string(match.GameType),
				Metadata: meta(p[1]),
			})
		}
	default:
		winner, loser := match.PlayerA, match.PlayerB
		if match.WinsB > match.WinsA {
			winner, loser = match.PlayerB, match.PlayerA
		}
		pot := match.Pot()
		fee := domain.ApplyBps(pot, match.FeeBps)

		match.IsDraw = false
		match.Winner = &winner
		match.HouseFee = fee
		match.Payout = pot.Sub(fee)

		mutations = append(mutations, domain.Mutation{
			Account:  winner,
			Amount:   match.Payout,
			Type:     domain.TransactionTypeWin,
			GameID:   &matchID,
			GameType: string(match.GameType),
			Metadata: meta(loser),
		})
		if fee.IsPositive() {
			mutations = append(mutations, domain.Mutation{
				Account:  uc.cfg.TreasuryAccount,
				Amount:   fee,
				Type:     domain.TransactionTypeHouseEdge,
				GameID:   &matchID,
				GameType: string(match.GameType),
				Metadata: domain.TxMetadata{Fee: &domain.FeeTxMetadata{
					SourceAccount: winner,
					Gross:         pot,
					RateBps:       match.FeeBps,
				}},
			})
		}
	}

	_, err := uc.balanceSvc.WithTransaction(tx).Apply(ctx, mutations)
	return err
}

// updateRatings locks both rating rows in account order and computes both new ratings
// from the same pre-match snapshot
func (uc *MatchUseCase) updateRatings(ctx context.Context, tx *gorm.DB, match *domain.Match) error {
	ratingRepo := uc.ratingRepo.WithTransaction(tx)

	accounts := []string{match.PlayerA, match.PlayerB}
	sort.Strings(accounts)
	rows := make(map[string]*domain.PlayerRating, 2)
	for _, account := range accounts {
		if err := ratingRepo.EnsureExists(ctx, account, uc.cfg.InitialRating); err != nil {
			return domain.NewStoreUnavailableError("create rating", err)
		}
		row, err := ratingRepo.GetForUpdate(ctx, account)
		if err != nil {
			return domain.NewStoreUnavailableError("lock rating", err)
		}
		if row == nil {
			return domain.NewInternalError("Rating row vanished after creation", nil)
		}
		rows[account] = row
	}

	a, b := rows[match.PlayerA], rows[match.PlayerB]
	beforeA, beforeB := a.Rating, b.Rating

	scoreA := 0.5
	switch {
	case match.WinsA > match.WinsB:
		scoreA = 1
	case match.WinsB > match.WinsA:
		scoreA = 0
	}

	delta := 0
	if !match.IsDraw || uc.cfg.DrawRatingExchange {
		delta = RatingChange(beforeA, beforeB, uc.cfg.KFactor, scoreA)
	}
	a.Rating = applyFloor(beforeA+delta, uc.cfg.RatingFloor)
	b.Rating = applyFloor(beforeB-delta, uc.cfg.RatingFloor)

	a.MatchesPlayed++
	b.MatchesPlayed++
	switch scoreA {
	case 1:
		a.Wins++
		b.Losses++
		a.TotalEarnings = a.TotalEarnings.Add(match.Payout.Sub(match.Stake))
		b.TotalEarnings = b.TotalEarnings.Sub(match.Stake)
	case 0:
		b.Wins++
		a.Losses++
		b.TotalEarnings = b.TotalEarnings.Add(match.Payout.Sub(match.Stake))
		a.TotalEarnings = a.TotalEarnings.Sub(match.Stake)
	default:
		a.Draws++
		b.Draws++
	}

	for _, account := range accounts {
		if err := ratingRepo.Save(ctx, rows[account]); err != nil {
			return domain.NewStoreUnavailableError("save rating", err)
		}
	}

	match.RatingBeforeA, match.RatingBeforeB = &beforeA, &beforeB
	afterA, afterB := a.Rating, b.Rating
	match.RatingAfterA, match.RatingAfterB = &afterA, &afterB
	return nil
}

func (uc *MatchUseCase) storedSettlement(ctx context.Context, commitmentRepo domain.CommitmentRepository, match *domain.Match) (*domain.MatchSettlement, error) {
	commitment, err := commitmentRepo.GetByID(ctx, match.CommitmentID)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load commitment", err)
	}
	if commitment == nil {
		return nil, domain.NewCommitmentMismatchError(match.CommitmentID)
	}

	s := &domain.MatchSettlement{
		MatchID:  match.ID,
		Winner:   match.Winner,
		IsDraw:   match.IsDraw,
		Pot:      match.Pot(),
		Payout:   match.Payout,
		HouseFee: match.HouseFee,
		Fairness: domain.RevealOf(commitment),
	}
	if match.RatingBeforeA != nil && match.RatingAfterA != nil {
		s.RatingDeltaA = *match.RatingAfterA - *match.RatingBeforeA
		s.RatingAfterA = *match.RatingAfterA
	}
	if match.RatingBeforeB != nil && match.RatingAfterB != nil {
		s.RatingDeltaB = *match.RatingAfterB - *match.RatingBeforeB
		s.RatingAfterB = *match.RatingAfterB
	}
	return s, nil
}

func (uc *MatchUseCase) saveEvent(ctx context.Context, tx *gorm.DB, eventType string, match *domain.Match) error {
	settledAt := time.Now().UTC()
	if match.SettledAt != nil {
		settledAt = *match.SettledAt
	}
	data, err := json.Marshal(domain.MatchEventPayload{
		MatchID:   match.ID,
		PlayerA:   match.PlayerA,
		PlayerB:   match.PlayerB,
		Winner:    match.Winner,
		IsDraw:    match.IsDraw,
		Stake:     match.Stake.String(),
		Payout:    match.Payout.String(),
		HouseFee:  match.HouseFee.String(),
		Status:    match.Status,
		SettledAt: settledAt,
	})
	if err != nil {
		return domain.NewInternalError("Failed to encode match event", err)
	}

	event := &domain.OutboxEvent{
		Type:        eventType,
		AggregateID: match.ID,
		Data:        datatypes.JSON(data),
	}
	if err := uc.outboxRepo.WithTransaction(tx).Save(ctx, event); err != nil {
		return domain.NewStoreUnavailableError("save outbox event", err)
	}
	return nil
}
