package casino

import (
	"encoding/json"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ***** Input Validation

func (uc *CasinoUseCase) validateWager(wager decimal.Decimal) error {
	if err := balance.ValidateAmount(wager); err != nil {
		return err
	}
	if wager.LessThan(uc.cfg.MinWager) {
		return domain.NewInvalidInputError("wager", "must be at least "+uc.cfg.MinWager.String())
	}
	if uc.cfg.MaxWager.IsPositive() && wager.GreaterThan(uc.cfg.MaxWager) {
		return domain.NewInvalidInputError("wager", "must be at most "+uc.cfg.MaxWager.String())
	}
	return nil
}

// ***** Outcome

func resultFor(player, house domain.Move) domain.GameResult {
	switch domain.ResolveRound(player, house) {
	case domain.RoundWinnerA:
		return domain.GameResultWin
	case domain.RoundWinnerB:
		return domain.GameResultLoss
	}
	return domain.GameResultDraw
}

// payoutFor returns the credit owed to the player and the house edge.
// A win pays twice the wager less the edge; a draw returns the wager.
func payoutFor(result domain.GameResult, wager decimal.Decimal, edgeBps int) (payout, edge decimal.Decimal) {
	switch result {
	case domain.GameResultWin:
		gross := wager.Mul(decimal.NewFromInt(2))
		edge = HouseEdge(gross, edgeBps)
		return gross.Sub(edge), edge
	case domain.GameResultDraw:
		return wager, decimal.Zero
	}
	return decimal.Zero, decimal.Zero
}

// HouseEdge returns the house share of a gross payout
func HouseEdge(gross decimal.Decimal, bps int) decimal.Decimal {
	return domain.ApplyBps(gross, bps)
}

// ***** Events

func newEvent(eventType, aggregateID string, payload interface{}) (*domain.OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &domain.OutboxEvent{
		Type:        eventType,
		AggregateID: aggregateID,
		Data:        datatypes.JSON(data),
	}, nil
}

func gamePayload(game *domain.Game, reveal domain.FairnessReveal) domain.GameEventPayload {
	settledAt := time.Now().UTC()
	if game.SettledAt != nil {
		settledAt = *game.SettledAt
	}
	return domain.GameEventPayload{
		GameID:    game.ID,
		Account:   game.Account,
		GameType:  game.GameType,
		Wager:     game.Wager.String(),
		Payout:    game.Payout.String(),
		HouseEdge: game.HouseEdge.String(),
		Result:    game.Result,
		Status:    game.Status,
		SettledAt: settledAt,
		Fairness:  reveal,
	}
}
