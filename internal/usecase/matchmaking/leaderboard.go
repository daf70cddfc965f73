package matchmaking

import (
	"context"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"go.uber.org/zap"
)

// Rank tiers by rating, highest first
const (
	TierGrandmaster = "GRANDMASTER"
	TierDiamond     = "DIAMOND"
	TierPlatinum    = "PLATINUM"
	TierGold        = "GOLD"
	TierSilver      = "SILVER"
	TierBronze      = "BRONZE"
)

var tierFloors = []struct {
	floor int
	tier  string
}{
	{2000, TierGrandmaster},
	{1600, TierDiamond},
	{1400, TierPlatinum},
	{1200, TierGold},
	{1000, TierSilver},
}

// TierFor maps a rating to its rank tier
func TierFor(rating int) string {
	for _, t := range tierFloors {
		if rating >= t.floor {
			return t.tier
		}
	}
	return TierBronze
}

// Leaderboard returns the highest rated accounts that have played at least one match
func (uc *MatchmakingUseCase) Leaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ratings, err := uc.ratingRepo.Top(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to load leaderboard", zap.Error(err))
		return nil, domain.NewStoreUnavailableError("load leaderboard", err)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(ratings))
	for i, r := range ratings {
		entries = append(entries, &domain.LeaderboardEntry{
			Rank:         i + 1,
			PlayerRating: *r,
			Tier:         TierFor(r.Rating),
		})
	}
	return entries, nil
}
