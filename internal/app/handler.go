package app

import (
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/handlers"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/feed"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"gorm.io/gorm"
)

func (a *application) InitHandlers(
	db *gorm.DB,
	bs domain.BalanceService,
	cuc domain.CasinoUseCase,
	fs domain.FairnessService,
	mmuc domain.MatchmakingUseCase,
	muc domain.MatchUseCase,
	hub *feed.Hub,
	log *logger.Logger,
) http.Handlers {
	return http.Handlers{
		Health:      handlers.NewHealthHandler(db),
		Balance:     handlers.NewBalanceHandler(bs, log),
		Casino:      handlers.NewCasinoHandler(cuc, log),
		Fairness:    handlers.NewFairnessHandler(fs, log),
		Matchmaking: handlers.NewMatchmakingHandler(mmuc, log),
		Match:       handlers.NewMatchHandler(muc, log),
		Feed:        hub.ServeWS,
	}
}
