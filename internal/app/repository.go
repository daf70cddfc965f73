package app

import (
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitLedgerRepositories(db *gorm.DB) (domain.BalanceRepository, domain.LedgerRepository) {
	return repository.NewBalanceRepository(db), repository.NewLedgerRepository(db)
}

func (a *application) InitGameRepositories(db *gorm.DB) (domain.GameRepository, domain.CommitmentRepository, domain.OutboxRepository) {
	return repository.NewGameRepository(db), repository.NewCommitmentRepository(db), repository.NewOutboxRepository(db)
}

func (a *application) InitMatchRepositories(db *gorm.DB) (domain.MatchRepository, domain.RatingRepository, domain.QueueRepository) {
	return repository.NewMatchRepository(db), repository.NewRatingRepository(db), repository.NewQueueRepository(db)
}
