package handlers

import (
	"net/http"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MatchHandler handles PvP matches
type MatchHandler struct {
	matchUC domain.MatchUseCase
	logger  *logger.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUC domain.MatchUseCase, logger *logger.Logger) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
		logger:  logger,
	}
}

// CreateMatchRequest pairs two accounts directly
type CreateMatchRequest struct {
	PlayerA     string          `json:"player_a" binding:"required,max=64" example:"0xabc"`
	PlayerB     string          `json:"player_b" binding:"required,max=64" example:"0xdef"`
	Stake       decimal.Decimal `json:"stake" swaggertype:"string" example:"25"`
	GameType    domain.GameType `json:"game_type" example:"RPS"`
	ClientSeedA string          `json:"client_seed_a" binding:"max=128"`
	ClientSeedB string          `json:"client_seed_b" binding:"max=128"`
}

// RoundRequest carries both throws of a round; 0 lets the fairness seed pick
type RoundRequest struct {
	Round int         `json:"round" example:"1"`
	MoveA domain.Move `json:"move_a" example:"1"`
	MoveB domain.Move `json:"move_b" example:"3"`
}

// CreateMatch escrows both stakes and starts a match
// @Summary Create match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMatchRequest true "Players and stake"
// @Success 201 {object} domain.Match
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	match, err := h.matchUC.CreateMatch(c.Request.Context(), domain.CreateMatchRequest{
		PlayerA:     req.PlayerA,
		PlayerB:     req.PlayerB,
		Stake:       req.Stake,
		GameType:    req.GameType,
		ClientSeedA: req.ClientSeedA,
		ClientSeedB: req.ClientSeedB,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// RecordRound plays the next round of a match
// @Summary Record round
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body RoundRequest true "Round"
// @Success 200 {object} domain.RoundResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /matches/{id}/rounds [post]
func (h *MatchHandler) RecordRound(c *gin.Context) {
	var req RoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	result, err := h.matchUC.RecordRound(c.Request.Context(), c.Param("id"), req.Round, req.MoveA, req.MoveB)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SettleMatch pays out a decided match
// @Summary Settle match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} domain.MatchSettlement
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /matches/{id}/settle [post]
func (h *MatchHandler) SettleMatch(c *gin.Context) {
	if _, ok := h.visibleMatch(c); !ok {
		return
	}
	settlement, err := h.matchUC.SettleMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, settlement)
}

// GetMatch returns a match with its rounds
// @Summary Get match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 404 {object} domain.ErrorResponse
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, ok := h.visibleMatch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, match)
}

// ListMatches returns the caller's recent matches
// @Summary Recent matches
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} domain.Match
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchUC.ListRecentMatches(c.Request.Context(), middleware.Account(c), queryLimit(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// visibleMatch loads the match when the caller plays in it or is an operator
func (h *MatchHandler) visibleMatch(c *gin.Context) (*domain.Match, bool) {
	match, err := h.matchUC.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return nil, false
	}
	if !match.Participant(middleware.Account(c)) && !isOperator(c) {
		respondError(c, h.logger, domain.NewNotFoundError("Match"))
		return nil, false
	}
	return match, true
}
