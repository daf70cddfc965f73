package handlers

import (
	"net/http"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MatchmakingHandler handles the PvP queue and the leaderboard
type MatchmakingHandler struct {
	matchmakingUC domain.MatchmakingUseCase
	logger        *logger.Logger
}

// NewMatchmakingHandler creates a new matchmaking handler
func NewMatchmakingHandler(matchmakingUC domain.MatchmakingUseCase, logger *logger.Logger) *MatchmakingHandler {
	return &MatchmakingHandler{
		matchmakingUC: matchmakingUC,
		logger:        logger,
	}
}

// JoinQueueRequest asks for an opponent at roughly this stake
type JoinQueueRequest struct {
	Stake    decimal.Decimal `json:"stake" swaggertype:"string" example:"10"`
	GameType domain.GameType `json:"game_type" example:"RPS"`
}

// JoinQueue enters the caller into the queue
// @Summary Join queue
// @Description Enter the matchmaking queue; the response carries the match when an opponent was found at once
// @Tags matchmaking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinQueueRequest true "Stake"
// @Success 200 {object} domain.JoinResult
// @Failure 409 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /matchmaking/queue [post]
func (h *MatchmakingHandler) JoinQueue(c *gin.Context) {
	var req JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	result, err := h.matchmakingUC.JoinQueue(c.Request.Context(), domain.JoinQueueRequest{
		Account:  middleware.Account(c),
		GameType: req.GameType,
		Stake:    req.Stake,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LeaveQueue removes the caller's waiting entry
// @Summary Leave queue
// @Tags matchmaking
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /matchmaking/queue [delete]
func (h *MatchmakingHandler) LeaveQueue(c *gin.Context) {
	if err := h.matchmakingUC.LeaveQueue(c.Request.Context(), middleware.Account(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListQueue lists waiting entries
// @Summary List queue
// @Tags matchmaking
// @Produce json
// @Security BearerAuth
// @Param game_type query string false "Game type"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {array} domain.QueueEntry
// @Router /matchmaking/queue [get]
func (h *MatchmakingHandler) ListQueue(c *gin.Context) {
	entries, err := h.matchmakingUC.ListQueue(c.Request.Context(), domain.GameType(c.Query("game_type")), queryLimit(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Leaderboard returns the top rated players
// @Summary Leaderboard
// @Tags matchmaking
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} domain.LeaderboardEntry
// @Router /matchmaking/leaderboard [get]
func (h *MatchmakingHandler) Leaderboard(c *gin.Context) {
	board, err := h.matchmakingUC.Leaderboard(c.Request.Context(), queryLimit(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
