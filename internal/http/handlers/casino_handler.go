package handlers

import (
	"net/http"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CasinoHandler handles single-player games against the house
type CasinoHandler struct {
	casinoUC domain.CasinoUseCase
	logger   *logger.Logger
}

// NewCasinoHandler creates a new casino handler
func NewCasinoHandler(casinoUC domain.CasinoUseCase, logger *logger.Logger) *CasinoHandler {
	return &CasinoHandler{
		casinoUC: casinoUC,
		logger:   logger,
	}
}

// PlayRequest represents a wager against the house
type PlayRequest struct {
	Wager        decimal.Decimal `json:"wager" swaggertype:"string" example:"10"`
	Move         domain.Move     `json:"move" example:"1"`
	ClientSeed   string          `json:"client_seed" binding:"max=128" example:"my-lucky-seed"`
	CommitmentID string          `json:"commitment_id" binding:"max=64" example:"3f1c2e9a-7d4b-4f2a-9d3e-1b2c3d4e5f60"`
}

// Play wagers on one round of rock-paper-scissors
// @Summary Play a game
// @Description Debit the wager, resolve against the committed house seed and settle. Moves: 1 rock, 2 paper, 3 scissors.
// @Tags casino
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlayRequest true "Wager and move"
// @Success 200 {object} domain.SettlementResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /casino/play [post]
func (h *CasinoHandler) Play(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	result, err := h.casinoUC.Play(c.Request.Context(), domain.PlayRequest{
		Account:      middleware.Account(c),
		Wager:        req.Wager,
		Move:         req.Move,
		ClientSeed:   req.ClientSeed,
		CommitmentID: req.CommitmentID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetGame returns one game of the caller
// @Summary Get game
// @Tags casino
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} domain.ErrorResponse
// @Router /casino/games/{id} [get]
func (h *CasinoHandler) GetGame(c *gin.Context) {
	game, err := h.casinoUC.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if game.Account != middleware.Account(c) && !isOperator(c) {
		respondError(c, h.logger, domain.NewNotFoundError("Game"))
		return
	}
	c.JSON(http.StatusOK, game)
}

// ListGames returns the caller's recent games
// @Summary Game history
// @Tags casino
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} domain.Game
// @Router /casino/games [get]
func (h *CasinoHandler) ListGames(c *gin.Context) {
	games, err := h.casinoUC.ListGames(c.Request.Context(), middleware.Account(c), queryLimit(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, games)
}
