package handlers

import (
	"net/http"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// FairnessHandler publishes and verifies commitments
type FairnessHandler struct {
	fairnessSvc domain.FairnessService
	logger      *logger.Logger
}

// NewFairnessHandler creates a new fairness handler
func NewFairnessHandler(fairnessSvc domain.FairnessService, logger *logger.Logger) *FairnessHandler {
	return &FairnessHandler{
		fairnessSvc: fairnessSvc,
		logger:      logger,
	}
}

// CommitResponse is a freshly published commitment
type CommitResponse struct {
	CommitmentID   string `json:"commitment_id" example:"3f1c2e9a-7d4b-4f2a-9d3e-1b2c3d4e5f60"`
	ServerSeedHash string `json:"server_seed_hash" example:"9b74c9897bac770ffc029102a200c5de..."`
}

// VerifyOutcomeRequest carries revealed seeds for an offline check
type VerifyOutcomeRequest struct {
	ServerSeed     string `json:"server_seed" binding:"required,max=128"`
	ServerSeedHash string `json:"server_seed_hash" binding:"max=64"`
	ClientSeed     string `json:"client_seed" binding:"max=128"`
	Nonce          int64  `json:"nonce"`
	Modulus        int    `json:"modulus" example:"3"`
}

// Commit publishes a server seed hash before the player picks a move
// @Summary Pre-commit a server seed
// @Tags fairness
// @Produce json
// @Security BearerAuth
// @Success 201 {object} CommitResponse
// @Router /fairness/commit [post]
func (h *FairnessHandler) Commit(c *gin.Context) {
	commitment, err := h.fairnessSvc.Commit(c.Request.Context(), middleware.Account(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, CommitResponse{
		CommitmentID:   commitment.ID,
		ServerSeedHash: commitment.ServerSeedHash,
	})
}

// GetCommitment returns the public view of a commitment
// @Summary Get commitment
// @Description The server seed is included only once it has been revealed
// @Tags fairness
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commitment ID"
// @Success 200 {object} domain.FairnessReveal
// @Failure 404 {object} domain.ErrorResponse
// @Router /fairness/commitments/{id} [get]
func (h *FairnessHandler) GetCommitment(c *gin.Context) {
	reveal, err := h.fairnessSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reveal)
}

// VerifyCommitment recomputes the hash of a revealed commitment
// @Summary Verify commitment
// @Tags fairness
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commitment ID"
// @Success 200 {object} domain.FairnessReveal
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /fairness/commitments/{id}/verify [get]
func (h *FairnessHandler) VerifyCommitment(c *gin.Context) {
	reveal, err := h.fairnessSvc.VerifyCommitment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reveal)
}

// VerifyOutcome recomputes an outcome from revealed seeds
// @Summary Verify outcome
// @Tags fairness
// @Accept json
// @Produce json
// @Param request body VerifyOutcomeRequest true "Revealed seeds"
// @Success 200 {object} domain.OutcomeProof
// @Failure 400 {object} domain.ErrorResponse
// @Router /fairness/verify [post]
func (h *FairnessHandler) VerifyOutcome(c *gin.Context) {
	var req VerifyOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	proof, err := h.fairnessSvc.VerifyOutcome(req.ServerSeed, req.ServerSeedHash, req.ClientSeed, req.Nonce, req.Modulus)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, proof)
}
