package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceHandler handles HTTP requests for balances and the ledger
type BalanceHandler struct {
	balanceSvc domain.BalanceService
	logger     *logger.Logger
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(balanceSvc domain.BalanceService, logger *logger.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceSvc: balanceSvc,
		logger:     logger,
	}
}

// BalanceResponse represents an account balance
type BalanceResponse struct {
	Account        string          `json:"account" example:"0xabc"`
	Available      decimal.Decimal `json:"available" swaggertype:"string" example:"125.5"`
	Frozen         decimal.Decimal `json:"frozen" swaggertype:"string" example:"0"`
	TotalDeposited decimal.Decimal `json:"total_deposited" swaggertype:"string" example:"200"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn" swaggertype:"string" example:"0"`
	TotalWagered   decimal.Decimal `json:"total_wagered" swaggertype:"string" example:"80"`
	TotalWon       decimal.Decimal `json:"total_won" swaggertype:"string" example:"5.5"`
	UpdatedAt      string          `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

// TransferRequest is an operator deposit or withdrawal
type TransferRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"50.25"`
	ChainTxHash string          `json:"chain_tx_hash" binding:"max=128" example:"0x5f2c..."`
	Reference   string          `json:"reference" binding:"max=128" example:"deposit-1234"`
}

// TransferResponse is the balance after an operator transfer
type TransferResponse struct {
	Account   string          `json:"account" example:"0xabc"`
	Available decimal.Decimal `json:"available" swaggertype:"string" example:"175.75"`
}

func toBalanceResponse(b *domain.Balance) BalanceResponse {
	return BalanceResponse{
		Account:        b.Account,
		Available:      b.Available,
		Frozen:         b.Frozen,
		TotalDeposited: b.TotalDeposited,
		TotalWithdrawn: b.TotalWithdrawn,
		TotalWagered:   b.TotalWagered,
		TotalWon:       b.TotalWon,
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// GetBalance returns the caller's balance
// @Summary Get balance
// @Description Get the available balance and lifetime counters of the authenticated account
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	b, err := h.balanceSvc.GetBalance(c.Request.Context(), middleware.Account(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toBalanceResponse(b))
}

// GetTransactions returns the caller's ledger, newest first
// @Summary Transaction history
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50, max 500)"
// @Success 200 {array} domain.LedgerTransaction
// @Failure 401 {object} domain.ErrorResponse
// @Router /balance/transactions [get]
func (h *BalanceHandler) GetTransactions(c *gin.Context) {
	txs, err := h.balanceSvc.GetTransactionHistory(c.Request.Context(), middleware.Account(c), queryLimit(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// Reconcile folds the caller's ledger and compares it with the stored balance
// @Summary Reconcile balance
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ReconciliationReport
// @Failure 401 {object} domain.ErrorResponse
// @Router /balance/reconcile [get]
func (h *BalanceHandler) Reconcile(c *gin.Context) {
	report, err := h.balanceSvc.Reconcile(c.Request.Context(), middleware.Account(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Deposit credits a confirmed deposit
// @Summary Credit deposit
// @Description Credit a confirmed external deposit to an account (operator only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account path string true "Account"
// @Param request body TransferRequest true "Deposit details"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Router /admin/balances/{account}/deposit [post]
func (h *BalanceHandler) Deposit(c *gin.Context) {
	h.transfer(c, domain.TransactionTypeDeposit)
}

// Withdraw debits a requested withdrawal
// @Summary Debit withdrawal
// @Description Debit an external withdrawal from an account (operator only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account path string true "Account"
// @Param request body TransferRequest true "Withdrawal details"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /admin/balances/{account}/withdraw [post]
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	h.transfer(c, domain.TransactionTypeWithdraw)
}

func (h *BalanceHandler) transfer(c *gin.Context, txType domain.TransactionType) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	m := domain.Mutation{
		Account: strings.ToLower(strings.TrimSpace(c.Param("account"))),
		Amount:  req.Amount,
		Type:    txType,
		Metadata: domain.TxMetadata{
			Transfer: &domain.TransferMetadata{ChainTxHash: req.ChainTxHash, Reference: req.Reference},
		},
	}

	var (
		available decimal.Decimal
		err       error
	)
	if txType == domain.TransactionTypeDeposit {
		available, err = h.balanceSvc.Credit(c.Request.Context(), m)
	} else {
		available, err = h.balanceSvc.Debit(c.Request.Context(), m)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Operator transfer applied",
		zap.String("type", string(txType)),
		zap.String("account", m.Account),
		zap.String("amount", req.Amount.String()),
		zap.String("operator", middleware.Account(c)))

	c.JSON(http.StatusOK, TransferResponse{Account: m.Account, Available: available})
}
