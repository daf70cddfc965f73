package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain/mocks"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Details   string `json:"details"`
		RequestID string `json:"request_id"`
	} `json:"error"`
	Success bool `json:"success"`
}

// newRouter stands in for the JWT middleware
func newRouter(account, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextRequestID, "req-1")
		if account != "" {
			c.Set(middleware.ContextAccount, account)
			c.Set(middleware.ContextRole, role)
		}
		c.Next()
	})
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBalanceService(ctrl)
	h := NewBalanceHandler(svc, logger.NewNop())

	r := newRouter("alice", auth.RolePlayer)
	r.GET("/balance", h.GetBalance)

	svc.EXPECT().GetBalance(gomock.Any(), "alice").Return(&domain.Balance{
		Account:   "alice",
		Available: decimal.RequireFromString("125.5"),
	}, nil)

	w := do(r, http.MethodGet, "/balance", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Account)
	assert.True(t, decimal.RequireFromString("125.5").Equal(resp.Available))
}

func TestBalanceHandler_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBalanceService(ctrl)
	h := NewBalanceHandler(svc, logger.NewNop())

	r := newRouter("ops", auth.RoleOperator)
	r.POST("/admin/balances/:account/deposit", h.Deposit)

	svc.EXPECT().Credit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.Mutation) (decimal.Decimal, error) {
			assert.Equal(t, "bob", m.Account)
			assert.Equal(t, domain.TransactionTypeDeposit, m.Type)
			assert.True(t, decimal.RequireFromString("50.25").Equal(m.Amount))
			require.NotNil(t, m.Metadata.Transfer)
			assert.Equal(t, "0xfeed", m.Metadata.Transfer.ChainTxHash)
			return decimal.RequireFromString("150.25"), nil
		})

	w := do(r, http.MethodPost, "/admin/balances/BOB/deposit", `{"amount":"50.25","chain_tx_hash":"0xfeed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp TransferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp.Account)
	assert.True(t, decimal.RequireFromString("150.25").Equal(resp.Available))
}

func TestBalanceHandler_WithdrawErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "insufficient balance shows only the shortfall",
			err:        domain.NewInsufficientBalanceError(decimal.NewFromInt(7)),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   domain.ErrCodeInsufficientBalance,
			wantMsg:    "Insufficient balance: 7 more required",
		},
		{
			name:       "store outage is generic",
			err:        domain.NewStoreUnavailableError("debit", errors.New("dial tcp 10.0.0.5:5432: connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   domain.ErrCodeStoreUnavailable,
			wantMsg:    "Service temporarily unavailable, please retry",
		},
		{
			name:       "plain error becomes internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domain.ErrCodeInternal,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBalanceService(ctrl)
			h := NewBalanceHandler(svc, logger.NewNop())

			r := newRouter("ops", auth.RoleOperator)
			r.POST("/admin/balances/:account/withdraw", h.Withdraw)

			svc.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(decimal.Zero, tt.err)

			w := do(r, http.MethodPost, "/admin/balances/bob/withdraw", `{"amount":"10"}`)
			require.Equal(t, tt.wantStatus, w.Code)

			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.Equal(t, "req-1", body.Error.RequestID)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
		})
	}
}

func TestCasinoHandler_Play(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCasinoUseCase(ctrl)
	h := NewCasinoHandler(uc, logger.NewNop())

	r := newRouter("alice", auth.RolePlayer)
	r.POST("/casino/play", h.Play)

	uc.EXPECT().Play(gomock.Any(), domain.PlayRequest{
		Account:      "alice",
		Wager:        decimal.RequireFromString("10"),
		Move:         domain.MoveRock,
		ClientSeed:   "lucky",
		CommitmentID: "c-1",
	}).Return(&domain.SettlementResult{GameID: "g-1", Status: domain.GameStatusSettled, Result: domain.GameResultWin}, nil)

	w := do(r, http.MethodPost, "/casino/play", `{"wager":"10","move":1,"client_seed":"lucky","commitment_id":"c-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SettlementResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "g-1", result.GameID)
	assert.Equal(t, domain.GameResultWin, result.Result)
}

func TestCasinoHandler_PlayMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewCasinoHandler(mocks.NewMockCasinoUseCase(ctrl), logger.NewNop())

	r := newRouter("alice", auth.RolePlayer)
	r.POST("/casino/play", h.Play)

	w := do(r, http.MethodPost, "/casino/play", `{"wager":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidInput, decodeError(t, w).Error.Code)
}

func TestCasinoHandler_GetGameVisibility(t *testing.T) {
	tests := []struct {
		name       string
		account    string
		role       string
		wantStatus int
	}{
		{"owner", "alice", auth.RolePlayer, http.StatusOK},
		{"stranger", "mallory", auth.RolePlayer, http.StatusNotFound},
		{"operator", "ops", auth.RoleOperator, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockCasinoUseCase(ctrl)
			h := NewCasinoHandler(uc, logger.NewNop())

			r := newRouter(tt.account, tt.role)
			r.GET("/casino/games/:id", h.GetGame)

			uc.EXPECT().GetGame(gomock.Any(), "g-1").Return(&domain.Game{ID: "g-1", Account: "alice"}, nil)

			w := do(r, http.MethodGet, "/casino/games/g-1", "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestFairnessHandler_Commit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFairnessService(ctrl)
	h := NewFairnessHandler(svc, logger.NewNop())

	r := newRouter("alice", auth.RolePlayer)
	r.POST("/fairness/commit", h.Commit)

	svc.EXPECT().Commit(gomock.Any(), "alice").Return(&domain.Commitment{
		ID:             "c-1",
		ServerSeed:     "secret-seed",
		ServerSeedHash: "abc123",
	}, nil)

	w := do(r, http.MethodPost, "/fairness/commit", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-seed")

	var resp CommitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "c-1", resp.CommitmentID)
	assert.Equal(t, "abc123", resp.ServerSeedHash)
}

func TestFairnessHandler_VerifyOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFairnessService(ctrl)
	h := NewFairnessHandler(svc, logger.NewNop())

	r := newRouter("", "")
	r.POST("/fairness/verify", h.VerifyOutcome)

	svc.EXPECT().VerifyOutcome("seed", "hash", "client", int64(2), 3).
		Return(&domain.OutcomeProof{ServerSeedHash: "hash", HashMatches: true, Outcome: 1, Move: domain.MovePaper}, nil)

	w := do(r, http.MethodPost, "/fairness/verify",
		`{"server_seed":"seed","server_seed_hash":"hash","client_seed":"client","nonce":2,"modulus":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var proof domain.OutcomeProof
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &proof))
	assert.True(t, proof.HashMatches)
	assert.Equal(t, domain.MovePaper, proof.Move)

	w = do(r, http.MethodPost, "/fairness/verify", `{"nonce":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchmakingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockMatchmakingUseCase(ctrl)
	h := NewMatchmakingHandler(uc, logger.NewNop())

	r := newRouter("alice", auth.RolePlayer)
	r.POST("/matchmaking/queue", h.JoinQueue)
	r.DELETE("/matchmaking/queue", h.LeaveQueue)
	r.GET("/matchmaking/leaderboard", h.Leaderboard)

	uc.EXPECT().JoinQueue(gomock.Any(), domain.JoinQueueRequest{
		Account:  "alice",
		GameType: domain.GameTypeRPS,
		Stake:    decimal.RequireFromString("10"),
	}).Return(&domain.JoinResult{Entry: &domain.QueueEntry{ID: "q-1", Status: domain.QueueStatusWaiting}}, nil)

	w := do(r, http.MethodPost, "/matchmaking/queue", `{"stake":"10","game_type":"RPS"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"q-1"`)

	uc.EXPECT().LeaveQueue(gomock.Any(), "alice").Return(domain.NewNotFoundError("Queue entry"))
	w = do(r, http.MethodDelete, "/matchmaking/queue", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	uc.EXPECT().Leaderboard(gomock.Any(), 5).Return([]*domain.LeaderboardEntry{{Rank: 1, Tier: "GOLD"}}, nil)
	w = do(r, http.MethodGet, "/matchmaking/leaderboard?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"GOLD"`)
}

func TestMatchHandler_RecordRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockMatchUseCase(ctrl)
	h := NewMatchHandler(uc, logger.NewNop())

	r := newRouter("ops", auth.RoleOperator)
	r.POST("/matches/:id/rounds", h.RecordRound)

	uc.EXPECT().RecordRound(gomock.Any(), "m-1", 2, domain.MovePaper, domain.MoveAuto).
		Return(&domain.RoundResult{MatchID: "m-1", Round: 2, Winner: domain.RoundWinnerA, WinsA: 2, Decided: true}, nil)

	w := do(r, http.MethodPost, "/matches/m-1/rounds", `{"round":2,"move_a":2,"move_b":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	uc.EXPECT().RecordRound(gomock.Any(), "m-1", 3, domain.MoveRock, domain.MoveRock).
		Return(nil, domain.NewAlreadySettledError("Match", "m-1"))
	w = do(r, http.MethodPost, "/matches/m-1/rounds", `{"round":3,"move_a":1,"move_b":1}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.ErrCodeAlreadySettled, decodeError(t, w).Error.Code)
}

func TestMatchHandler_SettleRequiresParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockMatchUseCase(ctrl)
	h := NewMatchHandler(uc, logger.NewNop())

	match := &domain.Match{ID: "m-1", PlayerA: "alice", PlayerB: "bob"}

	outsider := newRouter("mallory", auth.RolePlayer)
	outsider.POST("/matches/:id/settle", h.SettleMatch)
	uc.EXPECT().GetMatch(gomock.Any(), "m-1").Return(match, nil)
	w := do(outsider, http.MethodPost, "/matches/m-1/settle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	player := newRouter("bob", auth.RolePlayer)
	player.POST("/matches/:id/settle", h.SettleMatch)
	uc.EXPECT().GetMatch(gomock.Any(), "m-1").Return(match, nil)
	uc.EXPECT().SettleMatch(gomock.Any(), "m-1").Return(&domain.MatchSettlement{MatchID: "m-1", RatingDeltaA: 16, RatingDeltaB: -16}, nil)
	w = do(player, http.MethodPost, "/matches/m-1/settle", "")
	require.Equal(t, http.StatusOK, w.Code)

	var settlement domain.MatchSettlement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settlement))
	assert.Equal(t, 16, settlement.RatingDeltaA)
}
