package wallet

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewMemoryRepository(SeedBalanceCents, SeedTransactions()))

	router := gin.New()
	router.GET("/wallet", handler.GetBalance)
	router.POST("/wallet/topup", handler.TopUp)
	router.GET("/wallet/transactions", handler.ListTransactions)
	return router
}

func TestHandler_GetBalance(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/wallet", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BalanceCents int64 `json:"balance_cents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(120000), resp.BalanceCents)
}

func TestHandler_TopUp(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(gin.H{"amount_cents": 50000})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/wallet/topup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message      string      `json:"message"`
		BalanceCents int64       `json:"balance_cents"`
		Transaction  Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "wallet recharged", resp.Message)
	assert.Equal(t, int64(170000), resp.BalanceCents)
	assert.Equal(t, TypeCredit, resp.Transaction.Type)
	assert.Equal(t, "Wallet Top-up", resp.Transaction.Note)
}

func TestHandler_TopUp_InvalidAmount(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{}`},
		{"zero amount", `{"amount_cents": 0}`},
		{"negative amount", `{"amount_cents": -500}`},
		{"malformed json", `{"amount_cents":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/wallet/topup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_ListTransactions(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/wallet/transactions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var txs []Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	require.Len(t, txs, 3)
	assert.Equal(t, "Wallet Top-up", txs[0].Note)
	assert.Equal(t, "Order FP00012345", txs[1].Note)
	assert.Equal(t, "Order FP00012346", txs[2].Note)
}
