package wallet

import (
	"net/http"

	"fastparcel/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type TopUpRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}

// GetBalance godoc
// @Summary      Wallet balance
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /wallet [get]
func (h *Handler) GetBalance(c *gin.Context) {
	balance, err := h.repo.BalanceCents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wallet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance_cents": balance})
}

// TopUp godoc
// @Summary      Top up wallet
// @Tags         wallet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      TopUpRequest  true  "Amount in cents"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /wallet/topup [post]
func (h *Handler) TopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AmountCents <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_cents must be positive"})
		return
	}

	tx, err := h.repo.Credit(c.Request.Context(), req.AmountCents, "Wallet Top-up")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to top up wallet"})
		return
	}

	balance, err := h.repo.BalanceCents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wallet after top up"})
		return
	}

	metrics.RecordWalletTopUp()
	metrics.SetWalletBalance(balance)

	c.JSON(http.StatusOK, gin.H{
		"message":       "wallet recharged",
		"balance_cents": balance,
		"transaction":   tx,
	})
}

// ListTransactions godoc
// @Summary      Wallet transactions
// @Description  Returns the transaction ledger, newest first.
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Transaction
// @Failure      500  {object}  gin.H
// @Router       /wallet/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	txs, err := h.repo.Transactions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}
