package dashboard

import (
	"net/http"

	"fastparcel/internal/order"
	"fastparcel/internal/wallet"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders    order.Repository
	wallet    wallet.Repository
	analytics *Analytics
}

func NewHandler(orders order.Repository, walletRepo wallet.Repository, analytics *Analytics) *Handler {
	return &Handler{
		orders:    orders,
		wallet:    walletRepo,
		analytics: analytics,
	}
}

// Stats godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      500  {object}  gin.H
// @Router       /dashboard/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	balance, err := h.wallet.BalanceCents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wallet"})
		return
	}

	c.JSON(http.StatusOK, ComputeStats(orders, balance))
}

// Analytics godoc
// @Summary      Decorative analytics series
// @Description  A rolling window of demo chart values; carries no business meaning.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Router       /dashboard/analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"series": h.analytics.Series()})
}
