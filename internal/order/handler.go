package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List shipments
// @Description  Returns the order ledger, newest first, optionally filtered by a search query (AWB or destination) and a status.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        q       query     string  false  "Search AWB or destination"
// @Param        status  query     string  false  "Status filter"  Enums(All, Booked, Picked Up, In Transit, Delivered)
// @Success      200     {array}   Order
// @Failure      500     {object}  gin.H
// @Router       /orders [get]
func (h *Handler) List(c *gin.Context) {
	query := c.Query("q")
	status := c.DefaultQuery("status", StatusAll)

	orders, err := h.service.List(c.Request.Context(), query, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// Cancel godoc
// @Summary      Cancel order
// @Description  Cancels a Booked order and refunds its cost to the wallet.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderID  path      string  true  "Order ID"
// @Success      200      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /orders/{orderID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("orderID")

	o, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "Only Booked orders can be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled and refunded",
		"order":   o,
	})
}

// Tracking godoc
// @Summary      Track order
// @Description  Returns the illustrative tracking checkpoints for an order.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderID  path      string  true  "Order ID"
// @Success      200      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /orders/{orderID}/tracking [get]
func (h *Handler) Tracking(c *gin.Context) {
	id := c.Param("orderID")

	o, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"awb":    o.AWB,
		"status": o.Status,
		"stages": TrackingStages,
	})
}
