package export

import (
	"net/http"

	"fastparcel/internal/metrics"
	"fastparcel/internal/order"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders order.Repository
}

func NewHandler(orders order.Repository) *Handler {
	return &Handler{orders: orders}
}

// Label godoc
// @Summary      Download shipping label
// @Description  Renders the plain-text label for an order as an attachment named <AWB>-label.txt.
// @Tags         exports
// @Security     BearerAuth
// @Produce      text/plain
// @Param        orderID  path      string  true  "Order ID"
// @Success      200      {string}  string
// @Failure      404      {object}  gin.H
// @Router       /orders/{orderID}/label [get]
func (h *Handler) Label(c *gin.Context) {
	id := c.Param("orderID")

	o, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	metrics.RecordExport("label")

	c.Header("Content-Disposition", `attachment; filename="`+LabelFilename(*o)+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(RenderLabel(*o)))
}

// Report godoc
// @Summary      Download shipping summary
// @Description  Serializes the full, unfiltered order ledger as CSV.
// @Tags         exports
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      500  {object}  gin.H
// @Router       /reports/shipping-summary [get]
func (h *Handler) Report(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	metrics.RecordExport("report")

	c.Header("Content-Disposition", `attachment; filename="`+ReportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(RenderReport(orders)))
}
