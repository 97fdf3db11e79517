package booking

import (
	"errors"
	"net/http"

	"fastparcel/internal/pricing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Options godoc
// @Summary      Booking catalog
// @Description  Returns the bookable service tiers and pickup slots.
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Router       /booking/options [get]
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":     pricing.ServiceOptions(),
		"pickup_slots": pricing.PickupSlots(),
	})
}

// Open godoc
// @Summary      Start booking
// @Description  Opens a fresh booking workflow, discarding any previous draft.
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      201  {object}  gin.H
// @Router       /booking [post]
func (h *Handler) Open(c *gin.Context) {
	step, draft := h.service.Open(c.Request.Context())
	c.JSON(http.StatusCreated, stepResponse(step, draft))
}

// Current godoc
// @Summary      Current booking state
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /booking [get]
func (h *Handler) Current(c *gin.Context) {
	step, draft, err := h.service.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No booking in progress"})
		return
	}
	c.JSON(http.StatusOK, stepResponse(step, draft))
}

// UpdateDraft godoc
// @Summary      Update booking draft
// @Description  Applies a partial patch to the draft. Fields are free text; nothing is validated before advancing.
// @Tags         booking
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateDraftRequest  true  "Draft fields to set"
// @Success      200      {object}  Draft
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /booking/draft [patch]
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No booking in progress"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// Next godoc
// @Summary      Advance one step
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /booking/next [post]
func (h *Handler) Next(c *gin.Context) {
	step, err := h.service.Next(c.Request.Context())
	h.respondStep(c, step, err)
}

// Back godoc
// @Summary      Go back one step
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /booking/back [post]
func (h *Handler) Back(c *gin.Context) {
	step, err := h.service.Back(c.Request.Context())
	h.respondStep(c, step, err)
}

// Cancel godoc
// @Summary      Cancel booking
// @Description  Discards the draft with no side effects.
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /booking [delete]
func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No booking in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// Ship godoc
// @Summary      Submit booking
// @Description  Books the shipment from the payment step, debiting the wallet.
// @Tags         booking
// @Security     BearerAuth
// @Produce      json
// @Success      201  {object}  gin.H
// @Failure      402  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /booking/ship [post]
func (h *Handler) Ship(c *gin.Context) {
	o, err := h.service.Ship(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient wallet balance. Top up to proceed."})
		case errors.Is(err, ErrNoActiveBooking), errors.Is(err, ErrNotAtPayStep):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Shipment created",
		"order":   o,
	})
}

func (h *Handler) respondStep(c *gin.Context, step Step, err error) {
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"step":       int(step),
		"step_name":  step.String(),
		"step_count": int(StepPay),
	})
}

func stepResponse(step Step, draft Draft) gin.H {
	return gin.H{
		"step":       int(step),
		"step_name":  step.String(),
		"step_count": int(StepPay),
		"draft":      draft,
	}
}
