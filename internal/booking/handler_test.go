package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastparcel/internal/order"
	"fastparcel/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(balanceCents int64) (*gin.Engine, order.Repository, wallet.Repository) {
	gin.SetMode(gin.TestMode)

	orders := order.NewMemoryRepository(order.Seed())
	walletRepo := wallet.NewMemoryRepository(balanceCents, nil)
	handler := NewHandler(NewService(NewWorkflow(), orders, walletRepo))

	router := gin.New()
	router.GET("/booking/options", handler.Options)
	router.POST("/booking", handler.Open)
	router.GET("/booking", handler.Current)
	router.PATCH("/booking/draft", handler.UpdateDraft)
	router.POST("/booking/next", handler.Next)
	router.POST("/booking/back", handler.Back)
	router.DELETE("/booking", handler.Cancel)
	router.POST("/booking/ship", handler.Ship)

	return router, orders, walletRepo
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Options(t *testing.T) {
	router, _, _ := setupRouter(120000)

	w := do(t, router, http.MethodGet, "/booking/options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services    []map[string]interface{} `json:"services"`
		PickupSlots []string                 `json:"pickup_slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Services, 3)
	assert.Len(t, resp.PickupSlots, 3)
}

func TestHandler_FullBookingFlow(t *testing.T) {
	router, orders, walletRepo := setupRouter(120000)

	w := do(t, router, http.MethodPost, "/booking", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPatch, "/booking/draft", map[string]string{
		"sender_address":   "Mumbai, IN",
		"receiver_address": "Kochi, IN",
		"service":          "Fast Parcel Priority",
	})
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 4; i++ {
		w = do(t, router, http.MethodPost, "/booking/next", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// One step too far.
	w = do(t, router, http.MethodPost, "/booking/next", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodPost, "/booking/ship", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order order.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^FP\d{6}$`, resp.Order.AWB)
	assert.Equal(t, order.StatusBooked, resp.Order.Status)
	assert.Equal(t, int64(24900), resp.Order.CostCents)
	assert.Equal(t, "Kochi, IN", resp.Order.Destination)

	listed, err := orders.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 4)
	assert.Equal(t, resp.Order.AWB, listed[0].AWB)

	balance, err := walletRepo.BalanceCents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(95100), balance)

	// The workflow is closed after shipping.
	w = do(t, router, http.MethodGet, "/booking", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Ship_InsufficientFunds(t *testing.T) {
	router, orders, walletRepo := setupRouter(5000)

	do(t, router, http.MethodPost, "/booking", nil)
	for i := 0; i < 4; i++ {
		do(t, router, http.MethodPost, "/booking/next", nil)
	}

	w := do(t, router, http.MethodPost, "/booking/ship", nil)
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	listed, err := orders.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 3)

	balance, err := walletRepo.BalanceCents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
}

func TestHandler_Ship_WithoutOpenBooking(t *testing.T) {
	router, _, _ := setupRouter(120000)

	w := do(t, router, http.MethodPost, "/booking/ship", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Cancel(t *testing.T) {
	router, _, _ := setupRouter(120000)

	w := do(t, router, http.MethodDelete, "/booking", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	do(t, router, http.MethodPost, "/booking", nil)

	w = do(t, router, http.MethodDelete, "/booking", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/booking", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
