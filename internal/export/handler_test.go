package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fastparcel/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(order.NewMemoryRepository(order.Seed()))

	router := gin.New()
	router.GET("/orders/:orderID/label", handler.Label)
	router.GET("/reports/shipping-summary", handler.Report)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Label(t *testing.T) {
	router := setupRouter()

	w := get(router, "/orders/1/label")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, `attachment; filename="FP00012345-label.txt"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Fast Parcel\nAWB: FP00012345\n"))
	assert.Contains(t, w.Body.String(), "[Barcode Placeholder]")
}

func TestHandler_Label_NotFound(t *testing.T) {
	router := setupRouter()

	w := get(router, "/orders/missing/label")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Report(t *testing.T) {
	router := setupRouter()

	w := get(router, "/reports/shipping-summary")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, `attachment; filename="Shipping Summary.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "AWB,Service,Status,Cost,Origin,Destination,Date", lines[0])
}
