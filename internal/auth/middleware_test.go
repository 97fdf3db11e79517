package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	active bool
	err    error
}

func (s *stubStore) Activate(ctx context.Context) error      { return nil }
func (s *stubStore) Clear(ctx context.Context) error         { return nil }
func (s *stubStore) Active(ctx context.Context) (bool, error) { return s.active, s.err }
func (s *stubStore) Close() error                            { return nil }

func setupProtected(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(testSecret, store))
	router.GET("/protected", func(c *gin.Context) {
		email, _ := SessionEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_ValidTokenAndActiveSession(t *testing.T) {
	router := setupProtected(&stubStore{active: true})

	token, err := GenerateSessionToken("ops@fastparcel.dev", testSecret)
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ops@fastparcel.dev")
}

func TestMiddleware_Rejections(t *testing.T) {
	router := setupProtected(&stubStore{active: true})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestMiddleware_LoggedOutSession(t *testing.T) {
	router := setupProtected(&stubStore{active: false})

	token, err := GenerateSessionToken("ops@fastparcel.dev", testSecret)
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session is logged out")
}

func TestMiddleware_SessionStoreError(t *testing.T) {
	router := setupProtected(&stubStore{err: assert.AnError})

	token, err := GenerateSessionToken("ops@fastparcel.dev", testSecret)
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
