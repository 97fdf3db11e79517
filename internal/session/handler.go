package session

import (
	"net/http"

	"fastparcel/internal/auth"
	"fastparcel/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store     Store
	jwtSecret string
}

func NewHandler(store Store, jwtSecret string) *Handler {
	return &Handler{
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// LoginRequest only requires that both fields are non-empty. This is
// a demo gate: credentials are never verified against anything.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Login godoc
// @Summary      Login
// @Description  Accepts any non-empty email and password, persists the session flag and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if err := h.store.Activate(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}

	token, err := auth.GenerateSessionToken(req.Email, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	metrics.RecordLogin()

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Email: req.Email,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the persisted session flag; every protected route rejects afterwards.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Status godoc
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /auth/session [get]
func (h *Handler) Status(c *gin.Context) {
	active, err := h.store.Active(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": active})
}
