package server

import (
	"context"
	"net/http"

	"fastparcel/internal/auth"
	"fastparcel/internal/booking"
	"fastparcel/internal/config"
	"fastparcel/internal/dashboard"
	"fastparcel/internal/export"
	"fastparcel/internal/order"
	"fastparcel/internal/session"
	"fastparcel/internal/wallet"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(
	cfg *config.Config,
	sessions session.Store,
	orders order.Repository,
	walletRepo wallet.Repository,
	analytics *dashboard.Analytics,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	sessionHandler := session.NewHandler(sessions, cfg.JWTSecret)
	orderHandler := order.NewHandler(order.NewService(orders, walletRepo))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewWorkflow(), orders, walletRepo))
	walletHandler := wallet.NewHandler(walletRepo)
	dashboardHandler := dashboard.NewHandler(orders, walletRepo, analytics)
	exportHandler := export.NewHandler(orders)

	public := router.Group("/auth")
	{
		public.POST("/login", sessionHandler.Login)
		public.GET("/session", sessionHandler.Status)
	}

	protected := router.Group("/")
	protected.Use(auth.Middleware(cfg.JWTSecret, sessions))
	{
		protected.POST("/auth/logout", sessionHandler.Logout)

		protected.GET("/dashboard/stats", dashboardHandler.Stats)
		protected.GET("/dashboard/analytics", dashboardHandler.Analytics)

		protected.GET("/orders", orderHandler.List)
		protected.POST("/orders/:orderID/cancel", orderHandler.Cancel)
		protected.GET("/orders/:orderID/tracking", orderHandler.Tracking)
		protected.GET("/orders/:orderID/label", exportHandler.Label)

		protected.GET("/wallet", walletHandler.GetBalance)
		protected.POST("/wallet/topup", walletHandler.TopUp)
		protected.GET("/wallet/transactions", walletHandler.ListTransactions)

		protected.GET("/booking/options", bookingHandler.Options)
		protected.POST("/booking", bookingHandler.Open)
		protected.GET("/booking", bookingHandler.Current)
		protected.PATCH("/booking/draft", bookingHandler.UpdateDraft)
		protected.POST("/booking/next", bookingHandler.Next)
		protected.POST("/booking/back", bookingHandler.Back)
		protected.DELETE("/booking", bookingHandler.Cancel)
		protected.POST("/booking/ship", bookingHandler.Ship)

		protected.GET("/reports/shipping-summary", exportHandler.Report)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{router: router}
}

// Router exposes the underlying engine for httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
