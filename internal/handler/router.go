package handler

import (
	"log/slog"
	"net/http"
	"time"

	"steelcatalog/internal/identity"
	"steelcatalog/internal/middleware"
	"steelcatalog/internal/service"
	"steelcatalog/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Services struct {
	Products   service.ProductService
	Categories service.CategoryService
	Users      service.UserService
	Auth       service.AuthService
	Audit      service.AuditService
}

type RouterOptions struct {
	Logger      *slog.Logger
	CORSOrigins []string

	// Verifier is nil unless ID token verification is switched on
	Verifier identity.Verifier

	// RateCounter is nil when redis is not configured
	RateCounter middleware.Counter
	RateLimit   int

	Metrics *middleware.Metrics
	Hub     *websocket.Hub

	TicketSecret []byte
	TicketTTL    time.Duration
}

// NewRouter wires middleware and every route onto a fresh engine
func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logger != nil {
		router.Use(middleware.RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Handler())
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = opts.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", middleware.FirebaseUIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(corsConfig.AllowOrigins) > 0 {
		router.Use(cors.New(corsConfig))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.Hub != nil {
		router.GET("/ws", func(c *gin.Context) {
			websocket.ServeWs(opts.Hub, c, opts.TicketSecret)
		})
	}

	public := router.Group("")
	public.Use(middleware.RateLimiter(opts.RateCounter, opts.RateLimit, time.Minute))

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin(svc.Auth, opts.Verifier))

	NewProductHandler(svc.Products).RegisterRoutes(public, admin)
	NewCategoryHandler(svc.Categories).RegisterRoutes(public, admin)
	NewUserHandler(svc.Users).RegisterRoutes(public, admin)
	NewAuthHandler(svc.Auth, opts.TicketSecret, opts.TicketTTL).RegisterRoutes(public, admin)
	NewAuditHandler(svc.Audit).RegisterRoutes(admin)

	return router
}
