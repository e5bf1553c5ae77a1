package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Aidin1998/rosterhub/api/handlers"
	"github.com/Aidin1998/rosterhub/api/responses"
	"github.com/Aidin1998/rosterhub/common/apiutil"
	_ "github.com/Aidin1998/rosterhub/docs"
	"github.com/Aidin1998/rosterhub/internal/config"
	"github.com/Aidin1998/rosterhub/internal/database"
	"github.com/Aidin1998/rosterhub/internal/players"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// Options tunes the HTTP surface
type Options struct {
	AllowedOrigins []string
}

// Server represents the API server
type Server struct {
	router     *gin.Engine
	logger     *zap.Logger
	db         *gorm.DB
	players    *handlers.PlayerHandler
	mu         sync.Mutex
	httpServer *http.Server
}

// NewServer creates a new API server backed by the player service
func NewServer(logger *zap.Logger, db *gorm.DB, svc *players.Service, opts Options) *Server {
	server := &Server{
		logger:  logger,
		db:      db,
		players: handlers.NewPlayerHandler(svc, logger),
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, _ any) {
		responses.InternalServerError(c)
	}))
	router.Use(otelgin.Middleware("rosterhub"))
	router.Use(apiutil.MetricsMiddleware())

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	server.router = router
	server.registerRoutes()
	return server
}

// Router returns the internal Gin engine for testing purposes
func (s *Server) Router() *gin.Engine {
	return s.router
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.players.Register(s.router)

	s.router.NoRoute(func(c *gin.Context) {
		responses.Fail(c, http.StatusNotFound, "Route not found")
	})
	s.router.NoMethod(func(c *gin.Context) {
		responses.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

// healthCheck reports whether the database answers a ping
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := database.Ping(ctx, s.db); err != nil {
		s.logger.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start listens on cfg.Addr() and blocks until the server stops. A graceful
// Shutdown makes Start return nil.
func (s *Server) Start(cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	s.logger.Info("Starting API server", zap.String("addr", cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	s.logger.Info("Shutting down API server")
	return srv.Shutdown(ctx)
}
