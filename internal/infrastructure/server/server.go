package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/PowerTransform/internal/api/http"
	"github.com/GriffinCanCode/PowerTransform/internal/api/middleware"
	"github.com/GriffinCanCode/PowerTransform/internal/domain/service"
	"github.com/GriffinCanCode/PowerTransform/internal/infrastructure/config"
	"github.com/GriffinCanCode/PowerTransform/internal/infrastructure/logging"
	"github.com/GriffinCanCode/PowerTransform/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/PowerTransform/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing transform server",
		zap.String("port", cfg.Server.Port),
		zap.Int("max_batch", cfg.Transform.MaxBatch),
	)

	// Metrics collectors register with the global Prometheus registry,
	// so create them once per process.
	metrics := monitoring.NewMetrics()
	logger.Info("Performance monitoring initialized")

	tracer := tracing.New("transform", logger.Logger)

	// Initialize service registry
	registry := service.NewRegistry()
	if err := registry.Register(transform.NewProvider(cfg.Transform.MaxBatch)); err != nil {
		return nil, fmt.Errorf("failed to register transform provider: %w", err)
	}
	logger.Info("Registered transform provider")

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlerMetrics := http.NewHandlerMetrics(metrics)
	handlers := http.NewHandlers(registry, logger, handlerMetrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	// Sync logger before exit
	s.logger.Sync()

	return nil
}
