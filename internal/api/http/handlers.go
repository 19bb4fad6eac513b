package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/PowerTransform/internal/domain/service"
	"github.com/GriffinCanCode/PowerTransform/internal/infrastructure/logging"
	"github.com/GriffinCanCode/PowerTransform/internal/shared/id"
	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
)

// maxToolIDLength bounds tool identifiers accepted over the wire.
const maxToolIDLength = 256

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	logger   *logging.Logger
	metrics  *HandlerMetrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, logger *logging.Logger, metrics *HandlerMetrics) *Handlers {
	return &Handlers{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Power Transform Service (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.ToolID) > maxToolIDLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tool_id exceeds maximum length"})
		return
	}

	requestID := ""
	if req.RequestID != nil {
		requestID = *req.RequestID
	} else {
		requestID = id.NewRequestID().String()
	}

	appCtx := &types.Context{RequestID: &requestID}
	log := h.logger.WithRequest(requestID)

	done := h.metrics.TrackServiceOperation(req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		done("error")
		h.metrics.TrackServiceError(req.ToolID, "registry")
		log.Error("tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}
	done(status)
	log.Debug("tool executed",
		zap.String("tool_id", req.ToolID),
		zap.Bool("success", result.Success),
	)

	c.JSON(http.StatusOK, result)
}
