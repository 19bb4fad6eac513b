// Package http provides HTTP handlers and routing for the transform REST API.
//
// This package implements all HTTP endpoints using the Gin framework, including
// health checks, service listing, and tool execution.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/execute
//   - Metrics: /metrics (Prometheus exposition)
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes
//   - Error response formatting
//   - Request validation
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, logger, metrics)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
