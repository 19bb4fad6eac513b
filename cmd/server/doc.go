// Package main is the entry point for the power transform service.
//
// This application serves the Yeo-Johnson transform family over a REST API:
// forward and inverse transforms, derivatives, guarded log/power primitives,
// and distribution diagnostics.
//
// The server provides:
//   - REST API for tool execution
//   - Service provider registry
//   - Prometheus metrics
//   - Rate limiting and security
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
