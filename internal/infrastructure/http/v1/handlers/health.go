// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/core/cache"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	cache   *cache.Cache
	version string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(c *cache.Cache, version string) *HealthHandler {
	return &HealthHandler{cache: c, version: version}
}

// Live reports whether the process is alive.
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "backoffice",
		"version": h.version,
		"query_cache": map[string]any{
			"entries": h.cache.Len(),
		},
	})
}
