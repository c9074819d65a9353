// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// DocumentRouteHandler defines the interface for document handlers.
// All document handlers must implement these methods.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
}

// DocumentUpdateHandler is an optional interface for documents with editable metadata.
type DocumentUpdateHandler interface {
	Update(c *gin.Context)
}

// RegisterDocumentRoutes registers the standard read and create routes for a document.
// If the handler also implements DocumentUpdateHandler, PATCH /:id is registered too.
// Lifecycle routes differ per document and are registered by the caller.
//
// Usage:
//
//	handler := handlers.NewMovementHandler(baseHandler, cfg.Movements)
//	group := protected.Group("/movements")
//	RegisterDocumentRoutes(group, handler)
//	group.POST("/:id/post", handler.Post)
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)

	if updater, ok := handler.(DocumentUpdateHandler); ok {
		group.PATCH("/:id", updater.Update)
	}
}
