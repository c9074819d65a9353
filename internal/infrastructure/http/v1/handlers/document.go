package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// DocumentService defines what BaseDocumentHandler needs from a document service.
// E is the entity, F the list filter and C the create input.
type DocumentService[E any, F any, C any] interface {
	List(ctx context.Context, filter F) (domain.ListResult[*E], error)
	Get(ctx context.Context, docID id.ID) (*E, error)
	Create(ctx context.Context, in C) (*E, error)
}

// BaseDocumentHandler provides generic HTTP handlers for document entities.
// Every response goes through mapToDTO so documents carry their capabilities.
type BaseDocumentHandler[E any, F any, C any, R any] struct {
	*BaseHandler
	service    DocumentService[E, F, C]
	entityName string
	mapToDTO   func(*E) R
}

// BaseDocumentHandlerConfig configures the document handler.
type BaseDocumentHandlerConfig[E any, F any, C any, R any] struct {
	Service    DocumentService[E, F, C]
	EntityName string
	MapToDTO   func(*E) R
}

// NewBaseDocumentHandler creates a new base document handler.
func NewBaseDocumentHandler[E any, F any, C any, R any](
	base *BaseHandler,
	cfg BaseDocumentHandlerConfig[E, F, C, R],
) *BaseDocumentHandler[E, F, C, R] {
	return &BaseDocumentHandler[E, F, C, R]{
		BaseHandler: base,
		service:     cfg.Service,
		entityName:  cfg.EntityName,
		mapToDTO:    cfg.MapToDTO,
	}
}

// List handles GET /{entity}
func (h *BaseDocumentHandler[E, F, C, R]) List(c *gin.Context) {
	var filter F
	if !h.BindQuery(c, &filter) {
		return
	}

	res, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.MapList(res, h.mapToDTO))
}

// Get handles GET /{entity}/:id
func (h *BaseDocumentHandler[E, F, C, R]) Get(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.Get(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if doc == nil {
		h.Error(c, apperror.NewNotFound(h.entityName, docID))
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// Create handles POST /{entity}
func (h *BaseDocumentHandler[E, F, C, R]) Create(c *gin.Context) {
	var in C
	if !h.BindJSON(c, &in) {
		return
	}

	doc, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.mapToDTO(doc))
}

// Transition runs a body-less lifecycle call such as post or confirm
// on the document named by the :id parameter.
func (h *BaseDocumentHandler[E, F, C, R]) Transition(fn func(ctx context.Context, docID id.ID) (*E, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		docID, ok := h.PathID(c, "id")
		if !ok {
			return
		}

		doc, err := fn(c.Request.Context(), docID)
		h.respond(c, doc, err)
	}
}

func (h *BaseDocumentHandler[E, F, C, R]) respond(c *gin.Context, doc *E, err error) {
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(doc))
}
