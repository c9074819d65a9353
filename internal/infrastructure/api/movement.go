package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/documents/movement"
)

const movementsPath = "/stock-movements"

type movementWire struct {
	ID             string  `json:"id"`
	DocumentNumber *string `json:"documentNumber"`
	Number         *string `json:"number"`
	Type           *string `json:"type"`
	Status         string  `json:"status"`

	WarehouseID   *string  `json:"warehouseId"`
	WarehouseName *string  `json:"warehouseName"`
	Warehouse     *refWire `json:"warehouse"`

	Reference *string `json:"reference"`
	Note      *string `json:"note"`
	Notes     *string `json:"notes"`
	Reason    *string `json:"reason"`

	Lines       []movementLineWire `json:"lines"`
	TotalAmount *decimal.Decimal   `json:"totalAmount"`

	auditWire
	PostedAt *string `json:"postedAt"`
	VoidedAt *string `json:"voidedAt"`
}

type movementLineWire struct {
	ID          *string          `json:"id"`
	ProductID   *string          `json:"productId"`
	ProductName *string          `json:"productName"`
	ProductSKU  *string          `json:"productSku"`
	Product     *refWire         `json:"product"`
	WarehouseID *string          `json:"warehouseId"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unitCost"`
	LineTotal   *decimal.Decimal `json:"lineTotal"`
	Total       *decimal.Decimal `json:"total"`
}

func toMovement(w *movementWire) *movement.Movement {
	doc := &movement.Movement{
		Document: entity.Document{
			ID:             w.ID,
			DocumentNumber: text(w.DocumentNumber, w.Number),
			Audit:          w.auditWire.toDomain(),
		},
		Type:         movement.Type(text(w.Type)),
		Status:       movement.Status(w.Status),
		WarehouseRef: warehouseRef(w.WarehouseID, w.WarehouseName, w.Warehouse),
		Reference:    optText(w.Reference),
		Note:         optText(firstPresent(w.Note, w.Notes)),
		Reason:       optText(w.Reason),
		Lines:        make([]movement.Line, 0, len(w.Lines)),
		TotalAmount:  amount(w.TotalAmount),
		PostedAt:     optTimestamp(w.PostedAt),
		VoidedAt:     optTimestamp(w.VoidedAt),
	}

	for i := range w.Lines {
		l := &w.Lines[i]
		doc.Lines = append(doc.Lines, movement.Line{
			ID:          text(l.ID),
			ProductRef:  productRef(l.ProductID, l.ProductName, l.ProductSKU, l.Product),
			WarehouseID: text(l.WarehouseID, &doc.WarehouseID),
			Quantity:    quantity(l.Quantity),
			UnitCost:    amount(l.UnitCost),
			LineTotal:   amount(l.LineTotal, l.Total),
		})
	}

	return doc
}

func firstPresent(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// MovementRepository implements movement.Repository.
type MovementRepository struct {
	client *Client
}

var _ movement.Repository = (*MovementRepository)(nil)

// NewMovementRepository creates a movement adapter.
func NewMovementRepository(c *Client) *MovementRepository {
	return &MovementRepository{client: c}
}

func (r *MovementRepository) FindAll(ctx context.Context, filter movement.ListFilter) (domain.ListResult[*movement.Movement], error) {
	return getList(ctx, r.client, movementsPath, filter, toMovement)
}

func (r *MovementRepository) FindByID(ctx context.Context, docID id.ID) (*movement.Movement, error) {
	return findOne(ctx, r.client, resourcePath(movementsPath, docID), toMovement)
}

func (r *MovementRepository) Create(ctx context.Context, in movement.CreateInput) (*movement.Movement, error) {
	return send(ctx, r.client, create(ctx, movementsPath, in), toMovement)
}

func (r *MovementRepository) Update(ctx context.Context, docID id.ID, in movement.UpdateInput) (*movement.Movement, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPatch,
		Path:   resourcePath(movementsPath, docID),
		Body:   in,
	}, toMovement)
}

func (r *MovementRepository) Post(ctx context.Context, docID id.ID) (*movement.Movement, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(movementsPath, docID, "post"),
	}, toMovement)
}

func (r *MovementRepository) Void(ctx context.Context, docID id.ID) (*movement.Movement, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(movementsPath, docID, "void"),
	}, toMovement)
}
