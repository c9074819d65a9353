package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/documents/salesreturn"
)

const returnsPath = "/returns"

type returnWire struct {
	ID             string  `json:"id"`
	DocumentNumber *string `json:"documentNumber"`
	ReturnNumber   *string `json:"returnNumber"`
	Type           *string `json:"type"`
	Status         string  `json:"status"`

	WarehouseID   *string  `json:"warehouseId"`
	WarehouseName *string  `json:"warehouseName"`
	Warehouse     *refWire `json:"warehouse"`

	SaleID       *string  `json:"saleId"`
	SupplierID   *string  `json:"supplierId"`
	SupplierName *string  `json:"supplierName"`
	Supplier     *refWire `json:"supplier"`

	Reason *string `json:"reason"`
	Note   *string `json:"note"`
	Notes  *string `json:"notes"`

	Lines       []returnLineWire `json:"lines"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`

	auditWire
	ConfirmedAt *string `json:"confirmedAt"`
	CancelledAt *string `json:"cancelledAt"`
}

type returnLineWire struct {
	ID            *string          `json:"id"`
	ProductID     *string          `json:"productId"`
	ProductName   *string          `json:"productName"`
	ProductSKU    *string          `json:"productSku"`
	Product       *refWire         `json:"product"`
	Quantity      *decimal.Decimal `json:"quantity"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	OriginalCost  *decimal.Decimal `json:"originalCost"`
	UnitCost      *decimal.Decimal `json:"unitCost"`
	LineTotal     *decimal.Decimal `json:"lineTotal"`
}

func toReturn(w *returnWire) *salesreturn.Return {
	doc := &salesreturn.Return{
		Document: entity.Document{
			ID:             w.ID,
			DocumentNumber: text(w.DocumentNumber, w.ReturnNumber),
			Audit:          w.auditWire.toDomain(),
		},
		Type:         salesreturn.Type(text(w.Type)),
		Status:       salesreturn.Status(w.Status),
		WarehouseRef: warehouseRef(w.WarehouseID, w.WarehouseName, w.Warehouse),
		SaleID:       optID(w.SaleID),
		SupplierID:   optID(w.SupplierID, w.Supplier.id()),
		SupplierName: text(w.SupplierName, w.Supplier.name()),
		Reason:       optText(w.Reason),
		Note:         optText(firstPresent(w.Note, w.Notes)),
		Lines:        make([]salesreturn.Line, 0, len(w.Lines)),
		TotalAmount:  amount(w.TotalAmount),
		ConfirmedAt:  optTimestamp(w.ConfirmedAt),
		CancelledAt:  optTimestamp(w.CancelledAt),
	}

	for i := range w.Lines {
		l := &w.Lines[i]
		doc.Lines = append(doc.Lines, salesreturn.Line{
			ID:            text(l.ID),
			ProductRef:    productRef(l.ProductID, l.ProductName, l.ProductSKU, l.Product),
			Quantity:      quantity(l.Quantity),
			OriginalPrice: amount(l.OriginalPrice),
			OriginalCost:  amount(l.OriginalCost, l.UnitCost),
			LineTotal:     amount(l.LineTotal),
		})
	}

	return doc
}

// ReturnRepository implements salesreturn.Repository.
type ReturnRepository struct {
	client *Client
}

var _ salesreturn.Repository = (*ReturnRepository)(nil)

// NewReturnRepository creates a return adapter.
func NewReturnRepository(c *Client) *ReturnRepository {
	return &ReturnRepository{client: c}
}

func (r *ReturnRepository) FindAll(ctx context.Context, filter salesreturn.ListFilter) (domain.ListResult[*salesreturn.Return], error) {
	return getList(ctx, r.client, returnsPath, filter, toReturn)
}

func (r *ReturnRepository) FindByID(ctx context.Context, docID id.ID) (*salesreturn.Return, error) {
	return findOne(ctx, r.client, resourcePath(returnsPath, docID), toReturn)
}

func (r *ReturnRepository) Create(ctx context.Context, in salesreturn.CreateInput) (*salesreturn.Return, error) {
	return send(ctx, r.client, create(ctx, returnsPath, in), toReturn)
}

func (r *ReturnRepository) Update(ctx context.Context, docID id.ID, in salesreturn.UpdateInput) (*salesreturn.Return, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPatch,
		Path:   resourcePath(returnsPath, docID),
		Body:   in,
	}, toReturn)
}

func (r *ReturnRepository) Confirm(ctx context.Context, docID id.ID) (*salesreturn.Return, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(returnsPath, docID, "confirm"),
	}, toReturn)
}

func (r *ReturnRepository) Cancel(ctx context.Context, docID id.ID) (*salesreturn.Return, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(returnsPath, docID, "cancel"),
	}, toReturn)
}

func (r *ReturnRepository) AddLine(ctx context.Context, docID id.ID, line salesreturn.LineInput) (*salesreturn.Return, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(returnsPath, docID, "lines"),
		Body:   line,
	}, toReturn)
}

func (r *ReturnRepository) RemoveLine(ctx context.Context, docID, lineID id.ID) (*salesreturn.Return, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodDelete,
		Path:   resourcePath(returnsPath, docID, "lines", lineID),
	}, toReturn)
}
