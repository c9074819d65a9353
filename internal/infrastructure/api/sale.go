package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/documents/sale"
)

const salesPath = "/sales"

type saleWire struct {
	ID             string  `json:"id"`
	DocumentNumber *string `json:"documentNumber"`
	SaleNumber     *string `json:"saleNumber"`
	Status         string  `json:"status"`

	WarehouseID   *string  `json:"warehouseId"`
	WarehouseName *string  `json:"warehouseName"`
	Warehouse     *refWire `json:"warehouse"`

	CustomerID   *string  `json:"customerId"`
	CustomerName *string  `json:"customerName"`
	Customer     *refWire `json:"customer"`

	Reference *string `json:"reference"`
	Note      *string `json:"note"`
	Notes     *string `json:"notes"`

	Lines       []saleLineWire   `json:"lines"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	Total       *decimal.Decimal `json:"total"`

	auditWire
	ConfirmedAt *string `json:"confirmedAt"`
	CancelledAt *string `json:"cancelledAt"`
}

type saleLineWire struct {
	ID          *string          `json:"id"`
	ProductID   *string          `json:"productId"`
	ProductName *string          `json:"productName"`
	ProductSKU  *string          `json:"productSku"`
	Product     *refWire         `json:"product"`
	Quantity    *decimal.Decimal `json:"quantity"`
	SalePrice   *decimal.Decimal `json:"salePrice"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Discount    *decimal.Decimal `json:"discount"`
	LineTotal   *decimal.Decimal `json:"lineTotal"`
	Subtotal    *decimal.Decimal `json:"subtotal"`
}

func toSale(w *saleWire) *sale.Sale {
	doc := &sale.Sale{
		Document: entity.Document{
			ID:             w.ID,
			DocumentNumber: text(w.DocumentNumber, w.SaleNumber),
			Audit:          w.auditWire.toDomain(),
		},
		Status:       sale.Status(w.Status),
		WarehouseRef: warehouseRef(w.WarehouseID, w.WarehouseName, w.Warehouse),
		CustomerID:   optID(w.CustomerID, w.Customer.id()),
		CustomerName: text(w.CustomerName, w.Customer.name()),
		Reference:    optText(w.Reference),
		Note:         optText(firstPresent(w.Note, w.Notes)),
		Lines:        make([]sale.Line, 0, len(w.Lines)),
		TotalAmount:  amount(w.TotalAmount, w.Total),
		ConfirmedAt:  optTimestamp(w.ConfirmedAt),
		CancelledAt:  optTimestamp(w.CancelledAt),
	}

	for i := range w.Lines {
		l := &w.Lines[i]
		doc.Lines = append(doc.Lines, sale.Line{
			ID:         text(l.ID),
			ProductRef: productRef(l.ProductID, l.ProductName, l.ProductSKU, l.Product),
			Quantity:   quantity(l.Quantity),
			SalePrice:  amount(l.SalePrice, l.UnitPrice),
			Discount:   amount(l.Discount),
			LineTotal:  amount(l.LineTotal, l.Subtotal),
		})
	}

	return doc
}

// SaleRepository implements sale.Repository.
type SaleRepository struct {
	client *Client
}

var _ sale.Repository = (*SaleRepository)(nil)

// NewSaleRepository creates a sale adapter.
func NewSaleRepository(c *Client) *SaleRepository {
	return &SaleRepository{client: c}
}

func (r *SaleRepository) FindAll(ctx context.Context, filter sale.ListFilter) (domain.ListResult[*sale.Sale], error) {
	return getList(ctx, r.client, salesPath, filter, toSale)
}

func (r *SaleRepository) FindByID(ctx context.Context, docID id.ID) (*sale.Sale, error) {
	return findOne(ctx, r.client, resourcePath(salesPath, docID), toSale)
}

func (r *SaleRepository) Create(ctx context.Context, in sale.CreateInput) (*sale.Sale, error) {
	return send(ctx, r.client, create(ctx, salesPath, in), toSale)
}

func (r *SaleRepository) Update(ctx context.Context, docID id.ID, in sale.UpdateInput) (*sale.Sale, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPatch,
		Path:   resourcePath(salesPath, docID),
		Body:   in,
	}, toSale)
}

func (r *SaleRepository) Confirm(ctx context.Context, docID id.ID) (*sale.Sale, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(salesPath, docID, "confirm"),
	}, toSale)
}

func (r *SaleRepository) Cancel(ctx context.Context, docID id.ID) (*sale.Sale, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(salesPath, docID, "cancel"),
	}, toSale)
}

func (r *SaleRepository) AddLine(ctx context.Context, docID id.ID, line sale.LineInput) (*sale.Sale, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPost,
		Path:   resourcePath(salesPath, docID, "lines"),
		Body:   line,
	}, toSale)
}

func (r *SaleRepository) RemoveLine(ctx context.Context, docID, lineID id.ID) (*sale.Sale, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodDelete,
		Path:   resourcePath(salesPath, docID, "lines", lineID),
	}, toSale)
}
