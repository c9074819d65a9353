package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/documents/transfer"
)

const transfersPath = "/transfers"

type transferWire struct {
	ID             string  `json:"id"`
	DocumentNumber *string `json:"documentNumber"`
	TransferNumber *string `json:"transferNumber"`
	Status         string  `json:"status"`

	FromWarehouseID   *string  `json:"fromWarehouseId"`
	FromWarehouseName *string  `json:"fromWarehouseName"`
	FromWarehouse     *refWire `json:"fromWarehouse"`
	ToWarehouseID     *string  `json:"toWarehouseId"`
	ToWarehouseName   *string  `json:"toWarehouseName"`
	ToWarehouse       *refWire `json:"toWarehouse"`

	Note  *string `json:"note"`
	Notes *string `json:"notes"`

	Lines       []transferLineWire `json:"lines"`
	TotalAmount *decimal.Decimal   `json:"totalAmount"`

	auditWire
	ShippedAt   *string `json:"shippedAt"`
	CompletedAt *string `json:"completedAt"`
	CancelledAt *string `json:"cancelledAt"`
}

type transferLineWire struct {
	ID          *string          `json:"id"`
	ProductID   *string          `json:"productId"`
	ProductName *string          `json:"productName"`
	ProductSKU  *string          `json:"productSku"`
	Product     *refWire         `json:"product"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unitCost"`
	LineTotal   *decimal.Decimal `json:"lineTotal"`
}

func toTransfer(w *transferWire) *transfer.Transfer {
	from := warehouseRef(w.FromWarehouseID, w.FromWarehouseName, w.FromWarehouse)
	to := warehouseRef(w.ToWarehouseID, w.ToWarehouseName, w.ToWarehouse)

	doc := &transfer.Transfer{
		Document: entity.Document{
			ID:             w.ID,
			DocumentNumber: text(w.DocumentNumber, w.TransferNumber),
			Audit:          w.auditWire.toDomain(),
		},
		Status:            transfer.Status(w.Status),
		FromWarehouseID:   from.WarehouseID,
		FromWarehouseName: from.WarehouseName,
		ToWarehouseID:     to.WarehouseID,
		ToWarehouseName:   to.WarehouseName,
		Note:              optText(firstPresent(w.Note, w.Notes)),
		Lines:             make([]transfer.Line, 0, len(w.Lines)),
		TotalAmount:       amount(w.TotalAmount),
		ShippedAt:         optTimestamp(w.ShippedAt),
		CompletedAt:       optTimestamp(w.CompletedAt),
		CancelledAt:       optTimestamp(w.CancelledAt),
	}

	for i := range w.Lines {
		l := &w.Lines[i]
		doc.Lines = append(doc.Lines, transfer.Line{
			ID:         text(l.ID),
			ProductRef: productRef(l.ProductID, l.ProductName, l.ProductSKU, l.Product),
			Quantity:   quantity(l.Quantity),
			UnitCost:   amount(l.UnitCost),
			LineTotal:  amount(l.LineTotal),
		})
	}

	return doc
}

// TransferRepository implements transfer.Repository.
type TransferRepository struct {
	client *Client
}

var _ transfer.Repository = (*TransferRepository)(nil)

// NewTransferRepository creates a transfer adapter.
func NewTransferRepository(c *Client) *TransferRepository {
	return &TransferRepository{client: c}
}

func (r *TransferRepository) FindAll(ctx context.Context, filter transfer.ListFilter) (domain.ListResult[*transfer.Transfer], error) {
	return getList(ctx, r.client, transfersPath, filter, toTransfer)
}

func (r *TransferRepository) FindByID(ctx context.Context, docID id.ID) (*transfer.Transfer, error) {
	return findOne(ctx, r.client, resourcePath(transfersPath, docID), toTransfer)
}

func (r *TransferRepository) Create(ctx context.Context, in transfer.CreateInput) (*transfer.Transfer, error) {
	return send(ctx, r.client, create(ctx, transfersPath, in), toTransfer)
}

func (r *TransferRepository) UpdateStatus(ctx context.Context, docID id.ID, status transfer.Status) (*transfer.Transfer, error) {
	return send(ctx, r.client, Request{
		Method: http.MethodPatch,
		Path:   resourcePath(transfersPath, docID, "status"),
		Body:   map[string]transfer.Status{"status": status},
	}, toTransfer)
}
