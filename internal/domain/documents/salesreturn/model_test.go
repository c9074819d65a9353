package salesreturn

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		status Status
		lines  int
		want   Capabilities
	}{
		{StatusDraft, 0, Capabilities{CanConfirm: false, CanCancel: true, CanEdit: true, CanAddLines: true}},
		{StatusDraft, 1, Capabilities{CanConfirm: true, CanCancel: true, CanEdit: true, CanAddLines: true}},
		{StatusConfirmed, 1, Capabilities{CanConfirm: false, CanCancel: true}},
		{StatusCancelled, 1, Capabilities{}},
	}

	for _, typ := range []Type{TypeCustomer, TypeSupplier} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s/%d", typ, tt.status, tt.lines), func(t *testing.T) {
				doc := &Return{Type: typ, Status: tt.status, Lines: make([]Line, tt.lines)}
				assert.Equal(t, tt.want, doc.Capabilities())
			})
		}
	}
}

func TestLine_UnitAmount(t *testing.T) {
	line := Line{
		OriginalPrice: types.MustMoney("12.50"),
		OriginalCost:  types.MustMoney("7.10"),
	}

	assert.True(t, line.UnitAmount(TypeCustomer).Equal(types.MustMoney("12.5")))
	assert.True(t, line.UnitAmount(TypeSupplier).Equal(types.MustMoney("7.1")))
}

func TestCreateInput_Validate(t *testing.T) {
	ctx := context.Background()
	supplier := id.ID("S1")
	lines := []LineInput{{ProductID: "P1", Quantity: 1}}

	assert.NoError(t, (&CreateInput{Type: TypeCustomer, WarehouseID: "W1", Lines: lines}).Validate(ctx))
	assert.NoError(t, (&CreateInput{Type: TypeSupplier, WarehouseID: "W1", SupplierID: &supplier}).Validate(ctx))
	assert.Error(t, (&CreateInput{Type: TypeSupplier, WarehouseID: "W1"}).Validate(ctx))
	assert.Error(t, (&CreateInput{Type: "RETURN_OTHER", WarehouseID: "W1"}).Validate(ctx))
	assert.Error(t, (&CreateInput{Type: TypeCustomer, WarehouseID: "W1",
		Lines: []LineInput{{ProductID: "P1"}}}).Validate(ctx))
}
