package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/core/entity"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		status Status
		want   Capabilities
	}{
		{StatusPending, Capabilities{CanStartTransit: true, CanComplete: false, CanCancel: true}},
		{StatusInTransit, Capabilities{CanStartTransit: false, CanComplete: true, CanCancel: true}},
		{StatusCompleted, Capabilities{}},
		{StatusCancelled, Capabilities{}},
		{Status("RECEIVED"), Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			doc := &Transfer{Status: tt.status}
			assert.Equal(t, tt.want, doc.Capabilities())
		})
	}
}

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusInTransit, StatusCompleted, StatusCancelled}
	legal := map[[2]Status]bool{
		{StatusPending, StatusInTransit}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusInTransit, StatusCompleted}: true,
		{StatusInTransit, StatusCancelled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[[2]Status{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInTransit.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStockRefs_BothWarehouses(t *testing.T) {
	doc := &Transfer{
		FromWarehouseID: "A",
		ToWarehouseID:   "B",
		Lines: []Line{
			{ProductRef: entity.ProductRef{ProductID: "P1"}, Quantity: 5},
			{ProductRef: entity.ProductRef{ProductID: "P1"}, Quantity: 1},
		},
	}

	assert.Equal(t, []entity.StockRef{
		{ProductID: "P1", WarehouseID: "A"},
		{ProductID: "P1", WarehouseID: "B"},
	}, doc.StockRefs())
}

func TestCreateInput_Validate(t *testing.T) {
	ctx := context.Background()
	line := []LineInput{{ProductID: "P1", Quantity: 5}}

	assert.NoError(t, (&CreateInput{FromWarehouseID: "A", ToWarehouseID: "B", Lines: line}).Validate(ctx))
	assert.Error(t, (&CreateInput{FromWarehouseID: "A", ToWarehouseID: "A", Lines: line}).Validate(ctx))
	assert.Error(t, (&CreateInput{FromWarehouseID: "A", ToWarehouseID: "B"}).Validate(ctx))
	assert.Error(t, (&CreateInput{ToWarehouseID: "B", Lines: line}).Validate(ctx))
	assert.Error(t, (&CreateInput{FromWarehouseID: "A", ToWarehouseID: "B",
		Lines: []LineInput{{ProductID: "P1", Quantity: -1}}}).Validate(ctx))
}
