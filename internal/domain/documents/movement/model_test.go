package movement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/entity"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		status Status
		want   Capabilities
	}{
		{StatusDraft, Capabilities{CanPost: true, CanVoid: false, CanEdit: true}},
		{StatusPosted, Capabilities{CanPost: false, CanVoid: true, CanEdit: false}},
		{StatusVoid, Capabilities{CanPost: false, CanVoid: false, CanEdit: false}},
		{Status("ARCHIVED"), Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			m := &Movement{Status: tt.status}
			assert.Equal(t, tt.want, m.Capabilities())
		})
	}
}

func TestStockRefs(t *testing.T) {
	m := &Movement{
		WarehouseRef: entity.WarehouseRef{WarehouseID: "W1"},
		Lines: []Line{
			{ProductRef: entity.ProductRef{ProductID: "P1"}},
			{ProductRef: entity.ProductRef{ProductID: "P2"}, WarehouseID: "W2"},
			{ProductRef: entity.ProductRef{ProductID: "P1"}, WarehouseID: "W1"},
			{ProductRef: entity.ProductRef{ProductID: ""}},
		},
	}

	assert.Equal(t, []entity.StockRef{
		{ProductID: "P1", WarehouseID: "W1"},
		{ProductID: "P2", WarehouseID: "W2"},
	}, m.StockRefs())
}

func TestCreateInput_Validate(t *testing.T) {
	valid := CreateInput{
		Type:        TypeIn,
		WarehouseID: "W1",
		Lines:       []LineInput{{ProductID: "P1", Quantity: 3}},
	}
	require.NoError(t, valid.Validate(context.Background()))

	tests := []struct {
		name   string
		mutate func(in *CreateInput)
		field  string
	}{
		{"unknown type", func(in *CreateInput) { in.Type = "SIDEWAYS" }, "type"},
		{"missing warehouse", func(in *CreateInput) { in.WarehouseID = "" }, "warehouseId"},
		{"missing product", func(in *CreateInput) { in.Lines[0].ProductID = "" }, "lines"},
		{"zero quantity", func(in *CreateInput) { in.Lines[0].Quantity = 0 }, "lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.Lines = append([]LineInput(nil), valid.Lines...)
			tt.mutate(&in)

			err := in.Validate(context.Background())
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestUpdateInput_Validate(t *testing.T) {
	note := "recount"
	assert.NoError(t, (&UpdateInput{Note: &note}).Validate(context.Background()))
	assert.Error(t, (&UpdateInput{}).Validate(context.Background()))
}
