package sale

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/types"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		status Status
		lines  int
		want   Capabilities
	}{
		{StatusDraft, 0, Capabilities{CanConfirm: false, CanCancel: true, CanEdit: true, CanAddLines: true}},
		{StatusDraft, 2, Capabilities{CanConfirm: true, CanCancel: true, CanEdit: true, CanAddLines: true}},
		{StatusConfirmed, 2, Capabilities{CanConfirm: false, CanCancel: true, CanEdit: false, CanAddLines: false}},
		{StatusCancelled, 2, Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d lines", tt.status, tt.lines), func(t *testing.T) {
			doc := &Sale{Status: tt.status, Lines: make([]Line, tt.lines)}
			assert.Equal(t, tt.want, doc.Capabilities())
		})
	}
}

func TestCreateInput_ValidateNumbersLines(t *testing.T) {
	negative := types.MustMoney("-1")
	in := CreateInput{
		WarehouseID: "W1",
		Lines: []LineInput{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "P2", Quantity: 1, SalePrice: &negative},
		},
	}

	err := in.Validate(context.Background())
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "salePrice", appErr.Details["field"])
	assert.Equal(t, 2, appErr.Details["lineNo"])
}

func TestCreateInput_AllowsEmptyDraft(t *testing.T) {
	in := CreateInput{WarehouseID: "W1"}
	assert.NoError(t, in.Validate(context.Background()))
}
