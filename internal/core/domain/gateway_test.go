package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tx := StringPtr("txn_1")
	empty := StringPtr("")

	tests := []struct {
		name    string
		resp    GatewayResponse
		success bool
		txID    *string
		message string
	}{
		{name: "bare true", resp: BareResponse(true), success: true, message: GatewayMessageOK},
		{name: "bare false", resp: BareResponse(false), success: false, message: GatewayMessageDeclined},
		{name: "nil", resp: nil, success: false, message: GatewayMessageDeclined},
		{name: "nil pointer", resp: (*StructuredResponse)(nil), success: false, message: GatewayMessageDeclined},
		{
			name:    "structured with details",
			resp:    StructuredResponse{Success: true, TransactionID: tx, Message: StringPtr("Approved")},
			success: true,
			txID:    tx,
			message: "Approved",
		},
		{
			name:    "structured defaults",
			resp:    &StructuredResponse{Success: true},
			success: true,
			message: GatewayMessageOK,
		},
		{
			name:    "declined keeps transaction",
			resp:    StructuredResponse{TransactionID: tx},
			success: false,
			txID:    tx,
			message: GatewayMessageDeclined,
		},
		{
			name:    "empty message is kept",
			resp:    StructuredResponse{Success: true, Message: empty},
			success: true,
			message: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.resp)
			assert.Equal(t, tt.success, got.Success)
			assert.Equal(t, tt.txID, got.TransactionID)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestLoanIsActive(t *testing.T) {
	loan := &Loan{}
	assert.True(t, loan.IsActive())

	returned := loan.BorrowDate
	loan.ReturnDate = &returned
	assert.False(t, loan.IsActive())
}
