package payment

import (
	"context"
	"fmt"
	"sync"

	"library-desk/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulated gateway messages
const (
	MsgSimulatedCharge     = "Payment processed (simulated)."
	MsgUnknownTransaction  = "Unknown transaction."
	MsgRefundExceedsCharge = "Refund exceeds the remaining charged amount."
)

// SimulatedGateway settles payments in memory.
// Refunds are only accepted against charges it issued.
type SimulatedGateway struct {
	mu      sync.Mutex
	charges map[string]decimal.Decimal
}

// NewSimulatedGateway creates an empty simulated gateway
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{charges: make(map[string]decimal.Decimal)}
}

// Charge always succeeds and issues a new transaction ID
func (g *SimulatedGateway) Charge(_ context.Context, _ string, amount decimal.Decimal) (domain.GatewayResponse, error) {
	txID := "txn_" + uuid.NewString()

	g.mu.Lock()
	g.charges[txID] = amount
	g.mu.Unlock()

	return domain.StructuredResponse{
		Success:       true,
		TransactionID: domain.StringPtr(txID),
		Message:       domain.StringPtr(MsgSimulatedCharge),
	}, nil
}

// Refund gives back up to the amount still held on the transaction
func (g *SimulatedGateway) Refund(_ context.Context, transactionID string, amount decimal.Decimal) (domain.GatewayResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	held, ok := g.charges[transactionID]
	if !ok {
		return domain.StructuredResponse{Message: domain.StringPtr(MsgUnknownTransaction)}, nil
	}
	if amount.GreaterThan(held) {
		return domain.StructuredResponse{Message: domain.StringPtr(MsgRefundExceedsCharge)}, nil
	}

	g.charges[transactionID] = held.Sub(amount)
	return domain.StructuredResponse{
		Success:       true,
		TransactionID: domain.StringPtr(transactionID),
		Message:       domain.StringPtr(fmt.Sprintf("Refund of $%s processed (simulated).", amount.StringFixed(2))),
	}, nil
}
