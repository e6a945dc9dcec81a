package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"library-desk/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Settlement statuses
const (
	PayStatusInvalidPatron    = "Invalid patron ID"
	PayStatusInvalidBook      = "Invalid book ID"
	PayStatusBookNotFound     = "Book not found"
	PayStatusLookupFailed     = "Book lookup failed"
	PayStatusNoFeesDue        = "No late fees due"
	RefundStatusInvalidTxID   = "Invalid transaction ID"
	RefundStatusInvalidAmount = "Invalid refund amount"
	RefundStatusExceedsMax    = "Refund amount exceeds maximum allowed"
)

// PaymentService settles late fees through a payment gateway
type PaymentService struct {
	bookStore  BookStore
	feeService *FeeService
	now        Clock
}

// NewPaymentService creates a new payment service
func NewPaymentService(bookStore BookStore, feeService *FeeService) *PaymentService {
	return &PaymentService{
		bookStore:  bookStore,
		feeService: feeService,
		now:        time.Now,
	}
}

// PayFees charges the current late fee of the patron's loan.
// The gateway is only called when there is a positive fee, and nothing it
// returns or raises escapes as an error.
func (s *PaymentService) PayFees(ctx context.Context, patronID string, bookID int, gateway PaymentGateway) domain.PaymentResult {
	if !IsValidPatronID(patronID) {
		return failedPayment(PayStatusInvalidPatron, nil)
	}
	if !IsValidBookID(bookID) {
		return failedPayment(PayStatusInvalidBook, nil)
	}
	if _, err := s.bookStore.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return failedPayment(PayStatusBookNotFound, nil)
		}
		log.Printf("❌ Book lookup failed for %d: %v", bookID, err)
		return failedPayment(PayStatusLookupFailed, nil)
	}

	fee := s.feeService.CalculateFee(ctx, patronID, bookID, s.now())
	amount := fee.FeeAmount
	if !amount.IsPositive() {
		return domain.PaymentResult{
			Success:       true,
			Status:        PayStatusNoFeesDue,
			AmountCharged: decimal.Zero,
		}
	}

	resp, err := callGateway(func() (domain.GatewayResponse, error) {
		if gateway == nil {
			return nil, domain.ErrGatewayUnavailable
		}
		return gateway.Charge(ctx, patronID, amount)
	})
	if err != nil {
		log.Printf("❌ Charge of %s for patron %s failed: %v", amount.StringFixed(2), patronID, err)
		return failedPayment(fmt.Sprintf("Payment error: %v", err), nil)
	}

	result := domain.Normalize(resp)
	if !result.Success {
		return failedPayment(result.Message, result.TransactionID)
	}

	log.Printf("💳 Charged %s to patron %s for book %d", amount.StringFixed(2), patronID, bookID)
	return domain.PaymentResult{
		Success:       true,
		TransactionID: result.TransactionID,
		Status:        result.Message,
		AmountCharged: amount,
	}
}

// Refund returns part or all of a previous payment.
// Refunds are never larger than the maximum possible fee.
func (s *PaymentService) Refund(ctx context.Context, transactionID string, amount decimal.Decimal, gateway PaymentGateway) domain.RefundResult {
	if strings.TrimSpace(transactionID) == "" {
		return domain.RefundResult{Status: RefundStatusInvalidTxID}
	}
	if !amount.IsPositive() {
		return domain.RefundResult{Status: RefundStatusInvalidAmount}
	}
	if amount.GreaterThan(MaxFee) {
		return domain.RefundResult{Status: RefundStatusExceedsMax}
	}

	resp, err := callGateway(func() (domain.GatewayResponse, error) {
		if gateway == nil {
			return nil, domain.ErrGatewayUnavailable
		}
		return gateway.Refund(ctx, transactionID, amount)
	})
	if err != nil {
		log.Printf("❌ Refund of %s on %s failed: %v", amount.StringFixed(2), transactionID, err)
		return domain.RefundResult{Status: fmt.Sprintf("Refund error: %v", err)}
	}

	result := domain.Normalize(resp)
	return domain.RefundResult{
		Success: result.Success,
		Status:  result.Message,
	}
}

// callGateway runs a gateway call and turns a panic into an error
func callGateway(call func() (domain.GatewayResponse, error)) (resp domain.GatewayResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("%w: %v", domain.ErrGatewayPanic, r)
		}
	}()
	return call()
}

func failedPayment(status string, transactionID *string) domain.PaymentResult {
	return domain.PaymentResult{
		Success:       false,
		TransactionID: transactionID,
		Status:        status,
		AmountCharged: decimal.Zero,
	}
}
