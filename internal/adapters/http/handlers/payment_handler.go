package handlers

import (
	"strings"

	"library-desk/internal/core/services"
	"library-desk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles fee payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
	gateway        services.PaymentGateway
}

// NewPaymentHandler creates a new payment handler bound to the default gateway
func NewPaymentHandler(paymentService *services.PaymentService, gateway services.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		gateway:        gateway,
	}
}

// PayRequest identifies the loan whose fee is paid
type PayRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int    `json:"book_id"`
}

// RefundRequest represents refund request
type RefundRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// PayFees charges the current late fee of a loan
// @Summary Pay late fee
// @Description Charge the late fee of a patron's open loan through the payment gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body PayRequest true "Patron and book"
// @Success 200 {object} response.Response{data=domain.PaymentResult}
// @Failure 400 {object} response.Response{data=domain.PaymentResult}
// @Failure 402 {object} response.Response{data=domain.PaymentResult}
// @Failure 404 {object} response.Response{data=domain.PaymentResult}
// @Failure 502 {object} response.Response{data=domain.PaymentResult}
// @Router /payments [post]
func (h *PaymentHandler) PayFees(c *fiber.Ctx) error {
	var req PayRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result := h.paymentService.PayFees(c.Context(), req.PatronID, req.BookID, h.gateway)
	if !result.Success {
		return response.Fail(c, payStatusCode(result.Status), result.Status, result)
	}

	return response.Success(c, result.Status, result)
}

// Refund returns money on a previous payment
// @Summary Refund payment
// @Description Refund part or all of a late fee payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Param body body RefundRequest true "Refund amount"
// @Success 200 {object} response.Response{data=domain.RefundResult}
// @Failure 400 {object} response.Response{data=domain.RefundResult}
// @Failure 402 {object} response.Response{data=domain.RefundResult}
// @Failure 502 {object} response.Response{data=domain.RefundResult}
// @Router /payments/{transactionId}/refund [post]
func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	var req RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result := h.paymentService.Refund(c.Context(), c.Params("transactionId"), req.Amount, h.gateway)
	if !result.Success {
		return response.Fail(c, refundStatusCode(result.Status), result.Status, result)
	}

	return response.Success(c, result.Status, result)
}

func payStatusCode(status string) int {
	switch {
	case status == services.PayStatusInvalidPatron, status == services.PayStatusInvalidBook:
		return fiber.StatusBadRequest
	case status == services.PayStatusBookNotFound:
		return fiber.StatusNotFound
	case status == services.PayStatusLookupFailed:
		return fiber.StatusInternalServerError
	case strings.HasPrefix(status, "Payment error:"):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusPaymentRequired
	}
}

func refundStatusCode(status string) int {
	switch {
	case status == services.RefundStatusInvalidTxID,
		status == services.RefundStatusInvalidAmount,
		status == services.RefundStatusExceedsMax:
		return fiber.StatusBadRequest
	case strings.HasPrefix(status, "Refund error:"):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusPaymentRequired
	}
}
