package handlers

import (
	"strings"

	"library-desk/internal/core/services"
	"library-desk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles borrow and return endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// LoanRequest identifies a patron and a book
type LoanRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int    `json:"book_id"`
}

// Borrow opens a loan
// @Summary Borrow book
// @Description Borrow a book for 14 days
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body LoanRequest true "Patron and book"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Borrow(c *fiber.Ctx) error {
	var req LoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	out := h.loanService.Borrow(c.Context(), req.PatronID, req.BookID)
	if !out.Success {
		return response.Error(c, loanStatus(out.Message), out.Message)
	}

	return response.Created(c, out.Message, nil)
}

// Return closes a loan
// @Summary Return book
// @Description Return a borrowed book and report any late fee
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body LoanRequest true "Patron and book"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loans/return [post]
func (h *LoanHandler) Return(c *fiber.Ctx) error {
	var req LoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	out := h.loanService.Return(c.Context(), req.PatronID, req.BookID)
	if !out.Success {
		return response.Error(c, loanStatus(out.Message), out.Message)
	}

	return response.Success(c, out.Message, nil)
}

func loanStatus(message string) int {
	switch {
	case message == services.MsgBookNotFound,
		message == services.MsgReturnInvalidBook,
		message == services.MsgNotBorrowed:
		return fiber.StatusNotFound
	case message == services.MsgBookUnavailable,
		strings.HasPrefix(message, "You have reached the maximum borrowing limit"):
		return fiber.StatusConflict
	case strings.HasPrefix(message, "Database error"):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
