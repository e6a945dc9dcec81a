package handlers

import (
	"strconv"
	"time"

	"library-desk/internal/core/domain"
	"library-desk/internal/core/services"
	"library-desk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PatronHandler handles fee and status endpoints
type PatronHandler struct {
	feeService    *services.FeeService
	reportService *services.ReportService
	now           services.Clock
}

// NewPatronHandler creates a new patron handler
func NewPatronHandler(feeService *services.FeeService, reportService *services.ReportService) *PatronHandler {
	return &PatronHandler{
		feeService:    feeService,
		reportService: reportService,
		now:           time.Now,
	}
}

// GetFee reports the late fee on one of the patron's loans
// @Summary Late fee
// @Description Compute the current late fee of a patron's open loan
// @Tags Patrons
// @Produce json
// @Param patronId path string true "Six digit patron ID"
// @Param bookId path int true "Book ID"
// @Success 200 {object} response.Response{data=domain.FeeReport}
// @Failure 400 {object} response.Response{data=domain.FeeReport}
// @Failure 404 {object} response.Response{data=domain.FeeReport}
// @Failure 500 {object} response.Response{data=domain.FeeReport}
// @Router /patrons/{patronId}/fees/{bookId} [get]
func (h *PatronHandler) GetFee(c *fiber.Ctx) error {
	bookID, _ := strconv.Atoi(c.Params("bookId"))

	report := h.feeService.CalculateFee(c.Context(), c.Params("patronId"), bookID, h.now())
	if report.Status != domain.FeeStatusOK {
		return response.Fail(c, feeStatusCode(report.Status), string(report.Status), report)
	}

	return response.Success(c, "Late fee calculated", report)
}

// GetStatus reports the patron's loans, fees and history
// @Summary Patron status
// @Description Current loans with fees, fee total and borrowing history
// @Tags Patrons
// @Produce json
// @Param patronId path string true "Six digit patron ID"
// @Success 200 {object} response.Response{data=domain.PatronReport}
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /patrons/{patronId}/status [get]
func (h *PatronHandler) GetStatus(c *fiber.Ctx) error {
	report := h.reportService.StatusReport(c.Context(), c.Params("patronId"))

	switch report.Status {
	case services.ReportStatusOK:
		return response.Success(c, "Patron status retrieved", report)
	case services.ReportStatusInvalidPatron:
		return response.BadRequest(c, report.Status)
	default:
		return response.Error(c, fiber.StatusServiceUnavailable, report.Status)
	}
}

func feeStatusCode(status domain.FeeStatus) int {
	switch status {
	case domain.FeeStatusBookNotFound, domain.FeeStatusNoActiveBorrow:
		return fiber.StatusNotFound
	case domain.FeeStatusLookupFailed:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
