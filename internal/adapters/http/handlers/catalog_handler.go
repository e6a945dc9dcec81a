package handlers

import (
	"strings"

	"library-desk/internal/core/domain"
	"library-desk/internal/core/services"
	"library-desk/internal/pkg/pagination"
	"library-desk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
	loanService    *services.LoanService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService, loanService *services.LoanService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		loanService:    loanService,
	}
}

// ListBooks lists or searches the catalog
// @Summary List books
// @Description List the catalog, or search it by title, author or isbn
// @Tags Catalog
// @Produce json
// @Param q query string false "Search term"
// @Param type query string false "Search type (title, author, isbn)" default(title)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=pagination.Response}
// @Failure 500 {object} response.Response
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	term := c.Query("q")

	var (
		books []*domain.Book
		err   error
	)
	if strings.TrimSpace(term) == "" {
		books, err = h.catalogService.List(c.Context())
	} else {
		books, err = h.catalogService.Search(c.Context(), term, c.Query("type", services.SearchByTitle))
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to load catalog")
	}

	start, end := params.Window(len(books))
	return response.Success(c, "Books retrieved successfully",
		pagination.NewResponse(books[start:end], params, int64(len(books))))
}

// AddBookRequest represents add book request
type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"total_copies"`
}

// AddBook adds a book to the catalog
// @Summary Add book
// @Description Add a new book with every copy available
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body AddBookRequest true "Book data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /books [post]
func (h *CatalogHandler) AddBook(c *fiber.Ctx) error {
	var req AddBookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	out := h.loanService.AddToCatalog(c.Context(), req.Title, req.Author, req.ISBN, req.TotalCopies)
	if !out.Success {
		return response.Error(c, addBookStatus(out.Message), out.Message)
	}

	return response.Created(c, out.Message, nil)
}

func addBookStatus(message string) int {
	switch {
	case message == services.MsgAddBookDBError:
		return fiber.StatusInternalServerError
	case strings.HasSuffix(message, "already exists."):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
