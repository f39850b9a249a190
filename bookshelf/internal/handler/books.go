package handler

import (
	"net/http"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
)

// ListBooks godoc
// @Summary List available books
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.svc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary Get a catalog book
// @Tags books
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} model.Book
// @Failure 404 {object} echo.HTTPError
// @Router /books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.svc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// SearchBooks godoc
// @Summary Search the external catalog
// @Tags books
// @Produce json
// @Param q query string true "search term"
// @Success 200 {array} model.Book
// @Failure 400 {object} echo.HTTPError
// @Failure 503 {object} echo.HTTPError
// @Router /books/search [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	books, err := h.svc.SearchBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// maxBookIDLen bounds caller supplied catalog ids.
const maxBookIDLen = 128

type createBookRequest struct {
	ID string `json:"_id" validate:"max=128"`
	model.BookFields
	Availability *bool `json:"availability"`
}

// CreateBook godoc
// @Summary Add a catalog book (admin)
// @Tags books
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "admin key"
// @Param input body model.BookFields true "book"
// @Success 201 {object} model.Book
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	available := true
	if req.Availability != nil {
		available = *req.Availability
	}
	book, err := h.svc.CreateBook(c.Request().Context(), model.Book{
		ID:           req.ID,
		Title:        req.Title,
		Author:       req.Author,
		CoverImage:   req.CoverImage,
		Availability: available,
		Description:  req.Description,
		Genre:        req.Genre,
	})
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// SeedBooks godoc
// @Summary Replace the catalog with sample books (admin)
// @Tags books
// @Produce json
// @Param X-Admin-Key header string true "admin key"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} echo.HTTPError
// @Router /books/seed [post]
func (h *Handler) SeedBooks(c echo.Context) error {
	if err := h.svc.SeedBooks(c.Request().Context()); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Books seeded successfully"})
}
