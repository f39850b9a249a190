package handler

import (
	"net/http"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
)

// ListMyBooks godoc
// @Summary List the caller's library
// @Tags mybooks
// @Produce json
// @Param status query string false "reading status" Enums(Want to Read, Currently Reading, Read)
// @Success 200 {array} model.MyBook
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Router /mybooks [get]
func (h *Handler) ListMyBooks(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	status := model.ReadingStatus(c.QueryParam("status"))
	items, err := h.svc.ListMyBooks(c.Request().Context(), user.ID, status)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// LibraryStats godoc
// @Summary Reading statistics of the caller's library
// @Tags mybooks
// @Produce json
// @Success 200 {object} model.LibraryStats
// @Failure 401 {object} echo.HTTPError
// @Router /mybooks/stats [get]
func (h *Handler) LibraryStats(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	stats, err := h.svc.LibraryStats(c.Request().Context(), user.ID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// AddMyBook godoc
// @Summary Add a book to the caller's library
// @Tags mybooks
// @Accept json
// @Produce json
// @Param bookId path string true "book id"
// @Param input body model.BookFields false "fields for a book not yet in the catalog"
// @Success 201 {object} model.MyBook
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Router /mybooks/{bookId} [post]
func (h *Handler) AddMyBook(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	bookID := c.Param("bookId")
	if len(bookID) > maxBookIDLen {
		return echo.NewHTTPError(http.StatusBadRequest, "Book id is too long")
	}
	var fields model.BookFields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.AddMyBook(c.Request().Context(), user.ID, bookID, fields)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateStatus godoc
// @Summary Set the reading status
// @Tags mybooks
// @Accept json
// @Produce json
// @Param bookId path string true "book id"
// @Param input body model.UpdateStatusRequest true "status"
// @Success 200 {object} model.MyBook
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /mybooks/{bookId}/status [patch]
func (h *Handler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	var req model.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.UpdateStatus(c.Request().Context(), user.ID, c.Param("bookId"), req.Status)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateRating godoc
// @Summary Set or clear the rating
// @Tags mybooks
// @Accept json
// @Produce json
// @Param bookId path string true "book id"
// @Param input body model.UpdateRatingRequest true "rating"
// @Success 200 {object} model.MyBook
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /mybooks/{bookId}/rating [patch]
func (h *Handler) UpdateRating(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	var req model.UpdateRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.HasRating() {
		return echo.NewHTTPError(http.StatusBadRequest, "Rating is required")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.UpdateRating(c.Request().Context(), user.ID, c.Param("bookId"), req.Rating)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// RemoveMyBook godoc
// @Summary Remove a book from the caller's library
// @Tags mybooks
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} echo.HTTPError
// @Router /mybooks/{bookId} [delete]
func (h *Handler) RemoveMyBook(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.svc.RemoveMyBook(c.Request().Context(), user.ID, c.Param("bookId")); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Book removed from your library"})
}
