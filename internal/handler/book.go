package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/service"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.PATCH("/:id/authors", h.ChangeBookAuthor)
		books.DELETE("/:id", h.DeleteBook)
	}
}

var bookFailure = failure{
	notFoundCode:    "BOOK_NOT_FOUND",
	notFoundMessage: "book not found",
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. Titles must be unique, the release date must not be in the future and the author must exist.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.CreateBookRequest     true  "Book to create"
// @Success      201      {object}  CreatedResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		f := bookFailure
		f.code, f.message = "BOOK_CREATE_FAILED", "failed to create book"
		writeServiceError(c, err, f)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{Data: CreatedID{ID: id}})
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books in creation order
// @Tags         books
// @Produce      json
// @Success      200  {object}  ListBooksResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	c.JSON(http.StatusOK, ListBooksResponse{Data: books})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	book, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		f := bookFailure
		f.code, f.message = "BOOK_FETCH_FAILED", "failed to fetch book"
		writeServiceError(c, err, f)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: book})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace every field of a book by its ID. Title uniqueness is not checked.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Book ID"
// @Param        payload  body      dto.UpdateBookRequest     true  "New book fields"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book or author not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		f := bookFailure
		f.code, f.message = "BOOK_UPDATE_FAILED", "failed to update book"
		writeServiceError(c, err, f)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: book})
}

// ChangeBookAuthor godoc
// @Summary      Change the author of a book
// @Tags         books
// @Produce      json
// @Param        id         path      int  true  "Book ID"
// @Param        author_id  query     int  true  "New author ID"
// @Success      200        {object}  BookResponse
// @Failure      400        {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404        {object}  validation.ErrorResponse  "Book or author not found"
// @Failure      500        {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id}/authors [patch]
func (h *BookHandler) ChangeBookAuthor(c *gin.Context) {
	id, ok := parseID(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var q ChangeAuthorQuery
	if !validation.BindAndValidateQuery(c, &q) {
		return
	}

	book, err := h.svc.ChangeAuthor(c.Request.Context(), id, *q.AuthorID)
	if err != nil {
		f := bookFailure
		f.code, f.message = "BOOK_UPDATE_FAILED", "failed to change book author"
		writeServiceError(c, err, f)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: book})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by ID. Deleting a missing book succeeds.
// @Tags         books
// @Param        id   path      int  true  "Book ID"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	if err := h.svc.DeleteByID(c.Request.Context(), id); err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.Status(http.StatusNoContent)
}
