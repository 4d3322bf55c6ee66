package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/service"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
)

type AuthorHandler struct {
	svc service.AuthorService
}

func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.POST("", h.CreateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

var authorFailure = failure{
	notFoundCode:    "AUTHOR_NOT_FOUND",
	notFoundMessage: "author not found",
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author. Names must be unique.
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.CreateAuthorRequest   true  "Author to create"
// @Success      201      {object}  CreatedResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		f := authorFailure
		f.code, f.message = "AUTHOR_CREATE_FAILED", "failed to create author"
		writeServiceError(c, err, f)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{Data: CreatedID{ID: id}})
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Get all authors in creation order
// @Tags         authors
// @Produce      json
// @Success      200  {object}  ListAuthorsResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_LIST_FAILED",
			"failed to fetch authors",
		)
		return
	}

	c.JSON(http.StatusOK, ListAuthorsResponse{Data: authors})
}

// GetAuthorByID godoc
// @Summary      Get an author by ID
// @Tags         authors
// @Produce      json
// @Param        id   path      int  true  "Author ID"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := parseID(c, "INVALID_AUTHOR_ID", "invalid author id")
	if !ok {
		return
	}

	author, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		f := authorFailure
		f.code, f.message = "AUTHOR_FETCH_FAILED", "failed to fetch author"
		writeServiceError(c, err, f)
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: author})
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author by ID. Deleting a missing author succeeds. Books keep their author.
// @Tags         authors
// @Param        id   path      int  true  "Author ID"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c, "INVALID_AUTHOR_ID", "invalid author id")
	if !ok {
		return
	}

	if err := h.svc.DeleteByID(c.Request.Context(), id); err != nil {
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_DELETE_FAILED",
			"failed to delete author",
		)
		return
	}

	c.Status(http.StatusNoContent)
}
