package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
)

func TestCreateAuthor_Success(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{
		"name":     "Leo Tolstoy",
		"birthday": "1828-09-09",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[CreatedResponse](t, w)
	if resp.Data.ID != 0 {
		t.Errorf("expected first author id 0, got %d", resp.Data.ID)
	}

	second := createAuthor(t, router, "Jane Austen", "1775-12-16")
	if second != 1 {
		t.Errorf("expected second author id 1, got %d", second)
	}
}

func TestCreateAuthor_ValidationError_MissingName(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{
		"birthday": "1828-09-09",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "VALIDATION_FAILED" {
		t.Errorf("expected code VALIDATION_FAILED, got %q", resp.Code)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "name" {
		t.Errorf("expected a single error on name, got %+v", resp.Errors)
	}
}

func TestCreateAuthor_ValidationError_MissingBirthday(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{
		"name": "Leo Tolstoy",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "birthday" {
		t.Errorf("expected a single error on birthday, got %+v", resp.Errors)
	}
}

func TestCreateAuthor_ValidationError_DuplicateName(t *testing.T) {
	router := setupMemoryRouter()
	createAuthor(t, router, "Leo Tolstoy", "1828-09-09")

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{
		"name":     " Leo Tolstoy ",
		"birthday": "1828-09-09",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if len(resp.Errors) != 1 || resp.Errors[0].Rule != "unique" {
		t.Errorf("expected a unique rule error, got %+v", resp.Errors)
	}
}

func TestCreateAuthor_MalformedBody(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodPost, "/api/authors", `{"name": "x", "birthday": "not a date"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "INVALID_REQUEST" {
		t.Errorf("expected code INVALID_REQUEST, got %q", resp.Code)
	}
}

func TestCreateAuthor_InternalError_Returns500(t *testing.T) {
	svc := &fakeAuthorService{
		CreateFn: func(ctx context.Context, req *dto.CreateAuthorRequest) (int64, error) {
			return 0, errors.New("forced create error")
		},
	}
	router := setupTestRouterWithServices(svc, nil)

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{
		"name":     "Error Author",
		"birthday": "1900-01-01",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "AUTHOR_CREATE_FAILED" {
		t.Errorf("expected error code AUTHOR_CREATE_FAILED, got %q", resp.Code)
	}
	if resp.Message != "failed to create author" {
		t.Errorf("expected message %q, got %q", "failed to create author", resp.Message)
	}
}

func TestListAuthors_Empty(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodGet, "/api/authors", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"data":[]}` {
		t.Errorf("expected empty data array, got %s", w.Body.String())
	}
}

func TestListAuthors_WithData(t *testing.T) {
	router := setupMemoryRouter()
	createAuthor(t, router, "Leo Tolstoy", "1828-09-09")
	createAuthor(t, router, "Jane Austen", "1775-12-16")

	w := doJSON(t, router, http.MethodGet, "/api/authors", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[ListAuthorsResponse](t, w)
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(resp.Data))
	}
	if resp.Data[0].Name != "Leo Tolstoy" || resp.Data[1].Name != "Jane Austen" {
		t.Errorf("expected creation order, got %+v", resp.Data)
	}
	if resp.Data[1].BirthDate.String() != "1775-12-16" {
		t.Errorf("expected birth_date 1775-12-16, got %q", resp.Data[1].BirthDate.String())
	}
}

func TestListAuthors_InternalError_Returns500(t *testing.T) {
	svc := &fakeAuthorService{
		GetAllFn: func(ctx context.Context) ([]dto.AuthorResponse, error) {
			return nil, errors.New("forced list error")
		},
	}
	router := setupTestRouterWithServices(svc, nil)

	w := doJSON(t, router, http.MethodGet, "/api/authors", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetAuthorByID_Success(t *testing.T) {
	router := setupMemoryRouter()
	id := createAuthor(t, router, "Leo Tolstoy", "1828-09-09")

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AuthorResponse](t, w)
	if resp.Data.ID != id || resp.Data.Name != "Leo Tolstoy" {
		t.Errorf("unexpected author %+v", resp.Data)
	}
}

func TestGetAuthorByID_InvalidID(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodGet, "/api/authors/not-a-number", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "INVALID_AUTHOR_ID" {
		t.Errorf("expected code INVALID_AUTHOR_ID, got %q", resp.Code)
	}
}

func TestGetAuthorByID_NotFound(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodGet, "/api/authors/42", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "AUTHOR_NOT_FOUND" {
		t.Errorf("expected code AUTHOR_NOT_FOUND, got %q", resp.Code)
	}
}

func TestGetAuthorByID_InternalError_Returns500(t *testing.T) {
	svc := &fakeAuthorService{
		GetByIDFn: func(ctx context.Context, id int64) (dto.AuthorResponse, error) {
			return dto.AuthorResponse{}, errors.New("forced fetch error")
		},
	}
	router := setupTestRouterWithServices(svc, nil)

	w := doJSON(t, router, http.MethodGet, "/api/authors/1", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "AUTHOR_FETCH_FAILED" {
		t.Errorf("expected code AUTHOR_FETCH_FAILED, got %q", resp.Code)
	}
}

func TestDeleteAuthor_Success(t *testing.T) {
	router := setupMemoryRouter()
	id := createAuthor(t, router, "Leo Tolstoy", "1828-09-09")

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/authors/%d", id), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected deleted author to be gone, got %d", w.Code)
	}
}

func TestDeleteAuthor_MissingIsNoContent(t *testing.T) {
	router := setupMemoryRouter()

	w := doJSON(t, router, http.MethodDelete, "/api/authors/99", nil)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteAuthor_InternalError_Returns500(t *testing.T) {
	var deleted int64 = -1
	svc := &fakeAuthorService{
		DeleteByIDFn: func(ctx context.Context, id int64) error {
			deleted = id
			return errors.New("forced delete error")
		},
	}
	router := setupTestRouterWithServices(svc, nil)

	w := doJSON(t, router, http.MethodDelete, "/api/authors/5", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}
	if deleted != 5 {
		t.Errorf("expected delete of id 5, got %d", deleted)
	}
}

func TestWriteServiceError_NotFoundWinsOverValidation(t *testing.T) {
	svc := &fakeAuthorService{
		CreateFn: func(ctx context.Context, req *dto.CreateAuthorRequest) (int64, error) {
			return 0, fmt.Errorf("%w: %w", model.ErrValidationFailed, model.ErrReferenceNotFound)
		},
	}
	router := setupTestRouterWithServices(svc, nil)

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{"name": "x"})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}
