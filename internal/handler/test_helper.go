package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/mapper"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/service"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/testutil"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
)

type fakeAuthorService struct {
	GetByIDFn    func(ctx context.Context, id int64) (dto.AuthorResponse, error)
	GetAllFn     func(ctx context.Context) ([]dto.AuthorResponse, error)
	CreateFn     func(ctx context.Context, req *dto.CreateAuthorRequest) (int64, error)
	DeleteByIDFn func(ctx context.Context, id int64) error
}

func (f *fakeAuthorService) GetByID(ctx context.Context, id int64) (dto.AuthorResponse, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return dto.AuthorResponse{}, nil
}

func (f *fakeAuthorService) GetAll(ctx context.Context) ([]dto.AuthorResponse, error) {
	if f.GetAllFn != nil {
		return f.GetAllFn(ctx)
	}
	return []dto.AuthorResponse{}, nil
}

func (f *fakeAuthorService) Create(ctx context.Context, req *dto.CreateAuthorRequest) (int64, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, req)
	}
	return 0, nil
}

func (f *fakeAuthorService) DeleteByID(ctx context.Context, id int64) error {
	if f.DeleteByIDFn != nil {
		return f.DeleteByIDFn(ctx, id)
	}
	return nil
}

type fakeBookService struct {
	GetByIDFn      func(ctx context.Context, id int64) (dto.BookResponse, error)
	GetAllFn       func(ctx context.Context) ([]dto.BookResponse, error)
	CreateFn       func(ctx context.Context, req *dto.CreateBookRequest) (int64, error)
	UpdateFn       func(ctx context.Context, id int64, req *dto.UpdateBookRequest) (dto.BookResponse, error)
	ChangeAuthorFn func(ctx context.Context, bookID, authorID int64) (dto.BookResponse, error)
	DeleteByIDFn   func(ctx context.Context, id int64) error
}

func (f *fakeBookService) GetByID(ctx context.Context, id int64) (dto.BookResponse, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return dto.BookResponse{}, nil
}

func (f *fakeBookService) GetAll(ctx context.Context) ([]dto.BookResponse, error) {
	if f.GetAllFn != nil {
		return f.GetAllFn(ctx)
	}
	return []dto.BookResponse{}, nil
}

func (f *fakeBookService) Create(ctx context.Context, req *dto.CreateBookRequest) (int64, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, req)
	}
	return 0, nil
}

func (f *fakeBookService) Update(ctx context.Context, id int64, req *dto.UpdateBookRequest) (dto.BookResponse, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return dto.BookResponse{}, nil
}

func (f *fakeBookService) ChangeAuthor(ctx context.Context, bookID, authorID int64) (dto.BookResponse, error) {
	if f.ChangeAuthorFn != nil {
		return f.ChangeAuthorFn(ctx, bookID, authorID)
	}
	return dto.BookResponse{}, nil
}

func (f *fakeBookService) DeleteByID(ctx context.Context, id int64) error {
	if f.DeleteByIDFn != nil {
		return f.DeleteByIDFn(ctx, id)
	}
	return nil
}

func setupTestRouterWithServices(authors service.AuthorService, books service.BookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	if authors != nil {
		NewAuthorHandler(authors).RegisterRoutes(api)
	}
	if books != nil {
		NewBookHandler(books).RegisterRoutes(api)
	}

	return r
}

// setupTestRouter wires real services over the given repositories. Today is
// fixed at testutil.FixedNow.
func setupTestRouter(authorRepo repository.AuthorRepository, bookRepo repository.BookRepository) *gin.Engine {
	authorMapper := mapper.NewAuthorMapper()
	clock := testutil.FixedClock(testutil.FixedNow)

	authors := service.NewAuthorService(authorRepo, authorMapper, validation.NewAuthorRules(authorRepo))
	books := service.NewBookService(
		bookRepo,
		authorRepo,
		mapper.NewBookMapper(authorRepo, authorMapper),
		validation.NewBookRules(bookRepo, authorRepo, clock),
	)

	return setupTestRouterWithServices(authors, books)
}

func setupMemoryRouter() *gin.Engine {
	return setupTestRouter(repository.NewMemoryAuthorRepository(), repository.NewMemoryBookRepository())
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func createAuthor(t *testing.T, router http.Handler, name, birthday string) int64 {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/authors", map[string]any{
		"name":     name,
		"birthday": birthday,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 creating author %q, got %d, body=%s", name, w.Code, w.Body.String())
	}
	return decode[CreatedResponse](t, w).Data.ID
}

func createBook(t *testing.T, router http.Handler, title, releaseDate string, authorID int64) int64 {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/books", map[string]any{
		"title":        title,
		"release_date": releaseDate,
		"author_id":    authorID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 creating book %q, got %d, body=%s", title, w.Code, w.Body.String())
	}
	return decode[CreatedResponse](t, w).Data.ID
}

