package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthorRepo struct {
	repository.AuthorRepository
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	ExistsByIDFn   func(ctx context.Context, id int64) (bool, error)

	existsByNameCalls int
	existsByIDCalls   int
}

func (f *fakeAuthorRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	f.existsByNameCalls++
	if f.ExistsByNameFn != nil {
		return f.ExistsByNameFn(ctx, name)
	}
	return false, nil
}

func (f *fakeAuthorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	f.existsByIDCalls++
	if f.ExistsByIDFn != nil {
		return f.ExistsByIDFn(ctx, id)
	}
	return true, nil
}

type fakeBookRepo struct {
	repository.BookRepository
	ExistsByTitleFn func(ctx context.Context, title string) (bool, error)

	existsByTitleCalls int
}

func (f *fakeBookRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	f.existsByTitleCalls++
	if f.ExistsByTitleFn != nil {
		return f.ExistsByTitleFn(ctx, title)
	}
	return false, nil
}

var fixedNow = time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func int64Ptr(v int64) *int64 { return &v }

func validAuthorRequest() *dto.CreateAuthorRequest {
	return &dto.CreateAuthorRequest{
		Name:     "Leo Tolstoy",
		Birthday: model.MustDate("1828-09-09").Ptr(),
	}
}

func validBookRequest() *dto.CreateBookRequest {
	return &dto.CreateBookRequest{
		Title:       "War and Peace",
		ReleaseDate: model.MustDate("1869-05-23").Ptr(),
		AuthorID:    int64Ptr(0),
	}
}

func requireRuleError(t *testing.T, err error, field, rule string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidationFailed)

	var ruleErr *RuleError
	require.True(t, errors.As(err, &ruleErr), "expected *RuleError, got %T", err)
	assert.Equal(t, field, ruleErr.Field)
	if rule != "" {
		assert.Equal(t, rule, ruleErr.Rule)
	}
}

func TestAuthorRules_ValidRequest(t *testing.T) {
	authors := &fakeAuthorRepo{}
	rules := NewAuthorRules(authors)

	err := rules.ValidateCreate(context.Background(), validAuthorRequest())

	assert.NoError(t, err)
	assert.Equal(t, 1, authors.existsByNameCalls)
}

func TestAuthorRules_EmptyName(t *testing.T) {
	authors := &fakeAuthorRepo{}
	rules := NewAuthorRules(authors)

	req := validAuthorRequest()
	req.Name = ""

	err := rules.ValidateCreate(context.Background(), req)

	requireRuleError(t, err, "name", "validation_required")
	assert.Equal(t, 0, authors.existsByNameCalls)
}

func TestAuthorRules_MissingBirthday(t *testing.T) {
	authors := &fakeAuthorRepo{}
	rules := NewAuthorRules(authors)

	req := validAuthorRequest()
	req.Birthday = nil

	err := rules.ValidateCreate(context.Background(), req)

	requireRuleError(t, err, "birthday", "validation_required")
	assert.Equal(t, 0, authors.existsByNameCalls)
}

func TestAuthorRules_EmptyNameReportedBeforeMissingBirthday(t *testing.T) {
	rules := NewAuthorRules(&fakeAuthorRepo{})

	err := rules.ValidateCreate(context.Background(), &dto.CreateAuthorRequest{})

	requireRuleError(t, err, "name", "")
}

func TestAuthorRules_DuplicateName(t *testing.T) {
	var queried string
	authors := &fakeAuthorRepo{
		ExistsByNameFn: func(ctx context.Context, name string) (bool, error) {
			queried = name
			return true, nil
		},
	}
	rules := NewAuthorRules(authors)

	err := rules.ValidateCreate(context.Background(), validAuthorRequest())

	requireRuleError(t, err, "name", "unique")
	assert.Equal(t, "Leo Tolstoy", queried)
}

func TestAuthorRules_DuplicateNameAgainstStore(t *testing.T) {
	ctx := context.Background()
	authors := repository.NewMemoryAuthorRepository()
	_, err := authors.Save(ctx, &model.Author{Name: "Leo Tolstoy", Birthday: model.MustDate("1828-09-09").Time})
	require.NoError(t, err)

	rules := NewAuthorRules(authors)

	req := validAuthorRequest()
	req.Name = "  Leo Tolstoy  "
	requireRuleError(t, rules.ValidateCreate(ctx, req), "name", "unique")

	req.Name = "Jane Austen"
	assert.NoError(t, rules.ValidateCreate(ctx, req))
}

func TestAuthorRules_RepositoryErrorIsNotValidationFailure(t *testing.T) {
	boom := errors.New("boom")
	rules := NewAuthorRules(&fakeAuthorRepo{
		ExistsByNameFn: func(ctx context.Context, name string) (bool, error) {
			return false, boom
		},
	})

	err := rules.ValidateCreate(context.Background(), validAuthorRequest())

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, model.ErrValidationFailed)
}

func TestAuthorRules_NilRequest(t *testing.T) {
	rules := NewAuthorRules(&fakeAuthorRepo{})

	err := rules.ValidateCreate(context.Background(), nil)

	requireRuleError(t, err, "", "required")
}

func TestBookRules_ValidRequest(t *testing.T) {
	books := &fakeBookRepo{}
	authors := &fakeAuthorRepo{}
	rules := NewBookRules(books, authors, fixedClock)

	err := rules.ValidateCreate(context.Background(), validBookRequest())

	assert.NoError(t, err)
	assert.Equal(t, 1, books.existsByTitleCalls)
	assert.Equal(t, 1, authors.existsByIDCalls)
}

func TestBookRules_EmptyTitle(t *testing.T) {
	books := &fakeBookRepo{}
	rules := NewBookRules(books, &fakeAuthorRepo{}, fixedClock)

	req := validBookRequest()
	req.Title = ""

	requireRuleError(t, rules.ValidateCreate(context.Background(), req), "title", "validation_required")
	assert.Equal(t, 0, books.existsByTitleCalls)
}

func TestBookRules_MissingReleaseDate(t *testing.T) {
	rules := NewBookRules(&fakeBookRepo{}, &fakeAuthorRepo{}, fixedClock)

	req := validBookRequest()
	req.ReleaseDate = nil

	requireRuleError(t, rules.ValidateCreate(context.Background(), req), "release_date", "validation_required")
}

func TestBookRules_ReleaseDateTomorrowRejected(t *testing.T) {
	books := &fakeBookRepo{}
	rules := NewBookRules(books, &fakeAuthorRepo{}, fixedClock)

	req := validBookRequest()
	req.ReleaseDate = model.MustDate("2024-03-16").Ptr()

	requireRuleError(t, rules.ValidateCreate(context.Background(), req), "release_date", "")
	assert.Equal(t, 0, books.existsByTitleCalls)
}

func TestBookRules_ReleaseDateTodayAccepted(t *testing.T) {
	rules := NewBookRules(&fakeBookRepo{}, &fakeAuthorRepo{}, fixedClock)

	req := validBookRequest()
	req.ReleaseDate = model.MustDate("2024-03-15").Ptr()

	assert.NoError(t, rules.ValidateCreate(context.Background(), req))
}

func TestBookRules_TodayFollowsClockLocation(t *testing.T) {
	// 23:30 on the 15th in UTC-5 is already the 16th in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := func() time.Time { return time.Date(2024, time.March, 15, 23, 30, 0, 0, loc) }
	rules := NewBookRules(&fakeBookRepo{}, &fakeAuthorRepo{}, late)

	req := validBookRequest()
	req.ReleaseDate = model.MustDate("2024-03-16").Ptr()

	requireRuleError(t, rules.ValidateCreate(context.Background(), req), "release_date", "")
}

func TestBookRules_MissingAuthorID(t *testing.T) {
	books := &fakeBookRepo{}
	authors := &fakeAuthorRepo{}
	rules := NewBookRules(books, authors, fixedClock)

	req := validBookRequest()
	req.AuthorID = nil

	requireRuleError(t, rules.ValidateCreate(context.Background(), req), "author_id", ozzo.ErrNotNilRequired.Code())
	assert.Equal(t, 0, books.existsByTitleCalls)
	assert.Equal(t, 0, authors.existsByIDCalls)
}

func TestBookRules_DuplicateTitle(t *testing.T) {
	authors := &fakeAuthorRepo{}
	rules := NewBookRules(&fakeBookRepo{
		ExistsByTitleFn: func(ctx context.Context, title string) (bool, error) {
			return true, nil
		},
	}, authors, fixedClock)

	requireRuleError(t, rules.ValidateCreate(context.Background(), validBookRequest()), "title", "unique")
	assert.Equal(t, 0, authors.existsByIDCalls)
}

func TestBookRules_UnknownAuthor(t *testing.T) {
	var queried int64 = -1
	rules := NewBookRules(&fakeBookRepo{}, &fakeAuthorRepo{
		ExistsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			queried = id
			return false, nil
		},
	}, fixedClock)

	req := validBookRequest()
	req.AuthorID = int64Ptr(7)

	err := rules.ValidateCreate(context.Background(), req)

	requireRuleError(t, err, "author_id", "exists")
	assert.ErrorIs(t, err, model.ErrReferenceNotFound)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, int64(7), queried)
}

func TestBookRules_AgainstStores(t *testing.T) {
	ctx := context.Background()
	authors := repository.NewMemoryAuthorRepository()
	books := repository.NewMemoryBookRepository()

	author, err := authors.Save(ctx, &model.Author{Name: "Leo Tolstoy", Birthday: model.MustDate("1828-09-09").Time})
	require.NoError(t, err)
	_, err = books.Save(ctx, &model.Book{Title: "War and Peace", ReleaseDate: model.MustDate("1869-05-23").Time, Author: author})
	require.NoError(t, err)

	rules := NewBookRules(books, authors, fixedClock)

	requireRuleError(t, rules.ValidateCreate(ctx, validBookRequest()), "title", "unique")

	req := validBookRequest()
	req.Title = "Anna Karenina"
	assert.NoError(t, rules.ValidateCreate(ctx, req))

	req.AuthorID = int64Ptr(1)
	requireRuleError(t, rules.ValidateCreate(ctx, req), "author_id", "exists")
}
