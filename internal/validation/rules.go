package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/repository"
)

// RuleError is the first create rule a request broke. It matches
// model.ErrValidationFailed with errors.Is.
type RuleError struct {
	Field string
	Rule  string
	Err   error
}

func (e *RuleError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", model.ErrValidationFailed, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", model.ErrValidationFailed, e.Field, e.Err)
}

func (e *RuleError) Unwrap() []error {
	return []error{model.ErrValidationFailed, e.Err}
}

// FieldError renders e the way binding failures are rendered.
func (e *RuleError) FieldError() FieldError {
	return FieldError{Field: e.Field, Rule: e.Rule, Message: e.Err.Error()}
}

var errMissingRequest = errors.New("request body is required")

// Clock returns the current time; "today" is its calendar day.
type Clock func() time.Time

// AuthorRules validates author create requests.
type AuthorRules struct {
	authors repository.AuthorRepository
}

func NewAuthorRules(authors repository.AuthorRepository) *AuthorRules {
	return &AuthorRules{authors: authors}
}

// ValidateCreate checks name, then birthday, then name uniqueness, and stops
// at the first failure.
func (r *AuthorRules) ValidateCreate(ctx context.Context, req *dto.CreateAuthorRequest) error {
	if req == nil {
		return &RuleError{Rule: "required", Err: errMissingRequest}
	}

	if err := check("name", req.Name,
		ozzo.Required.Error("name is required"),
	); err != nil {
		return err
	}

	if err := check("birthday", req.Birthday.TimeOrZero(),
		ozzo.Required.Error("birthday is required"),
	); err != nil {
		return err
	}

	exists, err := r.authors.ExistsByName(ctx, req.Name)
	if err != nil {
		return fmt.Errorf("check author name: %w", err)
	}
	if exists {
		return &RuleError{
			Field: "name",
			Rule:  "unique",
			Err:   fmt.Errorf("author %q already exists", req.Name),
		}
	}

	return nil
}

// BookRules validates book create requests.
type BookRules struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
	now     Clock
}

func NewBookRules(books repository.BookRepository, authors repository.AuthorRepository, now Clock) *BookRules {
	if now == nil {
		now = time.Now
	}
	return &BookRules{books: books, authors: authors, now: now}
}

// ValidateCreate checks title, release date, author id, title uniqueness and
// author existence in that order, stopping at the first failure. A release
// date of today is accepted. An unknown author also matches
// model.ErrReferenceNotFound.
func (r *BookRules) ValidateCreate(ctx context.Context, req *dto.CreateBookRequest) error {
	if req == nil {
		return &RuleError{Rule: "required", Err: errMissingRequest}
	}

	if err := check("title", req.Title,
		ozzo.Required.Error("title is required"),
	); err != nil {
		return err
	}

	today := model.CalendarDay(r.now())
	if err := check("release_date", model.CalendarDay(req.ReleaseDate.TimeOrZero()),
		ozzo.Required.Error("release date is required"),
		ozzo.Max(today).Error("release date must not be in the future"),
	); err != nil {
		return err
	}

	if err := check("author_id", req.AuthorID,
		ozzo.NotNil.Error("author id is required"),
	); err != nil {
		return err
	}

	exists, err := r.books.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return fmt.Errorf("check book title: %w", err)
	}
	if exists {
		return &RuleError{
			Field: "title",
			Rule:  "unique",
			Err:   fmt.Errorf("book %q already exists", req.Title),
		}
	}

	authorExists, err := r.authors.ExistsByID(ctx, *req.AuthorID)
	if err != nil {
		return fmt.Errorf("check author id: %w", err)
	}
	if !authorExists {
		return &RuleError{
			Field: "author_id",
			Rule:  "exists",
			Err:   fmt.Errorf("%w: author %d", model.ErrReferenceNotFound, *req.AuthorID),
		}
	}

	return nil
}

// check runs ozzo rules against one value. Misconfigured rules surface as
// plain errors rather than validation failures.
func check(field string, value any, rules ...ozzo.Rule) error {
	err := ozzo.Validate(value, rules...)
	if err == nil {
		return nil
	}

	var internal ozzo.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("validate %s: %w", field, internal.InternalError())
	}

	rule := "invalid"
	var verr ozzo.Error
	if errors.As(err, &verr) {
		rule = verr.Code()
	}
	return &RuleError{Field: field, Rule: rule, Err: err}
}
