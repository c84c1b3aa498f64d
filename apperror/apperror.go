// Package apperror holds the typed failures returned by the services and
// the mapping from storage errors onto them.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

// ReviewCommentsConstraint is the foreign key from comments.review_id to
// reviews, as named by the migration.
const ReviewCommentsConstraint = "fk_reviews_comments"

const (
	InvalidIdentifier    Kind = "invalid_identifier"
	InvalidSortColumn    Kind = "invalid_sort_column"
	InvalidSortDirection Kind = "invalid_sort_direction"
	CategoryNotFound     Kind = "category_not_found"
	NoReviewsForCategory Kind = "no_reviews_for_category"
	UnknownAuthor        Kind = "unknown_author"
	EmptyBody            Kind = "empty_body"
	MissingField         Kind = "missing_field"
	UnexpectedField      Kind = "unexpected_field"
	InvalidVoteDelta     Kind = "invalid_vote_delta"
	MalformedBody        Kind = "malformed_body"
	NotFoundKind         Kind = "not_found"
	Internal             Kind = "internal_error"
)

var messages = map[Kind]string{
	InvalidIdentifier:    "Bad request",
	InvalidSortColumn:    "invalid sort_by query",
	InvalidSortDirection: "invalid order query",
	CategoryNotFound:     "category does not exist",
	NoReviewsForCategory: "no reviews found for this category",
	UnknownAuthor:        "username does not exist",
	EmptyBody:            "Bad request: body must not be empty",
	MissingField:         "Bad request: inc_votes is required",
	UnexpectedField:      "Bad request: only inc_votes may be updated",
	InvalidVoteDelta:     "Bad request: inc_votes must be an integer",
	MalformedBody:        "Bad request: malformed JSON body",
	NotFoundKind:         "not found",
	Internal:             "Internal server error",
}

// Status returns the HTTP status a failure of kind k is reported with.
func (k Kind) Status() int {
	switch k {
	case CategoryNotFound, NoReviewsForCategory, NotFoundKind:
		return http.StatusNotFound
	case Internal:
		return http.StatusInternalServerError
	}
	if _, ok := messages[k]; ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Error is a classified failure with its user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int { return e.Kind.Status() }

// New builds a failure of kind k with its fixed message.
func New(k Kind) *Error {
	return &Error{Kind: k, Message: messages[k]}
}

// Wrap builds a failure of kind k that keeps cause for logging.
func Wrap(k Kind, cause error) *Error {
	return &Error{Kind: k, Message: messages[k], Err: cause}
}

// NotFound reports a missing entity, e.g. NotFound("review") -> "review not found".
func NotFound(entity string) *Error {
	return &Error{Kind: NotFoundKind, Message: entity + " not found"}
}

// Is matches on Kind so callers can write errors.Is(err, apperror.New(k)).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind reports whether err normalizes to kind k.
func IsKind(err error, k Kind) bool {
	return Normalize(err).Kind == k
}

// Normalize maps any error onto a typed failure. Unrecognised errors become
// Internal with the original kept as cause.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: NotFoundKind, Message: messages[NotFoundKind], Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(UnknownAuthor, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02":
			return Wrap(InvalidIdentifier, err)
		case "23502":
			return Wrap(EmptyBody, err)
		case "23503":
			if pgErr.ConstraintName == ReviewCommentsConstraint {
				missing := NotFound("review")
				missing.Err = err
				return missing
			}
			return Wrap(UnknownAuthor, err)
		}
	}

	return Wrap(Internal, err)
}
