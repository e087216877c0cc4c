package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrLikeConflict is returned when a concurrent request already inserted the
// same (comment, owner) like.
var ErrLikeConflict = errors.New("like was changed by a concurrent request, try again")

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// MissingFieldError reports a required entity field that is absent or nil.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required property %q is missing", e.Code(), e.Field)
}

func (e *MissingFieldError) Code() string {
	return e.Entity + ".NOT_CONTAIN_NEEDED_PROPERTY"
}

// TypeMismatchError reports a present entity field whose value has the wrong type.
type TypeMismatchError struct {
	Entity   string
	Field    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: property %q must be %s", e.Code(), e.Field, e.Expected)
}

func (e *TypeMismatchError) Code() string {
	return e.Entity + ".NOT_MEET_DATA_TYPE_SPECIFICATION"
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AuthorizationError means the actor is not allowed to touch the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// AuthenticationError means the credentials or token are wrong.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// InvariantError is a client error that is not tied to a single field.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return e.Message }

// Is reports whether err (or anything it wraps) is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode maps an error to the HTTP status the transport should use.
func StatusCode(err error) int {
	var withCode *ErrorWithStatusCode
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &withCode):
		return withCode.StatusCode
	case Is[*MissingFieldError](err), Is[*TypeMismatchError](err), Is[*InvariantError](err):
		return http.StatusBadRequest
	case Is[*NotFoundError](err):
		return http.StatusNotFound
	case Is[*AuthorizationError](err):
		return http.StatusForbidden
	case Is[*AuthenticationError](err):
		return http.StatusUnauthorized
	case errors.Is(err, ErrLikeConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether err should be shown to the caller verbatim.
func IsClientError(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}

var translations = map[string]string{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat user baru karena tipe data tidak sesuai",
	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":         "harus mengirimkan username dan password",
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION":    "username dan password harus string",
	"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":         "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":    "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":        "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":   "tidak dapat membuat komentar baru karena tipe data tidak sesuai",
	"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":          "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":     "tidak dapat membuat balasan baru karena tipe data tidak sesuai",
}

// Message returns the text shown to API clients for a client error.
// Validation codes with a known wording are translated. Typed errors are
// unwrapped so callers never see the context prefixes added on the way up.
func Message(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		if msg, ok := translations[coded.Code()]; ok {
			return msg
		}
	}
	if errors.Is(err, ErrLikeConflict) {
		return ErrLikeConflict.Error()
	}
	var (
		withCode     *ErrorWithStatusCode
		notFound     *NotFoundError
		forbidden    *AuthorizationError
		unauthorized *AuthenticationError
		invariant    *InvariantError
	)
	switch {
	case errors.As(err, &withCode):
		return withCode.Message
	case errors.As(err, &notFound):
		return notFound.Message
	case errors.As(err, &forbidden):
		return forbidden.Message
	case errors.As(err, &unauthorized):
		return unauthorized.Message
	case errors.As(err, &invariant):
		return invariant.Message
	}
	return err.Error()
}
