package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories exposed to clients
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// Entity names the resource a NotFound error refers to
type Entity string

const (
	EntityArticle  Entity = "Article"
	EntityComment  Entity = "Comment"
	EntityTopic    Entity = "Topic"
	EntityUser     Entity = "User"
	EntityEndpoint Entity = "Endpoint"
)

// Messages surfaced verbatim to clients
const (
	MsgBadRequest = "Bad request"
	MsgInternal   = "Internal server error"
	MsgNoTopics   = "No topics were found"
)

// Error is a domain rejection carrying its own status category and message
type Error struct {
	Kind    Kind
	Entity  Entity // set for KindNotFound only
	Message string
	Err     error // underlying cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two *Error values of the same kind and entity,
// so errors.Is(err, apperror.NotFound(apperror.EntityArticle)) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Entity == t.Entity
}

// Status maps the error kind to an HTTP status code
func (e *Error) Status() int {
	return HTTPStatus(e.Kind)
}

// HTTPStatus is the single translation from Kind to transport status
func HTTPStatus(k Kind) int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ============================================================
// CONSTRUCTORS
// ============================================================

// BadRequest builds a 400 rejection. An empty message uses "Bad request".
func BadRequest(message string) *Error {
	if message == "" {
		message = MsgBadRequest
	}
	return &Error{Kind: KindBadRequest, Message: message}
}

// BadRequestWrap keeps the cause (e.g. a validation error) for logs
func BadRequestWrap(err error) *Error {
	return &Error{Kind: KindBadRequest, Message: MsgBadRequest, Err: err}
}

// NotFound builds "<Entity> not found"
func NotFound(entity Entity) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

// NotFoundMsg builds a 404 for an entity with a custom message
func NotFoundMsg(entity Entity, message string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: message}
}

// Internal wraps an unexpected failure; the message is always generic
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// IsNotFound reports whether err is a not-found rejection for entity
func IsNotFound(err error, entity Entity) bool {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == KindNotFound && appErr.Entity == entity
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
