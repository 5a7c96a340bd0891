package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure independently of the resource it concerns.
type Kind string

const (
	KindBadRequest        Kind = "bad_request"
	KindValidation        Kind = "validation"
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindNotFound          Kind = "not_found"
	KindUnauthorized      Kind = "unauthorized"
	KindExternalAPI       Kind = "external_api"
	KindStore             Kind = "store"
	KindInternal          Kind = "internal"
)

const genericInternalMessage = "internal server error"

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Resource names the entity the failure concerns ("todo", "note", "calendar event").
type Failure struct {
	Code     int               `json:"code"`
	Message  string            `json:"message"`
	Kind     Kind              `json:"kind"`
	Resource string            `json:"resource,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	cause    error
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindBadRequest,
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindBadRequest,
	}
}

// Validation returns a field-indexed validation failure. The message is the first field's message
// when one is given.
func Validation(msg string, fields map[string]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindValidation,
		Fields:  fields,
	}
}

// InvalidIdentifier returns a new Failure for a malformed resource id.
func InvalidIdentifier(resource, id string) error {
	return &Failure{
		Code:     http.StatusBadRequest,
		Message:  fmt.Sprintf("invalid %s id: %q", resource, id),
		Kind:     KindInvalidIdentifier,
		Resource: resource,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Kind:    KindUnauthorized,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Kind:    KindInternal,
			cause:   err,
		}
	}

	return nil
}

// Store wraps a database failure. The message stays generic; the cause is kept for logging.
func Store(resource string, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:     http.StatusInternalServerError,
		Message:  genericInternalMessage,
		Kind:     KindStore,
		Resource: resource,
		cause:    err,
	}
}

// ExternalAPI wraps a failed call to a third-party API.
func ExternalAPI(service string, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("%s api error: %v", service, err),
		Kind:    KindExternalAPI,
		cause:   err,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(resource string) error {
	return &Failure{
		Code:     http.StatusNotFound,
		Message:  resource + " not found",
		Kind:     KindNotFound,
		Resource: resource,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of a Failure, or KindInternal for any other error.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}
