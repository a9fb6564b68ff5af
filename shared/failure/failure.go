package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable tag identifying the failure category. It is
// surfaced to callers alongside the message so the transport layer can render
// errors without parsing message text.
const (
	KindMissingSelection = "missing_selection"
	KindMissingField     = "missing_field"
	KindInvalidDateRange = "invalid_date_range"
	KindRoomNotFound     = "room_not_found"
	KindStorageFailure   = "storage_failure"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// MissingSelection returns a Failure for a required reference that was not
// supplied or does not resolve (approving admin, room, dates, customer,
// payment method).
func MissingSelection(what string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindMissingSelection,
		Message: fmt.Sprintf("please select %s", what),
	}
}

// MissingField returns a Failure naming a blank required field on a new
// customer.
func MissingField(field string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindMissingField,
		Message: fmt.Sprintf("%s is required for a new customer", field),
	}
}

// InvalidDateRange returns a Failure for a checkout date on or before the
// checkin date.
func InvalidDateRange(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidDateRange,
		Message: msg,
	}
}

// RoomNotFound returns a Failure for a room id that does not resolve.
func RoomNotFound() error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindRoomNotFound,
		Message: "selected room not found",
	}
}

// Storage wraps an underlying read/write error, constraint violations
// included, into the generic storage failure surfaced to callers.
func Storage(err error) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindStorageFailure,
		Message: err.Error(),
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
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

// GetKind returns the failure kind of an error interface, empty when the
// error carries none.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}
