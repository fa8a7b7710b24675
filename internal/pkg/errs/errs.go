package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")

	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrInternal           = errors.New("internal error")
)

// sanitize removes line breaks from values before they are embedded in error
// messages, keeping log lines single-line and injection-free.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a parameter value is malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric parameter is outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required parameter is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates a concurrency token mismatch on an update.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping
// an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// BadRequestError indicates that a request was rejected because of its shape
// or content. Key is a stable machine-readable identifier for the failure.
type BadRequestError struct {
	Key     string
	Message string
	Cause   error
}

// NewBadRequestError creates a BadRequestError without a cause.
func NewBadRequestError(key, message string) *BadRequestError {
	return &BadRequestError{Key: key, Message: message}
}

// NewBadRequestErrorWithCause creates a BadRequestError wrapping an
// underlying cause.
func NewBadRequestErrorWithCause(key, message string, cause error) *BadRequestError {
	return &BadRequestError{Key: key, Message: message, Cause: cause}
}

func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrBadRequest, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrBadRequest, e.Message))
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

// NotFoundError indicates that a requested resource or route does not exist.
// Key is a stable machine-readable identifier for the failure.
type NotFoundError struct {
	Key     string
	Message string
	Cause   error
}

// NewNotFoundError creates a NotFoundError without a cause.
func NewNotFoundError(key, message string) *NotFoundError {
	return &NotFoundError{Key: key, Message: message}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping an underlying
// cause.
func NewNotFoundErrorWithCause(key, message string, cause error) *NotFoundError {
	return &NotFoundError{Key: key, Message: message, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrNotFound, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrNotFound, e.Message))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// PreconditionFailedError indicates that the current state of a resource
// forbids the requested transition. Key is a stable machine-readable
// identifier for the failure.
type PreconditionFailedError struct {
	Key     string
	Message string
	Cause   error
}

// NewPreconditionFailedError creates a PreconditionFailedError without a
// cause.
func NewPreconditionFailedError(key, message string) *PreconditionFailedError {
	return &PreconditionFailedError{Key: key, Message: message}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError
// wrapping an underlying cause.
func NewPreconditionFailedErrorWithCause(key, message string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Key: key, Message: message, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPreconditionFailed, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Message))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// InternalError indicates an unexpected failure inside the system or in one
// of its collaborators. Key is a stable machine-readable identifier for the
// failure.
type InternalError struct {
	Key     string
	Message string
	Cause   error
}

// NewInternalError creates an InternalError without a cause.
func NewInternalError(key, message string) *InternalError {
	return &InternalError{Key: key, Message: message}
}

// NewInternalErrorWithCause creates an InternalError wrapping an underlying
// cause.
func NewInternalErrorWithCause(key, message string, cause error) *InternalError {
	return &InternalError{Key: key, Message: message, Cause: cause}
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInternal, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInternal, e.Message))
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}
