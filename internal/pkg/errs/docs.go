// Package errs provides standardized error types for the dispatch
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Value errors raised while validating caller input:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError, VersionIsInvalidError.
//
//   - Boundary errors carrying a stable machine-readable key so the HTTP
//     layer can map every failure to a distinct status code:
//     BadRequestError, NotFoundError, PreconditionFailedError,
//     InternalError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrBadRequest)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
