// Package errs provides standardized error types for the moving application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The taxonomy covers the error kinds the core exposes: missing values,
// invalid values, out-of-range values, unresolved objects, and callers
// acting on objects they are not assigned to. Transport adapters map the
// sentinels onto status codes; the core itself never logs or retries.
package errs
