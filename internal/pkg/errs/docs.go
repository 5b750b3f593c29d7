// Package errs provides the typed errors shared by the domain, application and
// adapter layers of the courier service.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation (e.g. a malformed phone number)
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//   - ObjectNotFoundError: a lookup matched nothing
//   - ObjectAlreadyExistsError: a uniqueness rule rejected a write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through wrapping
//
// The HTTP adapter classifies failures by these sentinels only.
package errs
