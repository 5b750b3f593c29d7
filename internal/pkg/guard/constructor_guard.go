// Package guard lets value objects and aggregates detect that they were built
// through their constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into domain types. Only NewConstructorGuard
// produces a guard that validates, so a zero-value struct always fails.
//
// Example:
//
//	type PhoneNumber struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p PhoneNumber) Validate() error {
//	    return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
