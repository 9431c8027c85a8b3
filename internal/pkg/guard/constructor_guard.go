// Package guard holds small helpers that protect domain types from misuse.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tells a value built by its constructor apart from a zero value.
//
// Embed it in an aggregate or value object, set it with NewConstructorGuard inside the
// constructor (and inside any Restore function used by repositories), and call Validate
// before trusting the value:
//
//	type Checkpoint struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c *Checkpoint) Validate() error {
//	    return c.guard.Validate(ErrCheckpointNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed value. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
