// Package guard provides a defensive construction pattern for value objects.
// Embedding a ConstructorGuard in a struct makes it possible to distinguish
// instances created through their designated constructor from zero values,
// so commands and queries can reject improperly constructed inputs.
package guard

import "errors"

// ErrDefaultConstructorGuard is the error returned by ConstructorGuard.Validate
// when a nil validation error is supplied. Validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects are only created through their
// designated constructor functions. The guard holds an internal flag that is
// only set when the object is created through the proper constructor; a
// zero-value struct fails validation.
//
// Example usage:
//
//	var ErrQueryNotConstructed = errors.New("query must be created via NewQuery")
//
//	type Query struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuery() Query {
//	    return Query{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Query) Validate() error {
//	    return q.guard.Validate(ErrQueryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for properly constructed objects, the provided
// validationError for zero values, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
