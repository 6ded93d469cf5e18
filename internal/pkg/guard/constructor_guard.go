package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the zero value of a
// guarded object is used and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a domain object was created through its
// designated constructor function or left as a zero value.
//
// Embedding a ConstructorGuard in an entity or value object and setting it with
// NewConstructorGuard inside the constructor lets Validate reject structs that
// were instantiated directly. This keeps invariants enforced at construction
// time from being bypassed elsewhere in the codebase.
//
// Example:
//
//	type Worker struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWorker(id kernel.UUID) (*Worker, error) {
//	    return &Worker{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (w *Worker) Validate() error {
//	    return w.guard.Validate(ErrWorkerIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor.
// For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
