package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller did not provide its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that value objects and commands are only created
// through their designated constructor functions. A zero-value guard fails
// validation, so direct struct literals are detectable at use sites.
//
// Embed a guard in the struct and set it with NewConstructorGuard inside the
// constructor:
//
//	type RegisterVehicleCommand struct {
//	    make  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRegisterVehicleCommand(make string) (RegisterVehicleCommand, error) {
//	    ...
//	    return RegisterVehicleCommand{make: make, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
