package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePlate = errors.New("a vehicle with this license plate already exists")
	ErrDuplicateVIN   = errors.New("a vehicle with this VIN already exists")
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrTerminalStatus = errors.New("record is in a terminal status and cannot change")
)

// InvalidEnumError reports a value outside a closed enumeration. Handlers
// render it as a 422 with the offending field.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// MileageDecreaseError rejects an odometer reading below the latest known
// one. The reading is refused outright, nothing is persisted.
type MileageDecreaseError struct {
	Latest   int
	Proposed int
}

func (e *MileageDecreaseError) Error() string {
	return fmt.Sprintf("mileage %d is below the latest recorded reading %d", e.Proposed, e.Latest)
}
