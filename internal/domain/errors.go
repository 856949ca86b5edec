package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrClassPassNotFound  = errors.New("class pass not found")
	ErrClassNotFound      = errors.New("class not found")
)

var (
	ErrInvalidTransition      = errors.New("invalid booking status transition")
	ErrRequestAlreadyInFlight = errors.New("request already in flight")
	ErrUnexpectedReceive      = errors.New("response received while no request is loading")
	ErrNoClassesRemaining     = errors.New("class pass has no classes remaining")
	ErrAlreadyAttending       = errors.New("customer already has an attendance for this class")
)

var (
	ErrUnknownStatus = errors.New("unknown booking status")
	ErrValidation    = errors.New("validation error")
)

type InvalidTransitionError struct {
	Current   BookingStatus
	Requested BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.Current, e.Requested)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
