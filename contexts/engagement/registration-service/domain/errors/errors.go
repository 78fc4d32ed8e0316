package errors

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAttendeeNotFound  = errors.New("attendee not found")
	ErrAlreadyRegistered = errors.New("attendee is already registered for this event")

	// ErrRegistrationIncomplete means the attendee side was written but the
	// event side failed; the link is half-applied and no rollback is
	// attempted.
	ErrRegistrationIncomplete = errors.New("registration partially applied")
)
