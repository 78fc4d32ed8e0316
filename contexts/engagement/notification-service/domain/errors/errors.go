package errors

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrEmptyMessage     = errors.New("notification message is required")

	// ErrPartialDelivery reports a broadcast where at least one inbox append
	// failed; delivered inboxes keep their entry.
	ErrPartialDelivery = errors.New("notification delivered to some attendees only")
)
