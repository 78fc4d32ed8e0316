package errors

import "errors"

var (
	ErrSpeakerNotFound  = errors.New("speaker not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrAlreadyAssigned  = errors.New("speaker is already assigned to this session")
	ErrAlreadyJoined    = errors.New("attendee has already joined this session")
)
