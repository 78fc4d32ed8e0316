package errors

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrPollNotFound     = errors.New("poll not found")
	ErrInvalidQuestion  = errors.New("poll question is required")
	ErrNotEnoughOptions = errors.New("poll needs at least two options")
	ErrUnknownOption    = errors.New("option is not part of this poll")
)
