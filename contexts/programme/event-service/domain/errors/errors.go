package errors

import "errors"

var (
	ErrInvalidInput      = errors.New("event input is invalid")
	ErrInvalidDate       = errors.New("date must use the DD/MMMM/YYYY format")
	ErrOrganiserNotFound = errors.New("organiser not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrPermissionDenied  = errors.New("organiser is not allowed to edit events")
)
