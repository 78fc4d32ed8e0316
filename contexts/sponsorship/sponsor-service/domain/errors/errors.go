package errors

import "errors"

var (
	ErrSponsorNotFound = errors.New("sponsor not found")
	ErrInvalidResource = errors.New("resource title, url and type are required")
)
