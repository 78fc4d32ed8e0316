package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("account input is invalid")
	ErrUnsupportedRole    = errors.New("account role is not supported")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrAccountNotFound    = errors.New("account not found")
)
