package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrScenarioNotFound   = errors.New("scenario not found")
	ErrScenarioInactive   = errors.New("scenario is not active")
)
